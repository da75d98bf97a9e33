package product

import (
	"context"

	"telecom-catalog/internal/domain"
)

type Repository interface {
	List(ctx context.Context) ([]domain.Product, error)
	GetByID(ctx context.Context, id int64) (*domain.Product, error)
	ListByCategory(ctx context.Context, category string) ([]domain.Product, error)
	ListByOfferID(ctx context.Context, offerID int64) ([]domain.Product, error)
	Create(ctx context.Context, p domain.Product) (*domain.Product, error)
	Update(ctx context.Context, p domain.Product) (*domain.Product, error)
	Delete(ctx context.Context, id int64) error
}
