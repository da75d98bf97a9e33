package offer

import (
	"context"

	"telecom-catalog/internal/domain"
)

type Repository interface {
	List(ctx context.Context) ([]domain.Offer, error)
	ListByType(ctx context.Context, offerType string) ([]domain.Offer, error)
	GetByID(ctx context.Context, id int64) (*domain.Offer, error)
	Create(ctx context.Context, o domain.Offer) (*domain.Offer, error)
	Update(ctx context.Context, o domain.Offer) (*domain.Offer, error)
	Delete(ctx context.Context, id int64) error
}
