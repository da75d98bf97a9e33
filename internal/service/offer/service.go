package offer

import (
	"context"
	"errors"

	"telecom-catalog/internal/domain"
	offerrepo "telecom-catalog/internal/repository/offer"
)

// Service manages offers. All state lives in the repository; reads always
// hit the store.
type Service struct {
	repo offerrepo.Repository
}

func New(repo offerrepo.Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(ctx context.Context) ([]domain.Offer, error) {
	return s.repo.List(ctx)
}

// ListByType returns offers whose type exactly matches offerType.
func (s *Service) ListByType(ctx context.Context, offerType string) ([]domain.Offer, error) {
	return s.repo.ListByType(ctx, offerType)
}

// Get returns the offer or domain.ErrNotFound when absent.
func (s *Service) Get(ctx context.Context, id int64) (*domain.Offer, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) Create(ctx context.Context, o domain.Offer) (*domain.Offer, error) {
	return s.repo.Create(ctx, o)
}

// Update overwrites type, name, description and price wholesale. The stored
// id is preserved; ids carried in details are ignored.
func (s *Service) Update(ctx context.Context, id int64, details domain.Offer) (*domain.Offer, error) {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, &domain.NotFoundError{Entity: "Offer", ID: id}
		}
		return nil, err
	}

	existing.Type = details.Type
	existing.Name = details.Name
	existing.Description = details.Description
	existing.Price = details.Price

	return s.repo.Update(ctx, *existing)
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return &domain.NotFoundError{Entity: "Offer", ID: id}
		}
		return err
	}
	return nil
}
