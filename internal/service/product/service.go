package product

import (
	"context"
	"errors"
	"strconv"

	"telecom-catalog/internal/domain"
	productrepo "telecom-catalog/internal/repository/product"
)

// Service manages products and enforces the offer association on create.
type Service struct {
	repo   productrepo.Repository
	offers offerGetter
}

type offerGetter interface {
	GetByID(ctx context.Context, id int64) (*domain.Offer, error)
}

func New(repo productrepo.Repository, offers offerGetter) *Service {
	return &Service{repo: repo, offers: offers}
}

func (s *Service) List(ctx context.Context) ([]domain.Product, error) {
	return s.repo.List(ctx)
}

// Get returns the product or domain.ErrNotFound when absent.
func (s *Service) Get(ctx context.Context, id int64) (*domain.Product, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) ListByCategory(ctx context.Context, category string) ([]domain.Product, error) {
	return s.repo.ListByCategory(ctx, category)
}

func (s *Service) ListByOfferID(ctx context.Context, offerID int64) ([]domain.Product, error) {
	return s.repo.ListByOfferID(ctx, offerID)
}

// Create persists a new product. The offer reference must carry the id of an
// existing offer; on success the reference is replaced with the resolved
// offer before the write. Nothing is persisted when validation fails.
func (s *Service) Create(ctx context.Context, p domain.Product) (*domain.Product, error) {
	if p.Offer == nil || p.Offer.ID == 0 {
		return nil, &domain.InvalidOfferError{OfferID: "null"}
	}

	resolved, err := s.offers.GetByID(ctx, p.Offer.ID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, &domain.InvalidOfferError{OfferID: strconv.FormatInt(p.Offer.ID, 10)}
		}
		return nil, err
	}

	p.Offer = resolved
	return s.repo.Create(ctx, p)
}

// Update overwrites all mutable fields wholesale, including the offer
// reference. The new offer reference is NOT checked against the store here,
// unlike Create; that asymmetry is intentional until product owners confirm
// the intended semantics.
func (s *Service) Update(ctx context.Context, id int64, details domain.Product) (*domain.Product, error) {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, &domain.NotFoundError{Entity: "Product", ID: id}
		}
		return nil, err
	}

	existing.Name = details.Name
	existing.Category = details.Category
	existing.Description = details.Description
	existing.Price = details.Price
	existing.ImageURL = details.ImageURL
	existing.Offer = details.Offer

	if _, err := s.repo.Update(ctx, *existing); err != nil {
		return nil, err
	}
	// Re-read so the offer reference comes back resolved (or null when the
	// referenced offer does not exist).
	return s.repo.GetByID(ctx, id)
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return &domain.NotFoundError{Entity: "Product", ID: id}
		}
		return err
	}
	return nil
}
