package service

import (
	"context"

	"github.com/fastbite/delivery-service/internal/domain"
	"github.com/fastbite/delivery-service/internal/repository"
)

// OfferService wraps special-offer persistence.
type OfferService struct {
	offers repository.SpecialOfferRepository
}

// NewOfferService builds the service.
func NewOfferService(offers repository.SpecialOfferRepository) *OfferService {
	return &OfferService{offers: offers}
}

// List returns all offers, or only currently running ones when activeOnly.
func (s *OfferService) List(ctx context.Context, activeOnly bool) ([]domain.SpecialOffer, error) {
	if activeOnly {
		return s.offers.ListActive(ctx)
	}
	return s.offers.List(ctx)
}

func (s *OfferService) Get(ctx context.Context, id string) (*domain.SpecialOffer, error) {
	return s.offers.GetByID(ctx, id)
}

func (s *OfferService) Create(ctx context.Context, offer *domain.SpecialOffer) error {
	return s.offers.Create(ctx, offer)
}

func (s *OfferService) Update(ctx context.Context, offer *domain.SpecialOffer) error {
	return s.offers.Update(ctx, offer)
}

func (s *OfferService) Delete(ctx context.Context, id string) error {
	return s.offers.Delete(ctx, id)
}
