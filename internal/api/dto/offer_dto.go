package dto

import (
	"time"

	"github.com/fastbite/delivery-service/internal/domain"
)

// OfferRequest payload for special offer create/update.
type OfferRequest struct {
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	ImageURL        string    `json:"imageUrl"`
	DiscountPercent int       `json:"discountPercent"`
	RestaurantID    *string   `json:"restaurantId"`
	Active          bool      `json:"active"`
	StartsAt        time.Time `json:"startsAt"`
	EndsAt          time.Time `json:"endsAt"`
}

// OfferResponse serializes a special offer.
type OfferResponse struct {
	ID              string    `json:"id"`
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	ImageURL        string    `json:"imageUrl"`
	DiscountPercent int       `json:"discountPercent"`
	RestaurantID    *string   `json:"restaurantId"`
	Active          bool      `json:"active"`
	StartsAt        time.Time `json:"startsAt"`
	EndsAt          time.Time `json:"endsAt"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// NewOfferResponse maps the domain model.
func NewOfferResponse(o *domain.SpecialOffer) OfferResponse {
	return OfferResponse{
		ID:              o.ID,
		Title:           o.Title,
		Description:     o.Description,
		ImageURL:        o.ImageURL,
		DiscountPercent: o.DiscountPercent,
		RestaurantID:    o.RestaurantID,
		Active:          o.Active,
		StartsAt:        o.StartsAt,
		EndsAt:          o.EndsAt,
		CreatedAt:       o.CreatedAt,
		UpdatedAt:       o.UpdatedAt,
	}
}

// UISettingPayload serializes a UI setting for requests and responses.
type UISettingPayload struct {
	Key       string    `json:"key"`
	Value     string    `json:"value"`
	UpdatedAt time.Time `json:"updatedAt,omitempty"`
}
