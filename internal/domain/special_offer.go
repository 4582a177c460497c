package domain

import "time"

// SpecialOffer is a time-bounded promotion shown in the storefront.
type SpecialOffer struct {
	ID              string
	Title           string
	Description     string
	ImageURL        string
	DiscountPercent int
	RestaurantID    *string
	Active          bool
	StartsAt        time.Time
	EndsAt          time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
