package domain

import "time"

// Restaurant is a storefront vendor belonging to a category.
type Restaurant struct {
	ID             string
	CategoryID     string
	Name           string
	Description    string
	ImageURL       string
	Address        string
	Phone          string
	Rating         float64
	DeliveryFee    float64
	MinOrderAmount float64
	Open           bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// MenuItem is a purchasable item on a restaurant's menu.
type MenuItem struct {
	ID           string
	RestaurantID string
	Name         string
	Description  string
	ImageURL     string
	Price        float64
	Available    bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
