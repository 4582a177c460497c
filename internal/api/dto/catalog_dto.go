package dto

import (
	"time"

	"github.com/fastbite/delivery-service/internal/domain"
)

// CategoryRequest payload for category create/update.
type CategoryRequest struct {
	Name      string `json:"name"`
	ImageURL  string `json:"imageUrl"`
	SortOrder int    `json:"sortOrder"`
}

// CategoryResponse serializes a category.
type CategoryResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	ImageURL  string    `json:"imageUrl"`
	SortOrder int       `json:"sortOrder"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// NewCategoryResponse maps the domain model.
func NewCategoryResponse(c *domain.Category) CategoryResponse {
	return CategoryResponse{
		ID:        c.ID,
		Name:      c.Name,
		ImageURL:  c.ImageURL,
		SortOrder: c.SortOrder,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

// RestaurantRequest payload for restaurant create/update.
type RestaurantRequest struct {
	CategoryID     string  `json:"categoryId"`
	Name           string  `json:"name"`
	Description    string  `json:"description"`
	ImageURL       string  `json:"imageUrl"`
	Address        string  `json:"address"`
	Phone          string  `json:"phone"`
	Rating         float64 `json:"rating"`
	DeliveryFee    float64 `json:"deliveryFee"`
	MinOrderAmount float64 `json:"minOrderAmount"`
	Open           bool    `json:"open"`
}

// RestaurantResponse serializes a restaurant.
type RestaurantResponse struct {
	ID             string    `json:"id"`
	CategoryID     string    `json:"categoryId"`
	Name           string    `json:"name"`
	Description    string    `json:"description"`
	ImageURL       string    `json:"imageUrl"`
	Address        string    `json:"address"`
	Phone          string    `json:"phone"`
	Rating         float64   `json:"rating"`
	DeliveryFee    float64   `json:"deliveryFee"`
	MinOrderAmount float64   `json:"minOrderAmount"`
	Open           bool      `json:"open"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// NewRestaurantResponse maps the domain model.
func NewRestaurantResponse(r *domain.Restaurant) RestaurantResponse {
	return RestaurantResponse{
		ID:             r.ID,
		CategoryID:     r.CategoryID,
		Name:           r.Name,
		Description:    r.Description,
		ImageURL:       r.ImageURL,
		Address:        r.Address,
		Phone:          r.Phone,
		Rating:         r.Rating,
		DeliveryFee:    r.DeliveryFee,
		MinOrderAmount: r.MinOrderAmount,
		Open:           r.Open,
		CreatedAt:      r.CreatedAt,
		UpdatedAt:      r.UpdatedAt,
	}
}

// MenuItemRequest payload for menu item create/update.
type MenuItemRequest struct {
	RestaurantID string  `json:"restaurantId"`
	Name         string  `json:"name"`
	Description  string  `json:"description"`
	ImageURL     string  `json:"imageUrl"`
	Price        float64 `json:"price"`
	Available    bool    `json:"available"`
}

// MenuItemResponse serializes a menu item.
type MenuItemResponse struct {
	ID           string    `json:"id"`
	RestaurantID string    `json:"restaurantId"`
	Name         string    `json:"name"`
	Description  string    `json:"description"`
	ImageURL     string    `json:"imageUrl"`
	Price        float64   `json:"price"`
	Available    bool      `json:"available"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// NewMenuItemResponse maps the domain model.
func NewMenuItemResponse(m *domain.MenuItem) MenuItemResponse {
	return MenuItemResponse{
		ID:           m.ID,
		RestaurantID: m.RestaurantID,
		Name:         m.Name,
		Description:  m.Description,
		ImageURL:     m.ImageURL,
		Price:        m.Price,
		Available:    m.Available,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}
