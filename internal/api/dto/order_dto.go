package dto

import (
	"time"

	"github.com/fastbite/delivery-service/internal/domain"
)

// OrderItemPayload is one order line in requests and responses.
type OrderItemPayload struct {
	MenuItemID string  `json:"menuItemId"`
	Name       string  `json:"name"`
	Quantity   int     `json:"quantity"`
	UnitPrice  float64 `json:"unitPrice"`
}

// OrderCreateRequest payload for placing an order.
type OrderCreateRequest struct {
	RestaurantID    string             `json:"restaurantId"`
	CustomerName    string             `json:"customerName"`
	CustomerPhone   string             `json:"customerPhone"`
	DeliveryAddress string             `json:"deliveryAddress"`
	Items           []OrderItemPayload `json:"items"`
	Notes           string             `json:"notes"`
}

// OrderUpdateRequest payload for partial order updates.
type OrderUpdateRequest struct {
	Status   *string `json:"status"`
	DriverID *string `json:"driverId"`
	Notes    *string `json:"notes"`
}

// OrderResponse serializes an order.
type OrderResponse struct {
	ID              string             `json:"id"`
	RestaurantID    string             `json:"restaurantId"`
	DriverID        *string            `json:"driverId"`
	CustomerName    string             `json:"customerName"`
	CustomerPhone   string             `json:"customerPhone"`
	DeliveryAddress string             `json:"deliveryAddress"`
	Items           []OrderItemPayload `json:"items"`
	TotalAmount     float64            `json:"totalAmount"`
	Status          string             `json:"status"`
	Notes           string             `json:"notes"`
	CreatedAt       time.Time          `json:"createdAt"`
	UpdatedAt       time.Time          `json:"updatedAt"`
}

// NewOrderResponse maps the domain model.
func NewOrderResponse(o *domain.Order) OrderResponse {
	items := make([]OrderItemPayload, 0, len(o.Items))
	for _, item := range o.Items {
		items = append(items, OrderItemPayload{
			MenuItemID: item.MenuItemID,
			Name:       item.Name,
			Quantity:   item.Quantity,
			UnitPrice:  item.UnitPrice,
		})
	}
	return OrderResponse{
		ID:              o.ID,
		RestaurantID:    o.RestaurantID,
		DriverID:        o.DriverID,
		CustomerName:    o.CustomerName,
		CustomerPhone:   o.CustomerPhone,
		DeliveryAddress: o.DeliveryAddress,
		Items:           items,
		TotalAmount:     o.TotalAmount,
		Status:          string(o.Status),
		Notes:           o.Notes,
		CreatedAt:       o.CreatedAt,
		UpdatedAt:       o.UpdatedAt,
	}
}

// DomainItems converts request lines to the domain representation.
func (r OrderCreateRequest) DomainItems() []domain.OrderItem {
	items := make([]domain.OrderItem, 0, len(r.Items))
	for _, item := range r.Items {
		items = append(items, domain.OrderItem{
			MenuItemID: item.MenuItemID,
			Name:       item.Name,
			Quantity:   item.Quantity,
			UnitPrice:  item.UnitPrice,
		})
	}
	return items
}
