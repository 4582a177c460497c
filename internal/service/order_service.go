package service

import (
	"context"

	apperrors "github.com/fastbite/delivery-service/pkg/util"

	"github.com/fastbite/delivery-service/internal/domain"
	"github.com/fastbite/delivery-service/internal/repository"
)

// orderTransitions lists the allowed status moves. Terminal states have
// no outgoing edges.
var orderTransitions = map[domain.OrderStatus][]domain.OrderStatus{
	domain.OrderStatusPending:   {domain.OrderStatusConfirmed, domain.OrderStatusCancelled},
	domain.OrderStatusConfirmed: {domain.OrderStatusPreparing, domain.OrderStatusCancelled},
	domain.OrderStatusPreparing: {domain.OrderStatusOnTheWay, domain.OrderStatusCancelled},
	domain.OrderStatusOnTheWay:  {domain.OrderStatusDelivered},
}

// OrderUpdate carries the mutable fields of an order.
type OrderUpdate struct {
	Status   *domain.OrderStatus
	DriverID *string
	Notes    *string
}

// OrderService manages delivery orders.
type OrderService struct {
	orders      repository.OrderRepository
	restaurants repository.RestaurantRepository
	drivers     repository.DriverRepository
}

// NewOrderService builds the service.
func NewOrderService(
	orders repository.OrderRepository,
	restaurants repository.RestaurantRepository,
	drivers repository.DriverRepository,
) *OrderService {
	return &OrderService{orders: orders, restaurants: restaurants, drivers: drivers}
}

// Create places a new order in PENDING state. The total is computed from
// the order lines rather than trusted from the caller.
func (s *OrderService) Create(ctx context.Context, order *domain.Order) error {
	if len(order.Items) == 0 {
		return apperrors.NewValidationError("order requires at least one item", nil)
	}
	if _, err := s.restaurants.GetByID(ctx, order.RestaurantID); err != nil {
		return err
	}

	var total float64
	for _, item := range order.Items {
		if item.Quantity <= 0 {
			return apperrors.NewValidationError("item quantity must be positive", map[string]any{"menu_item_id": item.MenuItemID})
		}
		total += float64(item.Quantity) * item.UnitPrice
	}
	order.TotalAmount = total
	order.Status = domain.OrderStatusPending
	order.DriverID = nil

	return s.orders.Create(ctx, order)
}

func (s *OrderService) Get(ctx context.Context, id string) (*domain.Order, error) {
	return s.orders.GetByID(ctx, id)
}

// List returns orders, optionally narrowed by restaurant and/or status.
func (s *OrderService) List(ctx context.Context, restaurantID string, status domain.OrderStatus) ([]domain.Order, error) {
	if restaurantID == "" {
		if status != "" {
			return s.orders.ListByStatus(ctx, status)
		}
		return s.orders.List(ctx)
	}

	orders, err := s.orders.ListByRestaurant(ctx, restaurantID)
	if err != nil {
		return nil, err
	}
	if status == "" {
		return orders, nil
	}
	filtered := make([]domain.Order, 0, len(orders))
	for _, o := range orders {
		if o.Status == status {
			filtered = append(filtered, o)
		}
	}
	return filtered, nil
}

// Update applies a partial update: status transition, driver assignment,
// notes. Invalid transitions are rejected.
func (s *OrderService) Update(ctx context.Context, id string, update OrderUpdate) (*domain.Order, error) {
	order, err := s.orders.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if update.Status != nil && *update.Status != order.Status {
		if !transitionAllowed(order.Status, *update.Status) {
			return nil, apperrors.NewConflict("invalid status transition", map[string]any{
				"from": string(order.Status),
				"to":   string(*update.Status),
			})
		}
		order.Status = *update.Status
	}
	if update.DriverID != nil {
		if *update.DriverID == "" {
			order.DriverID = nil
		} else {
			if _, err := s.drivers.GetByID(ctx, *update.DriverID); err != nil {
				return nil, err
			}
			order.DriverID = update.DriverID
		}
	}
	if update.Notes != nil {
		order.Notes = *update.Notes
	}

	if err := s.orders.Update(ctx, order); err != nil {
		return nil, err
	}
	return order, nil
}

func transitionAllowed(from, to domain.OrderStatus) bool {
	for _, next := range orderTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}
