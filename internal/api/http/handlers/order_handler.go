package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/fastbite/delivery-service/internal/api/dto"
	"github.com/fastbite/delivery-service/internal/domain"
	"github.com/fastbite/delivery-service/internal/service"
	apperrors "github.com/fastbite/delivery-service/pkg/util"
)

// OrderHandler exposes order endpoints.
type OrderHandler struct {
	orders *service.OrderService
}

// NewOrderHandler constructs handler.
func NewOrderHandler(orders *service.OrderService) *OrderHandler {
	return &OrderHandler{orders: orders}
}

// List handles GET /api/orders with optional ?restaurantId= and ?status=.
func (h *OrderHandler) List(c *fiber.Ctx) error {
	orders, err := h.orders.List(c.UserContext(),
		c.Query("restaurantId"), domain.OrderStatus(c.Query("status")))
	if err != nil {
		return apperrors.MapError(err)
	}
	out := make([]dto.OrderResponse, 0, len(orders))
	for i := range orders {
		out = append(out, dto.NewOrderResponse(&orders[i]))
	}
	return c.JSON(out)
}

// Get handles GET /api/orders/:id.
func (h *OrderHandler) Get(c *fiber.Ctx) error {
	order, err := h.orders.Get(c.UserContext(), c.Params("id"))
	if err != nil {
		return apperrors.MapError(err)
	}
	return c.JSON(dto.NewOrderResponse(order))
}

// Create handles POST /api/orders.
func (h *OrderHandler) Create(c *fiber.Ctx) error {
	var req dto.OrderCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if req.RestaurantID == "" || req.CustomerName == "" || req.DeliveryAddress == "" {
		return fiber.NewError(http.StatusBadRequest, "restaurantId, customerName, deliveryAddress required")
	}

	order := &domain.Order{
		RestaurantID:    req.RestaurantID,
		CustomerName:    req.CustomerName,
		CustomerPhone:   req.CustomerPhone,
		DeliveryAddress: req.DeliveryAddress,
		Items:           req.DomainItems(),
		Notes:           req.Notes,
	}
	if err := h.orders.Create(c.UserContext(), order); err != nil {
		return apperrors.MapError(err)
	}
	return c.Status(http.StatusCreated).JSON(dto.NewOrderResponse(order))
}

// Update handles PUT /api/orders/:id.
func (h *OrderHandler) Update(c *fiber.Ctx) error {
	var req dto.OrderUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}

	update := service.OrderUpdate{DriverID: req.DriverID, Notes: req.Notes}
	if req.Status != nil {
		status := domain.OrderStatus(*req.Status)
		update.Status = &status
	}

	order, err := h.orders.Update(c.UserContext(), c.Params("id"), update)
	if err != nil {
		return apperrors.MapError(err)
	}
	return c.JSON(dto.NewOrderResponse(order))
}
