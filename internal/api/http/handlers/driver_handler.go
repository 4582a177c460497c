package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/fastbite/delivery-service/internal/api/dto"
	"github.com/fastbite/delivery-service/internal/domain"
	"github.com/fastbite/delivery-service/internal/service"
	apperrors "github.com/fastbite/delivery-service/pkg/util"
)

// DriverHandler exposes driver management endpoints.
type DriverHandler struct {
	drivers *service.DriverService
}

// NewDriverHandler constructs handler.
func NewDriverHandler(drivers *service.DriverService) *DriverHandler {
	return &DriverHandler{drivers: drivers}
}

// List handles GET /api/drivers with optional ?available=true.
func (h *DriverHandler) List(c *fiber.Ctx) error {
	var (
		drivers []domain.Driver
		err     error
	)
	if c.QueryBool("available") {
		drivers, err = h.drivers.ListAvailable(c.UserContext())
	} else {
		drivers, err = h.drivers.List(c.UserContext())
	}
	if err != nil {
		return apperrors.MapError(err)
	}

	out := make([]dto.DriverResponse, 0, len(drivers))
	for i := range drivers {
		out = append(out, dto.NewDriverResponse(&drivers[i]))
	}
	return c.JSON(out)
}

// Get handles GET /api/drivers/:id.
func (h *DriverHandler) Get(c *fiber.Ctx) error {
	driver, err := h.drivers.Get(c.UserContext(), c.Params("id"))
	if err != nil {
		return apperrors.MapError(err)
	}
	return c.JSON(dto.NewDriverResponse(driver))
}

// Create handles POST /api/drivers.
func (h *DriverHandler) Create(c *fiber.Ctx) error {
	var req dto.DriverRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if req.Name == "" || req.Phone == "" || req.Password == "" {
		return fiber.NewError(http.StatusBadRequest, "name, phone, password required")
	}

	driver, err := h.drivers.Create(c.UserContext(), service.DriverInput{
		Name:        req.Name,
		Phone:       req.Phone,
		Password:    req.Password,
		VehicleType: domain.VehicleType(req.VehicleType),
		Available:   req.Available,
		Active:      req.Active,
	})
	if err != nil {
		return apperrors.MapError(err)
	}
	return c.Status(http.StatusCreated).JSON(dto.NewDriverResponse(driver))
}

// Update handles PUT /api/drivers/:id.
func (h *DriverHandler) Update(c *fiber.Ctx) error {
	var req dto.DriverRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}

	driver, err := h.drivers.Update(c.UserContext(), c.Params("id"), service.DriverInput{
		Name:        req.Name,
		Phone:       req.Phone,
		Password:    req.Password,
		VehicleType: domain.VehicleType(req.VehicleType),
		Available:   req.Available,
		Active:      req.Active,
	})
	if err != nil {
		return apperrors.MapError(err)
	}
	return c.JSON(dto.NewDriverResponse(driver))
}

// Delete handles DELETE /api/drivers/:id.
func (h *DriverHandler) Delete(c *fiber.Ctx) error {
	if err := h.drivers.Delete(c.UserContext(), c.Params("id")); err != nil {
		return apperrors.MapError(err)
	}
	return c.SendStatus(http.StatusNoContent)
}
