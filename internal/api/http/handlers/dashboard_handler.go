package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/fastbite/delivery-service/internal/service"
	apperrors "github.com/fastbite/delivery-service/pkg/util"
)

// DashboardHandler exposes the admin dashboard endpoint.
type DashboardHandler struct {
	dashboard *service.DashboardService
}

// NewDashboardHandler constructs handler.
func NewDashboardHandler(dashboard *service.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboard: dashboard}
}

// Get handles GET /api/admin/dashboard.
func (h *DashboardHandler) Get(c *fiber.Ctx) error {
	dashboard, err := h.dashboard.Build(c.UserContext())
	if err != nil {
		return apperrors.MapError(err)
	}
	return c.JSON(dashboard)
}
