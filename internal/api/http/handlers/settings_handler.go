package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/fastbite/delivery-service/internal/api/dto"
	"github.com/fastbite/delivery-service/internal/service"
	apperrors "github.com/fastbite/delivery-service/pkg/util"
)

// SettingsHandler exposes UI settings endpoints.
type SettingsHandler struct {
	settings *service.SettingsService
}

// NewSettingsHandler constructs handler.
func NewSettingsHandler(settings *service.SettingsService) *SettingsHandler {
	return &SettingsHandler{settings: settings}
}

// List handles GET /api/ui-settings.
func (h *SettingsHandler) List(c *fiber.Ctx) error {
	settings, err := h.settings.List(c.UserContext())
	if err != nil {
		return apperrors.MapError(err)
	}
	out := make([]dto.UISettingPayload, 0, len(settings))
	for _, s := range settings {
		out = append(out, dto.UISettingPayload{Key: s.Key, Value: s.Value, UpdatedAt: s.UpdatedAt})
	}
	return c.JSON(out)
}

// Get handles GET /api/ui-settings/:key.
func (h *SettingsHandler) Get(c *fiber.Ctx) error {
	setting, err := h.settings.Get(c.UserContext(), c.Params("key"))
	if err != nil {
		return apperrors.MapError(err)
	}
	return c.JSON(dto.UISettingPayload{Key: setting.Key, Value: setting.Value, UpdatedAt: setting.UpdatedAt})
}

// Set handles PUT /api/ui-settings/:key.
func (h *SettingsHandler) Set(c *fiber.Ctx) error {
	var req dto.UISettingPayload
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}

	setting, err := h.settings.Set(c.UserContext(), c.Params("key"), req.Value)
	if err != nil {
		return apperrors.MapError(err)
	}
	return c.JSON(dto.UISettingPayload{Key: setting.Key, Value: setting.Value, UpdatedAt: setting.UpdatedAt})
}

// Delete handles DELETE /api/ui-settings/:key.
func (h *SettingsHandler) Delete(c *fiber.Ctx) error {
	if err := h.settings.Delete(c.UserContext(), c.Params("key")); err != nil {
		return apperrors.MapError(err)
	}
	return c.JSON(fiber.Map{"message": "setting deleted"})
}
