package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/fastbite/delivery-service/internal/api/dto"
	"github.com/fastbite/delivery-service/internal/domain"
	"github.com/fastbite/delivery-service/internal/service"
	apperrors "github.com/fastbite/delivery-service/pkg/util"
)

// OfferHandler exposes special-offer endpoints.
type OfferHandler struct {
	offers *service.OfferService
}

// NewOfferHandler constructs handler.
func NewOfferHandler(offers *service.OfferService) *OfferHandler {
	return &OfferHandler{offers: offers}
}

// List handles GET /api/special-offers with optional ?active=true.
func (h *OfferHandler) List(c *fiber.Ctx) error {
	offers, err := h.offers.List(c.UserContext(), c.QueryBool("active"))
	if err != nil {
		return apperrors.MapError(err)
	}
	out := make([]dto.OfferResponse, 0, len(offers))
	for i := range offers {
		out = append(out, dto.NewOfferResponse(&offers[i]))
	}
	return c.JSON(out)
}

// Create handles POST /api/special-offers.
func (h *OfferHandler) Create(c *fiber.Ctx) error {
	var req dto.OfferRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if req.Title == "" {
		return fiber.NewError(http.StatusBadRequest, "title required")
	}

	offer := offerFromRequest(req)
	if err := h.offers.Create(c.UserContext(), offer); err != nil {
		return apperrors.MapError(err)
	}
	return c.Status(http.StatusCreated).JSON(dto.NewOfferResponse(offer))
}

// Update handles PUT /api/special-offers/:id.
func (h *OfferHandler) Update(c *fiber.Ctx) error {
	var req dto.OfferRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}

	offer := offerFromRequest(req)
	offer.ID = c.Params("id")
	if err := h.offers.Update(c.UserContext(), offer); err != nil {
		return apperrors.MapError(err)
	}
	return c.JSON(dto.NewOfferResponse(offer))
}

// Delete handles DELETE /api/special-offers/:id.
func (h *OfferHandler) Delete(c *fiber.Ctx) error {
	if err := h.offers.Delete(c.UserContext(), c.Params("id")); err != nil {
		return apperrors.MapError(err)
	}
	return c.SendStatus(http.StatusNoContent)
}

func offerFromRequest(req dto.OfferRequest) *domain.SpecialOffer {
	return &domain.SpecialOffer{
		Title:           req.Title,
		Description:     req.Description,
		ImageURL:        req.ImageURL,
		DiscountPercent: req.DiscountPercent,
		RestaurantID:    req.RestaurantID,
		Active:          req.Active,
		StartsAt:        req.StartsAt,
		EndsAt:          req.EndsAt,
	}
}
