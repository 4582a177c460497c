package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/fastbite/delivery-service/internal/api/dto"
	"github.com/fastbite/delivery-service/internal/domain"
	"github.com/fastbite/delivery-service/internal/service"
	apperrors "github.com/fastbite/delivery-service/pkg/util"
)

// CatalogHandler exposes category, restaurant and menu endpoints.
type CatalogHandler struct {
	catalog *service.CatalogService
}

// NewCatalogHandler constructs handler.
func NewCatalogHandler(catalog *service.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalog: catalog}
}

// ListCategories handles GET /api/categories.
func (h *CatalogHandler) ListCategories(c *fiber.Ctx) error {
	categories, err := h.catalog.ListCategories(c.UserContext())
	if err != nil {
		return apperrors.MapError(err)
	}
	out := make([]dto.CategoryResponse, 0, len(categories))
	for i := range categories {
		out = append(out, dto.NewCategoryResponse(&categories[i]))
	}
	return c.JSON(out)
}

// CreateCategory handles POST /api/categories.
func (h *CatalogHandler) CreateCategory(c *fiber.Ctx) error {
	var req dto.CategoryRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if req.Name == "" {
		return fiber.NewError(http.StatusBadRequest, "name required")
	}

	category := &domain.Category{Name: req.Name, ImageURL: req.ImageURL, SortOrder: req.SortOrder}
	if err := h.catalog.CreateCategory(c.UserContext(), category); err != nil {
		return apperrors.MapError(err)
	}
	return c.Status(http.StatusCreated).JSON(dto.NewCategoryResponse(category))
}

// UpdateCategory handles PUT /api/categories/:id.
func (h *CatalogHandler) UpdateCategory(c *fiber.Ctx) error {
	var req dto.CategoryRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}

	category := &domain.Category{
		ID:        c.Params("id"),
		Name:      req.Name,
		ImageURL:  req.ImageURL,
		SortOrder: req.SortOrder,
	}
	if err := h.catalog.UpdateCategory(c.UserContext(), category); err != nil {
		return apperrors.MapError(err)
	}
	return c.JSON(dto.NewCategoryResponse(category))
}

// DeleteCategory handles DELETE /api/categories/:id.
func (h *CatalogHandler) DeleteCategory(c *fiber.Ctx) error {
	if err := h.catalog.DeleteCategory(c.UserContext(), c.Params("id")); err != nil {
		return apperrors.MapError(err)
	}
	return c.SendStatus(http.StatusNoContent)
}

// ListRestaurants handles GET /api/restaurants with optional ?categoryId=.
func (h *CatalogHandler) ListRestaurants(c *fiber.Ctx) error {
	restaurants, err := h.catalog.ListRestaurants(c.UserContext(), c.Query("categoryId"))
	if err != nil {
		return apperrors.MapError(err)
	}
	out := make([]dto.RestaurantResponse, 0, len(restaurants))
	for i := range restaurants {
		out = append(out, dto.NewRestaurantResponse(&restaurants[i]))
	}
	return c.JSON(out)
}

// GetRestaurant handles GET /api/restaurants/:id.
func (h *CatalogHandler) GetRestaurant(c *fiber.Ctx) error {
	restaurant, err := h.catalog.GetRestaurant(c.UserContext(), c.Params("id"))
	if err != nil {
		return apperrors.MapError(err)
	}
	return c.JSON(dto.NewRestaurantResponse(restaurant))
}

// CreateRestaurant handles POST /api/restaurants.
func (h *CatalogHandler) CreateRestaurant(c *fiber.Ctx) error {
	var req dto.RestaurantRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if req.Name == "" || req.CategoryID == "" {
		return fiber.NewError(http.StatusBadRequest, "name and categoryId required")
	}

	restaurant := restaurantFromRequest(req)
	if err := h.catalog.CreateRestaurant(c.UserContext(), restaurant); err != nil {
		return apperrors.MapError(err)
	}
	return c.Status(http.StatusCreated).JSON(dto.NewRestaurantResponse(restaurant))
}

// UpdateRestaurant handles PUT /api/restaurants/:id.
func (h *CatalogHandler) UpdateRestaurant(c *fiber.Ctx) error {
	var req dto.RestaurantRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}

	restaurant := restaurantFromRequest(req)
	restaurant.ID = c.Params("id")
	if err := h.catalog.UpdateRestaurant(c.UserContext(), restaurant); err != nil {
		return apperrors.MapError(err)
	}
	return c.JSON(dto.NewRestaurantResponse(restaurant))
}

// DeleteRestaurant handles DELETE /api/restaurants/:id.
func (h *CatalogHandler) DeleteRestaurant(c *fiber.Ctx) error {
	if err := h.catalog.DeleteRestaurant(c.UserContext(), c.Params("id")); err != nil {
		return apperrors.MapError(err)
	}
	return c.SendStatus(http.StatusNoContent)
}

// ListMenu handles GET /api/restaurants/:restaurantId/menu.
func (h *CatalogHandler) ListMenu(c *fiber.Ctx) error {
	items, err := h.catalog.ListMenu(c.UserContext(), c.Params("restaurantId"))
	if err != nil {
		return apperrors.MapError(err)
	}
	out := make([]dto.MenuItemResponse, 0, len(items))
	for i := range items {
		out = append(out, dto.NewMenuItemResponse(&items[i]))
	}
	return c.JSON(out)
}

// CreateMenuItem handles POST /api/menu-items.
func (h *CatalogHandler) CreateMenuItem(c *fiber.Ctx) error {
	var req dto.MenuItemRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if req.Name == "" || req.RestaurantID == "" {
		return fiber.NewError(http.StatusBadRequest, "name and restaurantId required")
	}

	item := &domain.MenuItem{
		RestaurantID: req.RestaurantID,
		Name:         req.Name,
		Description:  req.Description,
		ImageURL:     req.ImageURL,
		Price:        req.Price,
		Available:    req.Available,
	}
	if err := h.catalog.CreateMenuItem(c.UserContext(), item); err != nil {
		return apperrors.MapError(err)
	}
	return c.Status(http.StatusCreated).JSON(dto.NewMenuItemResponse(item))
}

// UpdateMenuItem handles PUT /api/menu-items/:id.
func (h *CatalogHandler) UpdateMenuItem(c *fiber.Ctx) error {
	var req dto.MenuItemRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}

	item := &domain.MenuItem{
		ID:          c.Params("id"),
		Name:        req.Name,
		Description: req.Description,
		ImageURL:    req.ImageURL,
		Price:       req.Price,
		Available:   req.Available,
	}
	if err := h.catalog.UpdateMenuItem(c.UserContext(), item); err != nil {
		return apperrors.MapError(err)
	}
	return c.JSON(dto.NewMenuItemResponse(item))
}

// DeleteMenuItem handles DELETE /api/menu-items/:id.
func (h *CatalogHandler) DeleteMenuItem(c *fiber.Ctx) error {
	if err := h.catalog.DeleteMenuItem(c.UserContext(), c.Params("id")); err != nil {
		return apperrors.MapError(err)
	}
	return c.SendStatus(http.StatusNoContent)
}

func restaurantFromRequest(req dto.RestaurantRequest) *domain.Restaurant {
	return &domain.Restaurant{
		CategoryID:     req.CategoryID,
		Name:           req.Name,
		Description:    req.Description,
		ImageURL:       req.ImageURL,
		Address:        req.Address,
		Phone:          req.Phone,
		Rating:         req.Rating,
		DeliveryFee:    req.DeliveryFee,
		MinOrderAmount: req.MinOrderAmount,
		Open:           req.Open,
	}
}
