package service

import (
	"context"

	"github.com/fastbite/delivery-service/internal/domain"
	"github.com/fastbite/delivery-service/internal/repository"
)

// CatalogService wraps storefront persistence: categories, restaurants and
// menu items. No business invariants beyond referential existence.
type CatalogService struct {
	categories  repository.CategoryRepository
	restaurants repository.RestaurantRepository
	menuItems   repository.MenuItemRepository
}

// NewCatalogService builds the service.
func NewCatalogService(
	categories repository.CategoryRepository,
	restaurants repository.RestaurantRepository,
	menuItems repository.MenuItemRepository,
) *CatalogService {
	return &CatalogService{categories: categories, restaurants: restaurants, menuItems: menuItems}
}

func (s *CatalogService) ListCategories(ctx context.Context) ([]domain.Category, error) {
	return s.categories.List(ctx)
}

func (s *CatalogService) CreateCategory(ctx context.Context, category *domain.Category) error {
	return s.categories.Create(ctx, category)
}

func (s *CatalogService) UpdateCategory(ctx context.Context, category *domain.Category) error {
	return s.categories.Update(ctx, category)
}

func (s *CatalogService) DeleteCategory(ctx context.Context, id string) error {
	return s.categories.Delete(ctx, id)
}

// ListRestaurants returns all restaurants, or only those in a category
// when categoryID is non-empty.
func (s *CatalogService) ListRestaurants(ctx context.Context, categoryID string) ([]domain.Restaurant, error) {
	if categoryID != "" {
		return s.restaurants.ListByCategory(ctx, categoryID)
	}
	return s.restaurants.List(ctx)
}

func (s *CatalogService) GetRestaurant(ctx context.Context, id string) (*domain.Restaurant, error) {
	return s.restaurants.GetByID(ctx, id)
}

func (s *CatalogService) CreateRestaurant(ctx context.Context, restaurant *domain.Restaurant) error {
	if _, err := s.categories.GetByID(ctx, restaurant.CategoryID); err != nil {
		return err
	}
	return s.restaurants.Create(ctx, restaurant)
}

func (s *CatalogService) UpdateRestaurant(ctx context.Context, restaurant *domain.Restaurant) error {
	return s.restaurants.Update(ctx, restaurant)
}

func (s *CatalogService) DeleteRestaurant(ctx context.Context, id string) error {
	return s.restaurants.Delete(ctx, id)
}

func (s *CatalogService) ListMenu(ctx context.Context, restaurantID string) ([]domain.MenuItem, error) {
	return s.menuItems.ListByRestaurant(ctx, restaurantID)
}

func (s *CatalogService) CreateMenuItem(ctx context.Context, item *domain.MenuItem) error {
	if _, err := s.restaurants.GetByID(ctx, item.RestaurantID); err != nil {
		return err
	}
	return s.menuItems.Create(ctx, item)
}

func (s *CatalogService) UpdateMenuItem(ctx context.Context, item *domain.MenuItem) error {
	return s.menuItems.Update(ctx, item)
}

func (s *CatalogService) DeleteMenuItem(ctx context.Context, id string) error {
	return s.menuItems.Delete(ctx, id)
}
