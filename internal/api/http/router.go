package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/fastbite/delivery-service/internal/api/http/handlers"
	"github.com/fastbite/delivery-service/internal/auth"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Auth           *handlers.AuthHandler
	Catalog        *handlers.CatalogHandler
	Orders         *handlers.OrderHandler
	Drivers        *handlers.DriverHandler
	Offers         *handlers.OfferHandler
	Settings       *handlers.SettingsHandler
	Dashboard      *handlers.DashboardHandler
	AuthMiddleware *auth.Middleware
}

// RegisterRoutes wires HTTP routes. Storefront reads and order placement
// are public; management routes require an admin session.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	api := app.Group("/api")

	api.Post("/admin/login", cfg.Auth.AdminLogin)
	api.Post("/driver/login", cfg.Auth.DriverLogin)
	api.Get("/admin/verify", cfg.Auth.Verify)
	api.Post("/admin/logout", cfg.Auth.Logout)

	// Public storefront reads and order placement.
	api.Get("/categories", cfg.Catalog.ListCategories)
	api.Get("/restaurants", cfg.Catalog.ListRestaurants)
	api.Get("/restaurants/:id", cfg.Catalog.GetRestaurant)
	api.Get("/restaurants/:restaurantId/menu", cfg.Catalog.ListMenu)
	api.Get("/special-offers", cfg.Offers.List)
	api.Get("/ui-settings", cfg.Settings.List)
	api.Get("/ui-settings/:key", cfg.Settings.Get)
	api.Post("/orders", cfg.Orders.Create)

	// Order reads and updates are shared between admins and drivers.
	orders := api.Group("/orders", cfg.AuthMiddleware.Handle, auth.RequireAuthenticated())
	orders.Get("", cfg.Orders.List)
	orders.Get("/:id", cfg.Orders.Get)
	orders.Put("/:id", cfg.Orders.Update)

	// Management routes.
	admin := api.Group("", cfg.AuthMiddleware.Handle, auth.RequireAdmin())
	admin.Post("/categories", cfg.Catalog.CreateCategory)
	admin.Put("/categories/:id", cfg.Catalog.UpdateCategory)
	admin.Delete("/categories/:id", cfg.Catalog.DeleteCategory)
	admin.Post("/restaurants", cfg.Catalog.CreateRestaurant)
	admin.Put("/restaurants/:id", cfg.Catalog.UpdateRestaurant)
	admin.Delete("/restaurants/:id", cfg.Catalog.DeleteRestaurant)
	admin.Post("/menu-items", cfg.Catalog.CreateMenuItem)
	admin.Put("/menu-items/:id", cfg.Catalog.UpdateMenuItem)
	admin.Delete("/menu-items/:id", cfg.Catalog.DeleteMenuItem)
	admin.Get("/drivers", cfg.Drivers.List)
	admin.Get("/drivers/:id", cfg.Drivers.Get)
	admin.Post("/drivers", cfg.Drivers.Create)
	admin.Put("/drivers/:id", cfg.Drivers.Update)
	admin.Delete("/drivers/:id", cfg.Drivers.Delete)
	admin.Post("/special-offers", cfg.Offers.Create)
	admin.Put("/special-offers/:id", cfg.Offers.Update)
	admin.Delete("/special-offers/:id", cfg.Offers.Delete)
	admin.Put("/ui-settings/:key", cfg.Settings.Set)
	admin.Delete("/ui-settings/:key", cfg.Settings.Delete)
	admin.Put("/admin/password", cfg.Auth.ChangePassword)
	admin.Get("/admin/dashboard", cfg.Dashboard.Get)
}
