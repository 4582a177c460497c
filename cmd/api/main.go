package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/fastbite/delivery-service/internal/api/http"
	"github.com/fastbite/delivery-service/internal/api/http/handlers"
	"github.com/fastbite/delivery-service/internal/auth"
	"github.com/fastbite/delivery-service/internal/config"
	"github.com/fastbite/delivery-service/internal/observability"
	"github.com/fastbite/delivery-service/internal/persistence"
	"github.com/fastbite/delivery-service/internal/repository"
	"github.com/fastbite/delivery-service/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pg, err := persistence.NewPostgres(ctx, cfg.Postgres, logger)
	if err != nil {
		logger.Fatal("failed to connect postgres", zap.Error(err))
	}
	defer pg.Close()

	if cfg.Postgres.RunMigrations {
		if err := persistence.RunMigrations(ctx, pg.PoolHandle(), logger); err != nil {
			logger.Fatal("failed to run migrations", zap.Error(err))
		}
	}

	redis, err := persistence.NewRedis(ctx, cfg.Redis, logger)
	if err != nil {
		logger.Fatal("failed to connect redis", zap.Error(err))
	}
	defer redis.Close()

	pool := pg.PoolHandle()
	adminRepo := repository.NewAdminRepository(pool)
	driverRepo := repository.NewDriverRepository(pool)
	sessionRepo := repository.NewSessionRepository(redis.Client)
	categoryRepo := repository.NewCategoryRepository(pool)
	restaurantRepo := repository.NewRestaurantRepository(pool)
	menuItemRepo := repository.NewMenuItemRepository(pool)
	orderRepo := repository.NewOrderRepository(pool)
	offerRepo := repository.NewSpecialOfferRepository(pool)
	settingRepo := repository.NewUISettingRepository(pool)

	authService := service.NewAuthService(cfg.Auth, service.AuthDependencies{
		AdminRepo:   adminRepo,
		DriverRepo:  driverRepo,
		SessionRepo: sessionRepo,
	})

	// Default accounts must exist before the service accepts traffic; a
	// store failure here is fatal.
	if err := authService.CreateDefaultAdmin(ctx); err != nil {
		logger.Fatal("failed to bootstrap default admin", zap.Error(err))
	}
	if err := authService.CreateDefaultDriver(ctx); err != nil {
		logger.Fatal("failed to bootstrap default driver", zap.Error(err))
	}

	catalogService := service.NewCatalogService(categoryRepo, restaurantRepo, menuItemRepo)
	orderService := service.NewOrderService(orderRepo, restaurantRepo, driverRepo)
	driverService := service.NewDriverService(driverRepo, authService)
	offerService := service.NewOfferService(offerRepo)
	settingsService := service.NewSettingsService(settingRepo)
	dashboardService := service.NewDashboardService(restaurantRepo, orderRepo, driverRepo)

	authMiddleware := auth.NewMiddleware(authService)

	metrics := observability.NewMetrics()
	app := fiber.New()
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:         handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, pg, redis),
		Auth:           handlers.NewAuthHandler(authService),
		Catalog:        handlers.NewCatalogHandler(catalogService),
		Orders:         handlers.NewOrderHandler(orderService),
		Drivers:        handlers.NewDriverHandler(driverService),
		Offers:         handlers.NewOfferHandler(offerService),
		Settings:       handlers.NewSettingsHandler(settingsService),
		Dashboard:      handlers.NewDashboardHandler(dashboardService),
		AuthMiddleware: authMiddleware,
	})

	go func() {
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	_ = app.Shutdown()
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
