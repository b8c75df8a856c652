package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/ibrahimhozhun/food-ordering-app/internal/api/http"
	"github.com/ibrahimhozhun/food-ordering-app/internal/api/http/handlers"
	"github.com/ibrahimhozhun/food-ordering-app/internal/auth"
	"github.com/ibrahimhozhun/food-ordering-app/internal/config"
	"github.com/ibrahimhozhun/food-ordering-app/internal/events"
	"github.com/ibrahimhozhun/food-ordering-app/internal/observability"
	"github.com/ibrahimhozhun/food-ordering-app/internal/persistence"
	"github.com/ibrahimhozhun/food-ordering-app/internal/repository"
	"github.com/ibrahimhozhun/food-ordering-app/internal/service"
	"github.com/ibrahimhozhun/food-ordering-app/internal/worker"
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

	redis := persistence.NewRedis(cfg.Redis, logger)
	defer redis.Close()

	pool := pg.PoolHandle()
	customerRepo := repository.NewCustomerRepository(pool)
	restaurantRepo := repository.NewRestaurantRepository(pool)
	foodRepo := repository.NewFoodRepository(pool)
	orderRepo := repository.NewOrderRepository(pool)
	likeRepo := repository.NewLikeRepository(pool)

	dispatcher := events.NewInMemoryDispatcher()

	authService := service.NewAuthService(*cfg, service.AuthDependencies{
		CustomerRepo:   customerRepo,
		RestaurantRepo: restaurantRepo,
	})
	customerService := service.NewCustomerService(service.CustomerDependencies{
		CustomerRepo:   customerRepo,
		RestaurantRepo: restaurantRepo,
		FoodRepo:       foodRepo,
		OrderRepo:      orderRepo,
		LikeRepo:       likeRepo,
	})
	restaurantService := service.NewRestaurantService(service.RestaurantDependencies{
		RestaurantRepo: restaurantRepo,
		FoodRepo:       foodRepo,
		OrderRepo:      orderRepo,
	})
	orderService := service.NewOrderService(service.OrderDependencies{
		OrderRepo:      orderRepo,
		RestaurantRepo: restaurantRepo,
		FoodRepo:       foodRepo,
		Dispatcher:     dispatcher,
	})
	notificationService := service.NewNotificationService(dispatcher, redis, logger, cfg.Notification)
	worker.StartNotificationWorker(notificationService)

	authMiddleware := auth.NewMiddleware(authService.TokenManager(), customerRepo, restaurantRepo, logger)
	cookieManager := auth.NewCookieManager(cfg.Auth.AccessTokenTTL())

	metrics := observability.NewMetrics()

	app := fiber.New()
	httptransport.RegisterMiddlewares(app, logger, metrics, *cfg)

	healthHandler := handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, pg, redis)
	authHandler := handlers.NewAuthHandler(authService, customerService, restaurantService, cookieManager)
	customersHandler := handlers.NewCustomersHandler(customerService)
	restaurantsHandler := handlers.NewRestaurantsHandler(restaurantService)
	ordersHandler := handlers.NewOrdersHandler(orderService)

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:         healthHandler,
		Auth:           authHandler,
		Customers:      customersHandler,
		Restaurants:    restaurantsHandler,
		Orders:         ordersHandler,
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
