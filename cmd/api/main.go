package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	apihttp "github.com/sabbebasta/booking-platform/internal/api/http"
	"github.com/sabbebasta/booking-platform/internal/api/http/handlers"
	"github.com/sabbebasta/booking-platform/internal/auth"
	"github.com/sabbebasta/booking-platform/internal/config"
	"github.com/sabbebasta/booking-platform/internal/events"
	"github.com/sabbebasta/booking-platform/internal/observability"
	"github.com/sabbebasta/booking-platform/internal/persistence"
	"github.com/sabbebasta/booking-platform/internal/repository"
	"github.com/sabbebasta/booking-platform/internal/service"
	"github.com/sabbebasta/booking-platform/internal/worker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	ctx := context.Background()

	pg, err := persistence.NewPostgres(ctx, cfg.Postgres, logger)
	if err != nil {
		logger.Fatal("failed to initialize postgres", zap.Error(err))
	}
	defer pg.Close()

	if cfg.Postgres.RunMigrations {
		if pg.IsAvailable(ctx) {
			if err := persistence.RunMigrations(ctx, pg.PoolHandle(), logger); err != nil {
				logger.Fatal("failed to run migrations", zap.Error(err))
			}
		} else {
			logger.Warn("database unreachable at startup, skipping migrations")
		}
	}

	rdb := persistence.NewRedis(cfg.Redis, logger)
	defer rdb.Close()
	catalogCache := persistence.NewCatalogCache(rdb, cfg.Redis.CacheTTLSec)

	pool := pg.PoolHandle()
	userRepo := repository.NewUserRepository(pool)
	serviceRepo := repository.NewServiceRepository(pool)
	staffRepo := repository.NewStaffRepository(pool)
	bookingRepo := repository.NewBookingRepository(pool)

	dispatcher := events.NewInMemoryDispatcher()
	notificationService := service.NewNotificationService(dispatcher, logger)
	worker.StartNotificationWorker(notificationService)

	authService := service.NewAuthService(*cfg, userRepo)
	userService := service.NewUserService(userRepo)
	catalogService := service.NewCatalogService(serviceRepo, catalogCache, logger)
	staffService := service.NewStaffService(staffRepo)
	bookingService := service.NewBookingService(service.BookingDependencies{
		BookingRepo: bookingRepo,
		ServiceRepo: serviceRepo,
		Dispatcher:  dispatcher,
	})

	metrics := observability.NewMetrics()

	app := fiber.New(fiber.Config{
		ReadTimeout:  cfg.App.RequestTimeout(),
		WriteTimeout: cfg.App.RequestTimeout(),
	})

	apihttp.RegisterMiddlewares(app, cfg, logger, metrics)
	apihttp.RegisterRoutes(app, apihttp.RouteConfig{
		Postgres: pg,
		Auth:     auth.NewAuthMiddleware(authService.TokenManager(), userRepo),
		Health:   handlers.NewHealthHandler(pg),
		AuthH:    handlers.NewAuthHandler(authService),
		Users:    handlers.NewUsersHandler(userService, authService),
		Services: handlers.NewServicesHandler(catalogService),
		Staff:    handlers.NewStaffHandler(staffService),
		Bookings: handlers.NewBookingsHandler(bookingService),
	})

	go func() {
		logger.Info("starting server", zap.String("addr", cfg.App.Addr()))
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("server stopped", zap.Error(err))
		}
	}()

	waitForShutdown(app, logger)
}

func waitForShutdown(app *fiber.App, logger *zap.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server")
	if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
		logger.Error("graceful shutdown failed", zap.Error(err))
	}
}
