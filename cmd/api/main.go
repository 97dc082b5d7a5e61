package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/Ankush321-collab/data-dashboard/internal/api/http"
	"github.com/Ankush321-collab/data-dashboard/internal/api/http/handlers"
	"github.com/Ankush321-collab/data-dashboard/internal/auth"
	"github.com/Ankush321-collab/data-dashboard/internal/config"
	"github.com/Ankush321-collab/data-dashboard/internal/events"
	"github.com/Ankush321-collab/data-dashboard/internal/observability"
	"github.com/Ankush321-collab/data-dashboard/internal/persistence"
	"github.com/Ankush321-collab/data-dashboard/internal/repository"
	"github.com/Ankush321-collab/data-dashboard/internal/service"
	"github.com/Ankush321-collab/data-dashboard/internal/worker"
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
	userRepo := repository.NewUserRepository(pool)
	entryRepo := repository.NewDataEntryRepository(pool)
	analyticsRepo := repository.NewAnalyticsRepository(pool)

	dispatcher := events.NewInMemoryDispatcher()

	authService := service.NewAuthService(*cfg, service.AuthDependencies{
		UserRepo:   userRepo,
		Dispatcher: dispatcher,
	})
	profileService := service.NewProfileService(userRepo, dispatcher)
	dataService := service.NewDataService(entryRepo)
	analyticsService := service.NewAnalyticsService(analyticsRepo)

	auditService := service.NewAuditService(dispatcher, logger)
	worker.StartAuditWorker(auditService)

	sessions := auth.NewCookieSessionStore(cfg.Auth.SessionCookieName, cfg.App.Production())
	guard := auth.NewRequestGuard(authService.TokenManager(), sessions, userRepo, logger)

	metrics := observability.NewMetrics()

	app := fiber.New(fiber.Config{AppName: cfg.App.Name})
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:    handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, pg, redis),
		Auth:      handlers.NewAuthHandler(authService, sessions),
		Profile:   handlers.NewProfileHandler(profileService),
		Data:      handlers.NewDataHandler(dataService),
		Analytics: handlers.NewAnalyticsHandler(analyticsService),
		Guard:     guard,
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
