package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"go.uber.org/zap"

	"github.com/example/brandslanding/internal/cache"
	"github.com/example/brandslanding/internal/config"
	"github.com/example/brandslanding/internal/database"
	"github.com/example/brandslanding/internal/handlers"
	"github.com/example/brandslanding/internal/i18n"
	"github.com/example/brandslanding/internal/icons"
	"github.com/example/brandslanding/internal/logging"
	"github.com/example/brandslanding/internal/middleware"
	"github.com/example/brandslanding/internal/repository"
	"github.com/example/brandslanding/internal/routes"
	"github.com/example/brandslanding/internal/views"
)

const requestTimeout = 30 * time.Second

func main() {
	cfg := config.Load()

	logger, flush := logging.New(cfg.IsProduction())
	defer flush()

	db, err := database.Connect(cfg.DatabaseURL, !cfg.IsProduction())
	if err != nil {
		logger.Fatal("database setup failed", zap.Error(err))
	}
	if err := database.SeedAdmin(db, cfg.AdminPhone, cfg.AdminPassword); err != nil {
		logger.Fatal("admin seed failed", zap.Error(err))
	}

	redisClient, err := cache.NewClient(context.Background(), cfg.RedisURL)
	if err != nil {
		logger.Warn("redis unavailable, landing cache disabled", zap.Error(err))
		redisClient = nil
	}
	if redisClient != nil {
		defer redisClient.Close()
	}
	landingCache := cache.NewLandingCache(repository.NewLandingRepository(db), redisClient, cfg.LandingCacheTTL)

	bundle, err := i18n.Load(i18n.Locales, cfg.DefaultLocale, cfg.SupportedLocales)
	if err != nil {
		logger.Fatal("i18n load failed", zap.Error(err))
	}

	renderer, err := views.New()
	if err != nil {
		logger.Fatal("template parse failed", zap.Error(err))
	}

	inliner := icons.NewInliner(icons.Options{
		Client:      &http.Client{Timeout: 15 * time.Second},
		Timeout:     cfg.IconFetchTimeout,
		Concurrency: cfg.IconConcurrency,
		CacheTTL:    cfg.IconCacheTTL,
	})

	landing := handlers.NewLandingHandler(handlers.LandingOptions{
		Source:     landingCache,
		Icons:      inliner,
		Renderer:   renderer,
		Bundle:     bundle,
		CDNBaseURL: cfg.CDNBaseURL,
		Enabled:    cfg.BrandsLandingEnabled,
	})

	app := fiber.New(fiber.Config{
		AppName:      "Brands Landing",
		ErrorHandler: handlers.ErrorHandler,
	})

	app.Use(recover.New())
	app.Use(logging.Middleware(logger.Named("http")))
	app.Use(middleware.RequestContext(requestTimeout))

	routes.Register(app, db, cfg, landing, landingCache)

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
		<-quit
		logger.Info("shutting down")
		if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
			logger.Error("shutdown failed", zap.Error(err))
		}
	}()

	logger.Info("starting server", zap.String("port", cfg.AppPort))
	if err := app.Listen(":" + cfg.AppPort); err != nil {
		logger.Fatal("fiber.Listen error", zap.Error(err))
	}
}
