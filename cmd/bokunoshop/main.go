package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bokunoshop5-bot/BOKUNOshop/internal/analytics"
	"github.com/bokunoshop5-bot/BOKUNOshop/internal/app"
	"github.com/bokunoshop5-bot/BOKUNOshop/internal/catalog"
	"github.com/bokunoshop5-bot/BOKUNOshop/internal/insights"
	"github.com/bokunoshop5-bot/BOKUNOshop/internal/observability"
	"github.com/bokunoshop5-bot/BOKUNOshop/internal/platform/cache"
	"github.com/bokunoshop5-bot/BOKUNOshop/internal/platform/db"
)

func main() {
	if app.InTestMode() {
		slog.Default().Info("test mode detected, skipping runtime startup")
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := app.LoadConfig()
	if err != nil {
		slog.Default().Error("load config", slog.Any("error", err))
		os.Exit(1)
	}

	logger := app.NewLogger(cfg)

	var store catalog.SnapshotStore
	if cfg.UsePostgresStore() {
		pool, err := db.New(ctx, cfg.PGDSN)
		if err != nil {
			logger.Error("connect postgres", slog.Any("error", err))
			os.Exit(1)
		}
		defer pool.Close()
		store, err = catalog.NewPostgresStore(ctx, pool, cfg.SnapshotKey)
		if err != nil {
			logger.Error("init snapshot store", slog.Any("error", err))
			os.Exit(1)
		}
	} else {
		redisClient, err := cache.New(ctx, cfg.RedisAddr)
		if err != nil {
			logger.Error("connect redis", slog.Any("error", err))
			os.Exit(1)
		}
		defer func() {
			if err := redisClient.Close(); err != nil {
				logger.Warn("redis close", slog.Any("error", err))
			}
		}()
		store = catalog.NewRedisStore(redisClient, cfg.SnapshotKey)
	}

	repo := catalog.NewRepository()
	catalogService := catalog.NewService(repo, store, logger)
	if err := catalogService.LoadOrSeed(ctx); err != nil {
		logger.Error("load products", slog.Any("error", err))
		os.Exit(1)
	}

	generator := insights.NewClient(cfg.GeminiAPIURL, cfg.GeminiModel, cfg.GeminiAPIKey, cfg.InsightsTimeout)
	insightsService := insights.NewService(generator, catalogService, logger, cfg.InsightsTimeout)

	metrics := observability.NewMetrics()

	router := app.NewRouter(app.RouterParams{
		Logger:           logger,
		Config:           cfg,
		CatalogHandler:   catalog.NewHandler(logger, catalogService),
		AnalyticsHandler: analytics.NewHandler(catalogService),
		InsightsHandler:  insights.NewHandler(insightsService),
		Metrics:          metrics,
	})

	server := &http.Server{
		Addr:         cfg.AppAddr,
		Handler:      router,
		ReadTimeout:  cfg.AppReadTimeout,
		WriteTimeout: cfg.AppWriteTimeout,
	}

	go func() {
		logger.Info("starting http server", slog.String("addr", cfg.AppAddr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("http server", slog.Any("error", err))
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown", slog.Any("error", err))
	}
}
