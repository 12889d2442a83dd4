package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/acmecorp/finboard/internal/config"
	"github.com/acmecorp/finboard/internal/handler"
	"github.com/acmecorp/finboard/internal/infra/cache"
	"github.com/acmecorp/finboard/internal/infra/mongo"
	"github.com/acmecorp/finboard/internal/infra/observability"
	"github.com/acmecorp/finboard/internal/infra/resilience"
	"github.com/acmecorp/finboard/internal/service"

	"go.uber.org/zap"
)

func main() {
	// --- Load .env file (for local development) ---
	_ = config.LoadDotEnv(".env")

	// --- Config ---
	cfg := config.Load()

	// --- Logger ---
	logger := observability.NewLogger(cfg.LogLevel)
	defer logger.Sync()

	logger.Info("configuration loaded",
		zap.Int("port", cfg.Port),
		zap.String("log_level", cfg.LogLevel),
		zap.String("mongo_database", cfg.MongoDatabase),
		zap.Duration("query_timeout", cfg.QueryTimeout),
		zap.Int("page_size", cfg.PageSize),
		zap.Duration("cache_ttl", cfg.CacheTTL),
		zap.Bool("seed_enabled", cfg.SeedEnabled),
	)

	// --- Tracing ---
	shutdown, err := observability.InitTracer(cfg.OTLPEndpoint, "finboard")
	if err != nil {
		logger.Fatal("failed to init tracer", zap.Error(err))
	}
	defer shutdown(context.Background())

	// --- Metrics ---
	metrics := observability.NewMetrics()

	// --- Cache ---
	dashCache := cache.New[any](cfg.CacheTTL)
	defer dashCache.Close()

	// --- Document store ---
	cb := resilience.NewCircuitBreaker("mongo")
	connectCtx, cancel := context.WithTimeout(context.Background(), cfg.QueryTimeout)
	store, err := mongo.Connect(connectCtx, cfg.MongoURL, cfg.MongoDatabase, cfg.QueryTimeout, cb, logger)
	cancel()
	if err != nil {
		logger.Fatal("failed to connect to document store", zap.Error(err))
	}
	defer store.Close(context.Background())

	// --- Services ---
	dashSvc := service.NewDashboardService(store, store, store, dashCache, metrics, logger)
	custSvc := service.NewCustomerService(store, store, metrics, logger)
	seedSvc := service.NewSeedService(store, store, store, store, dashCache, logger)

	// --- Router ---
	router := handler.NewRouter(dashSvc, custSvc, seedSvc, store, cfg, metrics, logger)

	// --- Server ---
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// --- Graceful shutdown ---
	go func() {
		logger.Info("server starting", zap.Int("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("server shutting down...")
	ctx, cancelShutdown := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancelShutdown()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal("server forced shutdown", zap.Error(err))
	}

	logger.Info("server stopped")
}
