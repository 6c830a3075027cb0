package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/nevolt/orders-api/config"
	"github.com/nevolt/orders-api/logging"
	"github.com/nevolt/orders-api/metrics"
	"github.com/nevolt/orders-api/routes"
	"github.com/nevolt/orders-api/services"
	"go.uber.org/zap"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger, err := logging.New(cfg.LogLevel, cfg.GoEnv)
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	logger.Info("Starting restaurant orders API server...", zap.String("env", cfg.GoEnv))

	// An unreachable store does not stop startup; only a malformed DSN does
	db, err := config.ConnectDatabase(cfg, logger)
	if err != nil {
		logger.Fatal("Invalid database configuration", zap.Error(err))
	}

	// Requests that need the table will fail on their own if this does
	if err := config.EnsureOrdersSchema(db, logger); err != nil {
		logger.Error("initDB error", zap.Error(err))
	}

	reg := metrics.NewRegistry()
	orderService := services.NewOrderService(db, services.OrderNormalizer{
		DefaultRestaurantID: cfg.DefaultRestaurantID,
	}, reg)

	router := routes.SetupRouter(routes.Dependencies{
		Log:            logger,
		DB:             db,
		Orders:         orderService,
		Metrics:        reg,
		AllowedOrigins: cfg.AllowedOrigins,
	})

	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.Info("Server listening", zap.String("port", cfg.Port))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logger.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server shutdown failed", zap.Error(err))
	}
	if err := config.CloseDatabase(db); err != nil {
		logger.Error("Failed to close database", zap.Error(err))
	}
	logger.Info("Server stopped")
}
