package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/fiscly/fiscly_backend/internal/dto"
	"github.com/fiscly/fiscly_backend/internal/handlers"
	"github.com/fiscly/fiscly_backend/internal/middleware"
	"github.com/fiscly/fiscly_backend/internal/platform/bootstrap"
	"github.com/fiscly/fiscly_backend/internal/platform/config"
	"github.com/gin-gonic/gin"
)

// @title Fiscly Backend API
// @version 1.0
// @description Invoices with USD conversion at the issue-date exchange rate.

// @host localhost:8080
// @BasePath /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

// @security BearerAuth
func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	app, err := bootstrap.New(context.Background(), cfg, logger, true)
	if err != nil {
		logger.Error("Failed to initialize application", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer app.Close()

	if err := dto.RegisterValidators(); err != nil {
		logger.Error("Failed to register validators", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware (logging, recovery)
	r.Use(middleware.StructuredLoggingMiddleware(logger, app.Metrics), gin.Recovery())

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if err := handlers.RegisterRoutes(r, cfg, app.Services, app.Metrics); err != nil {
		logger.Error("Failed to register routes", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("Server starting",
		slog.String("port", cfg.Port),
		slog.String("store", cfg.StoreDriver),
		slog.Int("fx_fallback_days", cfg.FXFallbackDays))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
