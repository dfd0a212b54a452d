package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
	limitermem "github.com/ulule/limiter/v3/drivers/store/memory"

	"github.com/edinstair/property_transition_app/internal/adapters/xero"
	"github.com/edinstair/property_transition_app/internal/core/services"
	"github.com/edinstair/property_transition_app/internal/handlers"
	"github.com/edinstair/property_transition_app/internal/middleware"
	"github.com/edinstair/property_transition_app/internal/platform/config"
	"github.com/edinstair/property_transition_app/pkg/xeroapi"
)

// @title Property Transition API
// @version 1.0
// @description Occupier transition workflow over the Xero accounting API.

// @host localhost:8080
// @BasePath /

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

	// Accounting API client with client-credentials auth and retries
	client, err := xeroapi.New(context.Background(), xeroapi.Options{
		BaseURL:      cfg.XeroBaseURL,
		TokenURL:     cfg.XeroTokenURL,
		ClientID:     cfg.XeroClientID,
		ClientSecret: cfg.XeroClientSecret,
		TenantID:     cfg.XeroTenantID,
		Timeout:      cfg.XeroHTTPTimeout,
		MaxRetries:   cfg.XeroMaxRetries,
		RetryDelay:   cfg.XeroRetryDelay,
	})
	if err != nil {
		logger.Error("Failed to initialize accounting API client", slog.String("error", err.Error()))
		os.Exit(1)
	}
	logger.Info("Accounting API client ready", slog.String("baseURL", cfg.XeroBaseURL))

	repos := xero.NewRepositoryProvider(client)
	serviceContainer := services.NewServiceContainer(cfg, repos)

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	middleware.SetupValidator()

	r := gin.New()

	// Global middleware (logging, recovery, CORS, rate limiting)
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = cfg.AllowedOrigins
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization")
	r.Use(cors.New(corsConfig))

	rate, err := limiter.NewRateFromFormatted(cfg.RateLimit)
	if err != nil {
		logger.Error("Invalid RATE_LIMIT value", slog.String("value", cfg.RateLimit), slog.String("error", err.Error()))
		os.Exit(1)
	}
	r.Use(middleware.RateLimit(limiter.New(limitermem.NewStore(), rate)))

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	handlers.RegisterRoutes(r, cfg, serviceContainer)

	logger.Info("Server starting", slog.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
