// Package main is the entry point for the HTTP service.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/jsamuelsen/maeumgido/internal/adapters/http"
	"github.com/jsamuelsen/maeumgido/internal/adapters/http/handlers"
	"github.com/jsamuelsen/maeumgido/internal/app"
	"github.com/jsamuelsen/maeumgido/internal/platform/bootstrap"
	"github.com/jsamuelsen/maeumgido/internal/platform/logging"
	"github.com/jsamuelsen/maeumgido/internal/platform/telemetry"
	"github.com/jsamuelsen/maeumgido/internal/ports"
)

// Build-time variables, injected via ldflags.
// Example: go build -ldflags "-X main.Version=1.0.0 -X main.Commit=$(git rev-parse HEAD)"
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx := context.Background()

	// 1. Config (fail fast)
	cfg, err := bootstrap.Config(os.Getenv("APP_ENVIRONMENT"))
	if err != nil {
		return err
	}

	// 2. Logging
	logger := logging.New(bootstrap.LoggingConfig(cfg))
	slog.SetDefault(logger)

	logger.Info("starting service",
		slog.String("version", Version),
		slog.String("commit", Commit),
		slog.String("environment", cfg.App.Environment),
	)

	// 3. Telemetry (noop if disabled)
	telProvider, err := telemetry.New(ctx, &telemetry.Config{
		Enabled:      cfg.Telemetry.Enabled,
		Endpoint:     cfg.Telemetry.Endpoint,
		Insecure:     cfg.Telemetry.Insecure,
		ServiceName:  cfg.Telemetry.ServiceName,
		Version:      cfg.App.Version,
		Environment:  cfg.App.Environment,
		SamplingRate: cfg.Telemetry.SamplingRate,
	})
	if err != nil {
		return fmt.Errorf("initializing telemetry: %w", err)
	}

	defer func() {
		if shutdownErr := telProvider.Shutdown(ctx); shutdownErr != nil {
			logger.Error("telemetry shutdown error", slog.Any("error", shutdownErr))
		}
	}()

	// 4. Catalog and application services
	catalog, err := bootstrap.Catalog(ctx, cfg, logger)
	if err != nil {
		return err
	}

	recommendations := app.NewRecommendationService(app.RecommendationServiceConfig{
		Catalog:   catalog,
		PublicURL: cfg.Share.PublicURL,
		Metrics:   app.NewMetrics(prometheus.DefaultRegisterer),
		Logger:    logger,
	})

	healthRegistry := ports.NewHealthRegistry()
	if err := healthRegistry.Register(recommendations); err != nil {
		return fmt.Errorf("registering catalog health check: %w", err)
	}

	// 5. HTTP
	buildInfo := handlers.NewBuildInfo(Version, Commit, BuildTime, recommendations.CatalogSize())

	server := http.New(&cfg.Server, logger)
	http.SetupRouter(server.Engine(), http.RouterConfig{
		Logger:        logger,
		AppConfig:     &cfg.App,
		CORS:          cfg.CORS,
		HealthHandler: handlers.NewHealthHandler(healthRegistry, prometheus.DefaultGatherer, buildInfo),
		PrayerHandler: handlers.NewPrayerHandler(recommendations),
		Timeout:       cfg.Server.RequestTimeout,
	})

	serverErr, err := server.Start()
	if err != nil {
		return err
	}

	return waitForShutdown(ctx, logger, server, serverErr, cfg.Server.ShutdownTimeout)
}

// waitForShutdown blocks until a signal or a server error, then drains the server.
func waitForShutdown(
	ctx context.Context,
	logger *slog.Logger,
	server *http.Server,
	serverErr <-chan error,
	shutdownTimeout time.Duration,
) error {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		return fmt.Errorf("server error: %w", err)

	case sig := <-quit:
		logger.Info("received shutdown signal", slog.String("signal", sig.String()))
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, shutdownTimeout)
	defer cancel()

	logger.Info("initiating graceful shutdown", slog.Duration("timeout", shutdownTimeout))

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}

	logger.Info("shutdown complete")

	return nil
}
