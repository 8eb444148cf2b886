// Package bootstrap holds the startup steps shared by the HTTP service and
// the CLI: load and validate config, build the logger, load the catalog.
package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jsamuelsen/maeumgido/internal/adapters/catalog"
	"github.com/jsamuelsen/maeumgido/internal/domain"
	"github.com/jsamuelsen/maeumgido/internal/platform/config"
	"github.com/jsamuelsen/maeumgido/internal/platform/logging"
)

// DefaultProfile is used when no profile is given.
const DefaultProfile = "local"

// Config loads the profile and validates it. Invalid config fails fast.
func Config(profile string) (*config.Config, error) {
	if profile == "" {
		profile = DefaultProfile
	}

	cfg, err := config.Load(profile)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// LoggingConfig maps the log section onto the logging package.
func LoggingConfig(cfg *config.Config) *logging.Config {
	return &logging.Config{
		Level:   cfg.Log.Level,
		Format:  cfg.Log.Format,
		Service: cfg.App.Name,
		Version: cfg.App.Version,
		File: logging.FileConfig{
			Enabled:    cfg.Log.File.Enabled,
			Path:       cfg.Log.File.Path,
			MaxSizeMB:  cfg.Log.File.MaxSizeMB,
			MaxBackups: cfg.Log.File.MaxBackups,
			MaxAgeDays: cfg.Log.File.MaxAgeDays,
			Compress:   cfg.Log.File.Compress,
		},
	}
}

// Catalog loads the configured catalog, or the embedded one when no path is set.
func Catalog(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*domain.Catalog, error) {
	src := catalog.NewSource(cfg.Catalog.Path)

	c, err := catalog.Load(ctx, src)
	if err != nil {
		return nil, fmt.Errorf("loading catalog from %s: %w", src.Origin(), err)
	}

	logger.InfoContext(ctx, "catalog loaded",
		slog.String("origin", src.Origin()),
		slog.Int("prayers", c.Len()),
	)

	return c, nil
}
