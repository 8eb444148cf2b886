package bootstrap

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen/maeumgido/internal/domain"
	"github.com/jsamuelsen/maeumgido/internal/platform/config"
)

func TestConfig_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Config("")

	require.NoError(t, err)
	assert.Equal(t, "maeumgido", cfg.App.Name)
}

func TestConfig_Invalid(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("APP_LOG_LEVEL", "loud")

	_, err := Config("test")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid config")
}

func TestLoggingConfig(t *testing.T) {
	cfg := &config.Config{
		App: config.AppConfig{Name: "maeumgido", Version: "1.0.0"},
		Log: config.LogConfig{
			Level:  "debug",
			Format: "pretty",
			File:   config.LogFileConfig{Enabled: true, Path: "/tmp/gido.log", MaxSizeMB: 5},
		},
	}

	got := LoggingConfig(cfg)

	assert.Equal(t, "debug", got.Level)
	assert.Equal(t, "pretty", got.Format)
	assert.Equal(t, "maeumgido", got.Service)
	assert.True(t, got.File.Enabled)
	assert.Equal(t, 5, got.File.MaxSizeMB)
}

func TestCatalog(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	t.Run("embedded", func(t *testing.T) {
		c, err := Catalog(context.Background(), &config.Config{}, logger)

		require.NoError(t, err)
		assert.Positive(t, c.Len())
		assert.Contains(t, buf.String(), "origin=embedded")
	})

	t.Run("invalid file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "prayers.yaml")
		require.NoError(t, os.WriteFile(path, []byte("prayers:\n  - id: x\n"), 0o600))

		_, err := Catalog(context.Background(), &config.Config{Catalog: config.CatalogConfig{Path: path}}, logger)

		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrInvalidCatalog)
	})
}
