package config

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// validConfig returns a fully valid configuration for testing.
func validConfig() *Config {
	return &Config{
		App: AppConfig{
			Name:        "maeumgido",
			Version:     "1.0.0",
			Environment: "local",
		},
		Server: ServerConfig{
			Port:            8080,
			Host:            "0.0.0.0",
			ReadTimeout:     30 * time.Second,
			WriteTimeout:    30 * time.Second,
			IdleTimeout:     120 * time.Second,
			ShutdownTimeout: 10 * time.Second,
			RequestTimeout:  5 * time.Second,
			MaxRequestSize:  DefaultMaxRequestSize,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "json",
		},
		Share: ShareConfig{
			PublicURL: DefaultPublicURL,
			Timeout:   30 * time.Second,
		},
	}
}

func TestConfig_Validate_ValidConfig(t *testing.T) {
	cfg := validConfig()
	err := cfg.Validate()
	assert.NoError(t, err)
}

func TestConfig_Validate_AppConfig(t *testing.T) {
	t.Run("missing name", func(t *testing.T) {
		cfg := validConfig()
		cfg.App.Name = ""

		err := cfg.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "app.name")
		assert.Contains(t, err.Error(), "required")
	})

	t.Run("invalid environment", func(t *testing.T) {
		cfg := validConfig()
		cfg.App.Environment = "staging"

		err := cfg.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "app.environment")
		assert.Contains(t, err.Error(), "must be one of")
	})
}

func TestConfig_Validate_ServerConfig(t *testing.T) {
	tests := []struct {
		name    string
		port    int
		wantErr bool
	}{
		{"minimum valid port", 1, false},
		{"typical port", 8080, false},
		{"maximum valid port", 65535, false},
		{"zero port", 0, true},
		{"port too high", 65536, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			cfg.Server.Port = tt.port

			err := cfg.Validate()
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "server.port")
			} else {
				assert.NoError(t, err)
			}
		})
	}

	t.Run("read timeout minimum", func(t *testing.T) {
		cfg := validConfig()
		cfg.Server.ReadTimeout = 500 * time.Millisecond

		err := cfg.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "server.read_timeout")
	})

	t.Run("request timeout minimum", func(t *testing.T) {
		cfg := validConfig()
		cfg.Server.RequestTimeout = 10 * time.Millisecond

		err := cfg.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "server.request_timeout")
	})
}

func TestConfig_Validate_LogConfig(t *testing.T) {
	for _, level := range []string{"trace", "debug", "info", "warn", "error"} {
		t.Run("level "+level, func(t *testing.T) {
			cfg := validConfig()
			cfg.Log.Level = level
			assert.NoError(t, cfg.Validate())
		})
	}

	for _, format := range []string{"json", "text", "pretty"} {
		t.Run("format "+format, func(t *testing.T) {
			cfg := validConfig()
			cfg.Log.Format = format
			assert.NoError(t, cfg.Validate())
		})
	}

	t.Run("case sensitive log level", func(t *testing.T) {
		cfg := validConfig()
		cfg.Log.Level = "DEBUG"

		err := cfg.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "log.level")
	})

	t.Run("invalid log format", func(t *testing.T) {
		cfg := validConfig()
		cfg.Log.Format = "xml"

		err := cfg.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "log.format")
	})
}

func TestConfig_Validate_LogFileConfig(t *testing.T) {
	t.Run("file logging enabled - path required", func(t *testing.T) {
		cfg := validConfig()
		cfg.Log.File.Enabled = true
		cfg.Log.File.Path = ""

		err := cfg.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "log.file.path")
	})

	t.Run("max size bounds", func(t *testing.T) {
		cfg := validConfig()
		cfg.Log.File.Enabled = true
		cfg.Log.File.Path = "/var/log/maeumgido.log"
		cfg.Log.File.MaxSizeMB = 1025

		err := cfg.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "log.file.max_size")
	})
}

func TestConfig_Validate_TelemetryConfig(t *testing.T) {
	t.Run("telemetry enabled - endpoint required", func(t *testing.T) {
		cfg := validConfig()
		cfg.Telemetry.Enabled = true
		cfg.Telemetry.ServiceName = "maeumgido"

		err := cfg.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "telemetry.endpoint")
	})

	for _, tt := range []struct {
		rate    float64
		wantErr bool
	}{
		{0.0, false},
		{1.0, false},
		{-0.1, true},
		{1.1, true},
	} {
		t.Run(fmt.Sprintf("sampling rate %v", tt.rate), func(t *testing.T) {
			cfg := validConfig()
			cfg.Telemetry.SamplingRate = tt.rate

			err := cfg.Validate()
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "telemetry.sampling_rate")
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestConfig_Validate_CORSConfig(t *testing.T) {
	t.Run("enabled without origins", func(t *testing.T) {
		cfg := validConfig()
		cfg.CORS.Enabled = true

		err := cfg.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "cors.allowed_origins")
	})

	t.Run("origin must be a url", func(t *testing.T) {
		cfg := validConfig()
		cfg.CORS.Enabled = true
		cfg.CORS.AllowedOrigins = []string{"maeumgido"}

		err := cfg.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "must be a valid URL")
	})

	t.Run("enabled with origins", func(t *testing.T) {
		cfg := validConfig()
		cfg.CORS.Enabled = true
		cfg.CORS.AllowedOrigins = []string{"https://maeumgido.app", "http://localhost:5173"}

		assert.NoError(t, cfg.Validate())
	})
}

func TestConfig_Validate_ShareConfig(t *testing.T) {
	t.Run("timeout required", func(t *testing.T) {
		cfg := validConfig()
		cfg.Share.Timeout = 0

		err := cfg.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "share.timeout")
	})

	t.Run("public url may be empty", func(t *testing.T) {
		cfg := validConfig()
		cfg.Share.PublicURL = ""

		assert.NoError(t, cfg.Validate())
	})

	t.Run("public url must parse", func(t *testing.T) {
		cfg := validConfig()
		cfg.Share.PublicURL = "not a url"

		err := cfg.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "share.public_url")
	})
}

func TestConfig_Validate_CatalogConfig(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		cfg := validConfig()
		cfg.Catalog.Path = filepath.Join(t.TempDir(), "missing.yaml")

		err := cfg.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "catalog.path must be an existing file")
	})

	t.Run("existing file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "prayers.yaml")
		require.NoError(t, os.WriteFile(path, []byte("prayers: []\n"), 0o600))

		cfg := validConfig()
		cfg.Catalog.Path = path

		assert.NoError(t, cfg.Validate())
	})
}

func TestFormatFieldPath(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"Config.server.port", "server.port"},
		{"Config.log.file.max_size", "log.file.max_size"},
		{"Config.share.public_url", "share.public_url"},
		{"Config.cors.allowed_origins[0]", "cors.allowed_origins[0]"},
		{"single", "single"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, formatFieldPath(tt.input))
		})
	}
}

func TestConfig_Validate_MultipleErrors(t *testing.T) {
	cfg := validConfig()
	cfg.App.Name = ""
	cfg.Server.Port = 0
	cfg.Share.Timeout = 0

	err := cfg.Validate()
	require.Error(t, err)

	errStr := err.Error()
	assert.Contains(t, errStr, "config validation failed")
	assert.Contains(t, errStr, "app.name")
	assert.Contains(t, errStr, "server.port")
	assert.Contains(t, errStr, "share.timeout")
}
