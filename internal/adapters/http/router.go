package http

import (
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/maeumgido/internal/adapters/http/handlers"
	"github.com/jsamuelsen/maeumgido/internal/adapters/http/middleware"
	"github.com/jsamuelsen/maeumgido/internal/platform/config"
	"github.com/jsamuelsen/maeumgido/internal/platform/telemetry"
)

// RouterConfig contains what SetupRouter wires together.
type RouterConfig struct {
	Logger    *slog.Logger
	AppConfig *config.AppConfig
	CORS      config.CORSConfig

	// HealthHandler serves /-/. Nil skips the probes.
	HealthHandler *handlers.HealthHandler

	// PrayerHandler serves /api/v1. Nil skips the API.
	PrayerHandler *handlers.PrayerHandler

	// Timeout bounds /api/v1 requests. Zero disables it.
	Timeout time.Duration
}

// SetupRouter installs middleware and routes. Middleware order:
//  1. Recovery
//  2. Logger, RequestID, CorrelationID (context logger enrichment)
//  3. OpenTelemetry tracing, then HTTP metrics
//  4. Request logging (skips /-/)
//  5. CORS, when enabled
//
// The API group also gets the request timeout; probes do not.
func SetupRouter(engine *gin.Engine, cfg RouterConfig) {
	engine.Use(
		middleware.Recovery(),
		middleware.Logger(cfg.Logger),
		middleware.RequestID(),
		middleware.CorrelationID(),
		telemetry.TracingMiddleware(cfg.AppConfig.Name),
		telemetry.Middleware(),
		middleware.Logging(),
	)

	if cors := middleware.CORS(cfg.CORS); cors != nil {
		engine.Use(cors)
	}

	if cfg.HealthHandler != nil {
		cfg.HealthHandler.RegisterHealthRoutes(engine)
	}

	if cfg.PrayerHandler != nil {
		api := engine.Group("/api/v1", middleware.Timeout(cfg.Timeout))
		cfg.PrayerHandler.RegisterPrayerRoutes(api)
	}
}
