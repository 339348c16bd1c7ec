package http

import (
	"log/slog"

	"github.com/gin-gonic/gin"

	"github.com/NestAway/go-utm/internal/adapters/http/handlers"
	"github.com/NestAway/go-utm/internal/adapters/http/middleware"
	"github.com/NestAway/go-utm/internal/attribution"
	"github.com/NestAway/go-utm/internal/platform/config"
	"github.com/NestAway/go-utm/internal/platform/logging"
	"github.com/NestAway/go-utm/internal/platform/telemetry"
)

// RouterConfig contains configuration for setting up the router.
type RouterConfig struct {
	// Logger is the base logger placed in every request context.
	Logger *slog.Logger

	// AppConfig contains application configuration.
	AppConfig *config.AppConfig

	// AttributionConfig controls the attribution cookies.
	AttributionConfig *config.AttributionConfig

	// HealthHandler handles health check endpoints.
	HealthHandler *handlers.HealthHandler

	// AttributionHandler serves the attribution API.
	AttributionHandler *handlers.AttributionHandler
}

// SetupRouter configures all routes and middleware on the Gin engine.
// Middleware is applied in the following order (first to last):
//  1. Recovery - catch panics first
//  2. Request ID - generate/extract request ID
//  3. OpenTelemetry - tracing and metrics
//  4. Logging - request logging (skips health endpoints)
//  5. Attribution - every route except /-/
//
// Route groups:
//   - /-/ (internal): health, build info and metrics
//   - /api/v1/ (public API): attribution lookup
//
// Unmatched paths are attributed too, so any landing page captures its
// UTM parameters even when it returns 404.
func SetupRouter(engine *gin.Engine, cfg RouterConfig) {
	engine.Use(
		injectLogger(cfg.Logger),
		middleware.Recovery(),
		middleware.RequestID(),
		telemetry.TracingMiddleware(cfg.AppConfig.Name),
		telemetry.Middleware(),
		middleware.Logging(),
	)

	if cfg.HealthHandler != nil {
		cfg.HealthHandler.RegisterHealthRoutesOnEngine(engine)
	}

	attributed := middleware.Attribution(attributionOptions(cfg.AttributionConfig))

	apiV1 := engine.Group("/api/v1", attributed)
	if cfg.AttributionHandler != nil {
		cfg.AttributionHandler.RegisterAttributionRoutes(apiV1)
	}

	engine.NoRoute(attributed, notFound)
}

// attributionOptions converts the loaded config to middleware options.
// A nil config yields the defaults.
func attributionOptions(cfg *config.AttributionConfig) attribution.Options {
	if cfg == nil {
		return attribution.NewOptions()
	}

	return attribution.NewOptions(
		attribution.WithTTL(cfg.TTL),
		attribution.WithDomain(cfg.Domain),
		attribution.WithOverwrite(cfg.Overwrite),
	)
}

// injectLogger places logger in the request context.
func injectLogger(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if logger != nil {
			c.Request = c.Request.WithContext(logging.WithContext(c.Request.Context(), logger))
		}

		c.Next()
	}
}
