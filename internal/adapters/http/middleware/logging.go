package middleware

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/NestAway/go-utm/internal/platform/logging"
)

// Logging returns middleware that logs each request on completion with
// status, latency and size, plus the utm_* attribution when one was resolved.
// Health check paths (starting with /-/) are skipped to avoid log noise.
func Logging() gin.HandlerFunc {
	return func(c *gin.Context) {
		if strings.HasPrefix(c.Request.URL.Path, "/-/") {
			c.Next()
			return
		}

		start := time.Now()
		ctxLogger := logging.FromContext(c.Request.Context())

		c.Next()

		latency := time.Since(start)
		status := c.Writer.Status()

		level := slog.LevelInfo
		if status >= http.StatusInternalServerError {
			level = slog.LevelError
		} else if status >= http.StatusBadRequest {
			level = slog.LevelWarn
		}

		attrs := []any{
			slog.String("method", c.Request.Method),
			slog.String("path", c.Request.URL.Path),
			slog.Int("status", status),
			slog.Duration("latency", latency),
			slog.Int("bytes", c.Writer.Size()),
			slog.String("client_ip", c.ClientIP()),
		}

		if rec, ok := GetAttribution(c); ok {
			attrs = append(attrs,
				slog.String("utm_source", rec.Source),
				slog.String("utm_medium", rec.Medium),
				slog.String("utm_from", rec.From),
			)
		}

		ctxLogger.Log(c.Request.Context(), level, "request completed", attrs...)
	}
}
