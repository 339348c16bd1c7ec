package middleware

import (
	"log/slog"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/NestAway/go-utm/internal/attribution"
	"github.com/NestAway/go-utm/internal/domain"
	"github.com/NestAway/go-utm/internal/platform/logging"
)

// Attribution returns middleware that tracks UTM attribution across visits.
// For each request it:
//   - Resolves the record from utm_* parameters, u_* cookies and Referer
//   - Stores all eight utm.* keys in the gin.Context and the record in
//     the request context, when the record is attributed
//   - Adds utm_* attributes to the context logger and the active span
//   - Bakes the non-empty fields back as u_* cookies on the response
//
// Unattributed requests pass through untouched. Panics and errors from
// downstream handlers are not intercepted.
func Attribution(opts attribution.Options) gin.HandlerFunc {
	return func(c *gin.Context) {
		rec := attribution.Resolve(c.Request, opts)
		if !rec.Attributed() {
			c.Next()
			return
		}

		setAttribution(c, rec)

		ctx := attribution.NewContext(c.Request.Context(), rec)
		ctx = logging.With(ctx,
			slog.String("utm_source", rec.Source),
			slog.String("utm_medium", rec.Medium),
			slog.String("utm_campaign", rec.Campaign),
			slog.String("utm_from", rec.From),
		)
		c.Request = c.Request.WithContext(ctx)

		if span := trace.SpanFromContext(ctx); span.IsRecording() {
			span.SetAttributes(
				attribute.String(attribution.KeySource, rec.Source),
				attribute.String(attribution.KeyMedium, rec.Medium),
				attribute.String(attribution.KeyCampaign, rec.Campaign),
				attribute.String(attribution.KeyFrom, rec.From),
				attribute.String(attribution.KeyLanding, rec.LandingPage),
			)
		}

		logging.FromContext(ctx).Log(ctx, logging.LevelTrace, "attribution resolved",
			slog.String("utm_term", rec.Term),
			slog.String("utm_content", rec.Content),
			slog.Int64("utm_time", rec.Time),
			slog.String("utm_lp", rec.LandingPage),
		)

		w := &cookieWriter{ResponseWriter: c.Writer}
		w.bake = func() {
			attribution.Bake(w.ResponseWriter.Header(), rec, opts)
		}

		c.Writer = w

		completed := false
		defer func() {
			if !completed {
				// Downstream panicked: the recovered response carries no cookies.
				w.baked = true
			}
			c.Writer = w.ResponseWriter
		}()

		c.Next()
		completed = true

		// Nothing written yet: gin sends the headers after the chain returns.
		w.flushCookies()
	}
}

// setAttribution stores every field of rec under its utm.* key.
func setAttribution(c *gin.Context, rec domain.Attribution) {
	c.Set(attribution.KeySource, rec.Source)
	c.Set(attribution.KeyMedium, rec.Medium)
	c.Set(attribution.KeyTerm, rec.Term)
	c.Set(attribution.KeyContent, rec.Content)
	c.Set(attribution.KeyCampaign, rec.Campaign)
	c.Set(attribution.KeyFrom, rec.From)
	c.Set(attribution.KeyTime, rec.Time)
	c.Set(attribution.KeyLanding, rec.LandingPage)
}

// GetAttribution reassembles the record stored by the Attribution middleware.
// Returns false if the request was not attributed.
func GetAttribution(c *gin.Context) (domain.Attribution, bool) {
	if _, exists := c.Get(attribution.KeyTime); !exists {
		return domain.Attribution{}, false
	}

	return domain.Attribution{
		Source:      c.GetString(attribution.KeySource),
		Medium:      c.GetString(attribution.KeyMedium),
		Term:        c.GetString(attribution.KeyTerm),
		Content:     c.GetString(attribution.KeyContent),
		Campaign:    c.GetString(attribution.KeyCampaign),
		From:        c.GetString(attribution.KeyFrom),
		Time:        c.GetInt64(attribution.KeyTime),
		LandingPage: c.GetString(attribution.KeyLanding),
	}, true
}
