package attribution

import (
	"context"

	"github.com/NestAway/go-utm/internal/domain"
)

type ctxKey struct{}

// NewContext returns a copy of ctx carrying a.
func NewContext(ctx context.Context, a domain.Attribution) context.Context {
	return context.WithValue(ctx, ctxKey{}, a)
}

// FromContext returns the attribution stored in ctx, if any.
// Returns false if not set or if ctx is nil.
func FromContext(ctx context.Context) (domain.Attribution, bool) {
	if ctx == nil {
		return domain.Attribution{}, false
	}

	a, ok := ctx.Value(ctxKey{}).(domain.Attribution)

	return a, ok
}
