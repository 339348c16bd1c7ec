package attribution

import "time"

// DefaultTTL is the cookie lifetime used when none is configured.
const DefaultTTL = 30 * 24 * time.Hour

// Options controls how attribution cookies are baked.
type Options struct {
	// TTL is how long baked cookies live on the client.
	TTL time.Duration

	// Domain scopes the cookies. Empty leaves the browser default.
	Domain string

	// Overwrite is accepted for configuration compatibility. Resolution
	// currently refreshes every field on every attributed request whatever
	// its value.
	Overwrite bool

	// Now returns the current time. Defaults to time.Now.
	Now func() time.Time
}

// Option configures Options.
type Option func(*Options)

// WithTTL sets the cookie lifetime. Non-positive values keep the default.
func WithTTL(ttl time.Duration) Option {
	return func(o *Options) {
		if ttl > 0 {
			o.TTL = ttl
		}
	}
}

// WithDomain sets the cookie domain.
func WithDomain(domain string) Option {
	return func(o *Options) {
		o.Domain = domain
	}
}

// WithOverwrite sets the Overwrite flag.
func WithOverwrite(overwrite bool) Option {
	return func(o *Options) {
		o.Overwrite = overwrite
	}
}

// WithClock replaces the time source, mostly for tests.
func WithClock(now func() time.Time) Option {
	return func(o *Options) {
		if now != nil {
			o.Now = now
		}
	}
}

// NewOptions returns Options with defaults applied, then opts in order.
func NewOptions(opts ...Option) Options {
	o := Options{
		TTL:       DefaultTTL,
		Overwrite: true,
		Now:       time.Now,
	}

	for _, opt := range opts {
		opt(&o)
	}

	return o
}

func (o Options) now() time.Time {
	if o.Now == nil {
		return time.Now()
	}

	return o.Now()
}

func (o Options) ttl() time.Duration {
	if o.TTL <= 0 {
		return DefaultTTL
	}

	return o.TTL
}
