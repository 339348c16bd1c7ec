package domain

import "time"

// DirectOrigin is the origin recorded when a visitor arrived without a
// referrer and no earlier origin is known.
const DirectOrigin = "Direct"

// Attribution is the marketing attribution of a single request.
// Empty strings mean the value was not observed.
type Attribution struct {
	Source   string
	Medium   string
	Term     string
	Content  string
	Campaign string

	// From is the referring origin, or DirectOrigin.
	From string

	// Time is the UNIX time in seconds of the most recent capture.
	Time int64

	// LandingPage is the request path the record was captured on.
	LandingPage string
}

// Attributed reports whether the record carries a source or an origin.
// Only attributed records are exposed to handlers and persisted.
func (a Attribution) Attributed() bool {
	return a.Source != "" || a.From != ""
}

// IsDirect reports whether the visitor arrived without a known referrer.
func (a Attribution) IsDirect() bool {
	return a.From == DirectOrigin
}

// CapturedAt returns Time as a time.Time, or the zero time if unset.
func (a Attribution) CapturedAt() time.Time {
	if a.Time == 0 {
		return time.Time{}
	}

	return time.Unix(a.Time, 0).UTC()
}
