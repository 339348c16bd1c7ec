package dto

import (
	"time"

	"github.com/NestAway/go-utm/internal/domain"
)

// AttributionResponse is the JSON view of the attribution of a request.
type AttributionResponse struct {
	Source      string    `json:"source,omitempty"`
	Medium      string    `json:"medium,omitempty"`
	Term        string    `json:"term,omitempty"`
	Content     string    `json:"content,omitempty"`
	Campaign    string    `json:"campaign,omitempty"`
	From        string    `json:"from"`
	Direct      bool      `json:"direct"`
	Time        int64     `json:"time"`
	CapturedAt  time.Time `json:"capturedAt"`
	LandingPage string    `json:"landingPage"`
}

// NewAttributionResponse converts a domain record to its response form.
func NewAttributionResponse(a domain.Attribution) AttributionResponse {
	return AttributionResponse{
		Source:      a.Source,
		Medium:      a.Medium,
		Term:        a.Term,
		Content:     a.Content,
		Campaign:    a.Campaign,
		From:        a.From,
		Direct:      a.IsDirect(),
		Time:        a.Time,
		CapturedAt:  a.CapturedAt(),
		LandingPage: a.LandingPage,
	}
}
