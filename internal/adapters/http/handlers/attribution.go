package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/NestAway/go-utm/internal/adapters/http/dto"
	"github.com/NestAway/go-utm/internal/adapters/http/middleware"
	"github.com/NestAway/go-utm/internal/domain"
)

// AttributionHandler exposes the attribution resolved for the current request.
type AttributionHandler struct{}

// NewAttributionHandler creates a new attribution handler.
func NewAttributionHandler() *AttributionHandler {
	return &AttributionHandler{}
}

// GetAttribution handles GET /api/v1/attribution.
// Returns the record set by the Attribution middleware, or 404 when the
// request carried no attribution.
//
// @Summary Get the current attribution
// @Tags attribution
// @Produce json
// @Success 200 {object} dto.AttributionResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/v1/attribution [get]
func (h *AttributionHandler) GetAttribution(c *gin.Context) {
	rec, ok := middleware.GetAttribution(c)
	if !ok {
		dto.HandleError(c, domain.NewNotFoundError("attribution", ""))
		return
	}

	c.JSON(http.StatusOK, dto.NewAttributionResponse(rec))
}

// RegisterAttributionRoutes registers attribution routes on rg.
func (h *AttributionHandler) RegisterAttributionRoutes(rg *gin.RouterGroup) {
	rg.GET("/attribution", h.GetAttribution)
}
