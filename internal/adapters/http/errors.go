package http

import (
	"github.com/gin-gonic/gin"

	"github.com/NestAway/go-utm/internal/adapters/http/dto"
)

// RespondWithErrorCode writes an error response with a specific error code.
// Use this for adapter-level errors that don't originate from domain errors.
func RespondWithErrorCode(c *gin.Context, code, message string) {
	errResp := dto.NewErrorResponse(code, message).WithTraceID(dto.GetTraceID(c))
	c.JSON(dto.HTTPStatusFromCode(code), errResp)
}

// notFound answers unmatched routes. Cookies set by the Attribution
// middleware are still sent.
func notFound(c *gin.Context) {
	RespondWithErrorCode(c, dto.ErrorCodeNotFound, "route not found")
}
