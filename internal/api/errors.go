package api

import (
	"errors"                          // Error matching
	"event_ticketing/internal/domain" // Domain error codes
	"net/http"                        // HTTP status codes

	"github.com/gin-gonic/gin" // Gin web framework
)

// statusFor maps a domain error code to an HTTP status
func statusFor(code string) int {
	switch code {
	case domain.ErrCodeValidation:
		return http.StatusBadRequest
	case domain.ErrCodeNotFound:
		return http.StatusNotFound
	case domain.ErrCodeUnauthorized:
		return http.StatusUnauthorized
	case domain.ErrCodeForbidden:
		return http.StatusForbidden
	case domain.ErrCodeConflict:
		return http.StatusUnprocessableEntity
	case domain.ErrCodeRateLimited:
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}

// respondError writes err as {"error", "code"}. Errors that are not
// DomainErrors are reported as a generic internal error.
func respondError(c *gin.Context, err error) {
	var de *domain.DomainError
	if !errors.As(err, &de) {
		de = &domain.DomainError{Code: domain.ErrCodeInternal, Message: "Internal server error"}
	}
	c.JSON(statusFor(de.Code), gin.H{"error": de.Message, "code": de.Code})
}

// badRequest writes a 400 validation error
func badRequest(c *gin.Context, msg string) {
	respondError(c, domain.NewValidationError(msg))
}
