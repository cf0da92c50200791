package middleware

import (
	"errors"                          // Error matching
	"event_ticketing/internal/domain" // Importing domain models
	"net/http"                        // HTTP status codes

	"github.com/gin-gonic/gin" // Gin web framework
)

// VerifiedOnlyMiddleware loads the user on each request and requires a
// completed OTP verification. Must run after JWTAuthMiddleware.
func VerifiedOnlyMiddleware(users domain.UserStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString(ContextUserID) // Get userID from context
		if userID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized", "code": domain.ErrCodeUnauthorized})
			return
		}
		user, err := users.FindByID(c.Request.Context(), userID)
		if errors.Is(err, domain.ErrUserNotFound) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized", "code": domain.ErrCodeUnauthorized})
			return
		}
		if err != nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to load user", "code": domain.ErrCodePersistence})
			return
		}
		if !user.IsVerified {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Email verification required", "code": domain.ErrCodeForbidden})
			return
		}
		c.Next()
	}
}
