package middleware

import (
	"event_ticketing/internal/domain" // Error codes
	"event_ticketing/internal/utils"  // JWT utility functions
	"net/http"                        // HTTP status codes
	"strings"                         // String manipulation

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logging library
)

// TokenCookie is the name of the session cookie set on login
const TokenCookie = "token"

// Context keys set by JWTAuthMiddleware
const (
	ContextUserID = "userID"
	ContextClaims = "claims"
)

// TokenFromRequest returns the session token from the cookie or a Bearer header
func TokenFromRequest(c *gin.Context) string {
	if token, err := c.Cookie(TokenCookie); err == nil && token != "" {
		return token
	}
	authHeader := c.GetHeader("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimPrefix(authHeader, "Bearer ")
	}
	return ""
}

// JWTAuthMiddleware validates session tokens and extracts user information
func JWTAuthMiddleware(secret string, denylist utils.TokenDenylist) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr := TokenFromRequest(c)
		if tokenStr == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing session token", "code": domain.ErrCodeUnauthorized})
			return
		}
		claims, err := utils.ParseJWT(tokenStr, secret) // Parse the JWT token
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token", "code": domain.ErrCodeUnauthorized})
			return
		}
		// Reject tokens revoked by logout
		revoked, err := denylist.IsRevoked(c.Request.Context(), claims.ID)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"user_id": claims.UserID,
				"error":   err.Error(),
			}).Error("Token denylist lookup failed")
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to verify session", "code": domain.ErrCodeInternal})
			return
		}
		if revoked {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Session has been logged out", "code": domain.ErrCodeUnauthorized})
			return
		}
		c.Set(ContextUserID, claims.UserID) // Store userID in context
		c.Set(ContextClaims, claims)        // Store claims for logout and profile
		c.Next()
	}
}
