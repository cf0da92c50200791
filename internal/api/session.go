package api

import (
	"event_ticketing/internal/domain"
	"event_ticketing/internal/middleware"
	"event_ticketing/internal/utils"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// Sessions signs session tokens and manages the token cookie
type Sessions struct {
	Secret   string              // JWT signing key
	TTL      time.Duration       // Token lifetime
	Secure   bool                // Cookie Secure flag, SameSite=None requires it
	Domain   string              // Cookie domain
	Denylist utils.TokenDenylist // Revoked tokens
}

// Start signs a token for user and sets it as an httpOnly cookie. The token
// is generated before the cookie is written.
func (s *Sessions) Start(c *gin.Context, user *domain.User) error {
	token, err := utils.GenerateJWT(user.ID, user.Email, s.Secret, s.TTL)
	if err != nil {
		return err
	}
	s.setCookie(c, token, int(s.TTL.Seconds()))
	return nil
}

// End revokes the request's token, if any, and clears the cookie
func (s *Sessions) End(c *gin.Context) {
	if tokenStr := middleware.TokenFromRequest(c); tokenStr != "" {
		if claims, err := utils.ParseJWT(tokenStr, s.Secret); err == nil {
			if err := s.Denylist.Revoke(c.Request.Context(), claims.ID, claims.RemainingTTL()); err != nil {
				logrus.WithFields(logrus.Fields{
					"user_id": claims.UserID,
					"error":   err.Error(),
				}).Warn("Failed to revoke token on logout")
			}
		}
	}
	s.setCookie(c, "", -1)
}

func (s *Sessions) setCookie(c *gin.Context, value string, maxAge int) {
	if s.Secure {
		c.SetSameSite(http.SameSiteNoneMode) // Cross-site frontend
	} else {
		c.SetSameSite(http.SameSiteLaxMode)
	}
	c.SetCookie(middleware.TokenCookie, value, maxAge, "/", s.Domain, s.Secure, true)
}
