package api

import (
	"context"                             // Request context
	"errors"                              // Error matching
	"event_ticketing/internal/domain"     // Importing domain models
	"event_ticketing/internal/middleware" // Session cookie lookup
	"event_ticketing/internal/utils"      // Utility functions
	"net/http"                            // HTTP status codes
	"strings"                             // String manipulation
	"time"                                // OTP expiry

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logging library
	"golang.org/x/crypto/bcrypt" // Password hashing
)

// OTPService issues and checks one-time codes
type OTPService interface {
	Issue(ctx context.Context, user *domain.User) error
	Validate(stored *string, provided string, expiry *time.Time) bool
}

// RegisterRequest represents a new account
type RegisterRequest struct {
	Name     string `json:"name" binding:"required,max=100"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6,max=72"` // bcrypt reads at most 72 bytes
}

// LoginRequest represents a password login
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// SendOTPRequest asks for a code to be mailed
type SendOTPRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// VerifyOTPRequest submits a mailed code
type VerifyOTPRequest struct {
	Email string `json:"email" binding:"required,email"`
	OTP   string `json:"otp" binding:"required"`
}

// normalizeEmail lowercases the address so lookups are case-insensitive
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// RegisterHandler creates a user with a bcrypt password hash
func RegisterHandler(users domain.UserStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req RegisterRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, "Invalid request")
			return
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			respondError(c, domain.NewDomainError(domain.ErrCodeInternal, "Failed to hash password", err))
			return
		}
		user := domain.User{Name: strings.TrimSpace(req.Name), Email: normalizeEmail(req.Email), Password: string(hash)}
		if err := users.Create(c.Request.Context(), &user); err != nil {
			if domain.CodeOf(err) != domain.ErrCodeConflict {
				err = domain.NewDomainError(domain.ErrCodeConflict, "Failed to register user", err)
			}
			logrus.WithFields(logrus.Fields{"email": user.Email, "error": err.Error()}).Warn("Registration failed")
			respondError(c, err)
			return
		}
		logrus.WithFields(logrus.Fields{"user_id": user.ID}).Info("User registered")
		c.JSON(http.StatusOK, user)
	}
}

// LoginHandler authenticates with a password and starts a session
func LoginHandler(users domain.UserStore, sessions *Sessions) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req LoginRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, "Invalid request")
			return
		}
		user, err := users.FindByEmail(c.Request.Context(), normalizeEmail(req.Email))
		if err != nil {
			respondError(c, persistenceUnlessDomain(err, "Failed to load user"))
			return
		}
		// Compare provided password with stored hash
		if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
			respondError(c, domain.NewDomainError(domain.ErrCodeUnauthorized, "Invalid password", nil))
			return
		}
		if err := sessions.Start(c, user); err != nil {
			respondError(c, domain.NewDomainError(domain.ErrCodeInternal, "Failed to generate token", err))
			return
		}
		c.JSON(http.StatusOK, user)
	}
}

// SendOTPHandler issues a code for an existing user and mails it
func SendOTPHandler(users domain.UserStore, otp OTPService, cooldown utils.Cooldown) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req SendOTPRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, "Invalid request")
			return
		}
		ctx := c.Request.Context()
		email := normalizeEmail(req.Email)
		user, err := users.FindByEmail(ctx, email)
		if err != nil {
			respondError(c, persistenceUnlessDomain(err, "Failed to send OTP"))
			return
		}
		allowed, err := cooldown.Allow(ctx, email)
		if err != nil {
			// Throttling is best effort, a Redis outage must not block sign-in
			logrus.WithFields(logrus.Fields{"email": email, "error": err.Error()}).Warn("OTP cooldown check failed")
			allowed = true
		}
		if !allowed {
			respondError(c, domain.ErrOTPCooldown)
			return
		}
		if err := otp.Issue(ctx, user); err != nil {
			logrus.WithFields(logrus.Fields{
				"user_id": user.ID,
				"code":    domain.CodeOf(err),
				"error":   err.Error(),
			}).Error("Send OTP failed")
			// Free the slot so the user can retry right away
			if relErr := cooldown.Release(ctx, email); relErr != nil {
				logrus.WithFields(logrus.Fields{"email": email, "error": relErr.Error()}).Warn("OTP cooldown release failed")
			}
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "OTP sent successfully"})
	}
}

// VerifyOTPHandler checks a code, consumes it and starts a session
func VerifyOTPHandler(users domain.UserStore, otp OTPService, sessions *Sessions) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req VerifyOTPRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, "Invalid request")
			return
		}
		ctx := c.Request.Context()
		user, err := users.FindByEmail(ctx, normalizeEmail(req.Email))
		if err != nil {
			respondError(c, persistenceUnlessDomain(err, "Failed to verify OTP"))
			return
		}
		if !otp.Validate(user.OTP, req.OTP, user.OTPExpiry) {
			respondError(c, domain.ErrInvalidOTP)
			return
		}
		// Conditional clear, a concurrent verification of the same code loses here
		consumed, err := users.ConsumeOTP(ctx, user.ID, req.OTP)
		if err != nil {
			respondError(c, domain.NewPersistenceError("Failed to verify OTP", err))
			return
		}
		if !consumed {
			respondError(c, domain.ErrInvalidOTP)
			return
		}
		user.OTP, user.OTPExpiry, user.IsVerified = nil, nil, true
		if err := sessions.Start(c, user); err != nil {
			respondError(c, domain.NewDomainError(domain.ErrCodeInternal, "Failed to generate token", err))
			return
		}
		logrus.WithFields(logrus.Fields{"user_id": user.ID}).Info("OTP verified")
		c.JSON(http.StatusOK, user)
	}
}

// ProfileHandler returns the signed-in user, or null without a session
func ProfileHandler(users domain.UserStore, sessions *Sessions) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr := middleware.TokenFromRequest(c)
		if tokenStr == "" {
			c.JSON(http.StatusOK, nil)
			return
		}
		claims, err := utils.ParseJWT(tokenStr, sessions.Secret)
		if err != nil {
			respondError(c, domain.NewDomainError(domain.ErrCodeUnauthorized, "Invalid or expired token", err))
			return
		}
		// Same fail-closed rule as JWTAuthMiddleware
		revoked, err := sessions.Denylist.IsRevoked(c.Request.Context(), claims.ID)
		if err != nil {
			logrus.WithFields(logrus.Fields{"user_id": claims.UserID, "error": err.Error()}).Error("Token denylist lookup failed")
			respondError(c, domain.NewDomainError(domain.ErrCodeInternal, "Failed to verify session", err))
			return
		}
		if revoked {
			c.JSON(http.StatusOK, nil)
			return
		}
		user, err := users.FindByID(c.Request.Context(), claims.UserID)
		if err != nil {
			respondError(c, persistenceUnlessDomain(err, "Failed to load profile"))
			return
		}
		c.JSON(http.StatusOK, gin.H{"name": user.Name, "email": user.Email, "_id": user.ID})
	}
}

// LogoutHandler revokes the session token and clears the cookie
func LogoutHandler(sessions *Sessions) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessions.End(c)
		c.JSON(http.StatusOK, true)
	}
}

// persistenceUnlessDomain keeps DomainErrors such as not-found and wraps
// anything else as a persistence failure
func persistenceUnlessDomain(err error, msg string) error {
	var de *domain.DomainError
	if errors.As(err, &de) {
		return err
	}
	return domain.NewPersistenceError(msg, err)
}
