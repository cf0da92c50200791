package api

import (
	"event_ticketing/internal/domain"     // Store interfaces
	"event_ticketing/internal/middleware" // Auth middleware
	"event_ticketing/internal/utils"      // Cache, cooldown, validators
	"net/http"                            // HTTP status codes
	"time"                                // CORS max age

	"github.com/gin-contrib/cors" // CORS middleware
	"github.com/gin-gonic/gin"    // Gin web framework
)

// Dependencies collects everything the routes need
type Dependencies struct {
	Users       domain.UserStore
	Events      domain.EventStore
	Tickets     domain.TicketStore
	Ledger      WalletLedger
	OTP         OTPService
	Sessions    *Sessions
	Cache       utils.Cache
	OTPCooldown utils.Cooldown
	UploadDir   string
	CORSOrigins []string
}

// NewRouter builds the gin engine with all routes registered
func NewRouter(deps Dependencies) (*gin.Engine, error) {
	if err := utils.RegisterValidators(); err != nil {
		return nil, err
	}

	r := gin.Default() // Gin router instance
	r.Use(cors.New(cors.Config{
		AllowOrigins:     deps.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true, // Session cookie
		MaxAge:           12 * time.Hour,
	}))

	// Uploaded event images
	r.Static("/api/uploads", deps.UploadDir)

	r.GET("/test", func(c *gin.Context) {
		c.JSON(http.StatusOK, "test ok")
	})

	// Auth routes
	r.POST("/register", RegisterHandler(deps.Users))
	r.POST("/login", LoginHandler(deps.Users, deps.Sessions))
	r.POST("/send-otp", SendOTPHandler(deps.Users, deps.OTP, deps.OTPCooldown))
	r.POST("/verify-otp", VerifyOTPHandler(deps.Users, deps.OTP, deps.Sessions))
	r.GET("/profile", ProfileHandler(deps.Users, deps.Sessions))
	r.POST("/logout", LogoutHandler(deps.Sessions))

	// Wallet routes
	walletGroup := r.Group("/wallet")
	walletGroup.GET("/:userId", GetWalletHandler(deps.Ledger))
	walletGroup.POST("/:userId", UpdateWalletHandler(deps.Ledger))

	// Event routes, creation requires a verified session
	requireVerified := []gin.HandlerFunc{
		middleware.JWTAuthMiddleware(deps.Sessions.Secret, deps.Sessions.Denylist),
		middleware.VerifiedOnlyMiddleware(deps.Users),
	}
	r.POST("/createEvent", append(requireVerified, CreateEventHandler(deps.Events, deps.Cache, deps.UploadDir))...)
	r.GET("/createEvent", ListEventsHandler(deps.Events, deps.Cache))
	r.GET("/events", ListEventsHandler(deps.Events, deps.Cache))
	r.GET("/event/:id", GetEventHandler(deps.Events))
	r.POST("/event/:id", LikeEventHandler(deps.Events, deps.Cache))
	r.GET("/event/:id/ordersummary", GetEventHandler(deps.Events))
	r.GET("/event/:id/ordersummary/paymentsummary", GetEventHandler(deps.Events))

	// Ticket routes
	r.POST("/tickets", CreateTicketHandler(deps.Tickets))
	r.GET("/tickets/:id", GetTicketHandler(deps.Tickets))
	r.GET("/tickets/user/:userId", ListUserTicketsHandler(deps.Tickets))
	r.DELETE("/tickets/:id", DeleteTicketHandler(deps.Tickets))

	return r, nil
}
