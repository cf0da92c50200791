package api

import (
	"context"                         // Request context
	"event_ticketing/internal/domain" // Importing domain models
	"net/http"                        // HTTP status codes

	"github.com/gin-gonic/gin" // Gin web framework
)

// WalletLedger is the wallet core used by the handlers
type WalletLedger interface {
	GetOrCreate(ctx context.Context, userID string) (*domain.Wallet, error)
	ApplyDelta(ctx context.Context, userID string, amount float64) (*domain.Wallet, error)
}

// WalletUpdateRequest represents a balance change. Amount is signed; a JSON
// string or a missing value fails binding.
type WalletUpdateRequest struct {
	Amount *float64 `json:"amount" binding:"required,finite"` // Signed delta
}

// GetWalletHandler returns the wallet for :userId, creating it on first access
func GetWalletHandler(ledger WalletLedger) gin.HandlerFunc {
	return func(c *gin.Context) {
		wallet, err := ledger.GetOrCreate(c.Request.Context(), c.Param("userId"))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, wallet) // Return wallet info
	}
}

// UpdateWalletHandler applies a signed amount to the wallet for :userId
func UpdateWalletHandler(ledger WalletLedger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req WalletUpdateRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, "Invalid amount")
			return
		}
		wallet, err := ledger.ApplyDelta(c.Request.Context(), c.Param("userId"), *req.Amount)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, wallet) // Return updated wallet
	}
}
