package service

import (
	"context"
	"event_ticketing/internal/domain"
	"math"
	"strings"

	"github.com/sirupsen/logrus"
)

// Ledger applies balance changes to per-user wallets
type Ledger struct {
	wallets domain.WalletStore
}

// NewLedger creates a ledger over the given store
func NewLedger(wallets domain.WalletStore) *Ledger {
	return &Ledger{wallets: wallets}
}

// GetOrCreate returns the wallet for userID, creating it with balance 0 on
// first access
func (l *Ledger) GetOrCreate(ctx context.Context, userID string) (*domain.Wallet, error) {
	if err := validateUserID(userID); err != nil {
		return nil, err
	}
	wallet, err := l.wallets.FindOrCreate(ctx, userID)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"user_id": userID,
			"error":   err.Error(),
		}).Error("Wallet lookup failed")
		return nil, domain.NewPersistenceError("Failed to load wallet", err)
	}
	return wallet, nil
}

// ApplyDelta adds amount to the wallet balance atomically. Negative amounts
// are allowed and the balance has no lower bound.
func (l *Ledger) ApplyDelta(ctx context.Context, userID string, amount float64) (*domain.Wallet, error) {
	if err := validateUserID(userID); err != nil {
		return nil, err
	}
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return nil, domain.NewValidationError("Invalid amount")
	}
	wallet, err := l.wallets.Increment(ctx, userID, amount)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"user_id": userID,
			"amount":  amount,
			"error":   err.Error(),
		}).Error("Wallet update failed")
		return nil, domain.NewPersistenceError("Failed to update wallet", err)
	}
	logrus.WithFields(logrus.Fields{
		"user_id": userID,
		"amount":  amount,
		"balance": wallet.Balance,
	}).Info("Wallet updated")
	return wallet, nil
}

func validateUserID(userID string) error {
	if strings.TrimSpace(userID) == "" {
		return domain.NewValidationError("Missing user id")
	}
	return nil
}
