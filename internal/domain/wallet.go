package domain

import "context"

// Wallet Model
type Wallet struct {
	ID      uint    `gorm:"primaryKey" json:"_id"`                      // Primary key
	UserID  string  `gorm:"uniqueIndex;size:64;not null" json:"userId"` // One wallet per user
	Balance float64 `gorm:"not null;default:0" json:"balance"`          // Signed balance
}

// WalletStore is the persistence collaborator for wallets. Both methods must
// be single atomic statements against the store, never read-modify-write.
type WalletStore interface {
	FindOrCreate(ctx context.Context, userID string) (*Wallet, error)
	Increment(ctx context.Context, userID string, delta float64) (*Wallet, error)
}
