package repository

import (
	"context" // Request-scoped cancellation
	"event_ticketing/internal/domain"

	"gorm.io/gorm"        // GORM ORM library
	"gorm.io/gorm/clause" // Upsert clauses
)

// WalletRepository stores wallets in MySQL through GORM
type WalletRepository struct {
	db *gorm.DB
}

// NewWalletRepository creates a wallet repository
func NewWalletRepository(db *gorm.DB) *WalletRepository {
	return &WalletRepository{db: db}
}

// FindOrCreate inserts a zero-balance wallet unless one already exists for
// userID, then reads it back. The unique index on user_id makes the insert a
// no-op for existing wallets, so concurrent first reads never duplicate.
func (r *WalletRepository) FindOrCreate(ctx context.Context, userID string) (*domain.Wallet, error) {
	wallet := domain.Wallet{UserID: userID, Balance: 0}
	var stored domain.Wallet // Fresh value, the insert may leave a stale ID on wallet
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// INSERT ... ON DUPLICATE KEY UPDATE id = id
		if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&wallet).Error; err != nil {
			return err
		}
		return tx.Where("user_id = ?", userID).First(&stored).Error
	})
	if err != nil {
		return nil, err
	}
	return &stored, nil
}

// Increment adds delta to the wallet balance in a single upsert statement,
// inserting the wallet with balance delta when none exists. The row is read
// back inside the same transaction so the caller sees its own increment.
func (r *WalletRepository) Increment(ctx context.Context, userID string, delta float64) (*domain.Wallet, error) {
	wallet := domain.Wallet{UserID: userID, Balance: delta}
	var stored domain.Wallet
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		upsert := clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}},
			DoUpdates: clause.Assignments(map[string]any{"balance": gorm.Expr("balance + ?", delta)}),
		}
		if err := tx.Clauses(upsert).Create(&wallet).Error; err != nil {
			return err
		}
		return tx.Where("user_id = ?", userID).First(&stored).Error
	})
	if err != nil {
		return nil, err
	}
	return &stored, nil
}
