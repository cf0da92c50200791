package db

import (
	"event_ticketing/internal/domain" // Importing domain models

	"github.com/sirupsen/logrus" // Logging library
	"gorm.io/gorm"               // GORM ORM library
)

// Models lists every table managed by AutoMigrate
var Models = []any{&domain.User{}, &domain.Wallet{}, &domain.Event{}, &domain.Ticket{}}

// Migrate creates or updates the schema. The unique index on wallets.user_id
// is what makes wallet upserts safe.
func Migrate(db *gorm.DB) error {
	// AutoMigrate will create tables, missing foreign keys, constraints, columns and indexes
	if err := db.AutoMigrate(Models...); err != nil {
		return err
	}
	logrus.Info("Migration completed.") // Log successful migration
	return nil
}
