package domain

import (
	"context" // Context for store operations
	"time"    // OTP expiry timestamps

	"github.com/google/uuid" // Opaque user identifiers
	"gorm.io/gorm"           // GORM hooks
)

// User Model
type User struct {
	ID         string     `gorm:"primaryKey;size:36" json:"_id"`              // Opaque UUID identifier
	Name       string     `json:"name"`                                       // Display name
	Email      string     `gorm:"uniqueIndex;size:255;not null" json:"email"` // Unique email
	Password   string     `gorm:"not null" json:"-"`                          // Hashed password
	OTP        *string    `gorm:"size:6" json:"-"`                            // Pending one-time code
	OTPExpiry  *time.Time `json:"-"`                                          // Expiry of the pending code
	IsVerified bool       `gorm:"not null;default:false" json:"isVerified"`   // Set once an OTP has been consumed
	CreatedAt  time.Time  `json:"createdAt"`                                  // Registration time
}

// BeforeCreate assigns a UUID when the caller did not
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return nil
}

// UserStore is the persistence collaborator for user records
type UserStore interface {
	Create(ctx context.Context, user *User) error
	FindByEmail(ctx context.Context, email string) (*User, error)
	FindByID(ctx context.Context, id string) (*User, error)
	Save(ctx context.Context, user *User) error
	// ConsumeOTP clears the pending code and marks the user verified only if
	// code is still the stored one. It reports whether a row was updated.
	ConsumeOTP(ctx context.Context, userID, code string) (bool, error)
}
