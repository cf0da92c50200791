package repository

import (
	"context"                         // Request-scoped queries
	"errors"                          // Error matching
	"event_ticketing/internal/domain" // User model and errors

	"gorm.io/gorm" // GORM ORM library
)

// UserRepository stores users in MySQL through GORM
type UserRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a user repository
func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Create inserts a new user. A duplicate email yields domain.ErrEmailTaken;
// the handle must be opened with TranslateError so MySQL 1062 arrives as
// gorm.ErrDuplicatedKey.
func (r *UserRepository) Create(ctx context.Context, user *domain.User) error {
	err := r.db.WithContext(ctx).Create(user).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return domain.NewDomainError(domain.ErrCodeConflict, domain.ErrEmailTaken.Message, err)
	}
	return err
}

// FindByEmail returns domain.ErrUserNotFound when no user has that email
func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	var user domain.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		return nil, notFound(err, domain.ErrUserNotFound)
	}
	return &user, nil
}

// FindByID returns domain.ErrUserNotFound when no user has that id
func (r *UserRepository) FindByID(ctx context.Context, id string) (*domain.User, error) {
	var user domain.User
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&user).Error; err != nil {
		return nil, notFound(err, domain.ErrUserNotFound)
	}
	return &user, nil
}

// Save writes every field of an in-memory user record
func (r *UserRepository) Save(ctx context.Context, user *domain.User) error {
	return r.db.WithContext(ctx).Save(user).Error
}

// ConsumeOTP clears a matching pending code in one conditional update
func (r *UserRepository) ConsumeOTP(ctx context.Context, userID, code string) (bool, error) {
	res := r.db.WithContext(ctx).Model(&domain.User{}).
		Where("id = ? AND otp = ?", userID, code).
		Updates(map[string]any{"otp": nil, "otp_expiry": nil, "is_verified": true})
	if res.Error != nil { // Query failed
		return false, res.Error
	}
	return res.RowsAffected == 1, nil // Zero rows means the code was already used or replaced
}

// notFound converts gorm.ErrRecordNotFound into the given domain error
func notFound(err error, target *domain.DomainError) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return target
	}
	return err
}
