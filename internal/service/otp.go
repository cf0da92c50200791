package service

import (
	"context"
	"crypto/rand"
	"event_ticketing/internal/domain"
	"event_ticketing/internal/mailer"
	"math/big"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"
)

const (
	otpMin = 100000 // Smallest 6-digit code
	otpMax = 999999 // Largest 6-digit code

	// DefaultOTPTTL is how long an issued code stays valid
	DefaultOTPTTL = 10 * time.Minute
)

// OTPManager issues and checks numeric one-time codes
type OTPManager struct {
	users  domain.UserStore
	mailer domain.Mailer
	ttl    time.Duration
	now    func() time.Time
}

// NewOTPManager creates a manager; a non-positive ttl falls back to DefaultOTPTTL
func NewOTPManager(users domain.UserStore, m domain.Mailer, ttl time.Duration) *OTPManager {
	if ttl <= 0 {
		ttl = DefaultOTPTTL
	}
	return &OTPManager{users: users, mailer: m, ttl: ttl, now: time.Now}
}

// GenerateOTP returns a 6-digit code drawn uniformly from [100000, 999999]
func GenerateOTP() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(otpMax-otpMin+1))
	if err != nil {
		return "", err
	}
	return strconv.FormatInt(n.Int64()+otpMin, 10), nil
}

// Issue stores a fresh code on user and mails it. The persisted code is kept
// when delivery fails; a later Issue overwrites it.
func (m *OTPManager) Issue(ctx context.Context, user *domain.User) error {
	code, err := GenerateOTP()
	if err != nil {
		return domain.NewDomainError(domain.ErrCodeInternal, "Failed to generate OTP", err)
	}
	body, err := mailer.OTPEmail(code, m.ttl) // Rendered before the code is persisted
	if err != nil {
		return domain.NewDomainError(domain.ErrCodeInternal, "Failed to render OTP email", err)
	}
	expiry := m.now().Add(m.ttl)
	user.OTP = &code
	user.OTPExpiry = &expiry

	if err := m.users.Save(ctx, user); err != nil {
		return domain.NewPersistenceError("Failed to save OTP", err)
	}

	if !m.mailer.Send(user.Email, mailer.OTPSubject, body) {
		return domain.NewDeliveryError("Failed to send OTP")
	}

	logrus.WithFields(logrus.Fields{
		"user_id":    user.ID,
		"expires_at": expiry.Format(time.RFC3339),
	}).Info("OTP issued")
	return nil
}

// Validate checks provided against the stored code and expiry using the
// manager's clock
func (m *OTPManager) Validate(stored *string, provided string, expiry *time.Time) bool {
	return IsOTPValid(stored, provided, expiry, m.now())
}

// IsOTPValid reports whether provided matches stored exactly and now is not
// after expiry. A code is still valid at the instant of expiry.
func IsOTPValid(stored *string, provided string, expiry *time.Time, now time.Time) bool {
	if stored == nil || expiry == nil {
		return false
	}
	if *stored != provided {
		return false
	}
	return !now.After(*expiry)
}
