package service

import (
	"context"
	"errors"
	"regexp"
	"strconv"
	"testing"
	"time"

	"event_ticketing/internal/domain"
	"event_ticketing/internal/mailer"
	"event_ticketing/internal/mocks"
	"event_ticketing/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var sixDigits = regexp.MustCompile(`^[0-9]{6}$`)

func strPtr(s string) *string { return &s }

func timePtr(t time.Time) *time.Time { return &t }

func TestGenerateOTP_Range(t *testing.T) {
	for i := 0; i < 1000; i++ {
		code, err := GenerateOTP()
		require.NoError(t, err)
		require.Regexp(t, sixDigits, code)

		n, err := strconv.Atoi(code)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, n, 100000)
		assert.LessOrEqual(t, n, 999999)
	}
}

func TestIsOTPValid(t *testing.T) {
	now := time.Date(2026, 10, 17, 12, 0, 0, 0, time.UTC)
	expiry := now.Add(time.Minute)

	tests := []struct {
		name     string
		stored   *string
		provided string
		expiry   *time.Time
		now      time.Time
		want     bool
	}{
		{name: "matching code before expiry", stored: strPtr("123456"), provided: "123456", expiry: &expiry, now: now, want: true},
		{name: "matching code at expiry instant", stored: strPtr("123456"), provided: "123456", expiry: &expiry, now: expiry, want: true},
		{name: "matching code after expiry", stored: strPtr("123456"), provided: "123456", expiry: &expiry, now: expiry.Add(time.Nanosecond), want: false},
		{name: "no stored code", stored: nil, provided: "123456", expiry: &expiry, now: now, want: false},
		{name: "no expiry", stored: strPtr("123456"), provided: "123456", expiry: nil, now: now, want: false},
		{name: "different code", stored: strPtr("123456"), provided: "654321", expiry: &expiry, now: now, want: false},
		{name: "no normalization", stored: strPtr("123456"), provided: " 123456", expiry: &expiry, now: now, want: false},
		{name: "empty provided", stored: strPtr("123456"), provided: "", expiry: &expiry, now: now, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsOTPValid(tt.stored, tt.provided, tt.expiry, tt.now))
		})
	}
}

func TestOTPManager_Issue(t *testing.T) {
	testutil.SilenceLogs(t)
	ctx := context.Background()
	now := time.Date(2026, 10, 17, 12, 0, 0, 0, time.UTC)

	users := &mocks.UserStore{}
	mail := &mocks.Mailer{}
	m := NewOTPManager(users, mail, 0)
	m.now = func() time.Time { return now }

	user := &domain.User{ID: "u1", Email: "a@example.com"}
	users.On("Save", ctx, user).Return(nil).Once()
	mail.On("Send", "a@example.com", mailer.OTPSubject, mock.AnythingOfType("string")).Return(true).Once()

	require.NoError(t, m.Issue(ctx, user))

	require.NotNil(t, user.OTP)
	require.NotNil(t, user.OTPExpiry)
	assert.Regexp(t, sixDigits, *user.OTP)
	assert.Equal(t, now.Add(10*time.Minute), *user.OTPExpiry)

	body := mail.Calls[0].Arguments.String(2)
	assert.Contains(t, body, *user.OTP)

	users.AssertExpectations(t)
	mail.AssertExpectations(t)
}

func TestOTPManager_Issue_PersistenceFailure(t *testing.T) {
	testutil.SilenceLogs(t)
	ctx := context.Background()
	users := &mocks.UserStore{}
	mail := &mocks.Mailer{}
	m := NewOTPManager(users, mail, time.Minute)

	user := &domain.User{ID: "u1", Email: "a@example.com"}
	users.On("Save", ctx, user).Return(errors.New("db down"))

	err := m.Issue(ctx, user)
	require.Error(t, err)
	assert.Equal(t, domain.ErrCodePersistence, domain.CodeOf(err))
	mail.AssertNotCalled(t, "Send", mock.Anything, mock.Anything, mock.Anything)
}

func TestOTPManager_Issue_DeliveryFailureKeepsCode(t *testing.T) {
	testutil.SilenceLogs(t)
	ctx := context.Background()
	users := &mocks.UserStore{}
	mail := &mocks.Mailer{}
	m := NewOTPManager(users, mail, time.Minute)

	user := &domain.User{ID: "u1", Email: "a@example.com"}
	users.On("Save", ctx, user).Return(nil)
	mail.On("Send", mock.Anything, mock.Anything, mock.Anything).Return(false)

	err := m.Issue(ctx, user)
	require.Error(t, err)
	assert.Equal(t, domain.ErrCodeDelivery, domain.CodeOf(err))
	// The code was persisted before delivery and stays valid
	assert.True(t, m.Validate(user.OTP, *user.OTP, user.OTPExpiry))
}

func TestOTPManager_SingleUse(t *testing.T) {
	testutil.SilenceLogs(t)
	ctx := context.Background()
	users := &mocks.UserStore{}
	mail := &mocks.Mailer{}
	m := NewOTPManager(users, mail, 10*time.Minute)

	user := &domain.User{ID: "u1", Email: "a@example.com"}
	users.On("Save", ctx, user).Return(nil)
	mail.On("Send", mock.Anything, mock.Anything, mock.Anything).Return(true)
	require.NoError(t, m.Issue(ctx, user))

	code := *user.OTP
	assert.WithinDuration(t, time.Now().Add(10*time.Minute), *user.OTPExpiry, 5*time.Second)
	assert.True(t, m.Validate(user.OTP, code, user.OTPExpiry))

	// The caller clears the code after a successful validation
	user.OTP, user.OTPExpiry = nil, nil
	assert.False(t, m.Validate(user.OTP, code, user.OTPExpiry))
}

func TestOTPManager_ValidateUsesClock(t *testing.T) {
	m := NewOTPManager(nil, nil, time.Minute)
	expiry := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	m.now = func() time.Time { return expiry.Add(-time.Second) }
	assert.True(t, m.Validate(strPtr("111111"), "111111", timePtr(expiry)))

	m.now = func() time.Time { return expiry.Add(time.Second) }
	assert.False(t, m.Validate(strPtr("111111"), "111111", timePtr(expiry)))
}
