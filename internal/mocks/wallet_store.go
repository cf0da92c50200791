package mocks

import (
	context "context"

	domain "event_ticketing/internal/domain"

	mock "github.com/stretchr/testify/mock"
)

// WalletStore is a mock type for the WalletStore type
type WalletStore struct {
	mock.Mock
}

// FindOrCreate provides a mock function with given fields: ctx, userID
func (_m *WalletStore) FindOrCreate(ctx context.Context, userID string) (*domain.Wallet, error) {
	ret := _m.Called(ctx, userID)

	var r0 *domain.Wallet
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.Wallet)
	}
	return r0, ret.Error(1)
}

// Increment provides a mock function with given fields: ctx, userID, delta
func (_m *WalletStore) Increment(ctx context.Context, userID string, delta float64) (*domain.Wallet, error) {
	ret := _m.Called(ctx, userID, delta)

	var r0 *domain.Wallet
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.Wallet)
	}
	return r0, ret.Error(1)
}
