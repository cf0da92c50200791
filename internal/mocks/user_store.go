package mocks

import (
	context "context"

	domain "event_ticketing/internal/domain"

	mock "github.com/stretchr/testify/mock"
)

// UserStore is a mock type for the UserStore type
type UserStore struct {
	mock.Mock
}

// Create provides a mock function with given fields: ctx, user
func (_m *UserStore) Create(ctx context.Context, user *domain.User) error {
	ret := _m.Called(ctx, user)
	return ret.Error(0)
}

// FindByEmail provides a mock function with given fields: ctx, email
func (_m *UserStore) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	ret := _m.Called(ctx, email)

	var r0 *domain.User
	if rf, ok := ret.Get(0).(func(context.Context, string) *domain.User); ok {
		r0 = rf(ctx, email)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.User)
	}
	return r0, ret.Error(1)
}

// FindByID provides a mock function with given fields: ctx, id
func (_m *UserStore) FindByID(ctx context.Context, id string) (*domain.User, error) {
	ret := _m.Called(ctx, id)

	var r0 *domain.User
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.User)
	}
	return r0, ret.Error(1)
}

// Save provides a mock function with given fields: ctx, user
func (_m *UserStore) Save(ctx context.Context, user *domain.User) error {
	ret := _m.Called(ctx, user)
	return ret.Error(0)
}

// ConsumeOTP provides a mock function with given fields: ctx, userID, code
func (_m *UserStore) ConsumeOTP(ctx context.Context, userID string, code string) (bool, error) {
	ret := _m.Called(ctx, userID, code)
	return ret.Bool(0), ret.Error(1)
}
