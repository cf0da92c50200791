package mocks

import mock "github.com/stretchr/testify/mock"

// Mailer is a mock type for the Mailer type
type Mailer struct {
	mock.Mock
}

// Send provides a mock function with given fields: to, subject, body
func (_m *Mailer) Send(to string, subject string, body string) bool {
	ret := _m.Called(to, subject, body)
	return ret.Bool(0)
}
