package domain

import (
	"errors"
	"fmt"
)

// Error codes carried by DomainError and mapped to HTTP statuses at the edge
const (
	ErrCodeValidation   string = "VALIDATION_ERROR"
	ErrCodeNotFound     string = "NOT_FOUND"
	ErrCodeUnauthorized string = "UNAUTHORIZED"
	ErrCodeForbidden    string = "FORBIDDEN"
	ErrCodeConflict     string = "CONFLICT"
	ErrCodeRateLimited  string = "RATE_LIMITED"
	ErrCodePersistence  string = "PERSISTENCE_ERROR"
	ErrCodeDelivery     string = "DELIVERY_ERROR"
	ErrCodeInternal     string = "INTERNAL_ERROR"
)

// DomainError is the error type returned by services and stores
type DomainError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Cause   error  `json:"-"`
}

// Error includes the cause when there is one
func (e *DomainError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap exposes the cause to errors.Is and errors.As
func (e *DomainError) Unwrap() error {
	return e.Cause
}

// Is matches on Code so sentinel errors compare equal to wrapped instances
func (e *DomainError) Is(target error) bool {
	var t *DomainError
	if !errors.As(target, &t) {
		return false
	}
	return e.Code == t.Code && (t.Message == "" || e.Message == t.Message)
}

// NewDomainError builds an error with an explicit code
func NewDomainError(code, msg string, cause error) *DomainError {
	return &DomainError{Code: code, Message: msg, Cause: cause}
}

// NewValidationError reports a malformed input value
func NewValidationError(msg string) *DomainError {
	return &DomainError{Code: ErrCodeValidation, Message: msg}
}

// NewPersistenceError wraps a store failure
func NewPersistenceError(msg string, cause error) *DomainError {
	return &DomainError{Code: ErrCodePersistence, Message: msg, Cause: cause}
}

// NewDeliveryError reports that the mail collaborator did not accept a message
func NewDeliveryError(msg string) *DomainError {
	return &DomainError{Code: ErrCodeDelivery, Message: msg}
}

// CodeOf returns the code of the first DomainError in err's chain
func CodeOf(err error) string {
	var de *DomainError
	if errors.As(err, &de) {
		return de.Code
	}
	return ErrCodeInternal
}

var (
	ErrUserNotFound   = &DomainError{Code: ErrCodeNotFound, Message: "User not found"}
	ErrEventNotFound  = &DomainError{Code: ErrCodeNotFound, Message: "Event not found"}
	ErrTicketNotFound = &DomainError{Code: ErrCodeNotFound, Message: "Ticket not found"}
	ErrInvalidOTP     = &DomainError{Code: ErrCodeUnauthorized, Message: "Invalid or expired OTP"}
	ErrOTPCooldown    = &DomainError{Code: ErrCodeRateLimited, Message: "OTP recently sent, try again later"}
	ErrEmailTaken     = &DomainError{Code: ErrCodeConflict, Message: "Email already registered"}
)
