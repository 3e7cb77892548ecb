// Package error defines domain-specific errors for the Finance Tracker application.
package error

import (
	"errors"
	"fmt"
)

// Authentication domain errors.
var (
	// ErrUserNotFound is returned when a user is not found in the system.
	ErrUserNotFound = errors.New("user not found")

	// ErrEmailAlreadyExists is returned when attempting to register with an existing email.
	ErrEmailAlreadyExists = fmt.Errorf("%w: email already exists", ErrConflict)

	// ErrInvalidCredentials is returned when login credentials are invalid.
	ErrInvalidCredentials = fmt.Errorf("%w: invalid credentials", ErrUnauthenticated)

	// ErrInvalidToken is returned when a token is invalid or malformed.
	ErrInvalidToken = fmt.Errorf("%w: invalid token", ErrUnauthenticated)

	// ErrMissingUser is returned when a ledger operation is called without an owner.
	ErrMissingUser = fmt.Errorf("%w: no current user", ErrUnauthenticated)

	// ErrInvalidEmail is returned when the email address is malformed.
	ErrInvalidEmail = fmt.Errorf("%w: invalid email format", ErrInvalidInput)

	// ErrWeakPassword is returned when the provided password does not meet requirements.
	ErrWeakPassword = fmt.Errorf("%w: password does not meet minimum requirements", ErrInvalidInput)
)

// AuthErrorCode defines error codes for authentication errors.
// Format: AUTH-XXYYYY where XX is category and YYYY is specific error.
type AuthErrorCode string

const (
	// Registration errors (01XXXX)
	ErrCodeEmailExists   AuthErrorCode = "AUTH-010001"
	ErrCodeInvalidEmail  AuthErrorCode = "AUTH-010002"
	ErrCodeWeakPassword  AuthErrorCode = "AUTH-010003"
	ErrCodeMissingFields AuthErrorCode = "AUTH-010005"

	// Login errors (02XXXX)
	ErrCodeInvalidCredentials AuthErrorCode = "AUTH-020001"
	ErrCodeRateLimited        AuthErrorCode = "AUTH-020003"

	// Token errors (03XXXX)
	ErrCodeInvalidToken AuthErrorCode = "AUTH-030001"
	ErrCodeMissingToken AuthErrorCode = "AUTH-030003"
)

// AuthError represents an authentication error with code and message.
type AuthError struct {
	Code    AuthErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *AuthError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *AuthError) Unwrap() error {
	return e.Err
}

// NewAuthError creates a new AuthError with the given code and message.
func NewAuthError(code AuthErrorCode, message string, err error) *AuthError {
	return &AuthError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// NewUnauthenticatedError returns the error every ledger use case reports when called without an owner.
func NewUnauthenticatedError() *AuthError {
	return NewAuthError(ErrCodeMissingToken, "user not authenticated", ErrMissingUser)
}
