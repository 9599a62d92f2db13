package model

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned by stores when the requested entity is absent.
	ErrNotFound = errors.New("not found")

	// ErrEmailTaken is returned on registration with an already used email.
	ErrEmailTaken = errors.New("email already taken")

	// ErrInvalidCredentials covers both unknown email and wrong password,
	// so the response does not leak which field was wrong.
	ErrInvalidCredentials = errors.New("invalid credentials")

	ErrMissingToken    = errors.New("token is missing")
	ErrInvalidToken    = errors.New("token is invalid or expired")
	ErrTokenRevoked    = errors.New("refresh token revoked")
	ErrNoActiveSession = errors.New("no active session")

	ErrCartNotFound = errors.New("cart not found")
	ErrLineNotFound = errors.New("item not found in cart")
)

// ValidationError reports malformed or missing client input.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

// NewValidationError creates a ValidationError with a formatted reason.
func NewValidationError(format string, args ...any) error {
	return &ValidationError{Reason: fmt.Sprintf(format, args...)}
}
