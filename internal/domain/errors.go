package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors the HTTP layer maps to status codes. Repository and service
// code wraps them with fmt.Errorf("...: %w", err) so callers can errors.Is.
var (
	ErrNotFound          = errors.New("not found")
	ErrDuplicate         = errors.New("duplicate value")
	ErrInvalidReference  = errors.New("referenced row does not exist")
	ErrMenuInUse         = errors.New("menu is referenced by existing orders")
	ErrInvalidTransition = errors.New("status transition not allowed")
	ErrInvalidCredential = errors.New("invalid username or password")
)

// ValidationError reports a malformed or out-of-range request field. It is
// detected before any row is written.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func Invalid(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}

func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
