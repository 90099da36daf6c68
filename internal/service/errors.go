package service

import (
	"errors"
	"fmt"
)

var (
	// ErrTransactionNotFound is returned when the referenced transaction does
	// not exist or belongs to a different owner.
	ErrTransactionNotFound = errors.New("transaction not found")

	// ErrEditWindowExpired is returned when an edit is attempted after the
	// edit window has closed.
	ErrEditWindowExpired = errors.New("editing allowed only within 12 hours of creation")

	// ErrInsufficientBalance is returned when a transfer would overdraw the
	// source account.
	ErrInsufficientBalance = errors.New("insufficient balance in source account")
)

// ValidationError marks malformed or out-of-range caller input. These are
// never retried and always precede any storage write.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

func newValidationError(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}

// IsValidation reports whether err is (or wraps) a ValidationError.
func IsValidation(err error) bool {
	var verr *ValidationError
	return errors.As(err, &verr)
}
