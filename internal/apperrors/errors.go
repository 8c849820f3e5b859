package apperrors

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrInsufficientFunds is returned when a withdrawal amount is not covered by the balance.
// The message is part of the public API and is kept in Portuguese.
var ErrInsufficientFunds = errors.New("Saldo insuficiente")

// ErrEmptyAggregate indicates that an aggregate was requested over zero accounts.
var ErrEmptyAggregate = errors.New("no accounts to aggregate")

// ErrStoreFailure wraps failures coming from the account store.
var ErrStoreFailure = errors.New("account store failure")

// AppError carries an HTTP-ish status code alongside the underlying error.
type AppError struct {
	Code    int
	Message string
	Err     error
}

// NewAppError creates an AppError wrapping err.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

func (e *AppError) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return fmt.Sprintf("%s: %v", e.Message, e.Err)
}

func (e *AppError) Unwrap() error {
	return e.Err
}
