package models

import (
	"errors"
	"fmt"
)

var (
	// ErrProductNotFound is returned when a product is not found.
	ErrProductNotFound = errors.New("product not found")
	// ErrCategoryNotFound is returned when a category is not found.
	ErrCategoryNotFound = errors.New("category not found")
	// ErrOrderNotFound is returned when an order is not found.
	ErrOrderNotFound = errors.New("order not found")
	// ErrUserNotFound is returned when no user has the given phone or name.
	ErrUserNotFound = errors.New("user not found")
	// ErrAddressNotFound is returned for an address index outside the address book.
	ErrAddressNotFound = errors.New("address not found")

	// ErrWrongPassword is returned when the password does not match.
	ErrWrongPassword = errors.New("wrong password")
	// ErrNotLoggedIn is returned by operations that need a current user.
	ErrNotLoggedIn = errors.New("not logged in")
	// ErrEmptyCart is returned when checking out a cart without lines.
	ErrEmptyCart = errors.New("cart is empty")

	ErrDuplicateUsername = errors.New("username already exists")
	ErrDuplicatePhone    = errors.New("phone already registered")
	ErrDuplicateCategory = errors.New("category already exists")

	// ErrStatusTransitionUnsupported is returned by every order status change.
	// Orders are created delivered and never move.
	ErrStatusTransitionUnsupported = errors.New("order status transitions are not supported")
)

// ValidationError reports input that was rejected before any state changed.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// NewValidationError builds a *ValidationError.
func NewValidationError(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}

// IsValidation reports whether err is or wraps a *ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// PersistenceError is returned when a store could not write its file.
// The in-memory state keeps the change; the file may not.
type PersistenceError struct {
	Op   string
	Path string
	Err  error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}
