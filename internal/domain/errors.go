// Package domain contains the prayer catalog, the recommendation rules and
// the share text they produce.
// Domain errors represent business-level failures, NOT HTTP errors.
// They are infrastructure-agnostic and can be mapped to HTTP or CLI output by adapters.
package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for use with errors.Is().
var (
	// ErrNotFound indicates the requested prayer or featured record does not exist.
	ErrNotFound = errors.New("not found")

	// ErrValidation indicates a request parameter failed validation.
	ErrValidation = errors.New("validation failed")

	// ErrInvalidCatalog indicates the catalog data breaks a catalog invariant.
	ErrInvalidCatalog = errors.New("invalid catalog")

	// ErrShareCancelled indicates the user dismissed the share dialog.
	// It is an outcome, not a failure, and must never be shown to the user.
	ErrShareCancelled = errors.New("share cancelled")

	// ErrShareUnavailable indicates no share or copy capability is present.
	ErrShareUnavailable = errors.New("share unavailable")
)

// NotFoundError provides context for not found errors.
type NotFoundError struct {
	Entity string
	ID     string
}

// Error implements the error interface.
func (e *NotFoundError) Error() string {
	if e.ID != "" {
		return fmt.Sprintf("%s with id %q not found", e.Entity, e.ID)
	}

	return e.Entity + " not found"
}

// Unwrap returns the sentinel error for errors.Is() support.
func (e *NotFoundError) Unwrap() error {
	return ErrNotFound
}

// NewNotFoundError creates a not found error with context.
func NewNotFoundError(entity, id string) error {
	return &NotFoundError{Entity: entity, ID: id}
}

// ValidationError provides context for validation errors.
type ValidationError struct {
	Field   string
	Message string
	Value   any
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation failed for %s: %s", e.Field, e.Message)
	}

	return "validation failed: " + e.Message
}

// Unwrap returns the sentinel error for errors.Is() support.
func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// NewValidationError creates a validation error with context.
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewValidationErrorWithValue creates a validation error including the invalid value.
func NewValidationErrorWithValue(field, message string, value any) error {
	return &ValidationError{Field: field, Message: message, Value: value}
}

// CatalogError reports which record broke which catalog invariant.
type CatalogError struct {
	// Index is the zero-based position of the record in the source data.
	Index  int
	ID     string
	Reason string
}

// Error implements the error interface.
func (e *CatalogError) Error() string {
	if e.ID != "" {
		return fmt.Sprintf("catalog record %d (%q): %s", e.Index, e.ID, e.Reason)
	}

	return fmt.Sprintf("catalog record %d: %s", e.Index, e.Reason)
}

// Unwrap returns the sentinel error for errors.Is() support.
func (e *CatalogError) Unwrap() error {
	return ErrInvalidCatalog
}

// NewCatalogError creates a catalog invariant error.
func NewCatalogError(index int, id, reason string) error {
	return &CatalogError{Index: index, ID: id, Reason: reason}
}

// ShareError records which share strategy failed.
type ShareError struct {
	Strategy string
	Err      error
}

// Error implements the error interface.
func (e *ShareError) Error() string {
	return fmt.Sprintf("%s share: %v", e.Strategy, e.Err)
}

// Unwrap exposes the underlying cause so ErrShareCancelled survives wrapping.
func (e *ShareError) Unwrap() error {
	return e.Err
}

// NewShareError wraps a strategy failure.
func NewShareError(strategy string, err error) error {
	return &ShareError{Strategy: strategy, Err: err}
}

// IsNotFound checks if an error is a not found error.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsValidation checks if an error is a validation error.
func IsValidation(err error) bool {
	return errors.Is(err, ErrValidation)
}

// IsInvalidCatalog checks if an error is a catalog invariant error.
func IsInvalidCatalog(err error) bool {
	return errors.Is(err, ErrInvalidCatalog)
}

// IsShareCancelled checks if the user cancelled a share.
func IsShareCancelled(err error) bool {
	return errors.Is(err, ErrShareCancelled)
}

// IsShareUnavailable checks if no share capability was present.
func IsShareUnavailable(err error) bool {
	return errors.Is(err, ErrShareUnavailable)
}
