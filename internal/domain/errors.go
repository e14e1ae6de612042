// Package domain contains business logic types and errors.
// Domain errors represent business-level failures, NOT HTTP errors.
// They are infrastructure-agnostic and can be mapped to HTTP/gRPC/etc by adapters.
package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for use with errors.Is().
var (
	// ErrNotFound indicates the requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrValidation indicates request parameters failed validation.
	ErrValidation = errors.New("validation failed")

	// ErrNoResults indicates a listing matched nothing inside its window.
	ErrNoResults = errors.New("no results")

	// ErrQuery indicates the store failed to execute a query.
	ErrQuery = errors.New("query failed")

	// ErrUnavailable indicates a required dependency is unavailable.
	ErrUnavailable = errors.New("unavailable")
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

// NoResultsError reports an empty listing together with the window that produced it.
type NoResultsError struct {
	Entity string
	Window Window
}

// Error implements the error interface.
func (e *NoResultsError) Error() string {
	return fmt.Sprintf("no %s found (skip=%d, take=%d)", e.Entity, e.Window.Skip, e.Window.Take)
}

// Unwrap returns the sentinel error for errors.Is() support.
func (e *NoResultsError) Unwrap() error {
	return ErrNoResults
}

// NewNoResultsError creates a no results error for the given window.
func NewNoResultsError(entity string, window Window) error {
	return &NoResultsError{Entity: entity, Window: window}
}

// QueryError wraps a store failure with the operation that raised it.
type QueryError struct {
	Op    string
	Cause error
}

// Error implements the error interface.
func (e *QueryError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Cause)
}

// Unwrap exposes both the sentinel and the underlying cause.
func (e *QueryError) Unwrap() []error {
	return []error{ErrQuery, e.Cause}
}

// NewQueryError wraps cause as a query error. A nil cause returns nil.
func NewQueryError(op string, cause error) error {
	if cause == nil {
		return nil
	}

	return &QueryError{Op: op, Cause: cause}
}

// UnavailableError provides context for unavailable errors.
type UnavailableError struct {
	Service string
	Reason  string
}

// Error implements the error interface.
func (e *UnavailableError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("service %q unavailable: %s", e.Service, e.Reason)
	}

	return fmt.Sprintf("service %q unavailable", e.Service)
}

// Unwrap returns the sentinel error for errors.Is() support.
func (e *UnavailableError) Unwrap() error {
	return ErrUnavailable
}

// NewUnavailableError creates an unavailable error with context.
func NewUnavailableError(service, reason string) error {
	return &UnavailableError{Service: service, Reason: reason}
}

// IsNotFound checks if an error is a not found error.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsValidation checks if an error is a validation error.
func IsValidation(err error) bool {
	return errors.Is(err, ErrValidation)
}

// IsNoResults checks if an error is a no results error.
func IsNoResults(err error) bool {
	return errors.Is(err, ErrNoResults)
}

// IsQuery checks if an error is a query error.
func IsQuery(err error) bool {
	return errors.Is(err, ErrQuery)
}

// IsUnavailable checks if an error is an unavailable error.
func IsUnavailable(err error) bool {
	return errors.Is(err, ErrUnavailable)
}

// Kind returns a short machine-readable label for the error's domain kind.
// Errors outside the taxonomy are reported as "unknown".
func Kind(err error) string {
	switch {
	case err == nil:
		return ""
	case IsNoResults(err):
		return "no_results"
	case IsNotFound(err):
		return "not_found"
	case IsValidation(err):
		return "validation"
	case IsUnavailable(err):
		return "unavailable"
	case IsQuery(err):
		return "query_error"
	default:
		return "unknown"
	}
}
