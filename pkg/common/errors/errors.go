package errors

import (
	"errors"
	"fmt"
)

// Common error types used across the godebounce library

var (
	// ErrInvalidConfiguration indicates invalid configuration parameters
	ErrInvalidConfiguration = errors.New("invalid configuration")
)

// ValidationError describes a configuration parameter that failed
// validation at construction time. It wraps ErrInvalidConfiguration so
// callers can match the whole class with errors.Is.
type ValidationError struct {
	// Module is the library component that rejected the value.
	Module string

	// Field is the name of the offending parameter.
	Field string

	// Value is the rejected value.
	Value interface{}

	// Reason explains why the value was rejected.
	Reason string

	// Hint optionally suggests a valid value.
	Hint string
}

// NewValidationError creates a ValidationError for the given module, field,
// value and reason.
func NewValidationError(module, field string, value interface{}, reason string) *ValidationError {
	return &ValidationError{
		Module: module,
		Field:  field,
		Value:  value,
		Reason: reason,
	}
}

// WithHint attaches a usage hint and returns the same error for chaining.
func (e *ValidationError) WithHint(hint string) *ValidationError {
	e.Hint = hint
	return e
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	msg := fmt.Sprintf("%s: invalid %s=%v (%s)", e.Module, e.Field, e.Value, e.Reason)
	if e.Hint != "" {
		msg += " - " + e.Hint
	}
	return msg
}

// Unwrap makes ValidationError match ErrInvalidConfiguration via errors.Is.
func (e *ValidationError) Unwrap() error {
	return ErrInvalidConfiguration
}

// OperationError describes a failure of a named operation on a library
// component, wrapping the underlying cause.
type OperationError struct {
	// Module is the library component the operation belongs to.
	Module string

	// Operation is the name of the operation that failed.
	Operation string

	// Cause is the underlying error.
	Cause error

	// Context optionally carries additional detail about the failure.
	Context string
}

// NewOperationError creates an OperationError for the given module,
// operation and cause.
func NewOperationError(module, operation string, cause error) *OperationError {
	return &OperationError{
		Module:    module,
		Operation: operation,
		Cause:     cause,
	}
}

// WithContext attaches additional detail and returns the same error for
// chaining.
func (e *OperationError) WithContext(context string) *OperationError {
	e.Context = context
	return e
}

// Error implements the error interface.
func (e *OperationError) Error() string {
	msg := fmt.Sprintf("%s.%s failed: %v", e.Module, e.Operation, e.Cause)
	if e.Context != "" {
		msg += " (" + e.Context + ")"
	}
	return msg
}

// Unwrap returns the underlying cause.
func (e *OperationError) Unwrap() error {
	return e.Cause
}

// IsValidationError returns true if the error is, or wraps, a
// ValidationError.
func IsValidationError(err error) bool {
	var verr *ValidationError
	return errors.As(err, &verr)
}
