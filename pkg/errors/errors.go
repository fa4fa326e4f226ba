// Package errors provides custom error types for the stewardlink system.
// These errors enable programmatic error checking and keep source failures
// distinguishable from per-row update failures throughout the application.
package errors

import (
	"errors"
	"fmt"
)

// New returns an error that formats as the given text.
// It's an alias for the standard library errors.New for convenience.
var New = errors.New

// Is reports whether any error in err's tree matches target.
// It's an alias for the standard library errors.Is for convenience.
var Is = errors.Is

// As finds the first error in err's tree that matches target.
// It's an alias for the standard library errors.As for convenience.
var As = errors.As

// Common sentinel errors for the stewardlink system
var (
	// ErrSourceUnavailable indicates a read source could not be reached or queried.
	// A run that hits this error aborts before any write.
	ErrSourceUnavailable = errors.New("source unavailable")

	// ErrUpdateFailed indicates a single-row catalog update failed
	ErrUpdateFailed = errors.New("update failed")

	// ErrInvalidInput indicates that provided input was invalid
	ErrInvalidInput = errors.New("invalid input")

	// ErrNotFound indicates that a requested resource was not found
	ErrNotFound = errors.New("not found")

	// ErrTimeout indicates that an operation timed out
	ErrTimeout = errors.New("operation timed out")
)

// SourceError represents a failure to read one of the two sources
// (the catalog database or the stewardship sheet). It is fatal to the
// reconciliation run.
type SourceError struct {
	Source string // "catalog" or "roster"
	Op     string // operation that failed, e.g. "query", "connect"
	Err    error
}

// Error implements the error interface
func (e *SourceError) Error() string {
	if e.Op != "" {
		return fmt.Sprintf("%s source: %s: %v", e.Source, e.Op, e.Err)
	}
	return fmt.Sprintf("%s source: %v", e.Source, e.Err)
}

// Unwrap implements errors.Unwrap
func (e *SourceError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is support
func (e *SourceError) Is(target error) bool {
	return target == ErrSourceUnavailable
}

// NewSourceError creates a new SourceError
func NewSourceError(source, op string, err error) *SourceError {
	return &SourceError{Source: source, Op: op, Err: err}
}

// UpdateError represents a single-row catalog write failure. It is
// recorded against the row and never aborts the rest of the batch.
type UpdateError struct {
	ItemID string // catalog row id the update targeted
	Err    error
}

// Error implements the error interface
func (e *UpdateError) Error() string {
	return fmt.Sprintf("update item %s: %v", e.ItemID, e.Err)
}

// Unwrap implements errors.Unwrap
func (e *UpdateError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is support
func (e *UpdateError) Is(target error) bool {
	return target == ErrUpdateFailed
}

// NewUpdateError creates a new UpdateError
func NewUpdateError(itemID string, err error) *UpdateError {
	return &UpdateError{ItemID: itemID, Err: err}
}

// ValidationError represents a validation failure at a read boundary
type ValidationError struct {
	Field   string
	Value   interface{}
	Message string
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation failed for field %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation failed: %s", e.Message)
}

// Is implements errors.Is support
func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}

// NewValidationError creates a new ValidationError
func NewValidationError(field string, value interface{}, message string) *ValidationError {
	return &ValidationError{Field: field, Value: value, Message: message}
}

// ConfigError represents a configuration error
type ConfigError struct {
	Component string
	Message   string
	Err       error
}

// Error implements the error interface
func (e *ConfigError) Error() string {
	if e.Component != "" {
		return fmt.Sprintf("configuration error in %s: %s", e.Component, e.Message)
	}
	return fmt.Sprintf("configuration error: %s", e.Message)
}

// Unwrap implements errors.Unwrap
func (e *ConfigError) Unwrap() error {
	return e.Err
}

// NewConfigError creates a new ConfigError
func NewConfigError(component, message string, err error) *ConfigError {
	return &ConfigError{Component: component, Message: message, Err: err}
}

// ProcessError represents a CLI command failure with operation context
type ProcessError struct {
	Operation string
	Command   string
	Err       error
}

// Error implements the error interface
func (e *ProcessError) Error() string {
	return fmt.Sprintf("failed to %s (command: %s): %v", e.Operation, e.Command, e.Err)
}

// Unwrap implements errors.Unwrap
func (e *ProcessError) Unwrap() error {
	return e.Err
}

// WrapSource wraps an error as a SourceError for the named source
func WrapSource(source, op string, err error) error {
	if err == nil {
		return nil
	}
	return &SourceError{Source: source, Op: op, Err: err}
}

// WrapUpdate wraps an error as an UpdateError for the named catalog row
func WrapUpdate(itemID string, err error) error {
	if err == nil {
		return nil
	}
	return &UpdateError{ItemID: itemID, Err: err}
}
