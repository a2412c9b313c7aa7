// Package errors provides sentinel errors for the snapdeploy CLI.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for known conditions.
var (
	// ErrMalformedInput indicates the snapshot text could not be decoded or a
	// required field is missing or has the wrong type.
	ErrMalformedInput = errors.New("malformed snapshot")

	// ErrInvalidImage indicates a component's container image reference does not
	// carry exactly one @sha256: digest separator.
	ErrInvalidImage = errors.New("invalid image reference")

	// ErrMissingSnapshot indicates no snapshot was supplied at all (unset SNAPSHOT
	// environment variable and no file argument).
	ErrMissingSnapshot = errors.New("missing snapshot")

	// ErrConnectivity indicates a network failure reaching GitHub or bonfire.
	ErrConnectivity = errors.New("connectivity error")
)

// DetailError captures structured error information for operator-facing output.
type DetailError struct {
	// Type is the error category (required).
	Type string

	// Message is the specific description (required).
	Message string

	// Field is the manifest field path, e.g. "components[2].containerImage" (optional).
	Field string

	// Value is the offending value as found in the input (optional).
	Value string

	// Hint provides actionable guidance (optional).
	Hint string

	// Cause is the underlying error (optional).
	Cause error
}

// Error implements the error interface.
func (e *DetailError) Error() string {
	var b strings.Builder

	b.WriteString("Error: ")
	b.WriteString(e.Type)
	b.WriteString("\n")

	if e.Field != "" {
		b.WriteString("  Field: ")
		b.WriteString(e.Field)
		b.WriteString("\n")
	}
	if e.Value != "" {
		b.WriteString("  Value: ")
		b.WriteString(e.Value)
		b.WriteString("\n")
	}

	b.WriteString("\n  ")
	b.WriteString(e.Message)
	b.WriteString("\n")

	if e.Hint != "" {
		b.WriteString("\nHint: ")
		b.WriteString(e.Hint)
		b.WriteString("\n")
	}

	return b.String()
}

// Unwrap returns the underlying error.
func (e *DetailError) Unwrap() error {
	return e.Cause
}

// NewMalformedInputError creates a malformed-input error with details.
func NewMalformedInputError(message, field, value string) error {
	return &DetailError{
		Type:    "malformed snapshot",
		Message: message,
		Field:   field,
		Value:   value,
		Hint:    "check the SNAPSHOT value against the application snapshot schema",
		Cause:   ErrMalformedInput,
	}
}

// NewInvalidImageError creates an invalid-image-reference error with details.
func NewInvalidImageError(message, field, value string) error {
	return &DetailError{
		Type:    "invalid image reference",
		Message: message,
		Field:   field,
		Value:   value,
		Hint:    "container images must be pinned as <image>@sha256:<digest>",
		Cause:   ErrInvalidImage,
	}
}

// NewConnectivityError creates a connectivity error with details.
func NewConnectivityError(message string, cause error) error {
	return &DetailError{
		Type:    "connectivity failed",
		Message: message,
		Cause:   fmt.Errorf("%w: %w", ErrConnectivity, cause),
	}
}

// Wrap wraps an error with a sentinel error type.
func Wrap(sentinel error, message string) error {
	return fmt.Errorf("%s: %w", message, sentinel)
}
