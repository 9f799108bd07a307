// Package errors provides standardized domain errors that express business intent
// rather than infrastructure details. These errors are used by use cases and mapped
// to stable codes by the HTTP handlers and CLI commands.
package errors

import (
	"errors"
	"fmt"
)

// Standard domain errors that can be used across all domain modules.
var (
	// ErrNotFound indicates the requested resource does not exist.
	ErrNotFound = errors.New("not found")

	// ErrConflict indicates a conflict with existing data (e.g., duplicate key).
	ErrConflict = errors.New("conflict")

	// ErrInvalidInput indicates the input data is invalid or fails validation.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnsupportedFormat indicates a document does not match the expected shape.
	ErrUnsupportedFormat = errors.New("unsupported format")

	// ErrStorage indicates the underlying key/value store is unavailable or rejected a write.
	ErrStorage = errors.New("storage error")

	// ErrCrypto indicates a key derivation, encryption or authenticated decryption failure.
	ErrCrypto = errors.New("crypto error")
)

// Stable error codes. They are free of any user-facing language so that the caller
// can map them to localized messages.
const (
	CodeNotFound          = "not_found"
	CodeConflict          = "conflict"
	CodeInvalidInput      = "invalid_input"
	CodeUnsupportedFormat = "unsupported_format"
	CodeStorage           = "storage_error"
	CodeCrypto            = "crypto_error"
	CodeInternal          = "internal_error"
)

// New creates a new error with the given message.
// This is a convenience wrapper around errors.New for consistency.
func New(message string) error {
	return errors.New(message)
}

// Wrap wraps an error with additional context while preserving the error chain.
// Use this to add context at each layer without losing the original error type.
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// Wrapf is like Wrap but formats the message.
func Wrapf(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), err)
}

// Is reports whether any error in err's tree matches target.
// This is a convenience wrapper around errors.Is.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's tree that matches target.
// This is a convenience wrapper around errors.As.
func As(err error, target any) bool {
	return errors.As(err, target)
}

// Code returns the stable code for err. Returns an empty string for a nil error.
func Code(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrNotFound):
		return CodeNotFound
	case errors.Is(err, ErrConflict):
		return CodeConflict
	case errors.Is(err, ErrUnsupportedFormat):
		return CodeUnsupportedFormat
	case errors.Is(err, ErrInvalidInput):
		return CodeInvalidInput
	case errors.Is(err, ErrStorage):
		return CodeStorage
	case errors.Is(err, ErrCrypto):
		return CodeCrypto
	default:
		return CodeInternal
	}
}
