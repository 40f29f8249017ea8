// Package errors provides structured error types for sheetanchor.
//
// This package defines error codes and types that enable:
//   - Consistent error handling across the library and the CLI
//   - Machine-readable error codes for programmatic handling
//   - Error wrapping with context preservation
//
// # Error Codes
//
// Codes fall into three groups:
//   - INVALID_*: caller input or configuration that cannot be used
//   - NOT_FOUND / MALFORMED_PACKAGE / IO_ERROR: problems with the document container
//   - IMAGE_DECODE, GRID_OVERFLOW, INTERNAL_*: failures while computing geometry
//
// Not every code is fatal. A missing relationship (NOT_FOUND) and an unreadable
// image (IMAGE_DECODE) are normally absorbed by the library and only logged;
// the codes exist so that the lower-level APIs that do return them can be
// classified by callers.
//
// # Usage
//
//	err := errors.New(errors.ErrCodeInvalidInput, "scale must be positive, got %v", scale)
//	if errors.Is(err, errors.ErrCodeInvalidInput) {
//	    // Handle validation error
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeMalformedPackage, origErr, "relationship %s", id)
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Input validation errors
	ErrCodeInvalidInput    Code = "INVALID_INPUT"
	ErrCodeInvalidConfig   Code = "INVALID_CONFIG"
	ErrCodeInvalidPartName Code = "INVALID_PART_NAME"
	ErrCodeInvalidCellSize Code = "INVALID_CELL_SIZE"

	// Container errors
	ErrCodeNotFound         Code = "NOT_FOUND"
	ErrCodeMalformedPackage Code = "MALFORMED_PACKAGE"
	ErrCodeIO               Code = "IO_ERROR"

	// Geometry errors
	ErrCodeImageDecode  Code = "IMAGE_DECODE"
	ErrCodeGridOverflow Code = "GRID_OVERFLOW"

	// Internal errors
	ErrCodeInternal    Code = "INTERNAL_ERROR"
	ErrCodeUnsupported Code = "UNSUPPORTED"
)

// Error is a structured error with a code and optional cause.
type Error struct {
	Code    Code   // Machine-readable error code
	Message string // Human-readable message
	Cause   error  // Underlying error (optional)
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause for errors.Is/As compatibility.
func (e *Error) Unwrap() error {
	return e.Cause
}

// New creates a new Error with the given code and formatted message.
func New(code Code, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap creates a new Error wrapping an existing error.
func Wrap(code Code, cause error, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Cause:   cause,
	}
}

// Is reports whether err has the given error code.
// It unwraps the error chain looking for an *Error with a matching code.
func Is(err error, code Code) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == code
	}
	return false
}

// GetCode extracts the error code from an error, if available.
// Returns empty string if the error is not an *Error.
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// UserMessage returns a user-friendly message for the error.
// For *Error types, returns the message without the code prefix.
// For other errors, returns the error string as-is.
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}
