// Package domainerrors defines the coded errors returned by the domain layer.
//
// Errors carry a stable, machine-matchable Code next to a human-readable
// message; callers branch on HasCode rather than on sentinel values or
// message text.
package domainerrors

import (
	"errors"
	"fmt"
)

// Code is the normalized failure taxonomy.
type Code string

const (
	// CodeInvalidInput indicates a candidate value rejected at a trust boundary.
	CodeInvalidInput Code = "invalid_input"

	// CodeInvariantViolation indicates an internal invariant that should be
	// unreachable was observed broken.
	CodeInvariantViolation Code = "invariant_violation"

	// CodeInternal indicates an unexpected internal error.
	CodeInternal Code = "internal"
)

// Error is a coded domain error.
type Error struct {
	Code    Code
	Message string
	Err     error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap supports errors.Is and errors.As on the wrapped cause.
func (e *Error) Unwrap() error {
	return e.Err
}

// New creates a coded error.
func New(code Code, message string) error {
	return &Error{Code: code, Message: message}
}

// Wrap attaches a code and message to an underlying error.
func Wrap(err error, code Code, message string) error {
	return &Error{Code: code, Message: message, Err: err}
}

// HasCode reports whether err, or anything it wraps, carries the given code.
func HasCode(err error, code Code) bool {
	var e *Error
	return errors.As(err, &e) && e.Code == code
}

// CodeOf extracts the code from an error, defaulting to CodeInternal for
// uncoded errors.
func CodeOf(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return CodeInternal
}
