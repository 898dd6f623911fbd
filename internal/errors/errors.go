// Package errors provides structured error types for the alike toolkit.
package errors

import (
	"fmt"
)

// ErrorKind represents the type of error.
type ErrorKind int

const (
	KindRuntime ErrorKind = iota
	KindConfig
	KindNotFound
	KindValidation
)

// Error is the base error type for the toolkit.
type Error struct {
	Kind    ErrorKind
	Message string
	Suite   string // Suite name if applicable
	Case    string // Case name if applicable
	Cause   error  // Underlying error
}

func (e *Error) Error() string {
	if e.Suite != "" && e.Case != "" {
		return fmt.Sprintf("[%s/%s] %s", e.Suite, e.Case, e.Message)
	}
	if e.Suite != "" {
		return fmt.Sprintf("[%s] %s", e.Suite, e.Message)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// New creates a new runtime error.
func New(message string) *Error {
	return &Error{
		Kind:    KindRuntime,
		Message: message,
	}
}

// Newf creates a new runtime error with formatting.
func Newf(format string, args ...interface{}) *Error {
	return New(fmt.Sprintf(format, args...))
}

// Config creates a new configuration error.
func Config(message string) *Error {
	return &Error{
		Kind:    KindConfig,
		Message: message,
	}
}

// Configf creates a new configuration error with formatting.
func Configf(format string, args ...interface{}) *Error {
	return Config(fmt.Sprintf(format, args...))
}

// Validation creates a new validation error.
func Validation(message string) *Error {
	return &Error{
		Kind:    KindValidation,
		Message: message,
	}
}

// Validationf creates a new validation error with formatting.
func Validationf(format string, args ...interface{}) *Error {
	return Validation(fmt.Sprintf(format, args...))
}

// Wrap wraps an error with additional context.
func Wrap(err error, message string) *Error {
	return &Error{
		Kind:    KindRuntime,
		Message: message,
		Cause:   err,
	}
}

// CaseError creates an error for a specific case within a suite.
func CaseError(suite, name, message string) *Error {
	return &Error{
		Kind:    KindRuntime,
		Suite:   suite,
		Case:    name,
		Message: message,
	}
}

// NotFound creates a not found error.
func NotFound(what, name string) *Error {
	return &Error{
		Kind:    KindNotFound,
		Message: fmt.Sprintf("%s not found: %s", what, name),
	}
}

// IsKind reports whether err is an *Error of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	e, ok := err.(*Error)
	return ok && e.Kind == kind
}
