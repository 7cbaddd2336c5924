// Package apperror defines the error kinds returned by the service layer
// and their HTTP status codes.
package apperror

import (
	"errors"   // Error chain inspection
	"fmt"      // Message formatting
	"net/http" // HTTP status codes
)

// Kind classifies a failure
type Kind string

const (
	KindValidation   Kind = "VALIDATION_ERROR"   // Missing or malformed input
	KindConflict     Kind = "CONFLICT"           // Uniqueness violation
	KindNotFound     Kind = "NOT_FOUND"          // Referenced record absent
	KindUnauthorized Kind = "UNAUTHORIZED"       // Rejected credentials
	KindCapacity     Kind = "CAPACITY_EXHAUSTED" // Bounded resource used up
	KindInternal     Kind = "INTERNAL_ERROR"     // Storage or invariant failure
)

var statusByKind = map[Kind]int{
	KindValidation:   http.StatusBadRequest,
	KindConflict:     http.StatusBadRequest, // Duplicates are client errors
	KindNotFound:     http.StatusNotFound,
	KindUnauthorized: http.StatusUnauthorized,
	KindCapacity:     http.StatusServiceUnavailable,
	KindInternal:     http.StatusInternalServerError,
}

// HTTPStatus returns the status code for a kind; unknown kinds map to 500
func (k Kind) HTTPStatus() int {
	if status, ok := statusByKind[k]; ok {
		return status
	}
	return http.StatusInternalServerError
}

// Error is a classified failure with a client-facing message
type Error struct {
	Kind    Kind   // Failure class
	Message string // Client-facing message
	Err     error  // Underlying cause, may be nil
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Validation reports a missing or malformed field
func Validation(format string, args ...any) *Error {
	return &Error{Kind: KindValidation, Message: fmt.Sprintf(format, args...)}
}

// Conflict reports a uniqueness violation
func Conflict(message string, err error) *Error {
	return &Error{Kind: KindConflict, Message: message, Err: err}
}

// NotFound reports a missing referenced record
func NotFound(message string) *Error {
	return &Error{Kind: KindNotFound, Message: message}
}

// Unauthorized reports rejected credentials
func Unauthorized(message string) *Error {
	return &Error{Kind: KindUnauthorized, Message: message}
}

// Capacity reports that a bounded resource was exhausted
func Capacity(message string) *Error {
	return &Error{Kind: KindCapacity, Message: message}
}

// Internal wraps an unexpected storage or invariant failure
func Internal(message string, err error) *Error {
	return &Error{Kind: KindInternal, Message: message, Err: err}
}

// As returns the *Error in err's chain, or nil
func As(err error) *Error {
	var typed *Error
	if errors.As(err, &typed) {
		return typed
	}
	return nil
}

// KindOf returns err's kind; untyped errors are internal
func KindOf(err error) Kind {
	if typed := As(err); typed != nil {
		return typed.Kind
	}
	return KindInternal
}

// Is reports whether err carries the given kind
func Is(err error, kind Kind) bool {
	return err != nil && KindOf(err) == kind
}
