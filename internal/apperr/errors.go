package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies an application error so the handler boundary can map it to
// an HTTP status without inspecting error strings.
type Kind int

const (
	KindUnexpected Kind = iota
	KindValidation
	KindNotFound
	KindConflict
	KindInvalidAction
)

// Error is the application error type carried from stores and services up to
// the HTTP boundary.
type Error struct {
	kind    Kind
	message string
	cause   error
}

func (e *Error) Error() string {
	return e.message
}

func (e *Error) Unwrap() error {
	return e.cause
}

// Kind returns the classification of the error.
func (e *Error) Kind() Kind {
	return e.kind
}

// NewValidation returns a validation error (missing or malformed fields).
func NewValidation(formatString string, a ...interface{}) *Error {
	return &Error{kind: KindValidation, message: fmt.Sprintf(formatString, a...)}
}

// NewNotFound returns an error for an id that does not resolve to a record.
func NewNotFound(formatString string, a ...interface{}) *Error {
	return &Error{kind: KindNotFound, message: fmt.Sprintf(formatString, a...)}
}

// NewConflict returns an error for a duplicate unique key.
func NewConflict(formatString string, a ...interface{}) *Error {
	return &Error{kind: KindConflict, message: fmt.Sprintf(formatString, a...)}
}

// NewInvalidAction returns an error for an illegal state transition.
func NewInvalidAction(formatString string, a ...interface{}) *Error {
	return &Error{kind: KindInvalidAction, message: fmt.Sprintf(formatString, a...)}
}

// NewUnexpected wraps a store or serialization failure. The cause is kept for
// server-side logging; the message is what clients see.
func NewUnexpected(cause error, formatString string, a ...interface{}) *Error {
	return &Error{kind: KindUnexpected, message: fmt.Sprintf(formatString, a...), cause: cause}
}

// KindOf returns the Kind of err, or KindUnexpected for foreign errors.
func KindOf(err error) Kind {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.kind
	}
	return KindUnexpected
}

// Is reports whether err carries the given Kind.
func Is(err error, kind Kind) bool {
	return KindOf(err) == kind
}

// HTTPStatus maps an error to the status code its kind calls for.
func HTTPStatus(err error) int {
	switch KindOf(err) {
	case KindValidation, KindInvalidAction:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	case KindConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
