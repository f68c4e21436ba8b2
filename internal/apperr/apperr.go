// Package apperr defines the failure kinds returned by the trip engine.
//
// Every error that crosses a package boundary is an *Error carrying one
// Kind. Callers branch with errors.Is against the Err* sentinels or with
// KindOf, and map kinds to whatever their transport needs.
package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind is a transport-independent failure category.
type Kind string

const (
	KindUnknown            Kind = "UNKNOWN"
	KindInvalidInput       Kind = "INVALID_INPUT"
	KindInvalidRange       Kind = "INVALID_RANGE"
	KindNotFound           Kind = "NOT_FOUND"
	KindForbidden          Kind = "FORBIDDEN"
	KindConflict           Kind = "CONFLICT"
	KindPersistenceFailure Kind = "PERSISTENCE_FAILURE"
)

// Sentinels for errors.Is. An *Error matches the sentinel of its kind.
var (
	ErrInvalidInput       = &Error{Kind: KindInvalidInput}
	ErrInvalidRange       = &Error{Kind: KindInvalidRange}
	ErrNotFound           = &Error{Kind: KindNotFound}
	ErrForbidden          = &Error{Kind: KindForbidden}
	ErrConflict           = &Error{Kind: KindConflict}
	ErrPersistenceFailure = &Error{Kind: KindPersistenceFailure}
)

// Error is a categorized failure with an optional wrapped cause.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	msg := e.Message
	if msg == "" {
		msg = string(e.Kind)
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether target is an *Error of the same kind.
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return t.Kind == e.Kind
}

// HTTPStatus maps the kind to the conventional HTTP status code.
func (k Kind) HTTPStatus() int {
	switch k {
	case KindInvalidInput, KindInvalidRange:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	case KindForbidden:
		return http.StatusForbidden
	case KindConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// KindOf returns the kind of the first *Error in err's chain.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

func newf(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// Invalid reports a malformed or missing field.
func Invalid(format string, args ...any) error {
	return newf(KindInvalidInput, format, args...)
}

// Range reports a date or time ordering violation.
func Range(format string, args ...any) error {
	return newf(KindInvalidRange, format, args...)
}

// NotFound reports a reference that does not resolve.
func NotFound(format string, args ...any) error {
	return newf(KindNotFound, format, args...)
}

// Forbidden reports a caller that does not own the resource.
func Forbidden(format string, args ...any) error {
	return newf(KindForbidden, format, args...)
}

// Conflict reports an unresolved uniqueness violation.
func Conflict(format string, args ...any) error {
	return newf(KindConflict, format, args...)
}

// Persistence wraps a store failure. An err that already carries a kind is
// returned unchanged so validation failures raised inside a transaction keep
// their meaning.
func Persistence(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	var e *Error
	if errors.As(err, &e) {
		return err
	}
	return &Error{
		Kind:    KindPersistenceFailure,
		Message: fmt.Sprintf(format, args...),
		Err:     err,
	}
}
