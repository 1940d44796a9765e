// Package apperr defines the error taxonomy shared by all usecases.
package apperr

import (
	"errors"
	"fmt"
)

type Kind int

const (
	// Validation marks bad or missing operator input.
	Validation Kind = iota
	// Conflict marks a uniqueness violation, e.g. a duplicate username.
	Conflict
	// NotFound marks a referenced identifier that resolves to no row.
	NotFound
	// Persistence marks a store failure, carrying the store's diagnostic.
	Persistence
	// Timeout marks a bounded wait that expired before its dependency arrived.
	Timeout
)

func (k Kind) String() string {
	switch k {
	case Validation:
		return "validation"
	case Conflict:
		return "conflict"
	case NotFound:
		return "not_found"
	case Persistence:
		return "persistence"
	case Timeout:
		return "timeout"
	default:
		return "unknown"
	}
}

type Error struct {
	Kind Kind
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Msg, e.Err)
	}
	return e.Msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

func New(kind Kind, msg string) *Error {
	return &Error{Kind: kind, Msg: msg}
}

func Newf(kind Kind, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}

// Wrap attaches a kind and message to an underlying error, preserving it for
// errors.Is / errors.As.
func Wrap(kind Kind, msg string, err error) *Error {
	return &Error{Kind: kind, Msg: msg, Err: err}
}

// KindOf reports the kind of err if it is (or wraps) an *Error.
func KindOf(err error) (Kind, bool) {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind, true
	}
	return 0, false
}

func isKind(err error, kind Kind) bool {
	k, ok := KindOf(err)
	return ok && k == kind
}

func IsValidation(err error) bool  { return isKind(err, Validation) }
func IsConflict(err error) bool    { return isKind(err, Conflict) }
func IsNotFound(err error) bool    { return isKind(err, NotFound) }
func IsPersistence(err error) bool { return isKind(err, Persistence) }
func IsTimeout(err error) bool     { return isKind(err, Timeout) }
