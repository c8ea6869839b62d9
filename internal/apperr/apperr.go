// Package apperr defines the error taxonomy shared by the repositories,
// validators and HTTP handlers.
package apperr

import (
	"errors"
	"fmt"
)

type Kind int

const (
	// InvalidInput marks a malformed or missing field.
	InvalidInput Kind = iota
	// NotFound marks a missing event, or a missing confirmation within an
	// event.
	NotFound
	// Conflict marks a uniqueness violation on event creation.
	Conflict
	// Unauthorized marks a missing or invalid session, or a wrong secret.
	Unauthorized
	// Internal marks an unexpected storage or transport failure.
	Internal
)

type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

func Newf(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// Wrap attaches a cause that is logged but never shown to callers.
func Wrap(kind Kind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

// KindOf reports the kind of err, or Internal when err is not an *Error.
func KindOf(err error) Kind {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return Internal
}
