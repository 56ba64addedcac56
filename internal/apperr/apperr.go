// Package apperr defines the application error type
package apperr

import (
	"errors"
	"fmt"
)

// Error is an application error. Message may contain printf verbs which are
// filled in through Fmt. Errors produced by Fmt and Wrap still match their
// originating sentinel with errors.Is.
type Error struct {
	Cause    error
	sentinel *Error
	Message  string
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}

	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Cause
}

func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}

	return t == e || t == e.sentinel || (e.sentinel != nil && e.sentinel == t.sentinel)
}

func (e *Error) root() *Error {
	if e.sentinel != nil {
		return e.sentinel
	}

	return e
}

// Fmt fills in the message placeholders and returns a new error that
// retains the identity of the original.
func (e *Error) Fmt(args ...any) *Error {
	return &Error{
		Message:  fmt.Sprintf(e.Message, args...),
		Cause:    e.Cause,
		sentinel: e.root(),
	}
}

// Wrap attaches an underlying cause to the error.
func (e *Error) Wrap(err error) *Error {
	return &Error{
		Message:  e.Message,
		Cause:    err,
		sentinel: e.root(),
	}
}
