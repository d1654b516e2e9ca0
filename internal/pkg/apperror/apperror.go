// Package apperror defines the error taxonomy every service returns.
// The HTTP layer converts these to status codes in one place; nothing
// below the controllers knows about HTTP.
package apperror

import (
	"errors"
	"fmt"
)

// Kind classifies an error for the handler boundary.
type Kind int

const (
	// KindValidation: missing or mismatched input, user-correctable.
	KindValidation Kind = iota
	// KindConflict: duplicate unique field.
	KindConflict
	// KindAuth: bad credentials or missing session.
	KindAuth
	// KindNotFound: no matching record.
	KindNotFound
	// KindStorage: underlying persistence failure, surfaced opaquely.
	KindStorage
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

func Validation(message string) *Error {
	return &Error{Kind: KindValidation, Message: message}
}

func Conflict(message string) *Error {
	return &Error{Kind: KindConflict, Message: message}
}

func Auth(message string) *Error {
	return &Error{Kind: KindAuth, Message: message}
}

func NotFound(message string) *Error {
	return &Error{Kind: KindNotFound, Message: message}
}

// Storage wraps a persistence error. The wrapped cause is logged, never
// sent to the client.
func Storage(message string, err error) *Error {
	return &Error{Kind: KindStorage, Message: message, Err: err}
}

// KindOf reports the taxonomy kind of err, or (0, false) when err is
// not a taxonomy error.
func KindOf(err error) (Kind, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind, true
	}
	return 0, false
}
