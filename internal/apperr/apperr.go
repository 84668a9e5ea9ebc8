// Package apperr defines the application error taxonomy. Services return
// *Error values; handlers map the kind to an HTTP status and render a uniform
// JSON body. Wrapped causes stay server-side and are never sent to clients.
package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

type Kind int

const (
	KindValidation Kind = iota
	KindConflict
	KindUnauthenticated
	KindInvalidToken
	KindNotFound
	KindPersistence
)

var statusByKind = map[Kind]int{
	KindValidation:      http.StatusBadRequest,
	KindConflict:        http.StatusBadRequest,
	KindUnauthenticated: http.StatusUnauthorized,
	KindInvalidToken:    http.StatusBadRequest,
	KindNotFound:        http.StatusNotFound,
	KindPersistence:     http.StatusInternalServerError,
}

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

func Unauthenticated(message string) *Error {
	return &Error{Kind: KindUnauthenticated, Message: message}
}

func InvalidToken(message string) *Error {
	return &Error{Kind: KindInvalidToken, Message: message}
}

func NotFound(message string) *Error {
	return &Error{Kind: KindNotFound, Message: message}
}

// Persistence wraps a storage failure behind a generic client message. The
// underlying error is kept for logging only.
func Persistence(message string, err error) *Error {
	return &Error{Kind: KindPersistence, Message: message, Err: err}
}

// Status returns the HTTP status code for err. Unknown error types are
// treated as internal failures.
func Status(err error) int {
	var e *Error
	if errors.As(err, &e) {
		if status, ok := statusByKind[e.Kind]; ok {
			return status
		}
	}
	return http.StatusInternalServerError
}

// PublicMessage returns the client-safe message for err.
func PublicMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return "Internal server error"
}
