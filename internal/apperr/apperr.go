// Package apperr defines the operational error type shared by all services.
// An operational error is an anticipated failure (bad input, missing record,
// auth rejection) carrying the HTTP status it should be rendered with.
// Anything that is not an *apperr.Error is treated as unexpected and rendered
// as a generic 500.
package apperr

import (
	"errors"
	"net/http"
)

type Error struct {
	Code    int    // HTTP-like severity code
	Message string // safe to show to the client
	Err     error  // underlying cause, logged server-side, never rendered
}

func (e *Error) Error() string { return e.Message }
func (e *Error) Unwrap() error { return e.Err }

func New(code int, message string) *Error { return &Error{Code: code, Message: message} }

func BadRequest(message string) *Error   { return New(http.StatusBadRequest, message) }
func Unauthorized(message string) *Error { return New(http.StatusUnauthorized, message) }
func Forbidden(message string) *Error    { return New(http.StatusForbidden, message) }
func NotFound(message string) *Error     { return New(http.StatusNotFound, message) }
func Conflict(message string) *Error     { return New(http.StatusConflict, message) }

// Database wraps an opaque store failure. The cause is kept for the server
// log; the client only sees the message.
func Database(message string, cause error) *Error {
	return &Error{Code: http.StatusInternalServerError, Message: message, Err: cause}
}

// From extracts the operational error, if err is one.
func From(err error) (*Error, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}
