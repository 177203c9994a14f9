// Package errors defines the business error type used across the API server.
//
// An Errno carries the HTTP status to surface a failure with and the message
// shown to the client. Predefined errnos cover the error taxonomy of the
// service; handlers and business logic return them directly or derive
// variants with WithMessage / WithCause.
package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// Errno is a business error with an associated HTTP status.
type Errno struct {
	// HTTP is the status code surfaced to the client.
	HTTP int

	// Message is the client-facing message.
	Message string

	// cause is the underlying error, never shown to the client.
	cause error
}

// Error implements the error interface.
func (e *Errno) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.cause)
	}
	return e.Message
}

// Unwrap returns the underlying cause.
func (e *Errno) Unwrap() error {
	return e.cause
}

// Is reports whether target is the same predefined errno.
// Two errnos match when they share status and message, so variants created
// with WithCause still compare equal to their template.
func (e *Errno) Is(target error) bool {
	var t *Errno
	if !errors.As(target, &t) {
		return false
	}
	return e.HTTP == t.HTTP && e.Message == t.Message
}

// WithMessage returns a copy of the errno with a different client message.
func (e *Errno) WithMessage(format string, args ...interface{}) *Errno {
	clone := *e
	clone.Message = fmt.Sprintf(format, args...)
	return &clone
}

// WithCause returns a copy of the errno carrying the underlying error.
func (e *Errno) WithCause(err error) *Errno {
	clone := *e
	clone.cause = err
	return &clone
}

// New creates an errno with the given status and message.
func New(httpStatus int, format string, args ...interface{}) *Errno {
	return &Errno{HTTP: httpStatus, Message: fmt.Sprintf(format, args...)}
}

// FromError coerces any error into an errno. Non-errno errors map to
// ErrInternal so that internal details never leak to the client.
func FromError(err error) *Errno {
	var e *Errno
	if errors.As(err, &e) {
		return e
	}
	return ErrInternal.WithCause(err)
}

// Predefined errnos. The messages for credential failures are deliberately
// identical for unknown emails and wrong passwords so that login responses
// carry no user-enumeration signal.
var (
	// ErrBadRequest covers malformed or missing request fields.
	ErrBadRequest = New(http.StatusBadRequest, "Invalid request")

	// ErrOriginRejected is returned by the origin gate for origins that are
	// not on the allow-list. The message is fixed and never names the
	// configured origins.
	ErrOriginRejected = New(http.StatusForbidden, "CORS: Origin not allowed")

	// ErrInvalidCredentials covers both unknown email and wrong password.
	ErrInvalidCredentials = New(http.StatusUnauthorized, "Invalid credentials")

	// ErrInvalidToken is returned when a request carries a missing, expired
	// or otherwise unverifiable token.
	ErrInvalidToken = New(http.StatusUnauthorized, "Not authorized. Login again")

	// ErrUserExists is returned when registering an email that is taken.
	ErrUserExists = New(http.StatusConflict, "User already exists with this email")

	// ErrUserNotFound is an internal lookup miss; login maps it to
	// ErrInvalidCredentials before it reaches a client.
	ErrUserNotFound = New(http.StatusNotFound, "User not found")

	// ErrNoCredits is returned when image generation is requested with an
	// exhausted credit balance.
	ErrNoCredits = New(http.StatusForbidden, "No credit balance")

	// ErrStoreUnavailable covers user-store or network failures.
	ErrStoreUnavailable = New(http.StatusServiceUnavailable, "Service temporarily unavailable")

	// ErrInternal is the catch-all for unexpected failures.
	ErrInternal = New(http.StatusInternalServerError, "Internal server error")
)
