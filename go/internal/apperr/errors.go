// Package apperr holds the error kinds the gateway maps onto HTTP statuses.
package apperr

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument marks a request the gateway rejects before calling the API.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrUnauthenticated is returned when no usable session exists.
	ErrUnauthenticated = errors.New("unauthenticated")
	// ErrForbidden is returned when the session user may not perform the action.
	ErrForbidden = errors.New("forbidden")
	// ErrNotFound is returned when a referenced entity does not exist.
	ErrNotFound = errors.New("not found")
	// ErrRateLimited is returned when a client retries too quickly.
	ErrRateLimited = errors.New("too many requests")
)

// Invalid wraps ErrInvalidArgument with a message for the user.
func Invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidArgument, fmt.Sprintf(format, args...))
}

// Forbidden wraps ErrForbidden with a message for the user.
func Forbidden(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrForbidden, fmt.Sprintf(format, args...))
}

// NotFound wraps ErrNotFound with a message for the user.
func NotFound(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrNotFound, fmt.Sprintf(format, args...))
}
