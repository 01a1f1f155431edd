package api

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrUnavailable means no response was received at all.
	ErrUnavailable = errors.New("server unavailable")
	// ErrUnauthorized matches StatusError responses with HTTP 401.
	ErrUnauthorized = errors.New("unauthorized")
)

// StatusError is returned when the server responded with a failure: either
// a non-2xx HTTP status or a 2xx body whose envelope reports success=false.
// Message carries the server-provided message when present.
type StatusError struct {
	Status  int
	Message string
}

func (e *StatusError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("api error (status %d): %s", e.Status, e.Message)
	}
	return fmt.Sprintf("api error (status %d)", e.Status)
}

// Is lets callers match 401 responses with errors.Is(err, ErrUnauthorized).
func (e *StatusError) Is(target error) bool {
	return target == ErrUnauthorized && e.Status == http.StatusUnauthorized
}

// DecodeError is returned when a response body cannot be interpreted.
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("malformed response: %v", e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}
