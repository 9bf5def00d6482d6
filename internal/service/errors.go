package service

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrAuthRequired signals that there is no valid credential for the call.
// It covers both a missing/expired local token and an HTTP 401 from the
// backend, so callers can route the user to sign-in without inspecting
// response bodies.
var ErrAuthRequired = errors.New("authentication required")

// ValidationError is a local, pre-flight input failure. When returned,
// no network call was issued.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s %s", e.Field, e.Reason)
}

// RequestError is a non-2xx response from the backend. Message is taken
// from the response body's detail field when present.
type RequestError struct {
	Status  int
	Message string
}

func (e *RequestError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("request failed with status %d", e.Status)
}

// NetworkError is a transport-level failure: the request produced no
// HTTP response at all.
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network unavailable: %v", e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// IsNotFound reports whether err is a 404 from the backend.
func IsNotFound(err error) bool {
	var re *RequestError
	return errors.As(err, &re) && re.Status == http.StatusNotFound
}
