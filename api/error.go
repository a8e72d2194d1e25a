// ABOUTME: Normalized API error carrying HTTP status and server message
// ABOUTME: Classification helpers for retryable and unauthorized failures

package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// Error is a non-2xx response from the storefront API. Message prefers
// the server's own wording so form errors read the way the backend
// wrote them ("A user with this email already exists.").
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("api error %d: %s", e.Status, e.Message)
	}
	return fmt.Sprintf("api error %d: %s", e.Status, http.StatusText(e.Status))
}

// errorBody matches the server's error envelopes. Different endpoints
// use different field names; first non-empty wins.
type errorBody struct {
	Err     string `json:"error"`
	Message string `json:"message"`
	Detail  string `json:"detail"`
}

// newError builds an *Error from a response body, tolerating non-JSON
// bodies.
func newError(status int, body []byte) *Error {
	var parsed errorBody
	if err := json.Unmarshal(body, &parsed); err == nil {
		for _, msg := range []string{parsed.Err, parsed.Message, parsed.Detail} {
			if msg != "" {
				return &Error{Status: status, Message: msg}
			}
		}
	}
	return &Error{Status: status}
}

// IsRetryable reports whether a failure is transient. Transport errors
// and 429/5xx responses qualify; other 4xx responses are the server
// rejecting the request and will not succeed on retry.
func IsRetryable(err error) bool {
	if err == nil {
		return false
	}
	var apiErr *Error
	if errors.As(err, &apiErr) {
		switch {
		case apiErr.Status == http.StatusTooManyRequests:
			return true
		case apiErr.Status >= 500:
			return true
		default:
			return false
		}
	}
	// Anything that never produced a status is a transport failure.
	return true
}

// IsUnauthorized reports whether the server rejected the caller's
// credentials (missing or expired token).
func IsUnauthorized(err error) bool {
	var apiErr *Error
	return errors.As(err, &apiErr) && apiErr.Status == http.StatusUnauthorized
}

// StatusOf returns the HTTP status carried by err, or 0 for transport
// failures.
func StatusOf(err error) int {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.Status
	}
	return 0
}
