package api

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestIsRetryable(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"transport failure", errors.New("connection refused"), true},
		{"429", &Error{Status: http.StatusTooManyRequests}, true},
		{"500", &Error{Status: http.StatusInternalServerError}, true},
		{"503", &Error{Status: http.StatusServiceUnavailable}, true},
		{"400", &Error{Status: http.StatusBadRequest}, false},
		{"401", &Error{Status: http.StatusUnauthorized}, false},
		{"404", &Error{Status: http.StatusNotFound}, false},
		{"wrapped api error", fmt.Errorf("fetch: %w", &Error{Status: 502}), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsRetryable(tt.err); got != tt.want {
				t.Errorf("IsRetryable(%v) = %v, want %v", tt.err, got, tt.want)
			}
		})
	}
}

func TestIsUnauthorized(t *testing.T) {
	if !IsUnauthorized(&Error{Status: 401}) {
		t.Error("expected 401 to be unauthorized")
	}
	if IsUnauthorized(&Error{Status: 403}) {
		t.Error("expected 403 not to be unauthorized")
	}
	if IsUnauthorized(errors.New("timeout")) {
		t.Error("expected transport error not to be unauthorized")
	}
}

func TestErrorMessage(t *testing.T) {
	withMsg := &Error{Status: 400, Message: "Invalid OTP. Please check your email and try again."}
	if withMsg.Error() != "api error 400: Invalid OTP. Please check your email and try again." {
		t.Errorf("unexpected message %q", withMsg.Error())
	}

	bare := &Error{Status: 502}
	if bare.Error() != "api error 502: Bad Gateway" {
		t.Errorf("unexpected message %q", bare.Error())
	}
}

func TestNewError_FieldPreference(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"error field", `{"error":"Cart not found"}`, "Cart not found"},
		{"message field", `{"message":"Email is already verified"}`, "Email is already verified"},
		{"detail field", `{"detail":"Not found."}`, "Not found."},
		{"error wins over message", `{"error":"a","message":"b"}`, "a"},
		{"non-json", `<html></html>`, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newError(400, []byte(tt.body))
			if e.Message != tt.want {
				t.Errorf("expected %q, got %q", tt.want, e.Message)
			}
		})
	}
}

func TestStatusOf(t *testing.T) {
	if got := StatusOf(&Error{Status: 404}); got != 404 {
		t.Errorf("expected 404, got %d", got)
	}
	if got := StatusOf(errors.New("dial tcp: refused")); got != 0 {
		t.Errorf("expected 0 for transport error, got %d", got)
	}
}
