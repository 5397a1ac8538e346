package goerror

import (
	"errors"
	"net/http"
	"testing"
)

func TestStatusCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"conflict", NewBusiness("duplicate", CodeConflict), http.StatusConflict},
		{"not found", NewBusiness("missing", CodeNotFound), http.StatusNotFound},
		{"unauthorized", NewBusiness("bad code", CodeUnauthorized), http.StatusUnauthorized},
		{"forbidden", NewBusiness("not verified", CodeForbidden), http.StatusForbidden},
		{"too many requests", NewBusiness("slow down", CodeTooManyRequest), http.StatusTooManyRequests},
		{"invalid format", NewInvalidFormat(), http.StatusBadRequest},
		{"invalid input", NewInvalidInput(errors.New("boom")), http.StatusUnprocessableEntity},
		{"server", NewServer(errors.New("boom")), http.StatusInternalServerError},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var gerr *Error
			if !errors.As(tc.err, &gerr) {
				t.Fatalf("expected *Error, got %T", tc.err)
			}
			if got := gerr.StatusCode(); got != tc.want {
				t.Errorf("expected %d, got %d", tc.want, got)
			}
		})
	}
}

func TestNewServerHidesDetail(t *testing.T) {
	err := NewServer(errors.New("pq: connection reset"))

	var gerr *Error
	if !errors.As(err, &gerr) {
		t.Fatalf("expected *Error, got %T", err)
	}
	if gerr.Msg() != "Internal server error" {
		t.Errorf("expected generic message, got %q", gerr.Msg())
	}
	if !errors.Is(err, gerr.Unwrap()) {
		t.Error("expected the underlying error to be preserved")
	}
}
