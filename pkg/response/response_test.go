package response

import (
	"errors"
	"net/http"
	"testing"
)

func TestErrorIs(t *testing.T) {
	base := NewError(http.StatusBadRequest, "bad input")

	tests := []struct {
		name   string
		err    error
		target error
		want   bool
	}{
		{name: "same value", err: base, target: base, want: true},
		{name: "equal code and message", err: NewError(http.StatusBadRequest, "bad input"), target: base, want: true},
		{name: "different code", err: NewError(http.StatusConflict, "bad input"), target: base, want: false},
		{name: "different message", err: NewError(http.StatusBadRequest, "other"), target: base, want: false},
		{name: "plain error", err: errors.New("bad input"), target: base, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := errors.Is(tt.err, tt.target); got != tt.want {
				t.Errorf("errors.Is = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestWrap(t *testing.T) {
	base := NewError(http.StatusBadGateway, "upstream failed")
	cause := errors.New("timeout")

	err := Wrap(base, cause)
	if err.Error() != "upstream failed" {
		t.Errorf("message = %q", err.Error())
	}
	if !errors.Is(err, base) || !errors.Is(err, cause) {
		t.Error("wrapped error lost base or cause")
	}
	if StatusCode(err) != http.StatusBadGateway {
		t.Errorf("status = %d", StatusCode(err))
	}

	plain := Wrap(errors.New("base"), cause)
	if !errors.Is(plain, cause) || StatusCode(plain) != http.StatusInternalServerError {
		t.Errorf("plain wrap = %v", plain)
	}
}

func TestWrapCatalogErrors(t *testing.T) {
	cause := errors.New("gemini API error: quota exceeded")

	tests := []struct {
		name   string
		base   error
		status int
	}{
		{name: "invalid image", base: NewError(http.StatusBadRequest, "Invalid image data"), status: http.StatusBadRequest},
		{name: "not configured", base: NewError(http.StatusServiceUnavailable, "model not configured"), status: http.StatusServiceUnavailable},
		{name: "model failed", base: NewError(http.StatusBadGateway, "Failed to translate sign"), status: http.StatusBadGateway},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Wrap(tt.base, cause)

			if !errors.Is(err, tt.base) {
				t.Error("wrapped error does not match its catalog error")
			}
			if !errors.Is(err, cause) {
				t.Error("wrapped error lost its cause")
			}
			if err.Error() != tt.base.Error() {
				t.Errorf("message = %q, want %q", err.Error(), tt.base.Error())
			}
			if got := StatusCode(err); got != tt.status {
				t.Errorf("status = %d, want %d", got, tt.status)
			}

			var e *Error
			if !errors.As(err, &e) || e.Code != tt.status {
				t.Errorf("errors.As = %+v", e)
			}
		})
	}
}
