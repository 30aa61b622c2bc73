package response

import (
	"errors"
	"fmt"
	"net/http"
)

type Error struct {
	Code int
	Err  error
}

func (e *Error) Error() string {
	return e.Err.Error()
}

func (e *Error) Unwrap() error {
	return e.Err
}

func (e *Error) Is(target error) bool {
	var t *Error
	ok := errors.As(target, &t)
	if !ok {
		return false
	}
	return e.Code == t.Code && e.Err.Error() == t.Err.Error()
}

func NewError(code int, err string) error {
	return &Error{code, errors.New(err)}
}

// Wrap keeps the public message of base and chains cause for errors.Is/As.
func Wrap(base error, cause error) error {
	var b *Error
	if !errors.As(base, &b) {
		return fmt.Errorf("%w: %w", base, cause)
	}
	return &wrapped{base: b, cause: cause}
}

type wrapped struct {
	base  *Error
	cause error
}

func (w *wrapped) Error() string {
	return w.base.Error()
}

func (w *wrapped) Unwrap() []error {
	return []error{w.base, w.cause}
}

// StatusCode returns the HTTP status carried by err, or 500.
func StatusCode(err error) int {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return http.StatusInternalServerError
}
