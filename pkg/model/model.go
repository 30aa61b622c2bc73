// Package model is the contract between the API services and whichever
// generative model backs them.
package model

import (
	"context"
	"errors"
	"fmt"
)

var (
	ErrNotConfigured = errors.New("model gateway is not configured")
	ErrEmptyResponse = errors.New("model returned no text")
)

// Image is an inline image part sent alongside the prompt.
type Image struct {
	MIMEType string
	Data     []byte
}

// Prompt is one request: text, optionally followed by a single image.
type Prompt struct {
	Text  string
	Image *Image
}

func TextPrompt(text string) Prompt {
	return Prompt{Text: text}
}

func ImagePrompt(text string, jpeg []byte) Prompt {
	return Prompt{Text: text, Image: &Image{MIMEType: "image/jpeg", Data: jpeg}}
}

// Gateway performs exactly one completion per call and returns the model's
// text untouched. Implementations do not retry.
type Gateway interface {
	Complete(ctx context.Context, prompt Prompt) (string, error)
	Configured() bool
	Provider() string
}

// Error is a failed outbound call.
type Error struct {
	Provider string
	Err      error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s API error: %v", e.Provider, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func NewError(provider string, err error) error {
	if err == nil {
		return nil
	}
	var me *Error
	if errors.As(err, &me) {
		return err
	}
	return &Error{Provider: provider, Err: err}
}

func IsNotConfigured(err error) bool {
	return errors.Is(err, ErrNotConfigured)
}

// Unconfigured is a gateway with no credential. Every call fails with
// ErrNotConfigured.
type Unconfigured struct {
	Name string
}

func (u Unconfigured) Complete(context.Context, Prompt) (string, error) {
	return "", ErrNotConfigured
}

func (u Unconfigured) Configured() bool { return false }

func (u Unconfigured) Provider() string {
	if u.Name == "" {
		return "none"
	}
	return u.Name
}
