// Package llmjson recovers structured payloads from free-form model output.
//
// Extraction never fails. The text is narrowed to the most likely JSON
// region and strictly decoded into the shape's wire type. When that does not
// work the shape synthesizes a minimal valid value from the text instead.
package llmjson

import (
	"strings"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	jsonFence = "```json"
	fence     = "```"
)

type ShapeID string

// Input is what a shape sees: the model's full text and the region of it
// that was selected for parsing.
type Input struct {
	Raw      string
	Selected string
}

// Shape describes one expected result. W is the wire type decoded from JSON
// and T the result handed back to callers.
type Shape[W any, T any] struct {
	ID ShapeID

	// Convert turns a strictly decoded payload into the result.
	Convert func(parsed W, in Input) T

	// Fallback builds the degraded result when no payload could be decoded.
	Fallback func(in Input) T
}

type Result[T any] struct {
	Value    T
	Selected string

	// Degraded reports that Value came from the shape's fallback.
	Degraded bool
}

// Extract decodes raw according to shape. It always returns a value.
func Extract[W any, T any](raw string, shape Shape[W, T]) Result[T] {
	in := Input{Raw: raw, Selected: Select(raw)}

	if w, ok := decode[W](in.Selected); ok {
		return Result[T]{Value: shape.Convert(w, in), Selected: in.Selected}
	}

	// Models sometimes wrap an otherwise valid object in prose.
	if window, ok := objectWindow(in.Selected); ok && window != in.Selected {
		if w, ok := decode[W](window); ok {
			return Result[T]{Value: shape.Convert(w, in), Selected: in.Selected}
		}
	}

	return Result[T]{
		Value:    shape.Fallback(in),
		Selected: in.Selected,
		Degraded: true,
	}
}

// Select returns the content of the first ```json fence, else of the first
// generic fence, else the whole text. The result is trimmed.
func Select(raw string) string {
	text := strings.TrimSpace(raw)

	if _, after, ok := strings.Cut(text, jsonFence); ok {
		body, _, _ := strings.Cut(after, fence)
		return strings.TrimSpace(body)
	}

	if _, after, ok := strings.Cut(text, fence); ok {
		body, _, _ := strings.Cut(after, fence)
		return strings.TrimSpace(body)
	}

	return text
}

func decode[W any](text string) (W, bool) {
	var w W
	if text == "" || (text[0] != '{' && text[0] != '[') {
		return w, false
	}
	if err := json.UnmarshalFromString(text, &w); err != nil {
		var zero W
		return zero, false
	}
	return w, true
}

func objectWindow(text string) (string, bool) {
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start == -1 || end <= start {
		return "", false
	}
	return text[start : end+1], true
}

// Truncate cuts s to at most n runes.
func Truncate(s string, n int) string {
	if n <= 0 {
		return ""
	}
	count := 0
	for i := range s {
		if count == n {
			return s[:i]
		}
		count++
	}
	return s
}

// ContainsFold reports whether substr is within s, ignoring case.
func ContainsFold(s, substr string) bool {
	return strings.Contains(strings.ToUpper(s), strings.ToUpper(substr))
}
