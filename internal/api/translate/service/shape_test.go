package translateService

import (
	"strings"
	"testing"
	"unicode/utf8"
)

func TestParseTranslation(t *testing.T) {
	tests := []struct {
		name           string
		raw            string
		wantText       string
		wantConfidence float64
		wantDegraded   bool
	}{
		{
			name:           "plain json",
			raw:            `{"detected": true, "text": "thank you", "confidence": 0.8, "description": "flat hand from chin"}`,
			wantText:       "thank you",
			wantConfidence: 0.8,
		},
		{
			name:           "fenced json",
			raw:            "Here you go:\n```json\n{\"detected\": true, \"text\": \"hello\", \"confidence\": 0.95}\n```",
			wantText:       "hello",
			wantConfidence: 0.95,
		},
		{
			name:           "json inside prose",
			raw:            `The answer is {"detected": true, "text": "yes", "confidence": "0.7"} as requested.`,
			wantText:       "yes",
			wantConfidence: 0.7,
		},
		{
			name:           "missing confidence",
			raw:            `{"detected": true, "text": "please"}`,
			wantText:       "please",
			wantConfidence: 0.5,
		},
		{
			name:           "confidence clamped",
			raw:            `{"detected": true, "text": "sorry", "confidence": 7}`,
			wantText:       "sorry",
			wantConfidence: 1,
		},
		{
			name:     "detected false",
			raw:      `{"detected": false, "text": "", "confidence": 0.9}`,
			wantText: "",
		},
		{
			name:     "sentinel text field",
			raw:      `{"detected": true, "text": "NO_SIGN_DETECTED", "confidence": 0.9}`,
			wantText: "",
		},
		{
			name:         "bare sentinel",
			raw:          "no_sign_detected",
			wantText:     "",
			wantDegraded: true,
		},
		{
			name:         "sentinel in prose",
			raw:          "I think this is NO_SIGN_DETECTED because the hands are hidden",
			wantText:     "",
			wantDegraded: true,
		},
		{
			name:           "prose fallback",
			raw:            "The person is signing hello",
			wantText:       "The person is signing hello",
			wantConfidence: 0.5,
			wantDegraded:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, degraded := ParseTranslation(tt.raw)
			if got.Text != tt.wantText {
				t.Errorf("text = %q, want %q", got.Text, tt.wantText)
			}
			if got.Confidence != tt.wantConfidence {
				t.Errorf("confidence = %v, want %v", got.Confidence, tt.wantConfidence)
			}
			if degraded != tt.wantDegraded {
				t.Errorf("degraded = %v, want %v", degraded, tt.wantDegraded)
			}
		})
	}
}

func TestParseTranslationTruncatesFallback(t *testing.T) {
	raw := strings.Repeat("ab", 120)
	got, degraded := ParseTranslation(raw)

	if !degraded {
		t.Fatal("expected degraded result")
	}
	if n := utf8.RuneCountInString(got.Text); n != 100 {
		t.Errorf("text has %d runes, want 100", n)
	}
	if got.Confidence != 0.5 {
		t.Errorf("confidence = %v, want 0.5", got.Confidence)
	}
	if got.RawResponse == nil || *got.RawResponse != raw {
		t.Errorf("raw response not preserved")
	}
}
