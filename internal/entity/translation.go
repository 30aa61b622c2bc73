package entity

// TranslationResult is the outcome of recognizing one frame. An empty Text
// with zero Confidence means no sign was detected.
type TranslationResult struct {
	Text        string  `json:"text"`
	Confidence  float64 `json:"confidence"`
	RawResponse *string `json:"raw_response,omitempty"`
}

func NoSignDetected(raw string) TranslationResult {
	return TranslationResult{Text: "", Confidence: 0, RawResponse: &raw}
}

func (t TranslationResult) Detected() bool {
	return t.Text != ""
}
