package translateService

import (
	"SignBridge/internal/entity"
	"SignBridge/pkg/llmjson"
)

const (
	translationShapeID = llmjson.ShapeID("translation")

	fallbackTextLimit  = 100
	fallbackConfidence = 0.5
	defaultConfidence  = 0.5
)

type translationPayload struct {
	Detected    *bool          `json:"detected"`
	Text        string         `json:"text"`
	Confidence  *llmjson.Float `json:"confidence"`
	Description string         `json:"description"`
}

var translationShape = llmjson.Shape[translationPayload, entity.TranslationResult]{
	ID: translationShapeID,
	Convert: func(p translationPayload, in llmjson.Input) entity.TranslationResult {
		if p.Detected == nil || !*p.Detected || p.Text == noSignSentinel || llmjson.ContainsFold(in.Raw, noSignSentinel) {
			return entity.NoSignDetected(in.Selected)
		}

		confidence := defaultConfidence
		if p.Confidence != nil {
			confidence = llmjson.Clamp(float64(*p.Confidence), 0, 1)
		}

		raw := in.Selected
		return entity.TranslationResult{
			Text:        p.Text,
			Confidence:  confidence,
			RawResponse: &raw,
		}
	},
	Fallback: func(in llmjson.Input) entity.TranslationResult {
		if llmjson.ContainsFold(in.Raw, noSignSentinel) {
			return entity.NoSignDetected(in.Selected)
		}

		raw := in.Selected
		return entity.TranslationResult{
			Text:        llmjson.Truncate(in.Selected, fallbackTextLimit),
			Confidence:  fallbackConfidence,
			RawResponse: &raw,
		}
	},
}

// ParseTranslation turns raw model output into a translation result. It never
// fails.
func ParseTranslation(raw string) (entity.TranslationResult, bool) {
	res := llmjson.Extract(raw, translationShape)
	return res.Value, res.Degraded
}
