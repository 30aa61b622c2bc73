package signService

import (
	"context"
	"errors"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"SignBridge/internal/api/sign"
	"SignBridge/internal/entity"
	contextPkg "SignBridge/pkg/context"
	"SignBridge/pkg/llmjson"
	"SignBridge/pkg/log"
	"SignBridge/pkg/metrics"
	"SignBridge/pkg/model"
	"SignBridge/pkg/response"
)

func (s *signService) Guidance(ctx context.Context, text string, language string) (*entity.Guidance, error) {
	language = sign.LanguageOrDefault(language)

	raw, err := s.complete(ctx, guidanceShapeID, guidancePrompt(text, language))
	if err != nil {
		return nil, err
	}

	res := llmjson.Extract(raw, guidanceShape)
	s.observe(ctx, guidanceShapeID, res.Degraded)
	return &res.Value, nil
}

func (s *signService) VisualGuidance(ctx context.Context, text string, language string) (*entity.VisualGuidance, error) {
	language = sign.LanguageOrDefault(language)

	raw, err := s.complete(ctx, visualGuidanceShapeID, visualGuidancePrompt(text, language))
	if err != nil {
		return nil, err
	}

	res := llmjson.Extract(raw, visualGuidanceShape(text, language))
	s.observe(ctx, visualGuidanceShapeID, res.Degraded)
	return &res.Value, nil
}

// Alphabet returns the upper-cased letter and the first guidance step for it.
func (s *signService) Alphabet(ctx context.Context, letter string) (string, *entity.GuidanceStep, error) {
	r, size := utf8.DecodeRuneInString(letter)
	if size == 0 || size != len(letter) || !unicode.IsLetter(r) {
		return "", nil, sign.ErrInvalidLetter
	}
	upper := strings.ToUpper(letter)

	guidance, err := s.Guidance(ctx, upper, sign.DefaultLanguage)
	if err != nil {
		return "", nil, err
	}
	if len(guidance.Steps) == 0 {
		return upper, nil, nil
	}
	step := guidance.Steps[0]
	return upper, &step, nil
}

func (s *signService) CommonSigns() []entity.CommonSign {
	signs := make([]entity.CommonSign, len(commonSigns))
	copy(signs, commonSigns)
	return signs
}

var commonSigns = []entity.CommonSign{
	{Sign: "Hello", Description: "Wave hand side to side"},
	{Sign: "Thank you", Description: "Touch chin and move hand forward"},
	{Sign: "Please", Description: "Circular motion on chest with flat hand"},
	{Sign: "Sorry", Description: "Fist circles on chest"},
	{Sign: "Yes", Description: "Fist moves up and down like nodding"},
	{Sign: "No", Description: "Index and middle finger tap thumb"},
	{Sign: "Help", Description: "Thumbs up on flat palm, lift together"},
	{Sign: "I love you", Description: "Pinky, index, and thumb extended"},
}

func (s *signService) complete(ctx context.Context, shape llmjson.ShapeID, prompt string) (string, error) {
	provider := s.gateway.Provider()

	start := time.Now()
	raw, err := s.gateway.Complete(ctx, model.TextPrompt(prompt))
	metrics.ModelLatency.WithLabelValues(provider).Observe(time.Since(start).Seconds())
	if err != nil {
		if errors.Is(err, model.ErrNotConfigured) {
			metrics.ModelRequestsTotal.WithLabelValues(provider, string(shape), "not_configured").Inc()
			return "", response.Wrap(sign.ErrModelNotConfigured, err)
		}
		metrics.ModelRequestsTotal.WithLabelValues(provider, string(shape), "error").Inc()
		return "", response.Wrap(sign.ErrModelFailed, err)
	}
	return raw, nil
}

func (s *signService) observe(ctx context.Context, shape llmjson.ShapeID, degraded bool) {
	provider := s.gateway.Provider()
	if !degraded {
		metrics.ModelRequestsTotal.WithLabelValues(provider, string(shape), "ok").Inc()
		return
	}

	metrics.ModelRequestsTotal.WithLabelValues(provider, string(shape), "degraded").Inc()
	s.log.WithFields(log.Fields{
		"request_id": contextPkg.GetRequestID(ctx),
		"provider":   provider,
		"shape":      shape,
	}).Warn("Model output was not valid JSON, using fallback")
}
