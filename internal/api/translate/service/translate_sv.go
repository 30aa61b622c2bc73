package translateService

import (
	"context"
	"errors"
	"time"

	"SignBridge/internal/api/translate"
	"SignBridge/internal/entity"
	contextPkg "SignBridge/pkg/context"
	"SignBridge/pkg/frame"
	"SignBridge/pkg/log"
	"SignBridge/pkg/metrics"
	"SignBridge/pkg/model"
	"SignBridge/pkg/response"
)

func (s *translateService) Normalize(encoded string) (*frame.Image, error) {
	img, err := s.normalizer.Normalize(encoded)
	if err != nil {
		return nil, response.Wrap(translate.ErrInvalidImage, err)
	}
	return img, nil
}

func (s *translateService) NormalizeBytes(raw []byte) (*frame.Image, error) {
	img, err := s.normalizer.NormalizeBytes(raw)
	if err != nil {
		return nil, response.Wrap(translate.ErrInvalidImage, err)
	}
	return img, nil
}

func (s *translateService) TranslateFrame(ctx context.Context, encoded string, language string) (*entity.TranslationResult, error) {
	img, err := s.Normalize(encoded)
	if err != nil {
		return nil, err
	}
	return s.TranslateImage(ctx, img, language)
}

func (s *translateService) TranslateImage(ctx context.Context, img *frame.Image, language string) (*entity.TranslationResult, error) {
	language = translate.LanguageOrDefault(language)
	provider := s.gateway.Provider()

	jpeg, err := img.JPEG(s.normalizer.Quality())
	if err != nil {
		return nil, response.Wrap(translate.ErrInvalidImage, err)
	}

	start := time.Now()
	raw, err := s.gateway.Complete(ctx, model.ImagePrompt(recognitionPrompt(language), jpeg))
	metrics.ModelLatency.WithLabelValues(provider).Observe(time.Since(start).Seconds())
	if err != nil {
		if errors.Is(err, model.ErrNotConfigured) {
			metrics.ModelRequestsTotal.WithLabelValues(provider, string(translationShapeID), "not_configured").Inc()
			return nil, response.Wrap(translate.ErrModelNotConfigured, err)
		}
		metrics.ModelRequestsTotal.WithLabelValues(provider, string(translationShapeID), "error").Inc()
		return nil, response.Wrap(translate.ErrModelFailed, err)
	}

	result, degraded := ParseTranslation(raw)
	if degraded {
		metrics.ModelRequestsTotal.WithLabelValues(provider, string(translationShapeID), "degraded").Inc()
		s.log.WithFields(log.Fields{
			"request_id": contextPkg.GetRequestID(ctx),
			"session_id": contextPkg.GetSessionID(ctx),
			"provider":   provider,
			"language":   language,
		}).Warn("Model output was not valid JSON, using text fallback")
	} else {
		metrics.ModelRequestsTotal.WithLabelValues(provider, string(translationShapeID), "ok").Inc()
	}

	return &result, nil
}
