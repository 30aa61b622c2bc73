package translateService

import (
	"context"

	"SignBridge/internal/entity"
	"SignBridge/pkg/frame"
	"SignBridge/pkg/model"

	"github.com/sirupsen/logrus"
)

type ITranslateService interface {
	TranslateFrame(ctx context.Context, encoded string, language string) (*entity.TranslationResult, error)
	TranslateImage(ctx context.Context, img *frame.Image, language string) (*entity.TranslationResult, error)
	Normalize(encoded string) (*frame.Image, error)
	NormalizeBytes(raw []byte) (*frame.Image, error)
	ModelConfigured() bool
}

type translateService struct {
	log        *logrus.Logger
	gateway    model.Gateway
	normalizer *frame.Normalizer
}

func NewTranslateService(
	log *logrus.Logger,
	gateway model.Gateway,
	normalizer *frame.Normalizer,
) ITranslateService {
	return &translateService{
		log:        log,
		gateway:    gateway,
		normalizer: normalizer,
	}
}

func (s *translateService) ModelConfigured() bool {
	return s.gateway.Configured()
}
