package signService

import (
	"context"

	"SignBridge/internal/entity"
	"SignBridge/pkg/model"

	"github.com/sirupsen/logrus"
)

type ISignService interface {
	Guidance(ctx context.Context, text string, language string) (*entity.Guidance, error)
	VisualGuidance(ctx context.Context, text string, language string) (*entity.VisualGuidance, error)
	HandPose(ctx context.Context, sign string, language string) (*entity.SignPose, error)
	Alphabet(ctx context.Context, letter string) (string, *entity.GuidanceStep, error)
	CommonSigns() []entity.CommonSign
	Media(ctx context.Context, word string) entity.MediaResult
}

// MediaLookup finds demonstration media for a word. Lookups never fail.
type MediaLookup interface {
	Resolve(ctx context.Context, word string) entity.MediaResult
}

type signService struct {
	log     *logrus.Logger
	gateway model.Gateway
	media   MediaLookup
}

func NewSignService(
	log *logrus.Logger,
	gateway model.Gateway,
	media MediaLookup,
) ISignService {
	return &signService{
		log:     log,
		gateway: gateway,
		media:   media,
	}
}
