package signService

import (
	"context"

	"SignBridge/internal/api/sign"
	"SignBridge/internal/entity"
	"SignBridge/pkg/llmjson"
)

func (s *signService) HandPose(ctx context.Context, signText string, language string) (*entity.SignPose, error) {
	language = sign.LanguageOrDefault(language)

	raw, err := s.complete(ctx, handPoseShapeID, handPosePrompt(signText, language))
	if err != nil {
		return nil, err
	}

	res := llmjson.Extract(raw, handPoseShape)
	s.observe(ctx, handPoseShapeID, res.Degraded)

	return &entity.SignPose{
		Sign:        signText,
		Pose:        res.Value.Pose,
		Description: res.Value.Description,
	}, nil
}
