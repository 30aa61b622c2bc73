package signService

import (
	"context"

	"SignBridge/internal/entity"
	contextPkg "SignBridge/pkg/context"
	"SignBridge/pkg/log"
)

func (s *signService) Media(ctx context.Context, word string) entity.MediaResult {
	result := s.media.Resolve(ctx, word)

	s.log.WithFields(log.Fields{
		"request_id": contextPkg.GetRequestID(ctx),
		"word":       result.Word,
		"source":     result.SourceName,
		"found":      result.Found,
		"media_type": result.MediaKind,
	}).Debug("Sign media lookup finished")

	return result
}
