package signHandler

import (
	"SignBridge/internal/api/sign"
	contextPkg "SignBridge/pkg/context"
	"SignBridge/pkg/handlerUtil"
	"SignBridge/pkg/log"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/net/context"
)

func (h *SignHandler) GetGuidance(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), h.requestTimeout)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	var req sign.GuidanceRequest
	if err := ctx.BodyParser(&req); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	if err := h.validator.Struct(req); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}
	req.Language = sign.LanguageOrDefault(req.Language)

	guidance, err := h.signService.Guidance(c, req.Text, req.Language)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "sign_guidance")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		h.log.WithFields(log.Fields{
			"request_id": requestID,
			"path":       ctx.Path(),
			"steps":      len(guidance.Steps),
		}).Info("Sign guidance generated")
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, sign.GuidanceResponse{
			Text:     req.Text,
			Language: req.Language,
			Steps:    guidance.Steps,
			Notes:    guidance.Notes,
		})
	}
}

func (h *SignHandler) GetVisualGuidance(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), h.requestTimeout)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	var req sign.VisualGuidanceRequest
	if err := ctx.BodyParser(&req); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	if err := h.validator.Struct(req); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}
	req.Language = sign.LanguageOrDefault(req.Language)

	guidance, err := h.signService.VisualGuidance(c, req.Text, req.Language)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "sign_visual_guidance")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		h.log.WithFields(log.Fields{
			"request_id": requestID,
			"path":       ctx.Path(),
			"steps":      len(guidance.Steps),
			"resources":  len(guidance.VideoResources),
		}).Info("Visual sign guidance generated")
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, sign.VisualGuidanceResponse{
			Text:           req.Text,
			Language:       req.Language,
			Steps:          guidance.Steps,
			VideoResources: guidance.VideoResources,
			Tips:           guidance.Tips,
			CommonMistakes: guidance.CommonMistakes,
		})
	}
}

func (h *SignHandler) GetHandPose(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), h.requestTimeout)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	var req sign.HandPoseRequest
	if err := ctx.BodyParser(&req); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	if err := h.validator.Struct(req); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	pose, err := h.signService.HandPose(c, req.Sign, req.Language)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "sign_hand_pose")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, pose)
	}
}

func (h *SignHandler) GetAlphabet(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), h.requestTimeout)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	letter, step, err := h.signService.Alphabet(c, ctx.Params("letter"))
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "sign_alphabet")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, sign.AlphabetResponse{
			Letter:   letter,
			Guidance: step,
		})
	}
}

func (h *SignHandler) GetCommonSigns(ctx *fiber.Ctx) error {
	return ctx.Status(fiber.StatusOK).JSON(sign.CommonSignsResponse{
		Signs: h.signService.CommonSigns(),
	})
}
