package translateHandler

import (
	"SignBridge/internal/api/translate"
	contextPkg "SignBridge/pkg/context"
	"SignBridge/pkg/handlerUtil"
	"SignBridge/pkg/log"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/net/context"
)

func (h *TranslateHandler) TranslateFrame(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), h.requestTimeout)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"path":       ctx.Path(),
	}).Debug("Processing frame translation request")

	var req translate.FrameRequest

	file, err := ctx.FormFile("image")
	if err == nil {
		h.log.WithFields(log.Fields{
			"request_id": requestID,
			"path":       ctx.Path(),
			"file_name":  file.Filename,
			"file_size":  file.Size,
		}).Debug("Processing file upload")

		if err := h.utils.ValidateImageFile(file); err != nil {
			return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
		}

		fileContent, err := file.Open()
		if err != nil {
			return errHandler.Handle(ctx, requestID, err, ctx.Path(), "open_file")
		}
		defer fileContent.Close()

		req.Image, err = h.utils.ConvertFileToBase64(fileContent)
		if err != nil {
			return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
		}
		req.Language = ctx.FormValue("language")
	} else {
		if err := ctx.BodyParser(&req); err != nil {
			return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
		}
	}

	if err := h.validator.Struct(req); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}
	req.Language = translate.LanguageOrDefault(req.Language)

	result, err := h.translateService.TranslateFrame(c, req.Image, req.Language)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "translate_frame")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		h.log.WithFields(log.Fields{
			"request_id": requestID,
			"path":       ctx.Path(),
			"detected":   result.Detected(),
			"confidence": result.Confidence,
		}).Info("Frame translation successful")
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, translate.FrameResponse{
			Text:        result.Text,
			Confidence:  result.Confidence,
			Language:    req.Language,
			RawResponse: result.RawResponse,
		})
	}
}

func (h *TranslateHandler) TranslateVideo(ctx *fiber.Ctx) error {
	return ctx.Status(fiber.StatusNotImplemented).JSON(fiber.Map{
		"message": translate.ErrVideoNotImplemented.Error(),
	})
}
