package handlerUtil

import (
	"SignBridge/internal/api/sign"
	"SignBridge/internal/api/translate"
	"SignBridge/pkg/log"
	"SignBridge/pkg/model"
	"SignBridge/pkg/response"
	"SignBridge/pkg/utils"
	"errors"

	"github.com/gofiber/fiber/v2"
	fiberUtils "github.com/gofiber/fiber/v2/utils"
	"github.com/sirupsen/logrus"
)

type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
	Details string `json:"details,omitempty"`
}

type ErrorHandler struct {
	logger *logrus.Logger
}

func New(logger *logrus.Logger) *ErrorHandler {
	return &ErrorHandler{
		logger: logger,
	}
}

func (h *ErrorHandler) Handle(c *fiber.Ctx, requestID string, err error, path string, operation string) error {
	fields := log.Fields{
		"request_id": requestID,
		"error":      err.Error(),
		"path":       path,
		"operation":  operation,
	}

	// Model errors
	if errors.Is(err, translate.ErrModelNotConfigured) || errors.Is(err, sign.ErrModelNotConfigured) {
		h.logger.WithFields(fields).Warn("Model provider not configured")
		return c.Status(fiber.StatusServiceUnavailable).JSON(ErrorResponse{
			Error: err.Error(),
			Code:  "MODEL_NOT_CONFIGURED",
		})
	}

	if errors.Is(err, translate.ErrModelFailed) || errors.Is(err, sign.ErrModelFailed) {
		body := ErrorResponse{
			Error: err.Error(),
			Code:  "MODEL_ERROR",
		}
		var modelErr *model.Error
		if errors.As(err, &modelErr) {
			body.Details = modelErr.Error()
		}
		h.logger.WithFields(fields).Error("Model call failed")
		return c.Status(fiber.StatusBadGateway).JSON(body)
	}

	// Upload errors
	if errors.Is(err, utils.ErrNoFile) || errors.Is(err, utils.ErrFileNotImage) {
		h.logger.WithFields(fields).Warn("Invalid file upload")
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error: "Invalid file type. Only images are allowed.",
			Code:  "INVALID_FILE",
		})
	}

	if errors.Is(err, utils.ErrFileTooLarge) {
		h.logger.WithFields(fields).Warn("File too large")
		return c.Status(fiber.StatusRequestEntityTooLarge).JSON(ErrorResponse{
			Error: "File too large. Maximum size is 10MB.",
			Code:  "FILE_TOO_LARGE",
		})
	}

	var respErr *response.Error
	if errors.As(err, &respErr) {
		h.logger.WithFields(log.Fields{
			"request_id": requestID,
			"error":      err.Error(),
			"code":       respErr.Code,
			"path":       path,
			"operation":  operation,
		}).Warn("Operation failed with error response")
		return c.Status(respErr.Code).JSON(fiber.Map{"error": err.Error()})
	}

	h.logger.WithFields(fields).Error("Unexpected error")

	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"error": "An unexpected error occurred",
	})
}

func (h *ErrorHandler) HandleValidationError(c *fiber.Ctx, requestID string, err error, path string) error {
	h.logger.WithFields(log.Fields{
		"request_id": requestID,
		"error":      err.Error(),
		"path":       path,
	}).Warn("Validation failed")

	if errors.Is(err, utils.ErrFileTooLarge) {
		return c.Status(fiber.StatusRequestEntityTooLarge).JSON(ErrorResponse{
			Error: "File too large. Maximum size is 10MB.",
			Code:  "FILE_TOO_LARGE",
		})
	}

	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"error": "Validation failed: " + err.Error(),
		"code":  "VALIDATION_ERROR",
	})
}

func (h *ErrorHandler) HandleRequestTimeout(c *fiber.Ctx) error {
	return c.Status(fiber.StatusRequestTimeout).JSON(fiberUtils.StatusMessage(fiber.StatusRequestTimeout))
}

func (h *ErrorHandler) HandleSuccess(c *fiber.Ctx, statusCode int, data interface{}) error {
	if data == nil {
		return c.SendStatus(statusCode)
	}
	return c.Status(statusCode).JSON(data)
}
