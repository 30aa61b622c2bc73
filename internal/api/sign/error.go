package sign

import (
	"SignBridge/pkg/response"
	"net/http"
)

var (
	ErrInvalidLetter       = response.NewError(http.StatusBadRequest, "Please provide a single letter")
	ErrModelNotConfigured  = response.NewError(http.StatusServiceUnavailable, "model API key not configured")
	ErrModelFailed         = response.NewError(http.StatusBadGateway, "Failed to generate sign guidance")
	ErrInternalServerError = response.NewError(http.StatusInternalServerError, "internal server error")
)
