package translate

import (
	"SignBridge/pkg/response"
	"net/http"
)

var (
	ErrInvalidImage        = response.NewError(http.StatusBadRequest, "Invalid image data")
	ErrNoImageData         = response.NewError(http.StatusBadRequest, "No image data provided")
	ErrInvalidMessage      = response.NewError(http.StatusBadRequest, "Invalid message format")
	ErrModelNotConfigured  = response.NewError(http.StatusServiceUnavailable, "model API key not configured")
	ErrModelFailed         = response.NewError(http.StatusBadGateway, "Translation failed")
	ErrVideoNotImplemented = response.NewError(http.StatusNotImplemented, "Video translation not yet implemented")
	ErrInternalServerError = response.NewError(http.StatusInternalServerError, "internal server error")
)
