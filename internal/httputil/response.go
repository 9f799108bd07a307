// Package httputil provides HTTP utility functions for request and response handling.
package httputil

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "github.com/allisson/seikyu/internal/errors"
)

// ErrorResponse represents a structured error response. Error carries the stable code
// returned by apperrors.Code so that clients can localize the message.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
	Code    string `json:"code,omitempty"`
}

// HandleErrorGin maps domain errors to HTTP status codes and writes a JSON response.
func HandleErrorGin(c *gin.Context, err error, logger *slog.Logger) {
	if err == nil {
		return
	}

	code := apperrors.Code(err)
	var statusCode int
	var message string

	switch code {
	case apperrors.CodeNotFound:
		statusCode = http.StatusNotFound
		message = "The requested resource was not found"
	case apperrors.CodeConflict:
		statusCode = http.StatusConflict
		message = "A conflict occurred with existing data"
	case apperrors.CodeInvalidInput, apperrors.CodeUnsupportedFormat:
		statusCode = http.StatusUnprocessableEntity
		message = err.Error()
	case apperrors.CodeStorage:
		statusCode = http.StatusServiceUnavailable
		message = "The local data store is unavailable"
	case apperrors.CodeCrypto:
		statusCode = http.StatusInternalServerError
		message = "Stored data could not be protected"
	default:
		// For unknown/internal errors, don't expose details to the client
		statusCode = http.StatusInternalServerError
		message = "An internal error occurred"
	}

	if logger != nil {
		logger.Error("request failed",
			slog.Int("status_code", statusCode),
			slog.String("error_code", code),
			slog.Any("error", err),
		)
	}

	c.JSON(statusCode, ErrorResponse{Error: code, Message: message})
}

// HandleBadRequestGin writes a 400 Bad Request response for malformed JSON or parameters.
func HandleBadRequestGin(c *gin.Context, err error, logger *slog.Logger) {
	if logger != nil {
		logger.Warn("bad request", slog.Any("error", err))
	}

	c.JSON(http.StatusBadRequest, ErrorResponse{
		Error:   "bad_request",
		Message: err.Error(),
	})
}

// HandleValidationErrorGin writes a 422 Unprocessable Entity response for validation errors.
func HandleValidationErrorGin(c *gin.Context, err error, logger *slog.Logger) {
	if logger != nil {
		logger.Warn("validation failed", slog.Any("error", err))
	}

	c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
		Error:   apperrors.CodeInvalidInput,
		Message: err.Error(),
	})
}

// HandlePayloadTooLargeGin writes a 413 Request Entity Too Large response for a body
// that exceeded limit bytes.
func HandlePayloadTooLargeGin(c *gin.Context, limit int64, logger *slog.Logger) {
	if logger != nil {
		logger.Warn("request body too large", slog.Int64("limit_bytes", limit))
	}

	c.JSON(http.StatusRequestEntityTooLarge, ErrorResponse{
		Error:   "payload_too_large",
		Message: fmt.Sprintf("request body exceeds %d bytes", limit),
	})
}
