// Package httputil provides HTTP utility functions for request and response handling.
package httputil

import (
	"log/slog"
	"net/http"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"

	apperrors "github.com/allisson/constguard/internal/errors"
)

// ErrorResponse represents a structured error response.
type ErrorResponse struct {
	Error     string `json:"error"`
	Message   string `json:"message,omitempty"`
	Code      string `json:"code,omitempty"`
	RequestID string `json:"request_id,omitempty"`
}

// errorMapping binds a sentinel from internal/errors to its HTTP rendering.
// An empty message echoes the error text to the client.
type errorMapping struct {
	sentinel   error
	statusCode int
	code       string
	message    string
}

// errorMappings is checked in order; the first sentinel found in the chain wins.
var errorMappings = []errorMapping{
	{apperrors.ErrNotFound, http.StatusNotFound, "not_found", "The requested resource was not found"},
	{apperrors.ErrConflict, http.StatusConflict, "conflict", "A conflict occurred with existing data"},
	{apperrors.ErrInvalidInput, http.StatusUnprocessableEntity, "invalid_input", ""},
	{apperrors.ErrTooManyRequests, http.StatusTooManyRequests, "too_many_requests", "Request rate limit exceeded"},
}

// internalError never exposes details of unexpected errors.
var internalError = errorMapping{
	statusCode: http.StatusInternalServerError,
	code:       "internal_error",
	message:    "An internal error occurred",
}

// HandleErrorGin maps domain errors to HTTP status codes and writes a JSON error body.
func HandleErrorGin(c *gin.Context, err error, logger *slog.Logger) {
	if err == nil {
		return
	}

	mapping := internalError
	for _, m := range errorMappings {
		if apperrors.Is(err, m.sentinel) {
			mapping = m
			break
		}
	}

	message := mapping.message
	if message == "" {
		message = err.Error()
	}

	if logger != nil {
		logger.Error("request failed",
			slog.Int("status_code", mapping.statusCode),
			slog.String("error_code", mapping.code),
			slog.String("request_id", requestID(c)),
			slog.Any("error", err),
		)
	}

	writeError(c, mapping.statusCode, mapping.code, message)
}

// HandleBadRequestGin writes a 400 Bad Request response for malformed query parameters.
func HandleBadRequestGin(c *gin.Context, err error, logger *slog.Logger) {
	if logger != nil {
		logger.Warn("bad request", slog.Any("error", err))
	}

	writeError(c, http.StatusBadRequest, "bad_request", err.Error())
}

// HandleValidationErrorGin writes a 422 Unprocessable Entity response for validation errors.
func HandleValidationErrorGin(c *gin.Context, err error, logger *slog.Logger) {
	if logger != nil {
		logger.Warn("validation failed", slog.Any("error", err))
	}

	writeError(c, http.StatusUnprocessableEntity, "validation_error", err.Error())
}

func writeError(c *gin.Context, statusCode int, code, message string) {
	c.JSON(statusCode, ErrorResponse{
		Error:     code,
		Message:   message,
		RequestID: requestID(c),
	})
}

// requestID returns the request id set by the requestid middleware, or "" when
// the context carries no request.
func requestID(c *gin.Context) string {
	if c.Request == nil {
		return ""
	}
	return requestid.Get(c)
}
