package errors

import (
	"net/http"
	"strings"
)

// ErrorResponse represents the canonical error envelope returned by the service.
type ErrorResponse struct {
	Code      string `json:"code"`
	Message   string `json:"message"`
	RequestID string `json:"requestId,omitempty"`
}

// CodeFromStatus derives a snake_case error code from an HTTP status, e.g. internal_server_error.
func CodeFromStatus(status int) string {
	text := http.StatusText(status)
	if text == "" {
		return "unknown_error"
	}
	return strings.ToLower(strings.ReplaceAll(text, " ", "_"))
}

// New builds an envelope for status with the given message.
func New(status int, message, requestID string) ErrorResponse {
	return ErrorResponse{Code: CodeFromStatus(status), Message: message, RequestID: requestID}
}
