package web

import (
	"log/slog"
	"net/http"

	"github.com/ferdiebergado/gopherkit/http/response"
)

const (
	HeaderContentType = "Content-Type"
	HeaderRequestID   = "X-Request-ID"
	MimeJSON          = "application/json"
	MimeHTML          = "text/html; charset=utf-8"
)

// OKResponse is the JSON envelope of a successful API call.
type OKResponse[T any] struct {
	Message string `json:"message,omitempty"`
	Data    T      `json:"data,omitempty"`
}

// ErrorResponse is the JSON envelope of a failed API call. Errors carries
// field-level validation messages.
type ErrorResponse struct {
	Message string            `json:"message"`
	Errors  map[string]string `json:"errors,omitempty"`
}

func OK[T any](w http.ResponseWriter, status int, msg string, data *T) {
	payload := &OKResponse[*T]{Message: msg, Data: data}
	response.JSON(w, status, payload)
}

// Fail logs reason and writes an ErrorResponse.
func Fail(w http.ResponseWriter, status int, reason error, msg string, errs map[string]string) {
	slog.Error("request failed", "status", status, "reason", reason)
	payload := &ErrorResponse{
		Message: msg,
		Errors:  errs,
	}
	response.JSON(w, status, payload)
}
