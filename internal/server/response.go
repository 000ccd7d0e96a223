package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/username/fiscal-calendar/internal/fiscal"
)

// response is the envelope every endpoint replies with
type response struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   *apiError   `json:"error,omitempty"`
}

// apiError carries a stable machine-readable code alongside the message
type apiError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// API error codes
const (
	codeBadRequest       = "BAD_REQUEST"
	codeInvalidDirection = "INVALID_DIRECTION"
	codeMalformedInput   = "MALFORMED_INPUT"
	codeOutOfRange       = "OUT_OF_RANGE"
	codeNotConfigured    = "NOT_CONFIGURED"
	codeInternal         = "INTERNAL"
)

// errorCode maps a conversion failure to its API error code
func errorCode(err error) string {
	switch {
	case errors.Is(err, fiscal.ErrInvalidDirection):
		return codeInvalidDirection
	case errors.Is(err, fiscal.ErrMalformedInput):
		return codeMalformedInput
	case errors.Is(err, fiscal.ErrOutOfRange):
		return codeOutOfRange
	case errors.Is(err, fiscal.ErrNotConfigured):
		return codeNotConfigured
	default:
		return codeInternal
	}
}

// statusForError picks the HTTP status for a conversion failure. Bad input
// is the caller's problem; a table hole is ours.
func statusForError(err error) int {
	switch {
	case errors.Is(err, fiscal.ErrInvalidDirection),
		errors.Is(err, fiscal.ErrMalformedInput),
		errors.Is(err, fiscal.ErrOutOfRange):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// writeJSON writes a success envelope
func (h *Handler) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(response{Success: true, Data: data}); err != nil {
		h.logger.Error("Failed to encode JSON response", zap.Error(err))
	}
}

// writeError writes an error envelope
func (h *Handler) writeError(w http.ResponseWriter, status int, code, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	envelope := response{Success: false, Error: &apiError{Code: code, Message: message}}
	if err := json.NewEncoder(w).Encode(envelope); err != nil {
		h.logger.Error("Failed to encode JSON response", zap.Error(err))
	}
}
