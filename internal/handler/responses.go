package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"sync"

	"github.com/osse101/ItemRandomizer_Go/internal/domain"
)

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// ValidationErrorResponse carries per-field validation messages
type ValidationErrorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields"`
}

// bufferPool reuses encoding buffers; preview reports are encoded on every request
var bufferPool = sync.Pool{
	New: func() any {
		return bytes.NewBuffer(make([]byte, 0, 1024))
	},
}

// respondJSON sends a JSON response with the given status code and payload
func respondJSON(w http.ResponseWriter, status int, payload any) {
	buf := bufferPool.Get().(*bytes.Buffer)
	defer func() {
		buf.Reset()
		bufferPool.Put(buf)
	}()

	// Encode before writing headers so an encoding failure can still become a 500
	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		slog.Error(LogMsgEncodeFailed, "error", err)
		http.Error(w, ErrMsgGenericServerError, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		slog.Error(LogMsgWriteFailed, "error", err)
	}
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Error: message})
}

// mapServiceError converts randomizer errors to an HTTP status and user-facing message
func mapServiceError(err error) (int, string) {
	switch {
	case errors.Is(err, domain.ErrScenarioNotFound):
		return http.StatusNotFound, ErrMsgScenarioNotFound
	case errors.Is(err, domain.ErrItemNotFound):
		return http.StatusNotFound, ErrMsgItemNotFound
	case errors.Is(err, domain.ErrInvalidItemID):
		return http.StatusBadRequest, ErrMsgInvalidItemID
	case errors.Is(err, domain.ErrUnknownStrategy):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, domain.ErrScenarioNotLoaded):
		return http.StatusServiceUnavailable, ErrMsgScenarioNotLoaded
	default:
		return http.StatusInternalServerError, ErrMsgGenericServerError
	}
}
