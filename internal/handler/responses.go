package handler

import (
	"net/http"

	"github.com/osse101/FishingOverhaul_Go/internal/logger"
)

// SuccessResponse represents a simple successful operation message
type SuccessResponse struct {
	Message string `json:"message"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// respondJSON sends a JSON response with the given status code and payload.
// The payload is encoded before any header is written, so an encoding failure
// still reaches the client as a 500.
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	buf, err := encodeJSON(payload)
	if err != nil {
		logger.Error(LogMsgEncodeFailed, LogFieldError, err)
		http.Error(w, ErrMsgEncodeFailed, http.StatusInternalServerError)
		return
	}
	defer releaseBuffer(buf)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		logger.Error(LogMsgWriteFailed, LogFieldError, err)
	}
}

// respondError sends a JSON error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Error: message})
}
