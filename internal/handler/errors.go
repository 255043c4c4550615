package handler

import (
	"errors"
	"net/http"

	"github.com/osse101/FishingOverhaul_Go/internal/domain"
)

// User-facing messages for service errors
const (
	ErrMsgGenericServerError = "Something went wrong"
	ErrMsgUnknownError       = "Unknown error"
	ErrMsgItemNotFoundError  = "Item not found"
	ErrMsgUnavailableError   = "Server is temporarily unavailable. Please try again later."
	ErrMsgContentError       = "Content failed to load"
)

// mapServiceErrorToUserMessage converts domain errors into an HTTP status and a message
// safe to show callers
func mapServiceErrorToUserMessage(err error) (int, string) {
	switch {
	case err == nil:
		return http.StatusInternalServerError, ErrMsgUnknownError
	case errors.Is(err, domain.ErrItemNotFound), errors.Is(err, domain.ErrTraitsNotFound):
		return http.StatusNotFound, ErrMsgItemNotFoundError
	case errors.Is(err, domain.ErrStoreUnavailable), errors.Is(err, domain.ErrDatabaseError):
		return http.StatusServiceUnavailable, ErrMsgUnavailableError
	case errors.Is(err, domain.ErrSourceFailed), errors.Is(err, domain.ErrMalformedRecord):
		return http.StatusUnprocessableEntity, ErrMsgContentError
	default:
		return http.StatusInternalServerError, ErrMsgGenericServerError
	}
}

// respondServiceError writes the mapped status and message for err
func respondServiceError(w http.ResponseWriter, err error) {
	status, msg := mapServiceErrorToUserMessage(err)
	respondError(w, status, msg)
}
