package handler

import (
	"context"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/osse101/FishingOverhaul_Go/internal/logger"
)

// ActorStore is the part of the actor store the admin endpoints use
type ActorStore interface {
	All(ctx context.Context, actorID string) (map[string]string, error)
	Clear(ctx context.Context, actorID string) (int, error)
}

// ActorDataResponse lists everything stored for one actor
type ActorDataResponse struct {
	ActorID string            `json:"actor_id"`
	Values  map[string]string `json:"values"`
}

// ClearActorResponse reports how many values were removed
type ClearActorResponse struct {
	Message string `json:"message"`
	Removed int    `json:"removed"`
}

func actorParam(w http.ResponseWriter, r *http.Request) (string, bool) {
	actorID := strings.TrimSpace(chi.URLParam(r, ParamActorID))
	if actorID == "" {
		respondError(w, http.StatusBadRequest, ErrMsgMissingActor)
		return "", false
	}
	return actorID, true
}

// HandleGetActor returns the streak and catch history stored for an actor
// @Summary Actor data
// @Tags admin
// @Produce json
// @Param actorID path string true "Actor ID"
// @Success 200 {object} ActorDataResponse
// @Failure 503 {object} ErrorResponse
// @Security ApiKeyAuth
// @Router /admin/actors/{actorID} [get]
func HandleGetActor(store ActorStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		actorID, ok := actorParam(w, r)
		if !ok {
			return
		}

		values, err := store.All(r.Context(), actorID)
		if err != nil {
			logger.FromContext(r.Context()).Error(LogMsgActorReadFailed, LogFieldActor, actorID, LogFieldError, err)
			respondServiceError(w, err)
			return
		}
		if values == nil {
			values = map[string]string{}
		}
		respondJSON(w, http.StatusOK, ActorDataResponse{ActorID: actorID, Values: values})
	}
}

// HandleClearActor forgets an actor's streak and catch history
// @Summary Clear actor data
// @Tags admin
// @Produce json
// @Param actorID path string true "Actor ID"
// @Success 200 {object} ClearActorResponse
// @Failure 503 {object} ErrorResponse
// @Security ApiKeyAuth
// @Router /admin/actors/{actorID} [delete]
func HandleClearActor(store ActorStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		actorID, ok := actorParam(w, r)
		if !ok {
			return
		}

		log := logger.FromContext(r.Context())
		n, err := store.Clear(r.Context(), actorID)
		if err != nil {
			log.Error(LogMsgActorClearFailed, LogFieldActor, actorID, LogFieldError, err)
			respondServiceError(w, err)
			return
		}
		log.Info(MsgActorCleared, LogFieldActor, actorID, LogFieldCount, n)
		respondJSON(w, http.StatusOK, ClearActorResponse{Message: MsgActorCleared, Removed: n})
	}
}
