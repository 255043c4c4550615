package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/osse101/FishingOverhaul_Go/internal/logger"
	"github.com/osse101/FishingOverhaul_Go/internal/registry"
)

// Registry is the part of the entry registry the admin endpoints use
type Registry interface {
	Current(ctx context.Context) *registry.Snapshot
	RequestReload()
	ReloadIfRequested(ctx context.Context) error
}

// RegistrySummary describes the loaded content
type RegistrySummary struct {
	Sources   []string  `json:"sources"`
	LoadedAt  time.Time `json:"loaded_at"`
	Skipped   int       `json:"skipped"`
	Fish      int       `json:"fish"`
	Trash     int       `json:"trash"`
	Treasure  int       `json:"treasure"`
	Effects   int       `json:"effects"`
	Traits    int       `json:"traits"`
	Locations int       `json:"locations"`
}

func summarize(s *registry.Snapshot) RegistrySummary {
	return RegistrySummary{
		Sources:   s.Sources,
		LoadedAt:  s.LoadedAt,
		Skipped:   s.Skipped,
		Fish:      len(s.Fish),
		Trash:     len(s.Trash),
		Treasure:  len(s.Treasure),
		Effects:   len(s.Effects),
		Traits:    s.TraitCount(),
		Locations: s.LocationCount(),
	}
}

// HandleGetRegistry reports what the registry currently holds
// @Summary Registry summary
// @Description Entry counts and sources of the current registry snapshot
// @Tags admin
// @Produce json
// @Success 200 {object} RegistrySummary
// @Security ApiKeyAuth
// @Router /admin/registry [get]
func HandleGetRegistry(reg Registry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, summarize(reg.Current(r.Context())))
	}
}

// ReloadResponse is the registry state after a reload
type ReloadResponse struct {
	Message  string          `json:"message"`
	Error    string          `json:"error,omitempty"`
	Registry RegistrySummary `json:"registry"`
}

// HandleReload rebuilds the registry from its content sources.
// A partial failure still swaps in what loaded and answers 207.
// @Summary Reload content
// @Tags admin
// @Produce json
// @Success 200 {object} ReloadResponse
// @Success 207 {object} ReloadResponse
// @Security ApiKeyAuth
// @Router /admin/reload [post]
func HandleReload(reg Registry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		log := logger.FromContext(ctx)
		log.Info(LogMsgReloadRequested)

		reg.RequestReload()
		if err := reg.ReloadIfRequested(ctx); err != nil {
			log.Error(LogMsgReloadFailed, LogFieldError, err)
			_, msg := mapServiceErrorToUserMessage(err)
			respondJSON(w, http.StatusMultiStatus, ReloadResponse{
				Message:  ErrMsgReloadFailed,
				Error:    msg,
				Registry: summarize(reg.Current(ctx)),
			})
			return
		}

		respondJSON(w, http.StatusOK, ReloadResponse{
			Message:  MsgReloaded,
			Registry: summarize(reg.Current(ctx)),
		})
	}
}
