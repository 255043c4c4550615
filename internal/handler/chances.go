package handler

import (
	"context"
	"net/http"
	"strings"

	"github.com/osse101/FishingOverhaul_Go/internal/chances"
	"github.com/osse101/FishingOverhaul_Go/internal/domain"
	"github.com/osse101/FishingOverhaul_Go/internal/registry"
)

// ChanceService is the part of the fishing service the chance preview uses
type ChanceService interface {
	NewContext(ctx context.Context, fc domain.FishingContext) domain.FishingContext
	FishChance(ctx context.Context, fc domain.FishingContext) float64
	TreasureChance(ctx context.Context, fc domain.FishingContext) float64
	FishChances(ctx context.Context, fc domain.FishingContext) []chances.Weighted[registry.Fish]
	TrashChances(ctx context.Context, fc domain.FishingContext) []chances.Weighted[registry.Trash]
	TreasureChances(ctx context.Context, fc domain.FishingContext) []chances.Weighted[registry.Treasure]
	Streak(ctx context.Context, actorID string) (int, error)
}

// ChancesRequest describes a cast to preview
type ChancesRequest struct {
	ActorID         string   `json:"actor_id" validate:"required,max=100,excludesall=\x00\n\r\t"`
	Location        string   `json:"location" validate:"required,max=100"`
	Time            int      `json:"time" validate:"gte=600,lte=2600"`
	Season          string   `json:"season" validate:"required,season"`
	Weather         string   `json:"weather" validate:"required,weather"`
	Water           string   `json:"water" validate:"omitempty,water"`
	WaterDepth      int      `json:"water_depth" validate:"gte=0,lte=10"`
	FishingLevel    int      `json:"fishing_level" validate:"gte=0,lte=100"`
	LuckLevel       int      `json:"luck_level" validate:"gte=0,lte=100"`
	DailyLuck       float64  `json:"daily_luck" validate:"gte=-1,lte=1"`
	FishCaughtCount int      `json:"fish_caught_count" validate:"gte=0"`
	Bait            string   `json:"bait,omitempty" validate:"omitempty,key"`
	BaitTarget      string   `json:"bait_target,omitempty" validate:"omitempty,key"`
	Tackle          []string `json:"tackle,omitempty" validate:"max=2,dive,key"`
	Festival        bool     `json:"festival"`
}

// ChanceEntry is one candidate and its share of the draw
type ChanceEntry struct {
	Key    string  `json:"key"`
	Chance float64 `json:"chance"`
}

// ChancesResponse is the outcome distribution for a cast. Fish chances sum to
// FishChance and trash chances to the rest; treasure chances sum to 1.
type ChancesResponse struct {
	AttemptID      string        `json:"attempt_id"`
	Streak         int           `json:"streak"`
	FishChance     float64       `json:"fish_chance"`
	TreasureChance float64       `json:"treasure_chance"`
	Fish           []ChanceEntry `json:"fish"`
	Trash          []ChanceEntry `json:"trash"`
	Treasure       []ChanceEntry `json:"treasure"`
}

func (req ChancesRequest) context() domain.FishingContext {
	// Validation has already accepted every name and key
	seasons, _ := domain.ParseSeasons(req.Season)
	weathers, _ := domain.ParseWeathers(req.Weather)
	water := req.Water
	if water == "" {
		water = defaultWaterType
	}
	waters, _ := domain.ParseWaterTypes(water)

	fc := domain.FishingContext{
		Actor: domain.ActorInfo{
			ID:              req.ActorID,
			FishingLevel:    req.FishingLevel,
			LuckLevel:       req.LuckLevel,
			DailyLuck:       req.DailyLuck,
			FishCaughtCount: req.FishCaughtCount,
		},
		Location:   strings.TrimSpace(req.Location),
		Time:       req.Time,
		Seasons:    seasons,
		Weathers:   weathers,
		WaterTypes: waters,
		WaterDepth: req.WaterDepth,
		IsFestival: req.Festival,
	}
	if req.Bait != "" {
		fc.Bait = domain.MustParseKey(req.Bait)
	}
	if req.BaitTarget != "" {
		fc.BaitTarget = domain.MustParseKey(req.BaitTarget)
	}
	for _, t := range req.Tackle {
		fc.Tackle = append(fc.Tackle, domain.MustParseKey(t))
	}
	return fc
}

func entries[T any](ws []chances.Weighted[T], total float64, key func(T) string) []ChanceEntry {
	out := []ChanceEntry{}
	for _, w := range chances.NormalizeTo(ws, total) {
		out = append(out, ChanceEntry{Key: key(w.Value), Chance: w.Weight})
	}
	return out
}

// HandlePreviewChances computes what a cast could catch without drawing anything
// @Summary Preview catch chances
// @Description Runs the chance calculation for a described cast and returns every candidate's share
// @Tags fishing
// @Accept json
// @Produce json
// @Param request body ChancesRequest true "Cast description"
// @Success 200 {object} ChancesResponse
// @Failure 400 {object} ValidationErrorResponse
// @Security ApiKeyAuth
// @Router /api/v1/chances [post]
func HandlePreviewChances(svc ChanceService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ChancesRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Preview chances"); err != nil {
			return
		}

		ctx := r.Context()
		fc := svc.NewContext(ctx, req.context())
		streak, err := svc.Streak(ctx, fc.Actor.ID)
		if err != nil {
			respondServiceError(w, err)
			return
		}

		// with nothing to hook every cast lands on trash
		fish := svc.FishChances(ctx, fc)
		fishChance := 0.0
		if chances.Total(fish) > 0 {
			fishChance = svc.FishChance(ctx, fc)
		}

		respondJSON(w, http.StatusOK, ChancesResponse{
			AttemptID:      fc.AttemptID,
			Streak:         streak,
			FishChance:     fishChance,
			TreasureChance: svc.TreasureChance(ctx, fc),
			Fish: entries(fish, fishChance, func(f registry.Fish) string {
				return f.Key().String()
			}),
			Trash: entries(svc.TrashChances(ctx, fc), 1-fishChance, func(t registry.Trash) string {
				return t.Key().String()
			}),
			Treasure: entries(svc.TreasureChances(ctx, fc), 1, func(t registry.Treasure) string {
				return t.Entry.Identity()
			}),
		})
	}
}
