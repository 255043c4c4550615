package fishing

import (
	"github.com/osse101/FishingOverhaul_Go/internal/chances"
	"github.com/osse101/FishingOverhaul_Go/internal/domain"
	"github.com/osse101/FishingOverhaul_Go/internal/registry"
)

// Hooks are the override points of the service. Every hook is an ordered
// pipeline; callers append stages with Add before the service is used.
type Hooks struct {
	// ContextCreated runs once per cast on the fresh context
	ContextCreated *chances.Pipeline[domain.FishingContext]
	// BeforePrepare runs on the context before every chance table is built
	BeforePrepare *chances.Pipeline[domain.FishingContext]

	FishPrepared     *chances.Pipeline[[]chances.Weighted[registry.Fish]]
	TrashPrepared    *chances.Pipeline[[]chances.Weighted[registry.Trash]]
	TreasurePrepared *chances.Pipeline[[]chances.Weighted[registry.Treasure]]

	// Chance hooks see the unclamped value; clamp hooks see the configured bounds
	FishChanceCalculated     *chances.Pipeline[float64]
	TreasureChanceCalculated *chances.Pipeline[float64]
	MinFishChance            *chances.Pipeline[float64]
	MaxFishChance            *chances.Pipeline[float64]
	MinTreasureChance        *chances.Pipeline[float64]
	MaxTreasureChance        *chances.Pipeline[float64]
}

// NewHooks creates empty hooks
func NewHooks() *Hooks {
	return &Hooks{
		ContextCreated:           chances.NewContextPipeline(),
		BeforePrepare:            chances.NewContextPipeline(),
		FishPrepared:             chances.NewWeightPipeline[registry.Fish](),
		TrashPrepared:            chances.NewWeightPipeline[registry.Trash](),
		TreasurePrepared:         chances.NewWeightPipeline[registry.Treasure](),
		FishChanceCalculated:     chances.NewPipeline[float64](nil),
		TreasureChanceCalculated: chances.NewPipeline[float64](nil),
		MinFishChance:            chances.NewPipeline[float64](nil),
		MaxFishChance:            chances.NewPipeline[float64](nil),
		MinTreasureChance:        chances.NewPipeline[float64](nil),
		MaxTreasureChance:        chances.NewPipeline[float64](nil),
	}
}

// chancePipeline returns the hook an effect target feeds into
func (h *Hooks) chancePipeline(target domain.EffectTarget) *chances.Pipeline[float64] {
	switch target {
	case domain.EffectFishChance:
		return h.FishChanceCalculated
	case domain.EffectTreasureChance:
		return h.TreasureChanceCalculated
	case domain.EffectMinFishChance:
		return h.MinFishChance
	case domain.EffectMaxFishChance:
		return h.MaxFishChance
	case domain.EffectMinTreasureChance:
		return h.MinTreasureChance
	case domain.EffectMaxTreasureChance:
		return h.MaxTreasureChance
	default:
		return nil
	}
}

var effectTargets = []domain.EffectTarget{
	domain.EffectFishChance,
	domain.EffectTreasureChance,
	domain.EffectMinFishChance,
	domain.EffectMaxFishChance,
	domain.EffectMinTreasureChance,
	domain.EffectMaxTreasureChance,
}
