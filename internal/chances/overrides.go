package chances

import (
	"context"
	"math"
	"strings"

	"github.com/osse101/FishingOverhaul_Go/internal/domain"
	"github.com/osse101/FishingOverhaul_Go/internal/logger"
	"github.com/osse101/FishingOverhaul_Go/internal/utils"
)

// Keyed is an entry identified by an item key
type Keyed interface {
	Key() domain.NamespacedKey
}

// matchesTarget compares the last path segment of both keys, so a target of
// "(O)158" matches "StardewValley:Object/158" and "Goby" matches "SomeMod:Goby".
func matchesTarget(target, key domain.NamespacedKey) bool {
	return idSegment(target) == idSegment(key)
}

func idSegment(k domain.NamespacedKey) string {
	n := k.Normalize()
	return n.Key[strings.LastIndexByte(n.Key, '/')+1:]
}

// TargetedBaitWeights boosts the fish a targeted bait was made from. Run it
// after every other fish stage so its bonus is not flattened by them. A
// multiplier of zero uses TargetedBaitMultiplier.
func TargetedBaitWeights[E Keyed](multiplier float64) StageFunc[[]Weighted[E]] {
	if multiplier <= 0 {
		multiplier = TargetedBaitMultiplier
	}
	return func(ctx context.Context, fc domain.FishingContext, ws []Weighted[E]) []Weighted[E] {
		if fc.BaitTarget.IsZero() {
			return ws
		}
		return Map(ws, func(w Weighted[E]) float64 {
			key := w.Value.Key()
			if !matchesTarget(fc.BaitTarget, key) {
				return w.Weight
			}
			if bonus, ok := targetedBaitBonuses[idSegment(key)]; ok {
				return w.Weight + bonus
			}
			return w.Weight * multiplier
		})
	}
}

// TargetedBaitChance forces the fish chance while the targeted fish can bite
func TargetedBaitChance[E Keyed](fc domain.FishingContext, available []Weighted[E], chance float64) float64 {
	if fc.BaitTarget.IsZero() {
		return chance
	}
	for _, w := range available {
		if w.Weight > 0 && matchesTarget(fc.BaitTarget, w.Value.Key()) {
			return TargetedBaitFishChance
		}
	}
	return chance
}

// CuriosityLure compresses fish weights logarithmically, making rare fish relatively likelier
func CuriosityLure[E any]() StageFunc[[]Weighted[E]] {
	lure := domain.ObjectKey(domain.ObjectIDCuriosityLure)
	return func(ctx context.Context, fc domain.FishingContext, ws []Weighted[E]) []Weighted[E] {
		if !fc.Bobber.Equal(lure) && !fc.HasTackle(lure) {
			return ws
		}
		return Map(ws, func(w Weighted[E]) float64 {
			if w.Weight < 0 {
				return 0
			}
			return math.Log(w.Weight + 1)
		})
	}
}

// MagicBait lets every fish bite regardless of season, weather or time of day
func MagicBait() StageFunc[domain.FishingContext] {
	bait := domain.ObjectKey(domain.ObjectIDMagicBait)
	times := make([]int, 0, domain.TimeDayEnd-domain.TimeDayStart)
	for t := domain.TimeDayStart; t < domain.TimeDayEnd; t++ {
		times = append(times, t)
	}
	return func(ctx context.Context, fc domain.FishingContext, in domain.FishingContext) domain.FishingContext {
		if !in.Bait.Equal(bait) {
			return in
		}
		return in.WithSeasons(domain.SeasonAll).WithWeathers(domain.WeatherAll).WithTimes(times)
	}
}

// LocationOverride makes fishing in one location sometimes use another's fish
type LocationOverride struct {
	Location string
	Chance   float64
}

// LocationResolver is the host's view of its maps
type LocationResolver interface {
	// LocationOverride returns the override configured for a location, if any
	LocationOverride(ctx context.Context, location string) (LocationOverride, bool)
	// LocationNames returns every name a location's fish are listed under
	LocationNames(ctx context.Context, location string) []string
}

// MapOverride swaps the context's locations for the override location with the
// configured chance. It consumes one draw only when an override exists.
func MapOverride(resolver LocationResolver, rng utils.Random) StageFunc[domain.FishingContext] {
	return func(ctx context.Context, _ domain.FishingContext, in domain.FishingContext) domain.FishingContext {
		if resolver == nil {
			return in
		}
		override, ok := resolver.LocationOverride(ctx, in.Location)
		if !ok || override.Chance <= 0 || override.Location == "" {
			return in
		}
		if rng.Float64() >= override.Chance {
			return in
		}
		names := resolver.LocationNames(ctx, override.Location)
		if len(names) == 0 {
			names = []string{override.Location}
		}
		logger.FromContext(ctx).Debug(LogMsgLocationSwapped, LogFieldLocation, override.Location)
		return in.WithLocations(names)
	}
}
