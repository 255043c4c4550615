package availability

import (
	"context"
	"strconv"

	"github.com/osse101/FishingOverhaul_Go/internal/domain"
	"github.com/osse101/FishingOverhaul_Go/internal/gametime"
	"github.com/osse101/FishingOverhaul_Go/internal/logger"
)

// CatchHistory reports when an actor last caught an item
type CatchHistory interface {
	LastCaught(ctx context.Context, actorID string, key domain.NamespacedKey) (gametime.Date, bool, error)
}

// RegisterBuiltins installs the standard condition vocabulary. defaultFrequency
// is used by CAN_RECATCH when the condition gives no frequency of its own.
func RegisterBuiltins(reg *PredicateRegistry, history CatchHistory, defaultFrequency gametime.Frequency) {
	reg.Register(PredicateTimeOfDay, timeOfDay)
	reg.Register(PredicateTime, timeBetween)
	reg.Register(PredicatePlayerTileX, tileRange(func(fc domain.FishingContext) int { return fc.Actor.Tile.X }))
	reg.Register(PredicatePlayerTileY, tileRange(func(fc domain.FishingContext) int { return fc.Actor.Tile.Y }))
	reg.Register(PredicatePlayerInRect, inRect(func(fc domain.FishingContext) domain.Point { return fc.Actor.Tile }))
	reg.Register(PredicateBobberInRect, inRect(func(fc domain.FishingContext) domain.Point { return fc.BobberTile }))
	reg.Register(PredicateWaterDepth, waterDepth)
	reg.Register(PredicateRuleActive, ruleActive)
	reg.Register(PredicateFrenzyFish, frenzyFish)
	reg.Register(PredicateHasTackle, hasTackle)
	reg.Register(PredicateFishingLevel, fishingLevel)
	reg.Register(PredicateCanRecatch, canRecatch(history, defaultFrequency))
}

func ints(ctx context.Context, args []string, want int) ([]int, bool) {
	if len(args) < want {
		logger.FromContext(ctx).Debug(LogMsgInvalidArguments, LogFieldArgs, args)
		return nil, false
	}
	out := make([]int, want)
	for i := 0; i < want; i++ {
		v, err := strconv.Atoi(args[i])
		if err != nil {
			logger.FromContext(ctx).Debug(LogMsgInvalidArguments, LogFieldArgs, args)
			return nil, false
		}
		out[i] = v
	}
	return out, true
}

// TIME_OF_DAY <op> <HHMM>
func timeOfDay(ctx context.Context, args []string, fc domain.FishingContext) bool {
	if len(args) != 2 {
		return false
	}
	v, err := strconv.Atoi(args[1])
	if err != nil {
		return false
	}
	switch args[0] {
	case "<":
		return fc.Time < v
	case "<=":
		return fc.Time <= v
	case ">":
		return fc.Time > v
	case ">=":
		return fc.Time >= v
	case "==", "=":
		return fc.Time == v
	case "!=":
		return fc.Time != v
	default:
		return false
	}
}

// TIME <start> <end>, end exclusive
func timeBetween(ctx context.Context, args []string, fc domain.FishingContext) bool {
	v, ok := ints(ctx, args, 2)
	return ok && v[0] <= fc.Time && fc.Time < v[1]
}

// <NAME> <min> <max>, both inclusive
func tileRange(axis func(domain.FishingContext) int) Predicate {
	return func(ctx context.Context, args []string, fc domain.FishingContext) bool {
		v, ok := ints(ctx, args, 2)
		if !ok {
			return false
		}
		p := axis(fc)
		return v[0] <= p && p <= v[1]
	}
}

// <NAME> <x> <y> <width> <height>
func inRect(point func(domain.FishingContext) domain.Point) Predicate {
	return func(ctx context.Context, args []string, fc domain.FishingContext) bool {
		v, ok := ints(ctx, args, 4)
		if !ok {
			return false
		}
		return domain.Rect{X: v[0], Y: v[1], Width: v[2], Height: v[3]}.Contains(point(fc))
	}
}

// WATER_DEPTH <min> [max]
func waterDepth(ctx context.Context, args []string, fc domain.FishingContext) bool {
	if len(args) >= 2 {
		v, ok := ints(ctx, args, 2)
		return ok && v[0] <= fc.WaterDepth && fc.WaterDepth <= v[1]
	}
	v, ok := ints(ctx, args, 1)
	return ok && fc.WaterDepth >= v[0]
}

// FISHING_LEVEL <min>
func fishingLevel(ctx context.Context, args []string, fc domain.FishingContext) bool {
	v, ok := ints(ctx, args, 1)
	return ok && fc.Actor.FishingLevel >= v[0]
}

// SPECIAL_ORDER_RULE_ACTIVE <rule>...
func ruleActive(_ context.Context, args []string, fc domain.FishingContext) bool {
	if len(args) == 0 {
		return false
	}
	for _, rule := range args {
		if !fc.RuleActive(rule) {
			return false
		}
	}
	return true
}

// HAS_TACKLE <key>
func hasTackle(_ context.Context, args []string, fc domain.FishingContext) bool {
	if len(args) != 1 {
		return false
	}
	key, err := domain.ParseKey(args[0])
	return err == nil && fc.HasTackle(key)
}

// CATCHING_FRENZY_FISH <key>: the location's frenzy fish is key and the bobber is on the splash point
func frenzyFish(_ context.Context, args []string, fc domain.FishingContext) bool {
	if len(args) != 1 || fc.Frenzy == nil {
		return false
	}
	key, err := domain.ParseKey(args[0])
	if err != nil || !fc.Frenzy.Fish.Equal(key) {
		return false
	}
	return !fc.Frenzy.SplashPoint.IsZero() && fc.BobberTile == fc.Frenzy.SplashPoint
}

// CAN_RECATCH <key> [frequency]: never caught, or caught long enough ago
func canRecatch(history CatchHistory, defaultFrequency gametime.Frequency) Predicate {
	return func(ctx context.Context, args []string, fc domain.FishingContext) bool {
		if len(args) == 0 || len(args) > 2 || history == nil {
			return false
		}
		key, err := domain.ParseKey(args[0])
		if err != nil {
			return false
		}
		freq := defaultFrequency
		if len(args) == 2 {
			if freq, err = gametime.ParseFrequency(args[1]); err != nil {
				logger.FromContext(ctx).Debug(LogMsgInvalidArguments, LogFieldArgs, args, LogFieldError, err)
				return false
			}
		}

		last, caught, err := history.LastCaught(ctx, fc.Actor.ID, key)
		if err != nil {
			logger.FromContext(ctx).Warn(LogMsgHistoryLookupFail, LogFieldActor, fc.Actor.ID, LogFieldError, err)
			return false
		}
		if !caught {
			return true
		}
		return freq.CanRecatch(last, fc.Date)
	}
}
