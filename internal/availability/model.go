package availability

import (
	"context"
	"errors"
	"sort"
	"strings"

	"github.com/osse101/FishingOverhaul_Go/internal/domain"
	"github.com/osse101/FishingOverhaul_Go/internal/logger"
)

// Model evaluates availability against a fishing context
type Model struct {
	predicates *PredicateRegistry
}

// NewModel creates a model backed by the given predicate registry
func NewModel(predicates *PredicateRegistry) *Model {
	return &Model{predicates: predicates}
}

// Predicates returns the registry used for named conditions
func (m *Model) Predicates() *PredicateRegistry {
	return m.predicates
}

// IsAvailable compiles info and evaluates it once. Prefer Compile for entries evaluated repeatedly.
func (m *Model) IsAvailable(ctx context.Context, info domain.AvailabilityInfo, fc domain.FishingContext) bool {
	eval, _ := m.Compile(ctx, info)
	return eval.IsAvailable(ctx, fc)
}

type boundPredicate struct {
	name   string
	negate bool
	args   []string
	fn     Predicate
}

// Evaluator is an availability rule with its named conditions resolved
type Evaluator struct {
	info       domain.AvailabilityInfo
	predicates []boundPredicate
	unknown    bool
}

// Compile resolves every named condition of info. Unknown names produce an
// evaluator that always fails, plus an error wrapping domain.ErrUnknownPredicate.
func (m *Model) Compile(ctx context.Context, info domain.AvailabilityInfo) (*Evaluator, error) {
	eval := &Evaluator{info: info.Clone()}

	keys := make([]string, 0, len(info.When))
	for k := range info.When {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var errs []error
	for _, key := range keys {
		name, negate := parseCondition(key)
		fn, ok := m.predicates.Lookup(name)
		if !ok {
			err := m.predicates.unknownPredicateError(name)
			suggestion, _ := m.predicates.Suggest(name)
			logger.FromContext(ctx).Warn(LogMsgUnknownPredicate,
				LogFieldPredicate, name,
				LogFieldSuggestion, suggestion)
			errs = append(errs, err)
			eval.unknown = true
			continue
		}
		eval.predicates = append(eval.predicates, boundPredicate{
			name:   strings.ToUpper(name),
			negate: negate,
			args:   strings.Fields(info.When[key]),
			fn:     fn,
		})
	}

	return eval, errors.Join(errs...)
}

// Info returns the rule being evaluated
func (e *Evaluator) Info() domain.AvailabilityInfo {
	return e.info
}

// IsAvailable runs the native checks first, then the named conditions. All must pass.
func (e *Evaluator) IsAvailable(ctx context.Context, fc domain.FishingContext) bool {
	if e.unknown {
		return false
	}
	if !MatchesNative(e.info, fc) {
		return false
	}
	for _, p := range e.predicates {
		if p.fn(ctx, p.args, fc) == p.negate {
			return false
		}
	}
	return true
}

// MatchesNative evaluates the fixed scalar checks in order: time, season,
// weather, level, location, water type. It does not allocate.
func MatchesNative(info domain.AvailabilityInfo, fc domain.FishingContext) bool {
	return inTimeWindow(info, fc) &&
		info.Seasons.Intersects(fc.Seasons) &&
		info.Weathers.Intersects(fc.Weathers) &&
		fc.Actor.FishingLevel >= info.MinFishingLevel &&
		inLocations(info.IncludeLocations, fc.Locations) &&
		info.WaterTypes.Intersects(fc.WaterTypes)
}

// inTimeWindow checks [start, end). With an override list, any listed time may match.
func inTimeWindow(info domain.AvailabilityInfo, fc domain.FishingContext) bool {
	if len(fc.Times) == 0 {
		return info.StartTime <= fc.Time && fc.Time < info.EndTime
	}
	for _, t := range fc.Times {
		if info.StartTime <= t && t < info.EndTime {
			return true
		}
	}
	return false
}

// inLocations matches hierarchically: "UndergroundMine" includes "UndergroundMine/20".
func inLocations(include, current []string) bool {
	if len(include) == 0 {
		return true
	}
	for _, inc := range include {
		for _, loc := range current {
			if loc == inc || (len(loc) > len(inc) && loc[len(inc)] == '/' && strings.HasPrefix(loc, inc)) {
				return true
			}
		}
	}
	return false
}
