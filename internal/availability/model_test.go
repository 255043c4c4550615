package availability

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/FishingOverhaul_Go/internal/domain"
	"github.com/osse101/FishingOverhaul_Go/internal/gametime"
)

func baseContext() domain.FishingContext {
	return domain.FishingContext{
		Actor:      domain.ActorInfo{ID: "farmer", FishingLevel: 5},
		Location:   "Town",
		Locations:  []string{"Town"},
		Time:       1200,
		Seasons:    domain.SeasonSummer,
		Weathers:   domain.WeatherSunny,
		WaterTypes: domain.WaterRiver,
	}
}

func TestMatchesNative(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*domain.AvailabilityInfo)
		want   bool
	}{
		{"always available", func(*domain.AvailabilityInfo) {}, true},
		{"before window", func(a *domain.AvailabilityInfo) { a.StartTime = 1300 }, false},
		{"end is exclusive", func(a *domain.AvailabilityInfo) { a.EndTime = 1200 }, false},
		{"start is inclusive", func(a *domain.AvailabilityInfo) { a.StartTime = 1200 }, true},
		{"wrong season", func(a *domain.AvailabilityInfo) { a.Seasons = domain.SeasonWinter }, false},
		{"wrong weather", func(a *domain.AvailabilityInfo) { a.Weathers = domain.WeatherRainy }, false},
		{"level too low", func(a *domain.AvailabilityInfo) { a.MinFishingLevel = 6 }, false},
		{"level exact", func(a *domain.AvailabilityInfo) { a.MinFishingLevel = 5 }, true},
		{"location mismatch", func(a *domain.AvailabilityInfo) { a.IncludeLocations = []string{"Beach"} }, false},
		{"location match", func(a *domain.AvailabilityInfo) { a.IncludeLocations = []string{"Beach", "Town"} }, true},
		{"water mismatch", func(a *domain.AvailabilityInfo) { a.WaterTypes = domain.WaterPondOrOcean }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info := domain.NewAvailability(1)
			tt.modify(&info)
			assert.Equal(t, tt.want, MatchesNative(info, baseContext()))
		})
	}
}

func TestMatchesNative_HierarchicalLocations(t *testing.T) {
	fc := baseContext()
	fc.Locations = []string{"UndergroundMine/20"}

	info := domain.NewAvailability(1)
	info.IncludeLocations = []string{"UndergroundMine"}
	assert.True(t, MatchesNative(info, fc))

	info.IncludeLocations = []string{"Underground"}
	assert.False(t, MatchesNative(info, fc), "prefix must end on a path boundary")

	info.IncludeLocations = []string{"UndergroundMine/20"}
	assert.True(t, MatchesNative(info, fc))
}

func TestMatchesNative_TimeOverrideList(t *testing.T) {
	info := domain.NewAvailability(1)
	info.StartTime, info.EndTime = 1800, 2000

	fc := baseContext()
	assert.False(t, MatchesNative(info, fc))

	fc = fc.WithTimes([]int{600, 1900})
	assert.True(t, MatchesNative(info, fc), "any listed time may fall in the window")
}

func TestEvaluator_NamedPredicates(t *testing.T) {
	reg := NewPredicateRegistry()
	reg.Register("ALWAYS", func(context.Context, []string, domain.FishingContext) bool { return true })
	reg.Register("NEVER", func(context.Context, []string, domain.FishingContext) bool { return false })
	reg.Register("ARGS_EQUAL", func(_ context.Context, args []string, _ domain.FishingContext) bool {
		return len(args) == 2 && args[0] == args[1]
	})
	model := NewModel(reg)
	ctx := context.Background()

	tests := []struct {
		name string
		when map[string]string
		want bool
	}{
		{"no conditions", nil, true},
		{"true predicate", map[string]string{"ALWAYS": ""}, true},
		{"false predicate", map[string]string{"NEVER": ""}, false},
		{"negated false", map[string]string{"!NEVER": ""}, true},
		{"negated true", map[string]string{"!ALWAYS": ""}, false},
		{"all must hold", map[string]string{"ALWAYS": "", "NEVER": ""}, false},
		{"arguments split on spaces", map[string]string{"args_equal": "a  a"}, true},
		{"unknown fails closed", map[string]string{"MYSTERY": ""}, false},
		{"negated unknown still fails", map[string]string{"!MYSTERY": ""}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info := domain.NewAvailability(1)
			info.When = tt.when
			assert.Equal(t, tt.want, model.IsAvailable(ctx, info, baseContext()))
		})
	}
}

func TestCompile_UnknownPredicateSuggestion(t *testing.T) {
	reg := NewPredicateRegistry()
	RegisterBuiltins(reg, nil, gametime.Daily)
	model := NewModel(reg)

	info := domain.NewAvailability(1).WithWhen("WATER_DEPHT", "3")
	eval, err := model.Compile(context.Background(), info)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUnknownPredicate)
	assert.Contains(t, err.Error(), "did you mean WATER_DEPTH")
	assert.False(t, eval.IsAvailable(context.Background(), baseContext()))
}

func TestCompile_NativeFailureShortCircuits(t *testing.T) {
	called := false
	reg := NewPredicateRegistry()
	reg.Register("SPY", func(context.Context, []string, domain.FishingContext) bool {
		called = true
		return true
	})

	info := domain.NewAvailability(1).WithWhen("SPY", "")
	info.Seasons = domain.SeasonWinter

	assert.False(t, NewModel(reg).IsAvailable(context.Background(), info, baseContext()))
	assert.False(t, called, "named predicates run only after native checks pass")
}
