package availability

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/osse101/FishingOverhaul_Go/internal/domain"
	"github.com/osse101/FishingOverhaul_Go/internal/gametime"
)

// MockCatchHistory
type MockCatchHistory struct {
	mock.Mock
}

func (m *MockCatchHistory) LastCaught(ctx context.Context, actorID string, key domain.NamespacedKey) (gametime.Date, bool, error) {
	args := m.Called(ctx, actorID, key)
	return args.Get(0).(gametime.Date), args.Bool(1), args.Error(2)
}

func builtinModel(history CatchHistory) *Model {
	reg := NewPredicateRegistry()
	RegisterBuiltins(reg, history, gametime.Daily)
	return NewModel(reg)
}

func when(key, args string) domain.AvailabilityInfo {
	return domain.NewAvailability(1).WithWhen(key, args)
}

func TestBuiltins(t *testing.T) {
	model := builtinModel(nil)
	ctx := context.Background()

	fc := baseContext()
	fc.Actor.Tile = domain.Point{X: 10, Y: 20}
	fc.BobberTile = domain.Point{X: 12, Y: 22}
	fc.WaterDepth = 4
	fc.ActiveRules = map[string]bool{"LEGENDARY_FAMILY": true}
	fc.Tackle = []domain.NamespacedKey{domain.ObjectKey("686")}

	tests := []struct {
		name string
		info domain.AvailabilityInfo
		want bool
	}{
		{"time of day below", when(PredicateTimeOfDay, "< 1300"), true},
		{"time of day at or above", when(PredicateTimeOfDay, ">= 1300"), false},
		{"time of day bad operator", when(PredicateTimeOfDay, "~ 1300"), false},
		{"time window", when(PredicateTime, "1100 1300"), true},
		{"time window end exclusive", when(PredicateTime, "1000 1200"), false},
		{"tile x inclusive", when(PredicatePlayerTileX, "5 10"), true},
		{"tile y outside", when(PredicatePlayerTileY, "0 19"), false},
		{"player rect", when(PredicatePlayerInRect, "10 20 1 1"), true},
		{"bobber rect outside", when(PredicateBobberInRect, "0 0 12 22"), false},
		{"water depth minimum", when(PredicateWaterDepth, "4"), true},
		{"water depth range miss", when(PredicateWaterDepth, "1 3"), false},
		{"water depth garbage", when(PredicateWaterDepth, "deep"), false},
		{"fishing level", when(PredicateFishingLevel, "5"), true},
		{"fishing level too high", when(PredicateFishingLevel, "6"), false},
		{"rule active", when(PredicateRuleActive, "LEGENDARY_FAMILY"), true},
		{"rule inactive", when(PredicateRuleActive, "OTHER"), false},
		{"negated rule inactive", when("!"+PredicateRuleActive, "OTHER"), true},
		{"has tackle", when(PredicateHasTackle, "(O)686"), true},
		{"missing tackle", when(PredicateHasTackle, "687"), false},
		{"no frenzy", when(PredicateFrenzyFish, "128"), false},
		{"recatch without history", when(PredicateCanRecatch, "159"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, model.IsAvailable(ctx, tt.info, fc))
		})
	}
}

func TestFrenzyFish(t *testing.T) {
	model := builtinModel(nil)
	ctx := context.Background()
	info := when(PredicateFrenzyFish, "128")

	fc := baseContext()
	fc.Frenzy = &domain.Frenzy{Fish: domain.ObjectKey("128"), SplashPoint: domain.Point{X: 3, Y: 4}}

	fc.BobberTile = domain.Point{X: 3, Y: 4}
	assert.True(t, model.IsAvailable(ctx, info, fc))

	fc.BobberTile = domain.Point{X: 3, Y: 5}
	assert.False(t, model.IsAvailable(ctx, info, fc), "bobber must be on the splash point")

	fc.BobberTile = domain.Point{X: 3, Y: 4}
	fc.Frenzy.Fish = domain.ObjectKey("129")
	assert.False(t, model.IsAvailable(ctx, info, fc), "a different frenzy fish does not count")
}

func TestCanRecatch_Daily(t *testing.T) {
	ctx := context.Background()
	legend := domain.ObjectKey("159")
	day10 := gametime.Date{Year: 1, Season: gametime.Spring, Day: 10}

	history := new(MockCatchHistory)
	history.On("LastCaught", mock.Anything, "farmer", legend).Return(day10, true, nil)
	model := builtinModel(history)
	info := when(PredicateCanRecatch, "159")

	fc := baseContext()
	fc.Date = day10
	assert.False(t, model.IsAvailable(ctx, info, fc), "same day is not recatchable")

	fc.Date = gametime.Date{Year: 1, Season: gametime.Spring, Day: 11}
	assert.True(t, model.IsAvailable(ctx, info, fc), "next day is recatchable")

	history.AssertNumberOfCalls(t, "LastCaught", 2)
}

func TestCanRecatch_ExplicitFrequency(t *testing.T) {
	ctx := context.Background()
	legend := domain.ObjectKey("160")

	history := new(MockCatchHistory)
	history.On("LastCaught", mock.Anything, "farmer", legend).
		Return(gametime.Date{Year: 1, Season: gametime.Summer, Day: 1}, true, nil)
	model := builtinModel(history)

	fc := baseContext()
	fc.Date = gametime.Date{Year: 1, Season: gametime.Summer, Day: 28}
	assert.False(t, model.IsAvailable(ctx, when(PredicateCanRecatch, "160 seasonal"), fc))
	assert.True(t, model.IsAvailable(ctx, when(PredicateCanRecatch, "160 every:7"), fc))
	assert.False(t, model.IsAvailable(ctx, when(PredicateCanRecatch, "160 never"), fc))
	assert.False(t, model.IsAvailable(ctx, when(PredicateCanRecatch, "160 sometimes"), fc))
}

func TestCanRecatch_NeverCaughtAndErrors(t *testing.T) {
	ctx := context.Background()

	history := new(MockCatchHistory)
	history.On("LastCaught", mock.Anything, "farmer", domain.ObjectKey("163")).
		Return(gametime.Date{}, false, nil)
	history.On("LastCaught", mock.Anything, "farmer", domain.ObjectKey("682")).
		Return(gametime.Date{}, false, errors.New("store offline"))
	model := builtinModel(history)

	assert.True(t, model.IsAvailable(ctx, when(PredicateCanRecatch, "163"), baseContext()))
	assert.False(t, model.IsAvailable(ctx, when(PredicateCanRecatch, "682"), baseContext()))
}
