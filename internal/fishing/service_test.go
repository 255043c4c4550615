package fishing

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/FishingOverhaul_Go/internal/availability"
	"github.com/osse101/FishingOverhaul_Go/internal/chances"
	"github.com/osse101/FishingOverhaul_Go/internal/config"
	"github.com/osse101/FishingOverhaul_Go/internal/content"
	"github.com/osse101/FishingOverhaul_Go/internal/domain"
	"github.com/osse101/FishingOverhaul_Go/internal/event"
	"github.com/osse101/FishingOverhaul_Go/internal/gametime"
	"github.com/osse101/FishingOverhaul_Go/internal/registry"
	"github.com/osse101/FishingOverhaul_Go/internal/utils"
)

// seqRandom replays rolls in order, repeating the last one
type seqRandom struct {
	rolls []float64
	draws int
}

func (s *seqRandom) next() float64 {
	i := min(s.draws, len(s.rolls)-1)
	s.draws++
	return s.rolls[i]
}

func (s *seqRandom) Float64() float64 { return s.next() }
func (s *seqRandom) IntN(n int) int   { return int(s.next() * float64(n)) }

// memStore is an in-memory StateStore
type memStore struct {
	values map[string]string
	err    error
}

func newMemStore() *memStore {
	return &memStore{values: map[string]string{}}
}

func (m *memStore) Get(_ context.Context, actorID, key string) (string, bool, error) {
	if m.err != nil {
		return "", false, m.err
	}
	v, ok := m.values[actorID+"|"+key]
	return v, ok, nil
}

func (m *memStore) Set(_ context.Context, actorID, key, value string) error {
	if m.err != nil {
		return m.err
	}
	m.values[actorID+"|"+key] = value
	return nil
}

type fixture struct {
	svc   *Service
	reg   *registry.Registry
	store *memStore
	bus   *event.MemoryBus
}

func newFixture(t *testing.T, c domain.FishingContent, rng utils.Random, opts ...Option) fixture {
	t.Helper()
	return newFixtureWithConfig(t, c, rng, config.DefaultFishing(), opts...)
}

func newFixtureWithConfig(t *testing.T, c domain.FishingContent, rng utils.Random, cfg config.Fishing, opts ...Option) fixture {
	t.Helper()
	ctx := context.Background()

	store := newMemStore()
	history := NewHistory(store, "FishingOverhaul")
	preds := availability.NewPredicateRegistry()
	availability.RegisterBuiltins(preds, history, gametime.Never)

	bus := event.NewMemoryBus()
	reg := registry.New(availability.NewModel(preds), bus)
	require.NoError(t, reg.Reload(ctx, content.NewStaticSource("test", c)))

	return fixture{
		svc:   NewService(reg, history, bus, rng, cfg, opts...),
		reg:   reg,
		store: store,
		bus:   bus,
	}
}

func fishEntry(id string, chance float64) domain.FishEntry {
	return domain.FishEntry{FishKey: domain.ObjectKey(id), Availability: domain.NewFishAvailability(chance)}
}

func trashEntry(id string, chance float64) domain.TrashEntry {
	return domain.TrashEntry{ItemKey: domain.ObjectKey(id), Availability: domain.NewAvailability(chance)}
}

func testContext() domain.FishingContext {
	return domain.FishingContext{
		Actor:      domain.ActorInfo{ID: "farmer-1", FishCaughtCount: 10},
		Location:   "Town",
		Time:       1200,
		Seasons:    domain.SeasonSpring,
		Weathers:   domain.WeatherSunny,
		WaterTypes: domain.WaterRiver,
		WaterDepth: 5,
	}
}

func TestPossibleCatch_SingleFishAtHalfChance(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, domain.FishingContent{
		AddFish:  []domain.FishEntry{fishEntry("128", 0.5)},
		AddTrash: []domain.TrashEntry{trashEntry("167", 1)},
	}, utils.NewSeededRandom(42))
	fc := f.svc.NewContext(ctx, testContext())

	require.InDelta(t, 0.5, f.svc.FishChance(ctx, fc), 1e-9)

	const trials = 20000
	fish := 0
	for range trials {
		if _, ok := f.svc.PossibleCatch(ctx, fc).(domain.PossibleFish); ok {
			fish++
		}
	}
	assert.InDelta(t, 0.5, float64(fish)/trials, 0.02)
}

func TestFishChances_SameTierEntriesCompete(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, domain.FishingContent{
		AddFish: []domain.FishEntry{fishEntry("128", 1), fishEntry("128", 5)},
	}, utils.NewSeededRandom(1))
	fc := f.svc.NewContext(ctx, testContext())

	ws := chances.Normalize(f.svc.FishChances(ctx, fc))
	require.Len(t, ws, 2)
	assert.InDelta(t, 1.0/6, ws[0].Weight, 1e-9)
	assert.InDelta(t, 5.0/6, ws[1].Weight, 1e-9)
}

func TestFishChances_HighestTierWins(t *testing.T) {
	ctx := context.Background()
	special := fishEntry("160", 0.1)
	special.Availability.PriorityTier = 1
	f := newFixture(t, domain.FishingContent{
		AddFish: []domain.FishEntry{fishEntry("128", 1), special},
	}, utils.NewSeededRandom(1))

	ws := f.svc.FishChances(ctx, f.svc.NewContext(ctx, testContext()))
	require.Len(t, ws, 1)
	assert.True(t, ws[0].Value.Key().Equal(domain.ObjectKey("160")))
}

func TestPossibleCatch_TrashOnNothing(t *testing.T) {
	ctx := context.Background()
	rng := &seqRandom{rolls: []float64{0.9, 0}}
	f := newFixture(t, domain.FishingContent{
		AddFish:  []domain.FishEntry{fishEntry("128", 1)},
		AddTrash: []domain.TrashEntry{trashEntry("167", 1)},
	}, rng)

	got := f.svc.PossibleCatch(ctx, f.svc.NewContext(ctx, testContext()))
	trash, ok := got.(domain.PossibleTrash)
	require.True(t, ok)
	assert.True(t, trash.Entry.ItemKey.Equal(domain.ObjectKey("167")))
	assert.Equal(t, 2, rng.draws, "one catch draw and one trash draw")
}

func TestPossibleCatch_FallsBackToGenericTrash(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, domain.FishingContent{}, &seqRandom{rolls: []float64{0.1}})

	var fallbacks []event.Event
	f.bus.Subscribe(event.TrashFallback, func(_ context.Context, e event.Event) error {
		fallbacks = append(fallbacks, e)
		return nil
	})

	got := f.svc.PossibleCatch(ctx, f.svc.NewContext(ctx, testContext()))
	trash, ok := got.(domain.PossibleTrash)
	require.True(t, ok)
	assert.Equal(t, domain.QualifiedObjectGenericTrash, trash.Entry.ItemKey.QualifiedID())
	require.Len(t, fallbacks, 1)
	assert.Equal(t, event.ReasonNoCatch, fallbacks[0].Payload.(event.FallbackPayloadV1).Reason)
}

func TestTargetedBait(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, domain.FishingContent{
		AddFish: []domain.FishEntry{fishEntry("128", 0.01), fishEntry("158", 0.01), fishEntry("129", 1)},
	}, utils.NewSeededRandom(1))

	t.Run("forces the fish chance while the target can bite", func(t *testing.T) {
		fc := testContext()
		fc.BaitTarget = domain.MustParseKey("(O)128")
		fc = f.svc.NewContext(ctx, fc)
		assert.InDelta(t, 1.0, f.svc.FishChance(ctx, fc), 1e-9)
	})

	t.Run("multiplies the target weight", func(t *testing.T) {
		fc := testContext()
		fc.BaitTarget = domain.ObjectKey("128")
		ws := f.svc.FishChances(ctx, f.svc.NewContext(ctx, fc))
		require.Len(t, ws, 3)
		assert.InDelta(t, 2.0, ws[0].Weight, 1e-9)
		assert.InDelta(t, 0.01, ws[1].Weight, 1e-9)
		assert.InDelta(t, 1.0, ws[2].Weight, 1e-9)
	})

	t.Run("special targets get a flat bonus", func(t *testing.T) {
		fc := testContext()
		fc.BaitTarget = domain.ObjectKey("158")
		ws := f.svc.FishChances(ctx, f.svc.NewContext(ctx, fc))
		assert.InDelta(t, 0.11, ws[1].Weight, 1e-9)
	})

	t.Run("unavailable target leaves the chance alone", func(t *testing.T) {
		fc := testContext()
		fc.BaitTarget = domain.ObjectKey("999")
		assert.InDelta(t, 0.5, f.svc.FishChance(ctx, f.svc.NewContext(ctx, fc)), 1e-9)
	})
}

func TestFishChance_Hooks(t *testing.T) {
	ctx := context.Background()

	t.Run("clamp hooks with min above max use max", func(t *testing.T) {
		f := newFixture(t, domain.FishingContent{}, utils.NewSeededRandom(1), WithHooks(func(h *Hooks) {
			h.MinFishChance.Add("raise", func(context.Context, domain.FishingContext, float64) float64 { return 0.9 })
			h.MaxFishChance.Add("lower", func(context.Context, domain.FishingContext, float64) float64 { return 0.3 })
		}))
		assert.InDelta(t, 0.3, f.svc.FishChance(ctx, f.svc.NewContext(ctx, testContext())), 1e-9)
	})

	t.Run("chance hooks see the unclamped value", func(t *testing.T) {
		var seen float64
		f := newFixture(t, domain.FishingContent{}, utils.NewSeededRandom(1), WithHooks(func(h *Hooks) {
			h.FishChanceCalculated.Add("spy", func(_ context.Context, _ domain.FishingContext, v float64) float64 {
				seen = v
				return v * 4
			})
		}))
		fc := testContext()
		fc.Actor.DailyLuck = 0.1
		got := f.svc.FishChance(ctx, f.svc.NewContext(ctx, fc))
		assert.InDelta(t, 0.6, seen, 1e-9)
		assert.InDelta(t, 1.0, got, 1e-9)
	})
}

func TestFishChance_Effects(t *testing.T) {
	ctx := context.Background()
	rainy := domain.NewAvailability(0)
	rainy.Weathers = domain.WeatherRainy
	f := newFixture(t, domain.FishingContent{
		AddEffects: []domain.FishingEffectEntry{
			{Availability: domain.NewAvailability(0), Target: domain.EffectFishChance, Op: domain.EffectMultiply, Value: 0.5},
			{Availability: rainy, Target: domain.EffectMaxFishChance, Op: domain.EffectSet, Value: 0.1},
		},
	}, utils.NewSeededRandom(1))

	sunny := f.svc.NewContext(ctx, testContext())
	assert.InDelta(t, 0.25, f.svc.FishChance(ctx, sunny), 1e-9)

	rain := testContext()
	rain.Weathers = domain.WeatherRainy
	assert.InDelta(t, 0.1, f.svc.FishChance(ctx, f.svc.NewContext(ctx, rain)), 1e-9)
}

func TestTreasureChance_StreakRaisesChance(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, domain.FishingContent{}, utils.NewSeededRandom(1))
	fc := f.svc.NewContext(ctx, testContext())

	before := f.svc.TreasureChance(ctx, fc)
	require.NoError(t, f.svc.SetStreak(ctx, fc.Actor.ID, 10))
	after := f.svc.TreasureChance(ctx, fc)
	assert.InDelta(t, 0.15, before, 1e-9)
	assert.InDelta(t, 0.2, after, 1e-9)
}

func TestStreak(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, domain.FishingContent{}, utils.NewSeededRandom(1))

	streak, err := f.svc.Streak(ctx, "farmer-1")
	require.NoError(t, err)
	assert.Zero(t, streak)

	require.NoError(t, f.svc.SetStreak(ctx, "farmer-1", 7))
	streak, err = f.svc.Streak(ctx, "farmer-1")
	require.NoError(t, err)
	assert.Equal(t, 7, streak)
	assert.Equal(t, "7", f.store.values["farmer-1|FishingOverhaul/fishing-state/streak"])

	t.Run("corrupt value reads as zero", func(t *testing.T) {
		f.store.values["farmer-1|"+f.svc.StreakKey()] = "seven"
		streak, err := f.svc.Streak(ctx, "farmer-1")
		require.NoError(t, err)
		assert.Zero(t, streak)
	})

	t.Run("store errors are wrapped", func(t *testing.T) {
		f.store.err = errors.New("disk on fire")
		defer func() { f.store.err = nil }()

		_, err := f.svc.Streak(ctx, "farmer-1")
		require.ErrorIs(t, err, domain.ErrStoreUnavailable)
		assert.ErrorIs(t, f.svc.SetStreak(ctx, "farmer-1", 1), domain.ErrStoreUnavailable)

		fc := f.svc.NewContext(ctx, testContext())
		assert.InDelta(t, 0.5, f.svc.FishChance(ctx, fc), 1e-9, "an unreadable streak counts as zero")
	})
}

func TestLastCaught(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, domain.FishingContent{}, utils.NewSeededRandom(1))
	key := domain.ObjectKey("159")

	_, ok, err := f.svc.LastCaught(ctx, "farmer-1", key)
	require.NoError(t, err)
	assert.False(t, ok)

	date := gametime.FromTotalDays(10)
	require.NoError(t, f.svc.RecordCatch(ctx, "farmer-1", domain.MustParseKey("(O)159"), date))

	got, ok, err := f.svc.LastCaught(ctx, "farmer-1", key)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, date, got)
}

func TestTraits_DartFrequencyFactor(t *testing.T) {
	ctx := context.Background()
	cfg := config.DefaultFishing()
	cfg.Fish.GlobalDartFrequencyFactor = 0.5
	f := newFixtureWithConfig(t, domain.FishingContent{
		AddFish: []domain.FishEntry{fishEntry("159", 1)},
		SetFishTraits: map[domain.NamespacedKey]domain.FishTraits{
			domain.ObjectKey("159"): {DartFrequency: 80, MinSize: 10, MaxSize: 20, IsLegendary: true},
		},
	}, utils.NewSeededRandom(1), cfg)

	traits, ok := f.svc.Traits(ctx, domain.MustParseKey("(O)159"))
	require.True(t, ok)
	assert.Equal(t, 40, traits.DartFrequency)
	assert.True(t, f.svc.IsLegendary(ctx, domain.ObjectKey("159")))

	_, ok = f.svc.Traits(ctx, domain.ObjectKey("128"))
	assert.False(t, ok)
	assert.False(t, f.svc.IsLegendary(ctx, domain.ObjectKey("128")))
}

func TestPossibleTreasure(t *testing.T) {
	ctx := context.Background()
	loot := domain.TreasureEntry{
		ItemKeys:     []domain.NamespacedKey{domain.ObjectKey("166")},
		Availability: domain.NewAvailability(1),
		MinQuantity:  1,
		MaxQuantity:  1,
	}
	cfg := config.DefaultFishing()
	cfg.Treasure.AllowDuplicateLoot = false
	f := newFixtureWithConfig(t, domain.FishingContent{AddTreasure: []domain.TreasureEntry{loot}}, &seqRandom{rolls: []float64{0}}, cfg)

	fc := f.svc.NewContext(ctx, testContext())
	got := f.svc.PossibleTreasure(ctx, domain.FishCatch{Context: fc})
	require.Len(t, got, 1, "a non-duplicable entry is looted once")
	assert.Equal(t, loot.Identity(), got[0].Identity())
}

func TestNewContext(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, domain.FishingContent{}, utils.NewSeededRandom(1))

	in := testContext()
	fc := f.svc.NewContext(ctx, in)
	assert.NotEmpty(t, fc.AttemptID)
	assert.Equal(t, []string{"Town"}, fc.Locations)
	assert.Empty(t, in.Locations, "the caller's context is not modified")

	t.Run("magic bait opens every season", func(t *testing.T) {
		in := testContext()
		in.Bait = domain.MustParseKey("(O)908")
		fc := f.svc.NewContext(ctx, in)
		assert.Equal(t, domain.SeasonAll, fc.Seasons)
		assert.Equal(t, domain.WeatherAll, fc.Weathers)
		assert.Len(t, fc.Times, domain.TimeDayEnd-domain.TimeDayStart)
	})
}

func TestNewContext_ContentLocations(t *testing.T) {
	ctx := context.Background()
	c := domain.FishingContent{
		SetLocations: map[string]domain.LocationInfo{
			"Beach": {Names: []string{"BeachNightMarket"}},
			"Town":  {OverrideLocation: "Beach", OverrideChance: 0.5},
		},
	}

	tests := []struct {
		name     string
		location string
		roll     float64
		want     []string
	}{
		{"synonyms are resolved", "Beach", 0.9, []string{"Beach", "BeachNightMarket"}},
		{"override taken below its chance", "Town", 0.2, []string{"Beach", "BeachNightMarket"}},
		{"override skipped above its chance", "Town", 0.8, []string{"Town"}},
		{"unknown location keeps its name", "Forest", 0.2, []string{"Forest"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, c, utils.NewSeededRandom(1))
			rng := &seqRandom{rolls: []float64{tt.roll}}
			svc := NewService(f.reg, f.svc.History, f.bus, rng, config.DefaultFishing(), WithLocationResolver(f.reg))

			in := testContext()
			in.Location = tt.location
			assert.Equal(t, tt.want, svc.NewContext(ctx, in).Locations)
		})
	}
}
