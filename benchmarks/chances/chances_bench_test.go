package chances_bench

import (
	"context"
	"testing"

	"github.com/osse101/FishingOverhaul_Go/internal/actordata"
	"github.com/osse101/FishingOverhaul_Go/internal/availability"
	"github.com/osse101/FishingOverhaul_Go/internal/config"
	"github.com/osse101/FishingOverhaul_Go/internal/content"
	"github.com/osse101/FishingOverhaul_Go/internal/domain"
	"github.com/osse101/FishingOverhaul_Go/internal/event"
	"github.com/osse101/FishingOverhaul_Go/internal/fishing"
	"github.com/osse101/FishingOverhaul_Go/internal/registry"
	"github.com/osse101/FishingOverhaul_Go/internal/simulate"
	"github.com/osse101/FishingOverhaul_Go/internal/utils"
)

// newService loads the bundled game content into an in-memory service
func newService(b *testing.B) *fishing.Service {
	b.Helper()
	ctx := context.Background()
	cfg := config.DefaultFishing()

	history := fishing.NewHistory(actordata.NewMemory(), "FishingOverhaul")
	preds := availability.NewPredicateRegistry()
	availability.RegisterBuiltins(preds, history, cfg.Fish.RecatchFrequency)

	src, err := content.NewDefaultSource()
	if err != nil {
		b.Fatalf("default content failed: %v", err)
	}
	reg := registry.New(availability.NewModel(preds), event.Discard{})
	if err := reg.Reload(ctx, src); err != nil {
		b.Fatalf("reload failed: %v", err)
	}
	return fishing.NewService(reg, history, event.Discard{}, utils.NewSeededRandom(1), cfg)
}

func riverCast() domain.FishingContext {
	return domain.FishingContext{
		Actor:      domain.ActorInfo{ID: "bench", FishingLevel: 8, FishCaughtCount: 100},
		Location:   "Town",
		Time:       1200,
		Seasons:    domain.SeasonSpring,
		Weathers:   domain.WeatherSunny,
		WaterTypes: domain.WaterRiver,
		WaterDepth: 5,
	}
}

// BenchmarkFishChances measures building the weighted fish table for a cast
func BenchmarkFishChances(b *testing.B) {
	svc := newService(b)
	ctx := context.Background()
	fc := svc.NewContext(ctx, riverCast())

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if len(svc.FishChances(ctx, fc)) == 0 {
			b.Fatal("no fish available")
		}
	}
}

// BenchmarkPossibleCatch measures a full catch draw: fish chance, fish or trash
func BenchmarkPossibleCatch(b *testing.B) {
	svc := newService(b)
	ctx := context.Background()
	fc := svc.NewContext(ctx, riverCast())

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = svc.PossibleCatch(ctx, fc)
	}
}

// BenchmarkSimulatedCasts drives whole interactions including treasure
func BenchmarkSimulatedCasts(b *testing.B) {
	svc := newService(b)
	opts := simulate.DefaultOptions()
	opts.Casts = 100
	opts.Context = riverCast()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := simulate.Run(context.Background(), svc, utils.NewSeededRandom(int64(i)), opts); err != nil {
			b.Fatalf("simulation failed: %v", err)
		}
	}
}
