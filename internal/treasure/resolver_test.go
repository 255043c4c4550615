package treasure

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/FishingOverhaul_Go/internal/chances"
	"github.com/osse101/FishingOverhaul_Go/internal/domain"
	"github.com/osse101/FishingOverhaul_Go/internal/utils"
)

// fixedRandom always returns the same roll
type fixedRandom struct {
	roll  float64
	draws int
}

func (f *fixedRandom) Float64() float64 {
	f.draws++
	return f.roll
}

func (f *fixedRandom) IntN(n int) int {
	f.draws++
	return int(f.roll * float64(n))
}

func entry(id string, allowDuplicates bool) domain.TreasureEntry {
	return domain.TreasureEntry{
		ItemKeys:        []domain.NamespacedKey{domain.ObjectKey(id)},
		Availability:    domain.NewAvailability(1),
		MinQuantity:     1,
		MaxQuantity:     1,
		AllowDuplicates: allowDuplicates,
	}
}

func weighted(entries ...domain.TreasureEntry) []chances.Weighted[domain.TreasureEntry] {
	out := make([]chances.Weighted[domain.TreasureEntry], len(entries))
	for i, e := range entries {
		out[i] = chances.Weighted[domain.TreasureEntry]{Value: e, Weight: 1}
	}
	return out
}

func ids(entries []domain.TreasureEntry) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i], _ = e.ItemKeys[0].ObjectID()
	}
	return out
}

func TestRoll_Bounds(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name     string
		possible []chances.Weighted[domain.TreasureEntry]
		opts     Options
		want     int
	}{
		{
			name:     "stops at max items even with certain continuation",
			possible: weighted(entry("1", true)),
			opts:     Options{MaxItems: 3, AllowDuplicates: true, AdditionalLootChance: 1},
			want:     3,
		},
		{
			name:     "stops when candidates run out",
			possible: weighted(entry("1", false), entry("2", false)),
			opts:     Options{MaxItems: 10, AdditionalLootChance: 1},
			want:     2,
		},
		{
			name:     "zero additional chance gives exactly one",
			possible: weighted(entry("1", true), entry("2", true)),
			opts:     Options{MaxItems: 10, AllowDuplicates: true, AdditionalLootChance: 0},
			want:     1,
		},
		{
			name:     "nothing available",
			possible: nil,
			opts:     Options{MaxItems: 10, AdditionalLootChance: 1},
			want:     0,
		},
		{
			name:     "unset max uses the default",
			possible: weighted(entry("1", true)),
			opts:     Options{AllowDuplicates: true, AdditionalLootChance: 1},
			want:     DefaultMaxItems,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Roll(ctx, tt.possible, tt.opts, &fixedRandom{roll: 0.1})
			assert.Len(t, got, tt.want)
		})
	}
}

func TestRoll_DuplicatePolicy(t *testing.T) {
	ctx := context.Background()
	possible := weighted(entry("1", false), entry("2", true))
	opts := Options{MaxItems: 6, AdditionalLootChance: 1}

	t.Run("global switch off removes every pick", func(t *testing.T) {
		got := Roll(ctx, possible, opts, &fixedRandom{roll: 0.9})
		assert.ElementsMatch(t, []string{"1", "2"}, ids(got))
	})

	t.Run("global switch on keeps entries that allow it", func(t *testing.T) {
		opts := opts
		opts.AllowDuplicates = true
		got := Roll(ctx, possible, opts, &fixedRandom{roll: 0.1})
		require.Len(t, got, 6)
		counts := map[string]int{}
		for _, id := range ids(got) {
			counts[id]++
		}
		assert.Equal(t, 1, counts["1"], "entries that disallow duplicates appear once")
		assert.Equal(t, 5, counts["2"])
	})
}

func TestRoll_SharedIdentityDrawnOnce(t *testing.T) {
	ctx := context.Background()
	possible := weighted(entry("1", false), entry("1", false), entry("2", false))

	tests := []struct {
		name string
		opts Options
	}{
		{"global switch off", Options{MaxItems: 5, AdditionalLootChance: 1}},
		{"entry disallows duplicates", Options{MaxItems: 5, AllowDuplicates: true, AdditionalLootChance: 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for seed := int64(1); seed <= 200; seed++ {
				got := Roll(ctx, possible, tt.opts, utils.NewSeededRandom(seed))
				assert.ElementsMatch(t, []string{"1", "2"}, ids(got), "seed %d", seed)
			}
		})
	}
}

func TestRoll_ContinuationDecays(t *testing.T) {
	ctx := context.Background()
	possible := weighted(entry("1", false), entry("2", false), entry("3", false))

	// 0.3 passes chance 1 and 0.5, then fails 0.25
	got := Roll(ctx, possible, Options{MaxItems: 10, AdditionalLootChance: 0.5}, &fixedRandom{roll: 0.3})
	assert.Len(t, got, 2)
}

func TestRoll_InvertOnPerfect(t *testing.T) {
	ctx := context.Background()
	possible := []chances.Weighted[domain.TreasureEntry]{
		{Value: entry("common", false), Weight: 0.9},
		{Value: entry("rare", false), Weight: 0.1},
	}
	opts := Options{MaxItems: 1, InvertOnPerfect: true, Perfect: true, AdditionalLootChance: 1}

	// After inversion the weights are 0.1 and 0.9; a roll of 0.5 lands on "rare"
	got := Roll(ctx, possible, opts, &fixedRandom{roll: 0.5})
	assert.Equal(t, []string{"rare"}, ids(got))

	opts.Perfect = false
	got = Roll(ctx, possible, opts, &fixedRandom{roll: 0.5})
	assert.Equal(t, []string{"common"}, ids(got))

	// A lone candidate inverts to zero weight and yields nothing
	single := []chances.Weighted[domain.TreasureEntry]{{Value: entry("only", false), Weight: 1}}
	opts.Perfect = true
	assert.Empty(t, Roll(ctx, single, opts, &fixedRandom{roll: 0.5}))
}

func TestRoll_DoesNotModifyInput(t *testing.T) {
	possible := weighted(entry("1", false), entry("2", false))
	_ = Roll(context.Background(), possible, Options{MaxItems: 5, AdditionalLootChance: 1}, &fixedRandom{roll: 0.1})
	assert.Len(t, possible, 2)
	assert.Equal(t, []string{"1", "2"}, ids(chances.Values(possible)))
}

func TestQuantity(t *testing.T) {
	e := domain.TreasureEntry{
		ItemKeys:    []domain.NamespacedKey{domain.ObjectKey("60"), domain.ObjectKey("62"), domain.ObjectKey("64")},
		MinQuantity: 2,
		MaxQuantity: 5,
	}

	rng := utils.NewSeededRandom(7)
	seen := map[int]bool{}
	for range 500 {
		r := Quantity(e, rng)
		assert.GreaterOrEqual(t, r.Quantity, 2)
		assert.LessOrEqual(t, r.Quantity, 5)
		assert.Contains(t, e.ItemKeys, r.Item)
		seen[r.Quantity] = true
	}
	assert.Len(t, seen, 4, "both bounds are reachable")

	fixed := Quantity(domain.TreasureEntry{ItemKeys: []domain.NamespacedKey{domain.ObjectKey("382")}}, rng)
	assert.Equal(t, 1, fixed.Quantity, "omitted quantities mean one")
}

func TestResolve(t *testing.T) {
	possible := weighted(entry("1", false), entry("2", false))
	rewards := Resolve(context.Background(), possible, Options{MaxItems: 5, AdditionalLootChance: 1}, utils.NewSeededRandom(1))
	require.Len(t, rewards, 2)
	for _, r := range rewards {
		assert.Equal(t, 1, r.Quantity)
		assert.False(t, r.Item.IsZero())
	}
}
