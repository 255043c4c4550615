package content

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/FishingOverhaul_Go/internal/availability"
	"github.com/osse101/FishingOverhaul_Go/internal/domain"
	"github.com/osse101/FishingOverhaul_Go/internal/gametime"
)

func loadDefault(t *testing.T, opts ...DefaultOption) domain.FishingContent {
	t.Helper()
	src, err := NewDefaultSource(opts...)
	require.NoError(t, err)
	c, err := src.Reload(context.Background())
	require.NoError(t, err)
	return c
}

func fishEntries(c domain.FishingContent, id string) []domain.FishEntry {
	var out []domain.FishEntry
	for _, f := range c.AddFish {
		if f.FishKey == domain.ObjectKey(id) {
			out = append(out, f)
		}
	}
	return out
}

func trashEntries(c domain.FishingContent, id string) []domain.TrashEntry {
	var out []domain.TrashEntry
	for _, e := range c.AddTrash {
		if e.ItemKey == domain.ObjectKey(id) {
			out = append(out, e)
		}
	}
	return out
}

func TestDefaultSource_Traits(t *testing.T) {
	c := loadDefault(t)

	puffer, ok := c.SetFishTraits[domain.ObjectKey("128")]
	require.True(t, ok)
	assert.Equal(t, 80, puffer.DartFrequency)
	assert.Equal(t, domain.DartFloater, puffer.DartBehavior)
	assert.Equal(t, 1, puffer.MinSize)
	assert.Equal(t, 36, puffer.MaxSize)
	assert.False(t, puffer.IsLegendary)

	assert.True(t, c.SetFishTraits[domain.ObjectKey("159")].IsLegendary)
	assert.True(t, c.SetFishTraits[domain.ObjectKey("899")].IsLegendary)

	_, ok = c.SetFishTraits[domain.ObjectKey("152")]
	assert.False(t, ok, "trash never gets fish traits")
}

func TestDefaultSource_RegularFishAndFrenzy(t *testing.T) {
	c := loadDefault(t)

	entries := fishEntries(c, "128")
	require.Len(t, entries, 2)

	regular, frenzy := entries[0], entries[1]
	assert.InDelta(t, 0.3, regular.Availability.BaseChance, 1e-9)
	assert.Equal(t, domain.SeasonSummer, regular.Availability.Seasons)
	assert.Equal(t, domain.WeatherSunny, regular.Availability.Weathers)
	assert.Equal(t, 1200, regular.Availability.StartTime)
	assert.Equal(t, 1600, regular.Availability.EndTime)
	assert.Equal(t, 4, regular.Availability.MaxChanceDepth)
	assert.InDelta(t, 0.5, regular.Availability.DepthMultiplier, 1e-9)
	assert.Equal(t, []string{"Beach", "BeachNightMarket", "Farm/Beach"}, regular.Availability.IncludeLocations)
	assert.NotContains(t, regular.Availability.When, availability.PredicateFrenzyFish)

	assert.InDelta(t, frenzyChance, frenzy.Availability.BaseChance, 1e-9)
	assert.Equal(t, domain.SeasonAll, frenzy.Availability.Seasons)
	assert.Equal(t, domain.WeatherAll, frenzy.Availability.Weathers)
	assert.Equal(t, domain.TimeDayStart, frenzy.Availability.StartTime)
	assert.Equal(t, domain.TimeDayEnd, frenzy.Availability.EndTime)
	assert.Equal(t, "(O)128", frenzy.Availability.When[availability.PredicateFrenzyFish])
}

func TestDefaultSource_Conditions(t *testing.T) {
	c := loadDefault(t)

	t.Run("weather condition", func(t *testing.T) {
		catfish := fishEntries(c, "143")
		require.NotEmpty(t, catfish)
		assert.Equal(t, domain.WeatherRainy, catfish[0].Availability.Weathers)
	})

	t.Run("season condition", func(t *testing.T) {
		trout := fishEntries(c, "699")
		require.NotEmpty(t, trout)
		assert.Equal(t, domain.SeasonFall|domain.SeasonWinter, trout[0].Availability.Seasons)
	})

	t.Run("time condition", func(t *testing.T) {
		tilapia := fishEntries(c, "701")
		require.NotEmpty(t, tilapia)
		assert.Equal(t, 600, tilapia[0].Availability.StartTime)
		assert.Equal(t, 1400, tilapia[0].Availability.EndTime)
	})

	t.Run("mine levels", func(t *testing.T) {
		ghost := fishEntries(c, "156")
		require.NotEmpty(t, ghost)
		assert.Equal(t, []string{"UndergroundMine/20", "UndergroundMine/21", "UndergroundMine/22", "UndergroundMine/23", "UndergroundMine/24"},
			ghost[0].Availability.IncludeLocations)
	})

	t.Run("unknown condition becomes a named predicate", func(t *testing.T) {
		var found bool
		for _, e := range fishEntries(c, "143") {
			if args, ok := e.Availability.When["BOBBER_DEPTH"]; ok {
				assert.Equal(t, "3", args)
				assert.Equal(t, []string{"Woods"}, e.Availability.IncludeLocations)
				found = true
			}
		}
		assert.True(t, found)
	})

	t.Run("fish without traits is dropped", func(t *testing.T) {
		assert.Empty(t, fishEntries(c, "734"))
	})
}

func TestDefaultSource_Legendaries(t *testing.T) {
	c := loadDefault(t)

	crimson := fishEntries(c, "159")
	require.Len(t, crimson, 1, "legendaries get no frenzy variant")
	info := crimson[0].Availability
	assert.Equal(t, []string{"Town"}, info.IncludeLocations, "legendaries do not spread to synonym locations")
	assert.Equal(t, "(O)159", info.When[availability.PredicateCanRecatch])
	assert.Equal(t, "0 10", info.When[availability.PredicatePlayerTileX])
	assert.Equal(t, "0 10", info.When[availability.PredicatePlayerTileY])
	assert.Equal(t, 5, info.MinFishingLevel)

	legend := fishEntries(c, "163")
	require.Len(t, legend, 1)
	assert.Equal(t, domain.SeasonSpring, legend[0].Availability.Seasons)
	assert.Equal(t, domain.WeatherRainy, legend[0].Availability.Weathers)
	assert.Equal(t, "40 34 8 8", legend[0].Availability.When[availability.PredicateBobberInRect])

	family := fishEntries(c, "899")
	require.Len(t, family, 1)
	assert.Equal(t, legendaryFamilyRule, family[0].Availability.When[availability.PredicateRuleActive])
	assert.NotContains(t, family[0].Availability.When, availability.PredicateCanRecatch)
}

func TestDefaultSource_ManualFish(t *testing.T) {
	t.Run("mine fish use their own levels", func(t *testing.T) {
		c := loadDefault(t)

		stonefish := fishEntries(c, "158")
		require.Len(t, stonefish, 1, "location spawns are replaced by the manual entry")
		locs := stonefish[0].Availability.IncludeLocations
		assert.Len(t, locs, 40)
		assert.Equal(t, "UndergroundMine/20", locs[0])
		assert.Equal(t, "UndergroundMine/59", locs[len(locs)-1])

		lava := fishEntries(c, "162")
		require.Len(t, lava, 1)
		assert.Contains(t, lava[0].Availability.IncludeLocations, "Caldera")
		assert.Contains(t, lava[0].Availability.IncludeLocations, "VolcanoDungeon")
	})

	t.Run("submarine", func(t *testing.T) {
		c := loadDefault(t)
		for _, id := range []string{"798", "799", "800", "149"} {
			entries := fishEntries(c, id)
			require.Len(t, entries, 1, id)
			assert.Equal(t, []string{"Submarine"}, entries[0].Availability.IncludeLocations)
		}
		assert.Len(t, fishEntries(c, "154"), 3, "beach spawn, its frenzy variant and the submarine entry")
	})

	tests := []struct {
		name   string
		date   gametime.Date
		desert bool
	}{
		{"before the festival", gametime.Date{Year: 1, Season: gametime.Spring, Day: 14}, true},
		{"festival start", gametime.Date{Year: 1, Season: gametime.Spring, Day: 15}, false},
		{"festival end", gametime.Date{Year: 1, Season: gametime.Spring, Day: 17}, false},
		{"same days in summer", gametime.Date{Year: 1, Season: gametime.Summer, Day: 16}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := loadDefault(t, WithCalendar(func() gametime.Date { return tt.date }))
			if tt.desert {
				assert.Len(t, fishEntries(c, "164"), 1)
				assert.Len(t, fishEntries(c, "165"), 1)
			} else {
				assert.Empty(t, fishEntries(c, "164"))
				assert.Empty(t, fishEntries(c, "165"))
			}
		})
	}
}

func TestDefaultSource_Trash(t *testing.T) {
	c := loadDefault(t)

	seaweed := trashEntries(c, "152")
	require.Len(t, seaweed, 1)
	assert.InDelta(t, 0.1, seaweed[0].Availability.BaseChance, 1e-9)
	assert.Equal(t, []string{"Beach", "BeachNightMarket", "Farm/Beach"}, seaweed[0].Availability.IncludeLocations)

	algae := trashEntries(c, "153")
	require.Len(t, algae, 2)
	assert.Equal(t, domain.SeasonSummer, algae[0].Availability.Seasons)
	assert.Equal(t, []string{"Mountain", "Farm/Mountain", "Farm/FourCorners", "Farm/Wilderness"}, algae[1].Availability.IncludeLocations)

	joja := trashEntries(c, "167")
	require.Len(t, joja, 1)
	assert.InDelta(t, defaultTrashChance, joja[0].Availability.BaseChance, 1e-9)

	for _, id := range []string{"RiverJelly", "SeaJelly", "CaveJelly"} {
		jelly := trashEntries(c, id)
		require.Len(t, jelly, 1, id)
		assert.InDelta(t, defaultJellyChance, jelly[0].Availability.BaseChance, 1e-9)
	}
	assert.Equal(t, domain.WaterPondOrOcean, trashEntries(c, "SeaJelly")[0].Availability.WaterTypes)
}

func TestDefaultSource_BundledContent(t *testing.T) {
	c := loadDefault(t)

	assert.NotEmpty(t, c.AddTreasure)
	for _, tr := range c.AddTreasure {
		assert.GreaterOrEqual(t, tr.MaxQuantity, tr.MinQuantity)
	}

	require.NotEmpty(t, c.AddEffects)
	assert.Equal(t, domain.EffectTreasureChance, c.AddEffects[0].Target)
	assert.Equal(t, "(O)693", c.AddEffects[0].Availability.When[availability.PredicateHasTackle])
}

func TestDefaultSource_Deterministic(t *testing.T) {
	assert.Equal(t, loadDefault(t), loadDefault(t))
}

func TestParseFishRecord(t *testing.T) {
	tests := []struct {
		name       string
		data       string
		ok         bool
		hasTraits  bool
		chance     float64
		minLevel   int
		wantSeason domain.Seasons
	}{
		{"full record", "Tuna/70/smooth/12/60/600 1900/summer winter/both/689 .35/3/.15/.55/2/true", true, true, 0.15, 2, domain.SeasonSummer | domain.SeasonWinter},
		{"too short", "Tuna/70/smooth", false, false, 0, 0, 0},
		{"bad sizes keep availability", "Odd/70/smooth/x/y/600 1900/spring/both/0/3/.2/.1/0", true, false, 0.2, 0, domain.SeasonSpring},
		{"chance falls back to max depth field", "Odd/70/smooth/1/2/600 1900//both/0/.4/none/.1/none", true, true, 0.4, 0, domain.SeasonAll},
		{"default chance", "Odd/70/smooth/1/2/600 1900/spring/both/0/x/y/z/1", true, true, 0.5, 1, domain.SeasonSpring},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, ok := parseFishRecord(tt.data, defaultFishChance)
			assert.Equal(t, tt.ok, ok)
			if !ok {
				return
			}
			assert.Equal(t, tt.hasTraits, rec.hasTraits)
			assert.InDelta(t, tt.chance, rec.info.BaseChance, 1e-9)
			assert.Equal(t, tt.minLevel, rec.info.MinFishingLevel)
			assert.Equal(t, tt.wantSeason, rec.info.Seasons)
		})
	}
}

func TestParseGameWeathers(t *testing.T) {
	assert.Equal(t, domain.WeatherSunny, parseGameWeathers("sunny"))
	assert.Equal(t, domain.WeatherRainy, parseGameWeathers("rainy"))
	assert.Equal(t, domain.WeatherAll, parseGameWeathers("both"))
	assert.Equal(t, domain.WeatherAll, parseGameWeathers(""))
}
