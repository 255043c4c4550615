package content

import (
	"context"
	"embed"
	"io/fs"
	"strconv"

	"github.com/osse101/FishingOverhaul_Go/internal/availability"
	"github.com/osse101/FishingOverhaul_Go/internal/domain"
	"github.com/osse101/FishingOverhaul_Go/internal/gametime"
	"github.com/osse101/FishingOverhaul_Go/internal/logger"
	"github.com/osse101/FishingOverhaul_Go/internal/validation"
)

//go:embed data/game/*.json data/default.json
var embedded embed.FS

// DefaultSource converts the game's own fish and location tables into content,
// then adds the bundled treasure and effect content.
type DefaultSource struct {
	game      GameData
	today     func() gametime.Date
	validator validation.SchemaValidator
}

// DefaultOption configures a DefaultSource
type DefaultOption func(*DefaultSource)

// WithCalendar supplies the current date, used for content that changes with
// festivals. Without it every festival rule is treated as inactive.
func WithCalendar(today func() gametime.Date) DefaultOption {
	return func(s *DefaultSource) { s.today = today }
}

// NewDefaultSource uses the game tables bundled with the module
func NewDefaultSource(opts ...DefaultOption) (*DefaultSource, error) {
	sub, err := fs.Sub(embedded, "data/game")
	if err != nil {
		return nil, err
	}
	gd, err := LoadGameData(sub)
	if err != nil {
		return nil, err
	}
	return NewDefaultSourceFromGameData(gd, opts...), nil
}

// NewDefaultSourceFromGameData uses tables supplied by the host
func NewDefaultSourceFromGameData(gd GameData, opts ...DefaultOption) *DefaultSource {
	s := &DefaultSource{game: gd, validator: validation.NewSchemaValidator()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *DefaultSource) Name() string { return SourceNameDefault }

// Reload rebuilds the default content from the game tables
func (s *DefaultSource) Reload(ctx context.Context) (domain.FishingContent, error) {
	fish, traits := s.fishContent(ctx)
	out := domain.FishingContent{
		AddFish:       fish,
		SetFishTraits: traits,
		AddTrash:      append(s.trashContent(ctx), jellies()...),
	}

	data, err := embedded.ReadFile("data/default.json")
	if err != nil {
		return domain.FishingContent{}, err
	}
	extras, err := DecodeContent(ctx, SourceNameDefault, "default.json", data, s.validator)
	if err != nil {
		return domain.FishingContent{}, err
	}
	out = out.Merge(extras)

	logger.FromContext(ctx).Debug(LogMsgSourceLoaded,
		LogFieldSource, SourceNameDefault,
		LogFieldCount, len(out.AddFish)+len(out.AddTrash)+len(out.AddTreasure))
	return out, nil
}

func (s *DefaultSource) fishContent(ctx context.Context) ([]domain.FishEntry, map[domain.NamespacedKey]domain.FishTraits) {
	traits := make(map[domain.NamespacedKey]domain.FishTraits)
	base := make(map[domain.NamespacedKey]domain.FishAvailabilityInfo)

	for _, rawID := range sortedKeys(s.game.Fish) {
		id := cleanID(rawID)
		if trashIDs[id] {
			continue
		}
		rec, ok := parseFishRecord(s.game.Fish[rawID], defaultFishChance)
		if !ok {
			logger.FromContext(ctx).Debug(LogMsgGameRecordSkipped, LogFieldKey, rawID)
			continue
		}
		key := domain.ObjectKey(id)
		if rec.hasTraits {
			rec.traits.IsLegendary = legendaryKind(id) != notLegendary
			traits[key] = rec.traits
		}
		base[key] = rec.info
	}

	var fish []domain.FishEntry
	for _, loc := range sortedKeys(s.game.Locations) {
		for _, spawn := range s.game.Locations[loc].Fish {
			id := cleanID(spawn.ItemID)
			if id == "" || trashIDs[id] || manualOverrideIDs[id] {
				continue
			}
			key := domain.ObjectKey(id)
			if _, ok := traits[key]; !ok {
				continue
			}

			kind := legendaryKind(id)
			info, ok := base[key]
			if !ok {
				info = domain.NewFishAvailability(defaultFishChance)
			}
			info.IncludeLocations = locationNames(loc, kind != notLegendary)
			if spawn.Condition != "" {
				info.AvailabilityInfo = applyCondition(ctx, spawn.Condition, info.AvailabilityInfo, loc)
			}
			info.AvailabilityInfo = withSpawnRects(info.AvailabilityInfo, spawn)

			switch kind {
			case vanillaLegendary:
				info.AvailabilityInfo = info.WithWhen(availability.PredicateCanRecatch, key.QualifiedID())
			case familyLegendary:
				info.AvailabilityInfo = info.WithWhen(availability.PredicateRuleActive, legendaryFamilyRule)
			}
			fish = append(fish, domain.FishEntry{FishKey: key, Availability: info})

			if kind == notLegendary {
				fish = append(fish, domain.FishEntry{FishKey: key, Availability: frenzyVariant(info, key)})
			}
		}
	}

	return append(fish, s.manualFish(traits, base)...), traits
}

// frenzyVariant makes a fish catchable at any time, season and weather while
// the bobber sits in its frenzy bubbles
func frenzyVariant(info domain.FishAvailabilityInfo, key domain.NamespacedKey) domain.FishAvailabilityInfo {
	v := info
	v.AvailabilityInfo = info.WithWhen(availability.PredicateFrenzyFish, key.QualifiedID())
	v.BaseChance = frenzyChance
	v.Seasons = domain.SeasonAll
	v.Weathers = domain.WeatherAll
	v.StartTime, v.EndTime = domain.TimeDayStart, domain.TimeDayEnd
	v.MinFishingLevel = 0
	return v
}

type manualFish struct {
	id            string
	defaultChance float64
	locations     []string
}

func mineLevels(first, last int) []string {
	out := make([]string, 0, last-first+1)
	for lvl := first; lvl <= last; lvl++ {
		out = append(out, mineLocation+"/"+strconv.Itoa(lvl))
	}
	return out
}

// manualFish places the fish whose spawns the location table does not describe
func (s *DefaultSource) manualFish(traits map[domain.NamespacedKey]domain.FishTraits, base map[domain.NamespacedKey]domain.FishAvailabilityInfo) []domain.FishEntry {
	table := []manualFish{
		{"158", 0.05, mineLevels(20, 59)},
		{"161", 0.05, mineLevels(60, 99)},
		{"162", 0.02, append(mineLevels(100, 120), "Caldera", "VolcanoDungeon")},
	}
	if !s.desertFestival() {
		table = append(table,
			manualFish{"164", 0.1, []string{desertLocation}},
			manualFish{"165", 0.1, []string{desertLocation}})
	}
	for _, id := range []string{"798", "799", "800", "154", "155", "149"} {
		table = append(table, manualFish{id, 0.1, []string{"Submarine"}})
	}

	var out []domain.FishEntry
	for _, m := range table {
		key := domain.ObjectKey(m.id)
		if _, ok := traits[key]; !ok {
			continue
		}
		info, ok := base[key]
		if !ok {
			info = domain.NewFishAvailability(m.defaultChance)
		}
		info.IncludeLocations = m.locations
		out = append(out, domain.FishEntry{FishKey: key, Availability: info})
	}
	return out
}

func (s *DefaultSource) desertFestival() bool {
	if s.today == nil {
		return false
	}
	d := s.today()
	return d.Season == gametime.Spring && d.Day >= desertFestivalFirstDay && d.Day <= desertFestivalLastDay
}

func (s *DefaultSource) trashContent(ctx context.Context) []domain.TrashEntry {
	base := make(map[domain.NamespacedKey]domain.AvailabilityInfo)
	for _, rawID := range sortedKeys(s.game.Fish) {
		id := cleanID(rawID)
		if !trashIDs[id] {
			continue
		}
		if rec, ok := parseFishRecord(s.game.Fish[rawID], defaultTrashChance); ok {
			base[domain.ObjectKey(id)] = rec.info.AvailabilityInfo
		}
	}

	var out []domain.TrashEntry
	for _, loc := range sortedKeys(s.game.Locations) {
		for _, spawn := range s.game.Locations[loc].Fish {
			id := cleanID(spawn.ItemID)
			if !trashIDs[id] {
				continue
			}
			key := domain.ObjectKey(id)
			info, ok := base[key]
			if !ok {
				info = domain.NewAvailability(defaultTrashChance)
			}
			info.IncludeLocations = locationNames(loc, false)
			if spawn.Condition != "" {
				locations := info.IncludeLocations
				info = applyCondition(ctx, spawn.Condition, info, loc)
				info.IncludeLocations = locations
			}
			out = append(out, domain.TrashEntry{ItemKey: key, Availability: info})
		}
	}
	return out
}

func jellies() []domain.TrashEntry {
	jelly := func(id string, water domain.WaterTypes, locations ...string) domain.TrashEntry {
		info := domain.NewAvailability(defaultJellyChance)
		info.WaterTypes = water
		info.IncludeLocations = locations
		return domain.TrashEntry{ItemKey: domain.ObjectKey(id), Availability: info}
	}
	return []domain.TrashEntry{
		jelly("RiverJelly", domain.WaterRiver|domain.WaterPondOrOcean, "Town", "Mountain", "Forest", "Desert", "Woods"),
		jelly("SeaJelly", domain.WaterPondOrOcean, "Beach", "BeachNightMarket", "IslandWest", "IslandSouth", "IslandSouthEast"),
		jelly("CaveJelly", domain.WaterAll, mineLocation),
	}
}
