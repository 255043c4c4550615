package content

import (
	"context"
	"encoding/json"
	"fmt"
	"io/fs"
	"maps"
	"slices"
	"strconv"
	"strings"

	"github.com/osse101/FishingOverhaul_Go/internal/availability"
	"github.com/osse101/FishingOverhaul_Go/internal/domain"
	"github.com/osse101/FishingOverhaul_Go/internal/logger"
)

// Game data file names inside a game data file system
const (
	GameDataFishFile      = "fish.json"
	GameDataLocationsFile = "locations.json"
)

// SpawnRect is a tile rectangle from the location table
type SpawnRect struct {
	X      int `json:"x"`
	Y      int `json:"y"`
	Width  int `json:"width"`
	Height int `json:"height"`
}

// SpawnData is one fish spawn rule of a location
type SpawnData struct {
	ItemID         string     `json:"itemId"`
	Condition      string     `json:"condition,omitempty"`
	PlayerPosition *SpawnRect `json:"playerPosition,omitempty"`
	BobberPosition *SpawnRect `json:"bobberPosition,omitempty"`
}

// LocationData is the fishing part of a location table record
type LocationData struct {
	Fish []SpawnData `json:"fish"`
}

// GameData is the game's raw fish table (id to slash-separated record) and its
// location spawn table, as exported from the game's content files.
type GameData struct {
	Fish      map[string]string       `json:"fish"`
	Locations map[string]LocationData `json:"locations"`
}

// LoadGameData reads fish.json and locations.json from fsys
func LoadGameData(fsys fs.FS) (GameData, error) {
	var gd GameData
	if err := readJSON(fsys, GameDataFishFile, &gd.Fish); err != nil {
		return GameData{}, err
	}
	if err := readJSON(fsys, GameDataLocationsFile, &gd.Locations); err != nil {
		return GameData{}, err
	}
	return gd, nil
}

func readJSON(fsys fs.FS, name string, out interface{}) error {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return fmt.Errorf(ErrMsgGameDataFailed, name, err)
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf(ErrMsgGameDataFailed, name, err)
	}
	return nil
}

// Item id groups that change how game records are converted
var (
	legendaryFishIDs   = setOf("159", "160", "163", "682", "775")
	legendaryFamilyIDs = setOf("898", "899", "900", "901", "902")
	trashFishIDs       = setOf("152", "153", "157")
	manualOverrideIDs  = setOf("158", "161", "162", "164", "165", "798", "799", "800")
	trashIDs           = setOf("152", "153", "157", "167", "168", "169", "170", "171", "172", "812")
)

func setOf(ids ...string) map[string]bool {
	m := make(map[string]bool, len(ids))
	for _, id := range ids {
		m[id] = true
	}
	return m
}

// locationSynonyms expands a game location to every place that shares its fish
var locationSynonyms = map[string][]string{
	"Beach":    {"Beach", "BeachNightMarket", "Farm/Beach"},
	"Forest":   {"Forest", "Farm/Riverland", "Farm/Forest", "Farm/Hills", "Farm/FourCorners"},
	"Town":     {"Town", "Farm/Riverland", "Farm/Standard"},
	"Mountain": {"Mountain", "Farm/Mountain", "Farm/FourCorners", "Farm/Wilderness"},
}

func locationNames(location string, legendary bool) []string {
	if names, ok := locationSynonyms[location]; ok && !legendary {
		return slices.Clone(names)
	}
	return []string{location}
}

func cleanID(raw string) string {
	return strings.TrimPrefix(raw, "(O)")
}

type legendKind int

const (
	notLegendary legendKind = iota
	vanillaLegendary
	familyLegendary
)

func legendaryKind(id string) legendKind {
	switch {
	case legendaryFamilyIDs[id]:
		return familyLegendary
	case legendaryFishIDs[id]:
		return vanillaLegendary
	default:
		return notLegendary
	}
}

// fishRecord is a parsed Data/Fish line
type fishRecord struct {
	traits    domain.FishTraits
	hasTraits bool
	info      domain.FishAvailabilityInfo
}

// parseFishRecord converts one raw Data/Fish line. defaultChance is used when
// the record carries no usable spawn multiplier.
func parseFishRecord(data string, defaultChance float64) (fishRecord, bool) {
	parts := strings.Split(data, "/")
	if len(parts) < fishRecordMinFields {
		return fishRecord{}, false
	}

	var rec fishRecord
	difficulty, errD := strconv.Atoi(parts[fishFieldDifficulty])
	minSize, errMin := strconv.Atoi(parts[fishFieldMinSize])
	maxSize, errMax := strconv.Atoi(parts[fishFieldMaxSize])
	if errD == nil && errMin == nil && errMax == nil {
		behavior, err := domain.ParseDartBehavior(parts[fishFieldBehavior])
		if err != nil {
			behavior = domain.DartMixed
		}
		rec.traits = domain.FishTraits{
			DartFrequency: difficulty,
			DartBehavior:  behavior,
			MinSize:       minSize,
			MaxSize:       maxSize,
		}
		rec.hasTraits = true
	}

	chance, err := strconv.ParseFloat(parts[fishFieldChance], 64)
	if err != nil {
		if chance, err = strconv.ParseFloat(parts[fishFieldMaxDepth], 64); err != nil {
			chance = defaultChance
		}
	}
	minLevel, err := strconv.Atoi(parts[fishFieldMinLevel])
	if err != nil {
		if minLevel, err = strconv.Atoi(parts[fishFieldDepthMult]); err != nil {
			minLevel = 0
		}
	}

	info := domain.NewFishAvailability(chance)
	info.MinFishingLevel = minLevel
	info.Seasons = parseGameSeasons(parts[fishFieldSeasons])
	info.Weathers = parseGameWeathers(parts[fishFieldWeather])
	if times := strings.Fields(parts[fishFieldTimes]); len(times) >= 2 {
		start, errS := strconv.Atoi(times[0])
		end, errE := strconv.Atoi(times[1])
		if errS == nil && errE == nil {
			info.StartTime, info.EndTime = start, end
		}
	}
	if depth, err := strconv.Atoi(parts[fishFieldMaxDepth]); err == nil {
		if mult, err := strconv.ParseFloat(parts[fishFieldDepthMult], 64); err == nil {
			info.MaxChanceDepth, info.DepthMultiplier = depth, mult
		}
	}
	rec.info = info
	return rec, true
}

// parseGameSeasons reads a space-separated season list; an empty result means all seasons
func parseGameSeasons(s string) domain.Seasons {
	var out domain.Seasons
	for _, name := range strings.Fields(s) {
		if parsed, err := domain.ParseSeasons(name); err == nil {
			out |= parsed
		}
	}
	if out&domain.SeasonAll == 0 {
		return domain.SeasonAll
	}
	return out
}

// parseGameWeathers reads "sunny", "rainy" or "both"; anything else means all weathers
func parseGameWeathers(s string) domain.Weathers {
	lower := strings.ToLower(s)
	var out domain.Weathers
	if strings.Contains(lower, "sunny") {
		out |= domain.WeatherSunny
	}
	if strings.Contains(lower, "rainy") {
		out |= domain.WeatherRainy
	}
	if strings.Contains(lower, "both") || out == 0 {
		return domain.WeatherAll
	}
	return out
}

// applyCondition folds a location spawn condition string into info. Known game
// queries map onto native fields; others become named conditions of the same
// name, which fail closed if no predicate is registered for them.
func applyCondition(ctx context.Context, condition string, info domain.AvailabilityInfo, location string) domain.AvailabilityInfo {
	var (
		seasons   domain.Seasons
		weathers  domain.Weathers
		locations []string
		when      = make(map[string]string)
	)

	for _, cond := range strings.FieldsFunc(condition, func(r rune) bool { return r == '/' || r == ',' }) {
		parts := strings.Fields(cond)
		if len(parts) == 0 {
			continue
		}
		switch strings.ToUpper(parts[0]) {
		case "SEASON", "LOCATION_SEASON":
			for _, p := range parts[1:] {
				if s, err := domain.ParseSeasons(p); err == nil {
					seasons |= s
				}
			}
		case "WEATHER", "LOCATION_WEATHER":
			for _, p := range parts[1:] {
				switch strings.ToLower(p) {
				case "rain", "storm", "snow":
					weathers |= domain.WeatherRainy
				case "sun":
					weathers |= domain.WeatherSunny
				}
			}
		case "TIME":
			if len(parts) >= 3 {
				start, errS := strconv.Atoi(parts[1])
				end, errE := strconv.Atoi(parts[2])
				if errS == nil && errE == nil {
					info.StartTime, info.EndTime = start, end
				}
			}
		case "FISHING_LEVEL":
			if len(parts) >= 2 {
				if lvl, err := strconv.Atoi(parts[1]); err == nil {
					info.MinFishingLevel = lvl
				}
			}
		case "MINE_LEVEL":
			if len(parts) >= 2 {
				first, err := strconv.Atoi(parts[1])
				if err != nil {
					continue
				}
				last := first
				if len(parts) >= 3 {
					if v, err := strconv.Atoi(parts[2]); err == nil {
						last = v
					}
				}
				for lvl := first; lvl <= last; lvl++ {
					locations = append(locations, location+"/"+strconv.Itoa(lvl))
				}
			}
		case "IS_PASSIVE_FESTIVAL_OPEN", "IS_FESTIVAL_DAY", "PLAYER_SPECIAL_ORDER_RULE_ACTIVE", "!PLAYER_SPECIAL_ORDER_RULE_ACTIVE", "RANDOM":
			logger.FromContext(ctx).Debug(LogMsgConditionIgnored, LogFieldKey, parts[0])
		default:
			if strings.HasPrefix(strings.ToUpper(parts[0]), conditionHasCaughtFish) {
				continue
			}
			when[parts[0]] = strings.Join(parts[1:], " ")
		}
	}

	if seasons != 0 {
		info.Seasons = seasons
	}
	if weathers != 0 {
		info.Weathers = weathers
	}
	if len(locations) > 0 {
		info.IncludeLocations = locations
	}
	info.When = when
	return info
}

// withSpawnRects adds the player and bobber position rules of a spawn
func withSpawnRects(info domain.AvailabilityInfo, spawn SpawnData) domain.AvailabilityInfo {
	if r := spawn.PlayerPosition; r != nil {
		info = info.WithWhen(availability.PredicatePlayerTileX, fmt.Sprintf("%d %d", r.X, r.X+r.Width))
		info = info.WithWhen(availability.PredicatePlayerTileY, fmt.Sprintf("%d %d", r.Y, r.Y+r.Height))
	}
	if r := spawn.BobberPosition; r != nil {
		info = info.WithWhen(availability.PredicateBobberInRect, fmt.Sprintf("%d %d %d %d", r.X, r.Y, r.Width, r.Height))
	}
	return info
}

// sortedKeys iterates maps deterministically so reloads produce identical registries
func sortedKeys[V any](m map[string]V) []string {
	return slices.Sorted(maps.Keys(m))
}
