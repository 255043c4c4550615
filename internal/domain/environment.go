package domain

import (
	"encoding/json"
	"fmt"
	"strings"

	"golang.org/x/text/cases"
)

// Seasons is a bitset of the four in-game seasons
type Seasons uint8

const (
	SeasonSpring Seasons = 1 << iota
	SeasonSummer
	SeasonFall
	SeasonWinter

	SeasonNone Seasons = 0
	SeasonAll          = SeasonSpring | SeasonSummer | SeasonFall | SeasonWinter
)

// Weathers is a bitset of weather categories
type Weathers uint8

const (
	WeatherSunny Weathers = 1 << iota
	WeatherRainy

	WeatherNone Weathers = 0
	WeatherAll           = WeatherSunny | WeatherRainy
)

// WaterTypes is a bitset of water classifications
type WaterTypes uint8

const (
	WaterRiver WaterTypes = 1 << iota
	WaterPondOrOcean
	WaterFreshwater

	WaterNone WaterTypes = 0
	WaterAll             = WaterRiver | WaterPondOrOcean | WaterFreshwater
)

var seasonNames = map[string]Seasons{
	"spring": SeasonSpring,
	"summer": SeasonSummer,
	"fall":   SeasonFall,
	"autumn": SeasonFall,
	"winter": SeasonWinter,
	"all":    SeasonAll,
	"none":   SeasonNone,
}

var weatherNames = map[string]Weathers{
	"sunny": WeatherSunny,
	"sun":   WeatherSunny,
	"rainy": WeatherRainy,
	"rain":  WeatherRainy,
	"storm": WeatherRainy,
	"all":   WeatherAll,
	"both":  WeatherAll,
	"none":  WeatherNone,
}

var waterNames = map[string]WaterTypes{
	"river":       WaterRiver,
	"pondorocean": WaterPondOrOcean,
	"pond":        WaterPondOrOcean,
	"ocean":       WaterPondOrOcean,
	"lake":        WaterPondOrOcean,
	"freshwater":  WaterFreshwater,
	"all":         WaterAll,
	"none":        WaterNone,
}

func normalizeName(s string) string {
	// Casers are stateful, so one is created per call.
	return strings.ReplaceAll(cases.Fold().String(strings.TrimSpace(s)), " ", "")
}

// ParseSeasons parses season names (case-insensitive) into a bitset
func ParseSeasons(names ...string) (Seasons, error) {
	var out Seasons
	for _, name := range names {
		s, ok := seasonNames[normalizeName(name)]
		if !ok {
			return SeasonNone, fmt.Errorf("%w: %q", ErrUnknownSeason, name)
		}
		out |= s
	}
	return out, nil
}

// ParseWeathers parses weather names (case-insensitive) into a bitset
func ParseWeathers(names ...string) (Weathers, error) {
	var out Weathers
	for _, name := range names {
		w, ok := weatherNames[normalizeName(name)]
		if !ok {
			return WeatherNone, fmt.Errorf("%w: %q", ErrUnknownWeather, name)
		}
		out |= w
	}
	return out, nil
}

// ParseWaterTypes parses water type names (case-insensitive) into a bitset
func ParseWaterTypes(names ...string) (WaterTypes, error) {
	var out WaterTypes
	for _, name := range names {
		w, ok := waterNames[normalizeName(name)]
		if !ok {
			return WaterNone, fmt.Errorf("%w: %q", ErrUnknownWaterType, name)
		}
		out |= w
	}
	return out, nil
}

// Intersects reports whether the two sets share a season
func (s Seasons) Intersects(other Seasons) bool { return s&other != 0 }

// Intersects reports whether the two sets share a weather
func (w Weathers) Intersects(other Weathers) bool { return w&other != 0 }

// Intersects reports whether the two sets share a water type
func (w WaterTypes) Intersects(other WaterTypes) bool { return w&other != 0 }

func (s Seasons) String() string {
	return joinFlags(uint8(s), uint8(SeasonAll), []string{"spring", "summer", "fall", "winter"})
}

func (w Weathers) String() string {
	return joinFlags(uint8(w), uint8(WeatherAll), []string{"sunny", "rainy"})
}

func (w WaterTypes) String() string {
	return joinFlags(uint8(w), uint8(WaterAll), []string{"river", "pondOrOcean", "freshwater"})
}

func joinFlags(v, all uint8, names []string) string {
	if v == all {
		return "all"
	}
	parts := make([]string, 0, len(names))
	for i, name := range names {
		if v&(1<<i) != 0 {
			parts = append(parts, name)
		}
	}
	if len(parts) == 0 {
		return "none"
	}
	return strings.Join(parts, "|")
}

// UnmarshalJSON accepts either a single name or a list of names
func (s *Seasons) UnmarshalJSON(data []byte) error {
	names, err := unmarshalNames(data)
	if err != nil {
		return err
	}
	parsed, err := ParseSeasons(names...)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// UnmarshalJSON accepts either a single name or a list of names
func (w *Weathers) UnmarshalJSON(data []byte) error {
	names, err := unmarshalNames(data)
	if err != nil {
		return err
	}
	parsed, err := ParseWeathers(names...)
	if err != nil {
		return err
	}
	*w = parsed
	return nil
}

// UnmarshalJSON accepts either a single name or a list of names
func (w *WaterTypes) UnmarshalJSON(data []byte) error {
	names, err := unmarshalNames(data)
	if err != nil {
		return err
	}
	parsed, err := ParseWaterTypes(names...)
	if err != nil {
		return err
	}
	*w = parsed
	return nil
}

// MarshalJSON writes the set as a list of names
func (s Seasons) MarshalJSON() ([]byte, error) {
	return marshalNames(s.String())
}

// MarshalJSON writes the set as a list of names
func (w Weathers) MarshalJSON() ([]byte, error) {
	return marshalNames(w.String())
}

// MarshalJSON writes the set as a list of names
func (w WaterTypes) MarshalJSON() ([]byte, error) {
	return marshalNames(w.String())
}

func marshalNames(joined string) ([]byte, error) {
	return json.Marshal(strings.Split(joined, "|"))
}

func unmarshalNames(data []byte) ([]string, error) {
	var single string
	if err := json.Unmarshal(data, &single); err == nil {
		return []string{single}, nil
	}
	var many []string
	if err := json.Unmarshal(data, &many); err != nil {
		return nil, err
	}
	return many, nil
}
