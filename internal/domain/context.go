package domain

import (
	"maps"
	"slices"

	"github.com/osse101/FishingOverhaul_Go/internal/gametime"
)

// Point is a tile position
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// IsZero reports whether p is the origin
func (p Point) IsZero() bool { return p.X == 0 && p.Y == 0 }

// Rect is a tile rectangle; Min is inclusive, Min+Size is exclusive.
type Rect struct {
	X, Y, Width, Height int
}

// Contains reports whether p lies within r
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X < r.X+r.Width && p.Y >= r.Y && p.Y < r.Y+r.Height
}

// ActorInfo is the part of the fishing actor the calculations read
type ActorInfo struct {
	ID              string  `json:"id"`
	FishingLevel    int     `json:"fishingLevel"`
	LuckLevel       int     `json:"luckLevel"`
	DailyLuck       float64 `json:"dailyLuck"`
	Tile            Point   `json:"tile"`
	FishCaughtCount int     `json:"fishCaughtCount"`
}

// Frenzy is an active fish frenzy in the current location
type Frenzy struct {
	Fish        NamespacedKey `json:"fish"`
	SplashPoint Point         `json:"splashPoint"`
}

// FishingContext is the per-attempt snapshot threaded through every calculation.
// Pipeline stages receive a copy and return a modified copy; nothing mutates a context in place.
type FishingContext struct {
	AttemptID   string
	Actor       ActorInfo
	Location    string
	Locations   []string
	Time        int
	Times       []int
	Date        gametime.Date
	Seasons     Seasons
	Weathers    Weathers
	WaterTypes  WaterTypes
	Bait        NamespacedKey
	Bobber      NamespacedKey
	Tackle      []NamespacedKey
	BaitTarget  NamespacedKey
	WaterDepth  int
	BobberTile  Point
	ActiveRules map[string]bool
	Frenzy      *Frenzy
	FromPond    bool
	IsFestival  bool
}

// Clone deep-copies the slice, map and pointer fields
func (fc FishingContext) Clone() FishingContext {
	fc.Locations = slices.Clone(fc.Locations)
	fc.Times = slices.Clone(fc.Times)
	fc.Tackle = slices.Clone(fc.Tackle)
	fc.ActiveRules = maps.Clone(fc.ActiveRules)
	if fc.Frenzy != nil {
		f := *fc.Frenzy
		fc.Frenzy = &f
	}
	return fc
}

// WithSeasons returns a copy with the effective seasons replaced
func (fc FishingContext) WithSeasons(s Seasons) FishingContext {
	out := fc.Clone()
	out.Seasons = s
	return out
}

// WithWeathers returns a copy with the effective weathers replaced
func (fc FishingContext) WithWeathers(w Weathers) FishingContext {
	out := fc.Clone()
	out.Weathers = w
	return out
}

// WithTimes returns a copy with the time-window override list replaced
func (fc FishingContext) WithTimes(times []int) FishingContext {
	out := fc.Clone()
	out.Times = slices.Clone(times)
	return out
}

// WithLocations returns a copy with the resolved location list replaced
func (fc FishingContext) WithLocations(locations []string) FishingContext {
	out := fc.Clone()
	out.Locations = slices.Clone(locations)
	return out
}

// HasTackle reports whether the rod carries the given tackle
func (fc FishingContext) HasTackle(key NamespacedKey) bool {
	for _, t := range fc.Tackle {
		if t.Equal(key) {
			return true
		}
	}
	return false
}

// RuleActive reports whether a named special-order rule is active
func (fc FishingContext) RuleActive(rule string) bool {
	return fc.ActiveRules[rule]
}
