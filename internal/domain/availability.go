package domain

import (
	"encoding/json"
	"maps"
	"slices"
)

// AvailabilityInfo gates whether an entry can be selected and gives its base weight.
// It is an immutable value; copy helpers return new values.
type AvailabilityInfo struct {
	BaseChance       float64           `json:"chance" validate:"gte=0"`
	StartTime        int               `json:"startTime" validate:"gte=0,lte=2600"`
	EndTime          int               `json:"endTime" validate:"gte=0,lte=2600"`
	Seasons          Seasons           `json:"seasons"`
	Weathers         Weathers          `json:"weathers"`
	MinFishingLevel  int               `json:"minFishingLevel" validate:"gte=0"`
	IncludeLocations []string          `json:"includeLocations,omitempty" validate:"dive,required"`
	WaterTypes       WaterTypes        `json:"waterTypes"`
	PriorityTier     int               `json:"priorityTier"`
	When             map[string]string `json:"when,omitempty"`
}

// NewAvailability returns an info that is available everywhere, all day, in every season and weather
func NewAvailability(chance float64) AvailabilityInfo {
	return AvailabilityInfo{
		BaseChance: chance,
		StartTime:  TimeDayStart,
		EndTime:    TimeDayEnd,
		Seasons:    SeasonAll,
		Weathers:   WeatherAll,
		WaterTypes: WaterAll,
	}
}

// UnmarshalJSON fills in the permissive defaults for omitted fields
func (a *AvailabilityInfo) UnmarshalJSON(data []byte) error {
	type plain AvailabilityInfo
	out := plain(NewAvailability(0))
	if err := json.Unmarshal(data, &out); err != nil {
		return err
	}
	*a = AvailabilityInfo(out)
	return nil
}

// Clone deep-copies the slice and map fields
func (a AvailabilityInfo) Clone() AvailabilityInfo {
	a.IncludeLocations = slices.Clone(a.IncludeLocations)
	a.When = maps.Clone(a.When)
	return a
}

// WithWhen returns a copy with an additional named predicate condition
func (a AvailabilityInfo) WithWhen(key, args string) AvailabilityInfo {
	a = a.Clone()
	if a.When == nil {
		a.When = make(map[string]string, 1)
	}
	a.When[key] = args
	return a
}

// FishAvailabilityInfo adds water-depth scaling to the base chance
type FishAvailabilityInfo struct {
	AvailabilityInfo
	DepthMultiplier float64 `json:"depthMultiplier" validate:"gte=0"`
	MaxChanceDepth  int     `json:"maxChanceDepth" validate:"gte=0"`
}

// NewFishAvailability wraps NewAvailability with no depth scaling
func NewFishAvailability(chance float64) FishAvailabilityInfo {
	return FishAvailabilityInfo{AvailabilityInfo: NewAvailability(chance)}
}

// UnmarshalJSON decodes the embedded info with its defaults, then the fish-only fields
func (f *FishAvailabilityInfo) UnmarshalJSON(data []byte) error {
	var base AvailabilityInfo
	if err := base.UnmarshalJSON(data); err != nil {
		return err
	}
	var extra struct {
		DepthMultiplier float64 `json:"depthMultiplier"`
		MaxChanceDepth  int     `json:"maxChanceDepth"`
	}
	if err := json.Unmarshal(data, &extra); err != nil {
		return err
	}
	*f = FishAvailabilityInfo{
		AvailabilityInfo: base,
		DepthMultiplier:  extra.DepthMultiplier,
		MaxChanceDepth:   extra.MaxChanceDepth,
	}
	return nil
}

// Chance returns the base chance scaled down for shallow water. A zero multiplier leaves it unchanged.
func (f FishAvailabilityInfo) Chance(waterDepth int) float64 {
	chance := f.BaseChance
	if f.DepthMultiplier > 0 {
		shortfall := max(0, f.MaxChanceDepth-waterDepth)
		chance -= float64(shortfall) * f.DepthMultiplier * chance
	}
	return max(0, chance)
}
