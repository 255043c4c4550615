package domain

import (
	"fmt"
	"maps"
	"slices"
	"strings"
)

// CatchActions are side effects requested by content when its entry is caught.
// The interaction machine turns them into effects for the host.
type CatchActions struct {
	CustomEvents []string `json:"customEvents,omitempty"`
	SetFlags     []string `json:"setFlags,omitempty"`
}

// FishEntry makes a fish obtainable under some availability
type FishEntry struct {
	FishKey      NamespacedKey        `json:"fishKey" validate:"required"`
	Availability FishAvailabilityInfo `json:"availability"`
	OnCatch      *CatchActions        `json:"onCatch,omitempty"`
}

// TrashEntry makes a non-fish item obtainable while fishing
type TrashEntry struct {
	ItemKey      NamespacedKey    `json:"itemKey" validate:"required"`
	Availability AvailabilityInfo `json:"availability"`
	OnCatch      *CatchActions    `json:"onCatch,omitempty"`
}

// TreasureEntry is one possible treasure chest reward. One of ItemKeys is
// chosen when it is looted, with a quantity in [MinQuantity, MaxQuantity].
type TreasureEntry struct {
	ItemKeys        []NamespacedKey  `json:"itemKeys" validate:"required,min=1"`
	Availability    AvailabilityInfo `json:"availability"`
	MinQuantity     int              `json:"minQuantity" validate:"gte=1"`
	MaxQuantity     int              `json:"maxQuantity" validate:"gtefield=MinQuantity"`
	AllowDuplicates bool             `json:"allowDuplicates"`
	OnCatch         *CatchActions    `json:"onCatch,omitempty"`
}

// Identity returns a stable identity for duplicate checks
func (t TreasureEntry) Identity() string {
	parts := make([]string, len(t.ItemKeys))
	for i, k := range t.ItemKeys {
		parts[i] = k.Normalize().String()
	}
	return strings.Join(parts, ",")
}

// WithQuantityDefaults treats omitted quantities as exactly one item
func (t TreasureEntry) WithQuantityDefaults() TreasureEntry {
	if t.MinQuantity == 0 {
		t.MinQuantity = 1
	}
	if t.MaxQuantity == 0 {
		t.MaxQuantity = t.MinQuantity
	}
	return t
}

// DartBehavior is how a fish moves during the minigame
type DartBehavior int

const (
	DartMixed DartBehavior = iota
	DartDart
	DartSmooth
	DartSink
	DartFloater
)

var dartBehaviorNames = []string{"mixed", "dart", "smooth", "sink", "floater"}

// ParseDartBehavior parses the game's behavior names, including "sinker" and "float"
func ParseDartBehavior(s string) (DartBehavior, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "mixed":
		return DartMixed, nil
	case "dart":
		return DartDart, nil
	case "smooth":
		return DartSmooth, nil
	case "sink", "sinker":
		return DartSink, nil
	case "floater", "float":
		return DartFloater, nil
	default:
		return DartMixed, fmt.Errorf("%w: %q", ErrUnknownDartBehavior, s)
	}
}

func (d DartBehavior) String() string {
	if int(d) < 0 || int(d) >= len(dartBehaviorNames) {
		return "mixed"
	}
	return dartBehaviorNames[d]
}

// MarshalText implements encoding.TextMarshaler
func (d DartBehavior) MarshalText() ([]byte, error) { return []byte(d.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler
func (d *DartBehavior) UnmarshalText(text []byte) error {
	parsed, err := ParseDartBehavior(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// FishTraits describe how a fish behaves once hooked
type FishTraits struct {
	DartFrequency int          `json:"dartFrequency" validate:"gte=0"`
	DartBehavior  DartBehavior `json:"dartBehavior"`
	MinSize       int          `json:"minSize" validate:"gte=0"`
	MaxSize       int          `json:"maxSize" validate:"gtefield=MinSize"`
	IsLegendary   bool         `json:"isLegendary"`
}

// Difficulty is the minigame difficulty; it is the dart frequency.
func (t FishTraits) Difficulty() int { return t.DartFrequency }

// EffectTarget is the chance value a content effect modifies
type EffectTarget string

const (
	EffectFishChance        EffectTarget = "fishChance"
	EffectTreasureChance    EffectTarget = "treasureChance"
	EffectMinFishChance     EffectTarget = "minFishChance"
	EffectMaxFishChance     EffectTarget = "maxFishChance"
	EffectMinTreasureChance EffectTarget = "minTreasureChance"
	EffectMaxTreasureChance EffectTarget = "maxTreasureChance"
)

// EffectOp is how an effect combines with the current value
type EffectOp string

const (
	EffectAdd      EffectOp = "add"
	EffectMultiply EffectOp = "multiply"
	EffectSet      EffectOp = "set"
)

// FishingEffectEntry adjusts a chance while its availability holds
type FishingEffectEntry struct {
	Availability AvailabilityInfo `json:"availability"`
	Target       EffectTarget     `json:"target" validate:"oneof=fishChance treasureChance minFishChance maxFishChance minTreasureChance maxTreasureChance"`
	Op           EffectOp         `json:"op" validate:"oneof=add multiply set"`
	Value        float64          `json:"value"`
}

// Apply combines the effect with v
func (e FishingEffectEntry) Apply(v float64) float64 {
	switch e.Op {
	case EffectAdd:
		return v + e.Value
	case EffectMultiply:
		return v * e.Value
	case EffectSet:
		return e.Value
	default:
		return v
	}
}

// LocationInfo describes a map for fishing. Names lists every location name
// the map's fish are registered under; the override sends a share of casts to
// another map's fish.
type LocationInfo struct {
	Names            []string `json:"names,omitempty"`
	OverrideLocation string   `json:"overrideLocation,omitempty"`
	OverrideChance   float64  `json:"overrideChance,omitempty" validate:"gte=0,lte=1"`
}

// FishingContent is everything one content source contributes on reload
type FishingContent struct {
	AddFish       []FishEntry                  `json:"addFish,omitempty"`
	SetFishTraits map[NamespacedKey]FishTraits `json:"setFishTraits,omitempty"`
	AddTrash      []TrashEntry                 `json:"addTrash,omitempty"`
	AddTreasure   []TreasureEntry              `json:"addTreasure,omitempty"`
	AddEffects    []FishingEffectEntry         `json:"addEffects,omitempty"`
	SetLocations  map[string]LocationInfo      `json:"setLocations,omitempty"`
}

// Merge appends other's contributions; other's traits and locations replace ours per key
func (c FishingContent) Merge(other FishingContent) FishingContent {
	c.AddFish = append(slices.Clip(c.AddFish), other.AddFish...)
	c.AddTrash = append(slices.Clip(c.AddTrash), other.AddTrash...)
	c.AddTreasure = append(slices.Clip(c.AddTreasure), other.AddTreasure...)
	c.AddEffects = append(slices.Clip(c.AddEffects), other.AddEffects...)
	if len(other.SetFishTraits) > 0 {
		traits := make(map[NamespacedKey]FishTraits, len(c.SetFishTraits)+len(other.SetFishTraits))
		for k, v := range c.SetFishTraits {
			traits[k] = v
		}
		for k, v := range other.SetFishTraits {
			traits[k] = v
		}
		c.SetFishTraits = traits
	}
	if len(other.SetLocations) > 0 {
		locations := make(map[string]LocationInfo, len(c.SetLocations)+len(other.SetLocations))
		maps.Copy(locations, c.SetLocations)
		maps.Copy(locations, other.SetLocations)
		c.SetLocations = locations
	}
	return c
}
