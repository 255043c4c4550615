package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/go-playground/validator/v10"

	"github.com/osse101/FishingOverhaul_Go/internal/chances"
	"github.com/osse101/FishingOverhaul_Go/internal/gametime"
	"github.com/osse101/FishingOverhaul_Go/internal/validation"
)

// FishConfig tunes fish chances and catch quality
type FishConfig struct {
	Chance                    chances.Curve      `json:"chance"`
	GlobalDartFrequencyFactor float64            `json:"globalDartFrequencyFactor" validate:"gt=0"`
	StreakQualityIncrease     []int              `json:"streakQualityIncrease" validate:"dive,gte=0"`
	RecatchFrequency          gametime.Frequency `json:"recatchFrequency"`
	TargetedBaitMultiplier    float64            `json:"targetedBaitMultiplier" validate:"gte=0"`
}

// QualityIncrease is the number of streak thresholds the streak has reached
func (c FishConfig) QualityIncrease(streak int) int {
	n := 0
	for _, threshold := range c.StreakQualityIncrease {
		if streak >= threshold {
			n++
		}
	}
	return n
}

// TreasureConfig tunes treasure chests
type TreasureConfig struct {
	Chance                      chances.Curve `json:"chance"`
	AdditionalLootChance        chances.Curve `json:"additionalLootChance"`
	MaxTreasureQuantity         int           `json:"maxTreasureQuantity" validate:"gte=1"`
	AllowDuplicateLoot          bool          `json:"allowDuplicateLoot"`
	InvertChancesOnPerfectCatch bool          `json:"invertChancesOnPerfectCatch"`
}

// InteractionConfig tunes the fishing interaction
type InteractionConfig struct {
	InstantCatch                  bool    `json:"instantCatch"`
	InstantCatchTreasure          bool    `json:"instantCatchTreasure"`
	LegendaryExperienceMultiplier float64 `json:"legendaryExperienceMultiplier" validate:"gte=0"`
}

// Fishing is the gameplay configuration
type Fishing struct {
	Fish        FishConfig        `json:"fish"`
	Treasure    TreasureConfig    `json:"treasure"`
	Interaction InteractionConfig `json:"interaction"`
}

// DefaultFishing returns the gameplay defaults
func DefaultFishing() Fishing {
	return Fishing{
		Fish: FishConfig{
			Chance:                    chances.DefaultFishCurve(),
			GlobalDartFrequencyFactor: 1,
			StreakQualityIncrease:     []int{3, 5, 10},
			RecatchFrequency:          gametime.Never,
			TargetedBaitMultiplier:    chances.TargetedBaitMultiplier,
		},
		Treasure: TreasureConfig{
			Chance:                      chances.DefaultTreasureCurve(),
			AdditionalLootChance:        chances.DefaultAdditionalLootCurve(),
			MaxTreasureQuantity:         3,
			AllowDuplicateLoot:          true,
			InvertChancesOnPerfectCatch: false,
		},
		Interaction: InteractionConfig{
			LegendaryExperienceMultiplier: 5,
		},
	}
}

// LoadFishing reads the gameplay configuration at path. A missing file yields
// the defaults; values present in the file override them field by field.
func LoadFishing(path string, schemas validation.SchemaValidator) (Fishing, error) {
	cfg := DefaultFishing()

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return Fishing{}, fmt.Errorf(ErrMsgReadFishing, err)
	}
	return ParseFishing(data, schemas)
}

// ParseFishing decodes a gameplay configuration over the defaults
func ParseFishing(data []byte, schemas validation.SchemaValidator) (Fishing, error) {
	cfg := DefaultFishing()

	if schemas != nil {
		if err := schemas.ValidateBytes(data, validation.SchemaFishingConfig); err != nil {
			return Fishing{}, fmt.Errorf(ErrMsgFishingSchema, err)
		}
	}
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Fishing{}, fmt.Errorf(ErrMsgParseFishing, err)
	}
	if err := cfg.Validate(); err != nil {
		return Fishing{}, err
	}
	return cfg, nil
}

// Validate checks every curve and field constraint
func (f Fishing) Validate() error {
	for name, c := range map[string]chances.Curve{
		"fish":            f.Fish.Chance,
		"treasure":        f.Treasure.Chance,
		"additional loot": f.Treasure.AdditionalLootChance,
	} {
		if err := c.Validate(); err != nil {
			return fmt.Errorf(ErrMsgFishingCurve, name, err)
		}
	}
	if err := validator.New().Struct(f); err != nil {
		return fmt.Errorf(ErrMsgFishingSettings, err)
	}
	return nil
}
