package fishing

import (
	"math"

	"github.com/osse101/FishingOverhaul_Go/internal/domain"
	"github.com/osse101/FishingOverhaul_Go/internal/utils"
)

// SizePercent rolls how large a hooked fish is, as a fraction of its size range.
// High fishing levels leave the level roll empty, so it may draw only once.
func SizePercent(waterDepth, fishingLevel int, favoriteBait bool, rng utils.Random) float64 {
	depthFactor := float64(waterDepth) / sizeDepthDivisor
	levelFactor := 1 + fishingLevel/2
	ceiling := max(int(minSizeRollCeiling), levelFactor)

	sizeFactor := depthFactor * float64(utils.RandomInt(rng, levelFactor, ceiling)) / sizeDepthDivisor
	if favoriteBait {
		sizeFactor *= favoriteBaitSizeFactor
	}
	variance := 1 + float64(utils.RandomInt(rng, -sizeVariance, sizeVariance+1))/100
	return utils.Clamp(sizeFactor*variance, 0, 1)
}

// FishSize converts a size percent to a length within the fish's range
func FishSize(traits domain.FishTraits, percent float64) int {
	span := float64(traits.MaxSize - traits.MinSize)
	return traits.MinSize + int(math.Round(span*percent))
}

// BaseQuality is the quality a fish earns from its size alone
func BaseQuality(sizePercent float64) int {
	switch {
	case sizePercent < silverSizeThreshold:
		return domain.QualityNormal
	case sizePercent < goldSizeThreshold:
		return domain.QualitySilver
	default:
		return domain.QualityGold
	}
}

// ClampQuality snaps a raised quality onto a valid level. Gold plus a bonus is iridium.
func ClampQuality(q int) int {
	switch {
	case q < domain.QualityNormal:
		return domain.QualityNormal
	case q > domain.QualityGold:
		return domain.QualityIridium
	default:
		return q
	}
}

// Experience is the fishing experience a landed fish is worth
func Experience(quality, difficulty int, treasureCaught, perfect, legendary bool, legendaryMultiplier float64) int {
	xp := float64(max(1, (quality+1)*baseExperienceQualityFactor+difficulty/difficultyExperienceDivisor))
	if treasureCaught {
		xp *= treasureExperienceFactor
	}
	if perfect {
		xp *= perfectExperienceFactor
	}
	if legendary {
		xp *= legendaryMultiplier
	}
	return int(xp)
}

// TreasureChestExperience is the experience for opening a chest
func TreasureChestExperience(waterDepth int) int {
	return treasureChestExperienceBase * (waterDepth + 1)
}

// HasTreasure rolls whether a hooked fish comes with a chest. Festivals and
// an actor's first catch never do; otherwise one draw against chance.
func HasTreasure(fc domain.FishingContext, chance float64, rng utils.Random) bool {
	if fc.IsFestival || fc.Actor.FishCaughtCount <= 1 {
		return false
	}
	return rng.Float64() < chance
}
