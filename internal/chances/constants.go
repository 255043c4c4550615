package chances

// Targeted bait
const (
	// TargetedBaitMultiplier scales the weight of the fish a targeted bait is made from
	TargetedBaitMultiplier = 200.0

	// TargetedBaitFishChance replaces the fish chance while the targeted fish is available
	TargetedBaitFishChance = 1.0
)

// targetedBaitBonuses are fish that get a flat bonus instead of the multiplier
var targetedBaitBonuses = map[string]float64{
	"158":  0.10, // Stonefish
	"161":  0.09, // Ice Pip
	"162":  0.08, // Lava Eel
	"Goby": 0.20,
}

// Stage names
const (
	StageMagicBait     = "magic_bait"
	StageMapOverride   = "map_override"
	StageCuriosityLure = "curiosity_lure"
	StageTargetedBait  = "targeted_bait"
	StageEffects       = "effects"
)

// Log messages
const (
	LogMsgStageApplied    = "Override stage applied"
	LogMsgNegativeWeight  = "Negative weight clamped to zero"
	LogMsgLocationSwapped = "Fishing location overridden"
)

// Log fields
const (
	LogFieldStage    = "stage"
	LogFieldLocation = "location"
	LogFieldValue    = "value"
)

// Error messages
const (
	ErrMsgBreakpointOrder      = "%w: breakpoint %d (streak %d) is below the previous breakpoint"
	ErrMsgNegativeStreakChance = "%w: streak chance %v is negative"
)
