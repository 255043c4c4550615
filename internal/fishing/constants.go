package fishing

// Actor state keys, relative to the mod id
const (
	stateKeyPrefix = "/fishing-state/"
	stateStreak    = "streak"
	stateCaught    = "caught/"
)

// Size roll
const (
	// sizeDepthDivisor maps bobber depth to the depth factor of a size roll
	sizeDepthDivisor = 5.0
	// minSizeRollCeiling keeps the size roll range non-empty for low levels
	minSizeRollCeiling     = 6.0
	sizeVariance           = 10
	favoriteBaitSizeFactor = 1.2
)

// Size thresholds of a fish's base quality
const (
	silverSizeThreshold = 0.33
	goldSizeThreshold   = 0.66
)

// Experience
const (
	baseExperienceQualityFactor = 3
	difficultyExperienceDivisor = 3
	treasureExperienceFactor    = 2.2
	perfectExperienceFactor     = 2.4
	treasureChestExperienceBase = 10
)

// Log messages
const (
	LogMsgStreakRead        = "Failed to read perfect-catch streak"
	LogMsgStreakParse       = "Stored streak is not a number"
	LogMsgNoTrash           = "No valid trash, selecting the default item"
	LogMsgCatchChosen       = "Possible catch chosen"
	LogMsgHistoryParse      = "Stored catch date is not a number"
	LogMsgPublishFailed     = "Failed to publish fishing event"
	LogMsgContextCreated    = "Fishing context created"
	LogMsgTreasureCandidate = "Treasure candidates prepared"
)

// Log fields
const (
	LogFieldActor    = "actor"
	LogFieldKey      = "key"
	LogFieldValue    = "value"
	LogFieldError    = "error"
	LogFieldChance   = "chance"
	LogFieldKind     = "kind"
	LogFieldLocation = "location"
	LogFieldCount    = "count"
)

// Catch kinds in log output
const (
	kindFish  = "fish"
	kindTrash = "trash"
)

// Error messages
const (
	ErrMsgStoreRead  = "%w: read %s: %v"
	ErrMsgStoreWrite = "%w: write %s: %v"
)
