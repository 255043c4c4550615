package treasure

// Defaults used when the configuration leaves a value unset
const (
	DefaultMaxItems = 5
)

// Log messages
const (
	LogMsgLootRolled    = "Treasure loot rolled"
	LogMsgNoCandidates  = "No treasure available"
	LogMsgZeroWeightAll = "Remaining treasure has no weight"
)

// Log fields
const (
	LogFieldRewards    = "rewards"
	LogFieldCandidates = "candidates"
	LogFieldPerfect    = "perfect"
)
