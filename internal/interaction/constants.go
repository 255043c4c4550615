package interaction

// Message keys shown to the player
const (
	MessageStreakLost      = "text.streak.lost"
	MessageStreakRestored  = "text.streak.restored"
	MessageStreakWarning   = "text.streak.warning"
	MessageMinigameFailed  = "text.minigame.failed"
	MessageLegendaryCaught = "text.legendary.caught"
)

// Skills that receive experience
const (
	SkillFishing = "fishing"
	SkillLuck    = "luck"
)

// Sounds
const (
	SoundFishHit   = "FishHit"
	SoundPullItem  = "pullItemFromWater"
	SoundCoin      = "coin"
	SoundOpenChest = "openChest"
)

// Log messages
const (
	LogMsgToolReset          = "Fishing tool changed or stopped, resetting"
	LogMsgWaitingForBite     = "Waiting for a bite"
	LogMsgSignalIgnored      = "Signal does not apply to the current state"
	LogMsgMinigameFailed     = "Error creating fishing minigame"
	LogMsgItemCreateFailed   = "Could not create caught item"
	LogMsgGenericTrashFailed = "Could not create the generic trash item"
	LogMsgPondItemFailed     = "No item for fish pond fish"
	LogMsgStreakFailed       = "Failed to update perfect-catch streak"
	LogMsgRecordFailed       = "Failed to record caught item"
	LogMsgLootCreateFailed   = "Could not create treasure item"
	LogMsgFishLost           = "Fish lost"
	LogMsgCaught             = "Item caught"
	LogMsgTreasureOpened     = "Treasure chest opened"
)

// Log fields
const (
	LogFieldActor    = "actor"
	LogFieldState    = "state"
	LogFieldSignal   = "signal"
	LogFieldItem     = "item"
	LogFieldQuality  = "quality"
	LogFieldStreak   = "streak"
	LogFieldPerfect  = "perfect"
	LogFieldTreasure = "treasure"
	LogFieldError    = "error"
	LogFieldCount    = "count"
)
