package domain

// Item namespaces and well-known object ids
const (
	// NamespaceGame is the namespace of every item owned by the base game
	NamespaceGame = "StardewValley"

	// ObjectPrefix is the key prefix used by base game objects ("Object/138")
	ObjectPrefix = "Object/"

	// ObjectIDGenericTrash is the item created when nothing else could be (Trash)
	ObjectIDGenericTrash = "168"

	// ObjectIDMagicBait makes every fish catchable regardless of season, weather or time
	ObjectIDMagicBait = "908"

	// ObjectIDCuriosityLure flattens the fish distribution toward rare fish
	ObjectIDCuriosityLure = "856"

	// QualifiedObjectGenericTrash is the qualified form of the generic trash item
	QualifiedObjectGenericTrash = "(O)168"
)

// Time of day bounds on the in-game clock (HHMM)
const (
	TimeDayStart = 600
	TimeDayEnd   = 2600
)

// Item qualities. Quality 3 is unused by the game.
const (
	QualityNormal  = 0
	QualitySilver  = 1
	QualityGold    = 2
	QualityIridium = 4
)

// ============================================================================
// Event Type Constants
// ============================================================================

// Event types follow the pattern: <entity>.<action> (e.g., "fishing.fish_caught")
const (
	// EventTypeFishCaught is published when a fish is landed
	EventTypeFishCaught = "fishing.fish_caught"

	// EventTypeTrashCaught is published when trash is landed
	EventTypeTrashCaught = "fishing.trash_caught"

	// EventTypeFishLost is published when the actor loses the fish during the minigame
	EventTypeFishLost = "fishing.fish_lost"

	// EventTypeTreasureOpened is published when a treasure chest is opened
	EventTypeTreasureOpened = "fishing.treasure_opened"

	// EventTypeTrashFallback is published when catch resolution produced nothing and the default trash was used
	EventTypeTrashFallback = "fishing.trash_fallback"

	// EventTypePresentationFailed is published when the minigame could not be started
	EventTypePresentationFailed = "fishing.presentation_failed"

	// EventTypeRegistryReloaded is published after the entry registry is rebuilt
	EventTypeRegistryReloaded = "registry.reloaded"
)
