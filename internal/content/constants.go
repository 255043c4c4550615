package content

// Source names
const (
	SourceNameDefault = "default"
	SourceNameStatic  = "static"
)

// Record kinds, used in diagnostics and skip metrics
const (
	KindFish     = "fish"
	KindTraits   = "traits"
	KindTrash    = "trash"
	KindTreasure = "treasure"
	KindEffect   = "effect"
	KindLocation = "location"
)

// Raw game table layout (Data/Fish): slash-separated fields
const (
	fishFieldName       = 0
	fishFieldDifficulty = 1
	fishFieldBehavior   = 2
	fishFieldMinSize    = 3
	fishFieldMaxSize    = 4
	fishFieldTimes      = 5
	fishFieldSeasons    = 6
	fishFieldWeather    = 7
	fishFieldMaxDepth   = 9
	fishFieldChance     = 10
	fishFieldDepthMult  = 11
	fishFieldMinLevel   = 12
	fishRecordMinFields = 13
)

// Defaults applied while converting game data
const (
	defaultFishChance      = 0.5
	defaultTrashChance     = 0.1
	defaultJellyChance     = 0.05
	frenzyChance           = 5.0
	legendaryFamilyRule    = "LEGENDARY_FAMILY"
	mineLocation           = "UndergroundMine"
	desertLocation         = "Desert"
	desertFestivalFirstDay = 15
	desertFestivalLastDay  = 17
	conditionHasCaughtFish = "!PLAYER_HAS_CAUGHT_FISH"
)

// Log messages
const (
	LogMsgSourceLoaded      = "Content source loaded"
	LogMsgFileSkipped       = "Content file failed validation; skipped"
	LogMsgRecordSkipped     = "Malformed content record skipped"
	LogMsgGameRecordSkipped = "Game data record could not be parsed; skipped"
	LogMsgConditionIgnored  = "Game condition has no equivalent; ignored"
)

// Log fields
const (
	LogFieldSource = "source"
	LogFieldFile   = "file"
	LogFieldKind   = "kind"
	LogFieldIndex  = "index"
	LogFieldKey    = "key"
	LogFieldError  = "error"
	LogFieldCount  = "count"
)

// Error messages
const (
	ErrMsgReadFileFailed  = "failed to read content file %s: %w"
	ErrMsgWalkFailed      = "failed to list content files: %w"
	ErrMsgDecodeFailed    = "%w: %s #%d: %v"
	ErrMsgGameDataFailed  = "failed to load game data %s: %w"
	ErrMsgParseFileFailed = "failed to parse content file %s: %w"
)
