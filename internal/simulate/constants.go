package simulate

// Identifiers used by the simulated host
const (
	DefaultActorID = "simulated-actor"
	SimulatedRodID = "simulated-rod"
)

// Option defaults
const (
	DefaultCasts       = 100
	DefaultCastsPerDay = 20
	DefaultCatchRate   = 0.85
	DefaultPerfectRate = 0.3
	// MaxCasts bounds a single run
	MaxCasts = 1_000_000
	// maxSignalsPerCast stops a cast that never returns to idle
	maxSignalsPerCast = 16
)

// Error messages
const (
	ErrMsgInvalidOptions = "%w: %w"
	ErrMsgCastStuck      = "%w: cast %d stopped in state %s"
	ErrMsgSaveReport     = "failed to save report to %s: %w"
)

// Log messages
const (
	LogMsgSimulationStarted  = "Simulation started"
	LogMsgSimulationFinished = "Simulation finished"
	LogMsgSimulationStopped  = "Simulation stopped"
	LogMsgDayAdvanced        = "Simulated day advanced"
)

// Log fields
const (
	LogFieldActor    = "actor"
	LogFieldCasts    = "casts"
	LogFieldFish     = "fish"
	LogFieldTrash    = "trash"
	LogFieldLost     = "lost"
	LogFieldTreasure = "treasure"
	LogFieldDate     = "date"
	LogFieldDuration = "duration_ms"
	LogFieldError    = "error"
)
