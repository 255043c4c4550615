package registry

// Log messages
const (
	LogMsgReloadStarted    = "Rebuilding fishing registry"
	LogMsgReloadCompleted  = "Fishing registry rebuilt"
	LogMsgSourceFailed     = "Content source failed; its content is missing from this reload"
	LogMsgRecordInvalid    = "Content record failed validation; skipped"
	LogMsgPredicateInvalid = "Entry has unknown conditions and can never be selected"
	LogMsgDeferredReload   = "Running requested registry reload"
	LogMsgDeferredFailed   = "Requested registry reload failed"
	LogMsgPublishFailed    = "Failed to publish registry reload event"
)

// Log fields
const (
	LogFieldSource   = "source"
	LogFieldKind     = "kind"
	LogFieldKey      = "key"
	LogFieldError    = "error"
	LogFieldFish     = "fish"
	LogFieldTrash    = "trash"
	LogFieldTreasure = "treasure"
	LogFieldEffects  = "effects"
	LogFieldTraits   = "traits"
	LogFieldSkipped  = "skipped"
	LogFieldDuration = "duration_ms"
	LogFieldCount    = "count"
)

// Error messages
const (
	ErrMsgSourceFailed = "%w: %s: %v"
)
