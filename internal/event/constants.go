package event

import "time"

// Event schema versioning
const (
	// EventSchemaVersion is the current event schema version
	EventSchemaVersion = "1.0"

	// DeadLetterSchemaVersion is the current version of the dead-letter log format
	DeadLetterSchemaVersion = "1.0"
)

// Metadata keys
const (
	MetadataKeyAttemptID = "attempt_id"
)

// Fallback reasons
const (
	ReasonNoCatch           = "no_catch"
	ReasonItemCreateFailed  = "item_create_failed"
	ReasonPresenterDeclined = "presenter_declined"
)

// Retry configuration constants
const (
	// RetryInitialDelay is the delay before the first retry
	RetryInitialDelay = 2 * time.Second

	// RetryMaxAttempts is the default maximum number of retry attempts
	RetryMaxAttempts = 5

	// DeadLetterFilePermissions is the file permission mode for dead-letter files
	DeadLetterFilePermissions = 0644
)

// Log messages
const (
	LogMsgEventPublishFailed   = "Event publish failed, queuing for retry"
	LogMsgEventRetryFailed     = "Event retry failed, scheduling next attempt"
	LogMsgEventRetrySucceeded  = "Event retry succeeded"
	LogMsgEventDeadLettered    = "Event retry exhausted, written to dead-letter"
	LogMsgDeadLetterFailed     = "Failed to write to dead letter"
	LogMsgEventDroppedShutdown = "Event dropped during shutdown"
)

// Log fields
const (
	LogFieldEventType = "event_type"
	LogFieldAttempt   = "attempt"
	LogFieldError     = "error"
	LogFieldPath      = "path"
)

// Error messages
const (
	ErrMsgHandlerErrorsFormat = "encountered %d errors while handling event %s: %v"
)

// CalculateRetryDelay returns the exponential backoff delay for a retry attempt:
// base, 2*base, 4*base, ...
func CalculateRetryDelay(base time.Duration, attempt int) time.Duration {
	if attempt < 1 {
		attempt = 1
	}
	return base * time.Duration(1<<(attempt-1))
}
