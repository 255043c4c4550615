package bootstrap

import "time"

// =============================================================================
// File System Permissions
// =============================================================================

const (
	// DirPermission is the standard permission for creating directories
	DirPermission = 0755

	// LogFilePermission is the permission for log files
	LogFilePermission = 0644
)

// =============================================================================
// Logger Configuration
// =============================================================================

const (
	// LogFileTimestampFormat is the timestamp format for log filenames (YYYY-MM-DD_HH-MM-SS)
	LogFileTimestampFormat = "2006-01-02_15-04-05"

	// LogFileNamePattern is the format string for log filenames
	LogFileNamePattern = "session_%s.log"

	// LogFileExtension is the file extension for log files
	LogFileExtension = ".log"

	// LogFileRetentionCount is the number of older log files kept when a new session starts
	LogFileRetentionCount = 9
)

// Log messages for logger initialization
const (
	LogMsgLoggingInitialized  = "Logging initialized"
	LogMsgStarting            = "Starting FishingOverhaul"
	LogMsgConfigurationLoaded = "Configuration loaded"
	LogMsgFailedDeleteOldLog  = "Failed to delete old log file"
	ErrMsgFailedCreateLogsDir = "failed to create logs directory"
	ErrMsgFailedOpenLogFile   = "failed to open log file"
)

// =============================================================================
// Event System Configuration
// =============================================================================

const (
	// EventDefaultRetryDelay is used when the configured delay is zero
	EventDefaultRetryDelay = 2 * time.Second

	// EventDefaultDeadLetterPath is used when no dead-letter path is configured
	EventDefaultDeadLetterPath = "logs/event_deadletter.jsonl"
)

// Log messages for event system initialization
const (
	LogMsgEventSystemInitialized         = "Event system initialized"
	LogMsgMetricsCollectorRegistered     = "Metrics collector registered"
	ErrMsgFailedCreateDeadLetterDir      = "failed to create dead-letter directory"
	ErrMsgFailedCreateResilientPublisher = "failed to create resilient publisher"
)

// =============================================================================
// Application Wiring
// =============================================================================

const (
	// ReloadWorkers is the pool size for content reloads; reloads never overlap
	ReloadWorkers = 1

	// ReloadQueueSize bounds pending reload checks; extra ticks are skipped
	ReloadQueueSize = 1
)

const (
	LogMsgContentLoaded        = "Fishing content loaded"
	LogMsgContentDirMissing    = "Content directory not found, using bundled content only"
	LogMsgContentPartialLoad   = "Some content sources failed to load"
	LogMsgFishingConfigLoaded  = "Fishing config loaded"
	LogMsgRandomSeed           = "Random source seeded"
	LogMsgContentChanged       = "Content directory changed, reloading"
	LogMsgContentScanFailed    = "Failed to scan content directory"
	LogMsgContentWatchEnabled  = "Watching content directory"
	ErrMsgFailedLoadFishing    = "failed to load fishing config"
	ErrMsgFailedDefaultContent = "failed to load bundled content"
	ErrMsgFailedOpenStore      = "failed to open actor store"
	ErrMsgFailedEventSystem    = "failed to initialize event system"
)

// Log fields
const (
	LogFieldError          = "error"
	LogFieldLevel          = "level"
	LogFieldEnvironment    = "environment"
	LogFieldVersion        = "version"
	LogFieldFile           = "file"
	LogFieldStoreDriver    = "store_driver"
	LogFieldPort           = "port"
	LogFieldDir            = "dir"
	LogFieldSources        = "sources"
	LogFieldFish           = "fish"
	LogFieldTrash          = "trash"
	LogFieldTreasure       = "treasure"
	LogFieldEffects        = "effects"
	LogFieldSkipped        = "skipped"
	LogFieldPath           = "path"
	LogFieldSeed           = "seed"
	LogFieldMaxRetries     = "max_retries"
	LogFieldRetryDelay     = "retry_delay"
	LogFieldDeadLetterPath = "deadletter_path"
	LogFieldFiles          = "files"
	LogFieldInterval       = "interval"
)

// =============================================================================
// Shutdown Messages
// =============================================================================

const (
	LogMsgShuttingDownServer         = "Shutting down server..."
	LogMsgStoppingBackgroundJobs     = "Stopping background jobs..."
	LogMsgWorkerPoolStopFailed       = "Worker pool stop failed"
	LogMsgShuttingDownEventPublisher = "Shutting down event publisher..."
	LogMsgClosingStore               = "Closing actor store..."
	LogMsgServerStopped              = "Server stopped"
	LogMsgServerForcedShutdown       = "Server forced to shutdown"
	LogMsgResilientPublisherFailed   = "Resilient publisher shutdown failed"
	LogMsgStoreCloseFailed           = "Actor store close failed"
)
