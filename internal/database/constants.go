package database

import "time"

// Connection pool defaults
const (
	// DefaultMinConnections is the minimum number of connections to keep open
	DefaultMinConnections = 1
	DefaultMaxConnIdle    = time.Minute
	DefaultMaxConnLife    = 30 * time.Minute
)

// Error messages
const (
	ErrMsgFailedToParseConnString = "failed to parse connection string"
	ErrMsgFailedToCreatePool      = "failed to create connection pool"
	ErrMsgFailedToPingDatabase    = "failed to ping database"
	ErrMsgFailedToLoadMigrations  = "failed to load migrations"
	ErrMsgFailedToMigrate         = "failed to apply migrations"
)

// Log messages
const (
	LogMsgSuccessfullyConnectedToDatabase = "Successfully connected to the database"
	LogMsgMigrationApplied                = "Applied migration"
)

// Log fields
const (
	LogFieldMigration = "migration"
	LogFieldDuration  = "duration"
)
