package actordata

// Error messages
const (
	ErrMsgGetFailed    = "failed to read actor value"
	ErrMsgSetFailed    = "failed to write actor value"
	ErrMsgListFailed   = "failed to list actor values"
	ErrMsgClearFailed  = "failed to clear actor values"
	ErrMsgOpenSQLite   = "failed to open sqlite database"
	ErrMsgPathRequired = "sqlite path is required"
	ErrMsgUnknownStore = "unknown store driver"
)

// Log messages
const (
	LogMsgStoreOpened = "Actor store opened"
)

// Log fields
const (
	LogFieldDriver = "driver"
	LogFieldCache  = "cache_size"
)

const (
	memoryPath = ":memory:"
	// sqliteDSNPragmas keeps writers from failing while another connection holds the lock
	sqliteDSNPragmas = "?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)"
	keySeparator     = "|"
)
