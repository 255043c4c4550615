package config

const (
	// Configuration file paths
	ConfigPathFishing = "configs/fishing.json"
	ConfigPathContent = "configs/content"
)

// Store drivers
const (
	StoreDriverMemory   = "memory"
	StoreDriverSQLite   = "sqlite"
	StoreDriverPostgres = "postgres"
)

// Error messages
const (
	ErrMsgParseEnv        = "failed to parse environment: %w"
	ErrMsgInvalidConfig   = "invalid configuration: %w"
	ErrMsgReadFishing     = "failed to read fishing config: %w"
	ErrMsgParseFishing    = "failed to parse fishing config: %w"
	ErrMsgFishingSchema   = "fishing config does not match schema: %w"
	ErrMsgFishingCurve    = "fishing config %s curve: %w"
	ErrMsgFishingSettings = "invalid fishing config: %w"
)

// Example values shipped in .env.example; seeing them at runtime is worth a warning
const (
	ExampleDBPassword  = "change_this_secure_password"
	ExampleAdminAPIKey = "generate_with_openssl_rand_hex_32"
)
