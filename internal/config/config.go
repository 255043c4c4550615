package config

import (
	"fmt"
	"strconv"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	Port int `env:"PORT" envDefault:"8080" validate:"gt=0,lte=65535"`

	// Empty level and format use the preset for Environment
	LogLevel    string `env:"LOG_LEVEL" validate:"omitempty,oneof=debug info warn error DEBUG INFO WARN ERROR"`
	LogFormat   string `env:"LOG_FORMAT" validate:"omitempty,oneof=text json"`
	Environment string `env:"ENVIRONMENT" envDefault:"dev" validate:"oneof=dev staging prod test"`
	ServiceName string `env:"SERVICE_NAME" envDefault:"fishing-overhaul"`
	Version     string `env:"VERSION" envDefault:"dev"`
	LogDir      string `env:"LOG_DIR"` // also write logs to a session file here when set

	StoreDriver string `env:"STORE_DRIVER" envDefault:"memory" validate:"oneof=memory sqlite postgres"`
	DBUser      string `env:"DB_USER" envDefault:"postgres"`
	DBPassword  string `env:"DB_PASSWORD" envDefault:"postgres"`
	DBHost      string `env:"DB_HOST" envDefault:"localhost"`
	DBPort      string `env:"DB_PORT" envDefault:"5432"`
	DBName      string `env:"DB_NAME" envDefault:"fishing"`
	DBMaxConns  int32  `env:"DB_MAX_CONNS" envDefault:"10" validate:"gt=0"`
	SQLitePath  string `env:"SQLITE_PATH" envDefault:"data/fishing.db"`

	CacheSize int           `env:"ACTOR_CACHE_SIZE" envDefault:"1024" validate:"gte=0"`
	CacheTTL  time.Duration `env:"ACTOR_CACHE_TTL" envDefault:"10m"`

	// Seed makes every cast reproducible; zero picks a seed from the clock
	Seed              int64  `env:"RNG_SEED" envDefault:"0"`
	ModID             string `env:"MOD_ID" envDefault:"FishingOverhaul" validate:"required"`
	ContentDir        string `env:"CONTENT_DIR" envDefault:"configs/content"`
	FishingConfigPath string `env:"FISHING_CONFIG" envDefault:"configs/fishing.json"`

	// ContentReloadInterval is how often the content directory is checked for
	// changes; zero disables the check
	ContentReloadInterval time.Duration `env:"CONTENT_RELOAD_INTERVAL" envDefault:"30s" validate:"gte=0"`

	EventMaxRetries     int           `env:"EVENT_MAX_RETRIES" envDefault:"5" validate:"gte=0"`
	EventRetryDelay     time.Duration `env:"EVENT_RETRY_DELAY" envDefault:"2s"`
	EventDeadLetterPath string        `env:"EVENT_DEADLETTER_PATH" envDefault:"logs/event_deadletter.jsonl"`

	AdminAPIKey    string   `env:"ADMIN_API_KEY"` // required on every non-public route when set
	TrustedProxies []string `env:"TRUSTED_PROXIES" envSeparator:","`
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf(ErrMsgParseEnv, err)
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf(ErrMsgInvalidConfig, err)
	}

	return &cfg, nil
}

// GetDBConnString returns the PostgreSQL connection string
func (c *Config) GetDBConnString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.DBUser,
		c.DBPassword,
		c.DBHost,
		c.DBPort,
		c.DBName,
	)
}

// Addr is the listen address of the HTTP server
func (c *Config) Addr() string {
	return ":" + strconv.Itoa(c.Port)
}
