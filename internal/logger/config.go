package logger

import (
	"fmt"
	"log/slog"
	"strings"
)

// Config is the logger setup. Every record carries the service, version,
// environment and mod id as base attributes.
type Config struct {
	Level       string
	Format      string
	ServiceName string
	Version     string
	Environment string
	ModID       string
	AddSource   bool
}

// ForEnvironment returns the preset for an environment name. Development logs
// debug records as text with source locations, production logs JSON at info,
// tests only log warnings. Unknown names get the development preset.
func ForEnvironment(env string) Config {
	cfg := Config{
		ServiceName: DefaultServiceName,
		Version:     DefaultVersion,
		Environment: env,
	}
	switch strings.ToLower(env) {
	case EnvironmentProduction, EnvironmentStaging:
		cfg.Level, cfg.Format = LogLevelInfo, LogFormatJSON
	case EnvironmentTest:
		cfg.Level, cfg.Format = LogLevelWarn, LogFormatText
	default:
		cfg.Level, cfg.Format, cfg.AddSource = LogLevelDebug, LogFormatText, true
	}
	return cfg
}

// WithOverrides replaces the preset level and format with any non-empty value
func (c Config) WithOverrides(level, format string) Config {
	if level != "" {
		c.Level = level
	}
	if format != "" {
		c.Format = format
	}
	return c
}

// ParseLevel maps a level name such as "warn" or "INFO" onto slog
func ParseLevel(name string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(name)); err != nil {
		return slog.LevelInfo, fmt.Errorf(ErrMsgUnknownLevel, name, err)
	}
	return level, nil
}

// LogLevel is the configured level, or info when it does not parse
func (c Config) LogLevel() slog.Level {
	level, _ := ParseLevel(c.Level)
	return level
}

func (c Config) IsJSON() bool {
	return strings.EqualFold(c.Format, LogFormatJSON)
}

// BaseAttributes are attached to every record. An empty mod id is left out.
func (c Config) BaseAttributes() []slog.Attr {
	attrs := []slog.Attr{
		slog.String(AttrKeyService, c.ServiceName),
		slog.String(AttrKeyVersion, c.Version),
		slog.String(AttrKeyEnvironment, c.Environment),
	}
	if c.ModID != "" {
		attrs = append(attrs, slog.String(AttrKeyModID, c.ModID))
	}
	return attrs
}
