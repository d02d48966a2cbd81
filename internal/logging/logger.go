// Package logging configures zerolog loggers and carries them through context.
package logging

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

const (
	envLogLevel  = "DUMBER_MOBILE_LOG_LEVEL"
	envLogFormat = "DUMBER_MOBILE_LOG_FORMAT"
)

// Config holds logging configuration
type Config struct {
	Level      zerolog.Level
	Format     string // "json" or "console"
	TimeFormat string

	// Output defaults to os.Stderr.
	Output io.Writer
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Level:      zerolog.InfoLevel,
		Format:     "console",
		TimeFormat: time.RFC3339,
	}
}

// New creates a new zerolog logger with the given configuration
func New(cfg Config) zerolog.Logger {
	return zerolog.New(consoleWriter(cfg)).
		Level(cfg.Level).
		With().
		Timestamp().
		Logger()
}

// ParseLevel maps a level name to a zerolog level.
// Unknown or empty names return fallback.
func ParseLevel(name string, fallback zerolog.Level) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return fallback
	}
}

// NewFromEnv creates a logger based on environment variables
// DUMBER_MOBILE_LOG_LEVEL: trace, debug, info, warn, error (default: info)
// DUMBER_MOBILE_LOG_FORMAT: json, console (default: console)
func NewFromEnv() zerolog.Logger {
	return NewFromConfigValues(os.Getenv(envLogLevel), os.Getenv(envLogFormat))
}

// NewFromConfigValues builds a logger from the [logging] config section values.
// Environment variables win over the passed values so a single run can be
// debugged without editing the config file.
func NewFromConfigValues(level, format string) zerolog.Logger {
	return New(configFromValues(level, format))
}

// FileConfig describes the optional rotating log file.
type FileConfig struct {
	Dir        string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
	Compress   bool
}

// NewWithFile is like NewFromConfigValues but also tees output into a rotating
// log file. The returned closer closes the file.
func NewWithFile(level, format string, file FileConfig) (zerolog.Logger, io.Closer, error) {
	cfg := configFromValues(level, format)

	rotating, err := OpenRotatingFile(file)
	if err != nil {
		return New(cfg), nil, err
	}

	multi := zerolog.MultiLevelWriter(consoleWriter(cfg), rotating)

	return zerolog.New(multi).Level(cfg.Level).With().Timestamp().Logger(), rotating, nil
}

func consoleWriter(cfg Config) io.Writer {
	out := cfg.Output
	if out == nil {
		out = os.Stderr
	}
	if cfg.Format == "console" {
		return zerolog.ConsoleWriter{Out: out, TimeFormat: cfg.TimeFormat}
	}
	return out
}

func configFromValues(level, format string) Config {
	cfg := DefaultConfig()
	cfg.Level = ParseLevel(level, cfg.Level)
	if format == "json" || format == "console" {
		cfg.Format = format
	}

	if env := os.Getenv(envLogLevel); env != "" {
		cfg.Level = ParseLevel(env, cfg.Level)
	}
	if env := os.Getenv(envLogFormat); env == "json" || env == "console" {
		cfg.Format = env
	}
	return cfg
}
