// Package config loads the remap CLI settings from defaults, an optional
// YAML file, REMAP_* environment variables and command-line flags.
package config

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/katalvlaran/remap/pipeline"
)

// Output formats accepted by the compose command.
const (
	FormatTable = "table"
	FormatYAML  = "yaml"
	FormatText  = "text"
)

// Defaults.
const (
	DefaultStrategy = "composed"
	DefaultFormat   = FormatTable
	DefaultLogLevel = "warn"
	DefaultTrace    = false
)

// Config is the top-level configuration of the remap CLI.
// Field tags use mapstructure for viper unmarshalling.
type Config struct {
	Strategy string `mapstructure:"strategy"`
	Format   string `mapstructure:"format"`
	LogLevel string `mapstructure:"log_level"`
	Trace    bool   `mapstructure:"trace"`
}

var (
	// ErrInvalidStrategy indicates a strategy other than composed or propagate.
	ErrInvalidStrategy = errors.New("strategy must be composed or propagate")
	// ErrInvalidFormat indicates an unknown output format.
	ErrInvalidFormat = errors.New("format must be table, yaml or text")
	// ErrInvalidLogLevel indicates a log level slog does not know.
	ErrInvalidLogLevel = errors.New("log_level must be debug, info, warn or error")
)

// Validate checks every field.
func (c *Config) Validate() error {
	if _, err := pipeline.ParseStrategy(c.Strategy); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidStrategy, c.Strategy)
	}

	switch c.Format {
	case FormatTable, FormatYAML, FormatText:
	default:
		return fmt.Errorf("%w: %q", ErrInvalidFormat, c.Format)
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidLogLevel, c.LogLevel)
	}

	return nil
}

// PipelineStrategy returns the configured range strategy. Call Validate first;
// an invalid name falls back to pipeline.StrategyComposed.
func (c *Config) PipelineStrategy() pipeline.Strategy {
	s, err := pipeline.ParseStrategy(c.Strategy)
	if err != nil {
		return pipeline.StrategyComposed
	}

	return s
}

// SlogLevel returns the configured log level, or slog.LevelWarn if invalid.
func (c *Config) SlogLevel() slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelWarn
	}

	return level
}
