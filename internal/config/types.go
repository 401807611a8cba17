package config

import (
	"errors"
	"fmt"
	"strings"
)

// ConfigSource represents where a configuration value came from.
type ConfigSource string

const (
	SourceDefault  ConfigSource = "default"
	SourceUserFile ConfigSource = "user file"
	SourceProjFile ConfigSource = "project file"
	SourceEnv      ConfigSource = "environment"
	SourceFlag     ConfigSource = "flag"
)

// ConfigWithSources holds configuration along with source information for each field.
type ConfigWithSources struct {
	Config  *Config
	Sources map[string]ConfigSource
}

// Default values.
const (
	DefaultScoresFile  = "scores.json"
	DefaultTop         = 5
	DefaultExitCommand = "quit"
	DefaultLogLevel    = "warn"
	DefaultLogFormat   = "text"
)

// Config holds the full configuration for a game session.
type Config struct {
	// Score history file
	ScoresFile string `toml:"scores_file"`

	// Disable writing the score history for this session
	NoSave bool `toml:"no_save"`

	// Leaderboard size
	Top int `toml:"top"`

	// Player name; empty means ask at startup
	Player string `toml:"player"`

	// Input that abandons the current round
	ExitCommand string `toml:"exit_command"`

	// Logging configuration
	LogLevel      string `toml:"log_level"`
	LogFormat     string `toml:"log_format"`
	LogTimestamps bool   `toml:"log_timestamps"`
	LogCaller     bool   `toml:"log_caller"`

	// Working directory (computed)
	ProjectRoot string `toml:"-"`

	// Config files that were read, in load order (computed)
	Files []string `toml:"-"`
}

// configFields returns the configurable field names in display order.
func configFields() []string {
	return []string{
		"scores_file",
		"no_save",
		"top",
		"player",
		"exit_command",
		"log_level",
		"log_format",
		"log_timestamps",
		"log_caller",
	}
}

// Fields returns the configurable field names in display order.
func Fields() []string {
	return configFields()
}

// Value returns the display value of a field by its TOML key.
func (c *Config) Value(field string) string {
	switch field {
	case "scores_file":
		return c.ScoresFile
	case "no_save":
		return fmt.Sprint(c.NoSave)
	case "top":
		return fmt.Sprint(c.Top)
	case "player":
		return c.Player
	case "exit_command":
		return c.ExitCommand
	case "log_level":
		return c.LogLevel
	case "log_format":
		return c.LogFormat
	case "log_timestamps":
		return fmt.Sprint(c.LogTimestamps)
	case "log_caller":
		return fmt.Sprint(c.LogCaller)
	default:
		return ""
	}
}

// Validate checks values that would break a session.
func (c *Config) Validate() error {
	var errs []error
	if c.Top <= 0 {
		errs = append(errs, fmt.Errorf("top must be positive, got %d", c.Top))
	}
	if strings.TrimSpace(c.ExitCommand) == "" {
		errs = append(errs, errors.New("exit_command must not be empty"))
	}
	if strings.TrimSpace(c.ScoresFile) == "" {
		errs = append(errs, errors.New("scores_file must not be empty"))
	}
	return errors.Join(errs...)
}

// setDefaults applies default values to the config.
func setDefaults(cfg *Config) {
	cfg.ScoresFile = DefaultScoresFile
	cfg.NoSave = false
	cfg.Top = DefaultTop
	cfg.Player = ""
	cfg.ExitCommand = DefaultExitCommand
	cfg.LogLevel = DefaultLogLevel
	cfg.LogFormat = DefaultLogFormat
	cfg.LogTimestamps = false
	cfg.LogCaller = false
}
