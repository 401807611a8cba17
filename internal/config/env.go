package config

import (
	"os"
	"strconv"
)

// Environment variable names.
const (
	EnvScores        = "GUESS_SCORES"
	EnvNoSave        = "GUESS_NO_SAVE"
	EnvTop           = "GUESS_TOP"
	EnvPlayer        = "GUESS_PLAYER"
	EnvExitCommand   = "GUESS_EXIT_COMMAND"
	EnvLogLevel      = "GUESS_LOG_LEVEL"
	EnvLogFormat     = "GUESS_LOG_FORMAT"
	EnvLogTimestamps = "GUESS_LOG_TIMESTAMPS"
	EnvLogCaller     = "GUESS_LOG_CALLER"
)

// loadFromEnv overrides config from environment variables.
// If sources is non-nil, it tracks the source of each value.
func loadFromEnv(cfg *Config, sources map[string]ConfigSource) {
	setString := func(env, field string, target *string) {
		if v := os.Getenv(env); v != "" {
			*target = v
			track(sources, field, SourceEnv)
		}
	}
	setBool := func(env, field string, target *bool) {
		if v := os.Getenv(env); v != "" {
			*target = boolFromString(v)
			track(sources, field, SourceEnv)
		}
	}

	setString(EnvScores, "scores_file", &cfg.ScoresFile)
	setBool(EnvNoSave, "no_save", &cfg.NoSave)
	if v := os.Getenv(EnvTop); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Top = n
			track(sources, "top", SourceEnv)
		}
	}
	setString(EnvPlayer, "player", &cfg.Player)
	setString(EnvExitCommand, "exit_command", &cfg.ExitCommand)

	// Logging configuration
	setString(EnvLogLevel, "log_level", &cfg.LogLevel)
	setString(EnvLogFormat, "log_format", &cfg.LogFormat)
	setBool(EnvLogTimestamps, "log_timestamps", &cfg.LogTimestamps)
	setBool(EnvLogCaller, "log_caller", &cfg.LogCaller)
}
