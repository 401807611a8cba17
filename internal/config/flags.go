package config

import "flag"

// parseFlags defines and parses CLI flags. Only flags that were explicitly
// set override values from earlier sources.
func parseFlags(cfg *Config, fs *flag.FlagSet, args []string, sources map[string]ConfigSource) error {
	if fs == nil {
		fs = flag.NewFlagSet(appName, flag.ContinueOnError)
	}

	var (
		scoresFile    = fs.String("scores", cfg.ScoresFile, "Path to the score history file")
		noSave        = fs.Bool("no-save", cfg.NoSave, "Do not save round results")
		top           = fs.Int("top", cfg.Top, "Number of leaderboard entries to show")
		player        = fs.String("player", cfg.Player, "Player name (skips the name prompt)")
		exitCommand   = fs.String("exit-command", cfg.ExitCommand, "Input that abandons the current round")
		logLevel      = fs.String("log-level", cfg.LogLevel, "Log level (debug, info, warn, error)")
		logFormat     = fs.String("log-format", cfg.LogFormat, "Log format (text, json, logfmt)")
		logTimestamps = fs.Bool("log-timestamps", cfg.LogTimestamps, "Show timestamps in logs")
		logCaller     = fs.Bool("log-caller", cfg.LogCaller, "Show caller location in logs")
	)

	if err := fs.Parse(args); err != nil {
		return err
	}

	fs.Visit(func(f *flag.Flag) {
		field := ""
		switch f.Name {
		case "scores":
			cfg.ScoresFile, field = *scoresFile, "scores_file"
		case "no-save":
			cfg.NoSave, field = *noSave, "no_save"
		case "top":
			cfg.Top, field = *top, "top"
		case "player":
			cfg.Player, field = *player, "player"
		case "exit-command":
			cfg.ExitCommand, field = *exitCommand, "exit_command"
		case "log-level":
			cfg.LogLevel, field = *logLevel, "log_level"
		case "log-format":
			cfg.LogFormat, field = *logFormat, "log_format"
		case "log-timestamps":
			cfg.LogTimestamps, field = *logTimestamps, "log_timestamps"
		case "log-caller":
			cfg.LogCaller, field = *logCaller, "log_caller"
		}
		if field != "" {
			track(sources, field, SourceFlag)
		}
	})

	return nil
}
