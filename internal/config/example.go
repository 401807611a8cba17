package config

// ExampleConfig returns an example configuration showing all available options.
func ExampleConfig() string {
	return `# guess configuration file
# Values can be overridden by GUESS_* environment variables or CLI flags

# Score history file (relative to the working directory, supports ~)
scores_file = "scores.json"

# Set to true to play without saving results
no_save = false

# Number of leaderboard entries shown after each round
top = 5

# Player name; leave empty to be asked at startup
# player = "Ana"

# Typing this during a round abandons it
exit_command = "quit"

# Logging (written to stderr)
log_level = "warn"
log_format = "text"
log_timestamps = false
log_caller = false
`
}
