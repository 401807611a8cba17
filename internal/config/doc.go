// Package config handles configuration loading and defaults.
//
// Configuration is loaded from multiple sources in priority order:
// 1. Built-in defaults
// 2. User config file (~/.guess/guess.toml or OS-specific config directory)
// 3. Project config file (guess.toml or .guess.toml in the working directory)
// 4. Environment variables (GUESS_*)
// 5. CLI flags
//
// Each level overrides the previous one, so CLI flags take precedence.
//
// User-level config locations:
// - ~/.guess/guess.toml (preferred)
// - Windows: %APPDATA%\guess\guess.toml
// - macOS: ~/Library/Application Support/guess/guess.toml
// - Linux/BSD: $XDG_CONFIG_HOME/guess/guess.toml or ~/.config/guess/guess.toml
package config
