package cmd

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/nibzard/guess-go/internal/config"
	"github.com/nibzard/guess-go/internal/scores"
)

var (
	knownLogLevels  = []string{"debug", "info", "warn", "warning", "error", "fatal"}
	knownLogFormats = []string{"text", "json", "logfmt"}
)

// doctorCommand checks config and the score history file.
func doctorCommand(cfg *config.Config, args []string, std streams) error {
	flags := flag.NewFlagSet("guess doctor", flag.ContinueOnError)
	flags.SetOutput(std.err)
	verbose := flags.Bool("v", false, "List every validation error")

	if err := flags.Parse(args); err != nil {
		return err
	}
	if flags.NArg() > 0 {
		return fmt.Errorf("unexpected arguments: %v", flags.Args())
	}

	out := std.out
	fmt.Fprintln(out, "Guess Doctor")
	fmt.Fprintln(out, "============")
	fmt.Fprintln(out)

	allOK := true

	// Check project root
	fmt.Fprintf(out, "Project root: %s\n", cfg.ProjectRoot)
	if _, err := os.Stat(cfg.ProjectRoot); err != nil {
		fmt.Fprintf(out, "  ❌ Error: %v\n", err)
		allOK = false
	} else {
		fmt.Fprintln(out, "  ✅ OK")
	}
	fmt.Fprintln(out)

	// Check config
	fmt.Fprintln(out, "Config:")
	if len(cfg.Files) == 0 {
		fmt.Fprintln(out, "  ✅ Files: (none, using defaults)")
	}
	for _, f := range cfg.Files {
		fmt.Fprintf(out, "  ✅ File: %s\n", f)
	}
	fmt.Fprintf(out, "  ✅ Leaderboard size: %d\n", cfg.Top)
	fmt.Fprintf(out, "  ✅ Exit command: %s\n", cfg.ExitCommand)
	if oneOf(cfg.LogLevel, knownLogLevels) {
		fmt.Fprintf(out, "  ✅ Log level: %s\n", cfg.LogLevel)
	} else {
		fmt.Fprintf(out, "  ⚠️  Log level: %s (expected %s, using info)\n", cfg.LogLevel, strings.Join(knownLogLevels, "|"))
	}
	if oneOf(cfg.LogFormat, knownLogFormats) {
		fmt.Fprintf(out, "  ✅ Log format: %s\n", cfg.LogFormat)
	} else {
		fmt.Fprintf(out, "  ⚠️  Log format: %s (expected %s, using text)\n", cfg.LogFormat, strings.Join(knownLogFormats, "|"))
	}
	if cfg.NoSave {
		fmt.Fprintln(out, "  ⚠️  Saving disabled (no_save)")
	}
	fmt.Fprintln(out)

	// Check score history
	fmt.Fprintf(out, "Scores file: %s\n", cfg.ScoresFile)
	if !checkScoresFile(cfg.ScoresFile, *verbose, std) {
		allOK = false
	}
	fmt.Fprintln(out)

	// Overall status
	if allOK {
		fmt.Fprintln(out, "✅ All checks passed!")
		return nil
	}
	fmt.Fprintln(out, "⚠️  Some checks failed. Scores may not load or save correctly.")
	return fmt.Errorf("doctor checks failed")
}

// checkScoresFile reports presence and schema validity of the history file.
func checkScoresFile(path string, verbose bool, std streams) bool {
	out := std.out
	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		fmt.Fprintln(out, "  ⚠️  Not found (created on the first saved result)")
		return checkScoresDir(filepath.Dir(path), std)
	case err != nil:
		fmt.Fprintf(out, "  ❌ Error: %v\n", err)
		return false
	}

	result := scores.Validate(data)
	if result.Valid {
		fmt.Fprintf(out, "  ✅ Valid (%d records)\n", result.Records)
		return true
	}

	fmt.Fprintf(out, "  ❌ Invalid: %d error(s), history will load as empty\n", len(result.Errors))
	shown := result.Errors
	if !verbose && len(shown) > 1 {
		shown = shown[:1]
	}
	for _, e := range shown {
		fmt.Fprintf(out, "     - %v\n", e)
	}
	if len(shown) < len(result.Errors) {
		fmt.Fprintln(out, "     (use -v to list all)")
	}
	return false
}

// checkScoresDir reports whether the parent of a missing file is usable.
func checkScoresDir(dir string, std streams) bool {
	info, err := os.Stat(dir)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		fmt.Fprintf(std.out, "  ⚠️  Directory %s does not exist yet (created on save)\n", dir)
		return true
	case err != nil:
		fmt.Fprintf(std.out, "  ❌ Directory %s: %v\n", dir, err)
		return false
	case !info.IsDir():
		fmt.Fprintf(std.out, "  ❌ %s is not a directory\n", dir)
		return false
	}
	return true
}

func oneOf(value string, allowed []string) bool {
	v := strings.ToLower(strings.TrimSpace(value))
	for _, a := range allowed {
		if v == a {
			return true
		}
	}
	return false
}
