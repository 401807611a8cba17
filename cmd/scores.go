package cmd

import (
	"flag"
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/nibzard/guess-go/internal/config"
	"github.com/nibzard/guess-go/internal/leaderboard"
	"github.com/nibzard/guess-go/internal/scores"
)

// scoresCommand prints the leaderboard without starting a session.
func scoresCommand(cfg *config.Config, logger *log.Logger, args []string, std streams) error {
	fs := flag.NewFlagSet("guess scores", flag.ContinueOnError)
	fs.SetOutput(std.err)
	format := fs.String("format", string(leaderboard.FormatText), "Output format (text|json|yaml)")
	top := fs.Int("top", cfg.Top, "Entries to show (0 = all)")

	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() > 0 {
		return fmt.Errorf("unexpected arguments: %v", fs.Args())
	}
	if *top < 0 {
		return fmt.Errorf("invalid top %d (must be 0 or more)", *top)
	}

	f, err := leaderboard.ParseFormat(*format)
	if err != nil {
		return err
	}

	store := scores.Open(cfg.ScoresFile, scores.WithLogger(logger))
	if err := leaderboard.Write(std.out, store.Records(), *top, f); err != nil {
		return fmt.Errorf("writing scores: %w", err)
	}
	return nil
}
