package session

import (
	"context"
	"fmt"
	"strconv"

	"github.com/nibzard/guess-go/internal/game"
)

// SelectDifficulty shows the tier menu and returns the chosen config. Invalid
// answers re-prompt without limit.
func (c *Controller) SelectDifficulty(ctx context.Context) (game.RoundConfig, error) {
	c.console.Println("\nChoose a difficulty:")
	for i, tier := range game.Tiers() {
		if cfg, ok := game.Preset(tier); ok {
			c.console.Printf("  %d) %-7s (%d-%d, %d attempts)\n", i+1, cfg.Label, cfg.Min, cfg.Max, cfg.MaxAttempts)
			continue
		}
		c.console.Printf("  %d) %-7s (set your own range and attempts)\n", i+1, "Custom")
	}

	var tier game.Tier
	for {
		answer, err := c.console.Ask(ctx, fmt.Sprintf("Option [1-%d]: ", len(game.Tiers())))
		if err != nil {
			return game.RoundConfig{}, err
		}
		t, ok := game.ParseTier(answer)
		if ok {
			tier = t
			break
		}
		c.console.Warn("Invalid option. Enter 1, 2, 3, or 4.")
	}

	if cfg, ok := game.Preset(tier); ok {
		return cfg, nil
	}
	return c.customConfig(ctx)
}

// customConfig asks for min, max, and attempts until all three form a valid
// config.
func (c *Controller) customConfig(ctx context.Context) (game.RoundConfig, error) {
	questions := []string{
		"Minimum value (integer): ",
		"Maximum value (integer, > minimum): ",
		"Maximum attempts (integer): ",
	}

	for {
		var values [3]int
		valid := true
		for i, q := range questions {
			answer, err := c.console.Ask(ctx, q)
			if err != nil {
				return game.RoundConfig{}, err
			}
			n, err := strconv.Atoi(answer)
			if err != nil {
				valid = false
				continue
			}
			values[i] = n
		}

		if valid {
			cfg, err := game.NewCustomConfig(values[0], values[1], values[2])
			if err == nil {
				return cfg, nil
			}
		}
		c.console.Warn("Invalid values. Try again.")
	}
}
