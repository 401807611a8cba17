package game

import (
	"errors"
	"fmt"
	"strings"
)

// Tier identifies a difficulty option offered to the player.
type Tier string

const (
	TierEasy   Tier = "easy"
	TierNormal Tier = "normal"
	TierHard   Tier = "hard"
	TierCustom Tier = "custom"
)

// Tiers lists the selectable tiers in menu order.
func Tiers() []Tier {
	return []Tier{TierEasy, TierNormal, TierHard, TierCustom}
}

// ErrInvalidBounds is returned when custom bounds violate max > min or attempts > 0.
var ErrInvalidBounds = errors.New("invalid round bounds")

// RoundConfig is the immutable setup of a single round.
type RoundConfig struct {
	Min         int
	Max         int
	MaxAttempts int
	Label       string
}

// Validate checks the invariants Max > Min and MaxAttempts > 0.
func (c RoundConfig) Validate() error {
	if c.Max <= c.Min {
		return fmt.Errorf("%w: max %d must be greater than min %d", ErrInvalidBounds, c.Max, c.Min)
	}
	if c.MaxAttempts <= 0 {
		return fmt.Errorf("%w: attempts must be positive, got %d", ErrInvalidBounds, c.MaxAttempts)
	}
	return nil
}

// Contains reports whether v lies inside [Min, Max].
func (c RoundConfig) Contains(v int) bool {
	return v >= c.Min && v <= c.Max
}

// String renders the config as shown in the difficulty menu.
func (c RoundConfig) String() string {
	return fmt.Sprintf("%s (%d-%d, %d attempts)", c.Label, c.Min, c.Max, c.MaxAttempts)
}

var presets = map[Tier]RoundConfig{
	TierEasy:   {Min: 1, Max: 50, MaxAttempts: 12, Label: "Easy"},
	TierNormal: {Min: 1, Max: 100, MaxAttempts: 10, Label: "Normal"},
	TierHard:   {Min: 1, Max: 500, MaxAttempts: 8, Label: "Hard"},
}

// Preset returns the fixed config for a tier. Custom has no preset.
func Preset(t Tier) (RoundConfig, bool) {
	cfg, ok := presets[t]
	return cfg, ok
}

// NewCustomConfig validates player-supplied bounds and labels them.
func NewCustomConfig(min, max, attempts int) (RoundConfig, error) {
	cfg := RoundConfig{
		Min:         min,
		Max:         max,
		MaxAttempts: attempts,
		Label:       fmt.Sprintf("Custom (%d-%d, %d attempts)", min, max, attempts),
	}
	if err := cfg.Validate(); err != nil {
		return RoundConfig{}, err
	}
	return cfg, nil
}

// ParseTier maps a menu answer to a tier. It accepts the menu number
// ("1".."4") or the tier name in any case.
func ParseTier(input string) (Tier, bool) {
	s := strings.ToLower(strings.TrimSpace(input))
	switch s {
	case "1", string(TierEasy):
		return TierEasy, true
	case "2", string(TierNormal):
		return TierNormal, true
	case "3", string(TierHard):
		return TierHard, true
	case "4", string(TierCustom):
		return TierCustom, true
	}
	return "", false
}
