// Package session drives an interactive guessing session: it asks for the
// player, runs rounds, records results, and shows the leaderboard.
package session

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/nibzard/guess-go/internal/game"
	"github.com/nibzard/guess-go/internal/leaderboard"
	"github.com/nibzard/guess-go/internal/scores"
)

// AnonymousPlayer is used when the player leaves the name empty.
const AnonymousPlayer = "Anonymous"

// Console is the prompt/response surface the controller talks to. Ask must
// block until the answer arrives.
type Console interface {
	Ask(ctx context.Context, question string) (string, error)
	Println(a ...any)
	Printf(format string, a ...any)
	Title(msg string)
	Hint(msg string)
	Warn(msg string)
	Success(msg string)
}

// Option configures a Controller.
type Option func(*Controller)

// WithPicker sets how secrets are drawn.
func WithPicker(p game.Picker) Option {
	return func(c *Controller) {
		if p != nil {
			c.pick = p
		}
	}
}

// WithClock sets the time source.
func WithClock(now func() time.Time) Option {
	return func(c *Controller) {
		if now != nil {
			c.now = now
		}
	}
}

// WithLogger sets the logger.
func WithLogger(logger *log.Logger) Option {
	return func(c *Controller) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithTop sets the leaderboard size.
func WithTop(n int) Option {
	return func(c *Controller) {
		if n > 0 {
			c.top = n
		}
	}
}

// WithExitCommand sets the input that abandons a round.
func WithExitCommand(cmd string) Option {
	return func(c *Controller) {
		if s := strings.TrimSpace(cmd); s != "" {
			c.exitCommand = s
		}
	}
}

// WithPlayer fixes the player name and skips the name prompt.
func WithPlayer(name string) Option {
	return func(c *Controller) {
		c.player = strings.TrimSpace(name)
	}
}

// Controller owns one interactive session.
type Controller struct {
	console     Console
	store       *scores.Store
	logger      *log.Logger
	pick        game.Picker
	now         func() time.Time
	top         int
	exitCommand string
	player      string
}

// New creates a controller that records results into store.
func New(console Console, store *scores.Store, opts ...Option) *Controller {
	c := &Controller{
		console:     console,
		store:       store,
		logger:      log.New(io.Discard),
		pick:        game.RandomPicker(),
		now:         time.Now,
		top:         leaderboard.DefaultTop,
		exitCommand: "quit",
	}
	for _, opt := range opts {
		opt(c)
	}
	c.logger = c.logger.With("session", uuid.NewString())
	return c
}

// Run plays rounds until the player declines a replay or input ends.
func (c *Controller) Run(ctx context.Context) error {
	c.console.Title("Number Guessing Game")
	c.logger.Debug("session started", "scores", c.store.Path(), "persist", c.store.Enabled(), "history", c.store.Len())

	player, err := c.playerName(ctx)
	if err != nil {
		return c.endOnEOF(err)
	}

	for {
		res, err := c.PlayRound(ctx, player)
		if err != nil {
			return c.endOnEOF(err)
		}
		c.Record(res, player)

		again, err := c.console.Ask(ctx, "\nPlay again? (y/n): ")
		if err != nil {
			return c.endOnEOF(err)
		}
		if !strings.HasPrefix(strings.ToLower(again), "y") {
			c.farewell()
			return nil
		}
	}
}

func (c *Controller) endOnEOF(err error) error {
	if errors.Is(err, io.EOF) {
		c.logger.Debug("input closed")
		c.farewell()
		return nil
	}
	return err
}

func (c *Controller) farewell() {
	c.console.Println("\nThanks for playing. See you next time.")
}

func (c *Controller) playerName(ctx context.Context) (string, error) {
	if c.player != "" {
		return c.player, nil
	}
	name, err := c.console.Ask(ctx, fmt.Sprintf("Player name (press Enter for %q): ", AnonymousPlayer))
	if err != nil {
		return "", err
	}
	if name == "" {
		return AnonymousPlayer, nil
	}
	return name, nil
}

// PlayRound selects a difficulty and runs one round to its end.
func (c *Controller) PlayRound(ctx context.Context, player string) (game.Result, error) {
	cfg, err := c.SelectDifficulty(ctx)
	if err != nil {
		return game.Result{}, err
	}

	round, err := game.NewRound(cfg, c.pick(cfg.Min, cfg.Max), c.now())
	if err != nil {
		return game.Result{}, fmt.Errorf("start round: %w", err)
	}
	c.logger.Debug("round started", "player", player, "difficulty", cfg.Label)

	c.console.Printf("\nI'm thinking of a number between %d and %d. You have %d attempts.\n", cfg.Min, cfg.Max, cfg.MaxAttempts)
	c.console.Printf("(Type %q at any time to leave the round.)\n", c.exitCommand)

	for !round.Phase().Terminal() {
		answer, err := c.console.Ask(ctx, fmt.Sprintf("Guess (%d left): ", round.Remaining()))
		if err != nil {
			return game.Result{}, err
		}
		if strings.EqualFold(answer, c.exitCommand) {
			round.Exit(c.now())
			c.console.Println("Leaving the round...")
			break
		}

		fb, err := round.Guess(answer, c.now())
		var rangeErr *game.RangeError
		switch {
		case errors.Is(err, game.ErrNotANumber):
			c.console.Warn("Enter a valid number.")
			continue
		case errors.As(err, &rangeErr):
			c.console.Warn(fmt.Sprintf("Your guess must be between %d and %d.", rangeErr.Min, rangeErr.Max))
			continue
		case err != nil:
			return game.Result{}, err
		}

		if fb.Correct {
			continue
		}
		for _, h := range fb.Hints {
			c.console.Hint(h.Message)
		}
	}

	res := round.Result()
	switch res.Phase {
	case game.PhaseWon:
		c.console.Println()
		c.console.Success(fmt.Sprintf("Correct! The number was %d.", res.Secret))
		c.console.Printf("Attempts: %d | Time: %s\n", res.Attempts, leaderboard.FormatElapsed(res.Elapsed.Milliseconds()))
	case game.PhaseExhausted:
		c.console.Println()
		c.console.Warn(fmt.Sprintf("Out of attempts. The number was %d.", res.Secret))
	}
	c.logger.Debug("round ended", "outcome", res.Phase, "attempts", res.Attempts)
	return res, nil
}

// Record persists a round result when it qualifies and shows the standings.
// Write failures are reported and the session carries on.
func (c *Controller) Record(res game.Result, player string) {
	if !res.Recordable() {
		return
	}

	rec := scores.Record{
		Name:       player,
		Attempts:   res.Attempts,
		Difficulty: res.Difficulty,
		Date:       scores.FormatDate(c.now()),
	}
	if res.Finished {
		rec.TimeMs = res.Elapsed.Round(time.Millisecond).Milliseconds()
	} else {
		rec.Note = scores.NoteLossExit
	}

	saved, err := c.store.Append(rec)
	switch {
	case err != nil:
		c.console.Warn(fmt.Sprintf("Warning: could not save result: %v", err))
	case saved:
		c.console.Printf("Result saved to %s.\n", filepath.Base(c.store.Path()))
	default:
		c.console.Println("Result NOT saved (--no-save).")
	}

	c.console.Printf("\n%s", leaderboard.Render(c.store.Records(), c.top))
}
