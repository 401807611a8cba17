package game

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/nibzard/guess-go/internal/hint"
)

// Phase is the state of a round.
type Phase int

const (
	PhaseAwaitingGuess Phase = iota
	PhaseWon
	PhaseExhausted
	PhaseExited
)

func (p Phase) String() string {
	switch p {
	case PhaseAwaitingGuess:
		return "awaiting_guess"
	case PhaseWon:
		return "won"
	case PhaseExhausted:
		return "exhausted"
	case PhaseExited:
		return "exited"
	default:
		return fmt.Sprintf("phase(%d)", int(p))
	}
}

// Terminal reports whether no further guesses are accepted.
func (p Phase) Terminal() bool {
	return p != PhaseAwaitingGuess
}

var (
	// ErrNotANumber is returned for input that does not parse as an integer.
	ErrNotANumber = errors.New("guess is not a valid number")
	// ErrRoundOver is returned when a guess is submitted to a finished round.
	ErrRoundOver = errors.New("round is over")
)

// RangeError reports a guess outside the round bounds.
type RangeError struct {
	Guess int
	Min   int
	Max   int
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("guess %d must be between %d and %d", e.Guess, e.Min, e.Max)
}

// Feedback is the outcome of one accepted guess.
type Feedback struct {
	Guess    int
	Correct  bool
	Attempts int
	Phase    Phase
	Hints    []hint.Hint
}

// Result summarizes a finished round for persistence and display.
type Result struct {
	Finished   bool
	Phase      Phase
	Attempts   int
	Elapsed    time.Duration
	Secret     int
	Difficulty string
}

// Round tracks the secret and attempt count of one play-through.
type Round struct {
	cfg      RoundConfig
	secret   int
	attempts int
	start    time.Time
	end      time.Time
	phase    Phase
}

// NewRound starts a round with the given secret. The secret must lie within
// the config bounds.
func NewRound(cfg RoundConfig, secret int, start time.Time) (*Round, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if !cfg.Contains(secret) {
		return nil, fmt.Errorf("secret %d outside [%d, %d]", secret, cfg.Min, cfg.Max)
	}
	return &Round{
		cfg:    cfg,
		secret: secret,
		start:  start,
		phase:  PhaseAwaitingGuess,
	}, nil
}

// Config returns the round configuration.
func (r *Round) Config() RoundConfig { return r.cfg }

// Secret returns the drawn number.
func (r *Round) Secret() int { return r.secret }

// Attempts returns the number of accepted guesses so far.
func (r *Round) Attempts() int { return r.attempts }

// Remaining returns the attempts left.
func (r *Round) Remaining() int { return r.cfg.MaxAttempts - r.attempts }

// Phase returns the current phase.
func (r *Round) Phase() Phase { return r.phase }

// ParseGuess converts raw input to a guess within the round bounds. Errors
// are ErrNotANumber or *RangeError; neither consumes an attempt.
func (r *Round) ParseGuess(input string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(input))
	if err != nil {
		return 0, ErrNotANumber
	}
	if !r.cfg.Contains(n) {
		return 0, &RangeError{Guess: n, Min: r.cfg.Min, Max: r.cfg.Max}
	}
	return n, nil
}

// Guess evaluates raw input as a guess taken at time now.
func (r *Round) Guess(input string, now time.Time) (Feedback, error) {
	if r.phase.Terminal() {
		return Feedback{}, ErrRoundOver
	}
	n, err := r.ParseGuess(input)
	if err != nil {
		return Feedback{}, err
	}
	return r.Submit(n, now)
}

// Submit records a parsed guess and advances the round.
func (r *Round) Submit(guess int, now time.Time) (Feedback, error) {
	if r.phase.Terminal() {
		return Feedback{}, ErrRoundOver
	}
	if !r.cfg.Contains(guess) {
		return Feedback{}, &RangeError{Guess: guess, Min: r.cfg.Min, Max: r.cfg.Max}
	}

	r.attempts++
	fb := Feedback{Guess: guess, Attempts: r.attempts}

	if guess == r.secret {
		r.phase = PhaseWon
		r.end = now
		fb.Correct = true
		fb.Phase = r.phase
		return fb, nil
	}

	fb.Hints = hint.For(hint.Input{
		Secret:      r.secret,
		Guess:       guess,
		Attempts:    r.attempts,
		MaxAttempts: r.cfg.MaxAttempts,
		Min:         r.cfg.Min,
		Max:         r.cfg.Max,
	})

	if r.attempts >= r.cfg.MaxAttempts {
		r.phase = PhaseExhausted
		r.end = now
	}
	fb.Phase = r.phase
	return fb, nil
}

// Exit abandons the round. It is a no-op on a finished round.
func (r *Round) Exit(now time.Time) {
	if r.phase.Terminal() {
		return
	}
	r.phase = PhaseExited
	r.end = now
}

// Result reports the round outcome. Elapsed is only set for a won round.
// Calling Result before the round ends returns a zero Result.
func (r *Round) Result() Result {
	if !r.phase.Terminal() {
		return Result{}
	}
	res := Result{
		Finished:   r.phase == PhaseWon,
		Phase:      r.phase,
		Attempts:   r.attempts,
		Secret:     r.secret,
		Difficulty: r.cfg.Label,
	}
	if res.Finished {
		res.Elapsed = r.end.Sub(r.start)
	}
	return res
}

// Recordable reports whether the outcome should be persisted. Won and
// exhausted rounds always are; an exited round only once a guess was made.
func (res Result) Recordable() bool {
	switch res.Phase {
	case PhaseWon, PhaseExhausted:
		return true
	case PhaseExited:
		return res.Attempts > 0
	default:
		return false
	}
}
