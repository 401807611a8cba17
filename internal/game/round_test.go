package game

import (
	"errors"
	"testing"
	"time"

	"github.com/nibzard/guess-go/internal/hint"
)

var t0 = time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

func normal(t *testing.T) RoundConfig {
	t.Helper()
	cfg, ok := Preset(TierNormal)
	if !ok {
		t.Fatal("Normal preset missing")
	}
	return cfg
}

func TestNormalScenario(t *testing.T) {
	r, err := NewRound(normal(t), 42, t0)
	if err != nil {
		t.Fatalf("NewRound failed: %v", err)
	}

	fb, err := r.Guess("50", t0.Add(time.Second))
	if err != nil {
		t.Fatalf("guess 1: %v", err)
	}
	if fb.Correct || fb.Phase != PhaseAwaitingGuess {
		t.Fatalf("guess 1: got %+v", fb)
	}
	if len(fb.Hints) != 1 || fb.Hints[0].Message != "The number is lower." {
		t.Errorf("guess 1 hints: got %v", fb.Hints)
	}

	fb, err = r.Guess("25", t0.Add(2*time.Second))
	if err != nil {
		t.Fatalf("guess 2: %v", err)
	}
	if len(fb.Hints) != 2 {
		t.Fatalf("guess 2 hints: got %v", fb.Hints)
	}
	if fb.Hints[0].Message != "The number is higher." {
		t.Errorf("guess 2 direction: got %q", fb.Hints[0].Message)
	}
	if fb.Hints[1].Kind != hint.KindParity || fb.Hints[1].Message != "Hint: the number is even." {
		t.Errorf("guess 2 parity: got %+v", fb.Hints[1])
	}

	fb, err = r.Guess("42", t0.Add(3*time.Second))
	if err != nil {
		t.Fatalf("guess 3: %v", err)
	}
	if !fb.Correct || fb.Phase != PhaseWon || fb.Attempts != 3 {
		t.Fatalf("guess 3: got %+v", fb)
	}

	res := r.Result()
	if !res.Finished || res.Attempts != 3 || res.Elapsed != 3*time.Second {
		t.Errorf("result: got %+v", res)
	}
	if res.Difficulty != "Normal" {
		t.Errorf("difficulty: got %q", res.Difficulty)
	}
	if !res.Recordable() {
		t.Error("won round should be recordable")
	}
}

func TestExhaustion(t *testing.T) {
	cfg, err := NewCustomConfig(1, 10, 3)
	if err != nil {
		t.Fatalf("NewCustomConfig failed: %v", err)
	}
	r, err := NewRound(cfg, 7, t0)
	if err != nil {
		t.Fatalf("NewRound failed: %v", err)
	}

	for i, g := range []string{"1", "2", "3"} {
		fb, err := r.Guess(g, t0)
		if err != nil {
			t.Fatalf("guess %d: %v", i+1, err)
		}
		if r.Attempts() > cfg.MaxAttempts {
			t.Fatalf("attempts exceeded max: %d", r.Attempts())
		}
		wantTerminal := i == 2
		if fb.Phase.Terminal() != wantTerminal {
			t.Fatalf("guess %d: phase %s", i+1, fb.Phase)
		}
	}

	if r.Phase() != PhaseExhausted {
		t.Fatalf("phase: got %s, want exhausted", r.Phase())
	}
	res := r.Result()
	if res.Finished {
		t.Error("exhausted round must not be finished")
	}
	if res.Attempts != 3 || res.Secret != 7 || res.Elapsed != 0 {
		t.Errorf("result: got %+v", res)
	}

	if _, err := r.Guess("7", t0); !errors.Is(err, ErrRoundOver) {
		t.Errorf("guess after exhaustion: got %v, want ErrRoundOver", err)
	}
	if r.Attempts() != 3 {
		t.Errorf("attempts changed after round over: %d", r.Attempts())
	}
}

func TestInvalidGuessDoesNotConsumeAttempt(t *testing.T) {
	r, err := NewRound(normal(t), 42, t0)
	if err != nil {
		t.Fatalf("NewRound failed: %v", err)
	}

	tests := []struct {
		name  string
		input string
		check func(error) bool
	}{
		{"empty", "", func(err error) bool { return errors.Is(err, ErrNotANumber) }},
		{"word", "abc", func(err error) bool { return errors.Is(err, ErrNotANumber) }},
		{"float", "4.5", func(err error) bool { return errors.Is(err, ErrNotANumber) }},
		{"below", "0", func(err error) bool {
			var re *RangeError
			return errors.As(err, &re) && re.Min == 1 && re.Max == 100
		}},
		{"above", "101", func(err error) bool {
			var re *RangeError
			return errors.As(err, &re) && re.Guess == 101
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := r.Guess(tt.input, t0)
			if !tt.check(err) {
				t.Errorf("Guess(%q): unexpected error %v", tt.input, err)
			}
			if r.Attempts() != 0 {
				t.Errorf("attempts consumed: %d", r.Attempts())
			}
		})
	}

	if _, err := r.Guess("  42 ", t0); err != nil {
		t.Errorf("padded guess rejected: %v", err)
	}
}

func TestExitRecordable(t *testing.T) {
	tests := []struct {
		name    string
		guesses []string
		want    bool
	}{
		{"no attempts", nil, false},
		{"one attempt", []string{"10"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := NewRound(normal(t), 42, t0)
			if err != nil {
				t.Fatalf("NewRound failed: %v", err)
			}
			for _, g := range tt.guesses {
				if _, err := r.Guess(g, t0); err != nil {
					t.Fatalf("Guess(%q): %v", g, err)
				}
			}
			r.Exit(t0)
			res := r.Result()
			if res.Phase != PhaseExited {
				t.Fatalf("phase: got %s", res.Phase)
			}
			if res.Recordable() != tt.want {
				t.Errorf("Recordable: got %v, want %v", res.Recordable(), tt.want)
			}
		})
	}
}

func TestResultBeforeEnd(t *testing.T) {
	r, err := NewRound(normal(t), 42, t0)
	if err != nil {
		t.Fatalf("NewRound failed: %v", err)
	}
	if res := r.Result(); res.Recordable() || res.Attempts != 0 {
		t.Errorf("unfinished round result: got %+v", res)
	}
}

func TestNewRoundRejectsSecretOutOfBounds(t *testing.T) {
	if _, err := NewRound(normal(t), 0, t0); err == nil {
		t.Error("expected error for secret below min")
	}
	if _, err := NewRound(RoundConfig{Min: 5, Max: 5, MaxAttempts: 1}, 5, t0); !errors.Is(err, ErrInvalidBounds) {
		t.Errorf("expected ErrInvalidBounds, got %v", err)
	}
}
