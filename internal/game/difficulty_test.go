package game

import (
	"errors"
	"math"
	"testing"
)

func TestPresets(t *testing.T) {
	tests := []struct {
		tier     Tier
		min, max int
		attempts int
		label    string
	}{
		{TierEasy, 1, 50, 12, "Easy"},
		{TierNormal, 1, 100, 10, "Normal"},
		{TierHard, 1, 500, 8, "Hard"},
	}

	for _, tt := range tests {
		t.Run(string(tt.tier), func(t *testing.T) {
			cfg, ok := Preset(tt.tier)
			if !ok {
				t.Fatalf("Preset(%s) missing", tt.tier)
			}
			if cfg.Min != tt.min || cfg.Max != tt.max || cfg.MaxAttempts != tt.attempts || cfg.Label != tt.label {
				t.Errorf("Preset(%s): got %+v", tt.tier, cfg)
			}
		})
	}

	if _, ok := Preset(TierCustom); ok {
		t.Error("custom tier should have no preset")
	}
}

func TestNewCustomConfig(t *testing.T) {
	tests := []struct {
		name               string
		min, max, attempts int
		wantErr            bool
	}{
		{"valid", 10, 20, 3, false},
		{"negative range", -50, -10, 1, false},
		{"max equals min", 5, 5, 3, true},
		{"max below min", 9, 3, 3, true},
		{"zero attempts", 1, 10, 0, true},
		{"negative attempts", 1, 10, -2, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := NewCustomConfig(tt.min, tt.max, tt.attempts)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidBounds) {
					t.Errorf("expected ErrInvalidBounds, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if cfg.Min != tt.min || cfg.Max != tt.max || cfg.MaxAttempts != tt.attempts {
				t.Errorf("got %+v", cfg)
			}
		})
	}

	cfg, _ := NewCustomConfig(10, 20, 3)
	if cfg.Label != "Custom (10-20, 3 attempts)" {
		t.Errorf("label: got %q", cfg.Label)
	}
}

func TestParseTier(t *testing.T) {
	tests := []struct {
		input string
		want  Tier
		ok    bool
	}{
		{"1", TierEasy, true},
		{" 2 ", TierNormal, true},
		{"3", TierHard, true},
		{"4", TierCustom, true},
		{"Hard", TierHard, true},
		{"CUSTOM", TierCustom, true},
		{"5", "", false},
		{"", "", false},
		{"easy-ish", "", false},
	}

	for _, tt := range tests {
		got, ok := ParseTier(tt.input)
		if got != tt.want || ok != tt.ok {
			t.Errorf("ParseTier(%q) = %q, %v; want %q, %v", tt.input, got, ok, tt.want, tt.ok)
		}
	}
}

func TestRandomPickerStaysInBounds(t *testing.T) {
	pick := RandomPicker()
	seen := map[int]bool{}
	for i := 0; i < 500; i++ {
		v := pick(3, 6)
		if v < 3 || v > 6 {
			t.Fatalf("pick out of bounds: %d", v)
		}
		seen[v] = true
	}
	if len(seen) != 4 {
		t.Errorf("expected all 4 values to appear, saw %v", seen)
	}
}

func TestRandomPickerExtremeBounds(t *testing.T) {
	tests := []struct {
		name     string
		min, max int
	}{
		{"zero to max int", 0, math.MaxInt},
		{"full int range", math.MinInt, math.MaxInt},
		{"min int to zero", math.MinInt, 0},
		{"top two values", math.MaxInt - 1, math.MaxInt},
	}

	pick := RandomPicker()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := NewCustomConfig(tt.min, tt.max, 3)
			if err != nil {
				t.Fatalf("NewCustomConfig failed: %v", err)
			}
			for i := 0; i < 100; i++ {
				if v := pick(cfg.Min, cfg.Max); !cfg.Contains(v) {
					t.Fatalf("pick out of bounds: %d", v)
				}
			}
		})
	}
}
