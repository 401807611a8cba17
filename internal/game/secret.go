package game

import "math/rand/v2"

// Picker draws a secret uniformly from [min, max].
type Picker func(min, max int) int

// RandomPicker draws from the process-wide random source. Any min <= max is
// accepted, including the full int range.
func RandomPicker() Picker {
	return func(min, max int) int {
		span := uint64(max) - uint64(min)
		if span == ^uint64(0) {
			return int(rand.Uint64())
		}
		return int(uint64(min) + rand.Uint64N(span+1))
	}
}

// FixedPicker always returns v. Useful for scripted sessions.
func FixedPicker(v int) Picker {
	return func(int, int) int { return v }
}
