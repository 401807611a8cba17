// Package game holds the rules of a number-guessing round.
//
// A round is configured by a RoundConfig, either one of the fixed presets
// (Easy, Normal, Hard) or custom bounds validated by NewCustomConfig. Once
// started, a Round moves through the phases
//
//	AwaitingGuess → Won | Exhausted | Exited
//
// and never leaves a terminal phase. Only guesses that parse as integers and
// fall inside the configured bounds consume an attempt.
//
// # Presets
//
//   - Easy:   1-50,  12 attempts
//   - Normal: 1-100, 10 attempts
//   - Hard:   1-500,  8 attempts
package game
