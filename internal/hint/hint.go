// Package hint derives progressive hints for a wrong guess.
package hint

import "fmt"

// Kind classifies a hint.
type Kind string

const (
	KindDirection Kind = "direction"
	KindParity    Kind = "parity"
	KindRange     Kind = "range"
	KindProximity Kind = "proximity"
)

// Hint is one line of guidance shown after a wrong guess.
type Hint struct {
	Kind    Kind
	Message string
}

func (h Hint) String() string {
	return h.Message
}

// Input carries everything the engine looks at. Attempts counts the guess
// being evaluated.
type Input struct {
	Secret      int
	Guess       int
	Attempts    int
	MaxAttempts int
	Min         int
	Max         int
}

// For returns the hints for a guess, in display order. A correct guess gets
// no hints. A wrong guess always gets the direction hint, followed by at most
// one progressive hint: parity on the second attempt, an approximate range at
// the halfway attempt, or proximity on the second-to-last attempt. When two
// of those thresholds coincide the earlier one in that list wins.
func For(in Input) []Hint {
	if in.Guess == in.Secret {
		return nil
	}

	hints := []Hint{direction(in)}

	switch {
	case in.Attempts == 2:
		hints = append(hints, parity(in))
	case in.Attempts == ceilHalf(in.MaxAttempts):
		hints = append(hints, window(in))
	case in.Attempts == in.MaxAttempts-1:
		hints = append(hints, proximity(in))
	}

	return hints
}

func direction(in Input) Hint {
	if in.Guess < in.Secret {
		return Hint{Kind: KindDirection, Message: "The number is higher."}
	}
	return Hint{Kind: KindDirection, Message: "The number is lower."}
}

func parity(in Input) Hint {
	word := "odd"
	if in.Secret%2 == 0 {
		word = "even"
	}
	return Hint{Kind: KindParity, Message: fmt.Sprintf("Hint: the number is %s.", word)}
}

// window reports an approximate range around the secret, clamped to the
// round bounds.
func window(in Input) Hint {
	low, high := Window(in.Secret, in.Min, in.Max)
	return Hint{
		Kind:    KindRange,
		Message: fmt.Sprintf("Hint: it is between %d and %d (approximate range).", low, high),
	}
}

// Window computes the range hint bounds. The width is a sixth of the span,
// never less than 5. Distances are taken in uint64 so bounds near the int
// limits neither overflow nor invert.
func Window(secret, min, max int) (low, high int) {
	width := distance(min, max) / 6
	if width < 5 {
		width = 5
	}

	below, above := width/2, (width+1)/2
	low, high = min, max
	if distance(min, secret) > below {
		low = int(uint64(secret) - below)
	}
	if distance(secret, max) > above {
		high = int(uint64(secret) + above)
	}
	return low, high
}

func proximity(in Input) Hint {
	var msg string
	switch delta := distance(in.Guess, in.Secret); {
	case delta <= 2:
		msg = "Final hint: very close (off by 2 or less)."
	case delta <= 5:
		msg = "Final hint: close (off by 5 or less)."
	default:
		msg = "Final hint: still far, follow the direction above."
	}
	return Hint{Kind: KindProximity, Message: msg}
}

// distance returns |b - a| without overflow.
func distance(a, b int) uint64 {
	if b < a {
		a, b = b, a
	}
	return uint64(b) - uint64(a)
}

func ceilHalf(n int) int {
	return (n + 1) / 2
}
