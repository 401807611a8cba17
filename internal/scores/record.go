package scores

import "time"

// NoteLossExit marks a record for a round that ended without a win.
const NoteLossExit = "loss/exit"

// dateLayout is ISO-8601 in UTC with milliseconds.
const dateLayout = "2006-01-02T15:04:05.000Z07:00"

// Record is one persisted round outcome. Records are never modified after
// they are appended.
type Record struct {
	Name       string `json:"name" yaml:"name"`
	Attempts   int    `json:"attempts" yaml:"attempts"`
	TimeMs     int64  `json:"timeMs" yaml:"timeMs"`
	Difficulty string `json:"difficulty" yaml:"difficulty"`
	Date       string `json:"date" yaml:"date"`
	Note       string `json:"note,omitempty" yaml:"note,omitempty"`
}

// FormatDate renders t the way record dates are stored.
func FormatDate(t time.Time) string {
	return t.UTC().Format(dateLayout)
}

// Won reports whether the record is a win.
func (r Record) Won() bool {
	return r.Note == ""
}
