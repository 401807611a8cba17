// Package leaderboard ranks score records and renders standings.
package leaderboard

import (
	"cmp"
	"fmt"
	"slices"
	"strings"

	"github.com/nibzard/guess-go/internal/scores"
)

// DefaultTop is the number of entries shown when no limit is configured.
const DefaultTop = 5

// EmptyMessage is rendered instead of an empty table.
const EmptyMessage = "No saved records yet."

// Entry is a ranked record.
type Entry struct {
	Rank          int `json:"rank" yaml:"rank"`
	scores.Record `yaml:",inline"`
}

// Rank returns the best topN records ordered by attempts, then elapsed time.
// Ties keep their original order. The input slice is not modified. A
// non-positive topN ranks every record.
func Rank(records []scores.Record, topN int) []Entry {
	sorted := slices.Clone(records)
	slices.SortStableFunc(sorted, func(a, b scores.Record) int {
		if c := cmp.Compare(a.Attempts, b.Attempts); c != 0 {
			return c
		}
		return cmp.Compare(a.TimeMs, b.TimeMs)
	})

	if topN > 0 && len(sorted) > topN {
		sorted = sorted[:topN]
	}

	entries := make([]Entry, len(sorted))
	for i, r := range sorted {
		entries[i] = Entry{Rank: i + 1, Record: r}
	}
	return entries
}

// Render formats the top records as text, one line per entry.
func Render(records []scores.Record, topN int) string {
	if len(records) == 0 {
		return EmptyMessage + "\n"
	}

	var b strings.Builder
	b.WriteString("--- Top Scores ---\n")
	for _, e := range Rank(records, topN) {
		b.WriteString(formatEntry(e))
		b.WriteByte('\n')
	}
	return b.String()
}

func formatEntry(e Entry) string {
	noun := "attempts"
	if e.Attempts == 1 {
		noun = "attempt"
	}
	line := fmt.Sprintf("%d. %s • %d %s • %s • %s • %s",
		e.Rank, e.Name, e.Attempts, noun, FormatElapsed(e.TimeMs), e.Difficulty, e.Date)
	if e.Note != "" {
		line += " (" + e.Note + ")"
	}
	return line
}

// FormatElapsed renders milliseconds as mm:ss, truncating partial seconds.
func FormatElapsed(ms int64) string {
	if ms < 0 {
		ms = 0
	}
	s := ms / 1000
	return fmt.Sprintf("%02d:%02d", s/60, s%60)
}
