package scores

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
)

// Option configures a Store.
type Option func(*Store)

// WithPersistence enables or disables writes. Reads are unaffected.
func WithPersistence(enabled bool) Option {
	return func(s *Store) {
		s.disabled = !enabled
	}
}

// WithLogger sets the logger used for load fallbacks and write failures.
func WithLogger(logger *log.Logger) Option {
	return func(s *Store) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// Store owns the ordered record history backed by a single file.
type Store struct {
	path     string
	records  []Record
	disabled bool
	logger   *log.Logger
}

// Open loads the history at path. Any load problem yields an empty history;
// the reason is logged, never returned.
func Open(path string, opts ...Option) *Store {
	s := &Store{
		path:   path,
		logger: log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(s)
	}

	records, err := Read(path)
	switch {
	case err == nil:
		s.records = records
	case errors.Is(err, fs.ErrNotExist):
		s.logger.Debug("no score history", "path", path)
	default:
		s.logger.Warn("ignoring score history", "path", path, "err", err)
	}
	if s.records == nil {
		s.records = make([]Record, 0)
	}
	return s
}

// Read parses and validates the scores file at path.
func Read(path string) ([]Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scores file: %w", err)
	}

	if result := Validate(data); !result.Valid {
		return nil, fmt.Errorf("invalid scores file: %w", result.Err())
	}

	var records []Record
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("parse scores file: %w", err)
	}
	return records, nil
}

// Write replaces the scores file with records.
func Write(path string, records []Record) error {
	if records == nil {
		records = []Record{}
	}
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal scores: %w", err)
	}
	data = append(data, '\n')

	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create scores dir: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write scores file: %w", err)
	}
	return nil
}

// Path returns the backing file path.
func (s *Store) Path() string {
	return s.path
}

// Enabled reports whether Append persists records.
func (s *Store) Enabled() bool {
	return !s.disabled
}

// Len returns the number of records.
func (s *Store) Len() int {
	return len(s.records)
}

// Records returns a copy of the history in append order.
func (s *Store) Records() []Record {
	out := make([]Record, len(s.records))
	copy(out, s.records)
	return out
}

// Append adds r and rewrites the file. It reports whether the record was
// saved: a disabled store returns false with a nil error and leaves both
// memory and disk untouched. On a write error the record is dropped so the
// history stays consistent with the file.
func (s *Store) Append(r Record) (bool, error) {
	if s.disabled {
		return false, nil
	}

	n := len(s.records)
	s.records = append(s.records, r)
	if err := Write(s.path, s.records); err != nil {
		s.records = s.records[:n:n]
		s.logger.Error("failed to save score", "path", s.path, "err", err)
		return false, err
	}

	s.logger.Debug("score saved", "path", s.path, "records", len(s.records))
	return true, nil
}
