// Package store persists session results between runs. The core
// packages never touch it; only the CLI and TUI layers read and write
// the store, feeding plain session values in and out.
package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"

	"github.com/lox/chipdrill/internal/fileutil"
	"github.com/lox/chipdrill/internal/session"
)

// SchemaVersion is stamped into every saved file so future layout
// changes can migrate old files.
const SchemaVersion = 1

// DefaultHistoryLimit caps the rolling daily history.
const DefaultHistoryLimit = 30

// DailySummary aggregates one calendar day of practice.
type DailySummary struct {
	Date       string `json:"date"` // YYYY-MM-DD
	Hands      int    `json:"hands"`
	Correct    int    `json:"correct"`
	BestStreak int    `json:"best_streak"`
}

// File is the on-disk layout: the latest session record plus the
// rolling history.
type File struct {
	SchemaVersion int            `json:"schema_version"`
	Timestamp     time.Time      `json:"timestamp"`
	Score         session.Score  `json:"score"`
	Stats         session.Stats  `json:"session_stats"`
	History       []DailySummary `json:"history"`
}

// Store reads and writes the session file.
type Store struct {
	// HistoryLimit caps the rolling daily history. Overridable from
	// configuration; defaults to DefaultHistoryLimit.
	HistoryLimit int

	path   string
	logger *log.Logger
}

// New creates a store writing to path.
func New(path string, logger *log.Logger) *Store {
	if logger == nil {
		logger = log.Default()
	}
	return &Store{
		HistoryLimit: DefaultHistoryLimit,
		path:         path,
		logger:       logger.WithPrefix("store"),
	}
}

// DefaultPath returns the conventional location for the session file.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "chipdrill.json"
	}
	return filepath.Join(dir, "chipdrill", "sessions.json")
}

// Load reads the session file. A missing file is not an error: a
// fresh empty File is returned so first runs start clean.
func (s *Store) Load() (*File, error) {
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		s.logger.Debug("no session file, starting fresh", "path", s.path)
		return &File{SchemaVersion: SchemaVersion}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read session file: %w", err)
	}

	var f File
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse session file: %w", err)
	}

	if f.SchemaVersion > SchemaVersion {
		s.logger.Warn("session file written by a newer version",
			"file_version", f.SchemaVersion, "supported", SchemaVersion)
	}

	return &f, nil
}

// Save writes the session file atomically, stamping the schema
// version and timestamp, and creating the parent directory if needed.
func (s *Store) Save(f *File) error {
	f.SchemaVersion = SchemaVersion
	f.Timestamp = time.Now()

	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create session dir: %w", err)
		}
	}

	data, err := json.MarshalIndent(f, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode session file: %w", err)
	}

	if err := fileutil.WriteFileAtomic(s.path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write session file: %w", err)
	}

	s.logger.Debug("saved session file", "path", s.path, "history", len(f.History))
	return nil
}

// RecordSession folds a finished session's stats into the file: the
// latest score is replaced and the day's summary is merged into the
// rolling history, trimming the oldest entries past the limit.
func (s *Store) RecordSession(f *File, stats session.Stats) {
	f.Score = stats.Score
	f.Stats = stats

	day := stats.StartedAt.Format("2006-01-02")
	for i := range f.History {
		if f.History[i].Date == day {
			f.History[i].Hands += stats.Score.Total
			f.History[i].Correct += stats.Score.Correct
			if stats.Score.BestStreak > f.History[i].BestStreak {
				f.History[i].BestStreak = stats.Score.BestStreak
			}
			return
		}
	}

	f.History = append(f.History, DailySummary{
		Date:       day,
		Hands:      stats.Score.Total,
		Correct:    stats.Score.Correct,
		BestStreak: stats.Score.BestStreak,
	})

	if excess := len(f.History) - s.HistoryLimit; excess > 0 {
		f.History = f.History[excess:]
	}
}
