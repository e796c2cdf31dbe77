// Package store persists movie records as a four-column table and cleans them
// on load.
package store

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/lehigh-university-libraries/moviepicker/internal/movies"
)

// ErrUnavailable means there is no usable store: it is missing, unreadable,
// or empty after cleaning. Callers should report it and stop.
var ErrUnavailable = errors.New("no movies available")

// Columns is the header of every persisted store
var Columns = []string{"Title", "Genre", "Rating", "Year"}

// DefaultPath is where the store lives when nothing else is configured
const DefaultPath = "movies.csv"

// Store reads and writes records at a path whose extension picks the format
type Store struct {
	path string
}

// New creates a store for the given path
func New(path string) *Store {
	return &Store{path: path}
}

// Path returns the file backing the store
func (s *Store) Path() string {
	return s.path
}

// Validate reports whether the path's extension names a supported format
func (s *Store) Validate() error {
	_, err := s.format()
	return err
}

func (s *Store) format() (string, error) {
	ext := strings.ToLower(filepath.Ext(s.path))
	switch ext {
	case ".csv", ".parquet", ".jsonl":
		return ext, nil
	default:
		return "", fmt.Errorf("unsupported file format: %s (supported: .csv, .parquet, .jsonl)", ext)
	}
}

// Save writes all records, replacing any previous contents
func (s *Store) Save(records []movies.Record) error {
	format, err := s.format()
	if err != nil {
		return err
	}

	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create store directory: %w", err)
		}
	}

	slog.Debug("Saving store", "path", s.path, "format", format, "records", len(records))

	switch format {
	case ".parquet":
		return s.saveParquet(records)
	case ".jsonl":
		return s.saveJSONL(records)
	default:
		return s.saveCSV(records)
	}
}

// Load reads every persisted record as stored, without cleaning
func (s *Store) Load() ([]movies.Record, error) {
	format, err := s.format()
	if err != nil {
		return nil, err
	}

	slog.Debug("Loading store", "path", s.path, "format", format)

	switch format {
	case ".parquet":
		return s.loadParquet()
	case ".jsonl":
		return s.loadJSONL()
	default:
		return s.loadCSV()
	}
}

// Exists reports whether the store holds at least one row
func (s *Store) Exists() bool {
	if _, err := os.Stat(s.path); err != nil {
		return false
	}
	records, err := s.Load()
	if err != nil {
		slog.Warn("Existing store is unreadable", "path", s.path, "err", err)
		return false
	}
	return len(records) > 0
}

// LoadClean loads the store and cleans it. Every failure is reported as
// ErrUnavailable.
func (s *Store) LoadClean() ([]movies.Record, error) {
	if _, err := os.Stat(s.path); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnavailable, err)
	}

	records, err := s.Load()
	if err != nil {
		return nil, fmt.Errorf("%w: failed to load %s: %w", ErrUnavailable, s.path, err)
	}

	return Clean(records)
}

// Clean drops rows without a title or genre, normalizes genres and collapses
// duplicate (title, year) pairs keeping the first. Cleaning its own output
// changes nothing.
func Clean(records []movies.Record) ([]movies.Record, error) {
	cleaned := make([]movies.Record, 0, len(records))
	for _, r := range records {
		if strings.TrimSpace(r.Title) == "" || strings.TrimSpace(r.Genre) == "" {
			continue
		}
		r.Genre = NormalizeGenre(r.Genre)
		cleaned = append(cleaned, r)
	}

	cleaned = movies.Dedupe(cleaned)
	if len(cleaned) == 0 {
		return nil, ErrUnavailable
	}

	return cleaned, nil
}

// NormalizeGenre lowercases a genre and removes its spaces
func NormalizeGenre(genre string) string {
	return strings.ReplaceAll(strings.ToLower(genre), " ", "")
}
