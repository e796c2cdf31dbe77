// Package report writes a YAML summary of a scrape
package report

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/lehigh-university-libraries/moviepicker/internal/movies"
)

// GenreCount is the number of records found for one genre
type GenreCount struct {
	Genre string `yaml:"genre"`
	Count int    `yaml:"count"`
}

// ScrapeSummary describes one scrape run
type ScrapeSummary struct {
	Source    string       `yaml:"source"`
	Strategy  string       `yaml:"strategy"`
	Store     string       `yaml:"store"`
	Timestamp string       `yaml:"timestamp"`
	Total     int          `yaml:"total"`
	Genres    []GenreCount `yaml:"genres"`
}

// Summarize counts records per genre, genres sorted by name
func Summarize(source, strategy, store string, records []movies.Record, now time.Time) *ScrapeSummary {
	counts := make(map[string]int)
	for _, r := range records {
		counts[r.Genre]++
	}

	genres := make([]GenreCount, 0, len(counts))
	for g, n := range counts {
		genres = append(genres, GenreCount{Genre: g, Count: n})
	}
	sort.Slice(genres, func(i, j int) bool { return genres[i].Genre < genres[j].Genre })

	return &ScrapeSummary{
		Source:    source,
		Strategy:  strategy,
		Store:     store,
		Timestamp: now.Format("2006-01-02_15-04-05"),
		Total:     len(records),
		Genres:    genres,
	}
}

// GenreNames returns the summarized genres in order
func (s *ScrapeSummary) GenreNames() []string {
	names := make([]string, len(s.Genres))
	for i, g := range s.Genres {
		names[i] = g.Genre
	}
	return names
}

// Save writes the summary as YAML to path
func (s *ScrapeSummary) Save(path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create report directory: %w", err)
		}
	}

	data, err := yaml.Marshal(s)
	if err != nil {
		return fmt.Errorf("failed to marshal YAML: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write YAML file: %w", err)
	}

	return nil
}
