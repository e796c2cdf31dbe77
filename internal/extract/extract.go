// Package extract turns a flattened heading/list document into movie records.
package extract

import (
	"errors"
	"log/slog"

	"github.com/lehigh-university-libraries/moviepicker/internal/document"
	"github.com/lehigh-university-libraries/moviepicker/internal/genre"
	"github.com/lehigh-university-libraries/moviepicker/internal/movies"
)

// ErrNoRecords is returned when neither strategy finds a single movie
var ErrNoRecords = errors.New("no movies found in document")

// Strategy names the pass that produced a result
type Strategy string

const (
	StrategyHeading Strategy = "heading"
	StrategyGeneral Strategy = "general"
)

// Result holds the records of the one strategy that succeeded
type Result struct {
	Strategy Strategy
	Records  []movies.Record
}

// Extract runs the genre-scoped heading pass and falls back to the
// document-wide pass only when the first finds nothing. Results of the two
// passes are never combined. Records are deduplicated on (title, year).
func Extract(doc *document.Document, vocab genre.Vocabulary) (*Result, error) {
	records := ExtractByHeading(doc.Nodes(), vocab)
	if len(records) > 0 {
		return &Result{Strategy: StrategyHeading, Records: movies.Dedupe(records)}, nil
	}

	slog.Info("No genre-specific movies found, using general approach")
	records = ExtractGeneral(doc.ListItems())
	if len(records) > 0 {
		return &Result{Strategy: StrategyGeneral, Records: movies.Dedupe(records)}, nil
	}

	return nil, ErrNoRecords
}
