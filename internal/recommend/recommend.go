package recommend

import (
	"log/slog"

	"github.com/lehigh-university-libraries/moviepicker/internal/movies"
)

// DefaultCount is how many movies a recommendation returns when unspecified
const DefaultCount = 5

// Outcome is either a set of picks or, when no record matched, suggestions
type Outcome struct {
	Genres      []string
	Matched     int
	Picks       []movies.Record
	Suggestions []Suggestion
}

// Found reports whether any record matched the queried genres
func (o *Outcome) Found() bool {
	return o.Matched > 0
}

// Engine ties the filter, sampler and suggester together
type Engine struct {
	Records   []movies.Record
	Sampler   *Sampler
	Suggester *Suggester
}

// NewEngine builds an engine over cleaned records with default settings
func NewEngine(records []movies.Record) *Engine {
	return &Engine{
		Records:   records,
		Sampler:   NewSampler(nil),
		Suggester: NewSuggester(),
	}
}

// Recommend picks up to n movies matching any of the genres. Suggestions are
// computed only when nothing matches.
func (e *Engine) Recommend(genres []string, n int) *Outcome {
	outcome := &Outcome{Genres: genres}

	filtered := Filter(e.Records, genres)
	if len(filtered) > 0 {
		outcome.Matched = len(filtered)
		outcome.Picks = e.Sampler.Sample(filtered, n)
		slog.Debug("Genre filter matched", "genres", genres, "matched", outcome.Matched, "picked", len(outcome.Picks))
		return outcome
	}

	outcome.Suggestions = e.Suggester.Suggest(genres, Genres(e.Records))
	slog.Debug("No genre match", "genres", genres, "suggestions", len(outcome.Suggestions))
	return outcome
}
