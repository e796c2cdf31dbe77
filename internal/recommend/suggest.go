package recommend

import (
	"fmt"
	"sort"
	"strings"
)

const (
	DefaultCutoff = 0.6
	DefaultLimit  = 3
)

// Suggestion lists the known genres that resemble one queried genre
type Suggestion struct {
	Genre   string
	Matches []string
}

// Suggester proposes known genres close to a queried one
type Suggester struct {
	Similarity SimilarityFunc
	Cutoff     float64 // minimum score, inclusive
	Limit      int     // candidates kept per query
}

// NewSuggester returns a Suggester using SequenceRatio with the default
// cutoff and limit
func NewSuggester() *Suggester {
	return &Suggester{
		Similarity: SequenceRatio,
		Cutoff:     DefaultCutoff,
		Limit:      DefaultLimit,
	}
}

// Validate checks the configuration
func (s *Suggester) Validate() error {
	if s.Similarity == nil {
		return fmt.Errorf("similarity function is required")
	}
	if s.Cutoff < 0 || s.Cutoff > 1 {
		return fmt.Errorf("cutoff must be in [0, 1], got %v", s.Cutoff)
	}
	if s.Limit <= 0 {
		return fmt.Errorf("limit must be positive, got %d", s.Limit)
	}
	return nil
}

type scored struct {
	genre string
	score float64
}

// Suggest scores every query against the candidate genres, candidate first.
// Queries without any candidate at or above the cutoff are left out of the
// result, and a repeated query is reported once. Candidates are ordered best
// first, ties keep the candidates' order.
func (s *Suggester) Suggest(queries, candidates []string) []Suggestion {
	var out []Suggestion
	seen := make(map[string]bool, len(queries))
	for _, query := range queries {
		if seen[query] {
			continue
		}
		seen[query] = true
		q := strings.ToLower(query)

		var hits []scored
		for _, c := range candidates {
			if score := s.Similarity(c, q); score >= s.Cutoff {
				hits = append(hits, scored{genre: c, score: score})
			}
		}
		if len(hits) == 0 {
			continue
		}

		sort.SliceStable(hits, func(i, j int) bool {
			return hits[i].score > hits[j].score
		})
		if len(hits) > s.Limit {
			hits = hits[:s.Limit]
		}

		matches := make([]string, len(hits))
		for i, h := range hits {
			matches[i] = h.genre
		}
		out = append(out, Suggestion{Genre: query, Matches: matches})
	}
	return out
}
