// Package recommend selects movies by genre and suggests close genre names
// when nothing matches.
package recommend

import (
	"sort"
	"strings"

	"github.com/lehigh-university-libraries/moviepicker/internal/movies"
	"github.com/lehigh-university-libraries/moviepicker/internal/store"
)

// Filter returns every record whose genre contains any of the queried genres.
// Queries are normalized the same way stored genres are.
func Filter(records []movies.Record, genres []string) []movies.Record {
	queries := make([]string, 0, len(genres))
	for _, g := range genres {
		if q := store.NormalizeGenre(strings.TrimSpace(g)); q != "" {
			queries = append(queries, q)
		}
	}

	var matched []movies.Record
	for _, r := range records {
		genre := strings.ToLower(r.Genre)
		for _, q := range queries {
			if strings.Contains(genre, q) {
				matched = append(matched, r)
				break
			}
		}
	}
	return matched
}

// Genres lists the distinct genres present in the records in first-seen
// order. Comma separated genre values count as several genres. Placeholder
// values are left out.
func Genres(records []movies.Record) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, r := range records {
		for _, part := range strings.Split(r.Genre, ",") {
			g := strings.ToLower(strings.TrimSpace(part))
			if g == "" || g == "unknown" || g == "n/a" {
				continue
			}
			if _, ok := seen[g]; ok {
				continue
			}
			seen[g] = struct{}{}
			out = append(out, g)
		}
	}
	return out
}

// SortedGenres is Genres in alphabetical order, for display
func SortedGenres(records []movies.Record) []string {
	genres := Genres(records)
	sort.Strings(genres)
	return genres
}

// ParseGenres splits comma separated user input into trimmed, non-empty terms
func ParseGenres(input string) []string {
	var out []string
	for _, part := range strings.Split(input, ",") {
		if g := strings.TrimSpace(part); g != "" {
			out = append(out, g)
		}
	}
	return out
}
