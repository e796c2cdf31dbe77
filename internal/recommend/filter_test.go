package recommend

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lehigh-university-libraries/moviepicker/internal/movies"
)

func rec(title, genre, year string) movies.Record {
	return movies.Record{Title: title, Genre: genre, Rating: movies.Unrated, Year: year}
}

var catalog = []movies.Record{
	rec("Die Hard", "action", "1988"),
	rec("Rush Hour", "actioncomedy", "1998"),
	rec("Casablanca", "drama", "1942"),
	rec("Alien", "sciencefiction", "1979"),
	rec("Mystery Film", "unknown", ""),
	rec("Split Genres", "horror, Thriller", "2016"),
}

func TestFilterSubstring(t *testing.T) {
	got := Filter(catalog, []string{"action"})

	assert.Equal(t, []movies.Record{catalog[0], catalog[1]}, got)
}

func TestFilter(t *testing.T) {
	tests := []struct {
		name     string
		genres   []string
		expected []string
	}{
		{name: "or semantics", genres: []string{"drama", "horror"}, expected: []string{"Casablanca", "Split Genres"}},
		{name: "query normalized", genres: []string{" Science Fiction "}, expected: []string{"Alien"}},
		{name: "case of stored genre ignored", genres: []string{"thriller"}, expected: []string{"Split Genres"}},
		{name: "no match", genres: []string{"western"}, expected: nil},
		{name: "blank queries ignored", genres: []string{"", "  "}, expected: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var titles []string
			for _, r := range Filter(catalog, tt.genres) {
				titles = append(titles, r.Title)
			}
			assert.Equal(t, tt.expected, titles)
		})
	}
}

func TestGenres(t *testing.T) {
	assert.Equal(t,
		[]string{"action", "actioncomedy", "drama", "sciencefiction", "horror", "thriller"},
		Genres(catalog))
	assert.Equal(t,
		[]string{"action", "actioncomedy", "drama", "horror", "sciencefiction", "thriller"},
		SortedGenres(catalog))
}

func TestGenresSkipsPlaceholders(t *testing.T) {
	records := []movies.Record{rec("A", "N/A", ""), rec("B", "Unknown", ""), rec("C", " , ", "")}
	assert.Empty(t, Genres(records))
}

func TestParseGenres(t *testing.T) {
	assert.Equal(t, []string{"comedy", "horror"}, ParseGenres(" comedy, ,horror ,"))
	assert.Nil(t, ParseGenres("  "))
}
