package recommend

import (
	"bytes"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lehigh-university-libraries/moviepicker/internal/movies"
)

func newTestEngine(records []movies.Record, similarityCalls *int) *Engine {
	e := NewEngine(records)
	e.Sampler = NewSampler(rand.NewPCG(9, 9))
	e.Suggester.Similarity = func(a, b string) float64 {
		*similarityCalls++
		return SequenceRatio(a, b)
	}
	return e
}

func TestRecommendMatchesSkipSuggestions(t *testing.T) {
	calls := 0
	e := newTestEngine(catalog, &calls)

	outcome := e.Recommend([]string{"action"}, 5)

	assert.True(t, outcome.Found())
	assert.Equal(t, 2, outcome.Matched)
	assert.ElementsMatch(t, []movies.Record{catalog[0], catalog[1]}, outcome.Picks)
	assert.Empty(t, outcome.Suggestions)
	assert.Zero(t, calls)
}

func TestRecommendNoMatchSuggests(t *testing.T) {
	calls := 0
	e := newTestEngine(catalog, &calls)

	outcome := e.Recommend([]string{"dramma"}, 5)

	assert.False(t, outcome.Found())
	assert.Empty(t, outcome.Picks)
	assert.NotZero(t, calls)
	assert.Equal(t, []Suggestion{{Genre: "dramma", Matches: []string{"drama"}}}, outcome.Suggestions)
}

func TestRenderOutcome(t *testing.T) {
	var buf bytes.Buffer
	RenderOutcome(&buf, &Outcome{
		Genres:  []string{"action", "war"},
		Matched: 3,
		Picks: []movies.Record{
			{Title: "Heat", Genre: "action", Rating: movies.Unrated, Year: "1995"},
			{Title: "Untitled", Genre: "action", Rating: "7.5", Year: ""},
		},
	})

	expected := "\nSearching for movies in: action, war\n" +
		"\nGreat! Found 3 movies matching your preferences.\n" +
		"Here are 2 random recommendations:\n\n" +
		"1. Heat\n   Genre: action\n   Year: 1995\n\n" +
		"2. Untitled\n   Genre: action\n   Rating: 7.5\n\n"
	assert.Equal(t, expected, buf.String())
}

func TestRenderSuggestions(t *testing.T) {
	var buf bytes.Buffer
	RenderOutcome(&buf, &Outcome{
		Genres:      []string{"horor"},
		Suggestions: []Suggestion{{Genre: "horor", Matches: []string{"horror", "humor"}}},
	})

	assert.Equal(t,
		"\nSearching for movies in: horor\n\nNo movies found for your genre(s).\nDid you mean:\n  'horor': horror, humor\nTry again with different genres!\n",
		buf.String())

	buf.Reset()
	RenderSuggestions(&buf, nil)
	assert.Equal(t, "\nNo movies found for your genre(s).\nTry again with different genres!\n", buf.String())
}

func TestRenderGenreColumns(t *testing.T) {
	var buf bytes.Buffer
	RenderGenreColumns(&buf, []string{"action", "comedy", "drama", "war"})

	lines := bytes.Split(bytes.TrimSuffix(buf.Bytes(), []byte("\n")), []byte("\n"))
	require.Len(t, lines, 2)
	assert.Len(t, lines[0], 60)
	assert.Equal(t, "war                 ", string(lines[1]))
}
