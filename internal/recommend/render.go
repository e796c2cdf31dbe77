package recommend

import (
	"fmt"
	"io"
	"strings"

	"github.com/lehigh-university-libraries/moviepicker/internal/movies"
)

// RenderOutcome prints the queried genres, then picks when there are matches
// and suggestions otherwise
func RenderOutcome(w io.Writer, o *Outcome) {
	fmt.Fprintf(w, "\nSearching for movies in: %s\n", strings.Join(o.Genres, ", "))
	if !o.Found() {
		RenderSuggestions(w, o.Suggestions)
		return
	}
	fmt.Fprintf(w, "\nGreat! Found %d movies matching your preferences.\n", o.Matched)
	fmt.Fprintf(w, "Here are %d random recommendations:\n\n", len(o.Picks))
	RenderRecommendations(w, o.Picks)
}

// RenderRecommendations prints records as a 1-indexed list. Empty years and
// the unrated sentinel are left out.
func RenderRecommendations(w io.Writer, picks []movies.Record) {
	for i, r := range picks {
		fmt.Fprintf(w, "%d. %s\n", i+1, r.Title)
		fmt.Fprintf(w, "   Genre: %s\n", r.Genre)
		if r.HasYear() {
			fmt.Fprintf(w, "   Year: %s\n", r.Year)
		}
		if r.HasRating() {
			fmt.Fprintf(w, "   Rating: %s\n", r.Rating)
		}
		fmt.Fprintln(w)
	}
}

// RenderSuggestions prints the no-match message with any close genres
func RenderSuggestions(w io.Writer, suggestions []Suggestion) {
	fmt.Fprintln(w, "\nNo movies found for your genre(s).")
	if len(suggestions) > 0 {
		fmt.Fprintln(w, "Did you mean:")
		for _, s := range suggestions {
			fmt.Fprintf(w, "  '%s': %s\n", s.Genre, strings.Join(s.Matches, ", "))
		}
	}
	fmt.Fprintln(w, "Try again with different genres!")
}

// RenderGenreColumns prints genres three per line, each padded to 20 columns
func RenderGenreColumns(w io.Writer, genres []string) {
	for i, g := range genres {
		fmt.Fprintf(w, "%-20s", g)
		if (i+1)%3 == 0 {
			fmt.Fprintln(w)
		}
	}
	if len(genres)%3 != 0 {
		fmt.Fprintln(w)
	}
}
