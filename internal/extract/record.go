package extract

import (
	"regexp"
	"strings"

	"github.com/lehigh-university-libraries/moviepicker/internal/movies"
)

var (
	// Title (1994)
	titleYearPattern = regexp.MustCompile(`^(.*?)\s+\((\d{4})\)`)

	// "Citizen Kane is ...", "Casablanca won ..."
	narrativePattern = regexp.MustCompile(`^([^.!?]+?)(?:\s+was|\s+is|\s+has been|\s+won|\s+received)`)

	parentheticalPattern = regexp.MustCompile(`\s*\([^)]*\)\s*`)
	centuryYearPattern   = regexp.MustCompile(`\b(19|20)\d{2}\b`)
)

// ExtractRecord pulls a record out of one list item's text. The terse
// "Title (Year)" form is tried first, then a prose sentence naming the film.
func ExtractRecord(text, genre string) (movies.Record, bool) {
	if m := titleYearPattern.FindStringSubmatch(text); m != nil {
		return movies.Record{
			Title:  strings.TrimSpace(m[1]),
			Genre:  genre,
			Rating: movies.Unrated,
			Year:   m[2],
		}, true
	}

	if m := narrativePattern.FindStringSubmatch(text); m != nil {
		title := strings.TrimSpace(m[1])
		title = strings.TrimSpace(parentheticalPattern.ReplaceAllString(title, " "))

		// the year comes from anywhere in the item, not only the captured clause
		year := centuryYearPattern.FindString(text)

		if len(title) > 2 {
			return movies.Record{
				Title:  title,
				Genre:  genre,
				Rating: movies.Unrated,
				Year:   year,
			}, true
		}
	}

	return movies.Record{}, false
}
