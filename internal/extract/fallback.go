package extract

import (
	"regexp"
	"strings"

	"github.com/lehigh-university-libraries/moviepicker/internal/movies"
)

var generalPatterns = []*regexp.Regexp{
	regexp.MustCompile(`^(.*?)\s+\((\d{4})\)`), // Title (Year)
	regexp.MustCompile(`^(.*?)\s*-\s*(\d{4})`), // Title - Year
	regexp.MustCompile(`^(.*?),\s*(\d{4})`),    // Title, Year
}

// structural words that mark navigation or category entries
var stopWords = []string{"list", "category", "section", "see also"}

// ExtractGeneral scans list items without regard to headings. Every record it
// returns carries the generic genre label.
func ExtractGeneral(items []string) []movies.Record {
	var records []movies.Record

	for _, text := range items {
		for _, pattern := range generalPatterns {
			m := pattern.FindStringSubmatch(text)
			if m == nil {
				continue
			}

			title := strings.TrimSpace(m[1])
			if rejectTitle(title) {
				// a rejected candidate still lets the next pattern try
				continue
			}

			records = append(records, movies.Record{
				Title:  title,
				Genre:  movies.GeneralGenre,
				Rating: movies.Unrated,
				Year:   m[2],
			})
			break
		}
	}

	return records
}

func rejectTitle(title string) bool {
	if len(title) < 3 {
		return true
	}
	lower := strings.ToLower(title)
	for _, word := range stopWords {
		if strings.Contains(lower, word) {
			return true
		}
	}
	return false
}
