package extract

import (
	"log/slog"

	"github.com/lehigh-university-libraries/moviepicker/internal/document"
	"github.com/lehigh-university-libraries/moviepicker/internal/genre"
	"github.com/lehigh-university-libraries/moviepicker/internal/movies"
)

// ExtractByHeading walks the node stream once, tracking the genre of the most
// recent heading that named one. Lists seen before any such heading are skipped.
func ExtractByHeading(nodes []document.Node, vocab genre.Vocabulary) []movies.Record {
	var records []movies.Record
	current := movies.GeneralGenre

	for _, node := range nodes {
		switch node.Kind {
		case document.KindHeading:
			if label, ok := vocab.Match(node.Text); ok {
				current = label
				slog.Debug("Found genre section", "level", node.Level, "heading", genre.NormalizeHeading(node.Text), "genre", label)
			}
		case document.KindList:
			if current == movies.GeneralGenre {
				continue
			}
			count := 0
			for _, item := range node.Items {
				if record, ok := ExtractRecord(item, current); ok {
					records = append(records, record)
					count++
				}
			}
			if count > 0 {
				slog.Debug("Extracted movies from list", "genre", current, "count", count)
			}
		}
	}

	return records
}
