package movies

const (
	// Unrated is the rating stored when no rating source exists
	Unrated = "N/A"

	// GeneralGenre is the label for records found outside any genre section
	GeneralGenre = "General"
)

// Record represents a single movie extracted from the source document
type Record struct {
	Title  string `json:"Title" parquet:"Title"`
	Genre  string `json:"Genre" parquet:"Genre"`
	Rating string `json:"Rating" parquet:"Rating"`
	Year   string `json:"Year" parquet:"Year"` // 4 digits or empty
}

// Key identifies a record for deduplication
type Key struct {
	Title string
	Year  string
}

// Key returns the (title, year) pair used to collapse duplicates
func (r Record) Key() Key {
	return Key{Title: r.Title, Year: r.Year}
}

// HasYear reports whether the record carries a year worth displaying
func (r Record) HasYear() bool {
	return r.Year != ""
}

// HasRating reports whether the record carries a real rating
func (r Record) HasRating() bool {
	return r.Rating != "" && r.Rating != Unrated
}

// Dedupe drops records whose (title, year) pair was already seen and records
// with an empty title. The first occurrence wins and order is preserved.
func Dedupe(records []Record) []Record {
	seen := make(map[Key]struct{}, len(records))
	out := make([]Record, 0, len(records))
	for _, r := range records {
		if r.Title == "" {
			continue
		}
		if _, ok := seen[r.Key()]; ok {
			continue
		}
		seen[r.Key()] = struct{}{}
		out = append(out, r)
	}
	return out
}
