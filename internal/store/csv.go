package store

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/lehigh-university-libraries/moviepicker/internal/movies"
)

func (s *Store) saveCSV(records []movies.Record) error {
	file, err := os.Create(s.path)
	if err != nil {
		return fmt.Errorf("failed to create store file: %w", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	if err := writer.Write(Columns); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	for _, r := range records {
		if err := writer.Write([]string{r.Title, r.Genre, r.Rating, r.Year}); err != nil {
			return fmt.Errorf("failed to write row: %w", err)
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("failed to flush store: %w", err)
	}

	return nil
}

func (s *Store) loadCSV() ([]movies.Record, error) {
	file, err := os.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("failed to open store file: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	index := make(map[string]int, len(header))
	for i, name := range header {
		index[name] = i
	}
	for _, name := range Columns {
		if _, ok := index[name]; !ok {
			return nil, fmt.Errorf("store is missing column %q", name)
		}
	}

	field := func(row []string, name string) string {
		if i := index[name]; i < len(row) {
			return row[i]
		}
		return ""
	}

	var records []movies.Record
	line := 1
	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		line++
		if err != nil {
			return nil, fmt.Errorf("failed to parse CSV at line %d: %w", line, err)
		}
		records = append(records, movies.Record{
			Title:  field(row, "Title"),
			Genre:  field(row, "Genre"),
			Rating: field(row, "Rating"),
			Year:   field(row, "Year"),
		})
	}

	return records, nil
}
