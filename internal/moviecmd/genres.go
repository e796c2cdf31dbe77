package moviecmd

import (
	"fmt"
	"io"

	"github.com/lehigh-university-libraries/moviepicker/internal/recommend"
	"github.com/lehigh-university-libraries/moviepicker/internal/store"
)

func executeGenres(src Source, out io.Writer) error {
	src = src.resolve()

	records, err := store.New(src.StorePath).LoadClean()
	if err != nil {
		return err
	}

	for _, g := range recommend.SortedGenres(records) {
		fmt.Fprintln(out, g)
	}
	return nil
}

func executeExport(src Source, outPath string, out io.Writer) error {
	src = src.resolve()

	records, err := store.New(src.StorePath).LoadClean()
	if err != nil {
		return err
	}

	if err := store.New(outPath).Save(records); err != nil {
		return fmt.Errorf("failed to export movies: %w", err)
	}

	fmt.Fprintf(out, "Exported %d movies to %s\n", len(records), outPath)
	return nil
}
