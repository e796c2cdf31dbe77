package moviecmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/lehigh-university-libraries/moviepicker/internal/document"
	"github.com/lehigh-university-libraries/moviepicker/internal/extract"
	"github.com/lehigh-university-libraries/moviepicker/internal/fetch"
	"github.com/lehigh-university-libraries/moviepicker/internal/genre"
	"github.com/lehigh-university-libraries/moviepicker/internal/report"
	"github.com/lehigh-university-libraries/moviepicker/internal/store"
)

func executeScrape(ctx context.Context, src Source, reportPath string, out io.Writer) (*report.ScrapeSummary, error) {
	src = src.resolve()
	st := store.New(src.StorePath)
	if err := st.Validate(); err != nil {
		return nil, fmt.Errorf("invalid store: %w", err)
	}
	slog.Info("Starting scrape", "url", src.URL, "store", st.Path())

	client := fetch.NewClient(src.URL)
	var cache *fetch.Cache
	if src.CacheDir != "" {
		cache = fetch.NewCache(src.CacheDir, src.Force)
	}

	page, err := cache.Fetch(ctx, client)
	if err != nil {
		return nil, err
	}

	doc, err := document.ParseBytes(page)
	if err != nil {
		return nil, err
	}

	result, err := extract.Extract(doc, genre.Default)
	if err != nil {
		return nil, err
	}

	if err := st.Save(result.Records); err != nil {
		return nil, fmt.Errorf("failed to save movies: %w", err)
	}

	summary := report.Summarize(src.URL, string(result.Strategy), st.Path(), result.Records, time.Now())
	slog.Info("Scrape complete",
		"strategy", result.Strategy,
		"movies", summary.Total,
		"genres", len(summary.Genres))

	if reportPath != "" {
		if err := summary.Save(reportPath); err != nil {
			slog.Warn("Failed to save scrape report", "path", reportPath, "err", err)
		} else {
			fmt.Fprintf(out, "Scrape report saved to: %s\n", reportPath)
		}
	}

	fmt.Fprintf(out, "Successfully scraped %d movies!\n", summary.Total)
	fmt.Fprintf(out, "Found genres: %s\n", strings.Join(summary.GenreNames(), ", "))

	return summary, nil
}
