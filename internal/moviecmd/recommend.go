package moviecmd

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"
	"strings"

	"github.com/lehigh-university-libraries/moviepicker/internal/movies"
	"github.com/lehigh-university-libraries/moviepicker/internal/recommend"
	"github.com/lehigh-university-libraries/moviepicker/internal/store"
)

// RecommendOptions configures a recommendation session
type RecommendOptions struct {
	Source Source
	Count  int
	Genres string // one-shot query; empty starts the interactive loop
	Seed   uint64 // 0 picks a random seed

	Cutoff      float64 // minimum similarity for a genre suggestion
	Suggestions int     // suggestions kept per unmatched genre
}

const maxInputLine = 10 * 1024 * 1024

var quitWords = map[string]bool{"quit": true, "exit": true, "q": true}

// DefaultRecommendOptions returns the settings used when no flag overrides them
func DefaultRecommendOptions() RecommendOptions {
	return RecommendOptions{
		Count:       recommend.DefaultCount,
		Cutoff:      recommend.DefaultCutoff,
		Suggestions: recommend.DefaultLimit,
	}
}

func executeRecommend(ctx context.Context, opts RecommendOptions, in io.Reader, out io.Writer) error {
	opts.Source = opts.Source.resolve()
	if err := store.New(opts.Source.StorePath).Validate(); err != nil {
		return fmt.Errorf("invalid store: %w", err)
	}

	records, err := loadOrScrape(ctx, opts.Source, out)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "Loaded %d movies successfully!\n", len(records))
	printGenres(out, records)

	engine := recommend.NewEngine(records)
	engine.Suggester.Cutoff = opts.Cutoff
	engine.Suggester.Limit = opts.Suggestions
	if err := engine.Suggester.Validate(); err != nil {
		return fmt.Errorf("invalid suggestion settings: %w", err)
	}
	if opts.Seed != 0 {
		engine.Sampler = recommend.NewSampler(rand.NewPCG(opts.Seed, opts.Seed))
	}
	if opts.Count <= 0 {
		opts.Count = recommend.DefaultCount
	}

	if opts.Genres != "" {
		genres := recommend.ParseGenres(opts.Genres)
		if len(genres) == 0 {
			return fmt.Errorf("no valid genres in %q", opts.Genres)
		}
		recommendOnce(out, engine, genres, opts.Count)
		return nil
	}

	return interactiveLoop(in, out, engine, opts.Count)
}

// loadOrScrape uses the existing store when it has rows and scrapes otherwise
func loadOrScrape(ctx context.Context, src Source, out io.Writer) ([]movies.Record, error) {
	st := store.New(src.StorePath)
	if st.Exists() {
		slog.Info("Using existing data", "store", st.Path())
		fmt.Fprintf(out, "Using existing data from %s. Delete it or run scrape to refresh.\n", st.Path())
	} else {
		fmt.Fprintln(out, "No existing data found, scraping...")
		if _, err := executeScrape(ctx, src, "", out); err != nil {
			return nil, fmt.Errorf("scraping failed: %w", err)
		}
	}

	return st.LoadClean()
}

func printGenres(out io.Writer, records []movies.Record) {
	genres := recommend.SortedGenres(records)
	if len(genres) == 0 {
		fmt.Fprintln(out, "\nNo specific genres detected. You can try searching for 'general'.")
		return
	}
	fmt.Fprintf(out, "\nAVAILABLE GENRES (%d total)\n", len(genres))
	fmt.Fprintln(out, strings.Repeat("-", 30))
	recommend.RenderGenreColumns(out, genres)
}

func recommendOnce(out io.Writer, engine *recommend.Engine, genres []string, count int) {
	recommend.RenderOutcome(out, engine.Recommend(genres, count))
}

func interactiveLoop(in io.Reader, out io.Writer, engine *recommend.Engine, count int) error {
	fmt.Fprintln(out, "\nEnter your preferred genres (comma-separated) to get recommendations!")
	fmt.Fprintln(out, "Examples: 'action', 'comedy, horror', 'western, war'")

	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 64*1024), maxInputLine)
	for {
		fmt.Fprint(out, "\nEnter genre(s) (or 'quit' to exit): ")
		if !scanner.Scan() {
			break
		}

		input := strings.TrimSpace(scanner.Text())
		if quitWords[strings.ToLower(input)] {
			break
		}
		if input == "" {
			fmt.Fprintln(out, "Please enter at least one genre.")
			continue
		}

		genres := recommend.ParseGenres(input)
		if len(genres) == 0 {
			fmt.Fprintln(out, "Please enter valid genres.")
			continue
		}

		recommendOnce(out, engine, genres, count)
		fmt.Fprintln(out, strings.Repeat("-", 50))
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}

	fmt.Fprintln(out, "\nThanks for using moviepicker! Goodbye!")
	return nil
}
