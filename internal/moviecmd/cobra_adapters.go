package moviecmd

import (
	"github.com/spf13/cobra"
)

func addSourceFlags(cmd *cobra.Command, src *Source) {
	cmd.Flags().StringVar(&src.StorePath, "store", "", "Movie store file (.csv, .parquet or .jsonl); defaults to $"+EnvStore+" or movies.csv")
	cmd.Flags().StringVar(&src.URL, "url", "", "Page to scrape; defaults to $"+EnvURL+" or the Wikipedia list of films voted the best")
	cmd.Flags().StringVar(&src.CacheDir, "cache-dir", "", "Keep a copy of the fetched page here; defaults to $"+EnvCacheDir)
	cmd.Flags().BoolVar(&src.Force, "force", false, "Refetch the page even when a cached copy exists")
}

// NewScrapeCmd creates the scrape command
func NewScrapeCmd() *cobra.Command {
	var src Source
	var reportPath string

	cmd := &cobra.Command{
		Use:   "scrape",
		Short: "Scrape movies from the source page into the store",
		Long: `Fetch the source page, extract movies with their genres and save them to the store.

Movies are attributed to the genre of the nearest preceding section heading.
When the page has no recognizable genre sections every list item is scanned
instead and movies get the "General" genre.`,
		Example: `  # Scrape into movies.csv
  moviepicker scrape

  # Scrape into parquet and keep a cached copy of the page
  moviepicker scrape --store data/movies.parquet --cache-dir ~/.cache/moviepicker

  # Write a YAML summary of the run
  moviepicker scrape --report reports/scrape.yaml`,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := executeScrape(cmd.Context(), src, reportPath, cmd.OutOrStdout())
			return err
		},
	}

	addSourceFlags(cmd, &src)
	cmd.Flags().StringVar(&reportPath, "report", "", "Path to write a YAML scrape summary")

	return cmd
}

// NewRecommendCmd creates the recommend command
func NewRecommendCmd() *cobra.Command {
	opts := DefaultRecommendOptions()

	cmd := &cobra.Command{
		Use:   "recommend",
		Short: "Recommend random movies from your favorite genres",
		Long: `Recommend movies matching one or more genres.

The store is scraped first when it does not exist or is empty. Without --genres
an interactive prompt reads comma-separated genres until 'quit', 'exit' or 'q'.
When no movie matches, similar genre names are suggested.`,
		Example: `  # Interactive session
  moviepicker recommend

  # One-shot, three picks
  moviepicker recommend --genres "comedy, horror" --count 3`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return executeRecommend(cmd.Context(), opts, cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}

	addSourceFlags(cmd, &opts.Source)
	cmd.Flags().IntVarP(&opts.Count, "count", "n", opts.Count, "Number of movies to recommend")
	cmd.Flags().Float64Var(&opts.Cutoff, "cutoff", opts.Cutoff, "Minimum similarity (0-1) for a genre suggestion")
	cmd.Flags().IntVar(&opts.Suggestions, "suggestions", opts.Suggestions, "Genre suggestions shown per unmatched genre")
	cmd.Flags().StringVarP(&opts.Genres, "genres", "g", "", "Comma-separated genres; skips the interactive prompt")
	cmd.Flags().Uint64Var(&opts.Seed, "seed", 0, "Random seed for reproducible picks (0 for random)")

	return cmd
}

// NewGenresCmd creates the genres command
func NewGenresCmd() *cobra.Command {
	var src Source

	cmd := &cobra.Command{
		Use:   "genres",
		Short: "List the genres available in the store",
		RunE: func(cmd *cobra.Command, args []string) error {
			return executeGenres(src, cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVar(&src.StorePath, "store", "", "Movie store file; defaults to $"+EnvStore+" or movies.csv")

	return cmd
}

// NewExportCmd creates the export command
func NewExportCmd() *cobra.Command {
	var src Source
	var outPath string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Copy the cleaned store into another format",
		Example: `  moviepicker export --out movies.parquet
  moviepicker export --store movies.parquet --out movies.jsonl`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return executeExport(src, outPath, cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVar(&src.StorePath, "store", "", "Movie store file to read; defaults to $"+EnvStore+" or movies.csv")
	cmd.Flags().StringVar(&outPath, "out", "", "Destination file (.csv, .parquet or .jsonl)")
	_ = cmd.MarkFlagRequired("out")

	return cmd
}
