package cmd

import (
	"github.com/lehigh-university-libraries/moviepicker/internal/moviecmd"
	"github.com/spf13/cobra"
)

func newMovieCmds() []*cobra.Command {
	return []*cobra.Command{
		moviecmd.NewScrapeCmd(),
		moviecmd.NewRecommendCmd(),
		moviecmd.NewGenresCmd(),
		moviecmd.NewExportCmd(),
	}
}
