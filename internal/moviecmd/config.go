package moviecmd

import (
	"os"

	"github.com/lehigh-university-libraries/moviepicker/internal/fetch"
	"github.com/lehigh-university-libraries/moviepicker/internal/store"
)

const (
	EnvStore    = "MOVIEPICKER_STORE"
	EnvURL      = "MOVIEPICKER_URL"
	EnvCacheDir = "MOVIEPICKER_CACHE_DIR"
)

// Source describes where to scrape from and where to keep the result. Empty
// fields are filled from the environment, then from defaults.
type Source struct {
	StorePath string
	URL       string
	CacheDir  string
	Force     bool
}

func (s Source) resolve() Source {
	s.StorePath = firstNonEmpty(s.StorePath, os.Getenv(EnvStore), store.DefaultPath)
	s.URL = firstNonEmpty(s.URL, os.Getenv(EnvURL), fetch.DefaultURL)
	s.CacheDir = firstNonEmpty(s.CacheDir, os.Getenv(EnvCacheDir))
	return s
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
