// Package fetch downloads the source page. Failures are reported once and
// never retried.
package fetch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"
)

const (
	// DefaultURL is the page the movie list is scraped from
	DefaultURL = "https://en.wikipedia.org/wiki/List_of_films_voted_the_best"

	DefaultTimeout   = 30 * time.Second
	DefaultUserAgent = "moviepicker/0.1 (+https://github.com/lehigh-university-libraries/moviepicker)"
)

// ErrFetch wraps every failure to obtain the page
var ErrFetch = errors.New("fetch failed")

// Client fetches a single HTML page
type Client struct {
	URL        string
	UserAgent  string
	httpClient *http.Client
}

// NewClient creates a client for url with the default timeout
func NewClient(url string) *Client {
	if url == "" {
		url = DefaultURL
	}
	return &Client{
		URL:       url,
		UserAgent: DefaultUserAgent,
		httpClient: &http.Client{
			Timeout: DefaultTimeout,
		},
	}
}

// Fetch returns the page body. Any transport error or non-200 status fails.
func (c *Client) Fetch(ctx context.Context) ([]byte, error) {
	slog.Info("Fetching page", "url", c.URL)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.URL, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %w", ErrFetch, err)
	}
	req.Header.Set("User-Agent", c.UserAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to fetch %s: %w", ErrFetch, c.URL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: %s returned status %d", ErrFetch, c.URL, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read body: %w", ErrFetch, err)
	}

	slog.Debug("Fetched page", "url", c.URL, "bytes", len(body))
	return body, nil
}
