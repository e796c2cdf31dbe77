package fetch

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// Cache keeps a copy of fetched pages on disk
type Cache struct {
	Dir   string
	Force bool // refetch even when a cached copy exists
}

// NewCache creates a cache rooted at dir, expanding a leading ~
func NewCache(dir string, force bool) *Cache {
	if strings.HasPrefix(dir, "~") {
		if home, err := os.UserHomeDir(); err == nil {
			dir = filepath.Join(home, dir[1:])
		}
	}
	return &Cache{Dir: dir, Force: force}
}

// Path returns where the page for url is cached
func (c *Cache) Path(url string) string {
	sum := sha256.Sum256([]byte(url))
	return filepath.Join(c.Dir, hex.EncodeToString(sum[:8])+".html")
}

// Fetch returns the cached page for the client's URL, fetching and storing it
// when absent. A nil cache always fetches.
func (c *Cache) Fetch(ctx context.Context, client *Client) ([]byte, error) {
	if c == nil || c.Dir == "" {
		return client.Fetch(ctx)
	}

	path := c.Path(client.URL)
	if !c.Force {
		if page, err := os.ReadFile(path); err == nil {
			slog.Info("Using cached page", "path", path)
			return page, nil
		}
	}

	page, err := client.Fetch(ctx)
	if err != nil {
		return nil, err
	}

	if err := c.write(path, page); err != nil {
		// the page is still usable without a cached copy
		slog.Warn("Failed to cache page", "path", path, "err", err)
	}
	return page, nil
}

func (c *Cache) write(path string, page []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create cache directory: %w", err)
	}

	tempPath := path + ".tmp"
	if err := os.WriteFile(tempPath, page, 0644); err != nil {
		os.Remove(tempPath)
		return fmt.Errorf("failed to write cache file: %w", err)
	}
	if err := os.Rename(tempPath, path); err != nil {
		os.Remove(tempPath)
		return fmt.Errorf("failed to move file: %w", err)
	}
	return nil
}
