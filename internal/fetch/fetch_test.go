package fetch

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetch(t *testing.T) {
	var userAgent string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userAgent = r.Header.Get("User-Agent")
		_, _ = w.Write([]byte("<html>ok</html>"))
	}))
	defer server.Close()

	page, err := NewClient(server.URL).Fetch(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "<html>ok</html>", string(page))
	assert.Equal(t, DefaultUserAgent, userAgent)
}

func TestFetchNon200(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	_, err := NewClient(server.URL).Fetch(context.Background())

	assert.ErrorIs(t, err, ErrFetch)
	assert.Contains(t, err.Error(), "503")
}

func TestFetchTransportError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	_, err := NewClient(url).Fetch(context.Background())
	assert.ErrorIs(t, err, ErrFetch)
}

func TestNewClientDefaultURL(t *testing.T) {
	assert.Equal(t, DefaultURL, NewClient("").URL)
}

func TestCacheFetch(t *testing.T) {
	var hits atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		_, _ = w.Write([]byte("page"))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	cache := NewCache(filepath.Join(t.TempDir(), "cache"), false)

	for range 2 {
		page, err := cache.Fetch(context.Background(), client)
		require.NoError(t, err)
		assert.Equal(t, "page", string(page))
	}
	assert.Equal(t, int32(1), hits.Load())

	cached, err := os.ReadFile(cache.Path(server.URL))
	require.NoError(t, err)
	assert.Equal(t, "page", string(cached))

	cache.Force = true
	_, err = cache.Fetch(context.Background(), client)
	require.NoError(t, err)
	assert.Equal(t, int32(2), hits.Load())
}

func TestNilCacheFetches(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("direct"))
	}))
	defer server.Close()

	var cache *Cache
	page, err := cache.Fetch(context.Background(), NewClient(server.URL))
	require.NoError(t, err)
	assert.Equal(t, "direct", string(page))
}
