package cmd

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lehigh-university-libraries/moviepicker/internal/movies"
	"github.com/lehigh-university-libraries/moviepicker/internal/store"
)

func TestRootRegistersCommands(t *testing.T) {
	root := NewRootCmd()

	for _, name := range []string{"scrape", "recommend", "genres", "export"} {
		sub, _, err := root.Find([]string{name})
		require.NoError(t, err)
		assert.Equal(t, name, sub.Name())
	}
}

func TestGenresCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "movies.jsonl")
	require.NoError(t, store.New(path).Save([]movies.Record{
		{Title: "Up", Genre: "Animation", Rating: movies.Unrated, Year: "2009"},
	}))

	root := NewRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetArgs([]string{"genres", "--store", path})

	require.NoError(t, root.Execute())
	assert.Equal(t, "animation\n", out.String())
}
