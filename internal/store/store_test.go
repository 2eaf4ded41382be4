package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abelbrown/moviematch/internal/catalog"
)

// Verify Store implements catalog.Source at compile time.
var _ catalog.Source = (*Store)(nil)

func openTest(t *testing.T) *Store {
	t.Helper()
	st, err := Open(filepath.Join(t.TempDir(), "movies.db"))
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })
	return st
}

func TestOpen(t *testing.T) {
	st, err := Open(":memory:")
	require.NoError(t, err)
	defer st.Close()

	var name string
	err = st.db.QueryRow("SELECT name FROM sqlite_master WHERE type='table' AND name='movies'").Scan(&name)
	require.NoError(t, err, "movies table not created")
	assert.Equal(t, "movies", name)
}

func TestReplaceAndReadMovies(t *testing.T) {
	st := openTest(t)
	ctx := context.Background()

	in := []catalog.Movie{
		{ID: "2", Title: "Second", Year: "2001", Rating: catalog.Float(7.5), Description: "d", Tags: []string{"Drama", "War"}, Poster: "http://p/2"},
		{ID: "1", Title: "First"},
		{ID: "1", Title: "Duplicate id", Tags: []string{}},
	}

	n, err := st.ReplaceMovies(ctx, in)
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	out, err := st.Movies(ctx)
	require.NoError(t, err)
	require.Len(t, out, 3)

	assert.Equal(t, "Second", out[0].Title, "stored order")
	assert.Equal(t, "First", out[1].Title, "stored order")
	require.NotNil(t, out[0].Rating)
	assert.Equal(t, 7.5, *out[0].Rating)
	assert.Equal(t, []string{"Drama", "War"}, out[0].Tags)
	assert.Nil(t, out[1].Rating, "missing rating stays nil")
	assert.Nil(t, out[1].Tags, "missing tags stay nil")
	assert.NotNil(t, out[2].Tags, "empty tags stay empty")
	assert.Empty(t, out[2].Tags)
}

func TestReplaceMoviesOverwrites(t *testing.T) {
	st := openTest(t)
	ctx := context.Background()

	_, err := st.ReplaceMovies(ctx, []catalog.Movie{{Title: "A"}, {Title: "B"}})
	require.NoError(t, err)
	_, err = st.ReplaceMovies(ctx, []catalog.Movie{{Title: "C"}})
	require.NoError(t, err)

	n, err := st.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestLoadAsCatalogSource(t *testing.T) {
	st := openTest(t)
	ctx := context.Background()

	_, err := st.Load(ctx)
	assert.Error(t, err, "empty database")

	_, err = st.ReplaceMovies(ctx, []catalog.Movie{{Title: "Alien", Tags: []string{"Horror"}}})
	require.NoError(t, err)

	out := catalog.Load(ctx, st)
	require.False(t, out.Degraded, "unexpected fallback: %v", out.Err)
	assert.Equal(t, []string{"Horror"}, out.Index.Genres())
}

func TestConcurrentReads(t *testing.T) {
	st := openTest(t)
	ctx := context.Background()

	_, err := st.ReplaceMovies(ctx, catalog.SampleMovies())
	require.NoError(t, err)

	errs := make(chan error, 8)
	for i := 0; i < 8; i++ {
		go func() {
			_, err := st.Movies(ctx)
			errs <- err
		}()
	}
	for i := 0; i < 8; i++ {
		assert.NoError(t, <-errs)
	}
}
