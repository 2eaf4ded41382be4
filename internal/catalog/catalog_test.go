package catalog

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeriveGenresCuratedOrder(t *testing.T) {
	movies := []Movie{
		{Title: "A", Tags: []string{"Noir"}},
		{Title: "B", Tags: []string{"Comedy"}},
	}

	assert.Equal(t, []string{"Comedy"}, DeriveGenres(movies, CuratedGenres))
}

func TestDeriveGenresPreservesCuratedNotTagOrder(t *testing.T) {
	movies := []Movie{
		{Tags: []string{"Western", "Action"}},
		{Tags: []string{"Drama"}},
		{Tags: nil},
	}

	assert.Equal(t, []string{"Action", "Drama", "Western"}, DeriveGenres(movies, CuratedGenres))
}

func TestDeriveGenresExactMatch(t *testing.T) {
	// Derivation is exact, unlike genre filtering.
	movies := []Movie{{Tags: []string{"comedy", "Science Fiction Drama"}}}

	assert.Empty(t, DeriveGenres(movies, CuratedGenres))
}

func TestNewIndexCopiesInput(t *testing.T) {
	movies := []Movie{{ID: "1", Title: "First", Tags: []string{"Drama"}}}
	ix := NewIndex(movies)

	movies[0].Title = "changed"

	require.Equal(t, 1, ix.Len())
	assert.Equal(t, "First", ix.Movies()[0].Title)
	assert.Equal(t, []string{"Drama"}, ix.Genres())
}

func TestIndexMoviesAppendDoesNotAlias(t *testing.T) {
	ix := NewIndex([]Movie{{ID: "1"}, {ID: "2"}})

	got := ix.Movies()
	got = append(got, Movie{ID: "3"})

	assert.Len(t, got, 3)
	assert.Equal(t, 2, ix.Len())
}

func TestNilIndex(t *testing.T) {
	var ix *Index
	assert.Nil(t, ix.Movies())
	assert.Nil(t, ix.Genres())
	assert.Zero(t, ix.Len())
}

func TestDecodeLooseRecords(t *testing.T) {
	raw := `[
		{"id": 7, "title": "Numbered", "year": "1999", "rating": 7.5, "description": "d", "tags": ["Drama"], "poster": "http://p"},
		{"id": "x-1", "title": "No rating"},
		{"id": null, "rating": null}
	]`

	movies, err := Decode(strings.NewReader(raw))
	require.NoError(t, err)
	require.Len(t, movies, 3)

	assert.Equal(t, ID("7"), movies[0].ID)
	assert.InDelta(t, 7.5, movies[0].RatingValue(), 1e-9)
	assert.Equal(t, ID("x-1"), movies[1].ID)
	assert.Nil(t, movies[1].Rating)
	assert.Nil(t, movies[1].Tags)
	assert.Equal(t, ID(""), movies[2].ID)
}

func TestDecodeMalformed(t *testing.T) {
	_, err := Decode(strings.NewReader(`{"not": "an array"}`))
	assert.Error(t, err)
}

func TestEncodeRoundTripKeepsNumericIDs(t *testing.T) {
	var b strings.Builder
	require.NoError(t, Encode(&b, []Movie{{ID: "12", Title: "T"}, {ID: "abc"}}))

	assert.Contains(t, b.String(), `"id": 12`)
	assert.Contains(t, b.String(), `"id": "abc"`)
}

func TestDisplayDefaults(t *testing.T) {
	var m Movie

	assert.Equal(t, UnknownTitle, m.DisplayTitle())
	assert.Equal(t, UnknownYear, m.DisplayYear())
	assert.Equal(t, NoDescription, m.DisplayDescription())
	assert.NotNil(t, m.DisplayTags())
	assert.Empty(t, m.DisplayTags())
	assert.Zero(t, m.RatingValue())
	assert.False(t, m.HasPoster())
}

func TestFileSource(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "movies.json")
	require.NoError(t, os.WriteFile(path, []byte(`[{"id":1,"title":"A","tags":["Comedy"]}]`), 0o644))

	movies, err := FileSource{Path: path}.Load(context.Background())
	require.NoError(t, err)
	require.Len(t, movies, 1)
	assert.Equal(t, "A", movies[0].Title)
}

func TestHTTPSource(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"id":1,"title":"Remote","tags":["War"]}]`))
	}))
	defer srv.Close()

	movies, err := NewHTTPSource(srv.URL, 0).Load(context.Background())
	require.NoError(t, err)
	require.Len(t, movies, 1)
	assert.Equal(t, "Remote", movies[0].Title)
}

func TestHTTPSourceStatusError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()

	_, err := NewHTTPSource(srv.URL, 0).Load(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "404")
}

type failingSource struct{ err error }

func (s failingSource) Load(context.Context) ([]Movie, error) { return nil, s.err }

func TestLoadFallsBackToSample(t *testing.T) {
	boom := errors.New("boom")

	out := Load(context.Background(), failingSource{err: boom})

	assert.True(t, out.Degraded)
	assert.ErrorIs(t, out.Err, boom)
	require.Equal(t, 2, out.Index.Len())
	// Sample tags derive the same way a real catalog does.
	assert.Equal(t, []string{"Action", "Adventure", "Crime", "Mystery", "Science Fiction", "Thriller"}, out.Index.Genres())
}

func TestLoadNilSource(t *testing.T) {
	out := Load(context.Background(), nil)

	assert.True(t, out.Degraded)
	assert.Error(t, out.Err)
	assert.Equal(t, 2, out.Index.Len())
}

func TestLoadSuccess(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "movies.json")
	require.NoError(t, os.WriteFile(path, []byte(`[{"id":1,"title":"A","tags":["Comedy","Noir"]}]`), 0o644))

	out := Load(context.Background(), FileSource{Path: path})

	assert.False(t, out.Degraded)
	assert.NoError(t, out.Err)
	assert.Equal(t, []string{"Comedy"}, out.Index.Genres())
}
