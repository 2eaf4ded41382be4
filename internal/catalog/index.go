package catalog

import (
	"fmt"
	"io"

	"github.com/goccy/go-json"
)

// CuratedGenres is the editorial list of genres offered as filters, in
// display order. Only genres that actually appear in a loaded catalog are
// shown.
var CuratedGenres = []string{
	"Action", "Adventure", "Animation", "Comedy", "Crime", "Documentary",
	"Drama", "Family", "Fantasy", "Horror", "Mystery", "Romance",
	"Science Fiction", "Thriller", "War", "Western",
}

// DeriveGenres returns the curated genres that appear as a tag on at least
// one movie, preserving curated order. Tag comparison is exact.
func DeriveGenres(movies []Movie, curated []string) []string {
	present := make(map[string]struct{})
	for _, m := range movies {
		for _, tag := range m.Tags {
			present[tag] = struct{}{}
		}
	}

	genres := make([]string, 0, len(curated))
	for _, g := range curated {
		if _, ok := present[g]; ok {
			genres = append(genres, g)
		}
	}
	return genres
}

// Index is the loaded catalog for a session. It is built once and never
// mutated afterwards.
type Index struct {
	movies []Movie
	genres []string
}

// NewIndex builds an Index over movies and derives its genre set from
// CuratedGenres.
func NewIndex(movies []Movie) *Index {
	owned := make([]Movie, len(movies))
	copy(owned, movies)
	return &Index{
		movies: owned,
		genres: DeriveGenres(owned, CuratedGenres),
	}
}

// Movies returns the catalog in load order. Callers must not modify the
// returned records.
func (ix *Index) Movies() []Movie {
	if ix == nil {
		return nil
	}
	return ix.movies[:len(ix.movies):len(ix.movies)]
}

// Genres returns the derived genre set in curated order.
func (ix *Index) Genres() []string {
	if ix == nil {
		return nil
	}
	out := make([]string, len(ix.genres))
	copy(out, ix.genres)
	return out
}

// Len returns the number of movies in the catalog.
func (ix *Index) Len() int {
	if ix == nil {
		return 0
	}
	return len(ix.movies)
}

// Decode reads a JSON array of movie records.
func Decode(r io.Reader) ([]Movie, error) {
	var movies []Movie
	if err := json.NewDecoder(r).Decode(&movies); err != nil {
		return nil, fmt.Errorf("catalog: decode movies: %w", err)
	}
	return movies, nil
}

// Encode writes movies as an indented JSON array.
func Encode(w io.Writer, movies []Movie) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(movies); err != nil {
		return fmt.Errorf("catalog: encode movies: %w", err)
	}
	return nil
}
