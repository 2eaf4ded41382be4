package catalog

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"
)

// Source produces the raw movie records for a session.
type Source interface {
	Load(ctx context.Context) ([]Movie, error)
}

// FileSource reads a JSON catalog from the local filesystem.
type FileSource struct {
	Path string
}

// Load reads and decodes the file.
func (s FileSource) Load(ctx context.Context) ([]Movie, error) {
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}
	f, err := os.Open(s.Path)
	if err != nil {
		return nil, fmt.Errorf("catalog: open %s: %w", s.Path, err)
	}
	defer f.Close()
	return Decode(f)
}

// HTTPSource fetches a JSON catalog over HTTP.
type HTTPSource struct {
	URL    string
	client *http.Client
}

// NewHTTPSource creates an HTTPSource with the given request timeout.
func NewHTTPSource(url string, timeout time.Duration) *HTTPSource {
	return &HTTPSource{
		URL:    url,
		client: &http.Client{Timeout: timeout},
	}
}

// Load fetches and decodes the catalog. Any non-200 status is an error.
func (s *HTTPSource) Load(ctx context.Context) ([]Movie, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.URL, nil)
	if err != nil {
		return nil, fmt.Errorf("catalog: create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, fmt.Errorf("catalog: request cancelled: %w", ctx.Err())
		}
		return nil, fmt.Errorf("catalog: fetch %s: %w", s.URL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil, fmt.Errorf("catalog: failed to load movies: status %d", resp.StatusCode)
	}
	return Decode(resp.Body)
}

// LoadOutcome is the result of loading a catalog. Degraded is set when the
// source failed and the embedded sample was substituted; Err then holds the
// source failure.
type LoadOutcome struct {
	Index    *Index
	Degraded bool
	Err      error
}

// Load builds an Index from src, substituting SampleMovies when the source
// fails. It never returns a nil Index.
func Load(ctx context.Context, src Source) LoadOutcome {
	if src == nil {
		return LoadOutcome{Index: NewIndex(SampleMovies()), Degraded: true, Err: fmt.Errorf("catalog: no source configured")}
	}
	movies, err := src.Load(ctx)
	if err != nil {
		return LoadOutcome{Index: NewIndex(SampleMovies()), Degraded: true, Err: err}
	}
	return LoadOutcome{Index: NewIndex(movies)}
}

// SampleMovies returns the small embedded dataset used when the catalog
// cannot be loaded.
func SampleMovies() []Movie {
	return []Movie{
		{
			ID:          "1",
			Title:       "Spider-Man: No Way Home",
			Year:        "2021",
			Rating:      Float(8.3),
			Description: "Peter Parker is unmasked and no longer able to separate his normal life from the high-stakes of being a super-hero.",
			Tags:        []string{"Action", "Adventure", "Science Fiction"},
			Poster:      "https://image.tmdb.org/t/p/original/1g0dhYtq4irTY1GPXvft6k4YLjm.jpg",
		},
		{
			ID:          "2",
			Title:       "The Batman",
			Year:        "2022",
			Rating:      Float(8.1),
			Description: "In his second year of fighting crime, Batman uncovers corruption in Gotham City that connects to his own family.",
			Tags:        []string{"Crime", "Mystery", "Thriller"},
			Poster:      "https://image.tmdb.org/t/p/original/74xTEgt7R36Fpooo50r9T25onhq.jpg",
		},
	}
}
