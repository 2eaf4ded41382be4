package mood

import (
	"context"
	"errors"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/patrickmn/go-cache"
)

// Classifier is an external mood classifier returning genres ranked by
// confidence.
type Classifier interface {
	Genres(ctx context.Context, text string) ([]string, error)
}

// Source tells where a resolution's genres came from.
type Source string

const (
	SourceClassifier Source = "classifier"
	SourceCache      Source = "cache"
	SourceKeywords   Source = "keywords"
)

// ErrNoClassifier is recorded when a resolver has no classifier configured.
var ErrNoClassifier = errors.New("mood: no classifier configured")

// ErrEmptyPrediction is recorded when the classifier answered with no genres.
var ErrEmptyPrediction = errors.New("mood: classifier returned no genres")

// Resolution is the outcome of resolving a mood. Genres is never empty.
// Err holds the classifier failure that caused a keyword fallback.
type Resolution struct {
	Text   string
	Genres []string
	Source Source
	Err    error
}

// Fallback reports whether the keyword analysis produced the genres.
func (r Resolution) Fallback() bool {
	return r.Source == SourceKeywords
}

// Resolver resolves mood text into genres.
// Safe for concurrent use.
type Resolver struct {
	classifier Classifier
	cache      *cache.Cache
	logger     *log.Logger
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithCache caches successful classifier answers for ttl.
func WithCache(ttl time.Duration) Option {
	return func(r *Resolver) {
		if ttl > 0 {
			r.cache = cache.New(ttl, 2*ttl)
		}
	}
}

// WithLogger sets the logger used to report fallbacks.
func WithLogger(l *log.Logger) Option {
	return func(r *Resolver) {
		if l != nil {
			r.logger = l
		}
	}
}

// NewResolver creates a Resolver. A nil classifier always falls back to
// keyword analysis.
func NewResolver(c Classifier, opts ...Option) *Resolver {
	r := &Resolver{
		classifier: c,
		logger:     log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Resolve returns the genres for text. It never fails: any classifier error
// (transport, status, malformed payload, timeout via ctx) is recorded in the
// Resolution and the keyword analysis is used instead.
func (r *Resolver) Resolve(ctx context.Context, text string) Resolution {
	key := cacheKey(text)
	if r.cache != nil {
		if v, ok := r.cache.Get(key); ok {
			return Resolution{Text: text, Genres: clone(v.([]string)), Source: SourceCache}
		}
	}

	genres, err := r.classify(ctx, text)
	if err != nil {
		r.logger.Warn("mood classifier failed, using keyword analysis", "err", err)
		return Resolution{Text: text, Genres: Analyze(text), Source: SourceKeywords, Err: err}
	}

	if r.cache != nil {
		r.cache.Set(key, clone(genres), cache.DefaultExpiration)
	}
	return Resolution{Text: text, Genres: genres, Source: SourceClassifier}
}

func (r *Resolver) classify(ctx context.Context, text string) ([]string, error) {
	if r.classifier == nil {
		return nil, ErrNoClassifier
	}
	genres, err := r.classifier.Genres(ctx, text)
	if err != nil {
		return nil, err
	}
	genres = Dedup(nonEmpty(genres))
	if len(genres) == 0 {
		return nil, ErrEmptyPrediction
	}
	return genres, nil
}

func cacheKey(text string) string {
	return strings.ToLower(strings.TrimSpace(text))
}

func nonEmpty(genres []string) []string {
	out := genres[:0:0]
	for _, g := range genres {
		if strings.TrimSpace(g) != "" {
			out = append(out, g)
		}
	}
	return out
}

func clone(s []string) []string {
	out := make([]string, len(s))
	copy(out, s)
	return out
}
