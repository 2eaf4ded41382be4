package dataset

import (
	"fmt"
	"io"
	"math"
	"sort"
	"strconv"

	"github.com/abelbrown/moviematch/internal/catalog"
)

// TagCount is how many movies carry a tag.
type TagCount struct {
	Tag   string
	Count int
}

// Stats summarizes a catalog.
type Stats struct {
	Total int

	// Rating figures cover rated movies only (rating > 0).
	Rated     int
	AvgRating float64
	MaxRating float64
	MinRating float64

	// Year range covers numeric years only; zero when none.
	MinYear int
	MaxYear int

	TopTags []TagCount
}

// Compute summarizes movies, keeping the topN most common tags. Ties are
// broken alphabetically.
func Compute(movies []catalog.Movie, topN int) Stats {
	s := Stats{Total: len(movies), MinRating: math.Inf(1)}

	var sum float64
	counts := make(map[string]int)
	for _, m := range movies {
		if r := m.RatingValue(); r > 0 {
			s.Rated++
			sum += r
			s.MaxRating = max(s.MaxRating, r)
			s.MinRating = min(s.MinRating, r)
		}
		if y, err := strconv.Atoi(m.Year); err == nil && y > 0 {
			if s.MinYear == 0 || y < s.MinYear {
				s.MinYear = y
			}
			s.MaxYear = max(s.MaxYear, y)
		}
		for _, t := range m.Tags {
			counts[t]++
		}
	}
	if s.Rated > 0 {
		s.AvgRating = sum / float64(s.Rated)
	} else {
		s.MinRating = 0
	}

	tags := make([]TagCount, 0, len(counts))
	for t, n := range counts {
		tags = append(tags, TagCount{Tag: t, Count: n})
	}
	sort.Slice(tags, func(i, j int) bool {
		if tags[i].Count != tags[j].Count {
			return tags[i].Count > tags[j].Count
		}
		return tags[i].Tag < tags[j].Tag
	})
	if topN >= 0 && len(tags) > topN {
		tags = tags[:topN]
	}
	s.TopTags = tags
	return s
}

// Write prints the summary in a human readable form.
func (s Stats) Write(w io.Writer) error {
	p := &errWriter{w: w}
	p.printf("Total movies: %d\n", s.Total)
	if s.Rated > 0 {
		p.printf("Average rating: %.2f\n", s.AvgRating)
		p.printf("Highest rating: %.1f\n", s.MaxRating)
		p.printf("Lowest rating: %.1f\n", s.MinRating)
	}
	if s.MinYear > 0 {
		p.printf("Year range: %d - %d\n", s.MinYear, s.MaxYear)
	}
	if len(s.TopTags) > 0 {
		p.printf("\nTop %d genres:\n", len(s.TopTags))
		for _, t := range s.TopTags {
			p.printf("  %s: %d movies\n", t.Tag, t.Count)
		}
	}
	return p.err
}

type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) printf(format string, args ...any) {
	if e.err != nil {
		return
	}
	_, e.err = fmt.Fprintf(e.w, format, args...)
}
