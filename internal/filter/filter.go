// Package filter provides the pure filter and ranking functions over the
// catalog. All functions are simple: movies in, ranked Result out. Inputs are
// never modified.
package filter

import (
	"fmt"
	"sort"
	"strings"

	"github.com/abelbrown/moviematch/internal/catalog"
)

// Result is a ranked list of movies plus the sentence describing it.
type Result struct {
	Movies  []catalog.Movie
	Summary string
}

// Len returns the number of movies in the result.
func (r Result) Len() int {
	return len(r.Movies)
}

// GenresSummary describes a genre-filtered result.
func GenresSummary(n int) string {
	return fmt.Sprintf("Found %d movies based on your selected genres", n)
}

// TitleSummary describes a title-search result.
func TitleSummary(n int, term string) string {
	return fmt.Sprintf(`Found %d movies matching "%s"`, n, term)
}

// AllSummary describes the whole catalog.
func AllSummary(n int) string {
	return fmt.Sprintf("Showing all %d movies (sorted by rating)", n)
}

// ByGenres keeps movies with at least one tag containing at least one of the
// requested genres, case-insensitively. Matching is by substring, so "War"
// also selects "Warfare". An empty genre list keeps every movie.
func ByGenres(movies []catalog.Movie, genres []string) Result {
	if len(genres) == 0 {
		out := byRating(keep(movies, func(catalog.Movie) bool { return true }))
		return Result{Movies: out, Summary: GenresSummary(len(out))}
	}

	wanted := make([]string, len(genres))
	for i, g := range genres {
		wanted[i] = strings.ToLower(g)
	}

	out := byRating(keep(movies, func(m catalog.Movie) bool {
		for _, tag := range m.Tags {
			tag = strings.ToLower(tag)
			for _, g := range wanted {
				if strings.Contains(tag, g) {
					return true
				}
			}
		}
		return false
	}))
	return Result{Movies: out, Summary: GenresSummary(len(out))}
}

// ByTitle keeps movies whose title contains term, case-insensitively.
func ByTitle(movies []catalog.Movie, term string) Result {
	needle := strings.ToLower(term)
	out := byRating(keep(movies, func(m catalog.Movie) bool {
		return strings.Contains(strings.ToLower(m.Title), needle)
	}))
	return Result{Movies: out, Summary: TitleSummary(len(out), term)}
}

// All returns every movie ranked by rating.
func All(movies []catalog.Movie) Result {
	out := byRating(keep(movies, func(catalog.Movie) bool { return true }))
	return Result{Movies: out, Summary: AllSummary(len(out))}
}

func keep(movies []catalog.Movie, pred func(catalog.Movie) bool) []catalog.Movie {
	result := make([]catalog.Movie, 0, len(movies))
	for _, m := range movies {
		if pred(m) {
			result = append(result, m)
		}
	}
	return result
}

// byRating sorts in place, highest rating first. Missing ratings count as 0
// and ties keep their catalog order.
func byRating(movies []catalog.Movie) []catalog.Movie {
	sort.SliceStable(movies, func(i, j int) bool {
		return movies[i].RatingValue() > movies[j].RatingValue()
	})
	return movies
}
