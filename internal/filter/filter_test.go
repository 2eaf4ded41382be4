package filter

import (
	"math/rand"
	"strconv"
	"strings"
	"testing"

	"github.com/abelbrown/moviematch/internal/catalog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func movie(id string, rating *float64, tags ...string) catalog.Movie {
	return catalog.Movie{ID: catalog.ID(id), Title: "Movie " + id, Rating: rating, Tags: tags}
}

func ids(movies []catalog.Movie) []string {
	out := make([]string, len(movies))
	for i, m := range movies {
		out[i] = string(m.ID)
	}
	return out
}

func sample() []catalog.Movie {
	return []catalog.Movie{
		movie("1", catalog.Float(6.0), "Drama"),
		movie("2", catalog.Float(8.5), "Science Fiction", "Action"),
		movie("3", nil, "Comedy"),
		movie("4", catalog.Float(8.5), "Warfare"),
		movie("5", catalog.Float(7.2), "comedy", "Romance"),
		movie("6", catalog.Float(9.1)),
	}
}

func TestByGenresAnySubstringMatch(t *testing.T) {
	res := ByGenres(sample(), []string{"fiction", "COMEDY"})

	assert.Equal(t, []string{"2", "5", "3"}, ids(res.Movies))
	assert.Equal(t, "Found 3 movies based on your selected genres", res.Summary)
}

func TestByGenresLooseMatch(t *testing.T) {
	res := ByGenres(sample(), []string{"War"})

	assert.Equal(t, []string{"4"}, ids(res.Movies))
}

func TestByGenresEmptyReturnsAllRanked(t *testing.T) {
	res := ByGenres(sample(), nil)

	assert.Equal(t, []string{"6", "2", "4", "5", "1", "3"}, ids(res.Movies))
}

func TestByGenresUnknownGenre(t *testing.T) {
	res := ByGenres(sample(), []string{"Noir"})

	assert.Empty(t, res.Movies)
	assert.Equal(t, 0, res.Len())
}

func TestByTitle(t *testing.T) {
	movies := []catalog.Movie{
		{ID: "1", Title: "The Batman", Rating: catalog.Float(8.1)},
		{ID: "2", Title: "Batman Begins", Rating: catalog.Float(8.2)},
		{ID: "3", Title: "Spider-Man"},
	}

	res := ByTitle(movies, "batMAN")

	assert.Equal(t, []string{"2", "1"}, ids(res.Movies))
	assert.Equal(t, `Found 2 movies matching "batMAN"`, res.Summary)
}

func TestAll(t *testing.T) {
	res := All(sample())

	assert.Len(t, res.Movies, 6)
	assert.Equal(t, "Showing all 6 movies (sorted by rating)", res.Summary)
}

func TestInputsNotModified(t *testing.T) {
	in := sample()
	before := ids(in)

	All(in)
	ByGenres(in, []string{"Drama"})
	ByTitle(in, "movie")

	assert.Equal(t, before, ids(in))
}

func TestRankingProperties(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	tags := []string{"Action", "Drama", "Comedy", "Science Fiction", "War", "Western"}
	ratings := []float64{0, 5, 6.5, 7, 8}

	movies := make([]catalog.Movie, 300)
	for i := range movies {
		m := catalog.Movie{ID: catalog.ID(strconv.Itoa(i)), Title: "T"}
		if rng.Intn(5) > 0 {
			m.Rating = catalog.Float(ratings[rng.Intn(len(ratings))])
		}
		for j := rng.Intn(3); j > 0; j-- {
			m.Tags = append(m.Tags, tags[rng.Intn(len(tags))])
		}
		movies[i] = m
	}

	query := []string{"fi", "war"}
	res := ByGenres(movies, query)

	for i, m := range res.Movies {
		matched := false
		for _, tag := range m.Tags {
			for _, g := range query {
				if strings.Contains(strings.ToLower(tag), g) {
					matched = true
				}
			}
		}
		assert.True(t, matched, "movie %d has no matching tag: %v", i, m.Tags)
		if i > 0 {
			prev := res.Movies[i-1]
			require.GreaterOrEqual(t, prev.RatingValue(), m.RatingValue())
			if prev.RatingValue() == m.RatingValue() {
				require.Less(t, atoi(t, prev.ID), atoi(t, m.ID), "equal ratings keep catalog order")
			}
		}
	}
}

func TestStableForEqualRatings(t *testing.T) {
	movies := []catalog.Movie{
		movie("a", catalog.Float(7), "Drama"),
		movie("b", nil, "Drama"),
		movie("c", catalog.Float(7), "Drama"),
		movie("d", catalog.Float(0), "Drama"),
		movie("e", catalog.Float(7), "Drama"),
	}

	assert.Equal(t, []string{"a", "c", "e", "b", "d"}, ids(ByGenres(movies, []string{"drama"}).Movies))
	assert.Equal(t, []string{"a", "c", "e", "b", "d"}, ids(All(movies).Movies))
}

func atoi(t *testing.T, id catalog.ID) int {
	t.Helper()
	n, err := strconv.Atoi(string(id))
	require.NoError(t, err)
	return n
}
