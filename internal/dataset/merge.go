package dataset

import (
	"strconv"

	"github.com/abelbrown/moviematch/internal/catalog"
)

// Merge concatenates catalogs in order and renumbers ids from 1. The inputs
// are not modified.
func Merge(catalogs ...[]catalog.Movie) []catalog.Movie {
	var n int
	for _, c := range catalogs {
		n += len(c)
	}

	merged := make([]catalog.Movie, 0, n)
	for _, c := range catalogs {
		merged = append(merged, c...)
	}
	for i := range merged {
		merged[i].ID = catalog.ID(strconv.Itoa(i + 1))
	}
	return merged
}
