// Package dataset builds and inspects catalog files offline: converting the
// public movie CSV export, merging catalogs and summarizing them.
package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/abelbrown/moviematch/internal/catalog"
)

// Limits applied when converting raw rows.
const (
	MaxDescription = 200
	MaxTags        = 5
)

// Column names of the source CSV.
const (
	ColTitle       = "Title"
	ColGenre       = "Genre"
	ColReleaseDate = "Release_Date"
	ColRating      = "Vote_Average"
	ColOverview    = "Overview"
	ColPoster      = "Poster_Url"
)

// noOverview replaces an empty overview in converted records.
const noOverview = "No description available."

// releaseLayouts are the date formats seen in the export.
var releaseLayouts = []string{
	"2006-01-02",
	"2006-1-2",
	"1/2/2006",
	"2006/01/02",
	time.RFC3339,
	"2006",
}

// ConvertReport counts what happened to the input rows.
type ConvertReport struct {
	Rows      int
	Kept      int
	NoTitle   int
	NoPoster  int
	Unrated   int
	Malformed int
}

// Skipped returns the number of rows dropped.
func (r ConvertReport) Skipped() int {
	return r.Rows - r.Kept
}

// ConvertCSV turns the CSV export into catalog records. Rows without a
// title, without a poster or with a rating of 0 or less are dropped. Kept
// records get sequential ids starting at 1.
func ConvertCSV(r io.Reader) ([]catalog.Movie, ConvertReport, error) {
	var report ConvertReport

	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	header, err := reader.Read()
	if err != nil {
		return nil, report, fmt.Errorf("dataset: read header: %w", err)
	}
	idx := headerIndex(header)
	if _, ok := idx[ColTitle]; !ok {
		return nil, report, fmt.Errorf("dataset: missing column %s", ColTitle)
	}

	var movies []catalog.Movie
	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		report.Rows++
		if err != nil {
			var perr *csv.ParseError
			if errors.As(err, &perr) {
				report.Malformed++
				continue
			}
			return nil, report, fmt.Errorf("dataset: read row %d: %w", report.Rows, err)
		}

		m, reason := convertRow(row, idx)
		switch reason {
		case dropNoTitle:
			report.NoTitle++
			continue
		case dropNoPoster:
			report.NoPoster++
			continue
		case dropUnrated:
			report.Unrated++
			continue
		}

		report.Kept++
		m.ID = catalog.ID(strconv.Itoa(report.Kept))
		movies = append(movies, m)
	}
	return movies, report, nil
}

type dropReason int

const (
	keepRow dropReason = iota
	dropNoTitle
	dropNoPoster
	dropUnrated
)

func convertRow(row []string, idx map[string]int) (catalog.Movie, dropReason) {
	title := field(row, idx, ColTitle)
	if title == "" {
		return catalog.Movie{}, dropNoTitle
	}

	poster := field(row, idx, ColPoster)
	if poster == "" {
		return catalog.Movie{}, dropNoPoster
	}

	rating := roundRating(parseRating(field(row, idx, ColRating)))
	if rating <= 0 {
		return catalog.Movie{}, dropUnrated
	}

	overview := field(row, idx, ColOverview)
	if overview == "" {
		overview = noOverview
	}

	return catalog.Movie{
		Title:       title,
		Year:        releaseYear(field(row, idx, ColReleaseDate)),
		Rating:      catalog.Float(rating),
		Description: Truncate(overview, MaxDescription),
		Tags:        splitTags(field(row, idx, ColGenre)),
		Poster:      poster,
	}, keepRow
}

func headerIndex(header []string) map[string]int {
	idx := make(map[string]int, len(header))
	for i, h := range header {
		idx[strings.TrimSpace(strings.TrimPrefix(h, "\ufeff"))] = i
	}
	return idx
}

// field returns a trimmed cell; pandas' "nan" placeholder reads as empty.
func field(row []string, idx map[string]int, col string) string {
	i, ok := idx[col]
	if !ok || i >= len(row) {
		return ""
	}
	v := strings.TrimSpace(row[i])
	if strings.EqualFold(v, "nan") {
		return ""
	}
	return v
}

func parseRating(s string) float64 {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

func roundRating(v float64) float64 {
	return math.Round(v*10) / 10
}

func releaseYear(s string) string {
	if s == "" {
		return catalog.UnknownYear
	}
	for _, layout := range releaseLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return strconv.Itoa(t.Year())
		}
	}
	return catalog.UnknownYear
}

// splitTags splits a comma separated genre cell, keeping at most MaxTags.
// An empty cell becomes a single "Unknown" tag.
func splitTags(s string) []string {
	if s == "" {
		return []string{"Unknown"}
	}
	var tags []string
	for _, t := range strings.Split(s, ",") {
		if t = strings.TrimSpace(t); t != "" {
			tags = append(tags, t)
		}
		if len(tags) == MaxTags {
			break
		}
	}
	return tags
}

// Truncate shortens s to n runes followed by "...". Shorter strings are
// returned unchanged.
func Truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	r := []rune(s)
	return string(r[:n]) + "..."
}
