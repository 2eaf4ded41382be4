// Package catalog holds the movie catalog for a session: the loosely-shaped
// Movie record, the curated genre vocabulary, and the sources a catalog can
// be loaded from.
package catalog

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/goccy/go-json"
)

// Fallback display values for absent fields.
const (
	UnknownTitle  = "Unknown Title"
	UnknownYear   = "Unknown"
	NoDescription = "No description available"
)

// ID identifies a movie. Catalog files carry it either as a JSON number or
// as a string; both decode to the same textual form.
type ID string

// UnmarshalJSON accepts numbers and strings.
func (id *ID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*id = ""
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return fmt.Errorf("catalog: decode id: %w", err)
		}
		*id = ID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("catalog: decode id: %w", err)
	}
	*id = ID(n.String())
	return nil
}

// MarshalJSON writes integer ids back as numbers.
func (id ID) MarshalJSON() ([]byte, error) {
	if _, err := strconv.ParseInt(string(id), 10, 64); err == nil {
		return []byte(id), nil
	}
	return json.Marshal(string(id))
}

// Movie is one catalog record. Absent fields are kept absent (zero value or
// nil) and only defaulted by the Display* helpers at render time.
type Movie struct {
	ID          ID       `json:"id"`
	Title       string   `json:"title"`
	Year        string   `json:"year"`
	Rating      *float64 `json:"rating"`
	Description string   `json:"description"`
	Tags        []string `json:"tags"`
	Poster      string   `json:"poster,omitempty"`
}

// RatingValue returns the rating, or 0 when the record has none.
func (m Movie) RatingValue() float64 {
	if m.Rating == nil {
		return 0
	}
	return *m.Rating
}

// DisplayTitle returns the title or UnknownTitle.
func (m Movie) DisplayTitle() string {
	if m.Title == "" {
		return UnknownTitle
	}
	return m.Title
}

// DisplayYear returns the year or UnknownYear.
func (m Movie) DisplayYear() string {
	if m.Year == "" {
		return UnknownYear
	}
	return m.Year
}

// DisplayDescription returns the description or NoDescription.
func (m Movie) DisplayDescription() string {
	if m.Description == "" {
		return NoDescription
	}
	return m.Description
}

// DisplayTags returns the tags, never nil.
func (m Movie) DisplayTags() []string {
	if m.Tags == nil {
		return []string{}
	}
	return m.Tags
}

// HasPoster reports whether a poster URL is present.
func (m Movie) HasPoster() bool {
	return m.Poster != ""
}

// Float returns a pointer to v, for building ratings in literals.
func Float(v float64) *float64 {
	return &v
}
