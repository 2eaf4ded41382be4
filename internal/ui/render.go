package ui

import (
	"fmt"
	"math"
	"net/url"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"

	"github.com/abelbrown/moviematch/internal/catalog"
	"github.com/abelbrown/moviematch/internal/controller"
)

const (
	cardDescriptionLimit = 100
	cardTagLimit         = 3
	maxStars             = 5
	cardHeight           = 4 // title, description, tags, gap
)

// truncate shortens s to at most n runes, appending "..." when cut.
func truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	runes := []rune(s)
	return string(runes[:n]) + "..."
}

// formatRating renders the rating as stored; an absent rating shows as 0.
func formatRating(m catalog.Movie) string {
	return strconv.FormatFloat(m.RatingValue(), 'f', -1, 64)
}

// StarString renders floor(rating) filled stars followed by empty stars up to
// five. Ratings above five give more than five filled stars.
func StarString(rating float64) string {
	filled := int(math.Floor(rating))
	if filled < 0 {
		filled = 0
	}
	empty := maxStars - filled
	if empty < 0 {
		empty = 0
	}
	return strings.Repeat("★", filled) + strings.Repeat("☆", empty)
}

// CardTags returns the tags shown on a card and how many were left out.
func CardTags(tags []string) (shown []string, more int) {
	if len(tags) <= cardTagLimit {
		return tags, 0
	}
	return tags[:cardTagLimit], len(tags) - cardTagLimit
}

// WatchURL builds a web search link for watching the title online.
func WatchURL(title string) string {
	q := strings.ReplaceAll(url.QueryEscape(title), "+", "%20")
	return "https://www.google.com/search?q=watch+" + q + "+online"
}

// RenderCard renders one movie as a compact card.
func RenderCard(m catalog.Movie, selected bool, width int) string {
	titleStyle := CardTitle
	prefix := "  "
	if selected {
		titleStyle = SelectedCardTitle
		prefix = "> "
	}

	title := prefix + titleStyle.Render(m.DisplayTitle()) + " " +
		CardMeta.Render(fmt.Sprintf("(%s)", m.DisplayYear())) + " " +
		Stars.Render("★ "+formatRating(m))

	desc := "  " + CardText.Render(truncate(m.DisplayDescription(), cardDescriptionLimit))

	shown, more := CardTags(m.DisplayTags())
	tags := make([]string, 0, len(shown)+1)
	for _, t := range shown {
		tags = append(tags, Tag.Render(t))
	}
	if more > 0 {
		tags = append(tags, CardMeta.Render(fmt.Sprintf("+%d more", more)))
	}
	tagLine := "  " + strings.Join(tags, CardMeta.Render(" · "))

	lines := []string{title, desc, tagLine}
	if width > 0 {
		for i, l := range lines {
			lines[i] = lipgloss.NewStyle().MaxWidth(width).Render(l)
		}
	}
	return strings.Join(lines, "\n")
}

// RenderDetail renders the full record of one movie.
func RenderDetail(m catalog.Movie, width int) string {
	var b strings.Builder

	b.WriteString(CardTitle.Render(m.DisplayTitle()))
	b.WriteString("\n")
	b.WriteString(Stars.Render(StarString(m.RatingValue())))
	b.WriteString("\n")
	b.WriteString(CardMeta.Render(fmt.Sprintf("%s • Rating: %s/10", m.DisplayYear(), formatRating(m))))
	b.WriteString("\n\n")

	body := CardText
	if width > 0 {
		body = body.Width(width)
	}
	b.WriteString(body.Render(m.DisplayDescription()))
	b.WriteString("\n\n")

	tags := m.DisplayTags()
	rendered := make([]string, len(tags))
	for i, t := range tags {
		rendered[i] = Tag.Render(t)
	}
	b.WriteString(CardMeta.Render("Genres: "))
	b.WriteString(strings.Join(rendered, CardMeta.Render(", ")))

	if m.HasPoster() {
		b.WriteString("\n")
		b.WriteString(CardMeta.Render("Poster: " + m.Poster))
	}
	return b.String()
}

// renderChips lays chips out in rows that fit width.
func renderChips(chips []controller.Chip, cursor int, focused bool, width int) string {
	if len(chips) == 0 {
		return CardMeta.Render("  no genres")
	}

	var rows []string
	var row strings.Builder
	rowWidth := 0
	for i, c := range chips {
		style := Chip
		if c.Selected {
			style = SelectedChip
		}
		label := c.Genre
		if focused && i == cursor {
			label = ChipCursor.Render(label)
		}
		chip := style.Render(label)
		w := lipgloss.Width(chip)
		if width > 0 && rowWidth > 0 && rowWidth+w > width {
			rows = append(rows, row.String())
			row.Reset()
			rowWidth = 0
		}
		row.WriteString(chip)
		rowWidth += w
	}
	rows = append(rows, row.String())
	return strings.Join(rows, "\n")
}
