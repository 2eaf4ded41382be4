package controller

// DefaultGenresPerPage is how many genre chips show before the list is
// expanded.
const DefaultGenresPerPage = 20

// Chip is one selectable genre.
type Chip struct {
	Genre    string
	Selected bool
}

// Chips returns the chips currently visible, honoring the expansion flag.
func (c *Controller) Chips() []Chip {
	genres := c.index.Genres()
	if !c.chipsExpanded && len(genres) > c.chipsPerPage {
		genres = genres[:c.chipsPerPage]
	}
	chips := make([]Chip, len(genres))
	for i, g := range genres {
		chips[i] = Chip{Genre: g, Selected: c.selected.Contains(g)}
	}
	return chips
}

// CanExpandChips reports whether the catalog has more genres than fit in
// the collapsed list.
func (c *Controller) CanExpandChips() bool {
	return len(c.index.Genres()) > c.chipsPerPage
}

func (c *Controller) renderChips() {
	c.view.RenderGenreChips(c.Chips(), c.chipsExpanded, c.CanExpandChips())
}
