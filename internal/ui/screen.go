package ui

import (
	"github.com/abelbrown/moviematch/internal/catalog"
	"github.com/abelbrown/moviematch/internal/controller"
)

// Screen is the controller's View. It records what the controller asks to
// show; App reads it when drawing. Both run on the Bubble Tea event loop.
type Screen struct {
	chips     []controller.Chip
	expanded  bool
	canExpand bool

	cards        []catalog.Movie
	hasMore      bool
	cardsVersion int

	detail  *catalog.Movie
	busy    map[controller.Control]bool
	summary string
	notice  string
}

// NewScreen creates an empty Screen.
func NewScreen() *Screen {
	return &Screen{busy: make(map[controller.Control]bool)}
}

// RenderGenreChips implements controller.View.
func (s *Screen) RenderGenreChips(chips []controller.Chip, expanded, canExpand bool) {
	s.chips = chips
	s.expanded = expanded
	s.canExpand = canExpand
}

// RenderMovieCards implements controller.View.
func (s *Screen) RenderMovieCards(page []catalog.Movie, hasMore bool) {
	s.cards = page
	s.hasMore = hasMore
	s.cardsVersion++
}

// RenderMovieDetail implements controller.View.
func (s *Screen) RenderMovieDetail(m catalog.Movie) {
	s.detail = &m
}

// SetBusy implements controller.View.
func (s *Screen) SetBusy(c controller.Control, busy bool) {
	if busy {
		s.busy[c] = true
		return
	}
	delete(s.busy, c)
}

// ShowSummary implements controller.View.
func (s *Screen) ShowSummary(text string) {
	s.summary = text
}

// ShowNotice implements controller.View.
func (s *Screen) ShowNotice(text string) {
	s.notice = text
}

// Chips returns the chips last rendered.
func (s *Screen) Chips() []controller.Chip { return s.chips }

// Cards returns the cards last rendered.
func (s *Screen) Cards() []catalog.Movie { return s.cards }

// Summary returns the current summary line.
func (s *Screen) Summary() string { return s.summary }

// Notice returns the pending notice, if any.
func (s *Screen) Notice() string { return s.notice }

// Busy reports whether c is marked busy.
func (s *Screen) Busy(c controller.Control) bool { return s.busy[c] }

func (s *Screen) anyBusy() bool { return len(s.busy) > 0 }

// takeDetail returns and clears a pending detail request.
func (s *Screen) takeDetail() (catalog.Movie, bool) {
	if s.detail == nil {
		return catalog.Movie{}, false
	}
	m := *s.detail
	s.detail = nil
	return m, true
}
