// Package controller owns MovieMatch's session state and turns user intents
// into view updates.
//
// The controller sits between the catalog (data) and a View (rendering),
// deciding which movies are shown.
//
//	┌─────────┐     ┌────────────┐     ┌──────┐
//	│ Catalog │ ──> │ Controller │ ──> │ View │
//	│ + Mood  │     │  (State)   │ <── │(TUI) │
//	└─────────┘     └────────────┘     └──────┘
//
// # Intents
//
// The View calls one On* method per user action. Synchronous intents (genre
// toggles, search, show all, paging) update state and render immediately.
// Intents that need I/O (catalog load, mood resolution) return a [Task].
//
// # Tasks and completions
//
// A Task does the blocking work and returns a [Completion]. The View runs it
// off the event thread and hands the Completion back to [Controller.Complete]
// on the event thread. Only intents and Complete mutate state, so the
// Controller needs no locking as long as a single goroutine calls them.
//
// # Stale results
//
// Every result-producing action advances a request token. A mood resolution
// carrying an older token is dropped, so a slow classifier answer never
// replaces a newer result.
package controller

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/abelbrown/moviematch/internal/catalog"
	"github.com/abelbrown/moviematch/internal/filter"
	"github.com/abelbrown/moviematch/internal/pager"
	"github.com/abelbrown/moviematch/internal/selection"
)

// User-facing validation notices.
const (
	NoticeEmptyMood   = "Please describe your mood to get AI recommendations!"
	NoticeEmptySearch = "Please enter a movie name to search!"
	NoticeNoGenres    = "Please select at least one genre to get recommendations!"
)

// Validation and flow-control errors returned by intents.
var (
	ErrEmptyMood   = errors.New("controller: empty mood text")
	ErrEmptySearch = errors.New("controller: empty search term")
	ErrNoGenres    = errors.New("controller: no genres selected")
	ErrBusy        = errors.New("controller: action already in progress")
	ErrNoMovie     = errors.New("controller: no movie at that position")
)

// Control identifies a user control that can be marked busy.
type Control string

const (
	ControlCatalog Control = "catalog"
	ControlMood    Control = "mood"
)

// View renders controller output. Implementations are called on the event
// thread only.
type View interface {
	RenderGenreChips(chips []Chip, expanded, canExpand bool)
	RenderMovieCards(page []catalog.Movie, hasMore bool)
	RenderMovieDetail(m catalog.Movie)
	SetBusy(c Control, busy bool)
	ShowSummary(text string)
	ShowNotice(text string)
}

// Controller holds the application state for one session.
type Controller struct {
	view     View
	source   catalog.Source
	resolver Resolver
	logger   *log.Logger

	index         *catalog.Index
	degraded      bool
	selected      selection.Set
	pages         *pager.Pager
	chipsExpanded bool
	chipsPerPage  int
	busy          map[Control]bool
	token         uint64
	summary       string
}

// Config wires a Controller's collaborators.
type Config struct {
	View     View
	Source   catalog.Source
	Resolver Resolver
	Logger   *log.Logger

	// GenresPerPage is how many chips show while collapsed. Default 20.
	GenresPerPage int
}

// New creates a Controller with an empty catalog. Call LoadCatalog to fill it.
func New(cfg Config) *Controller {
	if cfg.Logger == nil {
		cfg.Logger = log.New(io.Discard)
	}
	if cfg.GenresPerPage <= 0 {
		cfg.GenresPerPage = DefaultGenresPerPage
	}
	return &Controller{
		view:         cfg.View,
		source:       cfg.Source,
		resolver:     cfg.Resolver,
		logger:       cfg.Logger,
		index:        catalog.NewIndex(nil),
		pages:        pager.New(filter.Result{}),
		chipsPerPage: cfg.GenresPerPage,
		busy:         make(map[Control]bool),
	}
}

// Index returns the loaded catalog.
func (c *Controller) Index() *catalog.Index { return c.index }

// Degraded reports whether the sample catalog replaced a failed load.
func (c *Controller) Degraded() bool { return c.degraded }

// Busy reports whether a control has a pending task.
func (c *Controller) Busy(ctrl Control) bool { return c.busy[ctrl] }

// Selected returns the selected genres in selection order.
func (c *Controller) Selected() []string { return c.selected.Snapshot() }

// Summary returns the sentence describing the current result.
func (c *Controller) Summary() string { return c.summary }

// Pager exposes the paging state of the current result.
func (c *Controller) Pager() *pager.Pager { return c.pages }

// OnGenreToggle flips a genre chip.
func (c *Controller) OnGenreToggle(genre string) {
	c.selected.Toggle(genre)
	c.renderChips()
}

// OnGenreClear deselects every genre.
func (c *Controller) OnGenreClear() {
	c.selected.Clear()
	c.renderChips()
}

// OnGenreExpandToggle switches between the collapsed and full chip list.
func (c *Controller) OnGenreExpandToggle() {
	c.chipsExpanded = !c.chipsExpanded
	c.renderChips()
}

// OnGenreSubmit shows movies matching any selected genre.
func (c *Controller) OnGenreSubmit() error {
	if c.selected.Len() == 0 {
		c.view.ShowNotice(NoticeNoGenres)
		return ErrNoGenres
	}
	c.show(filter.ByGenres(c.index.Movies(), c.selected.Snapshot()))
	return nil
}

// OnSearchSubmit shows movies whose title contains term.
func (c *Controller) OnSearchSubmit(term string) error {
	term = strings.TrimSpace(term)
	if term == "" {
		c.view.ShowNotice(NoticeEmptySearch)
		return ErrEmptySearch
	}
	c.show(filter.ByTitle(c.index.Movies(), term))
	return nil
}

// OnShowAll shows the whole catalog ranked by rating.
func (c *Controller) OnShowAll() {
	c.show(filter.All(c.index.Movies()))
}

// OnLoadMore reveals the next page of the current result, if any.
func (c *Controller) OnLoadMore() {
	if !c.pages.Advance() {
		return
	}
	c.view.RenderMovieCards(c.pages.CurrentPage(), c.pages.HasMore())
}

// OnSelectMovie opens the detail view for the i-th card of the current page.
func (c *Controller) OnSelectMovie(i int) error {
	page := c.pages.CurrentPage()
	if i < 0 || i >= len(page) {
		return fmt.Errorf("%w: %d", ErrNoMovie, i)
	}
	c.view.RenderMovieDetail(page[i])
	return nil
}

// show replaces the current result, advancing the request token so any
// pending mood resolution is treated as stale.
func (c *Controller) show(res filter.Result) {
	c.token++
	c.present(res)
}

func (c *Controller) present(res filter.Result) {
	c.pages.Reset(res)
	c.summary = res.Summary
	c.view.ShowSummary(res.Summary)
	c.view.RenderMovieCards(c.pages.CurrentPage(), c.pages.HasMore())
}

func (c *Controller) setBusy(ctrl Control, busy bool) {
	if busy {
		c.busy[ctrl] = true
	} else {
		delete(c.busy, ctrl)
	}
	c.view.SetBusy(ctrl, busy)
}
