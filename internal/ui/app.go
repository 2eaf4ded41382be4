package ui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/abelbrown/moviematch/internal/catalog"
	"github.com/abelbrown/moviematch/internal/controller"
	"github.com/abelbrown/moviematch/internal/mood"
)

type pane int

const (
	paneMood pane = iota
	paneSearch
	paneGenres
	paneResults
	paneCount
)

// App is the root Bubble Tea model.
// App does not filter movies itself. Every action goes through the
// controller, which renders into the shared Screen.
type App struct {
	ctx         context.Context
	ctrl        *controller.Controller
	screen      *Screen
	healthCheck func() tea.Cmd

	keys     keyMap
	help     help.Model
	mood     textinput.Model
	search   textinput.Model
	spinner  spinner.Model
	viewport viewport.Model

	focus       pane
	chipCursor  int
	cardCursor  int
	cardsSeen   int
	detailOpen  bool
	detailMovie catalog.Movie
	watchLink   string

	classifierKnown bool
	classifierUp    bool

	width  int
	height int
	ready  bool
}

// NewApp creates an App driving ctrl. screen must be the View ctrl was
// built with. healthCheck, if not nil, returns a Cmd that reports ClassifierStatus.
func NewApp(ctx context.Context, ctrl *controller.Controller, screen *Screen, healthCheck func() tea.Cmd) App {
	moodInput := textinput.New()
	moodInput.Placeholder = moodPlaceholder()
	moodInput.CharLimit = 200
	moodInput.Prompt = ""
	moodInput.Focus()

	search := textinput.New()
	search.Placeholder = "Search by title"
	search.CharLimit = 100
	search.Prompt = ""

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = Stars

	return App{
		ctx:         ctx,
		ctrl:        ctrl,
		screen:      screen,
		healthCheck: healthCheck,
		keys:        defaultKeyMap(),
		help:        help.New(),
		mood:        moodInput,
		search:      search,
		spinner:     sp,
		viewport:    viewport.New(0, 0),
	}
}

// moodPlaceholder suggests a few lexicon moods.
func moodPlaceholder() string {
	moods := mood.Moods()
	return "How are you feeling? e.g. " + strings.Join(moods[:min(3, len(moods))], ", ")
}

// Init loads the catalog and checks the classifier.
func (a App) Init() tea.Cmd {
	cmds := []tea.Cmd{a.run(a.ctrl.LoadCatalog()), a.spinner.Tick, textinput.Blink}
	if a.healthCheck != nil {
		cmds = append(cmds, a.healthCheck())
	}
	return tea.Batch(cmds...)
}

// run executes a controller task off the event loop.
func (a App) run(task controller.Task) tea.Cmd {
	if task == nil {
		return nil
	}
	ctx := a.ctx
	return func() tea.Msg {
		return TaskDone{Completion: task(ctx)}
	}
}

// Update handles messages and returns the updated model and any commands.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		model, cmd := a.handleKeyMsg(msg)
		app := model.(App)
		app.sync()
		return app, cmd

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.ready = true
		a.help.Width = msg.Width
		a.mood.Width = max(msg.Width-12, 10)
		a.search.Width = max(msg.Width-12, 10)
		a.viewport.Width = max(msg.Width-8, 10)
		a.viewport.Height = max(msg.Height-8, 3)
		if a.detailOpen {
			a.viewport.SetContent(RenderDetail(a.detailMovie, a.viewport.Width))
		}
		return a, nil

	case TaskDone:
		a.ctrl.Complete(msg.Completion)
		a.sync()
		return a, nil

	case ClassifierStatus:
		a.classifierKnown = true
		a.classifierUp = msg.Available
		return a, nil

	case spinner.TickMsg:
		if !a.screen.anyBusy() {
			return a, nil
		}
		var cmd tea.Cmd
		a.spinner, cmd = a.spinner.Update(msg)
		return a, cmd
	}

	var cmd tea.Cmd
	switch a.focus {
	case paneMood:
		a.mood, cmd = a.mood.Update(msg)
	case paneSearch:
		a.search, cmd = a.search.Update(msg)
	}
	return a, cmd
}

// sync pulls controller output from the Screen into local view state.
func (a *App) sync() {
	if a.screen.cardsVersion != a.cardsSeen {
		a.cardsSeen = a.screen.cardsVersion
		a.cardCursor = 0
	}
	if n := len(a.screen.cards); a.cardCursor >= n {
		a.cardCursor = max(n-1, 0)
	}
	if n := len(a.screen.chips); a.chipCursor >= n {
		a.chipCursor = max(n-1, 0)
	}
	if m, ok := a.screen.takeDetail(); ok {
		a.detailOpen = true
		a.detailMovie = m
		a.watchLink = ""
		a.viewport.SetContent(RenderDetail(m, a.viewport.Width))
		a.viewport.GotoTop()
	}
}

// handleKeyMsg processes keyboard input.
func (a App) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, a.keys.Force) {
		return a, tea.Quit
	}

	// Any key dismisses a notice.
	a.screen.notice = ""

	if a.detailOpen {
		return a.handleDetailKey(msg)
	}

	switch {
	case key.Matches(msg, a.keys.NextPane):
		cmd := a.setFocus((a.focus + 1) % paneCount)
		return a, cmd
	case key.Matches(msg, a.keys.PrevPane):
		cmd := a.setFocus((a.focus + paneCount - 1) % paneCount)
		return a, cmd
	}

	switch a.focus {
	case paneMood:
		if key.Matches(msg, a.keys.Submit) {
			task, err := a.ctrl.OnMoodSubmit(a.mood.Value())
			if err != nil {
				return a, nil
			}
			return a, tea.Batch(a.run(task), a.spinner.Tick)
		}
		var cmd tea.Cmd
		a.mood, cmd = a.mood.Update(msg)
		return a, cmd

	case paneSearch:
		if key.Matches(msg, a.keys.Submit) {
			if err := a.ctrl.OnSearchSubmit(a.search.Value()); err == nil {
				a.focus = paneResults
				a.search.Blur()
			}
			return a, nil
		}
		var cmd tea.Cmd
		a.search, cmd = a.search.Update(msg)
		return a, cmd

	case paneGenres:
		if a.handleGenreKey(msg) {
			return a, nil
		}

	case paneResults:
		if a.handleResultKey(msg) {
			return a, nil
		}
	}

	return a.handleGlobalKey(msg)
}

func (a *App) handleGenreKey(msg tea.KeyMsg) bool {
	chips := a.screen.Chips()
	switch {
	case key.Matches(msg, a.keys.Left, a.keys.Up):
		if a.chipCursor > 0 {
			a.chipCursor--
		}
	case key.Matches(msg, a.keys.Right, a.keys.Down):
		if a.chipCursor < len(chips)-1 {
			a.chipCursor++
		}
	case key.Matches(msg, a.keys.Toggle):
		if a.chipCursor < len(chips) {
			a.ctrl.OnGenreToggle(chips[a.chipCursor].Genre)
		}
	case key.Matches(msg, a.keys.Submit, a.keys.Genres):
		if err := a.ctrl.OnGenreSubmit(); err == nil {
			a.focus = paneResults
		}
	case key.Matches(msg, a.keys.Clear):
		a.ctrl.OnGenreClear()
	default:
		return false
	}
	return true
}

func (a *App) handleResultKey(msg tea.KeyMsg) bool {
	switch {
	case key.Matches(msg, a.keys.Up):
		if a.cardCursor > 0 {
			a.cardCursor--
		}
	case key.Matches(msg, a.keys.Down):
		if a.cardCursor < len(a.screen.cards)-1 {
			a.cardCursor++
		}
	case key.Matches(msg, a.keys.Submit):
		_ = a.ctrl.OnSelectMovie(a.cardCursor)
	default:
		return false
	}
	return true
}

// handleGlobalKey handles shortcuts available outside the text inputs.
func (a App) handleGlobalKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, a.keys.Quit):
		return a, tea.Quit
	case key.Matches(msg, a.keys.ShowAll):
		a.ctrl.OnShowAll()
		a.focus = paneResults
	case key.Matches(msg, a.keys.LoadMore):
		a.ctrl.OnLoadMore()
	case key.Matches(msg, a.keys.Expand):
		a.ctrl.OnGenreExpandToggle()
	case key.Matches(msg, a.keys.Genres):
		if err := a.ctrl.OnGenreSubmit(); err == nil {
			a.focus = paneResults
		}
	case key.Matches(msg, a.keys.Help):
		a.help.ShowAll = !a.help.ShowAll
	}
	return a, nil
}

func (a App) handleDetailKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, a.keys.Close):
		a.detailOpen = false
		a.watchLink = ""
		return a, nil
	case key.Matches(msg, a.keys.Watch):
		a.watchLink = WatchURL(a.detailMovie.DisplayTitle())
		return a, nil
	case key.Matches(msg, a.keys.Quit):
		return a, tea.Quit
	}
	var cmd tea.Cmd
	a.viewport, cmd = a.viewport.Update(msg)
	return a, cmd
}

// setFocus moves focus to p, focusing the matching text input.
func (a *App) setFocus(p pane) tea.Cmd {
	a.focus = p
	a.mood.Blur()
	a.search.Blur()
	switch p {
	case paneMood:
		return a.mood.Focus()
	case paneSearch:
		return a.search.Focus()
	}
	return nil
}

// View renders the App.
func (a App) View() string {
	if !a.ready {
		return "Loading..."
	}

	if a.detailOpen {
		return lipgloss.JoinVertical(lipgloss.Left,
			a.renderHeader(),
			DetailPanel.Render(a.viewport.View()),
			a.renderDetailFooter(),
		)
	}

	top := lipgloss.JoinVertical(lipgloss.Left,
		a.renderHeader(),
		a.renderInput("Mood", paneMood, a.mood.View(), a.screen.Busy(controller.ControlMood)),
		a.renderInput("Search", paneSearch, a.search.View(), false),
		a.renderGenres(),
		a.renderSummary(),
	)
	bottom := a.renderBottom()

	avail := a.height - lipgloss.Height(top) - lipgloss.Height(bottom)
	return lipgloss.JoinVertical(lipgloss.Left, top, a.renderCards(avail), bottom)
}

func (a App) renderHeader() string {
	var status string
	switch {
	case a.screen.Busy(controller.ControlCatalog):
		status = a.spinner.View() + " Loading movies..."
	case a.ctrl.Degraded():
		status = "sample catalog"
	default:
		status = fmt.Sprintf("%d movies", a.ctrl.Index().Len())
	}
	if a.classifierKnown {
		if a.classifierUp {
			status += " · classifier online"
		} else {
			status += " · classifier offline, keyword matching"
		}
	}
	return TitleBar.Render("MovieMatch") + " " + StatusBarText.Render(status)
}

func (a App) renderInput(label string, p pane, field string, busy bool) string {
	style := PaneLabel
	if a.focus == p {
		style = FocusedPaneLabel
	}
	line := style.Render(label) + field
	if busy {
		line += " " + a.spinner.View() + " Analyzing..."
	}
	return line
}

func (a App) renderGenres() string {
	label := PaneLabel
	if a.focus == paneGenres {
		label = FocusedPaneLabel
	}
	header := label.Render("Genres")
	if sel := a.ctrl.Selected(); len(sel) > 0 {
		header += CardMeta.Render(strings.Join(sel, ", "))
	}
	if a.screen.canExpand {
		if a.screen.expanded {
			header += CardMeta.Render("  (e: show less)")
		} else {
			header += CardMeta.Render("  (e: show more)")
		}
	}
	return header + "\n" + renderChips(a.screen.Chips(), a.chipCursor, a.focus == paneGenres, a.width)
}

func (a App) renderSummary() string {
	if a.screen.summary == "" {
		return ""
	}
	return SummaryStyle.Render(a.screen.summary)
}

// renderCards renders the window of cards around the cursor that fits in
// height lines.
func (a App) renderCards(height int) string {
	cards := a.screen.cards
	if len(cards) == 0 {
		return ""
	}

	footer := ""
	if a.screen.hasMore {
		footer = CardMeta.Render(fmt.Sprintf("  m: load more (page %d, %d total)",
			a.ctrl.Pager().Page(), a.ctrl.Pager().Total()))
		height--
	}

	visible := max(height/cardHeight, 1)
	start := 0
	if a.cardCursor >= visible {
		start = a.cardCursor - visible + 1
	}
	end := min(start+visible, len(cards))

	var b strings.Builder
	for i := start; i < end; i++ {
		b.WriteString(RenderCard(cards[i], a.focus == paneResults && i == a.cardCursor, a.width))
		b.WriteString("\n\n")
	}
	b.WriteString(footer)
	return b.String()
}

func (a App) renderBottom() string {
	var parts []string
	if a.screen.notice != "" {
		parts = append(parts, NoticeStyle.Render(a.screen.notice+" (press any key to dismiss)"))
	}
	parts = append(parts, HelpStyle.Render(a.help.View(a.keys)))
	return strings.Join(parts, "\n")
}

func (a App) renderDetailFooter() string {
	line := StatusBarText.Render("esc: back  w: watch link  ↑/↓: scroll  q: quit")
	if a.watchLink != "" {
		line = StatusBar.Render(a.watchLink) + "\n" + line
	}
	return line
}
