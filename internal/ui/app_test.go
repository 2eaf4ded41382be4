package ui

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abelbrown/moviematch/internal/catalog"
	"github.com/abelbrown/moviematch/internal/controller"
	"github.com/abelbrown/moviematch/internal/mood"
)

type staticSource []catalog.Movie

func (s staticSource) Load(context.Context) ([]catalog.Movie, error) { return s, nil }

func testMovies() []catalog.Movie {
	return []catalog.Movie{
		{ID: "1", Title: "Heat", Year: "1995", Rating: catalog.Float(8.3), Tags: []string{"Crime", "Drama"}},
		{ID: "2", Title: "Airplane!", Year: "1980", Rating: catalog.Float(7.7), Tags: []string{"Comedy"}},
		{ID: "3", Title: "Alien", Year: "1979", Rating: catalog.Float(8.5), Tags: []string{"Horror", "Science Fiction"}},
		{ID: "4", Title: "The Heat", Year: "2013", Rating: catalog.Float(6.6), Tags: []string{"Comedy", "Crime"}},
		{ID: "5", Title: "Untitled", Tags: []string{"Noir"}},
	}
}

// drain runs cmd and any batched commands, collecting their messages. Only
// use it on commands known to return immediately.
func drain(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	batch, ok := msg.(tea.BatchMsg)
	if !ok {
		return []tea.Msg{msg}
	}
	var out []tea.Msg
	for _, c := range batch {
		out = append(out, drain(c)...)
	}
	return out
}

// deliverTasks feeds every TaskDone produced by cmd back into app.
func deliverTasks(t *testing.T, app App, cmd tea.Cmd) App {
	t.Helper()
	delivered := 0
	for _, msg := range drain(cmd) {
		if done, ok := msg.(TaskDone); ok {
			model, _ := app.Update(done)
			app = model.(App)
			delivered++
		}
	}
	require.NotZero(t, delivered, "command produced no TaskDone")
	return app
}

func press(app App, msgs ...tea.KeyMsg) (App, tea.Cmd) {
	var cmd tea.Cmd
	for _, msg := range msgs {
		var model tea.Model
		model, cmd = app.Update(msg)
		app = model.(App)
	}
	return app, cmd
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

var (
	keyTab   = tea.KeyMsg{Type: tea.KeyTab}
	keyEnter = tea.KeyMsg{Type: tea.KeyEnter}
	keySpace = tea.KeyMsg{Type: tea.KeySpace}
	keyEsc   = tea.KeyMsg{Type: tea.KeyEsc}
)

func newTestApp(t *testing.T, healthCheck func() tea.Cmd) (App, *controller.Controller, *Screen) {
	t.Helper()
	screen := NewScreen()
	ctrl := controller.New(controller.Config{View: screen, Source: staticSource(testMovies())})
	app := NewApp(context.Background(), ctrl, screen, healthCheck)

	model, _ := app.Update(tea.WindowSizeMsg{Width: 120, Height: 50})
	app = model.(App)

	app = deliverTasks(t, app, app.Init())
	return app, ctrl, screen
}

func TestAppInitLoadsCatalog(t *testing.T) {
	app, ctrl, screen := newTestApp(t, nil)

	assert.False(t, screen.Busy(controller.ControlCatalog))
	assert.Equal(t, 5, ctrl.Index().Len())
	assert.NotEmpty(t, screen.Chips())

	view := app.View()
	assert.Contains(t, view, "MovieMatch")
	assert.Contains(t, view, "5 movies")
}

func TestAppViewBeforeReady(t *testing.T) {
	screen := NewScreen()
	ctrl := controller.New(controller.Config{View: screen, Source: staticSource(nil)})
	app := NewApp(context.Background(), ctrl, screen, nil)

	assert.Equal(t, "Loading...", app.View())
}

func TestAppMoodPlaceholderSuggestsMoods(t *testing.T) {
	app, _, _ := newTestApp(t, nil)

	assert.Contains(t, app.mood.Placeholder, mood.Moods()[0])
}

func TestAppMoodSubmit(t *testing.T) {
	app, ctrl, screen := newTestApp(t, nil)

	app, _ = press(app, runes("something scary"))
	app, cmd := press(app, keyEnter)

	require.True(t, ctrl.Busy(controller.ControlMood))
	assert.Contains(t, app.View(), "Analyzing", "busy mood shows the spinner")

	app = deliverTasks(t, app, cmd)

	assert.False(t, ctrl.Busy(controller.ControlMood))
	assert.Equal(t, `Found 3 movies perfect for your mood: "something scary"`, screen.Summary())
	assert.Contains(t, app.View(), "Alien")
}

func TestAppEmptyMoodShowsNotice(t *testing.T) {
	app, _, screen := newTestApp(t, nil)

	app, cmd := press(app, keyEnter)

	assert.Nil(t, cmd, "empty mood should not start a task")
	assert.Equal(t, controller.NoticeEmptyMood, screen.Notice())
	assert.Contains(t, app.View(), controller.NoticeEmptyMood)

	press(app, runes("x"))
	assert.Empty(t, screen.Notice(), "any key dismisses the notice")
}

func TestAppGenreFlow(t *testing.T) {
	app, ctrl, screen := newTestApp(t, nil)

	// Chips are sorted: Comedy, Crime, Drama, ...
	app, _ = press(app, keyTab, keyTab)
	require.Equal(t, paneGenres, app.focus)

	app, _ = press(app, runes("g"))
	assert.Equal(t, controller.NoticeNoGenres, screen.Notice())

	app, _ = press(app, keySpace)
	require.Equal(t, []string{"Comedy"}, ctrl.Selected())

	app, _ = press(app, runes("g"))
	assert.Equal(t, "Found 2 movies based on your selected genres", screen.Summary())
	assert.Equal(t, paneResults, app.focus)

	press(app, keyTab, keyTab, keyTab, runes("x"))
	assert.Empty(t, ctrl.Selected())
}

func TestAppSearchAndDetail(t *testing.T) {
	app, _, screen := newTestApp(t, nil)

	app, _ = press(app, keyTab, runes("heat"), keyEnter)
	require.Len(t, screen.Cards(), 2)
	require.Equal(t, paneResults, app.focus)

	app, _ = press(app, tea.KeyMsg{Type: tea.KeyDown}, keyEnter)
	require.True(t, app.detailOpen)
	assert.Equal(t, "The Heat", app.detailMovie.Title)
	assert.Contains(t, app.View(), "2013 • Rating: 6.6/10")

	app, _ = press(app, runes("w"))
	assert.Equal(t, "https://www.google.com/search?q=watch+The%20Heat+online", app.watchLink)

	app, _ = press(app, keyEsc)
	assert.False(t, app.detailOpen)
}

func TestAppShowAllAndLoadMore(t *testing.T) {
	app, ctrl, screen := newTestApp(t, nil)

	app, _ = press(app, keyTab, keyTab, runes("a"))
	assert.Len(t, screen.Cards(), 5)

	app, _ = press(app, runes("m"))
	assert.Equal(t, 1, ctrl.Pager().Page(), "load more past the end is a no-op")
	assert.Zero(t, app.cardCursor)
}

func TestAppTypingDoesNotTriggerShortcuts(t *testing.T) {
	app, _, screen := newTestApp(t, nil)

	app, cmd := press(app, runes("q"), runes("a"))

	if cmd != nil {
		_, quit := cmd().(tea.QuitMsg)
		require.False(t, quit, "typing q in the mood box should not quit")
	}
	assert.Empty(t, screen.Cards(), "typing a in the mood box should not show all")
	assert.Equal(t, "qa", app.mood.Value())
}

func TestAppQuit(t *testing.T) {
	app, _, _ := newTestApp(t, nil)

	_, cmd := press(app, tea.KeyMsg{Type: tea.KeyCtrlC})

	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestAppClassifierStatus(t *testing.T) {
	checked := false
	healthCheck := func() tea.Cmd {
		checked = true
		return func() tea.Msg { return ClassifierStatus{Available: false} }
	}
	app, _, _ := newTestApp(t, healthCheck)

	assert.True(t, checked, "Init runs the health check")

	model, _ := app.Update(ClassifierStatus{Available: false})
	app = model.(App)
	assert.Contains(t, app.View(), "classifier offline")
}
