package ui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	NextPane key.Binding
	PrevPane key.Binding
	Up       key.Binding
	Down     key.Binding
	Left     key.Binding
	Right    key.Binding
	Submit   key.Binding
	Toggle   key.Binding
	Clear    key.Binding
	Genres   key.Binding
	ShowAll  key.Binding
	LoadMore key.Binding
	Expand   key.Binding
	Close    key.Binding
	Watch    key.Binding
	Help     key.Binding
	Quit     key.Binding
	Force    key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		NextPane: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next pane")),
		PrevPane: key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "prev pane")),
		Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Left:     key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "left")),
		Right:    key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "right")),
		Submit:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "submit/open")),
		Toggle:   key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "toggle genre")),
		Clear:    key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "clear genres")),
		Genres:   key.NewBinding(key.WithKeys("g"), key.WithHelp("g", "by genres")),
		ShowAll:  key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "show all")),
		LoadMore: key.NewBinding(key.WithKeys("m", "n"), key.WithHelp("m", "load more")),
		Expand:   key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "more/less genres")),
		Close:    key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "close")),
		Watch:    key.NewBinding(key.WithKeys("w"), key.WithHelp("w", "watch link")),
		Help:     key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:     key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
		Force:    key.NewBinding(key.WithKeys("ctrl+c")),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextPane, k.Submit, k.Toggle, k.ShowAll, k.LoadMore, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.NextPane, k.PrevPane, k.Up, k.Down, k.Left, k.Right},
		{k.Submit, k.Toggle, k.Clear, k.Genres, k.Expand},
		{k.ShowAll, k.LoadMore, k.Close, k.Watch, k.Help, k.Quit},
	}
}
