package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines the [key.Binding] mapping for the TUI.
type keyMap struct {
	up        key.Binding
	down      key.Binding
	dashboard key.Binding
	words     key.Binding
	tracks    key.Binding
	search    key.Binding
	sort      key.Binding
	filter    key.Binding
	more      key.Binding
	bypass    key.Binding
	back      key.Binding
	quit      key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		up:        key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		down:      key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		dashboard: key.NewBinding(key.WithKeys("1"), key.WithHelp("1", "dashboard")),
		words:     key.NewBinding(key.WithKeys("2"), key.WithHelp("2", "words")),
		tracks:    key.NewBinding(key.WithKeys("3"), key.WithHelp("3", "tracks")),
		search:    key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
		sort:      key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "sort")),
		filter:    key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "filter")),
		more:      key.NewBinding(key.WithKeys("m", "pgdown"), key.WithHelp("m", "more")),
		bypass:    key.NewBinding(key.WithKeys("b"), key.WithHelp("b", "browse offline")),
		back:      key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
		quit:      key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.dashboard, k.words, k.tracks},
		{k.search, k.sort, k.filter, k.more},
		{k.back, k.quit},
	}
}
