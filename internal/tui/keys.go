package tui

import "github.com/charmbracelet/bubbles/key"

// StandardKeys defines common key bindings used across TUI components.
type StandardKeys struct {
	Quit   key.Binding
	Select key.Binding
	Back   key.Binding
	Toggle key.Binding
}

// NewStandardKeys creates a standard set of key bindings.
func NewStandardKeys() StandardKeys {
	return StandardKeys{
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "select"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
		Toggle: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "toggle"),
		),
	}
}

// browserKeys are the shortcuts of the book browser's list view.
type browserKeys struct {
	StandardKeys
	Search    key.Binding
	Filter    key.Binding
	Sort      key.Binding
	SelectAll key.Binding
	Clear     key.Binding
	Tag       key.Binding
	Delete    key.Binding
	Add       key.Binding
	Details   key.Binding
}

func newBrowserKeys() browserKeys {
	return browserKeys{
		StandardKeys: NewStandardKeys(),
		Search:       key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
		Filter:       key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "filter")),
		Sort:         key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "sort")),
		SelectAll:    key.NewBinding(key.WithKeys("A"), key.WithHelp("A", "select all")),
		Clear:        key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "clear")),
		Tag:          key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "tag")),
		Delete:       key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete")),
		Add:          key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add")),
		Details:      key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "details")),
	}
}
