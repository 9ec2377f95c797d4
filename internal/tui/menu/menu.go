// Package menu is a small list-backed menu used for the browser's sort and
// filter overlays.
package menu

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/blackwell-systems/bookshelf/internal/tui/delegate"
)

// Kind selects how choosing an item changes the checked marks.
type Kind int

const (
	// Radio keeps exactly one item checked.
	Radio Kind = iota
	// Checkbox toggles the chosen item.
	Checkbox
)

// Item is one menu row. Group is printed beside the first row of each run
// of rows sharing it.
type Item struct {
	Group   string
	Key     string
	Label   string
	Checked bool
}

// FilterValue implements list.Item.
func (i Item) FilterValue() string { return i.Label }

// SelectHandler is called with the chosen item after its mark was updated.
// Return true to close the menu.
type SelectHandler func(Item) bool

// KeyHandler is called for custom key handling.
// Return true if the key was handled, false to pass through to default handling.
type KeyHandler func(msg tea.KeyMsg) (handled bool, cmd tea.Cmd)

// Config configures a menu.
type Config struct {
	Title string
	Kind  Kind
	Items []Item

	// Keys are the key bindings; zero bindings fall back to esc and enter/space.
	CloseKeys  key.Binding
	SelectKeys key.Binding

	OnSelect   SelectHandler
	OnKeyPress KeyHandler

	Width  int
	Height int
}

// Model is a menu. It is used through a pointer, the way list-backed
// components share one list between the owner and its handlers.
type Model struct {
	config Config
	list   list.Model
	closed bool
}

var (
	styleCursor = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#D75F00", Dark: "#FF8700"})
	styleGroup  = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#767676", Dark: "#808080"})
	styleTitle  = lipgloss.NewStyle().Bold(true)
)

// New creates an open menu.
func New(cfg Config) *Model {
	if len(cfg.CloseKeys.Keys()) == 0 {
		cfg.CloseKeys = key.NewBinding(key.WithKeys("esc", "q"), key.WithHelp("esc", "close"))
	}
	if len(cfg.SelectKeys.Keys()) == 0 {
		cfg.SelectKeys = key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "choose"))
	}
	if cfg.Width <= 0 {
		cfg.Width = 40
	}
	if cfg.Height <= 0 {
		cfg.Height = len(cfg.Items) + 4
	}

	items := make([]list.Item, len(cfg.Items))
	for i, it := range cfg.Items {
		items[i] = it
	}

	m := &Model{config: cfg}
	l := list.New(items, delegate.New(m.render), cfg.Width, cfg.Height)
	l.Title = cfg.Title
	l.Styles.Title = styleTitle
	l.SetShowStatusBar(false)
	l.SetShowHelp(false)
	l.SetShowPagination(false)
	l.SetFilteringEnabled(false)
	l.KeyMap.Quit.SetEnabled(false)
	l.KeyMap.ForceQuit.SetEnabled(false)
	m.list = l
	return m
}

// Closed reports whether the menu was dismissed or a handler closed it.
func (m *Model) Closed() bool { return m.closed }

// Close marks the menu closed.
func (m *Model) Close() { m.closed = true }

// Items returns the rows with their current marks.
func (m *Model) Items() []Item {
	out := make([]Item, 0, len(m.list.Items()))
	for _, it := range m.list.Items() {
		if i, ok := it.(Item); ok {
			out = append(out, i)
		}
	}
	return out
}

// Checked returns the keys of the checked rows in menu order.
func (m *Model) Checked() []string {
	var keys []string
	for _, it := range m.Items() {
		if it.Checked {
			keys = append(keys, it.Key)
		}
	}
	return keys
}

// Cursor returns the index of the row under the cursor.
func (m *Model) Cursor() int { return m.list.Index() }

// Update handles key input for an open menu.
func (m *Model) Update(msg tea.Msg) tea.Cmd {
	if m.closed {
		return nil
	}
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.config.OnKeyPress != nil {
			if handled, cmd := m.config.OnKeyPress(msg); handled {
				return cmd
			}
		}

		switch {
		case key.Matches(msg, m.config.CloseKeys):
			m.closed = true
			return nil

		case key.Matches(msg, m.config.SelectKeys):
			m.choose(m.list.Index())
			return nil
		}

	case tea.WindowSizeMsg:
		m.list.SetWidth(msg.Width)
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return cmd
}

func (m *Model) choose(index int) {
	items := m.Items()
	if index < 0 || index >= len(items) {
		return
	}
	switch m.config.Kind {
	case Radio:
		for i := range items {
			items[i].Checked = i == index
		}
	case Checkbox:
		items[index].Checked = !items[index].Checked
	}

	next := make([]list.Item, len(items))
	for i, it := range items {
		next[i] = it
	}
	m.list.SetItems(next)

	if m.config.OnSelect != nil && m.config.OnSelect(items[index]) {
		m.closed = true
	}
}

// View renders the menu.
func (m *Model) View() string {
	if m.closed {
		return ""
	}
	return m.list.View()
}

func (m *Model) render(w io.Writer, l list.Model, index int, li list.Item) {
	it, ok := li.(Item)
	if !ok {
		return
	}

	cursor := "  "
	if index == l.Index() {
		cursor = styleCursor.Render("›") + " "
	}

	var mark string
	switch m.config.Kind {
	case Radio:
		mark = "( ) "
		if it.Checked {
			mark = "(•) "
		}
	case Checkbox:
		mark = "[ ] "
		if it.Checked {
			mark = "[✓] "
		}
	}

	group := ""
	if gw := m.groupWidth(); gw > 0 {
		label := ""
		if index == 0 || groupOf(l.Items()[index-1]) != it.Group {
			label = it.Group
		}
		group = styleGroup.Render(fmt.Sprintf("%-*s", gw, label)) + " "
	}

	_, _ = fmt.Fprint(w, cursor+group+mark+it.Label)
}

func (m *Model) groupWidth() int {
	n := 0
	for _, it := range m.config.Items {
		n = max(n, len([]rune(it.Group)))
	}
	return n
}

func groupOf(li list.Item) string {
	if it, ok := li.(Item); ok {
		return it.Group
	}
	return ""
}
