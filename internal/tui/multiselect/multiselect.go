package multiselect

import (
	"fmt"
	"slices"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
)

// SelectableItem extends list.Item with selection state.
// Items that implement this interface can be selected/deselected.
type SelectableItem interface {
	list.Item
	// Key identifies the item across list rebuilds.
	Key() string
	IsSelected() bool
	// WithSelected returns a copy of the item with the given state.
	WithSelected(bool) SelectableItem
}

// Model wraps a bubbles/list.Model with multi-select capabilities.
// Selection is kept by key, so it survives the list being refiltered,
// resorted or extended.
type Model struct {
	List          list.Model
	selected      map[string]bool
	showCount     bool   // Show selection count in title
	originalTitle string // Title without count suffix
}

// New creates a new multi-select model wrapping the given list.
func New(l list.Model) Model {
	return Model{
		List:          l,
		selected:      make(map[string]bool),
		originalTitle: l.Title,
	}
}

// SetShowCount controls whether selection count appears in title.
func (m *Model) SetShowCount(show bool) {
	m.showCount = show
	m.updateTitle()
}

// Toggle toggles the selection state of the item under the cursor.
// Returns false when the list is empty.
func (m *Model) Toggle() bool {
	item, ok := m.List.SelectedItem().(SelectableItem)
	if !ok {
		return false
	}
	key := item.Key()
	if m.selected[key] {
		delete(m.selected, key)
	} else {
		m.selected[key] = true
	}
	m.refresh()
	return true
}

// SelectKeys adds keys to the selection. Keys need not be in the list yet,
// so owners that reveal items page by page can select all of them at once.
func (m *Model) SelectKeys(keys ...string) {
	for _, k := range keys {
		m.selected[k] = true
	}
	m.refresh()
}

// Deselect removes keys from the selection.
func (m *Model) Deselect(keys ...string) {
	for _, k := range keys {
		delete(m.selected, k)
	}
	m.refresh()
}

// ClearSelection removes all selections.
func (m *Model) ClearSelection() {
	clear(m.selected)
	m.refresh()
}

// SelectedKeys returns the selected keys in sorted order.
func (m *Model) SelectedKeys() []string {
	keys := make([]string, 0, len(m.selected))
	for key := range m.selected {
		keys = append(keys, key)
	}
	slices.Sort(keys)
	return keys
}

// SelectedCount returns the number of selected items.
func (m *Model) SelectedCount() int {
	return len(m.selected)
}

// SetItems replaces the list contents, marking items that are selected.
func (m *Model) SetItems(items []list.Item) tea.Cmd {
	return m.List.SetItems(m.marked(items))
}

// refresh re-marks the current items after a selection change.
func (m *Model) refresh() {
	m.List.SetItems(m.marked(m.List.Items()))
	m.updateTitle()
}

func (m *Model) marked(items []list.Item) []list.Item {
	out := make([]list.Item, len(items))
	for i, item := range items {
		if s, ok := item.(SelectableItem); ok {
			out[i] = s.WithSelected(m.selected[s.Key()])
			continue
		}
		out[i] = item
	}
	return out
}

// updateTitle updates the list title with selection count if enabled.
func (m *Model) updateTitle() {
	if !m.showCount {
		return
	}
	if n := m.SelectedCount(); n > 0 {
		m.List.Title = fmt.Sprintf("%s (%d selected)", m.originalTitle, n)
		return
	}
	m.List.Title = m.originalTitle
}

// SetTitle updates the base title (without count).
func (m *Model) SetTitle(title string) {
	m.originalTitle = title
	m.List.Title = title
	m.updateTitle()
}

// Update handles messages for the multi-select model.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	m.List, cmd = m.List.Update(msg)
	return m, cmd
}

// View renders the list.
func (m Model) View() string {
	return m.List.View()
}
