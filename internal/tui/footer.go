package tui

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// keyboardIndicatorTTL is how long the keyboard navigation badge stays lit
// after the last navigation key.
const keyboardIndicatorTTL = 2 * time.Second

// ClearActiveCmdMsg clears the active command highlight in the footer.
type ClearActiveCmdMsg struct{}

// ShortcutEntry pairs a trigger key with the display label for footer highlighting.
type ShortcutEntry struct {
	Key   string // trigger key to match against activeCmd (empty = no highlight)
	Label string // display text
}

// HighlightCmd returns a 500ms tick command to clear the active command highlight.
// Callers must set activeCmd on the model directly before returning:
//
//	m.activeCmd = "key"
//	return m, tui.HighlightCmd()
func HighlightCmd() tea.Cmd {
	return tea.Tick(500*time.Millisecond, func(time.Time) tea.Msg {
		return ClearActiveCmdMsg{}
	})
}

// KeyboardActivityMsg is sent when a picker reports keyboard navigation.
type KeyboardActivityMsg struct{}

// keyboardIdleMsg ends the indicator, unless newer activity arrived since
// the tick that produced it was scheduled.
type keyboardIdleMsg struct{ seq int }

// KeyboardActivity is the command picker owners return from
// OnKeyboardActivity.
func KeyboardActivity() tea.Msg { return KeyboardActivityMsg{} }

// KeyboardIndicator shows "keyboard navigation" in the footer for a short
// while after each reported navigation key.
type KeyboardIndicator struct {
	active bool
	seq    int
}

// Active reports whether the badge is shown.
func (k KeyboardIndicator) Active() bool { return k.active }

// Update consumes the indicator's own messages and reports whether msg was
// one of them.
func (k *KeyboardIndicator) Update(msg tea.Msg) (tea.Cmd, bool) {
	switch msg := msg.(type) {
	case KeyboardActivityMsg:
		k.active = true
		k.seq++
		seq := k.seq
		return tea.Tick(keyboardIndicatorTTL, func(time.Time) tea.Msg {
			return keyboardIdleMsg{seq: seq}
		}), true
	case keyboardIdleMsg:
		if msg.seq == k.seq {
			k.active = false
		}
		return nil, true
	}
	return nil, false
}

// View renders the badge, or nothing when idle.
func (k KeyboardIndicator) View() string {
	if !k.active {
		return ""
	}
	return lipgloss.NewStyle().Foreground(ColorTealLight).Render("⌨ keyboard navigation")
}

// RenderFooterBar renders a footer bar with shortcut labels.
// The shortcut matching activeCmd is rendered with StyleHighlight; others are dim.
func RenderFooterBar(shortcuts []ShortcutEntry, activeCmd string) string {
	dimStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("240"))

	parts := make([]string, len(shortcuts))
	for i, sc := range shortcuts {
		if activeCmd != "" && sc.Key == activeCmd {
			parts[i] = StyleHighlight.Render("[ " + sc.Label + " ]")
		} else {
			parts[i] = dimStyle.Render(sc.Label)
		}
	}

	return lipgloss.NewStyle().Padding(0, 1).Render(strings.Join(parts, dimStyle.Render(" • ")))
}
