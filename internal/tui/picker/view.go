package picker

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// View renders the trigger line and, when open, the dropdown below it.
func (m Model) View() string {
	lines := []string{m.triggerView()}
	if m.state.Open {
		lines = append(lines, m.dropdownLines()...)
	}
	return strings.Join(lines, "\n")
}

func (m Model) triggerView() string {
	selected := SelectedOptions(m.props)

	var b strings.Builder
	if len(selected) == 0 {
		b.WriteString(stylePlaceholder.Render(m.cfg.Placeholder))
	}
	for i, o := range selected {
		if i > 0 {
			b.WriteString(" ")
		}
		b.WriteString(ChipStyle(o.Color).Render("[" + o.Label + " ×]"))
	}

	caret := "▾"
	if m.state.Open {
		caret = "▴"
	}
	if m.focused {
		caret = styleCaretFocus.Render(caret)
	} else {
		caret = styleDim.Render(caret)
	}
	b.WriteString(" " + caret)
	return m.truncate(b.String())
}

func (m Model) dropdownLines() []string {
	lines := []string{m.input.View()}
	cands := m.Candidates()

	if len(cands) == 0 {
		switch {
		case HasCreateAffordance(m.state, m.props):
			row := fmt.Sprintf("+ Create %q", strings.TrimSpace(m.state.Search))
			if m.state.Highlight == 0 {
				lines = append(lines, styleCursor.Render("› ")+styleCreate.Bold(true).Render(row))
			} else {
				lines = append(lines, "  "+styleCreate.Render(row))
			}
		case m.state.Search != "":
			lines = append(lines, styleDim.Render("  No options found"))
		default:
			lines = append(lines, styleDim.Render("  No options"))
		}
		return lines
	}

	end := min(len(cands), m.offset+m.cfg.MaxVisible)
	if m.offset > 0 {
		lines = append(lines, styleDim.Render(fmt.Sprintf("  ↑ %d more", m.offset)))
	}
	for i := m.offset; i < end; i++ {
		lines = append(lines, m.truncate(m.rowView(i, cands[i].Label, cands[i].Color, cands[i].Value)))
	}
	if rest := len(cands) - end; rest > 0 {
		lines = append(lines, styleDim.Render(fmt.Sprintf("  ↓ %d more", rest)))
	}
	return lines
}

func (m Model) rowView(i int, label, color, value string) string {
	cursor := "  "
	if i == m.state.Highlight {
		cursor = styleCursor.Render("› ")
	}

	handle := ""
	if m.props.CanReorder {
		if i == m.state.Drag {
			handle = styleCursor.Render("⋮⋮") + " "
		} else {
			handle = styleDim.Render("⋮⋮") + " "
		}
	}

	mark := "  "
	if m.props.Value.Contains(value) {
		mark = lipgloss.NewStyle().Foreground(chipColors["green"]).Render("✓ ")
	}

	style := ChipStyle(color)
	if i == m.state.Highlight {
		style = style.Bold(true)
	}
	return cursor + handle + mark + style.Render(label)
}

func (m Model) truncate(s string) string {
	if m.cfg.Width <= 0 {
		return s
	}
	return ansi.Truncate(s, m.cfg.Width, "…")
}
