package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/blackwell-systems/bookshelf/internal/catalog"
)

func (m BrowserModel) renderDetailsPane() string {
	bookItem, ok := m.ms.List.SelectedItem().(BookItem)
	if !ok {
		return ""
	}
	b := bookItem.Book

	// Calculate details pane width (40% of screen, accounting for divider and master border)
	detailsWidth := ((m.width - 2) * 4) / 10
	if detailsWidth < 30 {
		detailsWidth = 30 // Minimum width for readability
	}
	const labelWidth = 11 // "Published: "
	maxTextWidth := max(detailsWidth-2-labelWidth, 10)

	detailsStyle := lipgloss.NewStyle().
		Width(detailsWidth).
		Padding(0, 1)

	var s strings.Builder
	s.WriteString(StyleHeader.Render("Book Details"))
	s.WriteString("\n\n")

	row := func(label, value string) {
		if value == "" {
			return
		}
		s.WriteString(StyleHighlight.Render(label + ": "))
		s.WriteString(padOrTruncate(value, min(maxTextWidth, lipgloss.Width(value))))
		s.WriteString("\n")
	}

	row("Title", b.Title)
	row("Author", b.Author)
	row("Genre", b.Genre)
	row("Status", b.Status.Label())
	if b.Rating > 0 {
		row("Rating", catalog.Stars(b.Rating))
	}
	row("Format", b.Format.Label())
	row("Location", b.Location)
	row("Publisher", b.Publisher)
	if b.PublishedYear > 0 {
		row("Published", strconv.Itoa(b.PublishedYear))
	}
	if b.PageCount > 0 {
		row("Pages", strconv.Itoa(b.PageCount))
	}
	row("Language", b.Language)
	row("ISBN", b.ISBN)
	row("Added", b.DateAdded)
	row("Completed", b.DateCompleted)

	if len(b.Tags) > 0 {
		s.WriteString("\n")
		for _, t := range b.Tags {
			pill := lipgloss.NewStyle().
				Background(ColorTealDim).Foreground(ColorTealLight).
				Padding(0, 1).Render(t)
			s.WriteString(pill + " ")
		}
		s.WriteString("\n")
	}
	if b.Notes != "" {
		s.WriteString("\n")
		s.WriteString(StyleHelp.Width(detailsWidth - 2).Render(b.Notes))
		s.WriteString("\n")
	}

	return detailsStyle.Render(s.String())
}

// renderHeader shows the result summary, active sort and filter badge.
func (m BrowserModel) renderHeader() string {
	summary := fmt.Sprintf("Showing %d of %d books", len(m.results), m.lib.Len())
	parts := []string{StyleHeader.Render("Bookshelf"), StyleHelp.Render(summary)}
	parts = append(parts, StyleHelp.Render("Sort: "+m.sort.Label()))
	if n := m.filter.ActiveCount(); n > 0 {
		parts = append(parts, StyleHighlight.Render(fmt.Sprintf("Filters (%d)", n)))
	}
	if q := strings.TrimSpace(m.filter.Query); q != "" && m.view != viewSearch {
		parts = append(parts, StyleTag.Render(fmt.Sprintf("search: %q", q)))
	}
	return lipgloss.NewStyle().Padding(0, 1).Render(strings.Join(parts, "  "))
}

// renderToolbar is the bulk action bar shown while books are selected.
func (m BrowserModel) renderToolbar() string {
	n := m.ms.SelectedCount()
	if n == 0 {
		return ""
	}
	label := fmt.Sprintf("%d %s selected", n, plural(n, "book", "books"))
	return lipgloss.NewStyle().Padding(0, 1).Render(
		lipgloss.NewStyle().Foreground(ColorTealLight).Bold(true).Render(label) +
			StyleHelp.Render("   t tag • d delete • c clear"))
}

func (m BrowserModel) renderEmpty() string {
	return lipgloss.NewStyle().Padding(1, 2).Render(
		StyleHeader.Render("No books found") + "\n" +
			StyleHelp.Render("Try adjusting your search or filters"))
}

func (m BrowserModel) renderMain() string {
	switch m.view {
	case viewFilter, viewSort:
		return lipgloss.NewStyle().Padding(0, 1).Render(m.menu.View())
	case viewTag:
		n := m.ms.SelectedCount()
		return lipgloss.NewStyle().Padding(0, 1).Render(
			StyleHeader.Render(fmt.Sprintf("Add tags to %d %s", n, plural(n, "book", "books"))) + "\n\n" +
				m.tagPicker.View() + "\n\n" +
				StyleHelp.Render("enter apply (when closed) • esc cancel"))
	case viewConfirmDelete:
		n := m.ms.SelectedCount()
		return lipgloss.NewStyle().Padding(1, 1).Render(
			StyleError.Render(fmt.Sprintf("Delete %d %s? ", n, plural(n, "book", "books"))) +
				StyleHelp.Render("Y/n"))
	case viewAdd:
		return lipgloss.NewStyle().Padding(0, 1).Render(m.form.View())
	}

	var b strings.Builder
	if m.view == viewSearch {
		b.WriteString(lipgloss.NewStyle().Padding(0, 1).Render(m.search.View()))
		b.WriteString("\n")
	}
	if len(m.results) == 0 {
		b.WriteString(m.renderEmpty())
		return b.String()
	}

	listView := m.ms.View()
	if m.showDetails {
		listStyle := lipgloss.NewStyle().
			BorderRight(true).
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(ColorTeal)
		listView = lipgloss.JoinHorizontal(lipgloss.Top, listStyle.Render(listView), m.renderDetailsPane())
	}
	b.WriteString(listView)
	if m.loading {
		b.WriteString("\n")
		b.WriteString(StyleHelp.Padding(0, 1).Render("Loading more books..."))
	}
	return b.String()
}

// renderFooter creates a footer with all available keyboard shortcuts.
// The shortcut matching activeCmd is rendered with StyleHighlight.
func (m BrowserModel) renderFooter() string {
	bar := RenderFooterBar([]ShortcutEntry{
		{Key: "", Label: "↑/↓ navigate"},
		{Key: "/", Label: "/ search"},
		{Key: "f", Label: "f filter"},
		{Key: "s", Label: "s sort"},
		{Key: " ", Label: "space select"},
		{Key: "A", Label: "A all"},
		{Key: "c", Label: "c clear"},
		{Key: "t", Label: "t tag"},
		{Key: "d", Label: "d delete"},
		{Key: "a", Label: "a add"},
		{Key: "tab", Label: "tab details"},
		{Key: "", Label: "q quit"},
	}, m.activeCmd)

	var extra []string
	if m.message != "" {
		extra = append(extra, StyleSuccess.Render(m.message))
	}
	if kb := m.kb.View(); kb != "" {
		extra = append(extra, kb)
	}
	if len(extra) > 0 {
		bar += "\n" + lipgloss.NewStyle().Padding(0, 1).Render(strings.Join(extra, "   "))
	}
	return bar
}

func (m BrowserModel) View() string {
	if m.quitting {
		return ""
	}

	// Outer container for centering - adds margin around the entire box
	outerStyle := lipgloss.NewStyle().
		Padding(2, 4) // top/bottom: 2 lines, left/right: 4 chars

	// Inner content box with border
	masterStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorTeal).
		Padding(0)

	// Subtract outer padding (2*2 vertical, 4*2 horizontal) and border (2 each side)
	if m.width > 0 && m.height > 0 {
		innerWidth := max(m.width-(4*2)-2, 60)
		innerHeight := max(m.height-(2*2)-2, 10)
		masterStyle = masterStyle.
			Width(innerWidth).
			Height(innerHeight)
	}

	dividerWidth := max(m.width-(4*2)-2, 40)
	divider := lipgloss.NewStyle().
		Foreground(ColorTeal).
		Render(strings.Repeat("─", dividerWidth))

	sections := []string{m.renderHeader()}
	if tb := m.renderToolbar(); tb != "" {
		sections = append(sections, tb)
	}
	sections = append(sections, m.renderMain(), divider, m.renderFooter())

	content := lipgloss.JoinVertical(lipgloss.Left, sections...)
	return outerStyle.Render(masterStyle.Render(content))
}
