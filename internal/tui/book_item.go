package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/blackwell-systems/bookshelf/internal/catalog"
	"github.com/blackwell-systems/bookshelf/internal/tui/multiselect"
)

// BookItem represents a book in the list with metadata.
type BookItem struct {
	Book     catalog.Book
	selected bool // For multi-select mode
}

// FilterValue returns a string used for filtering in the list
func (b BookItem) FilterValue() string {
	return b.Book.Title + " " + b.Book.Author
}

// Key implements multiselect.SelectableItem
func (b BookItem) Key() string { return b.Book.ID }

// IsSelected implements multiselect.SelectableItem
func (b BookItem) IsSelected() bool {
	return b.selected
}

// WithSelected implements multiselect.SelectableItem
func (b BookItem) WithSelected(selected bool) multiselect.SelectableItem {
	b.selected = selected
	return b
}

func bookItems(books []catalog.Book) []list.Item {
	items := make([]list.Item, len(books))
	for i, b := range books {
		items[i] = BookItem{Book: b}
	}
	return items
}

// Column width constraints
const (
	minTitleWidth  = 12
	maxTitleWidth  = 44
	minAuthorWidth = 8
	maxAuthorWidth = 24
	minGenreWidth  = 7
	maxGenreWidth  = 16
	minStatusWidth = 7
	maxStatusWidth = 17
	ratingWidth    = 5
	minTagWidth    = 6
	columnGap      = 1
)

type columnWidths struct {
	title, author, genre, status, tags int
}

// computeColumnWidths distributes available width proportionally across columns.
func computeColumnWidths(totalWidth int) columnWidths {
	// Reserve space for prefix ("› " or "✓  ") and gaps between columns
	prefix := 3
	gaps := columnGap * 5
	usable := totalWidth - prefix - gaps - ratingWidth
	minimum := columnWidths{minTitleWidth, minAuthorWidth, minGenreWidth, minStatusWidth, minTagWidth}
	if usable < minTitleWidth+minAuthorWidth+minGenreWidth+minStatusWidth+minTagWidth {
		return minimum
	}

	var c columnWidths
	c.title = min(usable*40/100, maxTitleWidth)
	remaining := usable - c.title
	c.author = min(remaining*35/100, maxAuthorWidth)
	c.genre = min(remaining*20/100, maxGenreWidth)
	c.status = min(remaining*25/100, maxStatusWidth)
	c.tags = remaining - c.author - c.genre - c.status // remainder

	c.title = max(c.title, minimum.title)
	c.author = max(c.author, minimum.author)
	c.genre = max(c.genre, minimum.genre)
	c.status = max(c.status, minimum.status)
	c.tags = max(c.tags, minimum.tags)
	return c
}

// padOrTruncate pads s to exactly width visible cells, truncating with "…" if necessary.
func padOrTruncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	s = ansi.Truncate(s, width, "…")
	if n := ansi.StringWidth(s); n < width {
		return s + strings.Repeat(" ", width-n)
	}
	return s
}

// renderBookItem renders a book in the browser list with fixed-width columns.
func renderBookItem(w io.Writer, m list.Model, index int, item list.Item) {
	bookItem, ok := item.(BookItem)
	if !ok {
		return
	}

	listWidth := m.Width()
	if listWidth <= 0 {
		listWidth = 80
	}
	cw := computeColumnWidths(listWidth)
	gap := strings.Repeat(" ", columnGap)
	b := bookItem.Book

	// Cursor / selection prefix
	isCursor := index == m.Index()
	prefix := "   "
	if isCursor {
		prefix = lipgloss.NewStyle().Foreground(ColorOrange).Render("›") + "  "
	}
	if bookItem.selected {
		mark := lipgloss.NewStyle().Foreground(ColorTealLight).Bold(true).Render("✓")
		if isCursor {
			prefix = lipgloss.NewStyle().Foreground(ColorOrange).Render("›") + mark + " "
		} else {
			prefix = " " + mark + " "
		}
	}

	titleCol := padOrTruncate(b.Title, cw.title)
	authorCol := padOrTruncate(b.Author, cw.author)
	genreCol := padOrTruncate(b.Genre, cw.genre)
	statusCol := padOrTruncate(b.Status.Label(), cw.status)
	ratingCol := padOrTruncate("", ratingWidth)
	if b.Rating > 0 {
		ratingCol = catalog.Stars(b.Rating)
	}
	tagCol := padOrTruncate(strings.Join(b.Tags, " · "), cw.tags)

	// Style each column
	var titleStyled, authorStyled, genreStyled, statusStyled, ratingStyled, tagStyled string
	if isCursor {
		titleStyled = StyleHighlight.Render(titleCol)
		authorStyled = lipgloss.NewStyle().Foreground(ColorOrange).Faint(true).Render(authorCol)
		genreStyled = lipgloss.NewStyle().Foreground(ColorOrange).Faint(true).Render(genreCol)
		statusStyled = statusStyle(b.Status).Render(statusCol)
		ratingStyled = StyleHighlight.Render(ratingCol)
		tagStyled = lipgloss.NewStyle().Foreground(ColorTealLight).Render(tagCol)
	} else {
		titleStyled = StyleNormal.Render(titleCol)
		authorStyled = StyleHelp.Render(authorCol)
		genreStyled = StyleHelp.Render(genreCol)
		statusStyled = statusStyle(b.Status).Render(statusCol)
		ratingStyled = lipgloss.NewStyle().Foreground(ColorYellow).Render(ratingCol)
		tagStyled = StyleTag.Render(tagCol)
	}

	line := prefix + titleStyled + gap + authorStyled + gap + genreStyled + gap +
		statusStyled + gap + ratingStyled + gap + tagStyled
	_, _ = fmt.Fprint(w, line)
}

func statusStyle(s catalog.Status) lipgloss.Style {
	switch s {
	case catalog.StatusReading:
		return lipgloss.NewStyle().Foreground(ColorCyan)
	case catalog.StatusCompleted:
		return lipgloss.NewStyle().Foreground(ColorGreen)
	case catalog.StatusWishlist:
		return lipgloss.NewStyle().Foreground(ColorYellow)
	}
	return StyleHelp
}
