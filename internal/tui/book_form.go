package tui

import (
	"fmt"
	"log/slog"
	"slices"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/blackwell-systems/bookshelf/internal/catalog"
	"github.com/blackwell-systems/bookshelf/internal/option"
	"github.com/blackwell-systems/bookshelf/internal/tui/picker"
)

type formField int

const (
	fieldTitle formField = iota
	fieldAuthor
	fieldISBN
	fieldPublisher
	fieldYear
	fieldPages
	fieldGenre
	fieldLanguage
	fieldFormat
	fieldLocation
	fieldStatus
	fieldRating
	fieldTags
	fieldCover
	fieldNotes
	fieldCount
)

var fieldLabels = [fieldCount]string{
	fieldTitle:     "Title",
	fieldAuthor:    "Author",
	fieldISBN:      "ISBN",
	fieldPublisher: "Publisher",
	fieldYear:      "Year",
	fieldPages:     "Pages",
	fieldGenre:     "Genre",
	fieldLanguage:  "Language",
	fieldFormat:    "Format",
	fieldLocation:  "Location",
	fieldStatus:    "Status",
	fieldRating:    "Rating",
	fieldTags:      "Tags",
	fieldCover:     "Cover URL",
	fieldNotes:     "Notes",
}

const formFieldWidth = 42

// vocabularies are the option catalogs the add form and bulk tagging
// offer. They live for the whole session so created options persist
// between forms.
type vocabularies struct {
	genres     *option.Catalog
	publishers *option.Catalog
	languages  *option.Catalog
	tags       *option.Catalog
}

func newVocabularies(lib *catalog.Library) vocabularies {
	return vocabularies{
		genres:     option.NewCatalog(catalog.Merge(catalog.SuggestedGenres, lib.Genres())...),
		publishers: option.NewCatalog(catalog.Merge(catalog.SuggestedPublishers, lib.Publishers())...),
		languages:  option.NewCatalog(catalog.Merge(catalog.SuggestedLanguages, lib.Languages())...),
		tags:       option.NewCatalog(catalog.Merge(catalog.SuggestedTags, lib.Tags())...),
	}
}

// bookForm collects a new book. It is shown inside the browser; the
// browser reads added or canceled after each update.
type bookForm struct {
	lib    *catalog.Library
	inputs [fieldCount]textinput.Model

	publisher pickerField
	genre     pickerField
	language  pickerField
	tags      pickerField

	status catalog.Status
	format catalog.Format
	rating int

	focus     formField
	err       error
	added     *catalog.Book
	canceled  bool
	activeCmd string
}

func newBookForm(lib *catalog.Library, vocab vocabularies, log *slog.Logger) bookForm {
	f := bookForm{
		lib:    lib,
		status: catalog.StatusUnread,
		format: catalog.FormatPhysical,
	}

	text := map[formField]struct {
		placeholder string
		limit       int
		width       int
	}{
		fieldTitle:    {"Book title", 200, formFieldWidth},
		fieldAuthor:   {"Author name", 100, formFieldWidth},
		fieldISBN:     {"978-0-00-000000-0", 17, 20},
		fieldYear:     {"2024", 4, 8},
		fieldPages:    {"320", 5, 8},
		fieldLocation: {"Shelf, room or box", 100, formFieldWidth},
		fieldCover:    {"https://...", 300, formFieldWidth},
		fieldNotes:    {"Anything worth remembering", 500, formFieldWidth},
	}
	for field, t := range text {
		in := textinput.New()
		in.Placeholder = t.placeholder
		in.CharLimit = t.limit
		in.Width = t.width
		in.Prompt = "│ "
		f.inputs[field] = in
	}

	single := func(title string, cat *option.Catalog, value picker.Selection) pickerField {
		return newPickerField(fieldConfig{
			Title:       title,
			Placeholder: "Select " + strings.ToLower(title) + "...",
			Mode:        picker.Single,
			Creatable:   true,
			Width:       formFieldWidth,
			Logger:      log,
		}, cat, value)
	}
	f.publisher = single("Publisher", vocab.publishers, nil)
	f.genre = single("Genre", vocab.genres, picker.Selection{option.Slugify(catalog.DefaultGenre)})
	f.language = single("Language", vocab.languages, picker.Selection{option.Slugify(catalog.DefaultLanguage)})
	f.tags = newPickerField(fieldConfig{
		Title:       "Tags",
		Placeholder: "Add tags...",
		Mode:        picker.Multi,
		Creatable:   true,
		Reorderable: true,
		Width:       formFieldWidth,
		Logger:      log,
	}, vocab.tags, nil)

	f.inputs[fieldTitle].Focus()
	return f
}

// fields lists the focusable fields in order. Location only applies to
// physical books.
func (f bookForm) fields() []formField {
	out := make([]formField, 0, fieldCount)
	for field := range fieldCount {
		if field == fieldLocation && f.format != catalog.FormatPhysical {
			continue
		}
		out = append(out, field)
	}
	return out
}

func (f *bookForm) pickerFor(field formField) *pickerField {
	switch field {
	case fieldPublisher:
		return &f.publisher
	case fieldGenre:
		return &f.genre
	case fieldLanguage:
		return &f.language
	case fieldTags:
		return &f.tags
	}
	return nil
}

func isTextField(field formField) bool {
	switch field {
	case fieldPublisher, fieldGenre, fieldLanguage, fieldTags, fieldFormat, fieldStatus, fieldRating:
		return false
	}
	return true
}

// focusField moves focus to field, blurring the previous one.
func (f *bookForm) focusField(field formField) tea.Cmd {
	var cmds []tea.Cmd
	if p := f.pickerFor(f.focus); p != nil {
		cmds = append(cmds, p.Blur())
	} else if isTextField(f.focus) {
		f.inputs[f.focus].Blur()
	}

	f.focus = field
	if p := f.pickerFor(field); p != nil {
		cmds = append(cmds, p.Focus())
	} else if isTextField(field) {
		cmds = append(cmds, f.inputs[field].Focus())
	}
	return tea.Batch(cmds...)
}

func (f *bookForm) move(delta int) tea.Cmd {
	fields := f.fields()
	i := slices.Index(fields, f.focus)
	i = (i + delta + len(fields)) % len(fields)
	f.activeCmd = "tab"
	return tea.Batch(f.focusField(fields[i]), HighlightCmd())
}

func (f bookForm) Update(msg tea.Msg) (bookForm, tea.Cmd) {
	switch msg := msg.(type) {
	case ClearActiveCmdMsg:
		f.activeCmd = ""
		return f, nil

	case tea.KeyMsg:
		p := f.pickerFor(f.focus)
		pickerOpen := p != nil && p.Open()

		switch msg.String() {
		case "ctrl+c":
			f.canceled = true
			return f, nil
		case "esc":
			if !pickerOpen {
				f.canceled = true
				return f, nil
			}
		case "ctrl+s":
			f.submit()
			return f, nil
		case "tab":
			return f, f.move(1)
		case "shift+tab":
			return f, f.move(-1)
		case "up", "down", "enter":
			if p == nil {
				delta := 1
				if msg.String() == "up" {
					delta = -1
				}
				return f, f.move(delta)
			}
		}

		switch f.focus {
		case fieldFormat, fieldStatus, fieldRating:
			f.updateChoice(msg)
			return f, nil
		}

		if p != nil {
			var cmd tea.Cmd
			*p, cmd = p.Update(msg)
			return f, cmd
		}
	}

	if !isTextField(f.focus) {
		return f, nil
	}
	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return f, cmd
}

// updateChoice handles the cycle fields and the star rating.
func (f *bookForm) updateChoice(msg tea.KeyMsg) {
	k := msg.String()
	step := 0
	switch k {
	case "right", "l", " ":
		step = 1
	case "left", "h":
		step = -1
	}

	switch f.focus {
	case fieldFormat:
		if step != 0 {
			f.format = cycle(catalog.Formats, f.format, step)
		}
	case fieldStatus:
		if step != 0 {
			f.status = cycle(catalog.Statuses, f.status, step)
		}
	case fieldRating:
		if n, err := strconv.Atoi(k); err == nil && n >= 0 && n <= 5 {
			// Choosing the current rating again clears it.
			if n == f.rating {
				n = 0
			}
			f.rating = n
			return
		}
		if k != " " {
			f.rating = min(max(f.rating+step, 0), 5)
		}
	}
}

func cycle[T comparable](values []T, cur T, step int) T {
	i := slices.Index(values, cur)
	return values[(i+step+len(values))%len(values)]
}

// draft collects the form into a catalog draft.
func (f bookForm) draft() (catalog.Draft, error) {
	year, err := optionalInt(f.inputs[fieldYear].Value())
	if err != nil {
		return catalog.Draft{}, fmt.Errorf("%w: %q", catalog.ErrInvalidYear, f.inputs[fieldYear].Value())
	}
	pages, err := optionalInt(f.inputs[fieldPages].Value())
	if err != nil {
		return catalog.Draft{}, fmt.Errorf("%w: %q", catalog.ErrInvalidPageCount, f.inputs[fieldPages].Value())
	}

	return catalog.Draft{
		Title:         f.inputs[fieldTitle].Value(),
		Author:        f.inputs[fieldAuthor].Value(),
		ISBN:          f.inputs[fieldISBN].Value(),
		CoverURL:      f.inputs[fieldCover].Value(),
		Publisher:     f.publisher.Label(),
		PublishedYear: year,
		PageCount:     pages,
		Genre:         f.genre.Label(),
		Language:      f.language.Label(),
		Status:        f.status,
		Format:        f.format,
		Rating:        f.rating,
		Location:      f.inputs[fieldLocation].Value(),
		Notes:         f.inputs[fieldNotes].Value(),
		Tags:          f.tags.Selected(),
	}, nil
}

func (f *bookForm) submit() {
	d, err := f.draft()
	if err == nil {
		var b catalog.Book
		b, err = f.lib.Add(d)
		if err == nil {
			f.added = &b
			return
		}
	}
	f.err = err
}

func optionalInt(s string) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}
	return strconv.Atoi(s)
}

func (f bookForm) View() string {
	sepStyle := lipgloss.NewStyle().
		Foreground(lipgloss.AdaptiveColor{Light: "#D0D0D0", Dark: "#444444"})
	formLabel := lipgloss.NewStyle().
		Foreground(ColorGray).
		Width(12).
		Align(lipgloss.Right).
		PaddingRight(1)
	formLabelActive := formLabel.
		Foreground(ColorYellow).
		Bold(true)

	const w = 58
	sep := sepStyle.Render(strings.Repeat("─", w))

	var b strings.Builder
	b.WriteString(StyleHeader.Render("Add Book"))
	b.WriteString("\n")
	b.WriteString(sep)
	b.WriteString("\n\n")

	if f.err != nil {
		b.WriteString(StyleError.Render(fmt.Sprintf("Error: %v", f.err)))
		b.WriteString("\n\n")
	}

	for _, field := range f.fields() {
		label := formLabel.Render(fieldLabels[field])
		if field == f.focus {
			label = formLabelActive.Render("› " + fieldLabels[field])
		}
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, label, f.fieldView(field)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(sep)
	b.WriteString("\n")
	b.WriteString(RenderFooterBar([]ShortcutEntry{
		{Key: "tab", Label: "tab/↑↓ navigate"},
		{Key: "", Label: "space open picker"},
		{Key: "", Label: "←/→ change"},
		{Key: "", Label: "ctrl+s save"},
		{Key: "", Label: "esc cancel"},
	}, f.activeCmd))
	return b.String()
}

func (f bookForm) fieldView(field formField) string {
	if p := f.pickerFor(field); p != nil {
		return p.View()
	}
	active := field == f.focus
	choice := func(s string) string {
		if active {
			return StyleHighlight.Render("‹ " + s + " ›")
		}
		return "  " + s
	}

	switch field {
	case fieldFormat:
		return choice(f.format.Label())
	case fieldStatus:
		return choice(f.status.Label())
	case fieldRating:
		stars := lipgloss.NewStyle().Foreground(ColorYellow).Render(catalog.Stars(f.rating))
		if f.rating == 0 {
			stars = StyleHelp.Render(catalog.Stars(0) + " no rating")
		}
		if active {
			return "  " + stars + StyleHelp.Render("  1-5 to rate, again to clear")
		}
		return "  " + stars
	}
	return f.inputs[field].View()
}
