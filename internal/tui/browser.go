package tui

import (
	"fmt"
	"log/slog"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/blackwell-systems/bookshelf/internal/catalog"
	"github.com/blackwell-systems/bookshelf/internal/tui/delegate"
	"github.com/blackwell-systems/bookshelf/internal/tui/menu"
	"github.com/blackwell-systems/bookshelf/internal/tui/multiselect"
	"github.com/blackwell-systems/bookshelf/internal/tui/picker"
)

const (
	defaultPageSize = 20
	loadMoreDelay   = 300 * time.Millisecond
)

// BrowserConfig configures the book browser.
type BrowserConfig struct {
	Library           *catalog.Library
	PageSize          int                // books revealed per page; defaults to 20
	Sort              catalog.SortOption // initial sort; defaults to title A-Z
	PickerMaxVisible  int
	PickerPlaceholder string // closed-picker text of the bulk tag picker
	Logger            *slog.Logger
}

type browserView int

const (
	viewList browserView = iota
	viewSearch
	viewFilter
	viewSort
	viewTag
	viewConfirmDelete
	viewAdd
)

// loadMoreMsg reveals the next page of results.
type loadMoreMsg struct{}

// BrowserModel is the interactive book list with search, filters, sorting,
// bulk actions and the add form.
type BrowserModel struct {
	lib  *catalog.Library
	log  *slog.Logger
	keys browserKeys

	ms     multiselect.Model
	search textinput.Model
	filter catalog.Filter
	sort   catalog.SortOption

	menu      *menu.Model
	tagPicker pickerField
	form      bookForm
	vocab     vocabularies

	view        browserView
	results     []catalog.Book // filtered and sorted
	shown       int            // how many results are revealed
	pageSize    int
	maxVisible  int
	placeholder string
	loading     bool
	showDetails bool
	message     string
	activeCmd   string
	kb          KeyboardIndicator
	width       int
	height      int
	quitting    bool
}

// NewBrowser builds the browser over cfg.Library.
func NewBrowser(cfg BrowserConfig) BrowserModel {
	if cfg.PageSize <= 0 {
		cfg.PageSize = defaultPageSize
	}
	if cfg.Sort == "" {
		cfg.Sort = catalog.DefaultSort
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	l := list.New(nil, delegate.New(renderBookItem), 80, 20)
	l.Title = "Books"
	l.SetShowStatusBar(false)
	l.SetShowHelp(false)
	l.SetFilteringEnabled(false)
	l.KeyMap.Quit.SetEnabled(false)
	l.Styles.Title = StyleHeader
	l.Styles.PaginationStyle = StyleHelp

	search := textinput.New()
	search.Prompt = "/ "
	search.Placeholder = "Search by title, author, genre or tag"
	search.CharLimit = 100
	search.Width = 48

	m := BrowserModel{
		lib:         cfg.Library,
		log:         logger,
		keys:        newBrowserKeys(),
		ms:          multiselect.New(l),
		search:      search,
		sort:        cfg.Sort,
		vocab:       newVocabularies(cfg.Library),
		pageSize:    cfg.PageSize,
		maxVisible:  cfg.PickerMaxVisible,
		placeholder: cfg.PickerPlaceholder,
	}
	m.ms.SetShowCount(true)
	m.refresh(true)
	return m
}

// Filter returns the active filter.
func (m BrowserModel) Filter() catalog.Filter { return m.filter }

// Results returns the filtered and sorted books.
func (m BrowserModel) Results() []catalog.Book { return m.results }

// Shown returns how many results are revealed in the list.
func (m BrowserModel) Shown() int { return m.shown }

// SelectedIDs returns the selected book IDs in sorted order.
func (m BrowserModel) SelectedIDs() []string { return m.ms.SelectedKeys() }

// refresh recomputes the results. reset returns to the first page.
func (m *BrowserModel) refresh(reset bool) {
	m.results = catalog.Sort(m.filter.Apply(m.lib.Books()), m.sort)
	if reset || m.shown < m.pageSize {
		m.shown = m.pageSize
	}
	m.shown = min(m.shown, len(m.results))
	m.ms.SetItems(bookItems(m.results[:m.shown]))
	if reset {
		m.ms.List.Select(0)
	}
}

func (m BrowserModel) Init() tea.Cmd {
	return nil
}

func (m BrowserModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if cmd, ok := m.kb.Update(msg); ok {
		return m, cmd
	}

	switch msg := msg.(type) {
	case ClearActiveCmdMsg:
		m.activeCmd = ""
		if m.view == viewAdd {
			m.form, _ = m.form.Update(msg)
		}
		return m, nil

	case loadMoreMsg:
		m.loading = false
		m.shown = min(m.shown+m.pageSize, len(m.results))
		m.ms.SetItems(bookItems(m.results[:m.shown]))
		m.log.Debug("revealed more books", "shown", m.shown, "total", len(m.results))
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()
		return m, nil

	case tea.KeyMsg:
		switch m.view {
		case viewSearch:
			return m.updateSearch(msg)
		case viewFilter, viewSort:
			return m.updateMenu(msg)
		case viewTag:
			return m.updateTag(msg)
		case viewConfirmDelete:
			return m.updateConfirmDelete(msg)
		case viewAdd:
			return m.updateAdd(msg)
		}
		return m.updateList(msg)
	}

	switch m.view {
	case viewSearch:
		var cmd tea.Cmd
		m.search, cmd = m.search.Update(msg)
		return m, cmd
	case viewAdd:
		var cmd tea.Cmd
		m.form, cmd = m.form.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m BrowserModel) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.message = ""
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Back):
		if !m.filter.IsZero() {
			m.filter = catalog.Filter{}
			m.search.SetValue("")
			m.refresh(true)
		}
		return m, nil

	case key.Matches(msg, m.keys.Search):
		m.view = viewSearch
		m.activeCmd = "/"
		return m, tea.Batch(m.search.Focus(), HighlightCmd())

	case key.Matches(msg, m.keys.Filter):
		m.menu = newFilterMenu(m.filter)
		m.view = viewFilter
		m.activeCmd = "f"
		return m, HighlightCmd()

	case key.Matches(msg, m.keys.Sort):
		m.menu = newSortMenu(m.sort)
		m.view = viewSort
		m.activeCmd = "s"
		return m, HighlightCmd()

	case key.Matches(msg, m.keys.Toggle):
		m.ms.Toggle()
		m.activeCmd = " "
		return m, HighlightCmd()

	case key.Matches(msg, m.keys.SelectAll):
		// Every filtered result, including books not revealed yet.
		ids := make([]string, len(m.results))
		for i, b := range m.results {
			ids[i] = b.ID
		}
		m.ms.SelectKeys(ids...)
		m.activeCmd = "A"
		return m, HighlightCmd()

	case key.Matches(msg, m.keys.Clear):
		m.ms.ClearSelection()
		m.activeCmd = "c"
		return m, HighlightCmd()

	case key.Matches(msg, m.keys.Tag):
		if m.ms.SelectedCount() == 0 {
			m.message = "Select books with space first"
			return m, nil
		}
		placeholder := m.placeholder
		if placeholder == "" {
			placeholder = "Choose tags to add..."
		}
		m.tagPicker = newPickerField(fieldConfig{
			Title:       "Tags",
			Placeholder: placeholder,
			Mode:        picker.Multi,
			Creatable:   true,
			MaxVisible:  m.maxVisible,
			Logger:      m.log,
		}, m.vocab.tags, nil)
		focus := m.tagPicker.Focus()
		m.tagPicker.Send(picker.TriggerClicked{})
		m.log.Debug("bulk tag opened", "books", m.ms.SelectedCount(), "tags", m.vocab.tags.Len())
		m.view = viewTag
		m.activeCmd = "t"
		return m, tea.Batch(focus, HighlightCmd())

	case key.Matches(msg, m.keys.Delete):
		if m.ms.SelectedCount() == 0 {
			m.message = "Select books with space first"
			return m, nil
		}
		m.view = viewConfirmDelete
		m.activeCmd = "d"
		return m, HighlightCmd()

	case key.Matches(msg, m.keys.Add):
		m.form = newBookForm(m.lib, m.vocab, m.log)
		m.view = viewAdd
		m.activeCmd = "a"
		return m, tea.Batch(textinput.Blink, HighlightCmd())

	case key.Matches(msg, m.keys.Details):
		m.showDetails = !m.showDetails
		m.resize()
		m.activeCmd = "tab"
		return m, HighlightCmd()
	}

	var cmd tea.Cmd
	m.ms, cmd = m.ms.Update(msg)
	return m, tea.Batch(cmd, m.maybeLoadMore())
}

// maybeLoadMore starts revealing the next page once the cursor reaches the
// last revealed book.
func (m *BrowserModel) maybeLoadMore() tea.Cmd {
	if m.loading || m.shown >= len(m.results) || m.ms.List.Index() < m.shown-1 {
		return nil
	}
	m.loading = true
	return tea.Tick(loadMoreDelay, func(time.Time) tea.Msg { return loadMoreMsg{} })
}

func (m BrowserModel) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter", "down":
		m.search.Blur()
		m.view = viewList
		return m, nil
	case "esc":
		m.search.Blur()
		m.search.SetValue("")
		m.filter.Query = ""
		m.refresh(true)
		m.view = viewList
		return m, nil
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	if q := m.search.Value(); q != m.filter.Query {
		m.filter.Query = q
		m.refresh(true)
	}
	return m, cmd
}

func (m BrowserModel) updateMenu(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// The opening key closes the menu again.
	if (m.view == viewFilter && key.Matches(msg, m.keys.Filter)) ||
		(m.view == viewSort && key.Matches(msg, m.keys.Sort)) {
		m.menu.Close()
	}
	cmd := m.menu.Update(msg)

	switch m.view {
	case viewFilter:
		next := filterFromKeys(m.menu.Checked())
		next.Query = m.filter.Query
		next.Genre = m.filter.Genre
		if !sameFacets(next, m.filter) {
			m.filter = next
			m.refresh(true)
			m.log.Debug("filter changed", "active", m.filter.ActiveCount())
		}
	case viewSort:
		if checked := m.menu.Checked(); len(checked) == 1 && catalog.SortOption(checked[0]) != m.sort {
			m.sort = catalog.SortOption(checked[0])
			m.refresh(true)
			m.log.Debug("sort changed", "sort", string(m.sort))
		}
	}

	if m.menu.Closed() {
		m.view = viewList
		m.menu = nil
	}
	return m, cmd
}

func (m BrowserModel) updateTag(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if !m.tagPicker.Open() {
		switch msg.String() {
		case "enter", "ctrl+s":
			ids := m.ms.SelectedKeys()
			tags := m.tagPicker.Selected()
			n := m.lib.AddTags(ids, tags)
			m.log.Info("bulk tag", "books", len(ids), "tags", []string(tags), "changed", n)
			m.message = fmt.Sprintf("Tagged %d %s", n, plural(n, "book", "books"))
			m.closeTag()
			return m, nil
		case "esc", "q":
			m.closeTag()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.tagPicker, cmd = m.tagPicker.Update(msg)
	return m, cmd
}

func (m *BrowserModel) closeTag() {
	m.tagPicker.Blur()
	m.view = viewList
	m.refresh(false)
}

func (m BrowserModel) updateConfirmDelete(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y", "enter":
		ids := m.ms.SelectedKeys()
		n := m.lib.Remove(ids...)
		m.ms.Deselect(ids...)
		m.log.Info("bulk delete", "books", n)
		m.message = fmt.Sprintf("Deleted %d %s", n, plural(n, "book", "books"))
		m.view = viewList
		m.refresh(false)
	case "n", "N", "esc", "q":
		m.view = viewList
	}
	return m, nil
}

func (m BrowserModel) updateAdd(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.form, cmd = m.form.Update(msg)
	switch {
	case m.form.added != nil:
		b := *m.form.added
		m.log.Info("book added", "id", b.ID, "title", b.Title)
		m.message = fmt.Sprintf("Added %q", b.Title)
		m.view = viewList
		m.refresh(false)
		if i := indexOf(m.results[:m.shown], b.ID); i >= 0 {
			m.ms.List.Select(i)
		}
	case m.form.canceled:
		m.view = viewList
	}
	return m, cmd
}

func (m *BrowserModel) resize() {
	if m.width <= 0 || m.height <= 0 {
		return
	}
	// outer padding, border, header lines, divider and footer
	w := m.width - 4*2 - 2
	h := m.height - 2*2 - 2 - 6
	if m.showDetails {
		w = w * 6 / 10
	}
	m.ms.List.SetSize(max(w, 40), max(h, 5))
}

func newSortMenu(current catalog.SortOption) *menu.Model {
	items := make([]menu.Item, len(catalog.SortOptions))
	for i, o := range catalog.SortOptions {
		items[i] = menu.Item{Key: string(o), Label: o.Label(), Checked: o == current}
	}
	return menu.New(menu.Config{
		Title:    "Sort by",
		Kind:     menu.Radio,
		Items:    items,
		OnSelect: func(menu.Item) bool { return true },
	})
}

func newFilterMenu(f catalog.Filter) *menu.Model {
	var items []menu.Item
	for _, s := range catalog.Statuses {
		items = append(items, menu.Item{
			Group: "Status", Key: "status:" + string(s), Label: s.Label(),
			Checked: slices.Contains(f.Status, s),
		})
	}
	for _, v := range catalog.Formats {
		items = append(items, menu.Item{
			Group: "Format", Key: "format:" + string(v), Label: v.Label(),
			Checked: slices.Contains(f.Format, v),
		})
	}
	for r := 5; r >= 1; r-- {
		items = append(items, menu.Item{
			Group: "Rating", Key: "rating:" + strconv.Itoa(r), Label: fmt.Sprintf("%d %s", r, plural(r, "Star", "Stars")),
			Checked: slices.Contains(f.Rating, r),
		})
	}
	return menu.New(menu.Config{
		Title: "Filter",
		Kind:  menu.Checkbox,
		Items: items,
	})
}

// filterFromKeys rebuilds the menu facets from checked item keys.
func filterFromKeys(keys []string) catalog.Filter {
	var f catalog.Filter
	for _, k := range keys {
		facet, value, _ := strings.Cut(k, ":")
		switch facet {
		case "status":
			f.ToggleStatus(catalog.Status(value))
		case "format":
			f.ToggleFormat(catalog.Format(value))
		case "rating":
			if r, err := strconv.Atoi(value); err == nil {
				f.ToggleRating(r)
			}
		}
	}
	return f
}

func sameFacets(a, b catalog.Filter) bool {
	return slices.Equal(a.Status, b.Status) && slices.Equal(a.Format, b.Format) && slices.Equal(a.Rating, b.Rating)
}

func indexOf(books []catalog.Book, id string) int {
	for i, b := range books {
		if b.ID == id {
			return i
		}
	}
	return -1
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}

// RunBrowser launches the interactive browser. Changes are applied to
// cfg.Library.
func RunBrowser(cfg BrowserConfig) error {
	m := NewBrowser(cfg)
	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running browser: %w", err)
	}
	return nil
}
