package tui

import (
	"fmt"
	"log/slog"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/blackwell-systems/bookshelf/internal/option"
	"github.com/blackwell-systems/bookshelf/internal/tui/picker"
)

// pickerPage hosts one or more pickers on a page. Tab moves between them;
// esc on a closed picker finishes the page.
type pickerPage struct {
	title  string
	fields []pickerField
	focus  int

	// finishOnChoice ends the page as soon as a single picker holds a value.
	finishOnChoice bool

	kb        KeyboardIndicator
	activeCmd string
	done      bool
	canceled  bool
}

func newPickerPage(title string, fields ...pickerField) pickerPage {
	p := pickerPage{title: title, fields: fields}
	if len(fields) > 0 {
		p.fields[0].Focus()
	}
	return p
}

func (p pickerPage) Init() tea.Cmd {
	return nil
}

func (p pickerPage) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if cmd, ok := p.kb.Update(msg); ok {
		return p, cmd
	}

	switch msg := msg.(type) {
	case ClearActiveCmdMsg:
		p.activeCmd = ""
		return p, nil

	case tea.KeyMsg:
		cur := &p.fields[p.focus]
		switch msg.String() {
		case "ctrl+c":
			p.canceled = true
			return p, tea.Quit
		case "ctrl+s":
			p.done = true
			return p, tea.Quit
		case "tab", "shift+tab":
			if len(p.fields) > 1 {
				blur := cur.Blur()
				step := 1
				if msg.String() == "shift+tab" {
					step = len(p.fields) - 1
				}
				p.focus = (p.focus + step) % len(p.fields)
				focus := p.fields[p.focus].Focus()
				p.activeCmd = "tab"
				return p, tea.Batch(blur, focus, HighlightCmd())
			}
		case "esc":
			if !cur.Open() {
				p.done = true
				return p, tea.Quit
			}
		}

		var cmd tea.Cmd
		*cur, cmd = cur.Update(msg)
		// Pickers may share a catalog; bring the others up to date.
		for i := range p.fields {
			p.fields[i].sync()
		}
		if p.finishOnChoice && cur.Mode() == picker.Single && !cur.Open() && len(cur.Selected()) > 0 {
			p.done = true
			return p, tea.Batch(cmd, tea.Quit)
		}
		return p, cmd
	}
	return p, nil
}

func (p pickerPage) View() string {
	var b strings.Builder
	b.WriteString(StyleHeader.Render(p.title))
	b.WriteString("\n\n")

	for i, f := range p.fields {
		label := StyleHelp.Render(f.Title())
		if i == p.focus {
			label = StyleHighlight.Render("› " + f.Title())
		}
		b.WriteString(label)
		b.WriteString("\n")
		b.WriteString(f.View())
		b.WriteString("\n")
		b.WriteString(StyleHelp.Render("Selected: " + selectedText(f)))
		b.WriteString("\n\n")
	}

	b.WriteString(RenderFooterBar([]ShortcutEntry{
		{Key: "", Label: "space/enter open"},
		{Key: "", Label: "type to search or create"},
		{Key: "", Label: "alt+↑/↓ reorder"},
		{Key: "tab", Label: "tab next"},
		{Key: "", Label: "esc done"},
	}, p.activeCmd))
	if kb := p.kb.View(); kb != "" {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().Padding(0, 1).Render(kb))
	}
	return lipgloss.NewStyle().Padding(1, 2).Render(b.String())
}

func selectedText(f pickerField) string {
	labels := f.Labels()
	if len(labels) == 0 {
		return "none"
	}
	return strings.Join(labels, ", ")
}

func runPickerPage(page pickerPage) (pickerPage, error) {
	prog := tea.NewProgram(page)
	final, err := prog.Run()
	if err != nil {
		return pickerPage{}, fmt.Errorf("running picker: %w", err)
	}
	fp, ok := final.(pickerPage)
	if !ok {
		return pickerPage{}, fmt.Errorf("unexpected model type")
	}
	if fp.canceled {
		return pickerPage{}, ErrCanceled
	}
	return fp, nil
}

// PickerDemoResult holds the demo's final selections as labels.
type PickerDemoResult struct {
	Single string
	Multi  []string
}

func newPickerDemo(categories *option.Catalog, log *slog.Logger) pickerPage {
	field := func(title string, mode picker.Mode) pickerField {
		return newPickerField(fieldConfig{
			Title:       title,
			Placeholder: "Select categories...",
			Mode:        mode,
			Creatable:   true,
			Reorderable: true,
			Logger:      log,
		}, categories, nil)
	}
	return newPickerPage("Option Picker",
		field("Single category", picker.Single),
		field("Multiple categories", picker.Multi),
	)
}

// RunPickerDemo shows a single and a multi picker over one shared category
// catalog, both able to create and reorder options.
func RunPickerDemo(categories []string, log *slog.Logger) (PickerDemoResult, error) {
	page, err := runPickerPage(newPickerDemo(option.NewCatalog(categories...), log))
	if err != nil {
		return PickerDemoResult{}, err
	}
	res := PickerDemoResult{Multi: page.fields[1].Labels()}
	if labels := page.fields[0].Labels(); len(labels) > 0 {
		res.Single = labels[0]
	}
	return res, nil
}

// PickConfig configures a standalone picker.
type PickConfig struct {
	Title       string
	Placeholder string
	Options     []string
	Multi       bool
	MaxVisible  int
	Logger      *slog.Logger
}

func newPick(cfg PickConfig) pickerPage {
	mode := picker.Single
	if cfg.Multi {
		mode = picker.Multi
	}
	f := newPickerField(fieldConfig{
		Title:       cfg.Title,
		Placeholder: cfg.Placeholder,
		Mode:        mode,
		Creatable:   true,
		Reorderable: true,
		MaxVisible:  cfg.MaxVisible,
		Logger:      cfg.Logger,
	}, option.NewCatalog(cfg.Options...), nil)
	page := newPickerPage(cfg.Title, f)
	page.finishOnChoice = true
	return page
}

// RunPick runs one picker and returns the chosen labels in selection order.
func RunPick(cfg PickConfig) ([]string, error) {
	page, err := runPickerPage(newPick(cfg))
	if err != nil {
		return nil, err
	}
	return page.fields[0].Labels(), nil
}
