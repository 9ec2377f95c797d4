package tui

import (
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/blackwell-systems/bookshelf/internal/option"
	"github.com/blackwell-systems/bookshelf/internal/tui/picker"
)

// fieldStore is the owner side of a picker: the catalog it offers and the
// selection it edits. It is shared by pointer so picker callbacks can write
// to it while the enclosing Bubble Tea model is copied around.
type fieldStore struct {
	catalog *option.Catalog
	value   picker.Selection
}

// fieldConfig describes one picker field.
type fieldConfig struct {
	Title       string
	Placeholder string
	Mode        picker.Mode
	Creatable   bool
	Reorderable bool
	MaxVisible  int
	Width       int
	Logger      *slog.Logger
}

// pickerField is a picker bound to its store.
type pickerField struct {
	picker.Model
	store *fieldStore
}

func newPickerField(fc fieldConfig, cat *option.Catalog, value picker.Selection) pickerField {
	st := &fieldStore{catalog: cat, value: value}
	cfg := picker.Config{
		Title:       fc.Title,
		Placeholder: fc.Placeholder,
		Mode:        fc.Mode,
		Options:     cat.Options(),
		Value:       value,
		MaxVisible:  fc.MaxVisible,
		Width:       fc.Width,
		Logger:      fc.Logger,
		OnChange: func(v picker.Selection) tea.Cmd {
			st.value = v
			return nil
		},
		OnKeyboardActivity: func() tea.Cmd { return KeyboardActivity },
	}
	if fc.Creatable {
		cfg.CreateNewOption = func(label string) tea.Cmd {
			st.catalog.Add(label)
			return nil
		}
	}
	if fc.Reorderable {
		cfg.OnReorder = func(opts []option.Option) tea.Cmd {
			st.catalog.Reorder(opts)
			return nil
		}
	}
	return pickerField{Model: picker.New(cfg), store: st}
}

// Update forwards msg to the picker and hands the store back to it.
func (f pickerField) Update(msg tea.Msg) (pickerField, tea.Cmd) {
	var cmd tea.Cmd
	f.Model, cmd = f.Model.Update(msg)
	f.sync()
	return f, cmd
}

// Send delivers a host event (click, hover, drag, dismissal) and hands the
// store back, so the next event reduces against the updated catalog and
// selection.
func (f *pickerField) Send(ev picker.Event) tea.Cmd {
	cmd := f.Model.Send(ev)
	f.sync()
	return cmd
}

// Blur dismisses the dropdown and re-syncs the store.
func (f *pickerField) Blur() tea.Cmd {
	cmd := f.Model.Blur()
	f.sync()
	return cmd
}

func (f *pickerField) sync() {
	f.SetOptions(f.store.catalog.Options())
	f.SetValue(f.store.value)
}

// Selected returns the selection held by the store.
func (f pickerField) Selected() picker.Selection { return f.store.value }

// Label resolves the first selected value to its label, or "".
func (f pickerField) Label() string {
	if len(f.store.value) == 0 {
		return ""
	}
	return f.store.catalog.Label(f.store.value[0])
}

// Labels resolves the selection to option labels.
func (f pickerField) Labels() []string {
	return f.store.catalog.Labels(f.store.value)
}
