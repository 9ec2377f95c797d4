package picker

import (
	"log/slog"
	"slices"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/blackwell-systems/bookshelf/internal/option"
)

const defaultMaxVisible = 8

// Config configures a picker Model.
//
// Callbacks run synchronously inside Update and may return a command; the
// commands are batched. The picker never changes the options or selection it
// was given: the owner applies the callbacks to its own store and then hands
// the result back through SetOptions and SetValue.
type Config struct {
	Title       string
	Placeholder string
	Mode        Mode
	Options     []option.Option
	Value       Selection

	// OnChange receives every proposed selection.
	OnChange func(Selection) tea.Cmd

	// CreateNewOption receives the trimmed label of an option to add. The
	// owner must derive its value with option.Slugify. Nil hides creation.
	CreateNewOption func(label string) tea.Cmd

	// OnReorder receives the full reordered catalog. Nil hides drag handles.
	OnReorder func([]option.Option) tea.Cmd

	// OnKeyboardActivity fires on enter, up and down.
	OnKeyboardActivity func() tea.Cmd

	MaxVisible int // dropdown rows; defaults to 8
	Width      int // 0 disables truncation
	Logger     *slog.Logger
}

// Model is the Bubble Tea adapter around Reduce.
type Model struct {
	cfg     Config
	props   Props
	state   State
	input   textinput.Model
	focused bool
	offset  int // first visible candidate row
	log     *slog.Logger
}

// New creates a closed, unfocused picker.
func New(cfg Config) Model {
	if cfg.MaxVisible <= 0 {
		cfg.MaxVisible = defaultMaxVisible
	}
	if cfg.Placeholder == "" {
		cfg.Placeholder = "Select..."
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	ti := textinput.New()
	ti.Prompt = "/ "
	ti.Placeholder = "Search or create..."
	ti.CharLimit = 100
	if cfg.CreateNewOption == nil {
		ti.Placeholder = "Search..."
	}
	if cfg.Width > 4 {
		ti.Width = cfg.Width - 4
	}

	m := Model{
		cfg:   cfg,
		state: Initial(),
		input: ti,
		log:   logger.With("picker", cfg.Title),
		props: Props{
			Mode:       cfg.Mode,
			CanCreate:  cfg.CreateNewOption != nil,
			CanReorder: cfg.OnReorder != nil,
		},
	}
	m.SetOptions(cfg.Options)
	m.SetValue(cfg.Value)
	return m
}

// Title returns the configured title.
func (m Model) Title() string { return m.cfg.Title }

// Mode returns the selection mode.
func (m Model) Mode() Mode { return m.props.Mode }

// State returns the current transient state.
func (m Model) State() State { return m.state }

// Open reports whether the dropdown is open.
func (m Model) Open() bool { return m.state.Open }

// Focused reports whether the picker receives key input.
func (m Model) Focused() bool { return m.focused }

// Value returns the selection last supplied by the owner.
func (m Model) Value() Selection { return slices.Clone(m.props.Value) }

// Options returns the catalog last supplied by the owner.
func (m Model) Options() []option.Option { return slices.Clone(m.props.Options) }

// Candidates returns the options matching the current search.
func (m Model) Candidates() []option.Option {
	return Candidates(m.props.Options, m.state.Search)
}

// SetOptions replaces the catalog snapshot.
func (m *Model) SetOptions(options []option.Option) {
	m.props.Options = slices.Clone(options)
	m.setState(Normalize(m.state, m.props))
}

// SetValue replaces the selection snapshot.
func (m *Model) SetValue(v Selection) {
	v = slices.Clone(v)
	if m.props.Mode == Single && len(v) > 1 {
		v = v[:1]
	}
	m.props.Value = v
	m.setState(Normalize(m.state, m.props))
}

// Focus gives the picker key input. It does not open the dropdown.
func (m *Model) Focus() tea.Cmd {
	m.focused = true
	return m.input.Focus()
}

// Blur removes focus and dismisses the dropdown.
func (m *Model) Blur() tea.Cmd {
	m.focused = false
	m.input.Blur()
	return m.Send(Dismissed{})
}

// Send runs ev through the reducer and applies the resulting effects. Hosts
// use it for pointer input and dismissal; keys go through Update.
func (m *Model) Send(ev Event) tea.Cmd {
	next, effects := Reduce(m.state, m.props, ev)
	m.setState(next)
	return m.apply(effects)
}

// Update handles key input while focused.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	km, ok := msg.(tea.KeyMsg)
	if !ok || !m.focused {
		return m, nil
	}

	var cmd tea.Cmd
	switch km.String() {
	case "enter":
		cmd = m.Send(KeyPressed{Key: KeyEnter})
		return m, cmd
	case "down":
		cmd = m.Send(KeyPressed{Key: KeyDown})
		return m, cmd
	case "up":
		cmd = m.Send(KeyPressed{Key: KeyUp})
		return m, cmd
	case "esc":
		cmd = m.Send(KeyPressed{Key: KeyEscape})
		return m, cmd
	case "tab", "shift+tab":
		cmd = m.Send(KeyPressed{Key: KeyTab})
		return m, cmd
	case "alt+up":
		cmd = m.nudge(-1)
		return m, cmd
	case "alt+down":
		cmd = m.nudge(1)
		return m, cmd
	case " ", "space":
		if !m.state.Open {
			cmd = m.Send(KeyPressed{Key: KeySpace})
			return m, cmd
		}
	case "backspace":
		if m.state.Search == "" {
			if n := len(m.props.Value); n > 0 {
				cmd = m.Send(ChipRemoved{Value: m.props.Value[n-1]})
			}
			return m, cmd
		}
	}

	if !m.state.Open {
		return m, nil
	}

	m.input, cmd = m.input.Update(msg)
	if v := m.input.Value(); v != m.state.Search {
		searchCmd := m.Send(SearchChanged{Text: v})
		return m, tea.Batch(cmd, searchCmd)
	}
	return m, cmd
}

// nudge moves the highlighted candidate one row up or down as a complete
// drag gesture.
func (m *Model) nudge(delta int) tea.Cmd {
	h := m.state.Highlight
	if !m.props.CanReorder || !m.state.Open || h < 0 {
		return nil
	}
	to := h + delta
	if to < 0 || to >= len(m.Candidates()) {
		return nil
	}
	start := m.Send(DragStarted{Index: h})
	over := m.Send(DraggedOver{Index: to})
	end := m.Send(DragEnded{})
	return tea.Batch(start, over, end)
}

func (m *Model) apply(effects []Effect) tea.Cmd {
	var cmds []tea.Cmd
	for _, e := range effects {
		switch e := e.(type) {
		case Created:
			m.log.Debug("create option", "label", e.Label, "value", option.Slugify(e.Label))
			if m.cfg.CreateNewOption != nil {
				cmds = append(cmds, m.cfg.CreateNewOption(e.Label))
			}
		case Changed:
			m.log.Debug("selection changed", "mode", m.props.Mode.String(), "value", []string(e.Value))
			if m.cfg.OnChange != nil {
				cmds = append(cmds, m.cfg.OnChange(e.Value))
			}
		case Reordered:
			m.log.Debug("options reordered", "count", len(e.Options))
			if m.cfg.OnReorder != nil {
				cmds = append(cmds, m.cfg.OnReorder(e.Options))
			}
		case KeyboardActivity:
			if m.cfg.OnKeyboardActivity != nil {
				cmds = append(cmds, m.cfg.OnKeyboardActivity())
			}
		}
	}
	return tea.Batch(cmds...)
}

func (m *Model) setState(s State) {
	m.state = s
	if m.input.Value() != s.Search {
		m.input.SetValue(s.Search)
		m.input.CursorEnd()
	}
	m.follow()
}

// follow keeps the highlighted row inside the visible window.
func (m *Model) follow() {
	n := len(m.Candidates())
	rows := m.cfg.MaxVisible
	if h := m.state.Highlight; h >= 0 {
		if h < m.offset {
			m.offset = h
		}
		if h >= m.offset+rows {
			m.offset = h - rows + 1
		}
	}
	if m.offset > n-rows {
		m.offset = n - rows
	}
	if m.offset < 0 {
		m.offset = 0
	}
}
