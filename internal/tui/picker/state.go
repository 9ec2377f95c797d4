// Package picker implements the option picker: a searchable dropdown that
// selects one or many options, can create options on the fly and can reorder
// the option catalog.
//
// The behavior lives in Reduce, a pure function over State, Props and Event.
// Model adapts it to Bubble Tea.
package picker

import (
	"slices"
	"strings"

	"github.com/blackwell-systems/bookshelf/internal/option"
)

// Mode controls selection cardinality.
type Mode int

const (
	Single Mode = iota
	Multi
)

func (m Mode) String() string {
	if m == Multi {
		return "multi"
	}
	return "single"
}

// None marks an unset highlight or drag index.
const None = -1

// Selection is the ordered list of selected option values. In single mode it
// holds at most one value; an empty selection means nothing is selected.
type Selection []string

// First returns the first value or "".
func (s Selection) First() string {
	if len(s) == 0 {
		return ""
	}
	return s[0]
}

// Contains reports whether v is selected.
func (s Selection) Contains(v string) bool {
	return slices.Contains(s, v)
}

// With returns a copy with v appended, unless v is already present.
func (s Selection) With(v string) Selection {
	out := slices.Clone(s)
	if s.Contains(v) {
		return out
	}
	return append(out, v)
}

// Without returns a copy with every occurrence of v removed.
func (s Selection) Without(v string) Selection {
	out := make(Selection, 0, len(s))
	for _, x := range s {
		if x != v {
			out = append(out, x)
		}
	}
	return out
}

// State is the picker's own transient state.
type State struct {
	Open      bool
	Search    string
	Highlight int // candidate index or None
	Drag      int // candidate index of the dragged option or None
}

// Initial returns a closed picker with nothing highlighted.
func Initial() State {
	return State{Highlight: None, Drag: None}
}

// Props is the owner-supplied snapshot the reducer reads. Reduce never
// modifies it.
type Props struct {
	Options    []option.Option
	Value      Selection
	Mode       Mode
	CanCreate  bool
	CanReorder bool
}

// Key is a key the state machine reacts to.
type Key int

const (
	KeyEnter Key = iota
	KeySpace
	KeyDown
	KeyUp
	KeyEscape
	KeyTab
)

// Event is an input to Reduce.
type Event interface{ isEvent() }

type (
	// KeyPressed is a key press while the picker has focus.
	KeyPressed struct{ Key Key }
	// SearchChanged carries the full new search text.
	SearchChanged struct{ Text string }
	// TriggerClicked toggles the dropdown.
	TriggerClicked struct{}
	// OptionClicked selects the candidate at Index.
	OptionClicked struct{ Index int }
	// OptionHovered moves the highlight to the candidate at Index.
	OptionHovered struct{ Index int }
	// ChipRemoved removes Value from the selection.
	ChipRemoved struct{ Value string }
	// CreateRequested runs creation for the current search text.
	CreateRequested struct{}
	// DragStarted begins dragging the candidate at Index.
	DragStarted struct{ Index int }
	// DraggedOver reports the dragged option passing over the candidate at Index.
	DraggedOver struct{ Index int }
	// DragEnded releases the drag.
	DragEnded struct{}
	// Dismissed closes the dropdown: outside click, focus loss or the host
	// closing it for any other reason.
	Dismissed struct{}
)

func (KeyPressed) isEvent()      {}
func (SearchChanged) isEvent()   {}
func (TriggerClicked) isEvent()  {}
func (OptionClicked) isEvent()   {}
func (OptionHovered) isEvent()   {}
func (ChipRemoved) isEvent()     {}
func (CreateRequested) isEvent() {}
func (DragStarted) isEvent()     {}
func (DraggedOver) isEvent()     {}
func (DragEnded) isEvent()       {}
func (Dismissed) isEvent()       {}

// Effect is an outcome the owner must be told about. Effects are returned in
// the order they must be applied.
type Effect interface{ isEffect() }

type (
	// Created asks the owner to add an option for Label. Its value is
	// option.Slugify(Label).
	Created struct{ Label string }
	// Changed proposes a new selection.
	Changed struct{ Value Selection }
	// Reordered proposes a new catalog order.
	Reordered struct{ Options []option.Option }
	// KeyboardActivity reports a directional or confirm key press.
	KeyboardActivity struct{}
)

func (Created) isEffect()          {}
func (Changed) isEffect()          {}
func (Reordered) isEffect()        {}
func (KeyboardActivity) isEffect() {}

// Candidates returns the options whose label contains search, ignoring case,
// in catalog order.
func Candidates(options []option.Option, search string) []option.Option {
	if search == "" {
		return slices.Clone(options)
	}
	needle := strings.ToLower(search)
	var out []option.Option
	for _, o := range options {
		if strings.Contains(strings.ToLower(o.Label), needle) {
			out = append(out, o)
		}
	}
	return out
}

// HasCreateAffordance reports whether the create row is the only entry in
// the dropdown.
func HasCreateAffordance(s State, p Props) bool {
	return p.CanCreate &&
		strings.TrimSpace(s.Search) != "" &&
		len(Candidates(p.Options, s.Search)) == 0
}

// SelectedOptions resolves the selection to options in selection order.
// Values missing from the catalog are skipped.
func SelectedOptions(p Props) []option.Option {
	out := make([]option.Option, 0, len(p.Value))
	for _, v := range p.Value {
		if i := option.IndexOf(p.Options, v); i >= 0 {
			out = append(out, p.Options[i])
		}
	}
	return out
}

// Normalize fixes up indexes after the owner supplies new props.
func Normalize(s State, p Props) State {
	if !s.Open {
		s.Highlight = None
		s.Drag = None
		return s
	}
	n := len(Candidates(p.Options, s.Search))
	switch {
	case n > 0 && (s.Highlight < 0 || s.Highlight >= n):
		s.Highlight = 0
	case n == 0 && HasCreateAffordance(s, p):
		s.Highlight = 0
	case n == 0:
		s.Highlight = None
	}
	if s.Drag >= n {
		s.Drag = None
	}
	return s
}

// Reduce applies ev to s and returns the next state and the effects the
// owner must apply.
func Reduce(s State, p Props, ev Event) (State, []Effect) {
	switch ev := ev.(type) {
	case KeyPressed:
		return reduceKey(s, p, ev.Key)

	case SearchChanged:
		s.Search = ev.Text
		s.Highlight = firstHighlight(s, p)
		return s, nil

	case TriggerClicked:
		if s.Open {
			return closed(s), nil
		}
		return opened(s, p), nil

	case OptionClicked:
		cands := Candidates(p.Options, s.Search)
		if ev.Index < 0 || ev.Index >= len(cands) {
			return s, nil
		}
		return toggle(s, p, cands[ev.Index].Value)

	case OptionHovered:
		if s.Open && ev.Index >= 0 && ev.Index < len(Candidates(p.Options, s.Search)) {
			s.Highlight = ev.Index
		}
		return s, nil

	case ChipRemoved:
		if p.Mode == Single {
			return s, []Effect{Changed{Value: Selection{}}}
		}
		return s, []Effect{Changed{Value: p.Value.Without(ev.Value)}}

	case CreateRequested:
		return create(s, p)

	case DragStarted:
		if p.CanReorder && ev.Index >= 0 && ev.Index < len(Candidates(p.Options, s.Search)) {
			s.Drag = ev.Index
		}
		return s, nil

	case DraggedOver:
		return dragOver(s, p, ev.Index)

	case DragEnded:
		s.Drag = None
		return s, nil

	case Dismissed:
		return closed(s), nil
	}
	return s, nil
}

func reduceKey(s State, p Props, k Key) (State, []Effect) {
	var effects []Effect
	if k == KeyEnter || k == KeyUp || k == KeyDown {
		effects = append(effects, KeyboardActivity{})
	}

	if !s.Open {
		if k == KeyEnter || k == KeySpace || k == KeyDown {
			s = opened(s, p)
		}
		return s, effects
	}

	cands := Candidates(p.Options, s.Search)
	switch k {
	case KeyDown:
		switch {
		case HasCreateAffordance(s, p):
			s.Highlight = 0
		case len(cands) > 0:
			s.Highlight++
			if s.Highlight >= len(cands) {
				s.Highlight = 0
			}
		}
	case KeyUp:
		switch {
		case HasCreateAffordance(s, p):
			s.Highlight = 0
		case len(cands) > 0:
			s.Highlight--
			if s.Highlight < 0 {
				s.Highlight = len(cands) - 1
			}
		}
	case KeyEnter:
		var more []Effect
		if s.Highlight >= 0 && s.Highlight < len(cands) {
			s, more = toggle(s, p, cands[s.Highlight].Value)
		} else {
			s, more = create(s, p)
		}
		effects = append(effects, more...)
	case KeyEscape, KeyTab:
		s = closed(s)
	}
	return s, effects
}

// toggle applies a click on the option with value v.
func toggle(s State, p Props, v string) (State, []Effect) {
	if p.Mode == Single {
		return closed(s), []Effect{Changed{Value: Selection{v}}}
	}
	next := p.Value.With(v)
	if p.Value.Contains(v) {
		next = p.Value.Without(v)
	}
	return s, []Effect{Changed{Value: next}}
}

// choose selects v without ever deselecting it.
func choose(s State, p Props, v string) (State, []Effect) {
	if p.Mode == Single {
		return closed(s), []Effect{Changed{Value: Selection{v}}}
	}
	if p.Value.Contains(v) {
		return s, nil
	}
	return s, []Effect{Changed{Value: p.Value.With(v)}}
}

func create(s State, p Props) (State, []Effect) {
	label := strings.TrimSpace(s.Search)
	if label == "" || !p.CanCreate {
		return s, nil
	}

	var effects []Effect
	value := option.Slugify(label)
	if existing, ok := option.FindByLabel(p.Options, label); ok {
		value = existing.Value
	} else {
		effects = append(effects, Created{Label: label})
	}

	s, more := choose(s, p, value)
	effects = append(effects, more...)
	if s.Open {
		s.Search = ""
		s.Highlight = firstHighlight(s, p)
	}
	return s, effects
}

func dragOver(s State, p Props, over int) (State, []Effect) {
	if !p.CanReorder || s.Drag == None || over == s.Drag {
		return s, nil
	}
	cands := Candidates(p.Options, s.Search)
	if s.Drag >= len(cands) || over < 0 || over >= len(cands) {
		return s, nil
	}

	// Candidate indexes are positions in the filtered list; the move
	// happens in the full catalog.
	from := option.IndexByID(p.Options, cands[s.Drag].ID)
	to := option.IndexByID(p.Options, cands[over].ID)
	reordered := option.Move(p.Options, from, to)

	if s.Highlight == s.Drag {
		s.Highlight = over
	}
	s.Drag = over
	return s, []Effect{Reordered{Options: reordered}}
}

func opened(s State, p Props) State {
	s.Open = true
	s.Highlight = None
	if len(Candidates(p.Options, s.Search)) > 0 {
		s.Highlight = 0
	}
	return s
}

func closed(s State) State {
	s.Open = false
	s.Search = ""
	s.Highlight = None
	s.Drag = None
	return s
}

// firstHighlight is the highlight after the candidate list changes.
func firstHighlight(s State, p Props) int {
	if len(Candidates(p.Options, s.Search)) > 0 || HasCreateAffordance(s, p) {
		return 0
	}
	return None
}
