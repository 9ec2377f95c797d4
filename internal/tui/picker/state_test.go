package picker

import (
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blackwell-systems/bookshelf/internal/option"
)

func opts(labels ...string) []option.Option {
	out := make([]option.Option, len(labels))
	for i, l := range labels {
		out[i] = option.Option{
			ID:    strconv.Itoa(i),
			Label: l,
			Value: option.Slugify(l),
			Color: option.NextColor(i),
		}
	}
	return out
}

func openState(search string) State {
	s := Initial()
	s.Open = true
	s.Search = search
	s.Highlight = 0
	return s
}

func labelsOf(options []option.Option) []string {
	out := make([]string, len(options))
	for i, o := range options {
		out[i] = o.Label
	}
	return out
}

func idsOf(options []option.Option) []string {
	out := make([]string, len(options))
	for i, o := range options {
		out[i] = o.ID
	}
	return out
}

func TestCandidates_SubstringInCatalogOrder(t *testing.T) {
	catalog := opts("Science Fiction", "Mystery", "fiction", "History", "Fantasy")

	cases := []struct {
		search string
		want   []string
	}{
		{"", []string{"Science Fiction", "Mystery", "fiction", "History", "Fantasy"}},
		{"FICTION", []string{"Science Fiction", "fiction"}},
		{"st", []string{"Mystery", "History"}},
		{"y", []string{"Mystery", "History", "Fantasy"}},
		{"zzz", []string{}},
		{"e f", []string{"Science Fiction"}},
	}
	for _, c := range cases {
		got := labelsOf(Candidates(catalog, c.search))
		assert.Equal(t, c.want, got, "search %q", c.search)
	}
}

func TestCandidates_MatchesBruteForce(t *testing.T) {
	catalog := opts("Alpha", "beta", "ALPHABET", "Gamma ray", "delta", "Rayleigh")
	for _, search := range []string{"a", "AL", "ray", "ta", "x", " ", "a r"} {
		var want []string
		for _, o := range catalog {
			if strings.Contains(strings.ToLower(o.Label), strings.ToLower(search)) {
				want = append(want, o.Label)
			}
		}
		got := Candidates(catalog, search)
		assert.Len(t, got, len(want), "search %q", search)
		for i := range want {
			assert.Equal(t, want[i], got[i].Label)
		}
	}
}

func TestReduce_SearchThenEnterSelectsAndCloses(t *testing.T) {
	p := Props{Options: opts("Fiction", "Mystery"), Mode: Single}
	s, _ := Reduce(Initial(), p, KeyPressed{Key: KeyEnter})
	require.True(t, s.Open)

	s, effects := Reduce(s, p, SearchChanged{Text: "myst"})
	assert.Empty(t, effects)
	assert.Equal(t, []string{"Mystery"}, labelsOf(Candidates(p.Options, s.Search)))
	assert.Equal(t, 0, s.Highlight)

	s, effects = Reduce(s, p, KeyPressed{Key: KeyEnter})
	assert.Equal(t, []Effect{KeyboardActivity{}, Changed{Value: Selection{"mystery"}}}, effects)
	assert.False(t, s.Open)
	assert.Empty(t, s.Search)
	assert.Equal(t, None, s.Highlight)
}

func TestReduce_CreateExistingLabelSelectsExisting(t *testing.T) {
	p := Props{Options: opts("Fiction", "Manga"), Mode: Multi, CanCreate: true}
	s := openState("MANGA")

	s, effects := Reduce(s, p, CreateRequested{})
	assert.Equal(t, []Effect{Changed{Value: Selection{"manga"}}}, effects)
	assert.Empty(t, s.Search)
	assert.True(t, s.Open)
}

func TestReduce_CreateExistingAlreadySelectedIsNoop(t *testing.T) {
	p := Props{Options: opts("Manga"), Value: Selection{"manga"}, Mode: Multi, CanCreate: true}

	s, effects := Reduce(openState("manga"), p, CreateRequested{})
	assert.Empty(t, effects)
	assert.Empty(t, s.Search)
}

func TestReduce_CreateNewLabel(t *testing.T) {
	p := Props{Options: opts("Fiction"), Value: Selection{"fiction"}, Mode: Multi, CanCreate: true}

	_, effects := Reduce(openState("  Space   Opera "), p, CreateRequested{})
	require.Len(t, effects, 2)
	assert.Equal(t, Created{Label: "Space   Opera"}, effects[0])
	assert.Equal(t, Changed{Value: Selection{"fiction", "space-opera"}}, effects[1])
}

func TestReduce_CreateSingleReplacesAndCloses(t *testing.T) {
	p := Props{Options: opts("Fiction"), Value: Selection{"fiction"}, Mode: Single, CanCreate: true}

	s, effects := Reduce(openState("Poetry"), p, CreateRequested{})
	assert.Equal(t, []Effect{Created{Label: "Poetry"}, Changed{Value: Selection{"poetry"}}}, effects)
	assert.False(t, s.Open)
	assert.Empty(t, s.Search)
}

func TestReduce_CreateIgnoresBlankOrDisabled(t *testing.T) {
	p := Props{Options: opts("Fiction"), Mode: Multi, CanCreate: true}
	s, effects := Reduce(openState("   "), p, CreateRequested{})
	assert.Empty(t, effects)
	assert.Equal(t, "   ", s.Search)

	p.CanCreate = false
	s, effects = Reduce(openState("Poetry"), p, CreateRequested{})
	assert.Empty(t, effects)
	assert.Equal(t, "Poetry", s.Search)

	_, effects = Reduce(openState("Poetry"), p, KeyPressed{Key: KeyEnter})
	assert.Equal(t, []Effect{KeyboardActivity{}}, effects)
}

func TestReduce_SingleSelectReplaces(t *testing.T) {
	p := Props{Options: opts("A", "B"), Mode: Single}

	_, effects := Reduce(openState(""), p, OptionClicked{Index: 0})
	require.Equal(t, []Effect{Changed{Value: Selection{"a"}}}, effects)
	p.Value = Selection{"a"}

	s, effects := Reduce(openState(""), p, OptionClicked{Index: 1})
	assert.Equal(t, []Effect{Changed{Value: Selection{"b"}}}, effects)
	assert.False(t, s.Open)
}

func TestReduce_MultiToggle(t *testing.T) {
	p := Props{Options: opts("A", "B"), Mode: Multi}

	s, effects := Reduce(openState(""), p, OptionClicked{Index: 0})
	require.Equal(t, []Effect{Changed{Value: Selection{"a"}}}, effects)
	assert.True(t, s.Open, "multi mode stays open")
	p.Value = Selection{"a"}

	_, effects = Reduce(s, p, OptionClicked{Index: 0})
	assert.Equal(t, []Effect{Changed{Value: Selection{}}}, effects)

	_, effects = Reduce(s, p, OptionClicked{Index: 1})
	assert.Equal(t, []Effect{Changed{Value: Selection{"a", "b"}}}, effects)
}

func TestReduce_MultiSelectionKeepsHistoryOrder(t *testing.T) {
	p := Props{Options: opts("A", "B", "C"), Mode: Multi, Value: Selection{"c"}}

	_, effects := Reduce(openState(""), p, OptionClicked{Index: 0})
	assert.Equal(t, []Effect{Changed{Value: Selection{"c", "a"}}}, effects)
}

func TestReduce_ChipRemoved(t *testing.T) {
	p := Props{Options: opts("A", "B", "C"), Mode: Multi, Value: Selection{"a"}}
	_, effects := Reduce(Initial(), p, ChipRemoved{Value: "a"})
	assert.Equal(t, []Effect{Changed{Value: Selection{}}}, effects)

	p.Value = Selection{"c", "a", "b"}
	_, effects = Reduce(Initial(), p, ChipRemoved{Value: "a"})
	assert.Equal(t, []Effect{Changed{Value: Selection{"c", "b"}}}, effects)

	p = Props{Options: opts("A"), Mode: Single, Value: Selection{"a"}}
	_, effects = Reduce(Initial(), p, ChipRemoved{Value: "a"})
	assert.Equal(t, []Effect{Changed{Value: Selection{}}}, effects)
}

func TestReduce_ArrowKeysWrap(t *testing.T) {
	p := Props{Options: opts("A", "B", "C")}

	s := openState("")
	s.Highlight = 2
	s, _ = Reduce(s, p, KeyPressed{Key: KeyDown})
	assert.Equal(t, 0, s.Highlight)

	s, _ = Reduce(s, p, KeyPressed{Key: KeyUp})
	assert.Equal(t, 2, s.Highlight)

	s, _ = Reduce(s, p, KeyPressed{Key: KeyUp})
	assert.Equal(t, 1, s.Highlight)
}

func TestReduce_ArrowFromNoHighlight(t *testing.T) {
	p := Props{Options: opts("A", "B", "C")}
	s := openState("")
	s.Highlight = None

	down, _ := Reduce(s, p, KeyPressed{Key: KeyDown})
	assert.Equal(t, 0, down.Highlight)

	up, _ := Reduce(s, p, KeyPressed{Key: KeyUp})
	assert.Equal(t, 2, up.Highlight)
}

func TestReduce_ArrowsHighlightCreateRow(t *testing.T) {
	p := Props{Options: opts("A"), CanCreate: true}
	s := openState("new")
	s.Highlight = None

	s, _ = Reduce(s, p, KeyPressed{Key: KeyDown})
	assert.Equal(t, 0, s.Highlight)
	s, _ = Reduce(s, p, KeyPressed{Key: KeyUp})
	assert.Equal(t, 0, s.Highlight)

	_, effects := Reduce(s, p, KeyPressed{Key: KeyEnter})
	assert.Equal(t, []Effect{KeyboardActivity{}, Created{Label: "new"}, Changed{Value: Selection{"new"}}}, effects)
}

func TestReduce_OpenFromClosed(t *testing.T) {
	p := Props{Options: opts("A")}
	for _, k := range []Key{KeyEnter, KeySpace, KeyDown} {
		s, _ := Reduce(Initial(), p, KeyPressed{Key: k})
		assert.True(t, s.Open, "key %d", k)
		assert.Equal(t, 0, s.Highlight)
	}

	s, _ := Reduce(Initial(), Props{}, KeyPressed{Key: KeyEnter})
	assert.True(t, s.Open)
	assert.Equal(t, None, s.Highlight, "nothing to highlight")

	for _, k := range []Key{KeyUp, KeyEscape, KeyTab} {
		s, _ := Reduce(Initial(), p, KeyPressed{Key: k})
		assert.False(t, s.Open, "key %d", k)
	}
}

func TestReduce_KeyboardActivity(t *testing.T) {
	p := Props{Options: opts("A")}
	for _, open := range []bool{false, true} {
		s := Initial()
		if open {
			s = openState("")
		}
		for _, k := range []Key{KeyEnter, KeyUp, KeyDown} {
			_, effects := Reduce(s, p, KeyPressed{Key: k})
			require.NotEmpty(t, effects)
			assert.Equal(t, KeyboardActivity{}, effects[0])
		}
		for _, k := range []Key{KeySpace, KeyEscape, KeyTab} {
			_, effects := Reduce(s, p, KeyPressed{Key: k})
			assert.Empty(t, effects)
		}
	}
}

func TestReduce_EscapeTabAndDismissClose(t *testing.T) {
	p := Props{Options: opts("A"), Value: Selection{"a"}}
	for _, ev := range []Event{KeyPressed{Key: KeyEscape}, KeyPressed{Key: KeyTab}, Dismissed{}} {
		s, effects := Reduce(openState("a"), p, ev)
		assert.Equal(t, Initial(), s, "%T", ev)
		assert.Empty(t, effects, "selection is untouched")
	}
}

func TestReduce_HighlightResetsOnSearch(t *testing.T) {
	p := Props{Options: opts("Alpha", "Beta", "Gamma")}
	s := openState("")
	s.Highlight = 2

	s, _ = Reduce(s, p, SearchChanged{Text: "a"})
	assert.Equal(t, 0, s.Highlight)

	s, _ = Reduce(s, p, SearchChanged{Text: "zz"})
	assert.Equal(t, None, s.Highlight)

	p.CanCreate = true
	s, _ = Reduce(s, p, SearchChanged{Text: "zzz"})
	assert.Equal(t, 0, s.Highlight, "create row is highlightable")
	assert.True(t, HasCreateAffordance(s, p))
}

func TestReduce_HoverMovesHighlight(t *testing.T) {
	p := Props{Options: opts("A", "B")}
	s, _ := Reduce(openState(""), p, OptionHovered{Index: 1})
	assert.Equal(t, 1, s.Highlight)

	s, _ = Reduce(s, p, OptionHovered{Index: 5})
	assert.Equal(t, 1, s.Highlight)
}

func TestReduce_TriggerToggles(t *testing.T) {
	p := Props{Options: opts("A")}
	s, _ := Reduce(Initial(), p, TriggerClicked{})
	assert.True(t, s.Open)
	s, _ = Reduce(s, p, TriggerClicked{})
	assert.False(t, s.Open)
}

func TestReduce_DragReorder(t *testing.T) {
	p := Props{Options: opts("0", "1", "2", "3"), CanReorder: true}

	s, _ := Reduce(openState(""), p, DragStarted{Index: 0})
	require.Equal(t, 0, s.Drag)

	s, effects := Reduce(s, p, DraggedOver{Index: 2})
	require.Len(t, effects, 1)
	reordered := effects[0].(Reordered).Options
	assert.Equal(t, []string{"1", "2", "0", "3"}, idsOf(reordered))
	assert.Equal(t, 2, s.Drag, "drag source follows the item")
	assert.Equal(t, []string{"0", "1", "2", "3"}, idsOf(p.Options), "props untouched")

	// Continue dragging against the reordered catalog.
	p.Options = reordered
	s, effects = Reduce(s, p, DraggedOver{Index: 3})
	require.Len(t, effects, 1)
	assert.Equal(t, []string{"1", "2", "3", "0"}, idsOf(effects[0].(Reordered).Options))

	s, _ = Reduce(s, p, DragEnded{})
	assert.Equal(t, None, s.Drag)
}

func TestReduce_DragWithinFilteredList(t *testing.T) {
	// Candidates for "a": Alpha(0) Gamma(2) Delta(4).
	p := Props{Options: opts("Alpha", "Echo", "Gamma", "Omicron", "Delta"), CanReorder: true}
	s := openState("a")

	s, _ = Reduce(s, p, DragStarted{Index: 2})
	_, effects := Reduce(s, p, DraggedOver{Index: 0})
	require.Len(t, effects, 1)
	assert.Equal(t, []string{"Delta", "Alpha", "Echo", "Gamma", "Omicron"},
		labelsOf(effects[0].(Reordered).Options))
}

func TestReduce_DragRequiresCapability(t *testing.T) {
	p := Props{Options: opts("A", "B")}
	s, _ := Reduce(openState(""), p, DragStarted{Index: 0})
	assert.Equal(t, None, s.Drag)

	s.Drag = 0
	_, effects := Reduce(s, p, DraggedOver{Index: 1})
	assert.Empty(t, effects)
}

func TestNormalize(t *testing.T) {
	p := Props{Options: opts("A", "B")}
	s := openState("")
	s.Highlight = 7
	assert.Equal(t, 0, Normalize(s, p).Highlight)

	s.Highlight = 1
	assert.Equal(t, 1, Normalize(s, p).Highlight)

	closed := Initial()
	closed.Highlight = 1
	assert.Equal(t, None, Normalize(closed, p).Highlight)
}

func TestSelectedOptions_SelectionOrderSkipsUnknown(t *testing.T) {
	p := Props{Options: opts("A", "B", "C"), Value: Selection{"c", "gone", "a"}}
	assert.Equal(t, []string{"C", "A"}, labelsOf(SelectedOptions(p)))
}
