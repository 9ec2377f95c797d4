package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blackwell-systems/bookshelf/internal/option"
)

func pageSend(p pickerPage, msgs ...tea.Msg) (pickerPage, tea.Cmd) {
	var cmd tea.Cmd
	for _, msg := range msgs {
		var next tea.Model
		next, cmd = p.Update(msg)
		p = next.(pickerPage)
	}
	return p, cmd
}

func labels(opts []option.Option) []string {
	out := make([]string, len(opts))
	for i, o := range opts {
		out[i] = o.Label
	}
	return out
}

func TestPickerDemo_SharedCatalog(t *testing.T) {
	p := newPickerDemo(option.NewCatalog("Fiction", "Science"), nil)

	p, _ = pageSend(p, keySpace, runes("Poetry"), keyEnter)
	assert.Equal(t, []string{"Poetry"}, p.fields[0].Labels())
	assert.Equal(t, []string{"Fiction", "Science", "Poetry"}, labels(p.fields[1].Options()),
		"options created in one picker appear in the other")

	p, _ = pageSend(p, keyTab)
	require.Equal(t, 1, p.focus)
	assert.False(t, p.fields[0].Focused())

	p, _ = pageSend(p, keySpace, keyEnter, keyDown, keyEnter)
	assert.Equal(t, []string{"Fiction", "Science"}, p.fields[1].Labels())

	p, _ = pageSend(p, KeyboardActivityMsg{})
	v := p.View()
	assert.Contains(t, v, "Selected: Poetry")
	assert.Contains(t, v, "Selected: Fiction, Science")
	assert.Contains(t, v, "keyboard navigation")
}

func TestPickerDemo_ReorderIsShared(t *testing.T) {
	p := newPickerDemo(option.NewCatalog("Fiction", "Science", "Art"), nil)
	p, _ = pageSend(p, keySpace, tea.KeyMsg{Type: tea.KeyDown, Alt: true})
	assert.Equal(t, []string{"Science", "Fiction", "Art"}, labels(p.fields[1].Options()))
}

func TestPickerPage_EscFinishes(t *testing.T) {
	p := newPickerDemo(option.NewCatalog("Fiction"), nil)

	p, _ = pageSend(p, keySpace, keyEsc)
	assert.False(t, p.done, "first esc closes the dropdown")

	p, cmd := pageSend(p, keyEsc)
	assert.True(t, p.done)
	assert.NotNil(t, cmd)
}

func TestPickerPage_CtrlCCancels(t *testing.T) {
	p := newPickerDemo(option.NewCatalog("Fiction"), nil)
	p, _ = pageSend(p, tea.KeyMsg{Type: tea.KeyCtrlC})
	assert.True(t, p.canceled)
}

func TestPick_SingleFinishesOnChoice(t *testing.T) {
	p := newPick(PickConfig{Title: "Genre", Options: []string{"Fiction", "Mystery"}})
	p, _ = pageSend(p, keySpace, keyDown, keyEnter)
	assert.True(t, p.done)
	assert.Equal(t, []string{"Mystery"}, p.fields[0].Labels())
}

func TestPick_MultiWaitsForEsc(t *testing.T) {
	p := newPick(PickConfig{Title: "Tags", Options: []string{"a", "b"}, Multi: true})
	p, _ = pageSend(p, keySpace, keyEnter, keyDown, keyEnter)
	assert.False(t, p.done)
	assert.Equal(t, []string{"a", "b"}, p.fields[0].Labels())

	p, _ = pageSend(p, keyEsc, keyEsc)
	assert.True(t, p.done)
}
