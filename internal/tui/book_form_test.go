package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blackwell-systems/bookshelf/internal/catalog"
)

func newTestForm(t *testing.T) (*catalog.Library, bookForm) {
	t.Helper()
	lib := testLibrary()
	return lib, newBookForm(lib, newVocabularies(lib), nil)
}

func formSend(f bookForm, msgs ...tea.Msg) bookForm {
	for _, msg := range msgs {
		f, _ = f.Update(msg)
	}
	return f
}

func fill(f *bookForm, title, author string) {
	f.inputs[fieldTitle].SetValue(title)
	f.inputs[fieldAuthor].SetValue(author)
}

func TestBookForm_Defaults(t *testing.T) {
	_, f := newTestForm(t)
	fill(&f, "Piranesi", "Susanna Clarke")
	d, err := f.draft()
	require.NoError(t, err)

	assert.Equal(t, catalog.DefaultGenre, d.Genre)
	assert.Equal(t, catalog.DefaultLanguage, d.Language)
	assert.Equal(t, catalog.StatusUnread, d.Status)
	assert.Equal(t, catalog.FormatPhysical, d.Format)
	assert.Empty(t, d.Publisher)
	assert.Zero(t, d.Rating)
}

func TestBookForm_RequiresTitle(t *testing.T) {
	lib, f := newTestForm(t)
	f = formSend(f, keySave)

	assert.ErrorIs(t, f.err, catalog.ErrTitleRequired)
	assert.Nil(t, f.added)
	assert.Equal(t, 3, lib.Len())
	assert.Contains(t, f.View(), "Error: title is required")
}

func TestBookForm_InvalidNumbers(t *testing.T) {
	_, f := newTestForm(t)
	fill(&f, "T", "A")

	f.inputs[fieldYear].SetValue("19x4")
	f = formSend(f, keySave)
	assert.ErrorIs(t, f.err, catalog.ErrInvalidYear)

	f.inputs[fieldYear].SetValue("2027")
	f = formSend(f, keySave)
	assert.ErrorIs(t, f.err, catalog.ErrInvalidYear, "future year")

	f.inputs[fieldYear].SetValue("1999")
	f.inputs[fieldPages].SetValue("many")
	f = formSend(f, keySave)
	assert.ErrorIs(t, f.err, catalog.ErrInvalidPageCount)
}

func TestBookForm_CreateGenre(t *testing.T) {
	lib, f := newTestForm(t)
	fill(&f, "The Ministry for the Future", "Kim Stanley Robinson")

	f.focusField(fieldGenre)
	f = formSend(f, keySpace)
	require.True(t, f.genre.Open())

	f = formSend(f, runes("Solarpunk"), keyEnter)
	assert.False(t, f.genre.Open(), "single pickers close after choosing")
	assert.Equal(t, []string{"Solarpunk"}, f.genre.Labels())

	f = formSend(f, keySave)
	require.NotNil(t, f.added)
	assert.Equal(t, "Solarpunk", f.added.Genre)
	assert.Equal(t, 4, lib.Len())
}

func TestBookForm_PickExistingTag(t *testing.T) {
	_, f := newTestForm(t)
	fill(&f, "T", "A")

	f.focusField(fieldTags)
	f = formSend(f, keySpace, runes("classic"), keyEnter)
	// Closing the dropdown clears the search.
	f = formSend(f, keyEsc, keySpace, runes("to read"), keyEnter)
	assert.True(t, f.tags.Open(), "multi pickers stay open")

	d, err := f.draft()
	require.NoError(t, err)
	assert.Equal(t, []string{"classic", "to-read"}, d.Tags)
}

func TestBookForm_Rating(t *testing.T) {
	_, f := newTestForm(t)
	f.focusField(fieldRating)

	f = formSend(f, runes("4"))
	assert.Equal(t, 4, f.rating)
	f = formSend(f, runes("4"))
	assert.Zero(t, f.rating, "same star clears")
	f = formSend(f, tea.KeyMsg{Type: tea.KeyRight}, tea.KeyMsg{Type: tea.KeyRight})
	assert.Equal(t, 2, f.rating)
	f = formSend(f, runes("0"))
	assert.Zero(t, f.rating)
}

func TestBookForm_FormatHidesLocation(t *testing.T) {
	_, f := newTestForm(t)
	assert.Contains(t, f.fields(), fieldLocation)

	f.focusField(fieldFormat)
	f = formSend(f, tea.KeyMsg{Type: tea.KeyRight})
	assert.Equal(t, catalog.FormatEbook, f.format)
	assert.NotContains(t, f.fields(), fieldLocation)
	assert.NotContains(t, f.View(), "Location")
}

func TestBookForm_StatusCycles(t *testing.T) {
	_, f := newTestForm(t)
	f.focusField(fieldStatus)
	f = formSend(f, tea.KeyMsg{Type: tea.KeyLeft})
	assert.Equal(t, catalog.StatusWishlist, f.status)
	assert.Contains(t, f.View(), "‹ Wishlist ›")
}

func TestBookForm_TabWraps(t *testing.T) {
	_, f := newTestForm(t)
	f = formSend(f, tea.KeyMsg{Type: tea.KeyShiftTab})
	assert.Equal(t, fieldNotes, f.focus)
	f = formSend(f, keyTab)
	assert.Equal(t, fieldTitle, f.focus)
}

func TestBookForm_EscClosesPickerBeforeCanceling(t *testing.T) {
	_, f := newTestForm(t)
	f.focusField(fieldPublisher)
	f = formSend(f, keySpace, keyEsc)
	assert.False(t, f.publisher.Open())
	assert.False(t, f.canceled)

	f = formSend(f, keyEsc)
	assert.True(t, f.canceled)
}
