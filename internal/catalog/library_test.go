package catalog_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blackwell-systems/bookshelf/internal/catalog"
)

var fixedNow = time.Date(2026, 10, 17, 9, 30, 0, 0, time.UTC)

func newLibrary(t *testing.T) *catalog.Library {
	t.Helper()
	lib := catalog.NewLibrary(mustParse(t))
	lib.SetClock(func() time.Time { return fixedNow })
	return lib
}

func TestLibrary_AddPrependsWithDefaults(t *testing.T) {
	lib := newLibrary(t)

	b, err := lib.Add(catalog.Draft{
		Title:    "  Hyperion ",
		Author:   "Dan Simmons",
		Format:   catalog.FormatEbook,
		Location: "Shelf C",
		Tags:     []string{"space-opera", " ", "space-opera", "classic"},
	})
	require.NoError(t, err)

	assert.Len(t, b.ID, 26, "ULID")
	assert.Equal(t, "Hyperion", b.Title)
	assert.Equal(t, "2026-10-17", b.DateAdded)
	assert.Equal(t, catalog.DefaultGenre, b.Genre)
	assert.Equal(t, catalog.DefaultLanguage, b.Language)
	assert.Equal(t, catalog.StatusUnread, b.Status)
	assert.Empty(t, b.Location, "location only applies to physical books")
	assert.Equal(t, []string{"space-opera", "classic"}, b.Tags)

	require.Equal(t, 4, lib.Len())
	assert.Equal(t, b.ID, lib.Books()[0].ID)

	got, ok := lib.ByID(b.ID)
	require.True(t, ok)
	assert.Equal(t, "Dan Simmons", got.Author)
}

func TestLibrary_AddRejectsInvalid(t *testing.T) {
	cases := []struct {
		name  string
		draft catalog.Draft
		want  error
	}{
		{"no title", catalog.Draft{Title: "  ", Author: "A"}, catalog.ErrTitleRequired},
		{"no author", catalog.Draft{Title: "T"}, catalog.ErrAuthorRequired},
		{"future year", catalog.Draft{Title: "T", Author: "A", PublishedYear: 2027}, catalog.ErrInvalidYear},
		{"ancient year", catalog.Draft{Title: "T", Author: "A", PublishedYear: 999}, catalog.ErrInvalidYear},
		{"pages", catalog.Draft{Title: "T", Author: "A", PageCount: -1}, catalog.ErrInvalidPageCount},
		{"rating", catalog.Draft{Title: "T", Author: "A", Rating: 6}, catalog.ErrInvalidRating},
		{"status", catalog.Draft{Title: "T", Author: "A", Status: "lost"}, catalog.ErrInvalidStatus},
		{"format", catalog.Draft{Title: "T", Author: "A", Format: "scroll"}, catalog.ErrInvalidFormat},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			lib := newLibrary(t)
			_, err := lib.Add(c.draft)
			assert.ErrorIs(t, err, c.want)
			assert.Equal(t, 3, lib.Len())
		})
	}
}

func TestLibrary_Remove(t *testing.T) {
	lib := newLibrary(t)
	assert.Equal(t, 2, lib.Remove("sicp", "dune", "missing"))
	assert.Equal(t, []string{"ostep"}, ids(lib.Books()))
	assert.Zero(t, lib.Remove())
}

func TestLibrary_AddTags(t *testing.T) {
	lib := newLibrary(t)

	n := lib.AddTags([]string{"sicp", "dune"}, []string{"classic", "favorites"})
	assert.Equal(t, 2, n)

	sicp, _ := lib.ByID("sicp")
	assert.Equal(t, []string{"lisp", "cs", "programming", "classic", "favorites"}, sicp.Tags)
	dune, _ := lib.ByID("dune")
	assert.Equal(t, []string{"classic", "space-opera", "favorites"}, dune.Tags)

	assert.Zero(t, lib.AddTags([]string{"dune"}, []string{"classic"}), "nothing new")
}

func TestLibrary_Vocabulary(t *testing.T) {
	lib := newLibrary(t)
	assert.Equal(t, []string{"Technology", "Science Fiction"}, lib.Genres())
	assert.Equal(t, []string{"lisp", "cs", "programming", "os", "systems", "classic", "space-opera"}, lib.Tags())
	assert.Empty(t, lib.Publishers())

	assert.Equal(t, []string{"Fiction", "technology", "Science Fiction"},
		catalog.Merge([]string{"Fiction", "technology "}, lib.Genres()))
}

func TestLibrary_TagCounts(t *testing.T) {
	lib := newLibrary(t)
	lib.AddTags([]string{"sicp", "ostep"}, []string{"classic"})

	counts := lib.TagCounts()
	require.NotEmpty(t, counts)
	assert.Equal(t, catalog.TagCount{Tag: "classic", Count: 3}, counts[0])
	assert.Equal(t, "cs", counts[1].Tag, "ties sort by name")
}

func TestLibrary_BooksIsSnapshot(t *testing.T) {
	lib := newLibrary(t)
	books := lib.Books()
	books[0].Title = "changed"
	b, _ := lib.ByID(books[0].ID)
	assert.NotEqual(t, "changed", b.Title)
}
