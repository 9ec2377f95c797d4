package catalog

import (
	"cmp"
	"slices"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"
)

// DateLayout is the format of DateAdded and DateCompleted.
const DateLayout = "2006-01-02"

// Library is the in-memory collection for one session. It is owned by a
// single goroutine; callers that share it must synchronize.
type Library struct {
	books []Book
	now   func() time.Time
}

// NewLibrary wraps books. The slice is copied.
func NewLibrary(books []Book) *Library {
	return &Library{books: slices.Clone(books), now: time.Now}
}

// SetClock replaces the time source used for new books.
func (l *Library) SetClock(now func() time.Time) { l.now = now }

// Books returns a snapshot of the collection in stored order.
func (l *Library) Books() []Book { return slices.Clone(l.books) }

// Len returns the number of books.
func (l *Library) Len() int { return len(l.books) }

// ByID returns a copy of the book with the given ID.
func (l *Library) ByID(id string) (Book, bool) {
	if b := ByID(l.books, id); b != nil {
		return *b, true
	}
	return Book{}, false
}

// Add validates d and stores it as a new book at the front of the
// collection.
func (l *Library) Add(d Draft) (Book, error) {
	now := l.now()
	if err := d.Validate(now); err != nil {
		return Book{}, err
	}
	b := d.book(ulid.Make().String(), now)
	l.books = append([]Book{b}, l.books...)
	return b, nil
}

// Remove deletes the books with the given IDs and returns how many were
// removed.
func (l *Library) Remove(ids ...string) int {
	drop := make(map[string]bool, len(ids))
	for _, id := range ids {
		drop[id] = true
	}
	before := len(l.books)
	l.books = slices.DeleteFunc(l.books, func(b Book) bool { return drop[b.ID] })
	return before - len(l.books)
}

// AddTags appends tags to each listed book, skipping tags a book already
// has. It returns the number of books that changed.
func (l *Library) AddTags(ids []string, tags []string) int {
	want := make(map[string]bool, len(ids))
	for _, id := range ids {
		want[id] = true
	}
	changed := 0
	for i := range l.books {
		b := &l.books[i]
		if !want[b.ID] {
			continue
		}
		merged := dedupe(append(slices.Clone(b.Tags), tags...))
		if len(merged) != len(b.Tags) {
			b.Tags = merged
			changed++
		}
	}
	return changed
}

// Genres returns the distinct genres in first-seen order.
func (l *Library) Genres() []string {
	return distinct(l.books, func(b Book) []string { return []string{b.Genre} })
}

// Tags returns the distinct tags in first-seen order.
func (l *Library) Tags() []string {
	return distinct(l.books, func(b Book) []string { return b.Tags })
}

// Publishers returns the distinct publishers in first-seen order.
func (l *Library) Publishers() []string {
	return distinct(l.books, func(b Book) []string { return []string{b.Publisher} })
}

// Languages returns the distinct languages in first-seen order.
func (l *Library) Languages() []string {
	return distinct(l.books, func(b Book) []string { return []string{b.Language} })
}

// TagCount is one row of TagCounts.
type TagCount struct {
	Tag   string `json:"tag"`
	Count int    `json:"count"`
}

// TagCounts counts books per tag, most used first, then by name.
func (l *Library) TagCounts() []TagCount {
	counts := map[string]int{}
	for _, b := range l.books {
		for _, t := range b.Tags {
			counts[t]++
		}
	}
	out := make([]TagCount, 0, len(counts))
	for t, n := range counts {
		out = append(out, TagCount{Tag: t, Count: n})
	}
	slices.SortFunc(out, func(a, b TagCount) int {
		if c := cmp.Compare(b.Count, a.Count); c != 0 {
			return c
		}
		return strings.Compare(a.Tag, b.Tag)
	})
	return out
}

// Merge joins label lists, dropping blanks and case-insensitive repeats.
func Merge(lists ...[]string) []string {
	var out []string
	seen := map[string]bool{}
	for _, list := range lists {
		for _, s := range list {
			key := strings.ToLower(strings.TrimSpace(s))
			if key == "" || seen[key] {
				continue
			}
			seen[key] = true
			out = append(out, strings.TrimSpace(s))
		}
	}
	return out
}

func distinct(books []Book, fields func(Book) []string) []string {
	out := []string{}
	seen := map[string]bool{}
	for _, b := range books {
		for _, v := range fields(b) {
			if v == "" || seen[v] {
				continue
			}
			seen[v] = true
			out = append(out, v)
		}
	}
	return out
}
