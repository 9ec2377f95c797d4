package catalog

import (
	"slices"
	"strings"
)

// Filter narrows a book list. Empty fields match everything; within a facet
// any listed value matches.
type Filter struct {
	Query  string // matches title, author, genre or any tag
	Status []Status
	Genre  []string
	Format []Format
	Rating []int
}

// Apply returns the subset of books matching every non-empty criterion, in
// input order.
func (f Filter) Apply(books []Book) []Book {
	q := strings.ToLower(strings.TrimSpace(f.Query))
	out := []Book{}
	for _, b := range books {
		if q != "" && !matchesQuery(b, q) {
			continue
		}
		if len(f.Status) > 0 && !slices.Contains(f.Status, b.Status) {
			continue
		}
		if len(f.Genre) > 0 && !slices.Contains(f.Genre, b.Genre) {
			continue
		}
		if len(f.Format) > 0 && !slices.Contains(f.Format, b.Format) {
			continue
		}
		// Unrated books never match a rating facet.
		if len(f.Rating) > 0 && (b.Rating == 0 || !slices.Contains(f.Rating, b.Rating)) {
			continue
		}
		out = append(out, b)
	}
	return out
}

// ActiveCount is the number of facet values selected, shown as a badge on
// the filter menu. The query does not count.
func (f Filter) ActiveCount() int {
	return len(f.Status) + len(f.Genre) + len(f.Format) + len(f.Rating)
}

// IsZero reports whether the filter matches everything.
func (f Filter) IsZero() bool {
	return strings.TrimSpace(f.Query) == "" && f.ActiveCount() == 0
}

// ToggleStatus adds or removes s from the status facet.
func (f *Filter) ToggleStatus(s Status) { f.Status = toggle(f.Status, s) }

// ToggleFormat adds or removes v from the format facet.
func (f *Filter) ToggleFormat(v Format) { f.Format = toggle(f.Format, v) }

// ToggleGenre adds or removes g from the genre facet.
func (f *Filter) ToggleGenre(g string) { f.Genre = toggle(f.Genre, g) }

// ToggleRating adds or removes r from the rating facet.
func (f *Filter) ToggleRating(r int) { f.Rating = toggle(f.Rating, r) }

// ByID returns the first book with the given ID, or nil.
func ByID(books []Book, id string) *Book {
	for i := range books {
		if books[i].ID == id {
			return &books[i]
		}
	}
	return nil
}

func toggle[T comparable](values []T, v T) []T {
	if i := slices.Index(values, v); i >= 0 {
		return slices.Delete(slices.Clone(values), i, i+1)
	}
	return append(slices.Clone(values), v)
}

func matchesQuery(b Book, q string) bool {
	if strings.Contains(strings.ToLower(b.Title), q) ||
		strings.Contains(strings.ToLower(b.Author), q) ||
		strings.Contains(strings.ToLower(b.Genre), q) {
		return true
	}
	for _, t := range b.Tags {
		if strings.Contains(strings.ToLower(t), q) {
			return true
		}
	}
	return false
}
