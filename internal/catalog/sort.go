package catalog

import (
	"cmp"
	"errors"
	"fmt"
	"slices"
	"strings"
)

// SortOption orders the book list.
type SortOption string

const (
	SortTitleAsc      SortOption = "title-asc"
	SortTitleDesc     SortOption = "title-desc"
	SortAuthorAsc     SortOption = "author-asc"
	SortAuthorDesc    SortOption = "author-desc"
	SortDateAddedDesc SortOption = "date-added-desc"
	SortDateAddedAsc  SortOption = "date-added-asc"
	SortRatingDesc    SortOption = "rating-desc"
	SortRatingAsc     SortOption = "rating-asc"
)

// DefaultSort is the order used when nothing else is configured.
const DefaultSort = SortTitleAsc

// ErrUnknownSort is returned by ParseSortOption.
var ErrUnknownSort = errors.New("unknown sort option")

// SortOptions lists every option in menu order.
var SortOptions = []SortOption{
	SortTitleAsc, SortTitleDesc,
	SortAuthorAsc, SortAuthorDesc,
	SortDateAddedDesc, SortDateAddedAsc,
	SortRatingDesc, SortRatingAsc,
}

var sortLabels = map[SortOption]string{
	SortTitleAsc:      "Title (A-Z)",
	SortTitleDesc:     "Title (Z-A)",
	SortAuthorAsc:     "Author (A-Z)",
	SortAuthorDesc:    "Author (Z-A)",
	SortDateAddedDesc: "Recently Added",
	SortDateAddedAsc:  "Oldest First",
	SortRatingDesc:    "Highest Rated",
	SortRatingAsc:     "Lowest Rated",
}

// Label returns the menu text for o.
func (o SortOption) Label() string {
	if l, ok := sortLabels[o]; ok {
		return l
	}
	return "Sort"
}

// ParseSortOption validates s.
func ParseSortOption(s string) (SortOption, error) {
	o := SortOption(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := sortLabels[o]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownSort, s)
	}
	return o, nil
}

// Sort returns a sorted copy of books. The sort is stable, so books that
// compare equal keep their input order. Unrated books sort as rating 0.
func Sort(books []Book, o SortOption) []Book {
	out := slices.Clone(books)
	slices.SortStableFunc(out, func(a, b Book) int {
		switch o {
		case SortTitleAsc:
			return compareText(a.Title, b.Title)
		case SortTitleDesc:
			return compareText(b.Title, a.Title)
		case SortAuthorAsc:
			return compareText(a.Author, b.Author)
		case SortAuthorDesc:
			return compareText(b.Author, a.Author)
		case SortDateAddedAsc:
			return strings.Compare(a.DateAdded, b.DateAdded)
		case SortDateAddedDesc:
			return strings.Compare(b.DateAdded, a.DateAdded)
		case SortRatingAsc:
			return cmp.Compare(a.Rating, b.Rating)
		case SortRatingDesc:
			return cmp.Compare(b.Rating, a.Rating)
		}
		return 0
	})
	return out
}

func compareText(a, b string) int {
	if c := strings.Compare(strings.ToLower(a), strings.ToLower(b)); c != 0 {
		return c
	}
	return strings.Compare(a, b)
}
