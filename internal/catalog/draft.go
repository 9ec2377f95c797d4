package catalog

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"
)

const (
	DefaultGenre    = "Fiction"
	DefaultLanguage = "English"
)

var (
	ErrTitleRequired    = errors.New("title is required")
	ErrAuthorRequired   = errors.New("author is required")
	ErrInvalidYear      = errors.New("invalid published year")
	ErrInvalidPageCount = errors.New("invalid page count")
	ErrInvalidRating    = errors.New("rating must be between 0 and 5")
	ErrInvalidStatus    = errors.New("unknown status")
	ErrInvalidFormat    = errors.New("unknown format")
)

// Draft is a book as entered in the add form, before it gets an ID and a
// date added.
type Draft struct {
	Title         string
	Author        string
	ISBN          string
	CoverURL      string
	Publisher     string
	PublishedYear int // 0 = unknown
	PageCount     int // 0 = unknown
	Genre         string
	Language      string
	Status        Status
	Format        Format
	Rating        int
	Location      string
	Notes         string
	Tags          []string
}

// Validate checks the draft. now bounds the published year.
func (d Draft) Validate(now time.Time) error {
	if strings.TrimSpace(d.Title) == "" {
		return ErrTitleRequired
	}
	if strings.TrimSpace(d.Author) == "" {
		return ErrAuthorRequired
	}
	if d.PublishedYear != 0 && (d.PublishedYear < 1000 || d.PublishedYear > now.Year()) {
		return fmt.Errorf("%w: %d (must be 1000-%d)", ErrInvalidYear, d.PublishedYear, now.Year())
	}
	if d.PageCount < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidPageCount, d.PageCount)
	}
	if d.Rating < 0 || d.Rating > 5 {
		return fmt.Errorf("%w: %d", ErrInvalidRating, d.Rating)
	}
	if d.Status != "" && !validStatus(d.Status) {
		return fmt.Errorf("%w: %q", ErrInvalidStatus, d.Status)
	}
	if d.Format != "" && !validFormat(d.Format) {
		return fmt.Errorf("%w: %q", ErrInvalidFormat, d.Format)
	}
	return nil
}

// book builds the stored book. Text fields are trimmed and empty optional
// fields stay empty.
func (d Draft) book(id string, added time.Time) Book {
	b := Book{
		ID:            id,
		Title:         strings.TrimSpace(d.Title),
		Author:        strings.TrimSpace(d.Author),
		ISBN:          strings.TrimSpace(d.ISBN),
		CoverURL:      strings.TrimSpace(d.CoverURL),
		Publisher:     strings.TrimSpace(d.Publisher),
		PublishedYear: d.PublishedYear,
		PageCount:     d.PageCount,
		Genre:         strings.TrimSpace(d.Genre),
		Language:      strings.TrimSpace(d.Language),
		Status:        d.Status,
		Format:        d.Format,
		Rating:        d.Rating,
		Notes:         strings.TrimSpace(d.Notes),
		DateAdded:     added.Format(DateLayout),
		Tags:          dedupe(d.Tags),
	}
	if b.Language == "" {
		b.Language = DefaultLanguage
	}
	if b.Format == FormatPhysical || b.Format == "" {
		b.Location = strings.TrimSpace(d.Location)
	}
	normalize(&b)
	return b
}

// ParseStatus accepts a status value or its label, ignoring case.
func ParseStatus(s string) (Status, error) {
	for _, st := range Statuses {
		if strings.EqualFold(s, string(st)) || strings.EqualFold(s, st.Label()) {
			return st, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidStatus, s)
}

// ParseFormat accepts a format value or its label, ignoring case.
func ParseFormat(s string) (Format, error) {
	for _, f := range Formats {
		if strings.EqualFold(s, string(f)) || strings.EqualFold(s, f.Label()) {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidFormat, s)
}

func validStatus(s Status) bool { return slices.Contains(Statuses, s) }

func validFormat(f Format) bool { return slices.Contains(Formats, f) }

func dedupe(tags []string) []string {
	out := make([]string, 0, len(tags))
	seen := make(map[string]bool, len(tags))
	for _, t := range tags {
		t = strings.TrimSpace(t)
		if t == "" || seen[t] {
			continue
		}
		seen[t] = true
		out = append(out, t)
	}
	return out
}
