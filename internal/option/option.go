// Package option holds the selectable options shared by pickers and the
// code that owns their catalogs.
package option

import "strings"

// Option is one selectable labeled entry.
type Option struct {
	ID    string `yaml:"id"`
	Label string `yaml:"label"`
	Value string `yaml:"value"`
	Color string `yaml:"color,omitempty"`
}

// Palette lists the color tags an option may carry.
var Palette = []string{"blue", "green", "purple", "red", "orange", "yellow", "gray", "pink"}

// NextColor returns the palette color for the n-th option, cycling through
// the palette.
func NextColor(n int) string {
	if n < 0 {
		n = -n
	}
	return Palette[n%len(Palette)]
}

// Slugify derives an option value from its label: the trimmed label is
// lowercased and every run of whitespace becomes a single hyphen.
//
// Pickers and catalog owners must both derive values through this function,
// otherwise a freshly created selection points at a value the catalog does
// not contain.
func Slugify(label string) string {
	return strings.Join(strings.Fields(strings.ToLower(label)), "-")
}

// FindByLabel returns the first option whose label equals label, ignoring case.
func FindByLabel(options []Option, label string) (Option, bool) {
	for _, o := range options {
		if strings.EqualFold(o.Label, label) {
			return o, true
		}
	}
	return Option{}, false
}

// IndexOf returns the index of the option with the given value, or -1.
func IndexOf(options []Option, value string) int {
	for i, o := range options {
		if o.Value == value {
			return i
		}
	}
	return -1
}

// IndexByID returns the index of the option with the given ID, or -1.
func IndexByID(options []Option, id string) int {
	for i, o := range options {
		if o.ID == id {
			return i
		}
	}
	return -1
}

// Move returns a copy of options with the entry at from removed and
// reinserted at to. Out-of-range indexes return an unchanged copy.
func Move(options []Option, from, to int) []Option {
	out := make([]Option, len(options))
	copy(out, options)
	if from < 0 || from >= len(out) || to < 0 || to >= len(out) || from == to {
		return out
	}
	moved := out[from]
	out = append(out[:from], out[from+1:]...)
	out = append(out[:to], append([]Option{moved}, out[to:]...)...)
	return out
}
