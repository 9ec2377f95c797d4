package option

import (
	"strings"

	"github.com/google/uuid"
)

// Catalog is the owner-side list of options behind a picker. Owners keep a
// pointer to it so picker callbacks can mutate it while the owning Bubble Tea
// model is passed around by value.
type Catalog struct {
	options []Option
}

// NewCatalog builds a catalog from labels, skipping duplicates.
func NewCatalog(labels ...string) *Catalog {
	c := &Catalog{}
	for _, l := range labels {
		c.Add(l)
	}
	return c
}

// Options returns a snapshot of the catalog in its current order.
func (c *Catalog) Options() []Option {
	out := make([]Option, len(c.options))
	copy(out, c.options)
	return out
}

// Len returns the number of options.
func (c *Catalog) Len() int {
	return len(c.options)
}

// Add appends a new option for label unless one with the same label
// (ignoring case) or the same derived value already exists. It returns the
// option now representing label and whether it was newly added.
func (c *Catalog) Add(label string) (Option, bool) {
	label = strings.TrimSpace(label)
	if label == "" {
		return Option{}, false
	}
	if existing, ok := FindByLabel(c.options, label); ok {
		return existing, false
	}
	value := Slugify(label)
	if i := IndexOf(c.options, value); i >= 0 {
		return c.options[i], false
	}

	o := Option{
		ID:    uuid.NewString(),
		Label: label,
		Value: value,
		Color: NextColor(len(c.options)),
	}
	c.options = append(c.options, o)
	return o, true
}

// Reorder replaces the catalog order. Options not already present are ignored
// and options missing from the new order keep their relative order at the end,
// so a stale reorder can never drop entries.
func (c *Catalog) Reorder(options []Option) {
	seen := make(map[string]bool, len(options))
	next := make([]Option, 0, len(c.options))
	for _, o := range options {
		i := IndexByID(c.options, o.ID)
		if i < 0 || seen[o.ID] {
			continue
		}
		seen[o.ID] = true
		next = append(next, c.options[i])
	}
	for _, o := range c.options {
		if !seen[o.ID] {
			next = append(next, o)
		}
	}
	c.options = next
}

// Labels resolves values to labels in the given order. Unknown values are
// returned unchanged.
func (c *Catalog) Labels(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if i := IndexOf(c.options, v); i >= 0 {
			out = append(out, c.options[i].Label)
			continue
		}
		out = append(out, v)
	}
	return out
}

// Label resolves one value to its label, or returns the value unchanged.
func (c *Catalog) Label(value string) string {
	if i := IndexOf(c.options, value); i >= 0 {
		return c.options[i].Label
	}
	return value
}
