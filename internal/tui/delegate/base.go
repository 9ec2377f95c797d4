// Package delegate adapts a plain render function to list.ItemDelegate.
package delegate

import (
	"io"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
)

// RenderFunc renders one list row. It receives the writer, the list, the
// row index and the item.
type RenderFunc func(w io.Writer, m list.Model, index int, item list.Item)

// Option adjusts a Base.
type Option func(*Base)

// WithSpacing sets the blank lines between rows.
func WithSpacing(n int) Option {
	return func(b *Base) { b.spacing = max(n, 0) }
}

// WithHeight sets the lines per row.
func WithHeight(n int) Option {
	return func(b *Base) { b.height = max(n, 1) }
}

// Base is a list.ItemDelegate whose only custom behavior is rendering.
type Base struct {
	height   int
	spacing  int
	renderFn RenderFunc
}

// New creates a delegate with single-line rows and no spacing unless
// options say otherwise. A nil renderFn renders nothing.
func New(renderFn RenderFunc, opts ...Option) Base {
	b := Base{height: 1, renderFn: renderFn}
	for _, opt := range opts {
		opt(&b)
	}
	return b
}

// Height implements list.ItemDelegate
func (d Base) Height() int { return d.height }

// Spacing implements list.ItemDelegate
func (d Base) Spacing() int { return d.spacing }

// Update implements list.ItemDelegate
func (d Base) Update(tea.Msg, *list.Model) tea.Cmd { return nil }

// Render implements list.ItemDelegate
func (d Base) Render(w io.Writer, m list.Model, index int, item list.Item) {
	if d.renderFn != nil {
		d.renderFn(w, m, index, item)
	}
}
