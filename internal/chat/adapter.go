package chat

import (
	"errors"
	"fmt"
	"strings"
)

// ErrRowOutOfRange is returned when a row index does not exist
var ErrRowOutOfRange = errors.New("row index out of range")

// Row is a bound message ready for display.
type Row struct {
	Index int
	Kind  RowKind
	Text  string
}

// RenderFunc turns a bound row into its on-screen form at the given width.
type RenderFunc func(row Row, width int) string

// Adapter projects a Conversation into display rows.
//
// Each row is rendered exactly once, when its insert notification arrives,
// and cached; earlier rows are never re-rendered on append. Only a width
// change invalidates the cache.
type Adapter struct {
	conv      *Conversation
	render    RenderFunc
	width     int
	rendered  []string
	observers []Listener
}

// NewAdapter binds conv, rendering rows with render. A nil render shows the
// raw text. Rows already in conv are bound immediately.
func NewAdapter(conv *Conversation, render RenderFunc) *Adapter {
	if render == nil {
		render = func(row Row, _ int) string { return row.Text }
	}
	a := &Adapter{
		conv:   conv,
		render: render,
	}
	for i := 0; i < conv.Len(); i++ {
		a.rendered = append(a.rendered, a.renderRow(i))
	}
	conv.Subscribe(a)
	return a
}

// Observe registers l to be told after a new row has been bound.
func (a *Adapter) Observe(l Listener) {
	a.observers = append(a.observers, l)
}

// RowInserted binds the row at index and makes it visible.
func (a *Adapter) RowInserted(index int) {
	row := a.renderRow(index)
	if index >= len(a.rendered) {
		a.rendered = append(a.rendered, row)
	} else {
		a.rendered = append(a.rendered, "")
		copy(a.rendered[index+1:], a.rendered[index:])
		a.rendered[index] = row
	}
	for _, l := range a.observers {
		l.RowInserted(index)
	}
}

// RowCount returns the number of visible rows
func (a *Adapter) RowCount() int {
	return len(a.rendered)
}

// RowKind returns the variant for the row at index
func (a *Adapter) RowKind(index int) (RowKind, error) {
	row, err := a.BindRow(index)
	if err != nil {
		return 0, err
	}
	return row.Kind, nil
}

// BindRow returns the row at index with its text exactly as stored.
func (a *Adapter) BindRow(index int) (Row, error) {
	m, ok := a.conv.At(index)
	if !ok {
		return Row{}, fmt.Errorf("%w: %d of %d", ErrRowOutOfRange, index, a.conv.Len())
	}
	return Row{Index: index, Kind: m.Kind(), Text: m.Text()}, nil
}

// Rendered returns the cached on-screen form of the row at index
func (a *Adapter) Rendered(index int) string {
	if index < 0 || index >= len(a.rendered) {
		return ""
	}
	return a.rendered[index]
}

// Content joins all rendered rows for a scrolling viewport
func (a *Adapter) Content() string {
	return strings.Join(a.rendered, "\n")
}

// Width returns the width rows are rendered at
func (a *Adapter) Width() int {
	return a.width
}

// SetWidth changes the render width and re-renders every row if it differs.
func (a *Adapter) SetWidth(width int) {
	if width == a.width {
		return
	}
	a.width = width
	for i := range a.rendered {
		a.rendered[i] = a.renderRow(i)
	}
}

// LineOffset returns the first content line of the row at index, for
// scrolling a viewport to it.
func (a *Adapter) LineOffset(index int) int {
	if index > len(a.rendered) {
		index = len(a.rendered)
	}
	lines := 0
	for i := 0; i < index; i++ {
		lines += strings.Count(a.rendered[i], "\n") + 1
	}
	return lines
}

func (a *Adapter) renderRow(index int) string {
	row, err := a.BindRow(index)
	if err != nil {
		return ""
	}
	return a.render(row, a.width)
}
