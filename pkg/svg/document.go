package svg

import (
	"errors"
	"sync"
)

// ErrNilElement is returned when appending a nil element.
var ErrNilElement = errors.New("svg: nil element")

// Document is the root of an element tree with a fixed viewport.
type Document struct {
	mu         sync.RWMutex
	width      float64
	height     float64
	background string
	children   []*Element
}

// NewDocument creates an empty document with the given viewport size.
func NewDocument(width, height float64) *Document {
	return &Document{width: width, height: height}
}

// Width returns the viewport width.
func (d *Document) Width() float64 { return d.width }

// Height returns the viewport height.
func (d *Document) Height() float64 { return d.height }

// SetBackground sets the canvas fill color. An empty string means transparent.
func (d *Document) SetBackground(color string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.background = color
}

// Background returns the canvas fill color.
func (d *Document) Background() string {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.background
}

// AppendChild adds el after all existing children.
func (d *Document) AppendChild(el *Element) error {
	if el == nil {
		return ErrNilElement
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	d.children = append(d.children, el)
	return nil
}

// Children returns a snapshot of the children in paint order.
func (d *Document) Children() []*Element {
	d.mu.RLock()
	defer d.mu.RUnlock()
	out := make([]*Element, len(d.children))
	copy(out, d.children)
	return out
}

// Len returns the number of children, hidden ones included.
func (d *Document) Len() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return len(d.children)
}

// VisibleLen returns the number of children that are not hidden.
func (d *Document) VisibleLen() int {
	n := 0
	for _, el := range d.Children() {
		if !el.Hidden() {
			n++
		}
	}
	return n
}
