package svg

import (
	"sort"
	"strings"
	"sync"
)

// Attr is a single name/value attribute pair.
type Attr struct {
	Name  string
	Value string
}

// Element is a vector-graphics node. Attributes keep their insertion order so
// serialized output is stable.
type Element struct {
	mu    sync.RWMutex
	tag   string
	attrs []Attr
	style map[string]string
}

// NewElement creates an element with the given tag name, e.g. "path".
func NewElement(tag string) *Element {
	return &Element{tag: tag}
}

// Tag returns the element's tag name.
func (e *Element) Tag() string { return e.tag }

// SetAttribute sets name to value, replacing any previous value in place.
func (e *Element) SetAttribute(name, value string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	for i := range e.attrs {
		if e.attrs[i].Name == name {
			e.attrs[i].Value = value
			return
		}
	}
	e.attrs = append(e.attrs, Attr{Name: name, Value: value})
}

// Attribute returns the value of name and whether it is set.
func (e *Element) Attribute(name string) (string, bool) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	for _, a := range e.attrs {
		if a.Name == name {
			return a.Value, true
		}
	}
	return "", false
}

// Attributes returns a copy of the attributes in insertion order.
func (e *Element) Attributes() []Attr {
	e.mu.RLock()
	defer e.mu.RUnlock()
	out := make([]Attr, len(e.attrs))
	copy(out, e.attrs)
	return out
}

// SetStyle sets an inline style property such as "opacity".
func (e *Element) SetStyle(prop, value string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.style == nil {
		e.style = make(map[string]string)
	}
	e.style[prop] = value
}

// Style returns the inline style property and whether it is set.
func (e *Element) Style(prop string) (string, bool) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	v, ok := e.style[prop]
	return v, ok
}

// StyleString renders the inline style as "a: 1; b: 2" with properties
// sorted by name. It returns "" when no style is set.
func (e *Element) StyleString() string {
	e.mu.RLock()
	defer e.mu.RUnlock()
	if len(e.style) == 0 {
		return ""
	}
	props := make([]string, 0, len(e.style))
	for p := range e.style {
		props = append(props, p)
	}
	sort.Strings(props)

	parts := make([]string, len(props))
	for i, p := range props {
		parts[i] = p + ": " + e.style[p]
	}
	return strings.Join(parts, "; ")
}

// Hidden reports whether the element's opacity style is zero.
func (e *Element) Hidden() bool {
	v, ok := e.Style("opacity")
	if !ok {
		return false
	}
	v = strings.TrimSpace(v)
	return v == "0" || v == "0.0" || v == "0%"
}
