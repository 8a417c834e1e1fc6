// Package svg is a small in-memory vector-graphics document.
//
// It stands in for a browser DOM: callers create elements with [NewElement],
// mutate attributes and inline style properties, and append them to a
// [Document] whose child order is the paint order. Nothing here knows how to
// serialize itself; see package sink for SVG, PNG and JSON output.
//
// Elements and documents are safe for concurrent use, so an animation loop
// can mutate them on its own goroutine while a renderer takes snapshots.
package svg
