// Package saw generates the geometry of horizontal sawtooth waves.
//
// # Overview
//
// A wave is described by a vertical center line, a total width, a peak to
// trough height and a cycle count. [Path] turns those four numbers into an
// SVG path "d" string made of a single move command followed by three line
// commands per cycle:
//
//	M0 100 L1500 85 L1500 115 L3000 100
//
// Each cycle rises to the peak halfway through its span, drops straight to
// the trough, and returns to the center line at the end of the span.
//
// # Structured Commands
//
// [Commands] returns the same geometry as [Command] values, which is handy
// for measuring ([Bounds]) or for drawing on a raster canvas. [ParsePath]
// reads the M/L subset back from a "d" string, and [Format] writes commands
// out again.
//
// # Degenerate Input
//
// Nothing is validated. A cycle count of zero or less yields only the
// initial move command, and a zero width collapses every point onto x=0.
package saw
