// Package pkg provides the core libraries for sawtooth.
//
// # Overview
//
// Sawtooth draws rows of zig-zag lines that step down a canvas, one line per
// timer tick, and keeps only the most recent lines visible. The pkg directory
// is organized into three areas:
//
//  1. [saw] and [animate] - Domain logic (path generation and the tick loop)
//  2. [svg] and [sink] - The in-memory document and its output formats
//  3. [config], [theme], [errors], [observability], [buildinfo] - Support
//
// # Architecture
//
// The typical data flow:
//
//	sawtooth.toml + theme.toml
//	         ↓
//	    [config] package (decode, resolve theme colors, build presets)
//	         ↓
//	    [animate] package (one tick per interval)
//	         ↓  uses [saw] for each path string
//	    [svg] package (document with paint-ordered shapes)
//	         ↓
//	    [sink] package → SVG/PNG/JSON output
//
// # Quick Start
//
// Run ten ticks by hand and render the frame:
//
//	doc := svg.NewDocument(1200, 800)
//	loop, _ := animate.New(doc, animate.Options{N: 5})
//	for range 10 {
//	    loop.Tick()
//	}
//	out := sink.RenderSVG(doc, sink.WithoutHidden())
//
// Or let the timer drive it:
//
//	h, _ := animate.Start(ctx, doc, animate.Options{TimeInterval: time.Second})
//	defer h.Stop()
//
// # Main Packages
//
// [saw] - Pure path generation. Path(startY, width, height, cycles) returns an
// SVG path string; Commands returns the same drawing as structured values.
//
// [animate] - The loop. Options resolve through a function → static → default
// chain on every tick; eviction hides the oldest shape once N are visible.
//
// [svg] - Elements with ordered attributes and inline style, appended to a
// Document that is safe to read while a loop writes to it.
//
// [sink] - Renderers for SVG markup, PNG (gogpu/gg) and JSON.
//
// [config] - TOML configuration with theme color references and presets.
//
// [theme] - The built-in palette and font stacks, overridable from TOML.
//
// [observability] - Optional hooks for loop and render events.
package pkg
