// Package sink provides output format renderers for sawtooth documents.
//
// # Overview
//
// A "sink" transforms an [svg.Document] into a final output format.
// This package provides renderers for:
//
//   - SVG: Standalone vector markup
//   - PNG: Raster image output (pure Go, via gogpu/gg)
//   - JSON: Shape data export for external tools
//
// # SVG Output
//
// [RenderSVG] writes every child in paint order. Shapes hidden by the
// animation loop are kept with their inline style unless [WithoutHidden] is
// given:
//
//	out := sink.RenderSVG(doc,
//	    sink.WithTitle("sawtooth"),
//	    sink.WithoutHidden(),
//	)
//
// # PNG Output
//
// [RenderPNG] rasterizes path elements by parsing their d attribute with
// [saw.ParsePath]. Colors are parsed with [theme.ParseColor], so hex, hsl()
// and SVG color names all work. Hidden shapes are never drawn.
//
//	png, err := sink.RenderPNG(doc, sink.WithScale(2))
//
// # JSON Output
//
// [RenderJSON] exports the canvas size, background and every shape with its
// attributes, visibility and bounding box.
//
// # Dispatch
//
// [Render] picks a renderer by format name and reports timing through the
// observability render hooks. Use [ValidateFormats] to check user input
// before rendering.
package sink
