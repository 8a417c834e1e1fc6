package sink

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"strconv"

	"github.com/matzehuels/sawtooth/pkg/svg"
)

// SVGOption configures SVG rendering.
type SVGOption func(*svgRenderer)

type svgRenderer struct {
	title      string
	skipHidden bool
}

// WithTitle adds a <title> element.
func WithTitle(title string) SVGOption { return func(r *svgRenderer) { r.title = title } }

// WithoutHidden drops shapes whose opacity is zero.
func WithoutHidden() SVGOption { return func(r *svgRenderer) { r.skipHidden = true } }

// RenderSVG renders doc as standalone SVG markup.
func RenderSVG(doc *svg.Document, opts ...SVGOption) []byte {
	r := svgRenderer{}
	for _, opt := range opts {
		opt(&r)
	}

	w, h := formatLength(doc.Width()), formatLength(doc.Height())

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %s %s" width="%s" height="%s">`+"\n", w, h, w, h)

	if r.title != "" {
		fmt.Fprintf(&buf, "  <title>%s</title>\n", escapeXML(r.title))
	}
	if bg := doc.Background(); bg != "" {
		fmt.Fprintf(&buf, `  <rect width="100%%" height="100%%" fill="%s"/>`+"\n", escapeXML(bg))
	}

	for _, el := range doc.Children() {
		if r.skipHidden && el.Hidden() {
			continue
		}
		renderElement(&buf, el)
	}

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

func renderElement(buf *bytes.Buffer, el *svg.Element) {
	fmt.Fprintf(buf, "  <%s", el.Tag())
	for _, a := range el.Attributes() {
		fmt.Fprintf(buf, ` %s="%s"`, a.Name, escapeXML(a.Value))
	}
	if style := el.StyleString(); style != "" {
		fmt.Fprintf(buf, ` style="%s"`, escapeXML(style))
	}
	buf.WriteString("/>\n")
}

func formatLength(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func escapeXML(s string) string {
	var buf bytes.Buffer
	xml.EscapeText(&buf, []byte(s))
	return buf.String()
}
