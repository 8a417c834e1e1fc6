package sink

import (
	"bytes"
	"math"
	"strconv"
	"strings"

	"github.com/gogpu/gg"

	"github.com/matzehuels/sawtooth/pkg/errors"
	"github.com/matzehuels/sawtooth/pkg/saw"
	"github.com/matzehuels/sawtooth/pkg/svg"
	"github.com/matzehuels/sawtooth/pkg/theme"
)

// PNGOption configures PNG rendering.
type PNGOption func(*pngRenderer)

type pngRenderer struct {
	scale float64
}

// WithScale sets the PNG scale factor (default 1.0).
func WithScale(s float64) PNGOption {
	return func(r *pngRenderer) { r.scale = s }
}

// RenderPNG rasterizes the visible path elements of doc.
func RenderPNG(doc *svg.Document, opts ...PNGOption) ([]byte, error) {
	r := pngRenderer{scale: 1.0}
	for _, opt := range opts {
		opt(&r)
	}
	if r.scale <= 0 || math.IsNaN(r.scale) {
		return nil, errors.New(errors.ErrCodeInvalidInput, "png scale must be positive, got %v", r.scale)
	}

	w := int(math.Ceil(doc.Width() * r.scale))
	h := int(math.Ceil(doc.Height() * r.scale))
	if w <= 0 || h <= 0 {
		return nil, errors.New(errors.ErrCodeInvalidInput, "canvas %vx%v has no area", doc.Width(), doc.Height())
	}

	dc := gg.NewContext(w, h)
	defer dc.Close()

	if bg := doc.Background(); bg != "" && bg != "none" {
		c, err := theme.ParseColor(bg)
		if err != nil {
			return nil, err
		}
		dc.ClearWithColor(gg.RGB(c.R, c.G, c.B))
	}
	dc.Scale(r.scale, r.scale)

	for _, el := range doc.Children() {
		if el.Tag() != "path" || el.Hidden() {
			continue
		}
		if err := strokePath(dc, el); err != nil {
			return nil, err
		}
	}

	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "encode png")
	}
	return buf.Bytes(), nil
}

func strokePath(dc *gg.Context, el *svg.Element) error {
	stroke, _ := el.Attribute("stroke")
	if stroke == "" || stroke == "none" {
		return nil
	}
	d, ok := el.Attribute("d")
	if !ok {
		return nil
	}

	cmds, err := saw.ParsePath(d)
	if err != nil {
		return err
	}
	if !finite(cmds) {
		return nil
	}

	c, err := theme.ParseColor(stroke)
	if err != nil {
		return err
	}

	dc.ClearPath()
	for _, cmd := range cmds {
		switch cmd.Op {
		case saw.OpMove:
			dc.MoveTo(cmd.X, cmd.Y)
		case saw.OpLine:
			dc.LineTo(cmd.X, cmd.Y)
		}
	}
	dc.SetLineWidth(attrFloat(el, "stroke-width", 1))
	dc.SetRGBA(c.R, c.G, c.B, opacity(el))
	if err := dc.Stroke(); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "stroke path")
	}
	return nil
}

func finite(cmds []saw.Command) bool {
	for _, c := range cmds {
		if math.IsInf(c.X, 0) || math.IsNaN(c.X) || math.IsInf(c.Y, 0) || math.IsNaN(c.Y) {
			return false
		}
	}
	return true
}

func attrFloat(el *svg.Element, name string, def float64) float64 {
	v, ok := el.Attribute(name)
	if !ok {
		return def
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
	if err != nil || f <= 0 {
		return def
	}
	return f
}

func opacity(el *svg.Element) float64 {
	v, ok := el.Style("opacity")
	if !ok {
		return 1
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
	if err != nil {
		return 1
	}
	return math.Max(0, math.Min(1, f))
}
