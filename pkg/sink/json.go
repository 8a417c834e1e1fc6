package sink

import (
	"encoding/json"

	"github.com/matzehuels/sawtooth/pkg/saw"
	"github.com/matzehuels/sawtooth/pkg/svg"
)

type jsonOutput struct {
	Width      float64     `json:"width"`
	Height     float64     `json:"height"`
	Background string      `json:"background,omitempty"`
	Visible    int         `json:"visible"`
	Shapes     []jsonShape `json:"shapes"`
}

type jsonShape struct {
	Tag        string            `json:"tag"`
	Attributes map[string]string `json:"attributes"`
	Style      string            `json:"style,omitempty"`
	Hidden     bool              `json:"hidden"`
	Bounds     *jsonBounds       `json:"bounds,omitempty"`
}

type jsonBounds struct {
	MinX float64 `json:"min_x"`
	MinY float64 `json:"min_y"`
	MaxX float64 `json:"max_x"`
	MaxY float64 `json:"max_y"`
}

// RenderJSON exports the document as a pretty-printed JSON document.
//
// Shapes are listed in paint order, hidden ones included. Path shapes with a
// parsable, finite d attribute carry their bounding box.
func RenderJSON(doc *svg.Document) ([]byte, error) {
	children := doc.Children()
	out := jsonOutput{
		Width:      doc.Width(),
		Height:     doc.Height(),
		Background: doc.Background(),
		Shapes:     make([]jsonShape, 0, len(children)),
	}

	for _, el := range children {
		s := jsonShape{
			Tag:        el.Tag(),
			Attributes: make(map[string]string),
			Style:      el.StyleString(),
			Hidden:     el.Hidden(),
		}
		for _, a := range el.Attributes() {
			s.Attributes[a.Name] = a.Value
		}
		if d, ok := el.Attribute("d"); ok {
			if cmds, err := saw.ParsePath(d); err == nil && finite(cmds) {
				b := saw.Bounds(cmds)
				s.Bounds = &jsonBounds{MinX: b.MinX, MinY: b.MinY, MaxX: b.MaxX, MaxY: b.MaxY}
			}
		}
		if !s.Hidden {
			out.Visible++
		}
		out.Shapes = append(out.Shapes, s)
	}

	return json.MarshalIndent(out, "", "  ")
}
