package theme

import (
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"

	"github.com/matzehuels/sawtooth/pkg/errors"
)

// ParseColor parses a CSS color: "#rgb", "#rrggbb", "hsl(h s% l%)" (comma or
// space separated) or an SVG color name.
func ParseColor(s string) (colorful.Color, error) {
	s = strings.TrimSpace(s)
	lower := strings.ToLower(s)

	switch {
	case strings.HasPrefix(s, "#"):
		c, err := colorful.Hex(s)
		if err != nil {
			return colorful.Color{}, errors.Wrap(errors.ErrCodeInvalidColor, err, "parse %q", s)
		}
		return c, nil
	case strings.HasPrefix(lower, "hsl(") && strings.HasSuffix(lower, ")"):
		return parseHSL(s, lower[len("hsl("):len(lower)-1])
	}

	if named, ok := colornames.Map[lower]; ok {
		c, _ := colorful.MakeColor(named)
		return c, nil
	}
	return colorful.Color{}, errors.New(errors.ErrCodeInvalidColor, "unrecognized color %q", s)
}

func parseHSL(orig, args string) (colorful.Color, error) {
	fields := strings.FieldsFunc(args, func(r rune) bool {
		return r == ' ' || r == ',' || r == '\t'
	})
	if len(fields) != 3 {
		return colorful.Color{}, errors.New(errors.ErrCodeInvalidColor, "hsl needs 3 components: %q", orig)
	}

	h, err := strconv.ParseFloat(strings.TrimSuffix(fields[0], "deg"), 64)
	if err != nil {
		return colorful.Color{}, errors.Wrap(errors.ErrCodeInvalidColor, err, "hue in %q", orig)
	}
	var sl [2]float64
	for i, f := range fields[1:] {
		v, err := strconv.ParseFloat(strings.TrimSuffix(f, "%"), 64)
		if err != nil {
			return colorful.Color{}, errors.Wrap(errors.ErrCodeInvalidColor, err, "component %q in %q", f, orig)
		}
		sl[i] = v / 100
	}
	return colorful.Hsl(h, sl[0], sl[1]).Clamped(), nil
}
