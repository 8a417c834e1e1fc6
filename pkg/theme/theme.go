// Package theme provides named color scales and font stacks.
//
// Colors are referenced as "scale.shade", for example "bg.600". Values are
// CSS color strings (hex, hsl() or SVG color names); [Theme.Color] converts
// them to hex so every renderer sees the same value.
package theme

import (
	_ "embed"
	"os"
	"slices"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/sawtooth/pkg/errors"
)

//go:embed theme.toml
var defaultTheme []byte

// Theme is a set of color scales and font stacks.
type Theme struct {
	Colors map[string]map[string]string `toml:"colors"`
	Fonts  map[string][]string          `toml:"fonts"`
}

// Swatch is one resolved color of a scale.
type Swatch struct {
	Ref   string // "bg.600"
	Value string // value as written in the theme
	Hex   string
}

// Default returns the built-in theme.
func Default() *Theme {
	t, err := Parse(defaultTheme)
	if err != nil {
		panic("theme: embedded default is invalid: " + err.Error())
	}
	return t
}

// Parse decodes a theme from TOML and checks that every color parses.
func Parse(data []byte) (*Theme, error) {
	var t Theme
	if err := toml.Unmarshal(data, &t); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "decode theme")
	}
	for scale, shades := range t.Colors {
		for shade, v := range shades {
			if _, err := ParseColor(v); err != nil {
				return nil, errors.Wrap(errors.ErrCodeInvalidColor, err, "color %s.%s", scale, shade)
			}
		}
	}
	return &t, nil
}

// Load reads a theme file and layers it over the default theme. Scales and
// font stacks in the file replace shades and stacks of the same name.
func Load(path string) (*Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "theme %s", path)
		}
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "read theme %s", path)
	}
	overlay, err := Parse(data)
	if err != nil {
		return nil, err
	}

	t := Default()
	for scale, shades := range overlay.Colors {
		if t.Colors[scale] == nil {
			t.Colors[scale] = make(map[string]string)
		}
		for shade, v := range shades {
			t.Colors[scale][shade] = v
		}
	}
	if t.Fonts == nil {
		t.Fonts = make(map[string][]string)
	}
	for name, stack := range overlay.Fonts {
		t.Fonts[name] = stack
	}
	return t, nil
}

// Color returns the hex value of a "scale.shade" reference.
func (t *Theme) Color(ref string) (string, error) {
	scale, shade, ok := strings.Cut(ref, ".")
	if !ok {
		return "", errors.New(errors.ErrCodeInvalidColor, "color reference %q is not scale.shade", ref)
	}
	v, ok := t.Colors[scale][shade]
	if !ok {
		return "", errors.New(errors.ErrCodeInvalidColor, "unknown theme color %q", ref).
			WithHint("run `sawtooth theme` to list palette references")
	}
	c, err := ParseColor(v)
	if err != nil {
		return "", errors.Wrap(errors.ErrCodeInvalidColor, err, "color %s", ref)
	}
	return c.Hex(), nil
}

// Resolve maps theme references to hex and normalizes hsl() values. Other
// literal colors such as "black" or "#222" pass through unchanged.
func (t *Theme) Resolve(s string) (string, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", nil
	}
	if scale, _, ok := strings.Cut(s, "."); ok {
		if _, known := t.Colors[scale]; known {
			return t.Color(s)
		}
	}
	if strings.HasPrefix(strings.ToLower(s), "hsl(") {
		c, err := ParseColor(s)
		if err != nil {
			return "", err
		}
		return c.Hex(), nil
	}
	if _, err := ParseColor(s); err != nil {
		return "", err
	}
	return s, nil
}

// Scales lists every color of the theme, ordered by scale name and then by
// numeric shade.
func (t *Theme) Scales() []Swatch {
	var out []Swatch
	for scale, shades := range t.Colors {
		for shade, v := range shades {
			sw := Swatch{Ref: scale + "." + shade, Value: v}
			if c, err := ParseColor(v); err == nil {
				sw.Hex = c.Hex()
			}
			out = append(out, sw)
		}
	}
	slices.SortFunc(out, func(a, b Swatch) int { return compareRefs(a.Ref, b.Ref) })
	return out
}

// Font returns the font stack registered under name as a CSS font-family
// value, or "" if there is none.
func (t *Theme) Font(name string) string {
	stack := t.Fonts[name]
	parts := make([]string, len(stack))
	for i, f := range stack {
		if strings.ContainsRune(f, ' ') {
			f = strconv.Quote(f)
		}
		parts[i] = f
	}
	return strings.Join(parts, ", ")
}

func compareRefs(a, b string) int {
	as, ashade, _ := strings.Cut(a, ".")
	bs, bshade, _ := strings.Cut(b, ".")
	if c := strings.Compare(as, bs); c != 0 {
		return c
	}
	an, aerr := strconv.Atoi(ashade)
	bn, berr := strconv.Atoi(bshade)
	if aerr == nil && berr == nil {
		return an - bn
	}
	return strings.Compare(ashade, bshade)
}
