package sink

import (
	"context"
	"strings"
	"time"

	"github.com/matzehuels/sawtooth/pkg/errors"
	"github.com/matzehuels/sawtooth/pkg/observability"
	"github.com/matzehuels/sawtooth/pkg/svg"
)

// Format constants for output formats.
const (
	FormatSVG  = "svg"
	FormatPNG  = "png"
	FormatJSON = "json"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatSVG:  true,
	FormatPNG:  true,
	FormatJSON: true,
}

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errors.New(errors.ErrCodeInvalidFormat, "invalid format: %q", format).
			WithHint("use one of: %s, %s, %s", FormatSVG, FormatPNG, FormatJSON)
	}
	return nil
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// ParseFormats splits a comma-separated list such as "svg,png" and drops
// duplicates and blanks.
func ParseFormats(s string) []string {
	var out []string
	seen := make(map[string]bool)
	for _, f := range strings.Split(s, ",") {
		f = strings.ToLower(strings.TrimSpace(f))
		if f == "" || seen[f] {
			continue
		}
		seen[f] = true
		out = append(out, f)
	}
	return out
}

// Options bundles per-format options for [Render].
type Options struct {
	SVG []SVGOption
	PNG []PNGOption
}

// Render serializes doc in the given format.
func Render(ctx context.Context, doc *svg.Document, format string, opts Options) ([]byte, error) {
	if err := ValidateFormat(format); err != nil {
		return nil, err
	}

	start := time.Now()
	var (
		out []byte
		err error
	)
	switch format {
	case FormatSVG:
		out = RenderSVG(doc, opts.SVG...)
	case FormatPNG:
		out, err = RenderPNG(doc, opts.PNG...)
	case FormatJSON:
		out, err = RenderJSON(doc)
	}
	observability.Render().OnRenderComplete(ctx, format, doc.Len(), time.Since(start), err)
	return out, err
}
