package saw

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/matzehuels/sawtooth/pkg/errors"
)

// ParsePath reads the M/L subset of SVG path syntax. Commands may be written
// with or without a space between the letter and the first coordinate, and
// coordinates may be separated by spaces or commas. Relative commands,
// curves and implicit repeats are rejected.
func ParsePath(d string) ([]Command, error) {
	fields := strings.FieldsFunc(d, func(r rune) bool {
		return unicode.IsSpace(r) || r == ','
	})

	var cmds []Command
	for i := 0; i < len(fields); {
		tok := fields[i]
		op := Op(tok[0])
		if op != OpMove && op != OpLine {
			return nil, errors.New(errors.ErrCodeInvalidPath, "unsupported path command %q", tok)
		}

		// Split "M0" into "M" and "0".
		var coords []string
		if len(tok) > 1 {
			coords = append(coords, tok[1:])
		}
		i++
		for len(coords) < 2 && i < len(fields) {
			coords = append(coords, fields[i])
			i++
		}
		if len(coords) < 2 {
			return nil, errors.New(errors.ErrCodeInvalidPath, "command %c is missing coordinates", op)
		}

		x, err := parseNumber(coords[0])
		if err != nil {
			return nil, err
		}
		y, err := parseNumber(coords[1])
		if err != nil {
			return nil, err
		}
		cmds = append(cmds, Command{Op: op, X: x, Y: y})
	}

	if len(cmds) > 0 && cmds[0].Op != OpMove {
		return nil, errors.New(errors.ErrCodeInvalidPath, "path must start with a move command")
	}
	return cmds, nil
}

func parseNumber(s string) (float64, error) {
	switch s {
	case "Infinity":
		s = "+Inf"
	case "-Infinity":
		s = "-Inf"
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, errors.Wrap(errors.ErrCodeInvalidPath, err, "invalid coordinate %q", s)
	}
	return v, nil
}
