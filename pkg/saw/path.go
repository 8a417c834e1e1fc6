package saw

import (
	"math"
	"strconv"
	"strings"
)

// Op is a path drawing operation.
type Op byte

const (
	OpMove Op = 'M' // move to a point without drawing
	OpLine Op = 'L' // draw a straight line to a point
)

// Command is a single path instruction.
type Command struct {
	Op   Op
	X, Y float64
}

// String renders the command in SVG path syntax, e.g. "L1500 85".
func (c Command) String() string {
	return string(c.Op) + formatNumber(c.X) + " " + formatNumber(c.Y)
}

// Commands computes the instructions for one sawtooth wave centered on
// startY. The result always starts with a move to (0, startY) and holds
// 1 + 3*cycles commands when cycles is positive.
func Commands(startY, width, height float64, cycles int) []Command {
	n := 1
	if cycles > 0 {
		n += 3 * cycles
	}
	cmds := make([]Command, 0, n)
	cmds = append(cmds, Command{Op: OpMove, X: 0, Y: startY})

	interval := width / float64(cycles)
	half := height / 2
	for i := 0; i < cycles; i++ {
		peakX := interval/2 + interval*float64(i)
		cmds = append(cmds,
			Command{Op: OpLine, X: peakX, Y: startY - half},
			Command{Op: OpLine, X: peakX, Y: startY + half},
			Command{Op: OpLine, X: interval * float64(i+1), Y: startY},
		)
	}
	return cmds
}

// Path returns the SVG "d" attribute for one sawtooth wave.
func Path(startY, width, height float64, cycles int) string {
	return Format(Commands(startY, width, height, cycles))
}

// Format joins commands into a space separated path string.
func Format(cmds []Command) string {
	var b strings.Builder
	for i, c := range cmds {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(c.String())
	}
	return b.String()
}

// Rect is an axis-aligned bounding box.
type Rect struct {
	MinX, MinY, MaxX, MaxY float64
}

// Width returns the horizontal extent of r.
func (r Rect) Width() float64 { return r.MaxX - r.MinX }

// Height returns the vertical extent of r.
func (r Rect) Height() float64 { return r.MaxY - r.MinY }

// Bounds returns the bounding box of all command points.
// It returns the zero Rect for an empty slice.
func Bounds(cmds []Command) Rect {
	if len(cmds) == 0 {
		return Rect{}
	}
	r := Rect{MinX: cmds[0].X, MaxX: cmds[0].X, MinY: cmds[0].Y, MaxY: cmds[0].Y}
	for _, c := range cmds[1:] {
		r.MinX = math.Min(r.MinX, c.X)
		r.MaxX = math.Max(r.MaxX, c.X)
		r.MinY = math.Min(r.MinY, c.Y)
		r.MaxY = math.Max(r.MaxY, c.Y)
	}
	return r
}

// formatNumber prints v the way a browser stringifies numbers in path data:
// shortest round-trip digits, no negative zero, and exponent notation only
// below 1e-6 or from 1e21 up.
func formatNumber(v float64) string {
	switch {
	case math.IsInf(v, 1):
		return "Infinity"
	case math.IsInf(v, -1):
		return "-Infinity"
	case v == 0:
		return "0"
	}
	if a := math.Abs(v); a < 1e-6 || a >= 1e21 {
		s := strconv.FormatFloat(v, 'e', -1, 64)
		mant, exp, _ := strings.Cut(s, "e")
		sign := exp[:1]
		exp = strings.TrimLeft(exp[1:], "0")
		if sign == "-" {
			return mant + "e-" + exp
		}
		return mant + "e+" + exp
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
