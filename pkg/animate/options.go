package animate

import (
	"time"

	"github.com/matzehuels/sawtooth/pkg/errors"
)

// Defaults applied when an option resolves to a falsy value.
const (
	DefaultN            = 20
	DefaultStrokeWidth  = 4.0
	DefaultStrokeColor  = "black"
	DefaultStartY       = 100.0
	DefaultIntervalY    = 40.0
	DefaultWidth        = 3000.0
	DefaultHeight       = 30.0
	DefaultPeriod       = 8
	DefaultRestartY     = 700.0
	DefaultTimeInterval = 3 * time.Second
)

// Options configures a Loop. The zero value is valid and yields the defaults.
type Options struct {
	// N is the maximum number of visible shapes.
	N int

	StrokeWidth   float64
	StrokeWidthFn func() float64
	StrokeColor   string

	// StartYFn and IntervalYFn receive the tick index.
	StartY      float64
	StartYFn    func(i int) float64
	IntervalY   float64
	IntervalYFn func(i int) float64

	Width    float64
	Height   float64
	HeightFn func() float64

	// Period is the number of sawtooth cycles per shape.
	Period   int
	PeriodFn func() int

	RestartY     float64
	TimeInterval time.Duration
}

// DefaultOptions returns Options with every static field set to its default.
func DefaultOptions() Options {
	return Options{
		N:            DefaultN,
		StrokeWidth:  DefaultStrokeWidth,
		StrokeColor:  DefaultStrokeColor,
		StartY:       DefaultStartY,
		IntervalY:    DefaultIntervalY,
		Width:        DefaultWidth,
		Height:       DefaultHeight,
		Period:       DefaultPeriod,
		RestartY:     DefaultRestartY,
		TimeInterval: DefaultTimeInterval,
	}
}

// Validate rejects values that cannot drive a loop. Zero values are fine
// because they fall back to defaults.
func (o Options) Validate() error {
	if o.N < 0 {
		return errors.New(errors.ErrCodeInvalidInput, "n must not be negative")
	}
	if o.TimeInterval < 0 {
		return errors.New(errors.ErrCodeInvalidInput, "time interval must not be negative")
	}
	return nil
}

type scalar interface {
	~int | ~int64 | ~float64 | ~string
}

// truthy reports whether v is non-zero and not NaN.
func truthy[T scalar](v T) bool {
	var zero T
	return v == v && v != zero
}

// resolve picks fn's result, then static, then def, skipping falsy values.
func resolve[T scalar](fn func() T, static, def T) T {
	if fn != nil {
		if v := fn(); truthy(v) {
			return v
		}
	}
	if truthy(static) {
		return static
	}
	return def
}

// atTick binds a tick-indexed function to i. A nil fn stays nil.
func atTick[T scalar](fn func(int) T, i int) func() T {
	if fn == nil {
		return nil
	}
	return func() T { return fn(i) }
}
