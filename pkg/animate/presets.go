package animate

import (
	"sort"
	"strings"
	"sync/atomic"

	"github.com/fogleman/ease"

	"github.com/matzehuels/sawtooth/pkg/errors"
)

var easings = map[string]ease.Function{
	"linear":       ease.Linear,
	"in-quad":      ease.InQuad,
	"out-quad":     ease.OutQuad,
	"in-out-quad":  ease.InOutQuad,
	"in-cubic":     ease.InCubic,
	"out-cubic":    ease.OutCubic,
	"in-out-cubic": ease.InOutCubic,
	"in-quart":     ease.InQuart,
	"out-quart":    ease.OutQuart,
	"in-out-quart": ease.InOutQuart,
	"in-sine":      ease.InSine,
	"out-sine":     ease.OutSine,
	"in-out-sine":  ease.InOutSine,
	"out-bounce":   ease.OutBounce,
	"out-elastic":  ease.OutElastic,
}

// EasingByName returns the easing curve registered under name. The empty
// name maps to linear.
func EasingByName(name string) (ease.Function, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return ease.Linear, nil
	}
	fn, ok := easings[name]
	if !ok {
		return nil, errors.New(errors.ErrCodeInvalidInput, "unknown easing %q", name).
			WithHint("known easings: %s", strings.Join(EasingNames(), ", "))
	}
	return fn, nil
}

// EasingNames lists the registered easing names in sorted order.
func EasingNames() []string {
	names := make([]string, 0, len(easings))
	for n := range easings {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Oscillate returns a function that sweeps from lo to hi and back over
// 2*ticks calls, shaped by easing. Each call advances the sweep by one step,
// so it suits HeightFn and StrokeWidthFn. A nil easing is linear.
func Oscillate(lo, hi float64, ticks int, easing ease.Function) func() float64 {
	if ticks < 1 {
		ticks = 1
	}
	if easing == nil {
		easing = ease.Linear
	}
	var calls atomic.Int64
	return func() float64 {
		k := int(calls.Add(1)-1) % (2 * ticks)
		p := float64(k) / float64(ticks)
		if p > 1 {
			p = 2 - p
		}
		return lo + (hi-lo)*easing(p)
	}
}

// Cycle returns a tick-indexed function that repeats values in order, for
// StartYFn and IntervalYFn. With no values it always returns 0, which falls
// back to the static option.
func Cycle(values ...float64) func(i int) float64 {
	vals := append([]float64(nil), values...)
	return func(i int) float64 {
		if len(vals) == 0 {
			return 0
		}
		if i < 0 {
			i = -i
		}
		return vals[i%len(vals)]
	}
}
