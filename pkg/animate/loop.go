package animate

import (
	"context"
	"io"
	"strconv"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"k8s.io/utils/clock"

	"github.com/matzehuels/sawtooth/pkg/errors"
	"github.com/matzehuels/sawtooth/pkg/observability"
	"github.com/matzehuels/sawtooth/pkg/saw"
	"github.com/matzehuels/sawtooth/pkg/svg"
)

// Container receives the shapes a Loop produces, in paint order.
type Container interface {
	AppendChild(el *svg.Element) error
}

// State is a snapshot of a Loop's counters.
type State struct {
	ID         string
	Tick       int     // ticks completed so far
	Slot       int     // row slot used by the next tick
	Active     int     // visible shapes
	LastStartY float64 // start y of the most recent shape
}

// LoopOption configures optional Loop dependencies.
type LoopOption func(*Loop)

// WithClock sets the clock that drives the ticker.
func WithClock(c clock.WithTicker) LoopOption {
	return func(l *Loop) {
		if c != nil {
			l.clock = c
		}
	}
}

// WithLogger sets the logger used for per-tick debug output.
func WithLogger(logger *log.Logger) LoopOption {
	return func(l *Loop) {
		if logger != nil {
			l.logger = logger
		}
	}
}

// WithID overrides the generated loop ID.
func WithID(id string) LoopOption {
	return func(l *Loop) {
		if id != "" {
			l.id = id
		}
	}
}

// WithOnTick registers a callback invoked after every successful tick.
func WithOnTick(fn func(State)) LoopOption {
	return func(l *Loop) { l.onTick = fn }
}

// Loop appends one sawtooth path per tick to a container.
type Loop struct {
	id        string
	container Container
	opts      Options
	clock     clock.WithTicker
	logger    *log.Logger
	onTick    func(State)

	n        int
	color    string
	width    float64
	restartY float64
	interval time.Duration

	mu         sync.Mutex
	active     []*svg.Element
	tick       int
	slot       int
	lastStartY float64
	started    bool
}

// New validates opts and returns a Loop that has not started ticking.
func New(container Container, opts Options, loopOpts ...LoopOption) (*Loop, error) {
	if isNil(container) {
		return nil, errors.New(errors.ErrCodeInvalidInput, "container is required")
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	l := &Loop{
		id:        uuid.NewString(),
		container: container,
		opts:      opts,
		clock:     clock.RealClock{},
		logger:    log.New(io.Discard),
		n:         resolve(nil, opts.N, DefaultN),
		color:     resolve(nil, opts.StrokeColor, DefaultStrokeColor),
		width:     resolve(nil, opts.Width, DefaultWidth),
		restartY:  resolve(nil, opts.RestartY, DefaultRestartY),
		interval:  resolve(nil, opts.TimeInterval, DefaultTimeInterval),
	}
	for _, o := range loopOpts {
		o(l)
	}
	return l, nil
}

// ID returns the loop identifier.
func (l *Loop) ID() string { return l.id }

// Tick runs one step synchronously and returns the appended shape.
func (l *Loop) Tick() (*svg.Element, error) {
	return l.step(context.Background())
}

func (l *Loop) step(ctx context.Context) (*svg.Element, error) {
	l.mu.Lock()

	i, j := l.tick, l.slot
	strokeWidth := resolve(l.opts.StrokeWidthFn, l.opts.StrokeWidth, DefaultStrokeWidth)
	startY := resolve(atTick(l.opts.StartYFn, i), l.opts.StartY, DefaultStartY)
	intervalY := resolve(atTick(l.opts.IntervalYFn, i), l.opts.IntervalY, DefaultIntervalY)
	height := resolve(l.opts.HeightFn, l.opts.Height, DefaultHeight)
	period := resolve(l.opts.PeriodFn, l.opts.Period, DefaultPeriod)

	startDrawY := startY + intervalY*float64(j)

	el := svg.NewElement("path")
	el.SetAttribute("class", "sawtooth")
	el.SetAttribute("stroke", l.color)
	el.SetAttribute("fill", "none")
	el.SetAttribute("stroke-width", strconv.FormatFloat(strokeWidth, 'f', -1, 64))
	el.SetAttribute("d", saw.Path(startDrawY, l.width, height, period))

	if err := l.container.AppendChild(el); err != nil {
		l.mu.Unlock()
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "append shape at tick %d", i)
	}

	// A failed append leaves the active list and its visibility untouched.
	if len(l.active) >= l.n {
		oldest := l.active[0]
		l.active[0] = nil
		l.active = l.active[1:]
		oldest.SetStyle("opacity", "0")
		observability.Loop().OnEvict(ctx, l.id, l.tick)
	}
	l.active = append(l.active, el)

	if startDrawY > l.restartY {
		l.slot = 0
	} else {
		l.slot++
	}
	l.tick++
	l.lastStartY = startDrawY
	st := l.stateLocked()
	l.mu.Unlock()

	l.logger.Debug("tick", "loop", l.id, "tick", i, "slot", j, "start_y", startDrawY)
	observability.Loop().OnTick(ctx, l.id, i, j, startDrawY)
	if l.onTick != nil {
		l.onTick(st)
	}
	return el, nil
}

// State returns a snapshot of the loop counters.
func (l *Loop) State() State {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.stateLocked()
}

func (l *Loop) stateLocked() State {
	return State{
		ID:         l.id,
		Tick:       l.tick,
		Slot:       l.slot,
		Active:     len(l.active),
		LastStartY: l.lastStartY,
	}
}

// Active returns the visible shapes, oldest first.
func (l *Loop) Active() []*svg.Element {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]*svg.Element, len(l.active))
	copy(out, l.active)
	return out
}

func isNil(c Container) bool {
	if c == nil {
		return true
	}
	if d, ok := c.(*svg.Document); ok && d == nil {
		return true
	}
	return false
}
