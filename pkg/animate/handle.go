package animate

import (
	"context"
	"sync"

	"github.com/matzehuels/sawtooth/pkg/errors"
	"github.com/matzehuels/sawtooth/pkg/observability"
)

// Handle controls a running Loop.
type Handle struct {
	id       string
	cancel   context.CancelFunc
	done     chan struct{}
	stopOnce sync.Once

	mu  sync.Mutex
	err error
}

// Start validates opts, builds a Loop over container and starts it.
func Start(ctx context.Context, container Container, opts Options, loopOpts ...LoopOption) (*Handle, error) {
	l, err := New(container, opts, loopOpts...)
	if err != nil {
		return nil, err
	}
	return l.Start(ctx)
}

// Start arms the ticker and runs the loop until ctx is cancelled, Stop is
// called, or appending a shape fails. A Loop can be started once.
func (l *Loop) Start(ctx context.Context) (*Handle, error) {
	l.mu.Lock()
	if l.started {
		l.mu.Unlock()
		return nil, errors.New(errors.ErrCodeInvalidInput, "loop %s already started", l.id)
	}
	l.started = true
	l.mu.Unlock()

	ctx, cancel := context.WithCancel(ctx)
	h := &Handle{
		id:     l.id,
		cancel: cancel,
		done:   make(chan struct{}),
	}

	ticker := l.clock.NewTicker(l.interval)
	l.logger.Debug("loop started", "loop", l.id, "interval", l.interval, "n", l.n)
	observability.Loop().OnLoopStart(ctx, l.id, l.interval)

	go func() {
		defer close(h.done)
		defer ticker.Stop()

		var err error
		defer func() {
			h.setErr(err)
			ticks := l.State().Tick
			l.logger.Debug("loop stopped", "loop", l.id, "ticks", ticks, "err", err)
			observability.Loop().OnLoopStop(context.WithoutCancel(ctx), l.id, ticks, err)
		}()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C():
				if ctx.Err() != nil {
					return
				}
				if _, err = l.step(ctx); err != nil {
					return
				}
			}
		}
	}()

	return h, nil
}

// ID returns the loop identifier.
func (h *Handle) ID() string { return h.id }

// Stop prevents future ticks. Shapes already appended are left in place.
// Stop is safe to call more than once.
func (h *Handle) Stop() {
	h.stopOnce.Do(h.cancel)
}

// Done is closed once the loop goroutine has exited.
func (h *Handle) Done() <-chan struct{} { return h.done }

// Wait blocks until the loop exits and returns its error.
func (h *Handle) Wait() error {
	<-h.done
	return h.Err()
}

// Err returns the error that ended the loop, or nil if it was stopped.
func (h *Handle) Err() error {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.err
}

func (h *Handle) setErr(err error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.err = err
}
