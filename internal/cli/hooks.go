package cli

import (
	"context"
	"time"

	"github.com/charmbracelet/log"
)

// logHooks forwards loop and render events to the debug log.
type logHooks struct {
	logger *log.Logger
}

func (h *logHooks) OnLoopStart(_ context.Context, loopID string, interval time.Duration) {
	h.logger.Debug("loop armed", "loop", loopID, "interval", interval)
}

// OnTick is silent; the loop logs each tick with its own logger.
func (h *logHooks) OnTick(context.Context, string, int, int, float64) {}

func (h *logHooks) OnEvict(_ context.Context, loopID string, tick int) {
	h.logger.Debug("evicted oldest shape", "loop", loopID, "tick", tick)
}

func (h *logHooks) OnLoopStop(_ context.Context, loopID string, ticks int, err error) {
	if err != nil {
		h.logger.Warn("loop ended", "loop", loopID, "ticks", ticks, "err", err)
		return
	}
	h.logger.Debug("loop ended", "loop", loopID, "ticks", ticks)
}

func (h *logHooks) OnRenderComplete(_ context.Context, format string, shapes int, d time.Duration, err error) {
	h.logger.Debug("rendered", "format", format, "shapes", shapes, "took", d.Round(time.Microsecond), "err", err)
}
