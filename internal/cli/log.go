// Package cli implements the sawtooth command-line interface.
//
// Commands:
//   - path: print the drawing commands for one sawtooth line
//   - render: run a number of ticks and write the resulting frame
//   - play: run the loop in real time with a live status view
//   - theme: show the color palette and font stacks
//
// Each command reads sawtooth.toml from the working directory, or the file
// given with --config. Flags override config values.
//
// Logging goes to stderr through charmbracelet/log. The logger travels in the
// command context; --verbose lowers the level to debug and also installs
// observability hooks that log loop and render events.
package cli

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"
)

func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// stopwatch logs a finished step with its elapsed time as a structured field.
type stopwatch struct {
	logger *log.Logger
	start  time.Time
	now    func() time.Time
}

func startStopwatch(l *log.Logger) *stopwatch {
	return &stopwatch{logger: l, start: time.Now(), now: time.Now}
}

func (s *stopwatch) elapsed() time.Duration {
	return s.now().Sub(s.start).Round(time.Millisecond)
}

// done logs msg at info level followed by keyvals and "took".
func (s *stopwatch) done(msg string, keyvals ...any) {
	s.logger.Info(msg, append(keyvals, "took", s.elapsed())...)
}

type loggerKey struct{}

func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, l)
}

// loggerFromContext falls back to log.Default when ctx carries no logger.
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey{}).(*log.Logger); ok {
		return l
	}
	return log.Default()
}
