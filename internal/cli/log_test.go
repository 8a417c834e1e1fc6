package cli

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLoggerLevels(t *testing.T) {
	tests := []struct {
		name    string
		level   log.Level
		emit    func(*log.Logger)
		wantLog bool
	}{
		{"info at info level", log.InfoLevel, func(l *log.Logger) { l.Info("tick") }, true},
		{"debug at info level", log.InfoLevel, func(l *log.Logger) { l.Debug("tick") }, false},
		{"debug at debug level", log.DebugLevel, func(l *log.Logger) { l.Debug("tick") }, true},
		{"warn at error level", log.ErrorLevel, func(l *log.Logger) { l.Warn("tick") }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			tt.emit(newLogger(&buf, tt.level))
			assert.Equal(t, tt.wantLog, buf.Len() > 0)
		})
	}
}

func TestStopwatch(t *testing.T) {
	var buf bytes.Buffer
	sw := startStopwatch(newLogger(&buf, log.InfoLevel))
	sw.now = func() time.Time { return sw.start.Add(1500 * time.Millisecond) }

	assert.Equal(t, 1500*time.Millisecond, sw.elapsed())

	sw.done("Ran loop", "ticks", 12)
	out := buf.String()
	assert.Contains(t, out, "Ran loop")
	assert.Contains(t, out, "ticks=12")
	assert.Contains(t, out, "took=1.5s")
}

func TestLoggerContext(t *testing.T) {
	ctx := context.Background()
	require.NotNil(t, loggerFromContext(ctx))
	assert.Same(t, log.Default(), loggerFromContext(ctx))

	var buf bytes.Buffer
	custom := newLogger(&buf, log.InfoLevel)
	ctx = withLogger(ctx, custom)
	assert.Same(t, custom, loggerFromContext(ctx))

	loggerFromContext(ctx).Info("hello")
	assert.Contains(t, buf.String(), "hello")
}

func TestLogHooks(t *testing.T) {
	var buf bytes.Buffer
	h := &logHooks{logger: newLogger(&buf, log.DebugLevel)}
	ctx := context.Background()

	h.OnLoopStart(ctx, "loop-1", time.Second)
	h.OnTick(ctx, "loop-1", 3, 1, 60)
	h.OnEvict(ctx, "loop-1", 20)
	h.OnRenderComplete(ctx, "svg", 3, time.Millisecond, nil)
	h.OnLoopStop(ctx, "loop-1", 21, nil)

	for _, want := range []string{"loop armed", "evicted oldest shape", "rendered", "loop ended"} {
		assert.Contains(t, buf.String(), want)
	}
}
