// Package observability provides hooks for metrics, tracing, and logging.
//
// This package enables optional instrumentation without adding hard dependencies
// on specific observability backends. Consumers register hooks at startup to
// receive events about animation loops and document rendering.
//
// # Architecture
//
// The package uses a simple hooks pattern:
//   - Define hook interfaces for different event categories
//   - Provide no-op default implementations
//   - Allow registration of custom implementations at startup
//
// Hooks are registered by main, not by libraries, so package animate and
// package sink never import a metrics backend.
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetLoopHooks(&myLoopHooks{})
//	    observability.SetRenderHooks(&myRenderHooks{})
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	observability.Loop().OnTick(ctx, loopID, tick, slot, startY)
//	observability.Render().OnRenderComplete(ctx, "svg", shapes, duration, err)
package observability

import (
	"context"
	"sync"
	"time"
)

// =============================================================================
// Loop Hooks
// =============================================================================

// LoopHooks receives events from animation loops.
type LoopHooks interface {
	// OnLoopStart records a loop whose ticker has been armed.
	OnLoopStart(ctx context.Context, loopID string, interval time.Duration)

	// OnTick records a shape appended at the given tick and row slot.
	OnTick(ctx context.Context, loopID string, tick, slot int, startY float64)

	// OnEvict records the oldest visible shape being hidden.
	OnEvict(ctx context.Context, loopID string, tick int)

	// OnLoopStop records a loop that will fire no further ticks.
	OnLoopStop(ctx context.Context, loopID string, ticks int, err error)
}

// =============================================================================
// Render Hooks
// =============================================================================

// RenderHooks receives events from document sinks.
type RenderHooks interface {
	// OnRenderComplete records one document serialized to format.
	OnRenderComplete(ctx context.Context, format string, shapes int, duration time.Duration, err error)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopLoopHooks is a no-op implementation of LoopHooks.
type NoopLoopHooks struct{}

func (NoopLoopHooks) OnLoopStart(context.Context, string, time.Duration) {}
func (NoopLoopHooks) OnTick(context.Context, string, int, int, float64)  {}
func (NoopLoopHooks) OnEvict(context.Context, string, int)               {}
func (NoopLoopHooks) OnLoopStop(context.Context, string, int, error)     {}

// NoopRenderHooks is a no-op implementation of RenderHooks.
type NoopRenderHooks struct{}

func (NoopRenderHooks) OnRenderComplete(context.Context, string, int, time.Duration, error) {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	loopHooks   LoopHooks   = NoopLoopHooks{}
	renderHooks RenderHooks = NoopRenderHooks{}
	hooksMu     sync.RWMutex
)

// SetLoopHooks registers custom loop hooks.
// This should be called once at application startup before any loop starts.
func SetLoopHooks(h LoopHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		loopHooks = h
	}
}

// SetRenderHooks registers custom render hooks.
// This should be called once at application startup before any rendering.
func SetRenderHooks(h RenderHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		renderHooks = h
	}
}

// Loop returns the registered loop hooks.
func Loop() LoopHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return loopHooks
}

// Render returns the registered render hooks.
func Render() RenderHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return renderHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	loopHooks = NoopLoopHooks{}
	renderHooks = NoopRenderHooks{}
}
