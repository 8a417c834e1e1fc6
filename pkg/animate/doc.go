// Package animate drives a timer-based loop that appends sawtooth paths to a
// container and keeps at most N of them visible.
//
// # Overview
//
// Each tick creates one <path> element whose d attribute comes from
// [saw.Path]. Rows step downward by IntervalY until the drawing start passes
// RestartY, then wrap back to StartY. Once N shapes are visible the oldest is
// hidden (opacity 0) before the next one is appended. Hidden shapes stay in
// the container.
//
// # Options
//
// Every field of [Options] can be left zero. Fields with a function variant
// (StrokeWidthFn, StartYFn, IntervalYFn, HeightFn, PeriodFn) are re-evaluated
// on every tick. Resolution is an ordered fallback chain:
//
//  1. the function result, if the function is set and the result is truthy
//  2. the static field, if truthy
//  3. the package default
//
// Truthy means non-zero, non-NaN and non-empty. A function that returns 0 is
// therefore treated as absent, and so is a static 0.
//
// # Running a Loop
//
// [Start] validates the options, arms a ticker and returns a [Handle]:
//
//	h, err := animate.Start(ctx, doc, animate.Options{N: 10})
//	if err != nil {
//	    return err
//	}
//	defer h.Stop()
//
// The first tick fires one TimeInterval after Start. Stop is cooperative: it
// prevents future ticks and never removes shapes. Callers that need to step
// the loop by hand (tests, batch rendering) use [New] and [Loop.Tick].
//
// # Clocks
//
// The ticker comes from a k8s.io/utils/clock.WithTicker, so tests inject a
// fake clock with [WithClock] and step it deterministically.
//
// # Presets
//
// [Oscillate] and [Cycle] build function options from easing curves and
// value lists; [EasingByName] maps names like "in-out-sine" to curves.
package animate
