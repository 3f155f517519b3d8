// Package visual is the narrow boundary between the maze core and whatever
// draws it.
//
// A Sink is told that the grid changed; it may read the maze at that
// moment and must not mutate it. The Pacer wraps a Sink with the two
// notification flavours the algorithms use:
//
//   - Touch: state changed, no pacing.
//   - Step:  state changed, then pause for the configured delay.
//
// Both honour context cancellation, so every notification point is also a
// cancellation point. With Nop and a zero delay an algorithm runs to
// completion synchronously.
//
// HeatmapSink is an optional extension for sinks that overlay the greedy
// strategy's distance field. Whether the overlay is shown is the sink's
// business; it never changes traversal results.
package visual
