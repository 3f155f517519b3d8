package visual

import (
	"sync"

	"github.com/katalvlaran/mazewalk/maze"
)

// Sink receives change notifications from the generator and searches.
type Sink interface {
	Notify()
}

// HeatmapSink is a Sink that also accepts the distance field computed by
// the greedy strategy. field[r][c] is the normalized distance of (r,c).
type HeatmapSink interface {
	Sink
	Heatmap(field [][]float64)
}

// SinkFunc adapts a plain function to Sink.
type SinkFunc func()

// Notify calls f.
func (f SinkFunc) Notify() { f() }

type nopSink struct{}

func (nopSink) Notify() {}

// Nop discards every notification. Use it for headless runs and tests.
var Nop Sink = nopSink{}

// Recorder counts notifications and, when Maze is set, captures a
// rendering of the grid at each one. It is safe to inspect from another
// goroutine once the producing operation has finished.
type Recorder struct {
	Maze *maze.Maze // optional: snapshot source

	mu     sync.Mutex
	count  int
	frames []string
	field  [][]float64
}

// Notify records one notification.
func (r *Recorder) Notify() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.count++
	if r.Maze != nil {
		r.frames = append(r.frames, r.Maze.String())
	}
}

// Heatmap stores the most recent distance field.
func (r *Recorder) Heatmap(field [][]float64) {
	r.mu.Lock()
	r.field = field
	r.mu.Unlock()
}

// Count returns the number of notifications seen so far.
func (r *Recorder) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.count
}

// Frames returns a copy of the captured snapshots.
func (r *Recorder) Frames() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.frames...)
}

// Field returns the last distance field received, or nil.
func (r *Recorder) Field() [][]float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.field
}
