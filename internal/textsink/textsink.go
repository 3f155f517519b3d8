// Package textsink renders maze frames as plain text, one frame per
// notification, for terminals and logs.
package textsink

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/katalvlaran/mazewalk/maze"
)

// clearScreen homes the cursor and clears the terminal.
const clearScreen = "\x1b[H\x1b[2J"

// shades maps a normalized distance (0 near the goal, 1 far away) to a glyph.
var shades = []rune(" .:-=+*%@")

// Option configures a Sink.
type Option func(*Sink)

// WithHeatmap overlays the last distance field on open unmarked cells.
func WithHeatmap(on bool) Option { return func(s *Sink) { s.heatmap = on } }

// WithEvery renders only every n-th notification; n < 1 is treated as 1.
func WithEvery(n int) Option {
	return func(s *Sink) {
		if n > 0 {
			s.every = n
		}
	}
}

// WithClear prefixes each frame with an ANSI clear-screen sequence.
func WithClear(on bool) Option { return func(s *Sink) { s.clear = on } }

// Sink writes a rendering of m to w on notification. It implements
// visual.HeatmapSink. Write errors are kept and reported by Err.
type Sink struct {
	w io.Writer
	m *maze.Maze

	heatmap bool
	every   int
	clear   bool

	mu    sync.Mutex
	n     int
	field [][]float64
	err   error
}

// New returns a Sink drawing m onto w.
func New(w io.Writer, m *maze.Maze, opts ...Option) *Sink {
	s := &Sink{w: w, m: m, every: 1}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Notify renders the current frame if it falls on the sampling interval.
func (s *Sink) Notify() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.n++
	if s.err != nil || s.n%s.every != 0 {
		return
	}
	s.writeLocked()
}

// Heatmap stores the distance field used by the overlay.
func (s *Sink) Heatmap(field [][]float64) {
	s.mu.Lock()
	s.field = field
	s.mu.Unlock()
}

// Flush renders the current frame unconditionally.
func (s *Sink) Flush() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err == nil {
		s.writeLocked()
	}
	return s.err
}

// Err returns the first write error, if any.
func (s *Sink) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}

// Frame renders m with the overlay settings of s.
func (s *Sink) Frame() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.frameLocked()
}

func (s *Sink) writeLocked() {
	var b strings.Builder
	if s.clear {
		b.WriteString(clearScreen)
	}
	b.WriteString(s.frameLocked())
	if _, err := io.WriteString(s.w, b.String()); err != nil {
		s.err = fmt.Errorf("textsink: write frame: %w", err)
	}
}

func (s *Sink) frameLocked() string {
	if !s.heatmap || s.field == nil {
		return s.m.String()
	}

	lines := strings.SplitAfter(s.m.String(), "\n")
	var b strings.Builder
	for r, line := range lines {
		row := []rune(line)
		for c, ch := range row {
			if ch == maze.RuneOpen && r < len(s.field) && c < len(s.field[r]) {
				ch = shade(s.field[r][c])
			}
			b.WriteRune(ch)
		}
	}
	return b.String()
}

func shade(v float64) rune {
	switch {
	case v <= 0:
		return shades[0]
	case v >= 1:
		return shades[len(shades)-1]
	}
	return shades[int(v*float64(len(shades)-1))]
}
