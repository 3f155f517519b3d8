// Package traverse provides tunable options, the shared result type, the
// outcome error taxonomy and the neighbor/path primitives reused by every
// search strategy in github.com/katalvlaran/mazewalk.
package traverse

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/katalvlaran/mazewalk/maze"
	"github.com/katalvlaran/mazewalk/visual"
)

// ErrNoRoute is the umbrella for every "goal not reached" outcome. Strategy
// specific errors (ErrNoPath here, greedy.ErrStuck, greedy.ErrStepLimit,
// bug2.ErrUnsolvable) all wrap it, so errors.Is(err, ErrNoRoute) matches
// any of them.
var ErrNoRoute = errors.New("no route to goal")

// Sentinel errors for traversal execution.
var (
	// ErrUnconfigured is returned when the maze, its start or its goal is nil.
	// It is a precondition violation, not a search outcome.
	ErrUnconfigured = errors.New("traverse: maze has no start or goal")

	// ErrWallEndpoint is returned when the start or goal cell is a wall.
	ErrWallEndpoint = errors.New("traverse: start or goal is a wall")

	// ErrNoPath is returned when BFS or DFS exhaust their frontier.
	ErrNoPath = fmt.Errorf("traverse: frontier exhausted: %w", ErrNoRoute)

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("traverse: invalid option supplied")

	// ErrInvalidPath is returned by ValidatePath.
	ErrInvalidPath = errors.New("traverse: invalid path")
)

// IsNoRoute reports whether err is an expected "no path" outcome rather
// than a precondition failure or cancellation.
func IsNoRoute(err error) bool { return errors.Is(err, ErrNoRoute) }

// Option configures a search via functional arguments.
// Invalid values are recorded and surfaced as ErrOptionViolation when the
// search starts.
type Option func(*Options)

// Options holds the per-call settings shared by all strategies.
type Options struct {
	// Ctx allows cancellation; it is checked at every notification point.
	Ctx context.Context

	// Sink receives progress notifications. Defaults to visual.Nop.
	Sink visual.Sink

	// Delay is the pause after each paced notification. Zero disables it.
	Delay time.Duration

	// StepLimit bounds strategies with a safety loop limit (greedy).
	// Zero selects the strategy default.
	StepLimit int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with a background context, the no-op
// sink, no delay and the strategy's default step limit.
func DefaultOptions() Options {
	return Options{
		Ctx:       context.Background(),
		Sink:      visual.Nop,
		Delay:     0,
		StepLimit: 0,
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithSink routes notifications to s.
func WithSink(s visual.Sink) Option {
	return func(o *Options) {
		if s != nil {
			o.Sink = s
		}
	}
}

// WithDelay sets the pause after each paced notification.
//
//	d > 0:  pause d
//	d == 0: run without pausing
//	d < 0:  invalid option → ErrOptionViolation
func WithDelay(d time.Duration) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: Delay cannot be negative (%s)", ErrOptionViolation, d)
			return
		}
		o.Delay = d
	}
}

// WithStepLimit overrides the safety step limit of bounded strategies.
func WithStepLimit(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: StepLimit cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.StepLimit = n
	}
}

// Build applies opts over DefaultOptions and returns the first recorded
// violation, if any.
func Build(opts ...Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o, o.err
}

// Pacer returns a visual.Pacer bound to these options.
func (o Options) Pacer() *visual.Pacer {
	return visual.NewPacer(o.Ctx, o.Sink, o.Delay)
}

// Validate checks the preconditions every search shares: a maze with both
// endpoints set, neither of them a wall.
func Validate(m *maze.Maze) error {
	if m == nil || m.Start() == nil || m.Goal() == nil {
		return ErrUnconfigured
	}
	if m.Start().Wall || m.Goal().Wall {
		return fmt.Errorf("%w: start (%d,%d) goal (%d,%d)", ErrWallEndpoint,
			m.Start().Row, m.Start().Col, m.Goal().Row, m.Goal().Col)
	}
	return nil
}

// Result holds the outcome of a successful search.
//   - Path: cells from start to goal, both inclusive.
//   - Explored: cells claimed by the search (discovered or stepped on).
//   - Steps: main-loop iterations.
//   - Rescues: rescue sub-searches run (greedy only).
type Result struct {
	Path     []*maze.Cell
	Explored int
	Steps    int
	Rescues  int
}

// Edges returns the number of moves along Path.
func (r *Result) Edges() int {
	if r == nil || len(r.Path) == 0 {
		return 0
	}
	return len(r.Path) - 1
}

// Coords returns Path as (row, col) pairs.
func (r *Result) Coords() [][2]int {
	out := make([][2]int, len(r.Path))
	for i, c := range r.Path {
		out[i] = [2]int{c.Row, c.Col}
	}
	return out
}
