package runner

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/katalvlaran/mazewalk/carve"
	"github.com/katalvlaran/mazewalk/internal/ctxlog"
	"github.com/katalvlaran/mazewalk/maze"
	"github.com/katalvlaran/mazewalk/solve"
	"github.com/katalvlaran/mazewalk/traverse"
	"github.com/katalvlaran/mazewalk/visual"
)

// ErrBusy is returned when an operation is started while another one is
// still running on the same Runner.
var ErrBusy = errors.New("runner: another operation is in flight")

// Option configures a Runner.
type Option func(*Runner)

// WithSink sets the sink every operation reports to.
func WithSink(s visual.Sink) Option {
	return func(r *Runner) {
		if s != nil {
			r.sink = s
		}
	}
}

// WithDelay sets the pacing delay of every operation; negative values are ignored.
func WithDelay(d time.Duration) Option {
	return func(r *Runner) {
		if d >= 0 {
			r.delay = d
		}
	}
}

// WithLogger sets the logger attached to each operation's context.
func WithLogger(l *slog.Logger) Option {
	return func(r *Runner) {
		if l != nil {
			r.log = l
		}
	}
}

// Runner serializes background operations on one maze.
type Runner struct {
	m     *maze.Maze
	sink  visual.Sink
	delay time.Duration
	log   *slog.Logger

	busy atomic.Bool
	mu   sync.Mutex
	cur  *Task
}

// New returns a Runner bound to m.
func New(m *maze.Maze, opts ...Option) *Runner {
	r := &Runner{m: m, sink: visual.Nop, log: slog.Default()}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Maze returns the maze this Runner operates on.
func (r *Runner) Maze() *maze.Maze { return r.m }

// Current returns the most recently started task, or nil.
func (r *Runner) Current() *Task {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.cur
}

// Busy reports whether an operation is in flight.
func (r *Runner) Busy() bool { return r.busy.Load() }

// Generate carves the maze in the background. The Runner's sink, delay
// and the task context are applied before opts.
func (r *Runner) Generate(ctx context.Context, opts ...carve.Option) (*Task, error) {
	return r.start(ctx, "generate", func(ctx context.Context) (*traverse.Result, error) {
		all := append([]carve.Option{
			carve.WithContext(ctx),
			carve.WithSink(r.sink),
			carve.WithDelay(r.delay),
		}, opts...)
		return nil, carve.Generate(r.m, all...)
	})
}

// Search runs strategy s in the background. The Runner's sink, delay and
// the task context are applied before opts.
func (r *Runner) Search(ctx context.Context, s solve.Strategy, opts ...traverse.Option) (*Task, error) {
	if _, err := solve.Lookup(s); err != nil {
		return nil, err
	}
	return r.start(ctx, s.String(), func(ctx context.Context) (*traverse.Result, error) {
		all := append([]traverse.Option{
			traverse.WithContext(ctx),
			traverse.WithSink(r.sink),
			traverse.WithDelay(r.delay),
		}, opts...)
		return solve.Search(s, r.m, all...)
	})
}

func (r *Runner) start(parent context.Context, kind string, op func(context.Context) (*traverse.Result, error)) (*Task, error) {
	if parent == nil {
		parent = context.Background()
	}
	if !r.busy.CompareAndSwap(false, true) {
		return nil, ErrBusy
	}

	ctx, cancel := context.WithCancel(ctxlog.WithLogger(parent, r.log))
	t := newTask(kind, cancel)
	r.mu.Lock()
	r.cur = t
	r.mu.Unlock()

	log := r.log.With("task", t.ID.String(), "kind", kind)
	log.Info("runner: task started")
	go func() {
		defer close(t.done)
		defer r.busy.Store(false)
		defer cancel()

		began := time.Now()
		t.res, t.err = op(ctx)
		switch {
		case t.err == nil:
			log.Info("runner: task finished", "elapsed", time.Since(began))
		case errors.Is(t.err, context.Canceled), errors.Is(t.err, context.DeadlineExceeded):
			log.Info("runner: task cancelled", "elapsed", time.Since(began))
		case traverse.IsNoRoute(t.err):
			log.Info("runner: no route", "error", t.err)
		default:
			log.Error("runner: task failed", "error", t.err)
		}
	}()
	return t, nil
}
