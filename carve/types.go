package carve

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/exp/rand"

	"github.com/katalvlaran/mazewalk/traverse"
	"github.com/katalvlaran/mazewalk/visual"
)

// Sentinel errors for generation.
var (
	// ErrNilMaze is returned when Generate receives a nil maze.
	ErrNilMaze = errors.New("carve: maze is nil")

	// ErrNoGoal is returned when the grid has no open cell, other than the
	// start, that is reachable from it.
	ErrNoGoal = errors.New("carve: no cell available for the goal")
)

// ExtraOpeningDivisor sets the number of random openings added after
// carving: rows*cols/ExtraOpeningDivisor.
const ExtraOpeningDivisor = 60

// Option configures Generate via functional arguments.
type Option func(*Options)

// Options holds the settings of one Generate call.
type Options struct {
	// Ctx allows cancellation at every notification point.
	Ctx context.Context

	// Sink receives progress notifications. Defaults to visual.Nop.
	Sink visual.Sink

	// Delay is the pause after each wall removal.
	Delay time.Duration

	// Rand is the random source. Nil means a clock-seeded source.
	Rand *rand.Rand

	seed   uint64
	seeded bool
	err    error
}

// DefaultOptions returns Options with a background context, the no-op
// sink, no delay and no fixed random source.
func DefaultOptions() Options {
	return Options{
		Ctx:  context.Background(),
		Sink: visual.Nop,
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

// WithDelay sets the pause after each wall removal; negative is invalid.
func WithDelay(d time.Duration) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: Delay cannot be negative (%s)", traverse.ErrOptionViolation, d)
			return
		}
		o.Delay = d
	}
}

// WithSeed makes generation reproducible: the same seed and dimensions
// always carve the same maze.
func WithSeed(seed uint64) Option {
	return func(o *Options) {
		o.Rand = rand.New(rand.NewSource(seed))
		o.seed, o.seeded = seed, true
	}
}

// WithRand injects a caller-owned random source. The source is not safe
// for concurrent use; do not share it with another running operation.
func WithRand(r *rand.Rand) Option {
	return func(o *Options) {
		if r != nil {
			o.Rand = r
			o.seeded = false
		}
	}
}

func build(opts ...Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return o, o.err
	}
	if o.Rand == nil {
		o.Rand = rand.New(rand.NewSource(uint64(time.Now().UnixNano())))
	}
	return o, nil
}
