// Package solve is the single entry point for running any search strategy
// against a maze: search(strategy, maze, sink) and reset(maze).
package solve

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/katalvlaran/mazewalk/bfs"
	"github.com/katalvlaran/mazewalk/bug2"
	"github.com/katalvlaran/mazewalk/dfs"
	"github.com/katalvlaran/mazewalk/greedy"
	"github.com/katalvlaran/mazewalk/internal/ctxlog"
	"github.com/katalvlaran/mazewalk/maze"
	"github.com/katalvlaran/mazewalk/traverse"
)

// ErrUnknownStrategy is returned for a Strategy value or name that does not
// map to an implementation.
var ErrUnknownStrategy = errors.New("solve: unknown strategy")

// Strategy selects a search algorithm.
type Strategy int

const (
	BFS Strategy = iota
	DFS
	Greedy
	Bug2
)

// Strategies lists every implemented strategy in a stable order.
var Strategies = []Strategy{BFS, DFS, Greedy, Bug2}

var names = map[Strategy]string{
	BFS:    "bfs",
	DFS:    "dfs",
	Greedy: "greedy",
	Bug2:   "bug2",
}

func (s Strategy) String() string {
	if n, ok := names[s]; ok {
		return n
	}
	return fmt.Sprintf("Strategy(%d)", int(s))
}

// ParseStrategy maps a case-insensitive name ("bfs", "dfs", "greedy",
// "bug2") to a Strategy.
func ParseStrategy(name string) (Strategy, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	for s, sn := range names {
		if sn == n {
			return s, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
}

// Func is the common signature of every strategy implementation.
type Func func(m *maze.Maze, opts ...traverse.Option) (*traverse.Result, error)

// Lookup returns the implementation of s.
func Lookup(s Strategy) (Func, error) {
	switch s {
	case BFS:
		return bfs.Search, nil
	case DFS:
		return dfs.Search, nil
	case Greedy:
		return greedy.Search, nil
	case Bug2:
		return bug2.Search, nil
	}
	return nil, fmt.Errorf("%w: %d", ErrUnknownStrategy, int(s))
}

// Search runs strategy s on m and returns the route from start to goal.
// Expected failures (traverse.IsNoRoute) are returned as errors, as are
// cancellation and precondition violations.
func Search(s Strategy, m *maze.Maze, opts ...traverse.Option) (*traverse.Result, error) {
	fn, err := Lookup(s)
	if err != nil {
		return nil, err
	}
	o, err := traverse.Build(opts...)
	if err != nil {
		return nil, err
	}
	log := ctxlog.FromContext(o.Ctx)

	began := time.Now()
	res, err := fn(m, opts...)
	if err != nil {
		log.Debug("solve: search failed", "strategy", s.String(), "error", err, "no_route", traverse.IsNoRoute(err))
		return nil, err
	}
	log.Debug("solve: search finished",
		"strategy", s.String(),
		"path_len", len(res.Path),
		"explored", res.Explored,
		"rescues", res.Rescues,
		"elapsed", time.Since(began))
	return res, nil
}

// Reset clears all transient per-cell state of m.
func Reset(m *maze.Maze) {
	if m != nil {
		m.Reset()
	}
}
