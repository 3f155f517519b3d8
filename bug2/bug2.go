package bug2

import (
	"fmt"

	"github.com/katalvlaran/mazewalk/maze"
	"github.com/katalvlaran/mazewalk/traverse"
	"github.com/katalvlaran/mazewalk/visual"
)

// state identifies a walker configuration: a cell plus the heading being
// followed, or greedyMode.
type state struct {
	idx     int
	heading Heading
}

// walker encapsulates mutable Bug2 state.
type walker struct {
	m       *maze.Maze
	pacer   *visual.Pacer
	goal    *maze.Cell
	taken   []*maze.Cell
	stepped []bool
	seen    map[state]struct{}
	res     *traverse.Result
}

// Search runs the Bug2 strategy from m.Start() to m.Goal().
// All transient markers are reset first.
func Search(m *maze.Maze, opts ...traverse.Option) (*traverse.Result, error) {
	o, err := traverse.Build(opts...)
	if err != nil {
		return nil, err
	}
	if err = traverse.Validate(m); err != nil {
		return nil, fmt.Errorf("bug2: %w", err)
	}
	m.Reset()

	w := &walker{
		m:       m,
		pacer:   o.Pacer(),
		goal:    m.Goal(),
		stepped: make([]bool, m.Len()),
		seen:    make(map[state]struct{}),
		res:     &traverse.Result{},
	}
	return w.run()
}

func (w *walker) run() (*traverse.Result, error) {
	start := w.m.Start()
	cur := start
	w.stepped[w.m.Index(cur)] = true
	w.res.Explored++
	cur.Frontier = true
	if err := w.pacer.Step(); err != nil {
		return nil, err
	}

	var err error
	for cur != w.goal {
		w.res.Steps++
		if !w.enter(cur, greedyMode) {
			return nil, fmt.Errorf("%w: revisited (%d,%d)", ErrUnsolvable, cur.Row, cur.Col)
		}
		if next := w.greedyStep(cur); next != nil && !next.Wall {
			if err = w.move(next); err != nil {
				return nil, err
			}
			cur = next
			continue
		}
		if cur, err = w.follow(cur); err != nil {
			return nil, err
		}
	}

	path := make([]*maze.Cell, 0, len(w.taken)+1)
	path = append(path, start)
	path = append(path, w.taken...)
	if err = traverse.MarkPath(path, w.pacer); err != nil {
		return nil, err
	}
	w.res.Path = path
	return w.res, nil
}

// follow hugs the obstacle on the right starting at origin. It returns the
// cell where the greedy step reopened, or the goal.
func (w *walker) follow(origin *maze.Cell) (*maze.Cell, error) {
	h := towardGoal(origin, w.goal).Clockwise()
	cur := origin
	moved := false
	for {
		if g := w.greedyStep(cur); g != nil && !g.Wall {
			return cur, nil
		}
		if !w.enter(cur, h) {
			return nil, fmt.Errorf("%w: circling at (%d,%d) heading %s", ErrUnsolvable, cur.Row, cur.Col, h)
		}

		dr, dc := h.Offset()
		if ahead := w.m.At(cur.Row+dr, cur.Col+dc); ahead != nil && !ahead.Wall {
			if err := w.move(ahead); err != nil {
				return nil, err
			}
			cur, moved = ahead, true
			if cur == w.goal {
				return cur, nil
			}
			h = h.Clockwise()
		} else {
			h = h.CounterClockwise()
		}

		if moved && cur == origin {
			return nil, fmt.Errorf("%w: returned to (%d,%d)", ErrUnsolvable, origin.Row, origin.Col)
		}
	}
}

// greedyStep returns the orthogonal neighbor straight toward the goal, or
// nil when the goal is diagonal, reached, or the step leaves the grid.
func (w *walker) greedyStep(c *maze.Cell) *maze.Cell {
	dr, dc := sign(w.goal.Row-c.Row), sign(w.goal.Col-c.Col)
	if (dr == 0) == (dc == 0) {
		return nil
	}
	return w.m.At(c.Row+dr, c.Col+dc)
}

// move steps onto c and records it.
func (w *walker) move(c *maze.Cell) error {
	w.taken = append(w.taken, c)
	if i := w.m.Index(c); !w.stepped[i] {
		w.stepped[i] = true
		w.res.Explored++
	}
	c.Frontier = true
	c.Visited = true
	return w.pacer.Step()
}

// enter records a state and reports whether it is new.
func (w *walker) enter(c *maze.Cell, h Heading) bool {
	s := state{idx: w.m.Index(c), heading: h}
	if _, dup := w.seen[s]; dup {
		return false
	}
	w.seen[s] = struct{}{}
	return true
}

// towardGoal returns the cardinal heading toward g along the axis with the
// larger distance; rows win ties.
func towardGoal(c, g *maze.Cell) Heading {
	dr, dc := g.Row-c.Row, g.Col-c.Col
	if abs(dr) >= abs(dc) {
		if dr >= 0 {
			return Down
		}
		return Up
	}
	if dc > 0 {
		return Right
	}
	return Left
}

func sign(x int) int {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	}
	return 0
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
