package greedy

import (
	"fmt"
	"log/slog"

	"github.com/katalvlaran/mazewalk/internal/ctxlog"
	"github.com/katalvlaran/mazewalk/maze"
	"github.com/katalvlaran/mazewalk/traverse"
	"github.com/katalvlaran/mazewalk/visual"
)

// DefaultStepLimit bounds the main loop when no explicit limit is given.
const DefaultStepLimit = 100000

var (
	// ErrStuck is returned when a rescue search exhausts its frontier.
	ErrStuck = fmt.Errorf("greedy: rescue found no improving cell: %w", traverse.ErrNoRoute)

	// ErrStepLimit is returned when the safety bound is reached.
	ErrStepLimit = fmt.Errorf("greedy: step limit reached: %w", traverse.ErrNoRoute)
)

// DistanceField returns the normalized Manhattan distance of every cell to
// the goal, indexed [row][col]. Returns nil when the maze or its goal is nil.
// Complexity: O(rows×cols).
func DistanceField(m *maze.Maze) [][]float64 {
	if m == nil || m.Goal() == nil {
		return nil
	}
	g := m.Goal()
	denom := float64(m.Rows + m.Cols)
	field := make([][]float64, m.Rows)
	for r := range field {
		field[r] = make([]float64, m.Cols)
		for c := range field[r] {
			field[r][c] = float64(abs(r-g.Row)+abs(c-g.Col)) / denom
		}
	}
	return field
}

// walker encapsulates the state shared by descent and rescues.
type walker struct {
	m       *maze.Maze
	pacer   *visual.Pacer
	log     *slog.Logger
	field   [][]float64
	claimed []bool
	pred    []int
	buf     []*maze.Cell
	res     *traverse.Result
}

// Search runs greedy descent with rescue from m.Start() to m.Goal().
// All transient markers are reset first; the distance field is offered to
// the sink before the first step.
func Search(m *maze.Maze, opts ...traverse.Option) (*traverse.Result, error) {
	o, err := traverse.Build(opts...)
	if err != nil {
		return nil, err
	}
	if err = traverse.Validate(m); err != nil {
		return nil, fmt.Errorf("greedy: %w", err)
	}
	limit := o.StepLimit
	if limit == 0 {
		limit = DefaultStepLimit
	}
	m.Reset()

	w := &walker{
		m:       m,
		pacer:   o.Pacer(),
		log:     ctxlog.FromContext(o.Ctx),
		field:   DistanceField(m),
		claimed: make([]bool, m.Len()),
		pred:    traverse.NewPredecessors(m),
		res:     &traverse.Result{},
	}
	w.pacer.Heatmap(w.field)

	return w.run(limit)
}

func (w *walker) run(limit int) (*traverse.Result, error) {
	start, goal := w.m.Start(), w.m.Goal()
	cur := start
	w.claim(cur)
	cur.Frontier = true
	if err := w.pacer.Step(); err != nil {
		return nil, err
	}

	for w.res.Steps < limit {
		w.res.Steps++

		cur.Visited = true
		if err := w.pacer.Step(); err != nil {
			return nil, err
		}
		if cur == goal {
			path, err := traverse.Trace(w.m, w.pred, start, goal)
			if err != nil {
				return nil, fmt.Errorf("greedy: %w", err)
			}
			if err = traverse.MarkPath(path, w.pacer); err != nil {
				return nil, err
			}
			w.res.Path = path
			return w.res, nil
		}

		if next := w.descend(cur); next != nil {
			w.link(next, cur)
			w.claim(next)
			next.Frontier = true
			if err := w.pacer.Step(); err != nil {
				return nil, err
			}
			cur = next
			continue
		}

		w.res.Rescues++
		next, err := w.rescue(cur)
		if err != nil {
			return nil, err
		}
		if next == nil {
			w.log.Debug("greedy: stuck", "row", cur.Row, "col", cur.Col, "steps", w.res.Steps)
			return nil, fmt.Errorf("%w at (%d,%d)", ErrStuck, cur.Row, cur.Col)
		}
		w.log.Debug("greedy: rescued",
			"from_row", cur.Row, "from_col", cur.Col,
			"to_row", next.Row, "to_col", next.Col,
			"rescues", w.res.Rescues)
		cur = next
	}
	return nil, fmt.Errorf("%w (%d)", ErrStepLimit, limit)
}

// descend returns the unclaimed open neighbor with the strictly lowest
// score below cur's own, or nil.
func (w *walker) descend(cur *maze.Cell) *maze.Cell {
	var best *maze.Cell
	bestScore := w.score(cur)
	w.buf = traverse.OpenNeighbors(w.buf, w.m, cur)
	for _, n := range w.buf {
		if w.claimed[w.m.Index(n)] {
			continue
		}
		if s := w.score(n); s < bestScore {
			best, bestScore = n, s
		}
	}
	return best
}

// rescue explores breadth-first from stuck, ignoring the global claimed
// set for expansion, until it dequeues an unclaimed cell scoring strictly
// below stuck. The local chain is then spliced into the global table.
// Returns nil, nil when the rescue queue empties.
func (w *walker) rescue(stuck *maze.Cell) (*maze.Cell, error) {
	stuckIdx := w.m.Index(stuck)
	stuckScore := w.score(stuck)
	local := map[int]int{stuckIdx: traverse.NoParent}
	queue := []int{stuckIdx}

	var buf []*maze.Cell
	for qi := 0; qi < len(queue); qi++ {
		idx := queue[qi]
		c := w.m.CellAt(idx)
		if c != stuck {
			c.Frontier = true
			if err := w.pacer.Step(); err != nil {
				return nil, err
			}
		}

		if w.score(c) < stuckScore && !w.claimed[idx] {
			w.splice(local, idx, stuckIdx)
			return c, nil
		}

		buf = traverse.OpenNeighbors(buf, w.m, c)
		for _, n := range buf {
			ni := w.m.Index(n)
			if _, seen := local[ni]; seen {
				continue
			}
			local[ni] = idx
			queue = append(queue, ni)
			n.Frontier = true
			if err := w.pacer.Step(); err != nil {
				return nil, err
			}
		}
	}
	return nil, nil
}

// splice copies the rescue chain found→stuck (stuck excluded) into the
// global predecessor table, skipping cells that are already claimed.
func (w *walker) splice(local map[int]int, found, stuck int) {
	for t := found; t != stuck && t != traverse.NoParent; t = local[t] {
		if w.claimed[t] {
			continue
		}
		p := local[t]
		w.link(w.m.CellAt(t), w.m.CellAt(p))
		w.claim(w.m.CellAt(t))
	}
}

func (w *walker) claim(c *maze.Cell) {
	w.claimed[w.m.Index(c)] = true
	w.res.Explored++
}

func (w *walker) link(c, parent *maze.Cell) {
	w.pred[w.m.Index(c)] = w.m.Index(parent)
	c.Parent = parent
}

func (w *walker) score(c *maze.Cell) float64 {
	return w.field[c.Row][c.Col]
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
