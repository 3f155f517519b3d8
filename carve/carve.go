package carve

import (
	"fmt"
	"log/slog"

	"golang.org/x/exp/rand"

	"github.com/katalvlaran/mazewalk/internal/ctxlog"
	"github.com/katalvlaran/mazewalk/maze"
	"github.com/katalvlaran/mazewalk/traverse"
	"github.com/katalvlaran/mazewalk/visual"
)

// lattice lists the carving moves: two cells south, north, east, west.
var lattice = [4][2]int{{2, 0}, {-2, 0}, {0, 2}, {0, -2}}

// goalAttemptsPerCell scales the rejection-sampling budget for the goal.
const goalAttemptsPerCell = 64

// carver encapsulates mutable generation state.
type carver struct {
	m     *maze.Maze
	rng   *rand.Rand
	pacer *visual.Pacer
	log   *slog.Logger
	opens int
}

// Generate carves m in place. Dimensions and cell identities never change;
// only walls are removed, then start and goal are relocated.
// Returns ErrNilMaze for a nil maze and maze.ErrTooSmall for a grid below
// maze.MinDimension in either direction, the zero Maze included.
func Generate(m *maze.Maze, opts ...Option) error {
	if m == nil {
		return ErrNilMaze
	}
	if m.Rows < maze.MinDimension || m.Cols < maze.MinDimension {
		return fmt.Errorf("carve: %w: got %dx%d", maze.ErrTooSmall, m.Rows, m.Cols)
	}
	o, err := build(opts...)
	if err != nil {
		return err
	}

	g := &carver{
		m:     m,
		rng:   o.Rand,
		pacer: visual.NewPacer(o.Ctx, o.Sink, o.Delay),
		log:   ctxlog.FromContext(o.Ctx),
	}
	if o.seeded {
		g.log.Debug("carve: seeded generation", "seed", o.seed)
	}

	g.fill()
	if err = g.backtrack(); err != nil {
		return fmt.Errorf("carve: %w", err)
	}
	if err = g.openExtra(); err != nil {
		return fmt.Errorf("carve: %w", err)
	}
	g.clearVisited()
	if err = g.placeEndpoints(); err != nil {
		return err
	}
	if err = g.pacer.Touch(); err != nil {
		return fmt.Errorf("carve: %w", err)
	}

	g.log.Debug("carve: generated",
		"rows", m.Rows, "cols", m.Cols,
		"openings", g.opens,
		"goal_row", m.Goal().Row, "goal_col", m.Goal().Col)
	return nil
}

// fill turns every cell into a wall and clears transient state.
func (g *carver) fill() {
	for i := 0; i < g.m.Len(); i++ {
		g.m.CellAt(i).Wall = true
	}
	g.m.Reset()
}

// backtrack runs the iterative randomized depth-first carve.
func (g *carver) backtrack() error {
	rows, cols := g.m.Rows, g.m.Cols
	sr, sc := 1, 1
	if rows > 3 && cols > 3 {
		sr = 1 + 2*g.rng.Intn(max(1, (rows-2)/2))
		sc = 1 + 2*g.rng.Intn(max(1, (cols-2)/2))
	}

	first := g.m.At(sr, sc)
	first.Visited = true
	if err := g.open(first); err != nil {
		return err
	}

	stack := []*maze.Cell{first}
	candidates := make([]*maze.Cell, 0, len(lattice))
	for len(stack) > 0 {
		cur := stack[len(stack)-1]

		candidates = candidates[:0]
		for _, d := range lattice {
			r, c := cur.Row+d[0], cur.Col+d[1]
			if !g.m.Interior(r, c) {
				continue
			}
			if n := g.m.At(r, c); n.Wall && !n.Visited {
				candidates = append(candidates, n)
			}
		}
		if len(candidates) == 0 {
			stack = stack[:len(stack)-1]
			continue
		}

		next := candidates[g.rng.Intn(len(candidates))]
		next.Visited = true
		mid := g.m.At((cur.Row+next.Row)/2, (cur.Col+next.Col)/2)
		if err := g.open(mid); err != nil {
			return err
		}
		if err := g.open(next); err != nil {
			return err
		}
		stack = append(stack, next)
	}
	return nil
}

// openExtra forces rows*cols/ExtraOpeningDivisor random interior cells open.
func (g *carver) openExtra() error {
	rows, cols := g.m.Rows, g.m.Cols
	extra := rows * cols / ExtraOpeningDivisor
	for i := 0; i < extra; i++ {
		r := 1 + g.rng.Intn(max(1, rows-2))
		c := 1 + g.rng.Intn(max(1, cols-2))
		if err := g.open(g.m.At(r, c)); err != nil {
			return err
		}
	}
	return nil
}

func (g *carver) clearVisited() {
	for i := 0; i < g.m.Len(); i++ {
		g.m.CellAt(i).Visited = false
	}
}

// placeEndpoints fixes start at (1,1), opens the doorway above it and
// picks a goal in the bottom-right quadrant.
func (g *carver) placeEndpoints() error {
	start := g.m.At(1, 1)
	start.Wall = false
	if g.m.Rows > 2 {
		g.m.At(0, 1).Wall = false
	}
	if err := g.m.SetStart(1, 1); err != nil {
		return err
	}

	goal := g.pickGoal(start)
	if goal == nil {
		return fmt.Errorf("%w in %dx%d grid", ErrNoGoal, g.m.Rows, g.m.Cols)
	}
	return g.m.SetGoal(goal.Row, goal.Col)
}

// pickGoal samples the quadrant rows [rows/2, rows-2] × cols [cols/2, cols-2]
// until it hits an open cell reachable from start. A bounded number of
// attempts is followed by a deterministic scan of the quadrant, then of
// the whole interior, each from the bottom-right corner.
func (g *carver) pickGoal(start *maze.Cell) *maze.Cell {
	reach := traverse.Reachable(g.m, start)
	ok := func(c *maze.Cell) bool {
		return c != nil && c != start && !c.Wall && reach[g.m.Index(c)]
	}

	r0, c0 := g.m.Rows/2, g.m.Cols/2
	hr, hc := g.m.Rows-1-r0, g.m.Cols-1-c0
	for attempt := 0; attempt < goalAttemptsPerCell*hr*hc; attempt++ {
		if c := g.m.At(r0+g.rng.Intn(hr), c0+g.rng.Intn(hc)); ok(c) {
			return c
		}
	}

	if c := g.scan(r0, c0, ok); c != nil {
		return c
	}
	return g.scan(1, 1, ok)
}

// scan walks the interior rectangle [r0, rows-2]×[c0, cols-2] from its
// bottom-right corner and returns the first cell accepted by ok.
func (g *carver) scan(r0, c0 int, ok func(*maze.Cell) bool) *maze.Cell {
	for r := g.m.Rows - 2; r >= r0; r-- {
		for c := g.m.Cols - 2; c >= c0; c-- {
			if cell := g.m.At(r, c); ok(cell) {
				return cell
			}
		}
	}
	return nil
}

// open carves c and emits a paced notification.
func (g *carver) open(c *maze.Cell) error {
	c.Wall = false
	g.opens++
	return g.pacer.Step()
}
