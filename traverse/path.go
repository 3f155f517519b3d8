package traverse

import (
	"fmt"

	"github.com/katalvlaran/mazewalk/maze"
	"github.com/katalvlaran/mazewalk/visual"
)

// NoParent marks a predecessor slot with no predecessor.
const NoParent = -1

// NewPredecessors returns a predecessor table for m with every slot empty.
func NewPredecessors(m *maze.Maze) []int {
	pred := make([]int, m.Len())
	for i := range pred {
		pred[i] = NoParent
	}
	return pred
}

// Trace walks pred from goal back to start and returns the route ordered
// start→goal. Markers are not touched.
// Returns ErrNoPath if the chain breaks or loops before reaching start.
// Complexity: O(len(path)).
func Trace(m *maze.Maze, pred []int, start, goal *maze.Cell) ([]*maze.Cell, error) {
	path := make([]*maze.Cell, 0, 16)
	cur := m.Index(goal)
	stop := m.Index(start)
	for len(path) <= m.Len() {
		path = append(path, m.CellAt(cur))
		if cur == stop {
			// reverse to get start → goal
			for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
				path[i], path[j] = path[j], path[i]
			}
			return path, nil
		}
		if cur = pred[cur]; cur == NoParent {
			break
		}
	}
	return nil, fmt.Errorf("%w: broken predecessor chain at (%d,%d)", ErrNoPath, goal.Row, goal.Col)
}

// Reconstruct traces the route like Trace, then sets Path on each cell in
// goal→start order with a paced notification per cell.
func Reconstruct(m *maze.Maze, pred []int, start, goal *maze.Cell, p *visual.Pacer) ([]*maze.Cell, error) {
	path, err := Trace(m, pred, start, goal)
	if err != nil {
		return nil, err
	}
	for i := len(path) - 1; i >= 0; i-- {
		path[i].Path = true
		if err = p.Step(); err != nil {
			return nil, err
		}
	}
	return path, nil
}

// MarkPath sets Path on each cell in start→goal order with a paced
// notification per cell.
func MarkPath(path []*maze.Cell, p *visual.Pacer) error {
	for _, c := range path {
		c.Path = true
		if err := p.Step(); err != nil {
			return err
		}
	}
	return nil
}

// ValidatePath checks the round-trip properties of a returned route: it
// starts at the start cell, ends at the goal, never enters a wall, and
// every consecutive pair is orthogonally adjacent. Repeated cells are
// allowed; use IsSimple to reject them.
func ValidatePath(m *maze.Maze, path []*maze.Cell) error {
	if err := Validate(m); err != nil {
		return err
	}
	if len(path) == 0 {
		return fmt.Errorf("%w: empty", ErrInvalidPath)
	}
	if path[0] != m.Start() {
		return fmt.Errorf("%w: first cell (%d,%d) is not start", ErrInvalidPath, path[0].Row, path[0].Col)
	}
	if last := path[len(path)-1]; last != m.Goal() {
		return fmt.Errorf("%w: last cell (%d,%d) is not goal", ErrInvalidPath, last.Row, last.Col)
	}
	for i, c := range path {
		if m.At(c.Row, c.Col) != c {
			return fmt.Errorf("%w: cell %d does not belong to this maze", ErrInvalidPath, i)
		}
		if c.Wall {
			return fmt.Errorf("%w: cell %d (%d,%d) is a wall", ErrInvalidPath, i, c.Row, c.Col)
		}
		if i > 0 && !Adjacent(path[i-1], c) {
			return fmt.Errorf("%w: cells %d and %d are not adjacent", ErrInvalidPath, i-1, i)
		}
	}
	return nil
}

// IsSimple reports whether path visits no cell twice.
func IsSimple(path []*maze.Cell) bool {
	seen := make(map[*maze.Cell]struct{}, len(path))
	for _, c := range path {
		if _, dup := seen[c]; dup {
			return false
		}
		seen[c] = struct{}{}
	}
	return true
}
