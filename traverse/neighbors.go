package traverse

import "github.com/katalvlaran/mazewalk/maze"

// Offsets lists the orthogonal moves in enumeration order: south, north,
// east, west. Every strategy enumerates neighbors in this order, so ties
// resolve the same way everywhere.
var Offsets = [4][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}

// Neighbors returns the in-bounds orthogonal neighbors of c in Offsets
// order, walls included. dst is reused when it has capacity.
// Complexity: O(1).
func Neighbors(dst []*maze.Cell, m *maze.Maze, c *maze.Cell) []*maze.Cell {
	dst = dst[:0]
	for _, d := range Offsets {
		if n := m.At(c.Row+d[0], c.Col+d[1]); n != nil {
			dst = append(dst, n)
		}
	}
	return dst
}

// OpenNeighbors is Neighbors without walls.
func OpenNeighbors(dst []*maze.Cell, m *maze.Maze, c *maze.Cell) []*maze.Cell {
	dst = dst[:0]
	for _, d := range Offsets {
		if n := m.At(c.Row+d[0], c.Col+d[1]); n != nil && !n.Wall {
			dst = append(dst, n)
		}
	}
	return dst
}

// Adjacent reports whether a and b are orthogonal neighbors.
func Adjacent(a, b *maze.Cell) bool {
	dr, dc := a.Row-b.Row, a.Col-b.Col
	return dr*dr+dc*dc == 1
}

// Reachable flood-fills open cells from `from` without touching markers.
// The returned slice is indexed by maze.Index. A wall or nil origin yields
// an all-false slice.
// Complexity: O(rows×cols) time and memory.
func Reachable(m *maze.Maze, from *maze.Cell) []bool {
	seen := make([]bool, m.Len())
	if from == nil || from.Wall {
		return seen
	}
	queue := []int{m.Index(from)}
	seen[queue[0]] = true
	var buf []*maze.Cell
	for qi := 0; qi < len(queue); qi++ {
		buf = OpenNeighbors(buf, m, m.CellAt(queue[qi]))
		for _, n := range buf {
			i := m.Index(n)
			if !seen[i] {
				seen[i] = true
				queue = append(queue, i)
			}
		}
	}
	return seen
}
