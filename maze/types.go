package maze

// MinDimension is the smallest row or column count New and Parse accept.
const MinDimension = 3

// Layout runes understood by Parse and produced by String.
const (
	RuneWall     = '#'
	RuneOpen     = '.'
	RuneStart    = 'S'
	RuneGoal     = 'G'
	RunePath     = '*'
	RuneFrontier = 'o'
)

// Cell is one grid position.
//
// Row and Col never change after construction. Wall is mutated only by
// generation (and by hand-built layouts). Frontier, Path, Visited and
// Parent are transient: a search writes them for observers, and Reset
// clears them before the next one.
type Cell struct {
	Row, Col int

	Wall bool

	Frontier bool  // discovered by the running search
	Path     bool  // part of the returned route
	Visited  bool  // claimed by the running search (or the carver)
	Parent   *Cell // discovering cell in the running search, nil for roots
}

// Maze is the grid container. Cells are stored row-major and owned
// exclusively by the Maze; a *Cell obtained from At stays valid for the
// lifetime of the Maze.
type Maze struct {
	Rows, Cols int

	cells []Cell
	start *Cell
	goal  *Cell
}
