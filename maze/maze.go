package maze

import (
	"fmt"
	"strings"
)

// New builds a Maze with the requested dimensions, rounding even values up
// to the next odd one. Every cell starts as a wall; placeholder endpoints
// sit near opposite corners at (1,1) and (rows-2, cols-2) until generation
// relocates them.
// Returns ErrTooSmall if rows or cols is below MinDimension.
// Complexity: O(rows×cols) time and memory.
func New(rows, cols int) (*Maze, error) {
	if rows < MinDimension || cols < MinDimension {
		return nil, fmt.Errorf("%w: got %dx%d", ErrTooSmall, rows, cols)
	}
	if rows%2 == 0 {
		rows++
	}
	if cols%2 == 0 {
		cols++
	}

	m := alloc(rows, cols)
	for i := range m.cells {
		m.cells[i].Wall = true
	}
	m.start = m.At(1, 1)
	m.goal = m.At(rows-2, cols-2)

	return m, nil
}

// Parse builds a Maze from a hand-drawn layout, one string per row:
// '#' wall, '.' open, 'S' start and 'G' goal (both open). Any other rune
// is treated as open. Dimensions are taken verbatim, must be odd and at
// least MinDimension.
func Parse(lines []string) (*Maze, error) {
	if len(lines) == 0 || len(lines[0]) == 0 {
		return nil, ErrEmptyLayout
	}
	rows, cols := len(lines), len([]rune(lines[0]))
	for _, line := range lines {
		if len([]rune(line)) != cols {
			return nil, ErrNonRectangular
		}
	}
	if rows < MinDimension || cols < MinDimension {
		return nil, fmt.Errorf("%w: got %dx%d", ErrTooSmall, rows, cols)
	}
	if rows%2 == 0 || cols%2 == 0 {
		return nil, fmt.Errorf("%w: got %dx%d", ErrEvenDimensions, rows, cols)
	}

	m := alloc(rows, cols)
	var starts, goals int
	for r, line := range lines {
		for c, ch := range []rune(line) {
			cell := m.At(r, c)
			switch ch {
			case RuneWall:
				cell.Wall = true
			case RuneStart:
				m.start = cell
				starts++
			case RuneGoal:
				m.goal = cell
				goals++
			}
		}
	}
	if starts != 1 || goals != 1 {
		return nil, fmt.Errorf("%w: found %d start(s), %d goal(s)", ErrEndpoints, starts, goals)
	}

	return m, nil
}

// alloc creates the cell storage with coordinates filled in.
func alloc(rows, cols int) *Maze {
	m := &Maze{Rows: rows, Cols: cols, cells: make([]Cell, rows*cols)}
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			m.cells[r*cols+c] = Cell{Row: r, Col: c}
		}
	}
	return m
}

// InBounds reports whether (r,c) lies within the grid.
func (m *Maze) InBounds(r, c int) bool {
	return r >= 0 && r < m.Rows && c >= 0 && c < m.Cols
}

// Interior reports whether (r,c) lies strictly inside the border.
func (m *Maze) Interior(r, c int) bool {
	return r > 0 && r < m.Rows-1 && c > 0 && c < m.Cols-1
}

// At returns the cell at (r,c), or nil when the coordinate is out of bounds.
func (m *Maze) At(r, c int) *Cell {
	if !m.InBounds(r, c) {
		return nil
	}
	return &m.cells[r*m.Cols+c]
}

// Len returns the number of cells (Rows×Cols).
func (m *Maze) Len() int { return len(m.cells) }

// Index maps a cell to its row-major index: Row*Cols + Col.
func (m *Maze) Index(c *Cell) int { return c.Row*m.Cols + c.Col }

// CellAt returns the cell with row-major index idx.
func (m *Maze) CellAt(idx int) *Cell { return &m.cells[idx] }

// Start returns the start cell, nil on an unconfigured maze.
func (m *Maze) Start() *Cell { return m.start }

// Goal returns the goal cell, nil on an unconfigured maze.
func (m *Maze) Goal() *Cell { return m.goal }

// SetStart moves the start reference to (r,c).
func (m *Maze) SetStart(r, c int) error {
	cell := m.At(r, c)
	if cell == nil {
		return fmt.Errorf("%w: start (%d,%d)", ErrOutOfBounds, r, c)
	}
	m.start = cell
	return nil
}

// SetGoal moves the goal reference to (r,c).
func (m *Maze) SetGoal(r, c int) error {
	cell := m.At(r, c)
	if cell == nil {
		return fmt.Errorf("%w: goal (%d,%d)", ErrOutOfBounds, r, c)
	}
	m.goal = cell
	return nil
}

// Reset clears Frontier, Path, Visited and Parent on every cell.
// Walls and endpoints are untouched. Calling it twice is harmless.
func (m *Maze) Reset() {
	for i := range m.cells {
		c := &m.cells[i]
		c.Frontier = false
		c.Path = false
		c.Visited = false
		c.Parent = nil
	}
}

// Clone returns a deep copy of the grid, endpoints included. Parent links
// of the copy point into the copy.
func (m *Maze) Clone() *Maze {
	cp := &Maze{Rows: m.Rows, Cols: m.Cols, cells: make([]Cell, len(m.cells))}
	copy(cp.cells, m.cells)
	for i := range cp.cells {
		if p := cp.cells[i].Parent; p != nil {
			cp.cells[i].Parent = &cp.cells[m.Index(p)]
		}
	}
	if m.start != nil {
		cp.start = &cp.cells[m.Index(m.start)]
	}
	if m.goal != nil {
		cp.goal = &cp.cells[m.Index(m.goal)]
	}
	return cp
}

// String renders the grid one line per row, using the Rune* constants.
// Endpoints win over markers, Path wins over Frontier.
func (m *Maze) String() string {
	var b strings.Builder
	b.Grow(m.Rows * (m.Cols + 1))
	for r := 0; r < m.Rows; r++ {
		for c := 0; c < m.Cols; c++ {
			b.WriteRune(m.glyph(m.At(r, c)))
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func (m *Maze) glyph(c *Cell) rune {
	switch {
	case c == m.start:
		return RuneStart
	case c == m.goal:
		return RuneGoal
	case c.Wall:
		return RuneWall
	case c.Path:
		return RunePath
	case c.Frontier:
		return RuneFrontier
	default:
		return RuneOpen
	}
}
