package maze

import "errors"

var (
	// ErrTooSmall indicates a requested dimension below MinDimension.
	ErrTooSmall = errors.New("maze: dimensions must be at least 3x3")
	// ErrEmptyLayout indicates Parse received no rows or an empty row.
	ErrEmptyLayout = errors.New("maze: layout must have at least one row and one column")
	// ErrNonRectangular indicates layout rows of differing lengths.
	ErrNonRectangular = errors.New("maze: all layout rows must have the same length")
	// ErrEvenDimensions indicates a layout whose row or column count is even.
	ErrEvenDimensions = errors.New("maze: layout dimensions must be odd")
	// ErrEndpoints indicates a layout without exactly one start and one goal.
	ErrEndpoints = errors.New("maze: layout needs exactly one 'S' and one 'G'")
	// ErrOutOfBounds indicates a coordinate outside the grid.
	ErrOutOfBounds = errors.New("maze: coordinate out of bounds")
)
