// Package maze holds the grid model shared by the generator and every
// traversal strategy of github.com/katalvlaran/mazewalk.
//
// What:
//
//   - Maze is a rectangular, odd-sized grid of Cells owned by the maze.
//   - Each Cell is either a wall or open, plus observable markers
//     (Frontier, Path, Visited) and a Parent back-reference written by
//     the search that is currently running.
//   - Start and Goal are distinguished cells; after generation both are
//     open, distinct and strictly inside the border.
//
// Why:
//
//   - Carving works on a lattice of odd coordinates with walls at the
//     even midpoints, so both dimensions are forced odd.
//   - Sinks observe progress by reading markers; searches keep their own
//     bookkeeping and only publish into the markers.
//
// Lifecycle:
//
//	m, _ := maze.New(41, 41)   // all walls, placeholder start/goal
//	_ = carve.Generate(m)      // wall removal only, relocates start/goal
//	m.Reset()                  // clear markers before another strategy
//
// Concurrency:
//
//	Maze has no internal locking. Exactly one operation may mutate a
//	maze at a time; runner.Runner enforces that for background work.
//
// Errors:
//
//   - ErrTooSmall: a dimension below MinDimension.
//   - ErrEmptyLayout, ErrNonRectangular, ErrEvenDimensions, ErrEndpoints:
//     rejected Parse input.
//   - ErrOutOfBounds: SetStart/SetGoal outside the grid.
package maze
