// Package carve generates mazes in place with a randomized iterative
// backtracker over the odd-coordinate lattice of a maze.Maze.
//
// What:
//
//   - Every cell becomes a wall; carving starts at a random odd-aligned
//     interior cell, or (1,1) on grids too small to choose.
//   - The top of the stack looks two cells away in each cardinal direction
//     for interior walls not yet visited, picks one uniformly, opens the
//     midpoint and the chosen cell, and pushes it. No candidates: pop.
//   - rows*cols/60 extra interior cells are opened afterwards to create
//     loops, so generated mazes generally have more than one solution.
//   - Start is fixed at (1,1) with a doorway to the top border; the goal is
//     sampled from the bottom-right quadrant among open cells reachable from
//     start.
//
// Randomness:
//
//	The default source is seeded from the clock, so two calls produce
//	different mazes. WithSeed or WithRand make a run reproducible.
//
// Notifications:
//
//	One paced notification after every wall removal and a final unpaced
//	one after cleanup. Cancellation aborts at the next notification and
//	leaves the grid partially carved.
//
// Errors:
//
//   - ErrNilMaze                   if m is nil.
//   - ErrNoGoal                    if no open cell other than start can host the goal.
//   - traverse.ErrOptionViolation  for invalid options.
//   - context errors               if ctx is cancelled.
package carve
