// Package greedy implements greedy descent over a distance field with a
// local breadth-first rescue when descent is blocked.
//
// What
//
//   - A distance field holds, for every cell, its normalized Manhattan
//     distance to the goal: (|r-goal.r| + |c-goal.c|) / (rows+cols).
//   - Descend: from the current cell move to the unclaimed open neighbor
//     with the strictly lowest score, provided it is strictly lower than the
//     current score. Ties keep the first candidate in enumeration order.
//   - Rescue: when no neighbor improves, run an unrestricted BFS from the
//     stuck cell (own claimed set and predecessor table) until it dequeues
//     an unclaimed cell scoring strictly below the stuck cell. The rescue
//     chain is spliced into the global predecessor table and descent
//     resumes from the found cell.
//   - One global claimed set is shared by descent and every rescue, so a
//     cell claimed by either is never claimed again.
//
// Splice order
//
//	The chain is walked from the found cell back towards the stuck cell
//	(exclusive). Each cell not yet claimed takes its rescue predecessor and
//	is claimed; cells already claimed keep their earlier predecessor. The
//	walk order is fixed, so the resulting table is deterministic for a
//	given grid.
//
// Termination
//
//	The main loop is bounded by DefaultStepLimit (or traverse.WithStepLimit).
//	A rescue that exhausts its queue ends the search with ErrStuck.
//
// Errors
//
//   - traverse.ErrUnconfigured  if the maze has no start or goal.
//   - traverse.ErrWallEndpoint  if the start or goal is a wall.
//   - ErrStuck                  if a rescue finds no improving cell.
//   - ErrStepLimit              if the safety bound is reached.
//   - context errors            if ctx is cancelled.
//
// Both ErrStuck and ErrStepLimit match traverse.ErrNoRoute.
package greedy
