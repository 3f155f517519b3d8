// Package bug2 implements a Bug2-family search that alternates between
// stepping straight at the goal and following obstacle boundaries.
//
// Greedy phase: the candidate step is sign(goal-cur) per axis. It is taken
// only when it names a single orthogonal neighbor (the current cell shares
// a row or a column with the goal) that is in bounds and open.
//
// Blocked phase: pick the cardinal direction toward the goal along the
// dominant axis (row movement wins ties), turn it once clockwise and follow
// the wall with the right-hand rule:
//
//  1. If the greedy step has opened up, resume the greedy phase here.
//  2. If the cell ahead is open, move into it and turn clockwise.
//  3. Otherwise turn counter-clockwise in place.
//
// The search is declared unsolvable when wall-following walks back into
// the cell where it began, or when the walker repeats a (cell, heading)
// state, which means it is circling without ever reaching the goal.
//
// The returned route is start followed by every cell stepped on, so it may
// revisit cells. Path markers are set once, after the goal is reached.
//
// Errors:
//
//   - traverse.ErrUnconfigured  if the maze has no start or goal.
//   - traverse.ErrWallEndpoint  if the start or goal is a wall.
//   - ErrUnsolvable             if the walker loops (matches traverse.ErrNoRoute).
//   - context errors            if ctx is cancelled.
package bug2
