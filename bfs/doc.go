// Package bfs provides breadth-first search over a maze.Maze, returning a
// route with the minimum number of moves from start to goal.
//
// What
//
//   - Expands cells in non-decreasing distance from the start (strict FIFO).
//   - A cell is claimed (Visited + Frontier) when it is enqueued, so it is
//     never enqueued twice.
//   - Neighbors are enumerated south, north, east, west.
//   - On success the route is marked goal→start and returned start→goal.
//
// Why
//
//   - The reference strategy: optimal on unweighted grids, and the yardstick
//     for the connectivity checks in tests.
//
// Complexity (N = rows×cols)
//
//   - Time:   O(N)
//   - Memory: O(N) for the queue, claimed set and predecessor table.
//
// Usage
//
//	res, err := bfs.Search(m,
//	    traverse.WithContext(ctx),
//	    traverse.WithSink(sink),
//	    traverse.WithDelay(10*time.Millisecond),
//	)
//
// Errors
//
//   - traverse.ErrUnconfigured     if the maze has no start or goal.
//   - traverse.ErrWallEndpoint     if the start or goal is a wall.
//   - traverse.ErrNoPath           if the queue empties first.
//   - traverse.ErrOptionViolation  for invalid options.
//   - context errors               if ctx is cancelled.
package bfs
