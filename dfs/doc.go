// Package dfs implements depth-first search over a maze.Maze.
//
// It shares the structural contract of package bfs (same neighbor order,
// claim-on-discovery, predecessor table and reconstruction) but keeps the
// frontier on a stack, so the route it returns is a valid route, not
// necessarily a shortest one.
//
// Complexity:
//
//   - Time:   O(rows×cols)
//   - Memory: O(rows×cols) for the stack and bookkeeping.
//
// Errors:
//
//   - traverse.ErrUnconfigured     if the maze has no start or goal.
//   - traverse.ErrWallEndpoint     if the start or goal is a wall.
//   - traverse.ErrNoPath           if the stack empties first.
//   - context.Canceled             if ctx is done.
package dfs
