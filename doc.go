// Package mazewalk carves random grid mazes and solves them with a family of
// traversal strategies, step by step, so that an observer can watch each
// wall come down and each cell get claimed.
//
// 🚀 What is mazewalk?
//
//	A small library around one mutable grid:
//		• maze/     - cells, walls, endpoints and transient markers
//		• carve/    - randomized depth-first carving, seedable
//		• bfs/, dfs/ - frontier searches with a predecessor table
//		• greedy/   - distance-field descent with breadth-first rescue
//		• bug2/     - direct stepping plus right-hand wall following
//		• solve/    - one entry point for every strategy
//		• runner/   - background tasks with cancellation
//
// Support packages:
//
//	traverse/ - options, result type, error taxonomy, neighbor and path helpers
//	visual/   - the notification sink and the pacing that drives it
//	config/   - HCL file, dotenv and MAZEWALK_* environment settings
//	cmd/mazewalk - terminal front end
//
// Quick ASCII example (S start, G goal, * route):
//
//	#######
//	#S**#.#
//	#.#*#.#
//	#.#***#
//	#...#G#
//	#######
//
// Only one operation may mutate a maze at a time; runner.Runner enforces
// that for background work.
package mazewalk
