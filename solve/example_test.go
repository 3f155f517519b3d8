package solve_test

import (
	"fmt"

	"github.com/katalvlaran/mazewalk/maze"
	"github.com/katalvlaran/mazewalk/solve"
)

// ExampleSearch dispatches by strategy name. Bug2 gives up here: its
// direct step keeps leading back into the dead end.
func ExampleSearch() {
	m, err := maze.Parse([]string{
		"#######",
		"#S....#",
		"#.###.#",
		"#...#G#",
		"#######",
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	for _, name := range []string{"bfs", "dfs", "greedy", "bug2"} {
		s, err := solve.ParseStrategy(name)
		if err != nil {
			fmt.Println("error:", err)
			return
		}
		res, err := solve.Search(s, m)
		if err != nil {
			fmt.Println(s, "failed:", err)
			continue
		}
		fmt.Println(s, "moves:", res.Edges())
	}
	// Output:
	// bfs moves: 6
	// dfs moves: 6
	// greedy moves: 6
	// bug2 failed: bug2: wall following looped: no route to goal: revisited (3,2)
}
