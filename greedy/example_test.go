package greedy_test

import (
	"fmt"

	"github.com/katalvlaran/mazewalk/greedy"
	"github.com/katalvlaran/mazewalk/maze"
)

// ExampleSearch shows the descent walking into a dead end and the rescue
// carrying it round to the goal.
func ExampleSearch() {
	m, err := maze.Parse([]string{
		"#######",
		"#S....#",
		"#####.#",
		"#.....#",
		"#.#####",
		"#....G#",
		"#######",
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	res, err := greedy.Search(m)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("moves:", res.Edges(), "rescues:", res.Rescues)
	// Output:
	// moves: 16 rescues: 1
}
