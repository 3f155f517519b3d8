package maze_test

import (
	"fmt"

	"github.com/katalvlaran/mazewalk/maze"
)

// ExampleParse draws a layout, marks a few cells and renders it back.
func ExampleParse() {
	m, err := maze.Parse([]string{
		"#####",
		"#S..#",
		"###.#",
		"#G..#",
		"#####",
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	m.At(1, 2).Path = true
	m.At(1, 3).Frontier = true

	fmt.Print(m)
	fmt.Println(m.Rows, m.Cols)
	// Output:
	// #####
	// #S*o#
	// ###.#
	// #G..#
	// #####
	// 5 5
}
