package carve_test

import (
	"fmt"

	"github.com/katalvlaran/mazewalk/carve"
	"github.com/katalvlaran/mazewalk/maze"
)

// ExampleGenerate carves a seeded maze. Generation is reproducible, so the
// same seed always yields the same grid.
func ExampleGenerate() {
	a, _ := maze.New(15, 21)
	b, _ := maze.New(15, 21)
	if err := carve.Generate(a, carve.WithSeed(2024)); err != nil {
		fmt.Println("error:", err)
		return
	}
	if err := carve.Generate(b, carve.WithSeed(2024)); err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println(a.Rows, a.Cols)
	fmt.Println("same layout:", a.String() == b.String())
	fmt.Println("start:", a.Start().Row, a.Start().Col)
	// Output:
	// 15 21
	// same layout: true
	// start: 1 1
}
