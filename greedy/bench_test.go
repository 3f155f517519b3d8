package greedy_test

import (
	"testing"

	"github.com/katalvlaran/mazewalk/carve"
	"github.com/katalvlaran/mazewalk/greedy"
	"github.com/katalvlaran/mazewalk/maze"
)

// BenchmarkSearch runs greedy descent on a carved 101×101 maze.
func BenchmarkSearch(b *testing.B) {
	m, err := maze.New(101, 101)
	if err != nil {
		b.Fatal(err)
	}
	if err = carve.Generate(m, carve.WithSeed(1)); err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err = greedy.Search(m); err != nil {
			b.Fatal(err)
		}
	}
}
