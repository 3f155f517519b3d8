package maze_test

import (
	"testing"

	"github.com/katalvlaran/mazewalk/maze"
)

// BenchmarkReset measures clearing markers on a 201×201 grid.
func BenchmarkReset(b *testing.B) {
	m, err := maze.New(201, 201)
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		m.Reset()
	}
}

// BenchmarkString measures rendering a 101×101 grid.
func BenchmarkString(b *testing.B) {
	m, err := maze.New(101, 101)
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = m.String()
	}
}
