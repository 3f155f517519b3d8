package carve_test

import (
	"testing"

	"github.com/katalvlaran/mazewalk/carve"
	"github.com/katalvlaran/mazewalk/maze"
)

// BenchmarkGenerate carves a 101×101 maze per iteration.
func BenchmarkGenerate(b *testing.B) {
	m, err := maze.New(101, 101)
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err = carve.Generate(m, carve.WithSeed(uint64(i))); err != nil {
			b.Fatal(err)
		}
	}
}
