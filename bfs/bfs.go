package bfs

import (
	"fmt"

	"github.com/katalvlaran/mazewalk/maze"
	"github.com/katalvlaran/mazewalk/traverse"
)

// Search runs breadth-first search from m.Start() to m.Goal().
// All transient markers are reset first.
func Search(m *maze.Maze, opts ...traverse.Option) (*traverse.Result, error) {
	o, err := traverse.Build(opts...)
	if err != nil {
		return nil, err
	}
	res, err := traverse.Expand(m, &traverse.Queue{}, o)
	if err != nil {
		return nil, fmt.Errorf("bfs: %w", err)
	}
	return res, nil
}
