package dfs

import (
	"fmt"

	"github.com/katalvlaran/mazewalk/maze"
	"github.com/katalvlaran/mazewalk/traverse"
)

// Search runs depth-first search from m.Start() to m.Goal().
// The last discovered cell is expanded first.
func Search(m *maze.Maze, opts ...traverse.Option) (*traverse.Result, error) {
	o, err := traverse.Build(opts...)
	if err != nil {
		return nil, err
	}
	res, err := traverse.Expand(m, &traverse.Stack{}, o)
	if err != nil {
		return nil, fmt.Errorf("dfs: %w", err)
	}
	return res, nil
}
