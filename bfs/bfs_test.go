package bfs_test

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mazewalk/bfs"
	"github.com/katalvlaran/mazewalk/maze"
	"github.com/katalvlaran/mazewalk/traverse"
	"github.com/katalvlaran/mazewalk/visual"
)

// twoRoutes has a 7-move route down the left column and longer detours
// through the middle row and the right column.
var twoRoutes = []string{
	"#######",
	"#S....#",
	"#.###.#",
	"#.....#",
	"#.###.#",
	"#...G.#",
	"#######",
}

func parse(t *testing.T, lines []string) *maze.Maze {
	t.Helper()
	m, err := maze.Parse(lines)
	require.NoError(t, err)
	return m
}

// TestSearch_Shortest verifies BFS returns the unique fewest-move route.
func TestSearch_Shortest(t *testing.T) {
	m := parse(t, twoRoutes)
	res, err := bfs.Search(m)
	require.NoError(t, err)
	require.NoError(t, traverse.ValidatePath(m, res.Path))

	want := [][2]int{{1, 1}, {2, 1}, {3, 1}, {4, 1}, {5, 1}, {5, 2}, {5, 3}, {5, 4}}
	if diff := cmp.Diff(want, res.Coords()); diff != "" {
		t.Fatalf("path mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, 7, res.Edges())
	assert.True(t, traverse.IsSimple(res.Path))
	assert.LessOrEqual(t, res.Explored, 22)
}

func TestSearch_NoPath(t *testing.T) {
	m := parse(t, []string{
		"#####",
		"#S..#",
		"#####",
		"#..G#",
		"#####",
	})
	res, err := bfs.Search(m)
	assert.Nil(t, res)
	assert.ErrorIs(t, err, traverse.ErrNoPath)
	assert.True(t, traverse.IsNoRoute(err))
}

func TestSearch_Unconfigured(t *testing.T) {
	_, err := bfs.Search(new(maze.Maze))
	assert.ErrorIs(t, err, traverse.ErrUnconfigured)
	assert.False(t, traverse.IsNoRoute(err))

	_, err = bfs.Search(nil)
	assert.ErrorIs(t, err, traverse.ErrUnconfigured)
}

// TestSearch_WallEndpoint checks an endpoint placed on a wall is refused
// before any cell is claimed.
func TestSearch_WallEndpoint(t *testing.T) {
	m := parse(t, twoRoutes)
	require.NoError(t, m.SetStart(2, 2))
	res, err := bfs.Search(m)
	assert.Nil(t, res)
	assert.ErrorIs(t, err, traverse.ErrWallEndpoint)
	assert.False(t, traverse.IsNoRoute(err))
	assert.False(t, m.At(2, 2).Visited)
}

func TestSearch_OptionViolation(t *testing.T) {
	_, err := bfs.Search(parse(t, twoRoutes), traverse.WithDelay(-1))
	assert.ErrorIs(t, err, traverse.ErrOptionViolation)
}

// TestSearch_Repeatable checks that a second run resets the first run's markers.
func TestSearch_Repeatable(t *testing.T) {
	m := parse(t, twoRoutes)
	first, err := bfs.Search(m)
	require.NoError(t, err)
	firstFrame := m.String()

	second, err := bfs.Search(m)
	require.NoError(t, err)
	assert.Equal(t, first.Coords(), second.Coords())
	assert.Equal(t, firstFrame, m.String())
}

func TestSearch_Notifications(t *testing.T) {
	m := parse(t, twoRoutes)
	rec := &visual.Recorder{Maze: m}
	res, err := bfs.Search(m, traverse.WithSink(rec))
	require.NoError(t, err)
	// one per discovered cell plus one per path cell
	assert.Equal(t, res.Explored+len(res.Path), rec.Count())

	frames := rec.Frames()
	assert.Equal(t, m.String(), frames[len(frames)-1])
}

func TestSearch_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := bfs.Search(parse(t, twoRoutes), traverse.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, traverse.IsNoRoute(err))
}

// TestSearch_FiveByFive uses a 5×5 grid whose only route has 6 moves:
// BFS must return exactly 7 cells.
func TestSearch_FiveByFive(t *testing.T) {
	m := parse(t, []string{
		"#####",
		"#S..#",
		"###.#",
		"#G..#",
		"#####",
	})
	const moves = 6
	res, err := bfs.Search(m)
	require.NoError(t, err)
	require.Len(t, res.Path, moves+1)
	require.NoError(t, traverse.ValidatePath(m, res.Path))
}
