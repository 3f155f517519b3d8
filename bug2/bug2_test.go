package bug2_test

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mazewalk/bug2"
	"github.com/katalvlaran/mazewalk/carve"
	"github.com/katalvlaran/mazewalk/maze"
	"github.com/katalvlaran/mazewalk/traverse"
	"github.com/katalvlaran/mazewalk/visual"
)

func parse(t *testing.T, lines ...string) *maze.Maze {
	t.Helper()
	m, err := maze.Parse(lines)
	require.NoError(t, err)
	return m
}

func TestSearch_Aligned(t *testing.T) {
	m := parse(t,
		"#####",
		"#S.G#",
		"#####",
	)
	res, err := bug2.Search(m)
	require.NoError(t, err)
	assert.Equal(t, [][2]int{{1, 1}, {1, 2}, {1, 3}}, res.Coords())
	assert.Equal(t, 3, res.Explored)
}

// TestSearch_OpenRoom checks the diagonal case: the walker follows the
// boundary until the goal lines up, then steps straight in.
func TestSearch_OpenRoom(t *testing.T) {
	m := parse(t,
		"#####",
		"#S..#",
		"#...#",
		"#..G#",
		"#####",
	)
	res, err := bug2.Search(m)
	require.NoError(t, err)
	require.NoError(t, traverse.ValidatePath(m, res.Path))

	want := [][2]int{{1, 1}, {2, 1}, {3, 1}, {3, 2}, {3, 3}}
	if diff := cmp.Diff(want, res.Coords()); diff != "" {
		t.Fatalf("path mismatch (-want +got):\n%s", diff)
	}
	for _, c := range res.Path {
		assert.True(t, c.Path)
	}
}

func TestSearch_AroundObstacle(t *testing.T) {
	m := parse(t,
		"#######",
		"#S....#",
		"###.###",
		"#.....#",
		"#.....#",
		"#.#G..#",
		"#######",
	)
	res, err := bug2.Search(m)
	require.NoError(t, err)
	require.NoError(t, traverse.ValidatePath(m, res.Path))
}

// TestSearch_EnclosedGoal verifies termination with ErrUnsolvable.
func TestSearch_EnclosedGoal(t *testing.T) {
	m := parse(t,
		"#######",
		"#S....#",
		"#.###.#",
		"#.#G#.#",
		"#.###.#",
		"#.....#",
		"#######",
	)
	res, err := bug2.Search(m)
	assert.Nil(t, res)
	assert.ErrorIs(t, err, bug2.ErrUnsolvable)
	assert.True(t, traverse.IsNoRoute(err))
	assert.False(t, m.Goal().Path)
}

// TestSearch_CarvedMazes only requires an answer: a valid route or
// ErrUnsolvable, never a hang.
func TestSearch_CarvedMazes(t *testing.T) {
	solved := 0
	for seed := uint64(1); seed <= 30; seed++ {
		m, err := maze.New(21, 21)
		require.NoError(t, err)
		require.NoError(t, carve.Generate(m, carve.WithSeed(seed)))

		res, err := bug2.Search(m)
		if err != nil {
			require.ErrorIs(t, err, bug2.ErrUnsolvable, "seed %d", seed)
			continue
		}
		require.NoError(t, traverse.ValidatePath(m, res.Path), "seed %d", seed)
		solved++
	}
	t.Logf("bug2 solved %d of 30 mazes", solved)
}

func TestSearch_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	m := parse(t,
		"#####",
		"#S.G#",
		"#####",
	)
	rec := &visual.Recorder{}
	_, err := bug2.Search(m, traverse.WithContext(ctx), traverse.WithSink(rec))
	assert.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, rec.Count())
}

func TestSearch_Unconfigured(t *testing.T) {
	_, err := bug2.Search(new(maze.Maze))
	assert.ErrorIs(t, err, traverse.ErrUnconfigured)
}

func TestHeading(t *testing.T) {
	h := bug2.Right
	for i := 0; i < 4; i++ {
		assert.Equal(t, h, h.Clockwise().CounterClockwise())
		h = h.Clockwise()
	}
	assert.Equal(t, bug2.Right, h)
	assert.Equal(t, bug2.Down, bug2.Right.Clockwise())
	assert.Equal(t, bug2.Up, bug2.Right.CounterClockwise())

	dr, dc := bug2.Up.Offset()
	assert.Equal(t, [2]int{-1, 0}, [2]int{dr, dc})
	assert.Equal(t, "left", bug2.Left.String())
	assert.Equal(t, "Heading(7)", bug2.Heading(7).String())
}
