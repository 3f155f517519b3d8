package bug2

import (
	"fmt"

	"github.com/katalvlaran/mazewalk/traverse"
)

// ErrUnsolvable is returned when wall-following cannot make progress.
var ErrUnsolvable = fmt.Errorf("bug2: wall following looped: %w", traverse.ErrNoRoute)

// Heading is a cardinal direction. Values increase clockwise.
type Heading int

const (
	Right Heading = iota
	Down
	Left
	Up
)

// greedyMode is the pseudo-heading used to record greedy-phase states.
const greedyMode Heading = -1

var headingOffsets = [4][2]int{
	Right: {0, 1},
	Down:  {1, 0},
	Left:  {0, -1},
	Up:    {-1, 0},
}

// Clockwise returns h turned a quarter clockwise.
func (h Heading) Clockwise() Heading { return (h + 1) % 4 }

// CounterClockwise returns h turned a quarter counter-clockwise.
func (h Heading) CounterClockwise() Heading { return (h + 3) % 4 }

// Offset returns the (row, col) delta of one step along h.
func (h Heading) Offset() (dr, dc int) { return headingOffsets[h][0], headingOffsets[h][1] }

func (h Heading) String() string {
	switch h {
	case Right:
		return "right"
	case Down:
		return "down"
	case Left:
		return "left"
	case Up:
		return "up"
	}
	return fmt.Sprintf("Heading(%d)", int(h))
}
