package traverse

import (
	"fmt"

	"github.com/katalvlaran/mazewalk/maze"
	"github.com/katalvlaran/mazewalk/visual"
)

// Frontier is the container that decides expansion order: a Queue gives
// breadth-first order, a Stack depth-first order.
type Frontier interface {
	Push(idx int)
	Pop() int
	Len() int
}

// Queue is a FIFO Frontier.
type Queue struct {
	items []int
	head  int
}

// Push appends idx at the back.
func (q *Queue) Push(idx int) { q.items = append(q.items, idx) }

// Pop removes and returns the front element.
func (q *Queue) Pop() int {
	idx := q.items[q.head]
	q.head++
	if q.head == len(q.items) {
		q.items, q.head = q.items[:0], 0
	}
	return idx
}

// Len returns the number of queued elements.
func (q *Queue) Len() int { return len(q.items) - q.head }

// Stack is a LIFO Frontier.
type Stack struct {
	items []int
}

// Push places idx on top.
func (s *Stack) Push(idx int) { s.items = append(s.items, idx) }

// Pop removes and returns the top element.
func (s *Stack) Pop() int {
	idx := s.items[len(s.items)-1]
	s.items = s.items[:len(s.items)-1]
	return idx
}

// Len returns the stack depth.
func (s *Stack) Len() int { return len(s.items) }

// walker encapsulates mutable frontier-search state.
type walker struct {
	m       *maze.Maze
	f       Frontier
	pacer   *visual.Pacer
	visited []bool
	pred    []int
	buf     []*maze.Cell
	res     *Result
}

// Expand runs a frontier search from m.Start() to m.Goal(). Cells are
// claimed (Visited, Frontier, Parent) the moment they enter the frontier,
// so nothing is pushed twice. The search succeeds when the goal is popped.
//
// Returns ErrUnconfigured for a maze without endpoints, ErrWallEndpoint when
// either endpoint is a wall, ErrNoPath when the frontier empties, or the
// context error on cancellation.
// Complexity: O(rows×cols) time and memory.
func Expand(m *maze.Maze, f Frontier, o Options) (*Result, error) {
	if err := Validate(m); err != nil {
		return nil, err
	}
	m.Reset()

	w := &walker{
		m:       m,
		f:       f,
		pacer:   o.Pacer(),
		visited: make([]bool, m.Len()),
		pred:    NewPredecessors(m),
		res:     &Result{},
	}
	if err := w.claim(m.Start(), nil); err != nil {
		return nil, err
	}
	return w.loop()
}

// claim marks c discovered from parent and pushes it.
func (w *walker) claim(c, parent *maze.Cell) error {
	i := w.m.Index(c)
	w.visited[i] = true
	c.Visited = true
	c.Frontier = true
	if parent != nil {
		c.Parent = parent
		w.pred[i] = w.m.Index(parent)
	}
	w.res.Explored++
	if err := w.pacer.Step(); err != nil {
		return err
	}
	w.f.Push(i)
	return nil
}

// loop pops until the goal is found or the frontier is empty.
func (w *walker) loop() (*Result, error) {
	start, goal := w.m.Start(), w.m.Goal()
	for w.f.Len() > 0 {
		cur := w.m.CellAt(w.f.Pop())
		w.res.Steps++
		if cur == goal {
			path, err := Reconstruct(w.m, w.pred, start, goal, w.pacer)
			if err != nil {
				return nil, err
			}
			w.res.Path = path
			return w.res, nil
		}

		w.buf = Neighbors(w.buf, w.m, cur)
		for _, nxt := range w.buf {
			if nxt.Wall || w.visited[w.m.Index(nxt)] {
				continue
			}
			if err := w.claim(nxt, cur); err != nil {
				return nil, err
			}
		}
	}
	return nil, fmt.Errorf("%w after exploring %d cells", ErrNoPath, w.res.Explored)
}
