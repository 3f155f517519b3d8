package runner

import (
	"context"

	"github.com/google/uuid"

	"github.com/katalvlaran/mazewalk/traverse"
)

// Task is a handle on one background operation.
type Task struct {
	// ID uniquely identifies the task in logs.
	ID uuid.UUID
	// Kind is "generate" or the strategy name.
	Kind string

	cancel context.CancelFunc
	done   chan struct{}
	res    *traverse.Result
	err    error
}

func newTask(kind string, cancel context.CancelFunc) *Task {
	return &Task{
		ID:     uuid.New(),
		Kind:   kind,
		cancel: cancel,
		done:   make(chan struct{}),
	}
}

// Done is closed when the operation has finished.
func (t *Task) Done() <-chan struct{} { return t.done }

// Cancel asks the operation to stop at its next notification point.
// It does not wait; use Wait for that.
func (t *Task) Cancel() { t.cancel() }

// Wait blocks until the operation finishes and returns its outcome.
// Generation tasks return a nil Result.
func (t *Task) Wait() (*traverse.Result, error) {
	<-t.done
	return t.res, t.err
}

// WaitContext is Wait bounded by ctx. If ctx ends first the task keeps
// running and ctx.Err() is returned.
func (t *Task) WaitContext(ctx context.Context) (*traverse.Result, error) {
	select {
	case <-t.done:
		return t.res, t.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// Finished reports whether the operation has completed.
func (t *Task) Finished() bool {
	select {
	case <-t.done:
		return true
	default:
		return false
	}
}

// Result returns the search result once the task has finished, else nil.
func (t *Task) Result() *traverse.Result {
	if !t.Finished() {
		return nil
	}
	return t.res
}

// Err returns the task's error once it has finished, else nil.
func (t *Task) Err() error {
	if !t.Finished() {
		return nil
	}
	return t.err
}
