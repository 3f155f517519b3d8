// Package runner executes generation and searches on their own goroutine
// and hands back a cancellable Task.
//
// A Runner owns exactly one maze and admits one operation at a time;
// starting another while one is in flight returns ErrBusy. Cancelling a
// Task (or its parent context) stops the operation at its next
// notification point, and Wait then reports context.Canceled.
//
//	r := runner.New(m, runner.WithSink(view), runner.WithDelay(12*time.Millisecond))
//	t, _ := r.Generate(ctx)
//	_, _ = t.Wait()
//	t, _ = r.Search(ctx, solve.Greedy)
//	res, err := t.Wait()
package runner
