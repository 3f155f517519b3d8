package visual

import (
	"context"
	"time"
)

// Pacer couples a Sink with a per-call delay and a cancellation context.
// A Pacer belongs to exactly one running operation.
type Pacer struct {
	ctx   context.Context
	sink  Sink
	delay time.Duration
	sent  int
}

// NewPacer returns a Pacer. A nil ctx means context.Background, a nil sink
// means Nop, and a non-positive delay disables pausing.
func NewPacer(ctx context.Context, sink Sink, delay time.Duration) *Pacer {
	if ctx == nil {
		ctx = context.Background()
	}
	if sink == nil {
		sink = Nop
	}
	if delay < 0 {
		delay = 0
	}
	return &Pacer{ctx: ctx, sink: sink, delay: delay}
}

// Context returns the context the Pacer checks.
func (p *Pacer) Context() context.Context { return p.ctx }

// Touch notifies the sink without pausing.
// Returns the context error if the operation was cancelled.
func (p *Pacer) Touch() error {
	if err := p.ctx.Err(); err != nil {
		return err
	}
	p.sent++
	p.sink.Notify()
	return nil
}

// Step notifies the sink, then sleeps for the configured delay. The sleep
// is cut short by cancellation, in which case the context error is returned.
func (p *Pacer) Step() error {
	if err := p.Touch(); err != nil {
		return err
	}
	if p.delay == 0 {
		return nil
	}

	t := time.NewTimer(p.delay)
	defer t.Stop()
	select {
	case <-p.ctx.Done():
		return p.ctx.Err()
	case <-t.C:
		return nil
	}
}

// Heatmap forwards field to the sink if it implements HeatmapSink.
func (p *Pacer) Heatmap(field [][]float64) {
	if hs, ok := p.sink.(HeatmapSink); ok {
		hs.Heatmap(field)
	}
}

// Sent returns how many notifications reached the sink.
func (p *Pacer) Sent() int { return p.sent }
