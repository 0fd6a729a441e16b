package series

import (
	"context"
	"time"
)

// Gate spaces successive calls at a fixed minimum interval. The first
// Wait returns immediately; later Waits sleep out whatever remains of
// the interval since the previous one. This keeps the upstream's
// per-second rate ceiling a named, testable piece instead of an inline
// sleep in the fetch loop.
type Gate struct {
	interval time.Duration
	last     time.Time
}

// NewGate creates a gate with the given interval.
func NewGate(interval time.Duration) *Gate {
	return &Gate{interval: interval}
}

// Wait blocks until the interval since the previous Wait has elapsed,
// or the context is done.
func (g *Gate) Wait(ctx context.Context) error {
	if !g.last.IsZero() {
		remaining := g.interval - time.Since(g.last)
		if remaining > 0 {
			timer := time.NewTimer(remaining)
			defer timer.Stop()
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-timer.C:
			}
		}
	}
	g.last = time.Now()
	return nil
}
