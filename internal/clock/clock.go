// Package clock provides the time source used by the wallet services so
// that tests can substitute a deterministic one.
package clock

import (
	"context"
	"time"
)

// Clock abstracts wall-clock reads and cancellable waits.
type Clock interface {
	Now() time.Time
	Sleep(ctx context.Context, d time.Duration) error
}

// System is the real-time Clock.
type System struct{}

func (System) Now() time.Time {
	return time.Now()
}

// Sleep waits for the duration or returns early if the context is canceled.
func (System) Sleep(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// Fixed is a Clock pinned to one instant, for tests. Sleep returns
// immediately unless the context is already canceled.
type Fixed struct {
	Instant time.Time
}

func (f Fixed) Now() time.Time {
	return f.Instant
}

func (f Fixed) Sleep(ctx context.Context, _ time.Duration) error {
	return ctx.Err()
}
