package typist

import (
	"context"
	"time"
)

// Clock abstracts time so sessions can run against a real clock or a virtual
// one. Sleep returns the context error when cancelled, checking the context
// before suspending.
type Clock interface {
	Now() time.Time
	Sleep(ctx context.Context, d time.Duration) error
}

// SystemClock is the wall-clock implementation of Clock.
type SystemClock struct{}

// Now returns the current wall-clock time.
func (SystemClock) Now() time.Time { return time.Now() }

// Sleep suspends for d or until ctx is cancelled.
func (SystemClock) Sleep(ctx context.Context, d time.Duration) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if d <= 0 {
		return nil
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// VirtualClock advances a logical timestamp instantly on Sleep. It backs
// dry runs and timing assertions in tests.
type VirtualClock struct {
	start   time.Time
	current time.Time
}

// NewVirtualClock returns a VirtualClock starting at the current wall time.
func NewVirtualClock() *VirtualClock {
	now := time.Now()
	return &VirtualClock{start: now, current: now}
}

// Now returns the logical time.
func (c *VirtualClock) Now() time.Time { return c.current }

// Sleep advances the logical time by d without suspending.
func (c *VirtualClock) Sleep(ctx context.Context, d time.Duration) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if d > 0 {
		c.current = c.current.Add(d)
	}
	return nil
}

// Elapsed returns the logical time advanced since construction.
func (c *VirtualClock) Elapsed() time.Duration {
	return c.current.Sub(c.start)
}
