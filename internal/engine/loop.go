package engine

import (
	"context"
	"errors"
	"time"
)

// ErrStopLoop can be returned by a frame function to end Loop.Run cleanly.
var ErrStopLoop = errors.New("engine: stop loop")

// Loop runs frames on a fixed wall-clock cadence.
type Loop struct {
	interval time.Duration
	now      func() time.Time
	sleep    func(ctx context.Context, d time.Duration) error
}

// NewLoop creates a loop that starts a frame every interval.
// A non-positive interval runs frames back to back.
func NewLoop(interval time.Duration) *Loop {
	return &Loop{
		interval: interval,
		now:      time.Now,
		sleep:    sleepContext,
	}
}

// Interval returns the tick budget of the loop.
func (l *Loop) Interval() time.Duration {
	return l.interval
}

// Run calls frame repeatedly until it returns an error or ctx is done.
// After each frame the loop sleeps for the remainder of the tick budget.
// When a frame overruns its budget the next one starts immediately, and the
// lost time is not made up later.
//
// Run returns nil when frame returns ErrStopLoop, ctx.Err() when the context
// ends, and any other frame error unchanged.
func (l *Loop) Run(ctx context.Context, frame func() error) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		start := l.now()
		if err := frame(); err != nil {
			if errors.Is(err, ErrStopLoop) {
				return nil
			}
			return err
		}

		remaining := l.interval - l.now().Sub(start)
		if remaining <= 0 {
			continue
		}
		if err := l.sleep(ctx, remaining); err != nil {
			return err
		}
	}
}

// sleepContext blocks for d or until ctx is done.
func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
