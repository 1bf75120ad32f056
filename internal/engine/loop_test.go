package engine

import (
	"context"
	"errors"
	"testing"
	"time"
)

// fakeClock advances only when the loop sleeps or a frame burns time.
type fakeClock struct {
	now    time.Time
	sleeps []time.Duration
}

func (c *fakeClock) Now() time.Time {
	return c.now
}

func (c *fakeClock) Sleep(_ context.Context, d time.Duration) error {
	c.sleeps = append(c.sleeps, d)
	c.now = c.now.Add(d)
	return nil
}

func newTestLoop(interval time.Duration, clock *fakeClock) *Loop {
	l := NewLoop(interval)
	l.now = clock.Now
	l.sleep = clock.Sleep
	return l
}

func TestLoopSleepsForRemainder(t *testing.T) {
	clock := &fakeClock{now: time.Unix(100, 0)}
	l := newTestLoop(100*time.Millisecond, clock)

	frames := 0
	err := l.Run(context.Background(), func() error {
		frames++
		clock.now = clock.now.Add(30 * time.Millisecond)
		if frames == 3 {
			return ErrStopLoop
		}
		return nil
	})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if len(clock.sleeps) != 2 {
		t.Fatalf("expected 2 sleeps, got %v", clock.sleeps)
	}
	for _, d := range clock.sleeps {
		if d != 70*time.Millisecond {
			t.Errorf("sleep = %v, expected 70ms", d)
		}
	}
}

func TestLoopOverrunDoesNotCatchUp(t *testing.T) {
	clock := &fakeClock{now: time.Unix(100, 0)}
	l := newTestLoop(100*time.Millisecond, clock)

	costs := []time.Duration{250 * time.Millisecond, 10 * time.Millisecond, 10 * time.Millisecond}
	frames := 0
	err := l.Run(context.Background(), func() error {
		clock.now = clock.now.Add(costs[frames])
		frames++
		if frames == len(costs) {
			return ErrStopLoop
		}
		return nil
	})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	// The overrun frame gets no sleep, the next one sleeps a full remainder.
	if len(clock.sleeps) != 1 || clock.sleeps[0] != 90*time.Millisecond {
		t.Errorf("sleeps = %v, expected [90ms]", clock.sleeps)
	}
}

func TestLoopPropagatesFrameError(t *testing.T) {
	clock := &fakeClock{now: time.Unix(0, 0)}
	l := newTestLoop(time.Millisecond, clock)
	boom := errors.New("boom")

	err := l.Run(context.Background(), func() error { return boom })
	if !errors.Is(err, boom) {
		t.Errorf("Run() error = %v, expected %v", err, boom)
	}
}

func TestLoopStopsOnContextCancel(t *testing.T) {
	clock := &fakeClock{now: time.Unix(0, 0)}
	l := newTestLoop(time.Millisecond, clock)
	ctx, cancel := context.WithCancel(context.Background())

	frames := 0
	err := l.Run(ctx, func() error {
		frames++
		if frames == 2 {
			cancel()
		}
		return nil
	})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Run() error = %v, expected context.Canceled", err)
	}
	if frames != 2 {
		t.Errorf("expected 2 frames before cancel, got %d", frames)
	}
}

func TestSleepContextHonoursCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := sleepContext(ctx, time.Hour); !errors.Is(err, context.Canceled) {
		t.Errorf("sleepContext() error = %v, expected context.Canceled", err)
	}
}
