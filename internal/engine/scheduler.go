package engine

import (
	"errors"
	"fmt"
	"time"
)

var (
	// ErrNilTask is returned when a nil task is added to a scheduler.
	ErrNilTask = errors.New("engine: nil task")

	// ErrStepAfterDone is returned by tasks that are resumed after they
	// already reported completion. It always indicates a programming error.
	ErrStepAfterDone = errors.New("engine: task stepped after completion")
)

// Task is one independently resumable unit of per-tick logic.
// Step performs a single logical step against the shared state S and yields.
// A returned error is fatal for the whole scheduler.
type Task[S any] interface {
	Step(state S) (Result[S], error)
}

// Result is what a task yields after one step.
type Result[S any] struct {
	// Done removes the task permanently once the current step returns.
	Done bool
	// Spawn lists new tasks to append to the live set. They first run on
	// the next tick.
	Spawn []Task[S]
}

// Continue yields without finishing, optionally spawning new tasks.
func Continue[S any](spawn ...Task[S]) Result[S] {
	return Result[S]{Spawn: spawn}
}

// Finish yields and removes the task, optionally spawning new tasks.
func Finish[S any](spawn ...Task[S]) Result[S] {
	return Result[S]{Done: true, Spawn: spawn}
}

// TaskFunc adapts a plain function to the Task interface.
type TaskFunc[S any] func(state S) (Result[S], error)

// Step calls f(state).
func (f TaskFunc[S]) Step(state S) (Result[S], error) {
	return f(state)
}

// TickStats summarises a single scheduler tick.
type TickStats struct {
	Tick     uint64        // Tick number, starting at 1
	Stepped  int           // Tasks resumed this tick
	Finished int           // Tasks that reported Done
	Spawned  int           // Tasks appended for the next tick
	Live     int           // Tasks live after the tick
	Duration time.Duration // Wall time spent stepping
}

// Observer receives per-tick statistics. Implementations must not block.
type Observer interface {
	ObserveTick(stats TickStats)
}

// Scheduler is a cooperative round-robin driver over a dynamic task set.
// It is not safe for concurrent use; all calls must come from the goroutine
// that drives the simulation.
type Scheduler[S any] struct {
	tasks    []Task[S]
	tick     uint64
	observer Observer
	now      func() time.Time
}

// NewScheduler creates an empty scheduler.
func NewScheduler[S any]() *Scheduler[S] {
	return &Scheduler[S]{
		tasks: make([]Task[S], 0, 64),
		now:   time.Now,
	}
}

// SetObserver installs an observer notified after every tick. nil disables it.
func (s *Scheduler[S]) SetObserver(o Observer) {
	s.observer = o
}

// Add appends tasks to the live set in order.
func (s *Scheduler[S]) Add(tasks ...Task[S]) error {
	for _, t := range tasks {
		if t == nil {
			return ErrNilTask
		}
	}
	s.tasks = append(s.tasks, tasks...)
	return nil
}

// Len returns the number of live tasks.
func (s *Scheduler[S]) Len() int {
	return len(s.tasks)
}

// Ticks returns the number of completed ticks.
func (s *Scheduler[S]) Ticks() uint64 {
	return s.tick
}

// Tick advances every task live at the start of the tick by one step.
//
// If a task fails, Tick stops immediately and returns the wrapped error;
// the scheduler must not be ticked again afterwards.
func (s *Scheduler[S]) Tick(state S) error {
	start := s.now()
	s.tick++

	// Tasks appended during this tick land after n and are not stepped.
	n := len(s.tasks)
	live := make([]Task[S], 0, n)
	var spawned []Task[S]
	finished := 0

	for i := 0; i < n; i++ {
		task := s.tasks[i]
		res, err := task.Step(state)
		if err != nil {
			return fmt.Errorf("engine: tick %d: task #%d (%T): %w", s.tick, i, task, err)
		}
		for _, child := range res.Spawn {
			if child == nil {
				return fmt.Errorf("engine: tick %d: task #%d (%T): %w", s.tick, i, task, ErrNilTask)
			}
		}
		spawned = append(spawned, res.Spawn...)
		if res.Done {
			finished++
			continue
		}
		live = append(live, task)
	}

	live = append(live, s.tasks[n:]...)
	s.tasks = append(live, spawned...)

	if s.observer != nil {
		s.observer.ObserveTick(TickStats{
			Tick:     s.tick,
			Stepped:  n,
			Finished: finished,
			Spawned:  len(spawned),
			Live:     len(s.tasks),
			Duration: s.now().Sub(start),
		})
	}
	return nil
}
