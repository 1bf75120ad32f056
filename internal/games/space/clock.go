package space

import "github.com/vovakirdan/space-garbage/internal/engine"

// clockTask advances the year every ticksPerYear ticks. Zero freezes time.
type clockTask struct {
	ticksPerYear int
	count        int
}

// NewClockTask creates the year clock.
func NewClockTask(ticksPerYear int) Task {
	return &clockTask{ticksPerYear: ticksPerYear}
}

// Step implements engine.Task.
func (t *clockTask) Step(w *World) (engine.Result[*World], error) {
	if t.ticksPerYear <= 0 {
		return engine.Continue[*World](), nil
	}
	t.count++
	if t.count >= t.ticksPerYear {
		t.count = 0
		w.Year++
	}
	return engine.Continue[*World](), nil
}
