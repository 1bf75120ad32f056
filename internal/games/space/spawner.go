package space

import "github.com/vovakirdan/space-garbage/internal/engine"

// spawnerTask drops garbage at the cadence the schedule gives for the
// current year. While the delay is zero it re-checks every tick.
type spawnerTask struct {
	wait int
}

// NewSpawnerTask creates the garbage spawner.
func NewSpawnerTask() Task {
	return &spawnerTask{}
}

// Step implements engine.Task.
func (t *spawnerTask) Step(w *World) (engine.Result[*World], error) {
	if t.wait > 0 {
		t.wait--
		return engine.Continue[*World](), nil
	}

	delay := w.Schedule.SpawnDelay(w.Year)
	if delay <= 0 || len(w.Frames.Garbage) == 0 {
		return engine.Continue[*World](), nil
	}

	frame := w.Frames.Garbage[w.Rand.Intn(len(w.Frames.Garbage))]
	col := w.randBetween(1, w.Cols()-1)
	t.wait = delay - 1
	return engine.Continue(NewDebrisTask(w, frame, col)), nil
}
