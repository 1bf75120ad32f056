package space

import (
	"github.com/vovakirdan/space-garbage/internal/core"
	"github.com/vovakirdan/space-garbage/internal/engine"
	"github.com/vovakirdan/space-garbage/internal/frames"
)

// explosionTask plays the explosion frames centered on a point, one per
// tick, then clears the last one and ends.
type explosionTask struct {
	center core.Point
	seq    []frames.Frame
	next   int

	drawn   *frames.Frame
	drawnAt core.Point
	done    bool
}

// NewExplosionTask creates an explosion at center.
func NewExplosionTask(w *World, center core.Point) Task {
	return &explosionTask{center: center, seq: w.Frames.Explosion}
}

// Step implements engine.Task.
func (t *explosionTask) Step(w *World) (engine.Result[*World], error) {
	if t.done {
		return engine.Result[*World]{}, engine.ErrStepAfterDone
	}
	if t.next == 0 {
		w.play(core.SoundExplosion)
	}
	if t.drawn != nil {
		t.drawn.Erase(w.Canvas, t.drawnAt.Row, t.drawnAt.Col)
		t.drawn = nil
	}
	if t.next >= len(t.seq) {
		t.done = true
		return engine.Finish[*World](), nil
	}

	f := t.seq[t.next]
	t.next++
	t.drawnAt = core.Point{
		Row: t.center.Row - float64(f.Rows())/2,
		Col: t.center.Col - float64(f.Cols())/2,
	}
	f.Draw(w.Canvas, t.drawnAt.Row, t.drawnAt.Col)
	t.drawn = &f
	return engine.Continue[*World](), nil
}
