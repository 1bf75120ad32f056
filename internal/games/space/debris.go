package space

import (
	"github.com/vovakirdan/space-garbage/internal/core"
	"github.com/vovakirdan/space-garbage/internal/engine"
	"github.com/vovakirdan/space-garbage/internal/frames"
)

// debrisTask drops a piece of garbage down the canvas. Its obstacle is
// registered on the first step, together with the first draw, and then stays
// at the drawn position between steps.
type debrisTask struct {
	frame    frames.Frame
	col      float64
	obstacle *Obstacle
	speed    float64

	drawn bool
	done  bool
}

// NewDebrisTask creates garbage that enters at the top of the canvas in the
// given column. The column is clamped so the frame fits inside the border.
func NewDebrisTask(w *World, frame frames.Frame, col int) Task {
	col = core.Clamp(col, 1, max(w.Cols()-frame.Cols()-1, 1))
	return &debrisTask{
		frame: frame,
		col:   float64(col),
		speed: w.Config.Debris.Speed,
	}
}

// Step implements engine.Task.
func (t *debrisTask) Step(w *World) (engine.Result[*World], error) {
	if t.done {
		return engine.Result[*World]{}, engine.ErrStepAfterDone
	}

	o := t.obstacle
	if o == nil {
		o = w.AddObstacle(0, t.col, t.frame.Size())
		t.obstacle = o
	} else {
		if t.drawn {
			t.frame.Erase(w.Canvas, o.Row, o.Col)
			t.drawn = false
		}
		if w.Ledger.Contains(o) {
			w.RemoveObstacle(o)
			t.done = true
			return engine.Finish(NewExplosionTask(w, o.Center())), nil
		}
		o.Row += t.speed
	}

	if o.Row >= float64(w.Rows()) {
		w.RemoveObstacle(o)
		t.done = true
		return engine.Finish[*World](), nil
	}

	t.frame.Draw(w.Canvas, o.Row, o.Col)
	t.drawn = true
	return engine.Continue[*World](), nil
}

// Obstacle returns the hazard registered by this debris, or nil before its
// first step.
func (t *debrisTask) Obstacle() *Obstacle {
	return t.obstacle
}

// Col returns the clamped entry column.
func (t *debrisTask) Col() float64 {
	return t.col
}
