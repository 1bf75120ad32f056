package space

import (
	"github.com/vovakirdan/space-garbage/internal/core"
	"github.com/vovakirdan/space-garbage/internal/engine"
	"github.com/vovakirdan/space-garbage/internal/frames"
)

// rocketHold is how many ticks each rocket frame stays on screen.
const rocketHold = 2

// Ship is the player's rocket.
type Ship struct {
	Row, Col           float64
	RowSpeed, ColSpeed float64
	Size               core.Size // Extent of the frame currently drawn
	Destroyed          bool
}

// Nose returns the point checked against obstacles: the middle of the top row.
func (s Ship) Nose() core.Point {
	return core.Point{Row: s.Row, Col: s.Col + float64(s.Size.Cols/2)}
}

// shipTask reads the controls, moves and draws the rocket, fires, and ends
// the game when the rocket hits garbage.
type shipTask struct {
	seq   []frames.Frame
	index int

	drawn   *frames.Frame
	drawnAt core.Point
	done    bool
}

// NewShipTask places the rocket in the middle of the canvas.
func NewShipTask(w *World) Task {
	seq := w.Frames.RocketSequence(rocketHold)
	size := core.Size{}
	if len(seq) > 0 {
		size = seq[0].Size()
	}
	w.Ship = Ship{
		Row:  float64(w.Rows() / 2),
		Col:  float64(w.Cols() / 2),
		Size: size,
	}
	return &shipTask{seq: seq}
}

// Step implements engine.Task.
func (t *shipTask) Step(w *World) (engine.Result[*World], error) {
	if t.done {
		return engine.Result[*World]{}, engine.ErrStepAfterDone
	}
	t.erase(w)
	if len(t.seq) == 0 {
		t.done = true
		return engine.Finish[*World](), nil
	}

	frame := t.seq[t.index]
	t.index = (t.index + 1) % len(t.seq)

	ship := &w.Ship
	ship.Size = frame.Size()

	rowsDir, colsDir := w.Input.Directions()
	cfg := w.Config.Ship
	ship.RowSpeed = UpdateSpeed(ship.RowSpeed, cfg.RowSpeedLimit, rowsDir, cfg)
	ship.ColSpeed = UpdateSpeed(ship.ColSpeed, cfg.ColumnSpeedLimit, colsDir, cfg)
	ship.Row = ClampPosition(ship.Row+ship.RowSpeed, w.Rows(), frame.Rows(), cfg.BorderIndent)
	ship.Col = ClampPosition(ship.Col+ship.ColSpeed, w.Cols(), frame.Cols(), cfg.BorderIndent)

	frame.Draw(w.Canvas, ship.Row, ship.Col)
	t.drawn = &frame
	t.drawnAt = core.Point{Row: ship.Row, Col: ship.Col}

	var spawn []Task
	if w.Input.Fire() && w.Schedule.WeaponUnlocked(w.Year) {
		nose := ship.Nose()
		spawn = append(spawn, NewFireTask(w, nose.Row, nose.Col))
		w.play(core.SoundFire)
	}

	if w.Collision(ship.Nose(), core.Size{}) != nil {
		t.erase(w)
		t.done = true
		ship.Destroyed = true
		return engine.Finish(append(spawn, NewGameOverTask())...), nil
	}
	return engine.Continue(spawn...), nil
}

// erase removes the frame drawn on the previous step.
func (t *shipTask) erase(w *World) {
	if t.drawn == nil {
		return
	}
	t.drawn.Erase(w.Canvas, t.drawnAt.Row, t.drawnAt.Col)
	t.drawn = nil
}
