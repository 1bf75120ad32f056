package space

import (
	"math"

	"github.com/vovakirdan/space-garbage/internal/core"
	"github.com/vovakirdan/space-garbage/internal/engine"
)

// Projectile glyphs.
const (
	MuzzleGlyph     = '*'
	VerticalGlyph   = '|'
	HorizontalGlyph = '-'
)

var shotStyle = core.Style{Color: core.ColorBrightYellow}

// fireTask flies a plasma shot in a straight line until it leaves the
// canvas or hits an obstacle.
type fireTask struct {
	row, col           float64
	rowSpeed, colSpeed float64

	started bool
	drawn   bool
	done    bool
	drawnR  int
	drawnC  int
}

// NewFireTask creates a shot at (row, col) using the configured speed.
func NewFireTask(w *World, row, col float64) Task {
	p := w.Config.Projectile
	return NewFireTaskWithSpeed(row, col, p.RowSpeed, p.ColumnSpeed)
}

// NewFireTaskWithSpeed creates a shot with an explicit velocity in cells per tick.
func NewFireTaskWithSpeed(row, col, rowSpeed, colSpeed float64) Task {
	return &fireTask{row: row, col: col, rowSpeed: rowSpeed, colSpeed: colSpeed}
}

// Step implements engine.Task.
func (t *fireTask) Step(w *World) (engine.Result[*World], error) {
	if t.done {
		return engine.Result[*World]{}, engine.ErrStepAfterDone
	}
	t.erase(w)

	if !t.started {
		// Muzzle flash at the launch point.
		t.started = true
		if t.hit(w) {
			return t.finish(), nil
		}
		t.draw(w, MuzzleGlyph)
		return engine.Continue[*World](), nil
	}

	t.row += t.rowSpeed
	t.col += t.colSpeed

	maxRow, maxCol := float64(w.Rows()-1), float64(w.Cols()-1)
	if !(0 < t.row && t.row < maxRow && 0 < t.col && t.col < maxCol) {
		return t.finish(), nil
	}
	if t.hit(w) {
		return t.finish(), nil
	}

	glyph := VerticalGlyph
	if t.colSpeed != 0 {
		glyph = HorizontalGlyph
	}
	t.draw(w, glyph)
	return engine.Continue[*World](), nil
}

// hit records the first obstacle under the shot in the ledger.
func (t *fireTask) hit(w *World) bool {
	o := w.Collision(core.Point{Row: t.row, Col: t.col}, core.Size{})
	if o == nil {
		return false
	}
	w.Ledger.Record(o)
	return true
}

func (t *fireTask) draw(w *World, glyph rune) {
	t.drawnR, t.drawnC = int(math.Round(t.row)), int(math.Round(t.col))
	w.Canvas.DrawGlyph(t.drawnR, t.drawnC, glyph, shotStyle)
	t.drawn = true
}

func (t *fireTask) erase(w *World) {
	if !t.drawn {
		return
	}
	w.Canvas.DrawGlyph(t.drawnR, t.drawnC, ' ', core.StyleDefault)
	t.drawn = false
}

func (t *fireTask) finish() engine.Result[*World] {
	t.done = true
	return engine.Finish[*World]()
}
