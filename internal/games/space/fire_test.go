package space

import (
	"errors"
	"testing"

	"github.com/vovakirdan/space-garbage/internal/core"
	"github.com/vovakirdan/space-garbage/internal/engine"
)

func TestFireHitsInflatedBox(t *testing.T) {
	w := newTestWorld(t, 20, 20)
	o := w.AddObstacle(8, 5, core.Size{Rows: 1, Cols: 1})
	task := NewFireTaskWithSpeed(10, 5, -1, 0)

	// Row 10: muzzle flash, no hit yet.
	if res := step(t, task, w); res.Done {
		t.Fatal("projectile should not hit at row 10")
	}
	if w.Ledger.Contains(o) {
		t.Fatal("collision recorded at row 10")
	}
	if got := w.Canvas.Get(5, 10); got != MuzzleGlyph {
		t.Errorf("expected muzzle flash at (10,5), got %q", got)
	}

	// Row 9: inside the inflated box.
	res := step(t, task, w)
	if !res.Done {
		t.Fatal("projectile should stop at row 9")
	}
	if !w.Ledger.Contains(o) {
		t.Error("hit not recorded in the ledger")
	}
	if w.Score() != 1 {
		t.Errorf("Score() = %d, want 1", w.Score())
	}
	if got := w.Canvas.Get(5, 10); got != ' ' {
		t.Errorf("muzzle flash not erased, got %q", got)
	}

	if _, err := task.Step(w); !errors.Is(err, engine.ErrStepAfterDone) {
		t.Errorf("step after done error = %v, want ErrStepAfterDone", err)
	}
}

func TestFireHitAtLaunch(t *testing.T) {
	w := newTestWorld(t, 20, 20)
	o := w.AddObstacle(5, 5, core.Size{Rows: 2, Cols: 2})
	task := NewFireTaskWithSpeed(5, 5, -1, 0)

	if res := step(t, task, w); !res.Done {
		t.Error("shot fired inside an obstacle should hit immediately")
	}
	if !w.Ledger.Contains(o) {
		t.Error("hit not recorded")
	}
}

func TestFireLeavesCanvas(t *testing.T) {
	w := newTestWorld(t, 20, 20)
	task := NewFireTaskWithSpeed(3, 10, -1, 0)
	blank := core.NewScreen(20, 20).String()

	ticks := 0
	for {
		ticks++
		if res := step(t, task, w); res.Done {
			break
		}
		if ticks > 10 {
			t.Fatal("projectile never left the canvas")
		}
	}

	// Flash at 3, travel at 2 and 1, gone at 0.
	if ticks != 4 {
		t.Errorf("projectile lived %d ticks, want 4", ticks)
	}
	if got := w.Canvas.String(); got != blank {
		t.Errorf("projectile left a trail:\n%s", got)
	}
	if w.Score() != 0 {
		t.Errorf("Score() = %d, want 0", w.Score())
	}
}

func TestFireGlyphs(t *testing.T) {
	tests := []struct {
		name     string
		rowSpeed float64
		colSpeed float64
		want     rune
	}{
		{"vertical", -1, 0, VerticalGlyph},
		{"horizontal", 0, 1, HorizontalGlyph},
		{"diagonal", -1, 1, HorizontalGlyph},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := newTestWorld(t, 20, 20)
			task := NewFireTaskWithSpeed(10, 10, tt.rowSpeed, tt.colSpeed)
			step(t, task, w)
			step(t, task, w)

			row, col := int(10+tt.rowSpeed), int(10+tt.colSpeed)
			if got := w.Canvas.Get(col, row); got != tt.want {
				t.Errorf("glyph at (%d,%d) = %q, want %q", row, col, got, tt.want)
			}
		})
	}
}

func TestFireUsesConfiguredSpeed(t *testing.T) {
	w := newTestWorld(t, 20, 20)
	task := NewFireTask(w, 10, 10).(*fireTask)

	if task.rowSpeed != w.Config.Projectile.RowSpeed || task.colSpeed != w.Config.Projectile.ColumnSpeed {
		t.Errorf("speed = (%v, %v), want config values", task.rowSpeed, task.colSpeed)
	}

	step(t, task, w)
	step(t, task, w)
	if task.row != 10+w.Config.Projectile.RowSpeed {
		t.Errorf("row = %v after one move", task.row)
	}
}

func TestFireDrawsAtRoundedCell(t *testing.T) {
	w := newTestWorld(t, 20, 20)
	task := NewFireTaskWithSpeed(10, 5, -0.3, 0)

	step(t, task, w) // muzzle at row 10
	step(t, task, w) // row 9.7
	if got := w.Canvas.Get(5, 10); got != VerticalGlyph {
		t.Errorf("row 9.7 should draw on row 10, got %q", got)
	}
	if got := w.Canvas.Get(5, 9); got != ' ' {
		t.Errorf("row 9 = %q, want blank", got)
	}

	step(t, task, w) // row 9.4
	if got := w.Canvas.Get(5, 9); got != VerticalGlyph {
		t.Errorf("row 9.4 should draw on row 9, got %q", got)
	}
	if got := w.Canvas.Get(5, 10); got != ' ' {
		t.Errorf("previous cell not erased, got %q", got)
	}
}
