package space

import (
	"strings"
	"testing"

	"github.com/vovakirdan/space-garbage/internal/config"
	"github.com/vovakirdan/space-garbage/internal/core"
)

func TestBlinkCycle(t *testing.T) {
	cfg := config.DefaultSpaceConfig()
	one := config.TickRange{Min: 1, Max: 1}
	cfg.Stars.DimTicks, cfg.Stars.NormalTicks, cfg.Stars.BoldTicks = one, one, one
	w := newTestWorldWith(t, 10, 10, cfg)

	task := NewBlinkTask(3, 4, '*', 0)
	want := []core.Style{
		core.StyleDefault.Dim(),
		core.StyleDefault,
		core.StyleDefault.Bold(),
		core.StyleDefault,
		core.StyleDefault.Dim(),
	}

	for i, st := range want {
		if res := step(t, task, w); res.Done {
			t.Fatal("stars never finish")
		}
		c := w.Canvas.GetCell(4, 3)
		if c.Rune != '*' || c.Style != st {
			t.Errorf("tick %d: cell = %+v, want '*' in %+v", i, c, st)
		}
	}
}

func TestBlinkHoldsPhase(t *testing.T) {
	cfg := config.DefaultSpaceConfig()
	cfg.Stars.DimTicks = config.TickRange{Min: 3, Max: 3}
	cfg.Stars.NormalTicks = config.TickRange{Min: 1, Max: 1}
	w := newTestWorldWith(t, 10, 10, cfg)

	task := NewBlinkTask(0, 0, '+', 2)

	// Two ticks of start offset: nothing drawn.
	for i := 0; i < 2; i++ {
		step(t, task, w)
		if got := w.Canvas.Get(0, 0); got != ' ' {
			t.Fatalf("tick %d: star drawn during offset", i)
		}
	}

	// Dim for three ticks, then normal.
	for i := 0; i < 3; i++ {
		step(t, task, w)
		if c := w.Canvas.GetCell(0, 0); !c.Style.Has(core.AttrDim) {
			t.Fatalf("dim tick %d: style = %+v", i, c.Style)
		}
	}
	step(t, task, w)
	if c := w.Canvas.GetCell(0, 0); c.Style != core.StyleDefault {
		t.Errorf("after dim phase style = %+v, want normal", c.Style)
	}
}

func TestStarTasksPlacement(t *testing.T) {
	const rows, cols = 24, 80
	w := newTestWorld(t, rows, cols)
	tasks := NewStarTasks(w)

	if len(tasks) != w.Config.Stars.Amount {
		t.Fatalf("got %d stars, want %d", len(tasks), w.Config.Stars.Amount)
	}

	indent := w.Config.Stars.BorderIndent
	for i, task := range tasks {
		s := task.(*blinkTask)
		if s.row < indent || s.row > rows-indent-1 || s.col < indent || s.col > cols-indent-1 {
			t.Errorf("star %d at (%d, %d) outside the border indent", i, s.row, s.col)
		}
		if !strings.ContainsRune(w.Config.Stars.Symbols, s.glyph) {
			t.Errorf("star %d glyph %q not in %q", i, s.glyph, w.Config.Stars.Symbols)
		}
	}
}

func TestStarTasksTinyCanvas(t *testing.T) {
	w := newTestWorld(t, 2, 2)
	for _, task := range NewStarTasks(w) {
		s := task.(*blinkTask)
		if s.row < 0 || s.row > 1 || s.col < 0 || s.col > 1 {
			t.Errorf("star at (%d, %d) off a 2x2 canvas", s.row, s.col)
		}
	}
}
