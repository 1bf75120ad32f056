package space

import (
	"github.com/vovakirdan/space-garbage/internal/config"
	"github.com/vovakirdan/space-garbage/internal/core"
	"github.com/vovakirdan/space-garbage/internal/engine"
)

// blinkStyles is the brightness cycle of a star.
var blinkStyles = [...]core.Style{
	core.StyleDefault.Dim(),
	core.StyleDefault,
	core.StyleDefault.Bold(),
	core.StyleDefault,
}

// holdRange returns how long a star stays in the given phase.
func holdRange(cfg config.StarsConfig, phase int) config.TickRange {
	switch phase {
	case 0:
		return cfg.DimTicks
	case 2:
		return cfg.BoldTicks
	default:
		return cfg.NormalTicks
	}
}

// blinkTask twinkles one star forever: dim, normal, bold, normal, holding
// each phase for a random number of ticks.
type blinkTask struct {
	row, col int
	glyph    rune
	phase    int
	wait     int
}

// NewBlinkTask creates a star at (row, col). offset delays the first draw.
func NewBlinkTask(row, col int, glyph rune, offset int) Task {
	return &blinkTask{row: row, col: col, glyph: glyph, wait: max(offset, 0)}
}

// NewStarTasks scatters the configured number of stars inside the border
// indent, each with a random glyph and start offset.
func NewStarTasks(w *World) []Task {
	cfg := w.Config.Stars
	symbols := []rune(cfg.Symbols)
	if len(symbols) == 0 {
		return nil
	}

	maxRow := max(w.Rows()-cfg.BorderIndent-1, cfg.BorderIndent)
	maxCol := max(w.Cols()-cfg.BorderIndent-1, cfg.BorderIndent)

	tasks := make([]Task, 0, cfg.Amount)
	for range cfg.Amount {
		row := core.Clamp(w.randBetween(cfg.BorderIndent, maxRow), 0, w.Rows()-1)
		col := core.Clamp(w.randBetween(cfg.BorderIndent, maxCol), 0, w.Cols()-1)
		glyph := symbols[w.Rand.Intn(len(symbols))]
		offset := w.randBetween(0, cfg.DimTicks.Max)
		tasks = append(tasks, NewBlinkTask(row, col, glyph, offset))
	}
	return tasks
}

// Step implements engine.Task.
func (t *blinkTask) Step(w *World) (engine.Result[*World], error) {
	if t.wait > 0 {
		t.wait--
		return engine.Continue[*World](), nil
	}

	w.Canvas.DrawGlyph(t.row, t.col, t.glyph, blinkStyles[t.phase])
	t.wait = max(w.randRange(holdRange(w.Config.Stars, t.phase))-1, 0)
	t.phase = (t.phase + 1) % len(blinkStyles)
	return engine.Continue[*World](), nil
}
