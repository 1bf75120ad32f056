package space

import (
	"fmt"

	"github.com/vovakirdan/space-garbage/internal/engine"
)

// hudTask shows the year, its headline and the score in the bottom-left
// corner of the canvas, erasing the previous text before each redraw.
type hudTask struct {
	lines []string
}

// NewHUDTask creates the year and score readout.
func NewHUDTask() Task {
	return &hudTask{}
}

// HUDLines formats the readout for a year and score.
func HUDLines(year int, phrase string, score int) []string {
	yearLine := fmt.Sprintf("year: %d", year)
	if phrase != "" {
		yearLine += " - " + phrase
	}
	return []string{yearLine, fmt.Sprintf("score: %d", score)}
}

// Step implements engine.Task.
func (t *hudTask) Step(w *World) (engine.Result[*World], error) {
	row, col := w.Rows()-len(t.lines)-1, 2
	if t.lines != nil {
		w.Canvas.DrawFrame(row, col, t.lines, true)
	}

	t.lines = HUDLines(w.Year, w.Schedule.Phrase(w.Year), w.Score())
	row = w.Rows() - len(t.lines) - 1
	w.Canvas.DrawFrame(row, col, t.lines, false)
	return engine.Continue[*World](), nil
}
