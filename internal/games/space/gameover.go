package space

import "github.com/vovakirdan/space-garbage/internal/engine"

// gameOverTask marks the world as over and keeps the banner drawn in the
// middle of the canvas forever.
type gameOverTask struct{}

// NewGameOverTask creates the game over banner.
func NewGameOverTask() Task {
	return gameOverTask{}
}

// Step implements engine.Task.
func (gameOverTask) Step(w *World) (engine.Result[*World], error) {
	w.GameOver = true

	f := w.Frames.GameOver
	row := float64((w.Rows() - f.Rows()) / 2)
	col := float64((w.Cols() - f.Cols()) / 2)
	f.Draw(w.Canvas, row, col)
	return engine.Continue[*World](), nil
}
