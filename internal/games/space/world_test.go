package space

import (
	"math/rand"
	"testing"

	"github.com/vovakirdan/space-garbage/internal/config"
	"github.com/vovakirdan/space-garbage/internal/core"
	"github.com/vovakirdan/space-garbage/internal/engine"
	"github.com/vovakirdan/space-garbage/internal/frames"
)

// newTestWorld creates a world with built-in frames and default config.
func newTestWorld(t *testing.T, rows, cols int) *World {
	t.Helper()
	return newTestWorldWith(t, rows, cols, config.DefaultSpaceConfig())
}

func newTestWorldWith(t *testing.T, rows, cols int, cfg config.SpaceConfig) *World {
	t.Helper()
	return NewWorld(core.NewScreen(cols, rows), frames.Default(), cfg, rand.New(rand.NewSource(1)))
}

// step runs one task step and fails the test on error.
func step(t *testing.T, task Task, w *World) engine.Result[*World] {
	t.Helper()
	res, err := task.Step(w)
	if err != nil {
		t.Fatalf("Step() failed: %v", err)
	}
	return res
}

// fakeSounder records played sounds.
type fakeSounder struct {
	played []core.Sound
}

func (f *fakeSounder) Play(s core.Sound) {
	f.played = append(f.played, s)
}

func TestWorldObstacleRegistry(t *testing.T) {
	w := newTestWorld(t, 20, 40)

	a := w.AddObstacle(1, 1, core.Size{Rows: 2, Cols: 3})
	b := w.AddObstacle(10, 10, core.Size{})

	if a.UID == b.UID {
		t.Error("obstacles should get distinct UIDs")
	}
	if b.Size != (core.Size{Rows: 1, Cols: 1}) {
		t.Errorf("zero size should normalize to 1x1, got %+v", b.Size)
	}
	if got := w.Collision(core.Point{Row: 2, Col: 2}, core.Size{}); got != a {
		t.Errorf("Collision() = %v, want first obstacle", got)
	}

	w.RemoveObstacle(a)
	if len(w.Obstacles) != 1 || w.Obstacles[0] != b {
		t.Errorf("RemoveObstacle left %v", w.Obstacles)
	}
	if got := w.Collision(core.Point{Row: 2, Col: 2}, core.Size{}); got != nil {
		t.Errorf("removed obstacle still collides: %v", got)
	}
}

func TestWorldStartsAtConfiguredYear(t *testing.T) {
	w := newTestWorld(t, 20, 40)
	if w.Year != 1957 {
		t.Errorf("Year = %d, want 1957", w.Year)
	}
	if w.Score() != 0 {
		t.Errorf("Score() = %d, want 0", w.Score())
	}
}

func TestRandRange(t *testing.T) {
	w := newTestWorld(t, 20, 40)
	r := config.TickRange{Min: 2, Max: 4}
	for i := 0; i < 200; i++ {
		if v := w.randRange(r); v < 2 || v > 4 {
			t.Fatalf("randRange() = %d, out of [2, 4]", v)
		}
	}
	if v := w.randRange(config.TickRange{Min: 3, Max: 3}); v != 3 {
		t.Errorf("randRange(3..3) = %d", v)
	}
	if v := w.randBetween(5, 1); v != 5 {
		t.Errorf("randBetween(5, 1) = %d, want lower bound", v)
	}
}
