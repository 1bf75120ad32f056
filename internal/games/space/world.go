package space

import (
	"math/rand"
	"slices"

	"github.com/vovakirdan/space-garbage/internal/config"
	"github.com/vovakirdan/space-garbage/internal/core"
	"github.com/vovakirdan/space-garbage/internal/engine"
	"github.com/vovakirdan/space-garbage/internal/frames"
)

// Task is one animated entity or behavior stepped once per tick.
type Task = engine.Task[*World]

// World is the shared simulation state passed to every task step.
//
// Each field has a single writer: the ship task owns Ship, debris tasks own
// their obstacles, the year clock owns Year. Everything else only reads.
type World struct {
	Canvas   *core.Screen
	Frames   frames.Set
	Config   config.SpaceConfig
	Schedule *config.Schedule
	Rand     *rand.Rand
	Sound    core.Sounder

	Input     core.InputFrame // Controls polled for the current tick
	Ship      Ship
	Obstacles []*Obstacle
	Ledger    *CollisionLedger
	Year      int
	GameOver  bool

	nextUID int
}

// NewWorld creates a world drawing on canvas.
func NewWorld(canvas *core.Screen, set frames.Set, cfg config.SpaceConfig, rng *rand.Rand) *World {
	return &World{
		Canvas:   canvas,
		Frames:   set,
		Config:   cfg,
		Schedule: config.NewSchedule(cfg.Timeline),
		Rand:     rng,
		Sound:    core.SilentSounder{},
		Ledger:   NewCollisionLedger(),
		Year:     cfg.Timeline.StartYear,
	}
}

// Rows returns the canvas height.
func (w *World) Rows() int { return w.Canvas.Height() }

// Cols returns the canvas width.
func (w *World) Cols() int { return w.Canvas.Width() }

// Score is the number of distinct obstacles shot down.
func (w *World) Score() int { return w.Ledger.Len() }

// AddObstacle registers a new hazard and returns it.
func (w *World) AddObstacle(row, col float64, size core.Size) *Obstacle {
	w.nextUID++
	o := &Obstacle{
		Row:  row,
		Col:  col,
		Size: size.Normalized(),
		UID:  w.nextUID,
	}
	w.Obstacles = append(w.Obstacles, o)
	return o
}

// RemoveObstacle drops a hazard from the registry.
func (w *World) RemoveObstacle(o *Obstacle) {
	w.Obstacles = slices.DeleteFunc(w.Obstacles, func(x *Obstacle) bool {
		return x == o
	})
}

// Collision returns the first registered obstacle hit by the given box.
func (w *World) Collision(p core.Point, size core.Size) *Obstacle {
	for _, o := range w.Obstacles {
		if o.HasCollision(p, size) {
			return o
		}
	}
	return nil
}

// play raises a sound if a sounder is attached.
func (w *World) play(s core.Sound) {
	if w.Sound != nil {
		w.Sound.Play(s)
	}
}

// randRange returns a random int in the inclusive range.
func (w *World) randRange(r config.TickRange) int {
	if r.Max <= r.Min {
		return r.Min
	}
	return r.Min + w.Rand.Intn(r.Max-r.Min+1)
}

// randBetween returns a random int in [lo, hi], or lo if the range is empty.
func (w *World) randBetween(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + w.Rand.Intn(hi-lo+1)
}
