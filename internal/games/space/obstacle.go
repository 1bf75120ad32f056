package space

import "github.com/vovakirdan/space-garbage/internal/core"

// Obstacle is a solid hazard occupying a rectangle of the canvas.
type Obstacle struct {
	Row, Col float64 // Top-left corner, fractional while falling
	Size     core.Size
	UID      int
}

// Corner returns the top-left corner.
func (o *Obstacle) Corner() core.Point {
	return core.Point{Row: o.Row, Col: o.Col}
}

// BoundingBox returns the collision rectangle: the visual footprint grown by
// one cell on each axis so a fast mover cannot slip between two ticks.
func (o *Obstacle) BoundingBox() (core.Point, core.Size) {
	size := o.Size.Normalized()
	return o.Corner(), core.Size{Rows: size.Rows + 1, Cols: size.Cols + 1}
}

// HasCollision reports whether a box with the given corner and size touches
// the obstacle. Pass a zero size to test a single point.
func (o *Obstacle) HasCollision(p core.Point, size core.Size) bool {
	corner, box := o.BoundingBox()
	return core.RectanglesOverlap(corner, box, p, size)
}

// Center returns the middle of the visual footprint.
func (o *Obstacle) Center() core.Point {
	return core.Point{
		Row: o.Row + float64(o.Size.Rows)/2,
		Col: o.Col + float64(o.Size.Cols)/2,
	}
}

// CollisionLedger records obstacles that have been hit. The task that
// detects a hit records it here; the task owning the obstacle reacts on its
// next step.
type CollisionLedger struct {
	hits map[*Obstacle]struct{}
}

// NewCollisionLedger creates an empty ledger.
func NewCollisionLedger() *CollisionLedger {
	return &CollisionLedger{hits: make(map[*Obstacle]struct{})}
}

// Record marks o as hit. Returns false if it was already recorded.
func (l *CollisionLedger) Record(o *Obstacle) bool {
	if _, ok := l.hits[o]; ok {
		return false
	}
	l.hits[o] = struct{}{}
	return true
}

// Contains reports whether o has been hit.
func (l *CollisionLedger) Contains(o *Obstacle) bool {
	_, ok := l.hits[o]
	return ok
}

// Len returns the number of distinct hits.
func (l *CollisionLedger) Len() int {
	return len(l.hits)
}
