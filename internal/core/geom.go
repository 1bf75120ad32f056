// Package core provides fundamental types and utilities for the simulation.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

// Rect represents an axis-aligned bounding box in whole screen cells.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Intersects returns true if this rectangle overlaps with another.
func (r Rect) Intersects(other Rect) bool {
	return RectanglesOverlap(
		Point{Row: float64(r.Y), Col: float64(r.X)}, Size{Rows: r.H, Cols: r.W},
		Point{Row: float64(other.Y), Col: float64(other.X)}, Size{Rows: other.H, Cols: other.W},
	)
}

// Contains returns true if the point (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Center returns the center point of the rectangle.
func (r Rect) Center() (int, int) {
	return r.X + r.W/2, r.Y + r.H/2
}

// Point is a grid position. Rows grow downward, columns grow to the right.
// Coordinates may be fractional while an entity is in motion.
type Point struct {
	Row, Col float64
}

// Size is a rectangular extent measured in cells.
type Size struct {
	Rows, Cols int
}

// Normalized returns the size with both extents raised to at least one cell.
func (s Size) Normalized() Size {
	return Size{Rows: Max(s.Rows, 1), Cols: Max(s.Cols, 1)}
}

// PointInRect reports whether p lies inside the rectangle with the given
// top-left corner and size. Both axes are half-open: a rectangle covers
// [corner, corner+size).
func PointInRect(corner Point, size Size, p Point) bool {
	size = size.Normalized()
	rowsOK := corner.Row <= p.Row && p.Row < corner.Row+float64(size.Rows)
	colsOK := corner.Col <= p.Col && p.Col < corner.Col+float64(size.Cols)
	return rowsOK && colsOK
}

// RectanglesOverlap reports whether two rectangles share at least one point.
// Degenerate sizes are treated as a single cell, so a rectangle always
// overlaps itself. The test is symmetric and covers partial overlap, full
// containment and crossing rectangles.
func RectanglesOverlap(cornerA Point, sizeA Size, cornerB Point, sizeB Size) bool {
	sizeA = sizeA.Normalized()
	sizeB = sizeB.Normalized()

	if cornerA.Row >= cornerB.Row+float64(sizeB.Rows) || cornerB.Row >= cornerA.Row+float64(sizeA.Rows) {
		return false
	}
	if cornerA.Col >= cornerB.Col+float64(sizeB.Cols) || cornerB.Col >= cornerA.Col+float64(sizeA.Cols) {
		return false
	}
	return true
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// ClampF restricts a float64 value to be within [min, max].
// If max < min the lower bound wins.
func ClampF(val, min, max float64) float64 {
	if val > max {
		val = max
	}
	if val < min {
		val = min
	}
	return val
}

// Abs returns the absolute value of an integer.
func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
