// Package core provides fundamental types and utilities for the snake game.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

// Point represents a 2D cell coordinate. X is the column, Y is the row.
type Point struct {
	X, Y int
}

// Add returns the point translated by the given delta.
func (p Point) Add(d Point) Point {
	return Point{X: p.X + d.X, Y: p.Y + d.Y}
}

// Bounds describes the playable board. The playable interior is strictly
// inside the edges: row 0, column 0, row H and column W are reserved for the
// border and are not playable.
type Bounds struct {
	W, H int
}

// NewBounds creates board bounds with the given edge dimensions.
func NewBounds(w, h int) Bounds {
	return Bounds{W: w, H: h}
}

// Contains returns true if the point lies in the playable interior.
func (b Bounds) Contains(p Point) bool {
	return p.X > 0 && p.X < b.W && p.Y > 0 && p.Y < b.H
}

// InteriorCells returns the number of playable cells.
func (b Bounds) InteriorCells() int {
	w := b.W - 1
	h := b.H - 1
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return w * h
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
