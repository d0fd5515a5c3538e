// Package core provides fundamental types and utilities for the arcade platform.
// It contains no terminal dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// Point is a position in surface cells. Fractional values are allowed so
// stepped motion can accumulate sub-cell progress.
type Point struct {
	X, Y float64
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Vec converts the point to a gonum vector.
func (p Point) Vec() r2.Vec {
	return r2.Vec{X: p.X, Y: p.Y}
}

// Box is a floating-point axis-aligned bounding box (top-left plus size).
type Box struct {
	X, Y float64
	W, H float64
}

// NewBox creates a box from its top-left corner and dimensions.
func NewBox(x, y, w, h float64) Box {
	return Box{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (b Box) Right() float64 {
	return b.X + b.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (b Box) Bottom() float64 {
	return b.Y + b.H
}

// Corners returns the four corners: top-left, top-right, bottom-left, bottom-right.
func (b Box) Corners() [4]Point {
	return [4]Point{
		{b.X, b.Y},
		{b.Right(), b.Y},
		{b.X, b.Bottom()},
		{b.Right(), b.Bottom()},
	}
}

// PointInRect reports whether p lies inside b. Both edges are inclusive.
func PointInRect(p Point, b Box) bool {
	return p.X >= b.X && p.X <= b.Right() && p.Y >= b.Y && p.Y <= b.Bottom()
}

// Distance returns the Euclidean distance between two points.
func Distance(p1, p2 Point) float64 {
	return r2.Norm(r2.Sub(p1.Vec(), p2.Vec()))
}

// AngleBetween returns the angle, measured from the vertical axis, of the
// line from origin to target: atan(|dx| / |dy|).
// A purely horizontal line (dy == 0) yields Pi/2 instead of dividing by zero.
func AngleBetween(origin, target Point) float64 {
	dx := math.Abs(target.X - origin.X)
	dy := math.Abs(target.Y - origin.Y)
	if dy == 0 {
		return math.Pi / 2
	}
	return math.Atan(dx / dy)
}

// StepToward moves from toward to by step along the AngleBetween trajectory.
// Each axis moves in the direction of the target; an axis that is already
// aligned with the target is left untouched.
func StepToward(from, to Point, step float64) Point {
	sin, cos := math.Sincos(AngleBetween(from, to))
	next := from

	switch {
	case from.Y > to.Y:
		next.Y = from.Y - cos*step
	case from.Y < to.Y:
		next.Y = from.Y + cos*step
	}

	switch {
	case from.X > to.X:
		next.X = from.X - sin*step
	case from.X < to.X:
		next.X = from.X + sin*step
	}

	return next
}

// Rect represents an integer axis-aligned rectangle in screen cells.
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

// Contains returns true if the cell (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Box converts the cell rectangle to a floating-point box.
func (r Rect) Box() Box {
	return NewBox(float64(r.X), float64(r.Y), float64(r.W), float64(r.H))
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
func ClampF(val, min, max float64) float64 {
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
