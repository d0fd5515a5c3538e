package sprite

import (
	"github.com/vovakirdan/penguin-arcade/internal/core"
)

// CollisionMode selects the overlap test used by CheckCollision.
type CollisionMode int

const (
	CollideRect   CollisionMode = iota // Axis-aligned bounding boxes
	CollideCircle                      // Circles inscribed in square boxes
)

// String returns the config name of the mode.
func (m CollisionMode) String() string {
	if m == CollideCircle {
		return "circle"
	}
	return "rect"
}

// RectOverlap reports whether two boxes share at least one point.
// Edges are inclusive, so boxes that only touch collide. The test is
// symmetric: it also catches crossings where no corner of either box lies
// inside the other.
func RectOverlap(a, b core.Box) bool {
	return a.X <= b.Right() && b.X <= a.Right() &&
		a.Y <= b.Bottom() && b.Y <= a.Bottom()
}

// CircleOverlap treats each box as a circle with radius half its width,
// centered at (x - r, y - r), and reports whether the circles touch or
// overlap. Boxes are assumed square; other shapes give an approximation.
func CircleOverlap(a, b core.Box) bool {
	ra := a.W / 2
	rb := b.W / 2

	ca := core.Pt(a.X-ra, a.Y-ra)
	cb := core.Pt(b.X-rb, b.Y-rb)

	return ra+rb >= core.Distance(ca, cb)
}

// Overlap dispatches to the test selected by mode.
func Overlap(a, b core.Box, mode CollisionMode) bool {
	if mode == CollideCircle {
		return CircleOverlap(a, b)
	}
	return RectOverlap(a, b)
}
