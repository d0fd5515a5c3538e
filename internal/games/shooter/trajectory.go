package shooter

import (
	"math"

	"github.com/vovakirdan/penguin-arcade/internal/core"
)

// trajectory returns the first point where a bubble whose top-left corner is
// at from, fired deg degrees clockwise from vertical, touches the field: the
// ceiling or one of the side walls. w is the bubble width, so the right wall
// stops the bubble's left edge at field.Right()-w. wall reports a side hit.
func trajectory(from core.Point, deg float64, field core.Box, w float64) (to core.Point, wall bool) {
	left := field.X
	right := field.Right() - w
	top := field.Y

	dy := from.Y - top
	if dy <= 0 {
		return core.Pt(from.X, top), false
	}

	tan := math.Tan(deg * math.Pi / 180)
	x := from.X + tan*dy

	switch {
	case x < left:
		return core.Pt(left, from.Y-(from.X-left)/-tan), true
	case x > right:
		return core.Pt(right, from.Y-(right-from.X)/tan), true
	}
	return core.Pt(x, top), false
}
