package shooter

import (
	"github.com/vovakirdan/penguin-arcade/internal/core"
)

// cell addresses one slot of the target grid.
type cell struct {
	row, col int
}

// grid holds the target bubbles. Odd rows are shifted right by half a slot,
// so every bubble touches up to six neighbours.
type grid struct {
	rows, cols int
	slots      [][]*bubble
}

func newGrid(rows, cols int) *grid {
	slots := make([][]*bubble, rows)
	for r := range slots {
		slots[r] = make([]*bubble, cols)
	}
	return &grid{rows: rows, cols: cols, slots: slots}
}

// layout returns the grid size and slot positions that fit field.
func layout(field core.Box, bubbleW, gap int) (cols int, pos func(cell) core.Point) {
	pitch := bubbleW + gap
	cols = (int(field.W) + gap - pitch/2) / pitch
	if cols < 1 {
		cols = 1
	}

	pos = func(c cell) core.Point {
		x := field.X + float64(c.col*pitch)
		if c.row%2 == 1 {
			x += float64(pitch / 2)
		}
		return core.Pt(x, field.Y+float64(c.row))
	}
	return cols, pos
}

func (gr *grid) get(c cell) *bubble {
	if c.row < 0 || c.row >= gr.rows || c.col < 0 || c.col >= gr.cols {
		return nil
	}
	return gr.slots[c.row][c.col]
}

func (gr *grid) set(c cell, b *bubble) {
	gr.slots[c.row][c.col] = b
}

// neighbours returns the adjacent slots of c.
func (gr *grid) neighbours(c cell) []cell {
	// Rows above and below overlap columns col-1..col on even rows and
	// col..col+1 on odd rows.
	lo, hi := c.col-1, c.col
	if c.row%2 == 1 {
		lo, hi = c.col, c.col+1
	}

	out := []cell{{c.row, c.col - 1}, {c.row, c.col + 1}}
	for _, r := range []int{c.row - 1, c.row + 1} {
		out = append(out, cell{r, lo}, cell{r, hi})
	}
	return out
}

// cluster returns start and every bubble of the same color connected to it.
func (gr *grid) cluster(start cell) []cell {
	first := gr.get(start)
	if first == nil {
		return nil
	}

	seen := map[cell]bool{start: true}
	queue := []cell{start}
	var out []cell

	for len(queue) > 0 {
		c := queue[0]
		queue = queue[1:]
		out = append(out, c)

		for _, n := range gr.neighbours(c) {
			if seen[n] {
				continue
			}
			b := gr.get(n)
			if b == nil || b.color != first.color {
				continue
			}
			seen[n] = true
			queue = append(queue, n)
		}
	}
	return out
}

// each calls fn for every occupied slot.
func (gr *grid) each(fn func(cell, *bubble)) {
	for r, row := range gr.slots {
		for col, b := range row {
			if b != nil {
				fn(cell{r, col}, b)
			}
		}
	}
}

// count returns the number of occupied slots.
func (gr *grid) count() int {
	n := 0
	gr.each(func(cell, *bubble) { n++ })
	return n
}

// colors returns the distinct colors still on the grid, in first-seen order.
func (gr *grid) colors() []string {
	seen := make(map[string]bool)
	var out []string
	gr.each(func(_ cell, b *bubble) {
		if !seen[b.color] {
			seen[b.color] = true
			out = append(out, b.color)
		}
	})
	return out
}
