// Package stage is the terminal rendering surface for sprite entities.
// A Stage mounts one Element per entity and composites every visible element
// into a core.Screen, cutting the current frame out of a horizontal rune-art
// sprite sheet the same way a background offset selects a frame on a web page.
package stage

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/vovakirdan/penguin-arcade/internal/core"
)

// Transparent is the rune that leaves the cell underneath untouched.
const Transparent = ' '

// ErrBadSheet is returned for frames that do not match the sheet size.
var ErrBadSheet = errors.New("stage: malformed sprite sheet")

// Sheet is a horizontal strip of equally sized rune-art frames.
// Frame n (1-based) occupies columns [(n-1)*W, n*W).
type Sheet struct {
	W, H   int
	Color  core.Color
	frames int
	rows   [][]rune
}

// NewSheet builds a sheet from frames given as H rows of exactly W runes.
func NewSheet(w, h int, color core.Color, frames [][]string) (*Sheet, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("%w: size %dx%d", ErrBadSheet, w, h)
	}
	if len(frames) == 0 {
		return nil, fmt.Errorf("%w: no frames", ErrBadSheet)
	}

	rows := make([][]rune, h)
	for i := range rows {
		rows[i] = make([]rune, 0, w*len(frames))
	}

	for n, frame := range frames {
		if len(frame) != h {
			return nil, fmt.Errorf("%w: frame %d has %d rows, expected %d", ErrBadSheet, n+1, len(frame), h)
		}
		for y, line := range frame {
			if utf8.RuneCountInString(line) != w {
				return nil, fmt.Errorf("%w: frame %d row %d is %d wide, expected %d",
					ErrBadSheet, n+1, y, utf8.RuneCountInString(line), w)
			}
			rows[y] = append(rows[y], []rune(line)...)
		}
	}

	return &Sheet{W: w, H: h, Color: color, frames: len(frames), rows: rows}, nil
}

// Frames returns the number of frames in the sheet.
func (s *Sheet) Frames() int {
	return s.frames
}

// At returns the rune at sheet column col and row row, or Transparent when
// the position is outside the sheet.
func (s *Sheet) At(col, row int) rune {
	if row < 0 || row >= s.H || col < 0 || col >= len(s.rows[row]) {
		return Transparent
	}
	return s.rows[row][col]
}
