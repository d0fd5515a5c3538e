package stage

import (
	"math"

	"github.com/vovakirdan/penguin-arcade/internal/core"
	"github.com/vovakirdan/penguin-arcade/internal/sprite"
)

// Element is one mounted surface. It implements sprite.Surface.
type Element struct {
	class    string
	sheet    *Sheet
	x, y     float64
	offX     int
	offY     int
	rotation float64
	styles   map[string]string
	classes  map[string]bool
	text     string
}

var _ sprite.Surface = (*Element)(nil)

func newElement(class string, sheet *Sheet) *Element {
	return &Element{
		class:   class,
		sheet:   sheet,
		styles:  make(map[string]string),
		classes: map[string]bool{class: true},
	}
}

// Size returns the size of one frame.
func (e *Element) Size() (int, int) {
	return e.sheet.W, e.sheet.H
}

func (e *Element) SetPosition(x, y float64) {
	e.x, e.y = x, y
}

func (e *Element) SetBackgroundOffset(x, y int) {
	e.offX, e.offY = x, y
}

func (e *Element) SetTransform(rotationDeg float64) {
	e.rotation = rotationDeg
}

func (e *Element) SetStyle(name, value string) {
	if value == "" {
		delete(e.styles, name)
		return
	}
	e.styles[name] = value
}

func (e *Element) AddClass(name string) {
	e.classes[name] = true
}

func (e *Element) RemoveClass(name string) {
	delete(e.classes, name)
}

func (e *Element) SetText(text string) {
	e.text = text
}

// Class returns the class the element was mounted with.
func (e *Element) Class() string { return e.class }

// HasClass reports whether the element carries the class tag.
func (e *Element) HasClass(name string) bool { return e.classes[name] }

// Style returns a style property, or "" if unset.
func (e *Element) Style(name string) string { return e.styles[name] }

// Text returns the overlay text.
func (e *Element) Text() string { return e.text }

// Position returns the top-left corner.
func (e *Element) Position() core.Point { return core.Pt(e.x, e.y) }

// Offset returns the background offset.
func (e *Element) Offset() (int, int) { return e.offX, e.offY }

// Rotation returns the rotation in degrees.
func (e *Element) Rotation() float64 { return e.rotation }

// Visible reports whether the element is drawn.
func (e *Element) Visible() bool { return !e.classes[sprite.HiddenClass] }

// color resolves the "color" style, falling back to the sheet color.
func (e *Element) color() core.Color {
	if name, ok := e.styles["color"]; ok {
		if c, ok := core.ParseColor(name); ok {
			return c
		}
	}
	return e.sheet.Color
}

// source maps a cell of the element box to a cell of the unrotated frame.
// Rotation uses nearest-cell inverse mapping around the box center.
func (e *Element) source(cx, cy int) (int, int) {
	if e.rotation == 0 {
		return cx, cy
	}

	w, h := float64(e.sheet.W), float64(e.sheet.H)
	dx := float64(cx) + 0.5 - w/2
	dy := float64(cy) + 0.5 - h/2

	sin, cos := math.Sincos(-e.rotation * math.Pi / 180)
	sx := dx*cos - dy*sin + w/2
	sy := dx*sin + dy*cos + h/2

	return int(math.Floor(sx)), int(math.Floor(sy))
}

// Draw composites the element into dst. Hidden elements draw nothing.
func (e *Element) Draw(dst *core.Screen) {
	if !e.Visible() {
		return
	}

	ox := int(math.Round(e.x))
	oy := int(math.Round(e.y))
	col := e.color()

	for cy := 0; cy < e.sheet.H; cy++ {
		for cx := 0; cx < e.sheet.W; cx++ {
			sx, sy := e.source(cx, cy)
			if sx < 0 || sx >= e.sheet.W || sy < 0 || sy >= e.sheet.H {
				continue
			}
			r := e.sheet.At(sx-e.offX, sy-e.offY)
			if r == Transparent {
				continue
			}
			dst.SetColored(ox+cx, oy+cy, r, col)
		}
	}

	if e.text != "" {
		tx := ox + (e.sheet.W-len([]rune(e.text)))/2
		dst.DrawTextColored(tx, oy+e.sheet.H/2, e.text, core.ColorBrightWhite)
	}
}
