package stage

import (
	"errors"
	"fmt"
	"sort"

	"github.com/vovakirdan/penguin-arcade/internal/core"
	"github.com/vovakirdan/penguin-arcade/internal/sprite"
)

// ErrUnknownClass is returned by Mount for a class with no sheet defined.
var ErrUnknownClass = errors.New("stage: no sprite sheet for class")

// Stage owns the sheets and the mounted elements of one game field.
// It implements sprite.Container.
type Stage struct {
	sheets   map[string]*Sheet
	layers   map[string]int
	elements []*Element
}

var _ sprite.Container = (*Stage)(nil)

// New creates an empty stage.
func New() *Stage {
	return &Stage{
		sheets: make(map[string]*Sheet),
		layers: make(map[string]int),
	}
}

// Define registers the sheet used for elements of class. Elements of a
// higher layer are drawn on top; ties keep mount order.
func (s *Stage) Define(class string, sheet *Sheet, layer int) {
	s.sheets[class] = sheet
	s.layers[class] = layer
}

// Mount creates a new element for class.
func (s *Stage) Mount(class string) (sprite.Surface, error) {
	sheet, ok := s.sheets[class]
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownClass, class)
	}

	el := newElement(class, sheet)
	s.elements = append(s.elements, el)
	sort.SliceStable(s.elements, func(i, j int) bool {
		return s.layers[s.elements[i].class] < s.layers[s.elements[j].class]
	})
	return el, nil
}

// Elements returns the mounted elements in draw order.
func (s *Stage) Elements() []*Element {
	return s.elements
}

// Render draws every visible element into dst.
func (s *Stage) Render(dst *core.Screen) {
	for _, el := range s.elements {
		el.Draw(dst)
	}
}
