package sprite

import (
	"errors"
	"testing"
	"time"

	"github.com/vovakirdan/penguin-arcade/internal/clock"
)

// fakeSurface records every call made by an entity.
type fakeSurface struct {
	w, h     int
	x, y     float64
	offsets  []int
	rotation float64
	styles   map[string]string
	classes  map[string]bool
	text     string
}

func newFakeSurface(w, h int) *fakeSurface {
	return &fakeSurface{
		w:       w,
		h:       h,
		styles:  make(map[string]string),
		classes: make(map[string]bool),
	}
}

func (s *fakeSurface) Size() (int, int)             { return s.w, s.h }
func (s *fakeSurface) SetPosition(x, y float64)     { s.x, s.y = x, y }
func (s *fakeSurface) SetBackgroundOffset(x, _ int) { s.offsets = append(s.offsets, x) }
func (s *fakeSurface) SetTransform(deg float64)     { s.rotation = deg }
func (s *fakeSurface) SetStyle(name, value string)  { s.styles[name] = value }
func (s *fakeSurface) AddClass(name string)         { s.classes[name] = true }
func (s *fakeSurface) RemoveClass(name string)      { delete(s.classes, name) }
func (s *fakeSurface) SetText(text string)          { s.text = text }

// frames converts the recorded background offsets back to frame numbers.
func (s *fakeSurface) frames() []int {
	out := make([]int, len(s.offsets))
	for i, off := range s.offsets {
		out[i] = -off/s.w + 1
	}
	return out
}

func (s *fakeSurface) resetFrames() {
	s.offsets = nil
}

type fakeContainer struct {
	surface *fakeSurface
	err     error
	mounted []string
}

func (c *fakeContainer) Mount(class string) (Surface, error) {
	if c.err != nil {
		return nil, c.err
	}
	c.mounted = append(c.mounted, class)
	return c.surface, nil
}

const tick = 16 * time.Millisecond

// newBoundEntity creates an entity mounted on a w x h fake surface.
func newBoundEntity(t *testing.T, w, h int, opts ...Option) (*Entity, *fakeSurface, *clock.Loop) {
	t.Helper()

	loop := clock.NewLoop()
	surf := newFakeSurface(w, h)
	e := New("test", loop, opts...)
	if err := e.Init(&fakeContainer{surface: surf}); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	return e, surf, loop
}

func assertConfigError(t *testing.T, err error, field string) {
	t.Helper()

	var cerr *ConfigError
	if !errors.As(err, &cerr) {
		t.Fatalf("expected *ConfigError, got %v", err)
	}
	if cerr.Field != field {
		t.Errorf("ConfigError.Field = %q, expected %q", cerr.Field, field)
	}
	if !errors.Is(err, ErrInvalidConfig) {
		t.Error("ConfigError should unwrap to ErrInvalidConfig")
	}
}
