// Package sprite implements the animated, movable visual entity used by the
// shooter: a sprite-sheet frame animator, a stepped motion controller and
// rectangular/circular collision tests behind one facade.
//
// An Entity is driven by timers on a clock.Scheduler. It is confined to the
// goroutine that runs the scheduler; none of its methods are safe for
// concurrent use.
//
// Every method that changes the entity returns a PreconditionError before
// Init. The plain getters (X, Y, Pos, Width, Height) return zero values
// instead.
package sprite

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/penguin-arcade/internal/clock"
	"github.com/vovakirdan/penguin-arcade/internal/core"
)

// DefaultInterval is the frame interval used when none is configured.
const DefaultInterval = 100 * time.Millisecond

// Entity is one visual element: position, visibility, a frame animation and
// a motion, all rendered through a Surface bound by Init.
type Entity struct {
	class    string
	logger   *log.Logger
	surface  Surface
	pos      core.Point
	hidden   bool
	rotation float64

	frames     int
	startFrame int
	interval   time.Duration

	anim   *animator
	motion *mover
}

// Option configures an Entity at construction.
type Option func(*Entity)

// WithFrames sets the number of frames in the sprite sheet (default 1).
func WithFrames(n int) Option {
	return func(e *Entity) { e.frames = n }
}

// WithStartFrame sets the frame shown by Show and after StopAnimation (default 1).
func WithStartFrame(n int) Option {
	return func(e *Entity) { e.startFrame = n }
}

// WithInterval sets the default time between animation frames.
func WithInterval(d time.Duration) Option {
	return func(e *Entity) { e.interval = d }
}

// WithLogger sets the logger used for lifecycle debug messages.
func WithLogger(l *log.Logger) Option {
	return func(e *Entity) { e.logger = l }
}

// New creates an unbound entity. Call Init before anything else.
func New(class string, sched clock.Scheduler, opts ...Option) *Entity {
	e := &Entity{
		class:      class,
		frames:     1,
		startFrame: 1,
		interval:   DefaultInterval,
	}
	for _, opt := range opts {
		opt(e)
	}

	if e.frames < 1 {
		e.frames = 1
	}
	e.startFrame = core.Clamp(e.startFrame, 1, e.frames)
	if e.interval <= 0 {
		e.interval = DefaultInterval
	}
	if e.logger == nil {
		e.logger = log.New(io.Discard)
	}

	e.anim = newAnimator(e, sched, e.frames, e.startFrame, e.interval)
	e.motion = newMover(e, sched)
	return e
}

// Init mounts the entity's surface in c. It must be called exactly once.
func (e *Entity) Init(c Container) error {
	if e.surface != nil {
		return &PreconditionError{Op: "init", Class: e.class, Err: ErrAlreadyBound}
	}

	s, err := c.Mount(e.class)
	if err != nil {
		return fmt.Errorf("sprite: init %q: %w", e.class, err)
	}

	e.surface = s
	e.surface.SetPosition(e.pos.X, e.pos.Y)
	e.anim.render()
	return nil
}

func (e *Entity) bound(op string) error {
	if e.surface == nil {
		return &PreconditionError{Op: op, Class: e.class, Err: ErrNotBound}
	}
	return nil
}

// Class returns the class name the entity was created with.
func (e *Entity) Class() string {
	return e.class
}

// Bound reports whether Init has succeeded.
func (e *Entity) Bound() bool {
	return e.surface != nil
}

// X returns the left edge position.
func (e *Entity) X() float64 {
	return e.pos.X
}

// Y returns the top edge position.
func (e *Entity) Y() float64 {
	return e.pos.Y
}

// Pos returns the top-left corner.
func (e *Entity) Pos() core.Point {
	return e.pos
}

// Width returns the rendered width, or 0 before Init.
func (e *Entity) Width() int {
	if e.surface == nil {
		return 0
	}
	w, _ := e.surface.Size()
	return w
}

// Height returns the rendered height, or 0 before Init.
func (e *Entity) Height() int {
	if e.surface == nil {
		return 0
	}
	_, h := e.surface.Size()
	return h
}

// Bounds returns the entity's bounding box.
func (e *Entity) Bounds() (core.Box, error) {
	if err := e.bound("bounds"); err != nil {
		return core.Box{}, err
	}
	w, h := e.surface.Size()
	return core.NewBox(e.pos.X, e.pos.Y, float64(w), float64(h)), nil
}

// SetPos moves the top-left corner to (x, y).
func (e *Entity) SetPos(x, y float64) error {
	if err := e.bound("set position"); err != nil {
		return err
	}
	e.setPos(core.Pt(x, y))
	return nil
}

// setPos is the only writer of the entity position.
func (e *Entity) setPos(p core.Point) {
	e.pos = p
	e.surface.SetPosition(p.X, p.Y)
}

// SetClass adds a class tag to the surface.
func (e *Entity) SetClass(name string) error {
	if err := e.bound("set class"); err != nil {
		return err
	}
	e.surface.AddClass(name)
	return nil
}

// RemoveClass removes a class tag from the surface.
func (e *Entity) RemoveClass(name string) error {
	if err := e.bound("remove class"); err != nil {
		return err
	}
	e.surface.RemoveClass(name)
	return nil
}

// SetStyle sets a named style property on the surface.
func (e *Entity) SetStyle(name, value string) error {
	if err := e.bound("set style"); err != nil {
		return err
	}
	e.surface.SetStyle(name, value)
	return nil
}

// SetText sets the debug overlay text.
func (e *Entity) SetText(text string) error {
	if err := e.bound("set text"); err != nil {
		return err
	}
	e.surface.SetText(text)
	return nil
}

// Show cancels any animation, shows the start frame and makes the entity visible.
func (e *Entity) Show() error {
	return e.ShowFrame(e.startFrame)
}

// ShowFrame cancels any animation, shows frame and makes the entity visible.
func (e *Entity) ShowFrame(frame int) error {
	if err := e.bound("show"); err != nil {
		return err
	}
	if frame < 1 || frame > e.frames {
		return &ConfigError{Op: "show", Field: "frame", Value: frame,
			Reason: fmt.Sprintf("outside sheet of %d frames", e.frames)}
	}
	e.anim.show(frame)
	e.hidden = false
	e.surface.RemoveClass(HiddenClass)
	return nil
}

// Hide suppresses rendering. Animation and motion keep running.
func (e *Entity) Hide() error {
	if err := e.bound("hide"); err != nil {
		return err
	}
	e.hidden = true
	e.surface.AddClass(HiddenClass)
	return nil
}

// Hidden reports whether Hide was called since the last Show.
func (e *Entity) Hidden() bool {
	return e.hidden
}

// Rotate sets the rotation transform in degrees, clockwise from vertical.
func (e *Entity) Rotate(deg float64) error {
	if err := e.bound("rotate"); err != nil {
		return err
	}
	e.rotation = deg
	e.surface.SetTransform(deg)
	return nil
}

// Rotation returns the last rotation passed to Rotate.
func (e *Entity) Rotation() float64 {
	return e.rotation
}

// CheckCollision reports whether other overlaps this entity using mode.
// Neither entity is modified.
func (e *Entity) CheckCollision(other *Entity, mode CollisionMode) (bool, error) {
	a, err := e.Bounds()
	if err != nil {
		return false, err
	}
	if other == nil {
		return false, &PreconditionError{Op: "check collision", Err: ErrNotBound}
	}
	b, err := other.Bounds()
	if err != nil {
		return false, err
	}
	return Overlap(a, b, mode), nil
}

// Frame returns the current frame index. In ModeLoop it already reads From
// while the surface still shows To after the wrap.
func (e *Entity) Frame() int {
	return e.anim.frame
}

// Frames returns the number of frames in the sprite sheet.
func (e *Entity) Frames() int {
	return e.frames
}

// Animate replaces the running frame animation with cfg.
func (e *Entity) Animate(cfg AnimateConfig) error {
	if err := e.bound("animate"); err != nil {
		return err
	}
	if err := e.anim.animate(cfg); err != nil {
		return err
	}
	e.logger.Debug("animate", "class", e.class, "mode", e.anim.mode,
		"from", e.anim.from, "to", e.anim.to, "interval", e.anim.interval)
	return nil
}

// StopAnimation cancels a running animation and shows the start frame.
// It does nothing when no animation is running.
func (e *Entity) StopAnimation() error {
	if err := e.bound("stop animation"); err != nil {
		return err
	}
	e.anim.stop()
	return nil
}

// Animating reports whether a frame animation timer is live.
func (e *Entity) Animating() bool {
	return e.anim.running()
}

// MoveTo replaces any in-flight motion with a stepped move toward target.
func (e *Entity) MoveTo(target core.Point, cfg MoveConfig) error {
	if err := e.bound("move"); err != nil {
		return err
	}
	if err := e.motion.moveTo(target, cfg); err != nil {
		return err
	}
	e.logger.Debug("move", "class", e.class, "from", e.pos, "to", target, "step", cfg.Step)
	return nil
}

// Stop cancels the in-flight motion, leaving the entity where it is.
func (e *Entity) Stop() error {
	if err := e.bound("stop"); err != nil {
		return err
	}
	e.motion.stop()
	return nil
}

// Moving reports whether a motion is in flight.
func (e *Entity) Moving() bool {
	return e.motion.moving()
}

// renderFrame points the surface background at frame.
func (e *Entity) renderFrame(frame int) {
	if e.surface == nil {
		return
	}
	w, _ := e.surface.Size()
	e.surface.SetBackgroundOffset(-(frame-1)*w, 0)
}
