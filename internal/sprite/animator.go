package sprite

import (
	"fmt"
	"time"

	"github.com/vovakirdan/penguin-arcade/internal/clock"
)

// Mode is the replay policy of a frame animation.
type Mode int

const (
	ModeNone   Mode = iota // Play once and stop at the last frame
	ModeLoop               // Restart from the first frame after the last one
	ModeCircle             // Reverse direction at each end, never stops
)

// String returns the config name of the mode.
func (m Mode) String() string {
	switch m {
	case ModeNone:
		return "none"
	case ModeLoop:
		return "loop"
	case ModeCircle:
		return "circle"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// ParseMode converts a config name ("", "none", "loop", "circle") to a Mode.
func ParseMode(name string) (Mode, error) {
	switch name {
	case "", "none":
		return ModeNone, nil
	case "loop":
		return ModeLoop, nil
	case "circle":
		return ModeCircle, nil
	default:
		return ModeNone, fmt.Errorf("sprite: unknown animation mode %q", name)
	}
}

// Direction is the way frames advance through the sheet.
type Direction int

const (
	Forward Direction = iota
	Backward
)

func (d Direction) reverse() Direction {
	if d == Forward {
		return Backward
	}
	return Forward
}

// AnimateConfig describes one frame animation. Frames are numbered from 1,
// so the zero value of From and To means "use the default".
type AnimateConfig struct {
	Mode       Mode
	From       int           // First frame; 0 = current frame
	To         int           // Last frame; 0 = number of frames in the sheet
	Interval   time.Duration // Time between frames; 0 = entity default
	OnComplete func()        // Called once when a ModeNone animation ends
}

// animator is the frame-animation state machine of one entity.
type animator struct {
	entity *Entity
	slot   *clock.Slot

	frames          int
	startFrame      int
	defaultInterval time.Duration

	frame      int
	direction  Direction
	initial    Direction
	mode       Mode
	from, to   int
	interval   time.Duration
	onComplete func()
}

// animationRun is a validated AnimateConfig with defaults resolved.
type animationRun struct {
	mode      Mode
	from, to  int
	direction Direction
	interval  time.Duration
}

func newAnimator(e *Entity, sched clock.Scheduler, frames, start int, interval time.Duration) *animator {
	return &animator{
		entity:          e,
		slot:            clock.NewSlot(sched),
		frames:          frames,
		startFrame:      start,
		defaultInterval: interval,
		frame:           start,
		from:            start,
		to:              frames,
	}
}

// resolve fills defaults and validates cfg without touching any state.
func (a *animator) resolve(cfg AnimateConfig) (animationRun, error) {
	const op = "animate"

	current := a.frame
	if a.slot.Armed() {
		// The implicit stop resets to the start frame first.
		current = a.startFrame
	}

	run := animationRun{
		mode:     cfg.Mode,
		from:     cfg.From,
		to:       cfg.To,
		interval: cfg.Interval,
	}
	if run.from == 0 {
		run.from = current
	}
	if run.to == 0 {
		run.to = a.frames
	}
	if run.interval == 0 {
		run.interval = a.defaultInterval
	}

	switch {
	case run.mode < ModeNone || run.mode > ModeCircle:
		return run, &ConfigError{Op: op, Field: "mode", Value: run.mode, Reason: "unknown mode"}
	case run.from < 1 || run.from > a.frames:
		return run, &ConfigError{Op: op, Field: "from", Value: run.from,
			Reason: fmt.Sprintf("outside sheet of %d frames", a.frames)}
	case run.to < 1 || run.to > a.frames:
		return run, &ConfigError{Op: op, Field: "to", Value: run.to,
			Reason: fmt.Sprintf("outside sheet of %d frames", a.frames)}
	case run.from == run.to:
		return run, &ConfigError{Op: op, Field: "to", Value: run.to, Reason: "equals from, nothing to play"}
	case run.interval <= 0:
		return run, &ConfigError{Op: op, Field: "interval", Value: run.interval, Reason: "must be positive"}
	}

	run.direction = Forward
	if cfg.To != 0 && run.from >= run.to {
		run.direction = Backward
	}
	return run, nil
}

// animate replaces the running animation with cfg.
func (a *animator) animate(cfg AnimateConfig) error {
	run, err := a.resolve(cfg)
	if err != nil {
		return err
	}

	a.stop()

	a.mode = run.mode
	a.from = run.from
	a.to = run.to
	a.direction = run.direction
	a.initial = run.direction
	a.interval = run.interval
	a.onComplete = cfg.OnComplete

	a.frame = a.from
	a.render()
	a.slot.Arm(a.interval, a.tick)
	return nil
}

// boundary is the frame at which the current pass ends.
func (a *animator) boundary() int {
	if a.mode == ModeCircle && a.direction != a.initial {
		return a.from
	}
	return a.to
}

func (a *animator) tick() {
	if a.direction == Forward {
		a.frame++
	} else {
		a.frame--
	}
	a.render()

	if a.frame == a.boundary() {
		switch a.mode {
		case ModeCircle:
			a.direction = a.direction.reverse()
		case ModeLoop:
			a.frame = a.from
		default:
			done := a.onComplete
			a.onComplete = nil
			a.entity.logger.Debug("animation complete", "class", a.entity.class, "frame", a.frame)
			if done != nil {
				done()
			}
			return
		}
	}

	a.slot.Arm(a.interval, a.tick)
}

// stop cancels a running animation and shows the start frame again.
// Returns false, changing nothing, when no animation is running.
func (a *animator) stop() bool {
	if !a.slot.Disarm() {
		return false
	}
	a.frame = a.startFrame
	a.onComplete = nil
	a.render()
	return true
}

// show cancels any running animation and displays frame as is.
func (a *animator) show(frame int) {
	a.slot.Disarm()
	a.onComplete = nil
	a.frame = frame
	a.render()
}

func (a *animator) running() bool {
	return a.slot.Armed()
}

func (a *animator) render() {
	a.entity.renderFrame(a.frame)
}
