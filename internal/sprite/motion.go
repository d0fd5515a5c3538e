package sprite

import (
	"math"
	"time"

	"github.com/vovakirdan/penguin-arcade/internal/clock"
	"github.com/vovakirdan/penguin-arcade/internal/core"
)

// MoveConfig describes one stepped move toward a target point.
type MoveConfig struct {
	Step       float64       // Cells covered per tick, must be > 0
	Interval   time.Duration // Time between steps, must be > 0
	OnComplete func(*Entity) // Called once after the entity snaps onto the target
	OnStep     func(arg any) // Called after every intermediate step
	StepArg    any           // Passed to OnStep; nil passes the entity itself
}

// motionState is the in-flight move of one entity.
type motionState struct {
	origin     core.Point
	target     core.Point
	step       float64
	interval   time.Duration
	onComplete func(*Entity)
	onStep     func(any)
	stepArg    any
	active     bool
	steps      int
}

// mover is the stepped-motion state machine of one entity.
type mover struct {
	entity *Entity
	slot   *clock.Slot
	state  *motionState
}

func newMover(e *Entity, sched clock.Scheduler) *mover {
	return &mover{entity: e, slot: clock.NewSlot(sched)}
}

func validateMove(target core.Point, cfg MoveConfig) error {
	const op = "move"

	switch {
	case !finite(target.X) || !finite(target.Y):
		return &ConfigError{Op: op, Field: "target", Value: target, Reason: "must be finite"}
	case !finite(cfg.Step) || cfg.Step <= 0:
		return &ConfigError{Op: op, Field: "step", Value: cfg.Step, Reason: "must be a positive number of cells"}
	case cfg.Interval <= 0:
		return &ConfigError{Op: op, Field: "interval", Value: cfg.Interval, Reason: "must be positive"}
	}
	return nil
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// moveTo replaces any in-flight motion with a move toward target.
func (m *mover) moveTo(target core.Point, cfg MoveConfig) error {
	if err := validateMove(target, cfg); err != nil {
		return err
	}

	m.stop()
	m.state = &motionState{
		origin:     m.entity.pos,
		target:     target,
		step:       cfg.Step,
		interval:   cfg.Interval,
		onComplete: cfg.OnComplete,
		onStep:     cfg.OnStep,
		stepArg:    cfg.StepArg,
		active:     true,
	}
	m.slot.Arm(cfg.Interval, m.tick)
	return nil
}

func (m *mover) tick() {
	st := m.state
	if st == nil || !st.active {
		return
	}
	st.steps++

	cur := m.entity.pos
	if math.Abs(st.target.X-cur.X) <= st.step && math.Abs(st.target.Y-cur.Y) <= st.step {
		st.active = false
		m.entity.setPos(st.target)
		m.entity.logger.Debug("move complete", "class", m.entity.class,
			"from", st.origin, "to", st.target, "steps", st.steps)
		if st.onComplete != nil {
			st.onComplete(m.entity)
		}
		return
	}

	m.entity.setPos(core.StepToward(cur, st.target, st.step))

	if st.onStep != nil {
		arg := st.stepArg
		if arg == nil {
			arg = m.entity
		}
		st.onStep(arg)
	}

	// The step callback may have stopped or replaced this move.
	if m.state == st && st.active {
		m.slot.Arm(st.interval, m.tick)
	}
}

// stop cancels the in-flight move. Reports whether one was active.
func (m *mover) stop() bool {
	m.slot.Disarm()
	if m.state == nil || !m.state.active {
		return false
	}
	m.state.active = false
	return true
}

func (m *mover) moving() bool {
	return m.state != nil && m.state.active
}
