package clock

import "time"

// Slot holds at most one live timer. Arming a slot always cancels the timer
// it previously held before scheduling the new one.
type Slot struct {
	sched  Scheduler
	handle Handle
	armed  bool
}

// NewSlot creates an empty slot bound to a scheduler.
func NewSlot(s Scheduler) *Slot {
	return &Slot{sched: s}
}

// Arm cancels any pending timer and schedules fn after d.
// The slot counts as disarmed by the time fn runs, so fn may re-arm it.
func (s *Slot) Arm(d time.Duration, fn func()) {
	s.Disarm()

	var h Handle
	h = s.sched.AfterFunc(d, func() {
		if s.armed && s.handle == h {
			s.armed = false
		}
		fn()
	})
	s.handle = h
	s.armed = true
}

// Disarm cancels the pending timer, if any. Reports whether one was cancelled.
func (s *Slot) Disarm() bool {
	if !s.armed {
		return false
	}
	s.armed = false
	return s.sched.Cancel(s.handle)
}

// Armed reports whether a timer is pending.
func (s *Slot) Armed() bool {
	return s.armed
}
