// Package clock provides the cooperative timer primitive used by animated
// entities: callbacks scheduled on a single-threaded event loop that runs on
// virtual time. Games advance the loop once per simulation tick, so every
// timer callback runs on the caller's goroutine and tests never wait on the
// wall clock.
package clock

import (
	"container/heap"
	"time"
)

// Handle identifies a scheduled callback. The zero Handle is never issued.
type Handle uint64

// Scheduler schedules callbacks after a delay and cancels them by handle.
type Scheduler interface {
	// AfterFunc arranges for fn to run once d has elapsed.
	AfterFunc(d time.Duration, fn func()) Handle

	// Cancel prevents a pending callback from running.
	// Returns false if the handle already fired, was cancelled, or is unknown.
	Cancel(h Handle) bool
}

type timer struct {
	handle Handle
	due    time.Duration
	fn     func()
	index  int
}

// timerQueue orders timers by due time, breaking ties by scheduling order.
type timerQueue []*timer

func (q timerQueue) Len() int { return len(q) }

func (q timerQueue) Less(i, j int) bool {
	if q[i].due != q[j].due {
		return q[i].due < q[j].due
	}
	return q[i].handle < q[j].handle
}

func (q timerQueue) Swap(i, j int) {
	q[i], q[j] = q[j], q[i]
	q[i].index = i
	q[j].index = j
}

func (q *timerQueue) Push(x any) {
	t := x.(*timer)
	t.index = len(*q)
	*q = append(*q, t)
}

func (q *timerQueue) Pop() any {
	old := *q
	n := len(old)
	t := old[n-1]
	old[n-1] = nil
	t.index = -1
	*q = old[:n-1]
	return t
}

// Loop is a virtual-time event loop. It is not safe for concurrent use;
// confine each Loop and everything scheduled on it to one goroutine.
type Loop struct {
	now     time.Duration
	next    Handle
	queue   timerQueue
	pending map[Handle]*timer
}

// NewLoop creates an idle loop at virtual time zero.
func NewLoop() *Loop {
	return &Loop{pending: make(map[Handle]*timer)}
}

// Now returns the virtual time elapsed since the loop was created.
func (l *Loop) Now() time.Duration {
	return l.now
}

// Pending returns the number of callbacks waiting to run.
func (l *Loop) Pending() int {
	return len(l.pending)
}

// AfterFunc schedules fn to run d after the current virtual time.
// Non-positive delays run on the next Advance.
func (l *Loop) AfterFunc(d time.Duration, fn func()) Handle {
	if d < 0 {
		d = 0
	}
	l.next++
	t := &timer{handle: l.next, due: l.now + d, fn: fn}
	heap.Push(&l.queue, t)
	l.pending[t.handle] = t
	return t.handle
}

// Cancel removes a pending callback. Cancelling twice is a no-op.
func (l *Loop) Cancel(h Handle) bool {
	t, ok := l.pending[h]
	if !ok {
		return false
	}
	delete(l.pending, h)
	heap.Remove(&l.queue, t.index)
	return true
}

// Advance moves virtual time forward by d, running every callback that
// becomes due in due order. Callbacks may schedule or cancel timers; newly
// scheduled callbacks that fall inside the window run in the same call.
// Returns the number of callbacks run.
func (l *Loop) Advance(d time.Duration) int {
	if d < 0 {
		d = 0
	}
	end := l.now + d
	fired := 0

	for len(l.queue) > 0 && l.queue[0].due <= end {
		t := heap.Pop(&l.queue).(*timer)
		delete(l.pending, t.handle)
		l.now = t.due
		t.fn()
		fired++
	}

	l.now = end
	return fired
}
