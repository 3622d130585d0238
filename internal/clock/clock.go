// Package clock abstracts wall time and one-shot timers so scheduling code can
// run against the real clock in production and a virtual one in tests.
package clock

import (
	"sync"
	"sync/atomic"
	"time"
)

// Clock tells time and schedules callbacks.
type Clock interface {
	Now() time.Time
	AfterFunc(d time.Duration, f func()) Timer
}

// Timer is a pending callback. Stop reports whether it prevented the call.
type Timer interface {
	Stop() bool
}

// Real is the wall clock. Callbacks are handed to post, which lets an event
// loop run them on its own goroutine.
type Real struct {
	post func(func())
}

// NewReal creates a wall clock. A nil post runs callbacks on the timer goroutine.
func NewReal(post func(func())) *Real {
	return &Real{post: post}
}

// Now returns the current wall time.
func (r *Real) Now() time.Time { return time.Now() }

// AfterFunc schedules f after d. Stop prevents the call even when the timer
// has fired and f is already queued on the loop.
func (r *Real) AfterFunc(d time.Duration, f func()) Timer {
	if r.post == nil {
		return time.AfterFunc(d, f)
	}
	t := &realTimer{}
	t.timer = time.AfterFunc(d, func() {
		r.post(func() {
			if t.state.CompareAndSwap(timerPending, timerRan) {
				f()
			}
		})
	})
	return t
}

const (
	timerPending int32 = iota
	timerStopped
	timerRan
)

type realTimer struct {
	timer *time.Timer
	state atomic.Int32
}

func (t *realTimer) Stop() bool {
	t.timer.Stop()
	return t.state.CompareAndSwap(timerPending, timerStopped)
}

// Every calls f every d until the returned timer is stopped.
func Every(clk Clock, d time.Duration, f func()) Timer {
	t := &repeating{clk: clk, every: d, fn: f}
	t.arm()
	return t
}

type repeating struct {
	clk   Clock
	every time.Duration
	fn    func()

	mu      sync.Mutex
	current Timer
	stopped bool
}

func (r *repeating) arm() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.stopped {
		return
	}
	r.current = r.clk.AfterFunc(r.every, r.tick)
}

func (r *repeating) tick() {
	r.mu.Lock()
	stopped := r.stopped
	r.mu.Unlock()
	if stopped {
		return
	}
	r.fn()
	r.arm()
}

func (r *repeating) Stop() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.stopped {
		return false
	}
	r.stopped = true
	if r.current != nil {
		r.current.Stop()
	}
	return true
}
