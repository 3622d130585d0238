// Package loop runs callbacks one at a time on a single goroutine, so state
// touched only from the loop needs no locking.
package loop

import (
	"context"
	"errors"
)

// ErrStopped is returned by Do once the loop has exited.
var ErrStopped = errors.New("loop stopped")

// Loop is a single-goroutine callback executor.
type Loop struct {
	ch   chan func()
	done chan struct{}
}

// New creates a loop with room for size queued callbacks.
func New(size int) *Loop {
	if size <= 0 {
		size = 64
	}
	return &Loop{
		ch:   make(chan func(), size),
		done: make(chan struct{}),
	}
}

// Post queues f without waiting. Callbacks posted after the loop exits are dropped.
func (l *Loop) Post(f func()) {
	select {
	case l.ch <- f:
	case <-l.done:
	}
}

// Do runs f on the loop and waits for it to finish.
func (l *Loop) Do(ctx context.Context, f func()) error {
	finished := make(chan struct{})
	wrapped := func() {
		defer close(finished)
		f()
	}
	select {
	case l.ch <- wrapped:
	case <-l.done:
		return ErrStopped
	case <-ctx.Done():
		return ctx.Err()
	}
	select {
	case <-finished:
		return nil
	case <-l.done:
		return ErrStopped
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Run executes posted callbacks until ctx is cancelled.
func (l *Loop) Run(ctx context.Context) {
	defer close(l.done)
	for {
		select {
		case <-ctx.Done():
			return
		case f := <-l.ch:
			f()
		}
	}
}
