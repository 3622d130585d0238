// Package schedule runs a sorted list of (offset, action) pairs from one
// timer, so a whole run can be cancelled in one step.
package schedule

import (
	"sort"
	"time"

	"github.com/satindergrewal/tajshow/internal/clock"
)

type entry struct {
	offset time.Duration
	seq    int
	action func()
}

// Schedule fires actions at offsets from its start time. Actions with equal
// offsets run in the order they were added. A Schedule is single-use and is
// not safe for concurrent use; drive it from one goroutine or event loop.
type Schedule struct {
	clk     clock.Clock
	entries []entry

	start     time.Time
	started   bool
	next      int
	timer     clock.Timer
	cancelled bool
}

// New creates an empty schedule on clk.
func New(clk clock.Clock) *Schedule {
	return &Schedule{clk: clk}
}

// Add registers action at offset. Adding after Start has no effect.
func (s *Schedule) Add(offset time.Duration, action func()) {
	if s.started {
		return
	}
	if offset < 0 {
		offset = 0
	}
	s.entries = append(s.entries, entry{offset: offset, seq: len(s.entries), action: action})
}

// Start captures the start time and arms the timer for the first entry.
func (s *Schedule) Start() {
	if s.started || s.cancelled {
		return
	}
	s.started = true
	sort.SliceStable(s.entries, func(i, j int) bool {
		return s.entries[i].offset < s.entries[j].offset
	})
	s.start = s.clk.Now()
	s.arm()
}

func (s *Schedule) arm() {
	if s.cancelled || s.next >= len(s.entries) {
		return
	}
	wait := s.start.Add(s.entries[s.next].offset).Sub(s.clk.Now())
	if wait < 0 {
		wait = 0
	}
	s.timer = s.clk.AfterFunc(wait, s.fire)
}

func (s *Schedule) fire() {
	if s.cancelled {
		return
	}
	elapsed := s.clk.Now().Sub(s.start)
	for s.next < len(s.entries) && s.entries[s.next].offset <= elapsed {
		e := s.entries[s.next]
		s.next++
		e.action()
		// An action may cancel its own schedule.
		if s.cancelled {
			return
		}
	}
	s.arm()
}

// Cancel stops the schedule. No action runs after Cancel returns. Calling it
// more than once, or before Start, is harmless.
func (s *Schedule) Cancel() {
	if s.cancelled {
		return
	}
	s.cancelled = true
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
}

// Len returns the number of entries.
func (s *Schedule) Len() int { return len(s.entries) }

// Fired returns how many entries have run.
func (s *Schedule) Fired() int { return s.next }

// Cancelled reports whether Cancel has been called.
func (s *Schedule) Cancelled() bool { return s.cancelled }

// Done reports whether every entry has run.
func (s *Schedule) Done() bool { return s.started && s.next >= len(s.entries) }

// Offsets returns the entry offsets in firing order.
func (s *Schedule) Offsets() []time.Duration {
	sorted := make([]entry, len(s.entries))
	copy(sorted, s.entries)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].offset < sorted[j].offset })
	out := make([]time.Duration, len(sorted))
	for i, e := range sorted {
		out[i] = e.offset
	}
	return out
}
