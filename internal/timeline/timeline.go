// Package timeline advances the current scene on a wall-clock schedule and
// tracks overall playback progress.
package timeline

import (
	"time"

	"github.com/satindergrewal/tajshow/internal/clock"
	"github.com/satindergrewal/tajshow/internal/schedule"
)

const (
	// DefaultFrameInterval is the progress sampling cadence, one display frame.
	DefaultFrameInterval = 16 * time.Millisecond
	// DefaultSamplerSlack keeps the sampler running this long past the end.
	DefaultSamplerSlack = time.Second
)

// State is the playback state the view renders.
type State struct {
	Playing    bool    `json:"playing"`
	Ended      bool    `json:"ended"`
	SceneIndex int     `json:"scene_index"`
	Progress   float64 `json:"progress"`
}

// Option configures a Controller.
type Option func(*Controller)

// WithOnEnd sets the callback run when the last scene's duration has elapsed.
func WithOnEnd(fn func()) Option {
	return func(c *Controller) { c.onEnd = fn }
}

// WithOnChange sets a callback run after every state change.
func WithOnChange(fn func(State)) Option {
	return func(c *Controller) { c.onChange = fn }
}

// WithFrameInterval sets the progress sampling cadence.
func WithFrameInterval(d time.Duration) Option {
	return func(c *Controller) {
		if d > 0 {
			c.frame = d
		}
	}
}

// WithSamplerSlack sets how long past the total the sampler keeps running.
func WithSamplerSlack(d time.Duration) Option {
	return func(c *Controller) {
		if d >= 0 {
			c.slack = d
		}
	}
}

// Controller schedules one scene-advance per scene at its cumulative start
// offset plus a terminal event at the total. It is not safe for concurrent
// use: call it and run its clock callbacks on a single event loop.
type Controller struct {
	clk       clock.Clock
	durations []time.Duration
	offsets   []time.Duration
	total     time.Duration
	frame     time.Duration
	slack     time.Duration
	onEnd     func()
	onChange  func(State)

	state   State
	run     *run
	started time.Time
}

// run holds everything one Start schedules, so Stop can cancel it as a unit.
type run struct {
	sched     *schedule.Schedule
	sampler   clock.Timer
	cancelled bool
}

func (r *run) cancel() {
	if r == nil || r.cancelled {
		return
	}
	r.cancelled = true
	r.sched.Cancel()
	if r.sampler != nil {
		r.sampler.Stop()
		r.sampler = nil
	}
}

// New creates a controller for the given scene durations.
func New(clk clock.Clock, durations []time.Duration, opts ...Option) *Controller {
	c := &Controller{
		clk:       clk,
		durations: make([]time.Duration, len(durations)),
		offsets:   make([]time.Duration, len(durations)),
		frame:     DefaultFrameInterval,
		slack:     DefaultSamplerSlack,
	}
	var cumulative time.Duration
	for i, d := range durations {
		if d < 0 {
			d = 0
		}
		c.durations[i] = d
		c.offsets[i] = cumulative
		cumulative += d
	}
	c.total = cumulative
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Start begins a new run from scene 0, cancelling any run in progress first.
func (c *Controller) Start() {
	c.run.cancel()
	c.run = nil

	c.state = State{Playing: true}

	if len(c.durations) == 0 {
		c.state.Playing = false
		c.state.Ended = true
		c.state.Progress = 1
		c.changed()
		if c.onEnd != nil {
			c.onEnd()
		}
		return
	}

	r := &run{sched: schedule.New(c.clk)}
	c.run = r
	for i, off := range c.offsets {
		i := i
		r.sched.Add(off, func() { c.advance(r, i) })
	}
	r.sched.Add(c.total, func() { c.finish(r) })

	c.changed()
	c.started = c.clk.Now()
	r.sched.Start()
	r.sampler = c.clk.AfterFunc(c.frame, func() { c.sample(r) })
}

// Stop cancels the current run. Progress resets to zero; the scene index and
// ended flag keep their last values. Stop is idempotent.
func (c *Controller) Stop() {
	wasRunning := c.run != nil && !c.run.cancelled
	c.run.cancel()
	c.run = nil
	if !wasRunning && !c.state.Playing && c.state.Progress == 0 {
		return
	}
	c.state.Playing = false
	c.state.Progress = 0
	c.changed()
}

func (c *Controller) advance(r *run, index int) {
	if r.cancelled || c.run != r {
		return
	}
	if index < c.state.SceneIndex {
		return
	}
	c.state.SceneIndex = index
	c.changed()
}

func (c *Controller) finish(r *run) {
	if r.cancelled || c.run != r {
		return
	}
	c.state.Ended = true
	c.state.Playing = false
	c.state.Progress = 1
	c.changed()
	if c.onEnd != nil {
		c.onEnd()
	}
}

func (c *Controller) sample(r *run) {
	if r.cancelled || c.run != r {
		return
	}
	elapsed := c.clk.Now().Sub(c.started)
	p := 1.0
	if c.total > 0 {
		p = float64(elapsed) / float64(c.total)
		if p > 1 {
			p = 1
		}
		if p < 0 {
			p = 0
		}
	}
	if p > c.state.Progress {
		c.state.Progress = p
		c.changed()
	}
	if elapsed <= c.total+c.slack {
		r.sampler = c.clk.AfterFunc(c.frame, func() { c.sample(r) })
		return
	}
	r.sampler = nil
}

func (c *Controller) changed() {
	if c.onChange != nil {
		c.onChange(c.state)
	}
}

// State returns the current playback state.
func (c *Controller) State() State { return c.state }

// Running reports whether a run has callbacks still scheduled.
func (c *Controller) Running() bool {
	if c.run == nil || c.run.cancelled {
		return false
	}
	return !c.run.sched.Done() || c.run.sampler != nil
}

// Offsets returns the start offset of every scene.
func (c *Controller) Offsets() []time.Duration {
	out := make([]time.Duration, len(c.offsets))
	copy(out, c.offsets)
	return out
}

// Total returns the run length.
func (c *Controller) Total() time.Duration { return c.total }
