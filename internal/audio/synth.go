package audio

import (
	"errors"
	"log"
	"sync"
	"time"

	"github.com/satindergrewal/tajshow/internal/clock"
)

const (
	// DefaultMusicGain is the audible master level.
	DefaultMusicGain = 0.16
	// MutedGain is the master level while muted; exponential ramps cannot reach zero.
	MutedGain = 0.0001

	PluckInterval = 2600 * time.Millisecond
	FluteInterval = 4800 * time.Millisecond

	// DroneMargin is added to the run length for the drones' hard stop.
	DroneMargin = 6 * time.Second

	MuteRamp      = 300 * time.Millisecond
	FadeOutRamp   = 2 * time.Second
	TeardownDelay = 2200 * time.Millisecond
)

// PluckPattern is the plucked-string melody, in Hz.
var PluckPattern = []float64{174.61, 196, 220, 246.94, 261.63, 293.66, 329.63}

// FlutePattern is the sustained-tone melody, in Hz.
var FlutePattern = []float64{392, 440, 392, 349.23, 329.63, 392, 440, 493.88, 523.25}

type droneSpec struct {
	freq, cents, gain float64
}

var drones = []droneSpec{
	{110, -4, 0.06},
	{220, 6, 0.05},
	{220, 0, 0.03},
}

// PluckVoice builds a short plucked note starting at now.
func PluckVoice(now, freq float64) *Voice {
	const sustain = 2.2
	osc := NewOscillator(Triangle, freq, 0)
	gain := NewParam(MutedGain)
	gain.SetValueAtTime(MutedGain, now)
	gain.ExponentialRampToValueAtTime(0.4, now+0.06)
	gain.ExponentialRampToValueAtTime(MutedGain, now+sustain)
	v := NewVoice(osc, NewBandPass(freq*2, 7.5), gain)
	v.stop = now + sustain + 0.1
	return v
}

// FluteVoice builds a sustained note with vibrato starting at now.
func FluteVoice(now, freq float64) *Voice {
	const sustain = 4.4
	osc := NewOscillator(Sine, freq, 0)
	osc.Modulator = NewOscillator(Sine, 5.5, 0)
	osc.ModDepth = 12
	gain := NewParam(MutedGain)
	gain.SetValueAtTime(MutedGain, now)
	gain.LinearRampToValueAtTime(0.28, now+0.3)
	gain.LinearRampToValueAtTime(0.18, now+sustain-0.6)
	gain.ExponentialRampToValueAtTime(MutedGain, now+sustain)
	v := NewVoice(osc, nil, gain)
	v.stop = now + sustain + 0.2
	return v
}

// SynthOption configures a Synth.
type SynthOption func(*Synth)

// WithGain sets the audible master level.
func WithGain(g float64) SynthOption {
	return func(s *Synth) {
		if g > 0 {
			s.gain = g
		}
	}
}

// instance is one started score: its context, drones and timers. Each Start
// creates a fresh instance; nothing outlives its teardown.
type instance struct {
	ctx    *Context
	drones []*Voice
	timers []clock.Timer
	fade   clock.Timer
	pluck  int
	flute  int
	closed bool
}

// Synth is the ambient score: three drones plus two melodic generators
// through one master gain. Start, FadeOut, SetMuted and Close must be called
// from the event loop that runs the clock's callbacks; Render may be called
// from the audio pipeline goroutine.
type Synth struct {
	clk  clock.Clock
	open Opener
	gain float64

	muted  bool
	warned bool

	mu  sync.Mutex
	cur *instance
}

// NewSynth creates a synthesizer that opens contexts with open.
func NewSynth(clk clock.Clock, open Opener, opts ...SynthOption) *Synth {
	if open == nil {
		open = Unavailable
	}
	s := &Synth{clk: clk, open: open, gain: DefaultMusicGain}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Synth) level() float64 {
	if s.muted {
		return MutedGain
	}
	return s.gain
}

func (s *Synth) current() *instance {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cur
}

// Start tears down any running score and starts a new one for a run of
// length total. If no context can be opened the score is skipped.
func (s *Synth) Start(total time.Duration) {
	s.teardown(s.current())

	ctx, err := s.open()
	if err != nil {
		if !s.warned {
			log.Printf("Ambient music disabled: %v", err)
			s.warned = true
		}
		return
	}

	inst := &instance{ctx: ctx}
	level := s.level()
	hardStop := (total + DroneMargin).Seconds()
	err = ctx.Automate(func(g *Graph) {
		g.Master.Set(level)
		for _, d := range drones {
			v := NewVoice(NewOscillator(Sine, d.freq, d.cents), nil, NewParam(d.gain))
			g.Connect(v)
			g.Stop(v, g.Now+hardStop)
			inst.drones = append(inst.drones, v)
		}
	})
	if err != nil {
		log.Printf("Ambient music: graph setup failed: %v", err)
		ctx.Close()
		return
	}

	inst.timers = append(inst.timers,
		clock.Every(s.clk, PluckInterval, func() { s.playPluck(inst) }),
		clock.Every(s.clk, FluteInterval, func() { s.playFlute(inst) }),
	)

	s.mu.Lock()
	s.cur = inst
	s.mu.Unlock()
}

func (s *Synth) playPluck(inst *instance) {
	if inst.closed {
		return
	}
	freq := PluckPattern[inst.pluck%len(PluckPattern)]
	inst.pluck++
	inst.ctx.Automate(func(g *Graph) { g.Connect(PluckVoice(g.Now, freq)) })
}

func (s *Synth) playFlute(inst *instance) {
	if inst.closed {
		return
	}
	freq := FlutePattern[inst.flute%len(FlutePattern)]
	inst.flute++
	inst.ctx.Automate(func(g *Graph) { g.Connect(FluteVoice(g.Now, freq)) })
}

// SetMuted ramps the master toward the muted or audible level. The setting
// is remembered for the next Start when nothing is playing.
func (s *Synth) SetMuted(muted bool) {
	s.muted = muted
	inst := s.current()
	if inst == nil {
		return
	}
	target := s.level()
	inst.ctx.Automate(func(g *Graph) {
		g.Master.CancelScheduledValues(g.Now)
		g.Master.LinearRampToValueAtTime(target, g.Now+MuteRamp.Seconds())
	})
}

// Muted reports the current mute setting.
func (s *Synth) Muted() bool { return s.muted }

// FadeOut ramps the master down and tears the score down once the ramp is done.
func (s *Synth) FadeOut() {
	inst := s.current()
	if inst == nil || inst.closed {
		return
	}
	inst.ctx.Automate(func(g *Graph) {
		g.Master.CancelScheduledValues(g.Now)
		g.Master.ExponentialRampToValueAtTime(MutedGain, g.Now+FadeOutRamp.Seconds())
	})
	if inst.fade != nil {
		inst.fade.Stop()
	}
	inst.fade = s.clk.AfterFunc(TeardownDelay, func() { s.teardown(inst) })
}

// Close tears the score down immediately.
func (s *Synth) Close() {
	s.teardown(s.current())
}

// Active reports whether a score is running.
func (s *Synth) Active() bool {
	return s.current() != nil
}

func (s *Synth) teardown(inst *instance) {
	if inst == nil || inst.closed {
		return
	}
	inst.closed = true
	for _, t := range inst.timers {
		t.Stop()
	}
	inst.timers = nil
	if inst.fade != nil {
		inst.fade.Stop()
		inst.fade = nil
	}

	inst.ctx.Automate(func(g *Graph) {
		for _, d := range inst.drones {
			if err := g.Stop(d, g.Now); err != nil && !errors.Is(err, ErrAlreadyStopped) {
				log.Printf("Ambient music: stop drone: %v", err)
			}
		}
	})
	inst.drones = nil
	// Closing twice is harmless; nothing else can fail here.
	_ = inst.ctx.Close()

	s.mu.Lock()
	if s.cur == inst {
		s.cur = nil
	}
	s.mu.Unlock()
}

// Render fills buf from the running score, or with silence.
func (s *Synth) Render(buf []int16) {
	inst := s.current()
	if inst == nil {
		for i := range buf {
			buf[i] = 0
		}
		return
	}
	inst.ctx.Render(buf)
}
