package audio

import (
	"math"
	"sync"
)

// Waveform selects an oscillator shape.
type Waveform int

const (
	Sine Waveform = iota
	Triangle
)

func (w Waveform) sample(phase float64) float64 {
	switch w {
	case Triangle:
		x := phase - 0.25
		return 1 - 4*math.Abs(math.Round(x)-x)
	default:
		return math.Sin(2 * math.Pi * phase)
	}
}

// Oscillator is a periodic signal generator. A modulator, when set, adds
// ModDepth Hz of its output to the frequency (vibrato).
type Oscillator struct {
	Wave      Waveform
	Frequency *Param
	Modulator *Oscillator
	ModDepth  float64

	detune float64 // frequency ratio from cents
	phase  float64
}

// NewOscillator creates an oscillator at freq Hz detuned by cents.
func NewOscillator(wave Waveform, freq, cents float64) *Oscillator {
	return &Oscillator{
		Wave:      wave,
		Frequency: NewParam(freq),
		detune:    math.Pow(2, cents/1200),
	}
}

func (o *Oscillator) next(t float64) float64 {
	f := o.Frequency.ValueAt(t)
	if o.Modulator != nil {
		f += o.Modulator.next(t) * o.ModDepth
	}
	f *= o.detune
	s := o.Wave.sample(o.phase)
	o.phase += f / SampleRate
	o.phase -= math.Floor(o.phase)
	return s
}

// BandPass is a biquad band-pass filter with constant 0 dB peak gain.
type BandPass struct {
	b0, b2, a1, a2 float64
	x1, x2, y1, y2 float64
}

// NewBandPass creates a band-pass filter centred on freq Hz with quality q.
func NewBandPass(freq, q float64) *BandPass {
	if q <= 0 {
		q = 1
	}
	w0 := 2 * math.Pi * freq / SampleRate
	alpha := math.Sin(w0) / (2 * q)
	a0 := 1 + alpha
	return &BandPass{
		b0: alpha / a0,
		b2: -alpha / a0,
		a1: -2 * math.Cos(w0) / a0,
		a2: (1 - alpha) / a0,
	}
}

func (f *BandPass) process(x float64) float64 {
	y := f.b0*x + f.b2*f.x2 - f.a1*f.y1 - f.a2*f.y2
	f.x2, f.x1 = f.x1, x
	f.y2, f.y1 = f.y1, y
	return y
}

// Voice is one sounding chain: oscillator, optional filter, gain.
type Voice struct {
	Osc    *Oscillator
	Filter *BandPass
	Gain   *Param

	start float64
	stop  float64
	ended bool
}

// NewVoice creates a voice that starts when connected and runs until stopped.
func NewVoice(osc *Oscillator, filter *BandPass, gain *Param) *Voice {
	return &Voice{Osc: osc, Filter: filter, Gain: gain, stop: math.Inf(1)}
}

// Ended reports whether the voice has finished sounding.
func (v *Voice) Ended() bool { return v.ended }

// Context owns an audio graph and its sample clock. Time advances only as
// frames are rendered.
type Context struct {
	mu     sync.Mutex
	frames int64
	master *Param
	voices []*Voice
	closed bool
}

// Opener creates an audio context.
type Opener func() (*Context, error)

// NewContext opens an in-process audio context with a silent master.
func NewContext() (*Context, error) {
	return &Context{master: NewParam(0)}, nil
}

// Unavailable is an Opener for hosts without audio output.
func Unavailable() (*Context, error) {
	return nil, ErrUnavailable
}

// Graph is the locked view of a Context handed to Automate.
type Graph struct {
	Now    float64
	Master *Param
	c      *Context
}

// Connect starts v now and routes it to the master.
func (g *Graph) Connect(v *Voice) {
	v.start = g.Now
	g.c.voices = append(g.c.voices, v)
}

// Stop schedules v to stop at t. Stopping an ended voice returns ErrAlreadyStopped.
func (g *Graph) Stop(v *Voice, t float64) error {
	if v.ended {
		return ErrAlreadyStopped
	}
	if t <= g.Now {
		v.ended = true
		v.stop = g.Now
		return nil
	}
	if t < v.stop {
		v.stop = t
	}
	return nil
}

// Automate runs fn with the graph locked and the current context time.
func (c *Context) Automate(fn func(g *Graph)) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return ErrClosed
	}
	fn(&Graph{Now: c.now(), Master: c.master, c: c})
	return nil
}

func (c *Context) now() float64 {
	return float64(c.frames) / SampleRate
}

// CurrentTime returns the context clock in seconds.
func (c *Context) CurrentTime() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now()
}

// Voices returns how many voices are still sounding or scheduled.
func (c *Context) Voices() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.voices)
}

// Render fills buf with interleaved stereo samples and advances the clock.
// A closed context renders silence.
func (c *Context) Render(buf []int16) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		for i := range buf {
			buf[i] = 0
		}
		return
	}

	for i := 0; i+Channels <= len(buf); i += Channels {
		t := c.now()
		var sum float64
		for _, v := range c.voices {
			if v.ended || t < v.start {
				continue
			}
			if t >= v.stop {
				v.ended = true
				continue
			}
			s := v.Osc.next(t)
			if v.Filter != nil {
				s = v.Filter.process(s)
			}
			sum += s * v.Gain.ValueAt(t)
		}
		out := clip16(sum * c.master.ValueAt(t) * 32767)
		for ch := 0; ch < Channels; ch++ {
			buf[i+ch] = out
		}
		c.frames++
	}

	live := c.voices[:0]
	for _, v := range c.voices {
		if !v.ended {
			live = append(live, v)
		}
	}
	for i := len(live); i < len(c.voices); i++ {
		c.voices[i] = nil
	}
	c.voices = live
}

// Close releases the graph. Closing twice returns ErrClosed.
func (c *Context) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return ErrClosed
	}
	c.closed = true
	for _, v := range c.voices {
		v.ended = true
	}
	c.voices = nil
	return nil
}
