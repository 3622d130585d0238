package audio

import "sync"

type clip struct {
	samples []int16
	pos     int
	done    chan struct{}
}

// Bus plays decoded clips one after another. It is the output side of the
// speech queue.
type Bus struct {
	mu    sync.Mutex
	clips []*clip
}

// NewBus creates an empty bus.
func NewBus() *Bus {
	return &Bus{}
}

// Play queues interleaved stereo samples. The returned channel is closed once
// the clip has been rendered in full or flushed.
func (b *Bus) Play(samples []int16) <-chan struct{} {
	c := &clip{samples: samples, done: make(chan struct{})}
	if len(samples) == 0 {
		close(c.done)
		return c.done
	}
	b.mu.Lock()
	b.clips = append(b.clips, c)
	b.mu.Unlock()
	return c.done
}

// Flush drops every queued clip.
func (b *Bus) Flush() {
	b.mu.Lock()
	clips := b.clips
	b.clips = nil
	b.mu.Unlock()
	for _, c := range clips {
		close(c.done)
	}
}

// Pending returns how many clips are queued or playing.
func (b *Bus) Pending() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.clips)
}

// Render fills buf from the head of the queue, padding with silence.
func (b *Bus) Render(buf []int16) {
	b.mu.Lock()
	defer b.mu.Unlock()

	n := 0
	for n < len(buf) && len(b.clips) > 0 {
		c := b.clips[0]
		k := copy(buf[n:], c.samples[c.pos:])
		c.pos += k
		n += k
		if c.pos >= len(c.samples) {
			close(c.done)
			b.clips[0] = nil
			b.clips = b.clips[1:]
		}
	}
	for i := n; i < len(buf); i++ {
		buf[i] = 0
	}
}

// Mixer sums its sources, clipping to int16.
type Mixer struct {
	Sources []Source

	scratch []int16
	acc     []int32
}

// NewMixer creates a mixer over sources.
func NewMixer(sources ...Source) *Mixer {
	return &Mixer{Sources: sources}
}

// Render fills buf with the sum of all sources.
func (m *Mixer) Render(buf []int16) {
	if cap(m.scratch) < len(buf) {
		m.scratch = make([]int16, len(buf))
		m.acc = make([]int32, len(buf))
	}
	scratch := m.scratch[:len(buf)]
	acc := m.acc[:len(buf)]
	for i := range acc {
		acc[i] = 0
	}
	for _, src := range m.Sources {
		src.Render(scratch)
		for i, s := range scratch {
			acc[i] += int32(s)
		}
	}
	for i, v := range acc {
		buf[i] = clip16(float64(v))
	}
}
