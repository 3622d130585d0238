package audio

import (
	"context"
	"log"
	"sync"
	"time"
)

// Pipeline pulls frames from a source and outputs them at real-time rate.
type Pipeline struct {
	source  Source
	frameCh chan []int16

	mu      sync.RWMutex
	frames  int64
	started time.Time
}

// NewPipeline creates a pipeline rendering from source.
func NewPipeline(source Source) *Pipeline {
	return &Pipeline{
		source:  source,
		frameCh: make(chan []int16, 100),
	}
}

// Frames returns the channel of outgoing PCM frames (20ms each).
func (p *Pipeline) Frames() <-chan []int16 {
	return p.frameCh
}

// Status returns how many frames have been sent and for how long the
// pipeline has been running.
func (p *Pipeline) Status() (frames int64, uptime time.Duration) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.started.IsZero() {
		return p.frames, 0
	}
	return p.frames, time.Since(p.started)
}

// Run starts the pipeline. Blocks until ctx is cancelled.
func (p *Pipeline) Run(ctx context.Context) {
	defer close(p.frameCh)

	ticker := time.NewTicker(FrameDuration)
	defer ticker.Stop()

	p.mu.Lock()
	p.started = time.Now()
	p.mu.Unlock()
	log.Printf("Audio pipeline running (%d Hz, %d ch, %v frames)", SampleRate, Channels, FrameDuration)

	for {
		// Each frame gets its own buffer; listeners hold on to it.
		frame := make([]int16, FrameSamples)
		p.source.Render(frame)
		if !p.sendFrame(ctx, ticker, frame) {
			return
		}
		p.mu.Lock()
		p.frames++
		p.mu.Unlock()
	}
}

// sendFrame waits for the ticker then sends a frame. Returns false on cancel.
func (p *Pipeline) sendFrame(ctx context.Context, ticker *time.Ticker, frame []int16) bool {
	select {
	case <-ctx.Done():
		return false
	case <-ticker.C:
	}

	select {
	case p.frameCh <- frame:
		return true
	case <-ctx.Done():
		return false
	}
}
