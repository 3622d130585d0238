// Package stream fans the show's PCM output out to remote listeners over a
// chunked MP3 HTTP stream and over WebRTC.
package stream

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
)

// DefaultListenerBuffer is ~3 seconds of 20ms frames.
const DefaultListenerBuffer = 150

// Broadcaster fans out PCM frames from one source to N listeners.
type Broadcaster struct {
	buffer int
	frames atomic.Int64

	mu        sync.RWMutex
	listeners map[*Listener]struct{}
}

// Listener receives PCM frames from the broadcaster.
type Listener struct {
	ID    string
	Kind  string
	Since time.Time
	C     chan []int16 // buffered channel of 20ms PCM frames

	dropped atomic.Int64
	done    chan struct{}
	once    sync.Once
}

// Done is closed when the listener is unsubscribed.
func (l *Listener) Done() <-chan struct{} { return l.done }

// Dropped returns how many frames this listener missed for being slow.
func (l *Listener) Dropped() int64 { return l.dropped.Load() }

// ListenerInfo describes a connected listener.
type ListenerInfo struct {
	ID      string    `json:"id"`
	Kind    string    `json:"kind"`
	Since   time.Time `json:"since"`
	Dropped int64     `json:"dropped"`
}

// NewBroadcaster creates a broadcaster whose listeners buffer up to buffer
// frames. Zero means DefaultListenerBuffer.
func NewBroadcaster(buffer int) *Broadcaster {
	if buffer <= 0 {
		buffer = DefaultListenerBuffer
	}
	return &Broadcaster{
		buffer:    buffer,
		listeners: make(map[*Listener]struct{}),
	}
}

// Subscribe registers a new listener of the given kind ("http", "webrtc").
func (b *Broadcaster) Subscribe(kind string) *Listener {
	l := &Listener{
		ID:    uuid.NewString(),
		Kind:  kind,
		Since: time.Now(),
		C:     make(chan []int16, b.buffer),
		done:  make(chan struct{}),
	}
	b.mu.Lock()
	b.listeners[l] = struct{}{}
	b.mu.Unlock()
	return l
}

// Unsubscribe removes a listener and signals it to stop. Unsubscribing twice
// is harmless.
func (b *Broadcaster) Unsubscribe(l *Listener) {
	b.mu.Lock()
	delete(b.listeners, l)
	b.mu.Unlock()
	l.once.Do(func() { close(l.done) })
}

// ListenerCount returns the number of active listeners.
func (b *Broadcaster) ListenerCount() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.listeners)
}

// Listeners returns a snapshot of the connected listeners.
func (b *Broadcaster) Listeners() []ListenerInfo {
	b.mu.RLock()
	defer b.mu.RUnlock()
	out := make([]ListenerInfo, 0, len(b.listeners))
	for l := range b.listeners {
		out = append(out, ListenerInfo{ID: l.ID, Kind: l.Kind, Since: l.Since, Dropped: l.Dropped()})
	}
	return out
}

// Frames returns how many frames have been broadcast.
func (b *Broadcaster) Frames() int64 { return b.frames.Load() }

// Run reads frames from source and fans out to all listeners.
// Slow listeners get frames dropped rather than blocking the broadcast.
func (b *Broadcaster) Run(ctx context.Context, source <-chan []int16) {
	for {
		select {
		case <-ctx.Done():
			return
		case frame, ok := <-source:
			if !ok {
				return
			}
			b.frames.Add(1)
			b.mu.RLock()
			for l := range b.listeners {
				select {
				case l.C <- frame:
				default:
					l.dropped.Add(1)
				}
			}
			b.mu.RUnlock()
		}
	}
}
