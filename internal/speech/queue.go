package speech

import (
	"context"
	"errors"
	"log"
	"sync"
)

const queueSize = 32

type item struct {
	u   Utterance
	gen uint64
}

// Queue is an Engine that speaks utterances back to back. Cancel drops what
// is pending, aborts the synthesis in flight and silences the sink.
type Queue struct {
	backend Backend
	sink    Sink
	items   chan item

	mu     sync.Mutex
	gen    uint64
	abort  context.CancelFunc
	voices []Voice
}

// NewQueue creates a queue that synthesizes with backend and plays on sink.
func NewQueue(backend Backend, sink Sink) *Queue {
	return &Queue{
		backend: backend,
		sink:    sink,
		items:   make(chan item, queueSize),
	}
}

// Voices returns the voices loaded so far. The list is empty until Run has
// queried the backend.
func (q *Queue) Voices() []Voice {
	q.mu.Lock()
	defer q.mu.Unlock()
	out := make([]Voice, len(q.voices))
	copy(out, q.voices)
	return out
}

// Speak queues u. It never blocks; when the queue is full u is dropped.
func (q *Queue) Speak(u Utterance) {
	q.mu.Lock()
	it := item{u: u, gen: q.gen}
	q.mu.Unlock()

	select {
	case q.items <- it:
	default:
		log.Printf("Speech queue full, dropping utterance (%d chars)", len(u.Text))
	}
}

// Cancel drops every queued utterance and stops the one being spoken.
func (q *Queue) Cancel() {
	q.mu.Lock()
	q.gen++
	if q.abort != nil {
		q.abort()
		q.abort = nil
	}
	q.mu.Unlock()
	q.sink.Flush()
}

// Run loads the voice list and then speaks queued utterances until ctx is
// cancelled.
func (q *Queue) Run(ctx context.Context) {
	voices, err := q.backend.Voices(ctx)
	if err != nil {
		log.Printf("Speech voices unavailable: %v", err)
	} else {
		q.mu.Lock()
		q.voices = voices
		q.mu.Unlock()
		log.Printf("Speech ready: %d voices", len(voices))
	}

	for {
		select {
		case <-ctx.Done():
			return
		case it := <-q.items:
			q.speak(ctx, it)
		}
	}
}

func (q *Queue) speak(ctx context.Context, it item) {
	q.mu.Lock()
	if it.gen != q.gen {
		q.mu.Unlock()
		return
	}
	sctx, cancel := context.WithCancel(ctx)
	q.abort = cancel
	q.mu.Unlock()
	defer cancel()

	samples, err := q.backend.Synthesize(sctx, it.u)
	if err != nil {
		if !errors.Is(err, context.Canceled) && sctx.Err() == nil {
			log.Printf("Speech synthesis failed: %v", err)
		}
		return
	}

	// Cancel may have run while synthesizing.
	q.mu.Lock()
	if it.gen != q.gen {
		q.mu.Unlock()
		return
	}
	done := q.sink.Play(samples)
	q.mu.Unlock()

	select {
	case <-done:
	case <-ctx.Done():
	}
}
