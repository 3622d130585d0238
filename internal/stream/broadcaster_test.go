package stream

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"
)

func TestSubscribeUnsubscribe(t *testing.T) {
	b := NewBroadcaster(0)
	if b.ListenerCount() != 0 {
		t.Errorf("Initial ListenerCount = %d, want 0", b.ListenerCount())
	}

	l1 := b.Subscribe("http")
	l2 := b.Subscribe("webrtc")
	if b.ListenerCount() != 2 {
		t.Errorf("After 2 subscribes: ListenerCount = %d, want 2", b.ListenerCount())
	}
	if l1.ID == "" || l1.ID == l2.ID {
		t.Errorf("listener ids not unique: %q %q", l1.ID, l2.ID)
	}
	if cap(l1.C) != DefaultListenerBuffer {
		t.Errorf("buffer = %d, want %d", cap(l1.C), DefaultListenerBuffer)
	}

	kinds := map[string]bool{}
	for _, info := range b.Listeners() {
		kinds[info.Kind] = true
	}
	if !kinds["http"] || !kinds["webrtc"] {
		t.Errorf("Listeners() kinds = %v", kinds)
	}

	b.Unsubscribe(l1)
	b.Unsubscribe(l1)
	if b.ListenerCount() != 1 {
		t.Errorf("After unsubscribe: ListenerCount = %d, want 1", b.ListenerCount())
	}
	select {
	case <-l1.Done():
	default:
		t.Error("Listener done channel not closed after unsubscribe")
	}
	b.Unsubscribe(l2)
}

func TestBroadcastMultipleListeners(t *testing.T) {
	b := NewBroadcaster(0)
	listeners := make([]*Listener, 5)
	for i := range listeners {
		listeners[i] = b.Subscribe("http")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	source := make(chan []int16, 10)
	go b.Run(ctx, source)

	source <- []int16{42, -42}

	for i, l := range listeners {
		select {
		case got := <-l.C:
			if got[0] != 42 || got[1] != -42 {
				t.Errorf("Listener %d got %v, want [42 -42]", i, got)
			}
		case <-time.After(time.Second):
			t.Errorf("Listener %d timed out", i)
		}
	}
	if b.Frames() != 1 {
		t.Errorf("Frames() = %d, want 1", b.Frames())
	}
}

func TestBroadcastDropsSlowListener(t *testing.T) {
	b := NewBroadcaster(10)
	slow := b.Subscribe("http")
	fast := b.Subscribe("http")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	source := make(chan []int16)

	received := make(chan int)
	go func() {
		n := 0
		for k := 0; k < 30; k++ {
			<-fast.C
			n++
		}
		received <- n
	}()
	stopped := make(chan struct{})
	go func() {
		b.Run(ctx, source)
		close(stopped)
	}()

	for i := 0; i < 30; i++ {
		source <- []int16{int16(i)}
	}
	close(source)
	<-stopped

	select {
	case n := <-received:
		if n != 30 {
			t.Errorf("fast listener got %d frames, want 30", n)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("fast listener starved")
	}
	if len(slow.C) != 10 {
		t.Errorf("slow listener holds %d frames, want buffer size 10", len(slow.C))
	}
	if slow.Dropped() != 20 {
		t.Errorf("slow listener dropped %d frames, want 20", slow.Dropped())
	}
}

func TestBroadcastStops(t *testing.T) {
	for _, tc := range []string{"cancel", "close"} {
		b := NewBroadcaster(0)
		ctx, cancel := context.WithCancel(context.Background())
		source := make(chan []int16)

		var wg sync.WaitGroup
		wg.Add(1)
		go func() {
			defer wg.Done()
			b.Run(ctx, source)
		}()

		if tc == "cancel" {
			cancel()
		} else {
			close(source)
		}

		done := make(chan struct{})
		go func() {
			wg.Wait()
			close(done)
		}()
		select {
		case <-done:
		case <-time.After(2 * time.Second):
			t.Errorf("Broadcaster did not stop after source %s", tc)
		}
		cancel()
	}
}

func TestMP3Args(t *testing.T) {
	h := NewHTTPHandler(NewBroadcaster(0), "", "Taj")
	args := strings.Join(mp3Args(h.bitrate), " ")
	if !strings.Contains(args, "-b:a 192k") || !strings.Contains(args, "-ar 48000 -ac 2") {
		t.Errorf("ffmpeg args = %q", args)
	}
}

func TestWebRTCRejectsBadRequests(t *testing.T) {
	h := NewWebRTCHandler(NewBroadcaster(0), 0)
	if h.bitrate != DefaultOpusBitrate {
		t.Errorf("bitrate = %d, want %d", h.bitrate, DefaultOpusBitrate)
	}

	tests := []struct {
		method, body string
		want         int
	}{
		{http.MethodGet, "", http.StatusMethodNotAllowed},
		{http.MethodPost, "not json", http.StatusBadRequest},
		{http.MethodPost, `{"type":"offer"}`, http.StatusBadRequest},
	}
	for _, tt := range tests {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(tt.method, "/offer", strings.NewReader(tt.body)))
		if rec.Code != tt.want {
			t.Errorf("%s %q: status = %d, want %d", tt.method, tt.body, rec.Code, tt.want)
		}
	}
	if h.PeerCount() != 0 {
		t.Errorf("PeerCount() = %d, want 0", h.PeerCount())
	}
}
