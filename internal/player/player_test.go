package player

import (
	"strings"
	"testing"
	"time"

	"github.com/satindergrewal/tajshow/internal/catalog"
	"github.com/satindergrewal/tajshow/internal/clock"
)

var epoch = time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

type fakeMusic struct {
	calls []string
	muted bool
}

func (m *fakeMusic) Start(total time.Duration) { m.calls = append(m.calls, "start "+total.String()) }
func (m *fakeMusic) FadeOut() { m.calls = append(m.calls, "fade") }
func (m *fakeMusic) Close() { m.calls = append(m.calls, "close") }
func (m *fakeMusic) SetMuted(muted bool) {
	m.muted = muted
	if muted {
		m.calls = append(m.calls, "mute")
	} else {
		m.calls = append(m.calls, "unmute")
	}
}

type fakeNarration struct {
	starts, stops int
	scenes        int
}

func (n *fakeNarration) Start(scenes []catalog.Scene) { n.starts++; n.scenes = len(scenes) }
func (n *fakeNarration) Stop() { n.stops++ }

func testCatalog() *catalog.Catalog {
	return catalog.New(
		catalog.Scene{ID: "a", Duration: time.Second},
		catalog.Scene{ID: "b", Duration: 2 * time.Second},
		catalog.Scene{ID: "c", Duration: 1500 * time.Millisecond},
	)
}

func newTestPlayer() (*Player, *clock.Virtual, *fakeMusic, *fakeNarration) {
	v := clock.NewVirtual(epoch)
	m := &fakeMusic{}
	n := &fakeNarration{}
	p := New(v, testCatalog(), WithMusic(m), WithNarration(n))
	return p, v, m, n
}

func TestInitialState(t *testing.T) {
	p, _, _, _ := newTestPlayer()
	st := p.State()
	if !st.IntroVisible || st.Playing || st.Ended || st.SceneIndex != 0 || st.Progress != 0 || st.Muted {
		t.Errorf("initial state = %+v", st)
	}
	if st.Session != "" {
		t.Errorf("session before begin = %q", st.Session)
	}
}

func TestBeginStartsEverything(t *testing.T) {
	p, v, m, n := newTestPlayer()
	p.Begin()

	st := p.State()
	if st.IntroVisible || !st.Playing || st.SceneIndex != 0 {
		t.Errorf("after begin = %+v", st)
	}
	if len(st.Session) != 36 {
		t.Errorf("session = %q, want a uuid", st.Session)
	}
	if got := strings.Join(m.calls, ","); got != "unmute,start 4.5s" {
		t.Errorf("music calls = %q", got)
	}
	if n.starts != 1 || n.scenes != 3 {
		t.Errorf("narration starts=%d scenes=%d", n.starts, n.scenes)
	}

	v.Advance(4500 * time.Millisecond)
	st = p.State()
	if !st.Ended || st.Playing || st.Progress != 1 || st.SceneIndex != 2 {
		t.Errorf("at end = %+v", st)
	}
	if m.calls[len(m.calls)-1] != "fade" {
		t.Errorf("music not faded at end: %v", m.calls)
	}
}

func TestStopIsIdempotent(t *testing.T) {
	p, v, _, n := newTestPlayer()
	p.Begin()
	v.Advance(1200 * time.Millisecond)
	p.Stop()
	first := p.State()
	p.Stop()
	if p.State() != first {
		t.Errorf("second stop changed state: %+v vs %+v", p.State(), first)
	}
	if first.Playing || first.Progress != 0 {
		t.Errorf("after stop = %+v", first)
	}
	if n.stops != 2 {
		t.Errorf("narration stops = %d, want 2", n.stops)
	}
}

func TestReplayWaitsForSettleDelay(t *testing.T) {
	p, v, m, n := newTestPlayer()
	p.Begin()
	v.Advance(4600 * time.Millisecond)
	first := p.State().Session

	p.Replay()
	if !p.ReplayPending() {
		t.Fatal("replay not pending")
	}
	v.Advance(DefaultReplayDelay - time.Millisecond)
	if n.starts != 1 {
		t.Fatal("restarted before settle delay")
	}
	v.Advance(time.Millisecond)
	st := p.State()
	if n.starts != 2 || !st.Playing || st.Ended || st.SceneIndex != 0 {
		t.Errorf("after replay: starts=%d state=%+v", n.starts, st)
	}
	if st.Session == first {
		t.Error("replay reused the session id")
	}
	starts := 0
	for _, c := range m.calls {
		if strings.HasPrefix(c, "start") {
			starts++
		}
	}
	if starts != 2 {
		t.Errorf("music started %d times, want 2", starts)
	}
}

func TestStopCancelsPendingReplay(t *testing.T) {
	p, v, _, n := newTestPlayer()
	p.Begin()
	p.Replay()
	p.Stop()
	v.Advance(time.Second)
	if n.starts != 1 || p.ReplayPending() {
		t.Errorf("replay fired after stop: starts=%d", n.starts)
	}
}

func TestMuteLeavesSceneAndProgress(t *testing.T) {
	p, v, m, _ := newTestPlayer()
	p.Begin()
	v.Advance(1500 * time.Millisecond)
	before := p.State()

	if !p.ToggleMute() {
		t.Fatal("ToggleMute() = false, want muted")
	}
	after := p.State()
	if after.SceneIndex != before.SceneIndex || after.Progress != before.Progress {
		t.Errorf("mute changed playback: %+v -> %+v", before, after)
	}
	if !after.Muted || !m.muted {
		t.Error("mute not applied")
	}
	if p.ToggleMute() || m.muted {
		t.Error("second toggle did not unmute")
	}
}

func TestBeginUnmutes(t *testing.T) {
	p, _, m, _ := newTestPlayer()
	p.ToggleMute()
	p.Begin()
	if p.State().Muted || m.muted {
		t.Error("begin kept a stale mute")
	}
}

func TestWithoutAudio(t *testing.T) {
	v := clock.NewVirtual(epoch)
	p := New(v, testCatalog())
	p.Begin()
	p.ToggleMute()
	v.Advance(5 * time.Second)
	if !p.State().Ended {
		t.Error("slideshow did not run without audio")
	}
	p.Replay()
	v.Advance(time.Second)
	p.Close()
	if v.Pending() != 0 {
		t.Errorf("Pending() = %d after close", v.Pending())
	}
}

func TestOnChange(t *testing.T) {
	v := clock.NewVirtual(epoch)
	var last State
	calls := 0
	p := New(v, testCatalog(), WithOnChange(func(s State) { last = s; calls++ }))
	p.Begin()
	v.Advance(time.Second)
	if calls == 0 || last.SceneIndex != 1 {
		t.Errorf("onChange calls=%d last=%+v", calls, last)
	}
}

// queueClock is a real clock whose callbacks wait in a queue until drained,
// the way they wait on the event loop.
func queueClock() (*clock.Real, func()) {
	q := make(chan func(), 64)
	drain := func() {
		for {
			select {
			case f := <-q:
				f()
			default:
				return
			}
		}
	}
	return clock.NewReal(func(f func()) { q <- f }), drain
}

func TestStopWinsOverQueuedReplay(t *testing.T) {
	clk, drain := queueClock()
	p := New(clk, testCatalog(), WithReplayDelay(time.Millisecond))

	p.Begin()
	first := p.State().Session
	p.Replay()
	// The replay timer fires and its callback waits in the queue.
	time.Sleep(50 * time.Millisecond)
	p.Stop()
	drain()

	st := p.State()
	if st.Playing {
		t.Errorf("queued replay restarted the run after Stop: %+v", st)
	}
	if st.Session != first {
		t.Errorf("session = %q, want %q unchanged", st.Session, first)
	}
	if p.ReplayPending() {
		t.Error("replay still pending after Stop")
	}
	p.Close()
}
