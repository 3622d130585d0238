package speech

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"
)

type fakeBackend struct {
	voices []Voice
	// block, when set, makes Synthesize wait for ctx for texts it contains.
	block map[string]bool
	fail  map[string]bool

	started chan string
}

func (b *fakeBackend) Voices(ctx context.Context) ([]Voice, error) {
	return b.voices, nil
}

func (b *fakeBackend) Synthesize(ctx context.Context, u Utterance) ([]int16, error) {
	if b.started != nil {
		b.started <- u.Text
	}
	if b.fail[u.Text] {
		return nil, errors.New("boom")
	}
	if b.block[u.Text] {
		<-ctx.Done()
		return nil, ctx.Err()
	}
	return []int16{int16(len(u.Text))}, nil
}

type fakeSink struct {
	mu      sync.Mutex
	played  chan []int16
	flushes int
}

func newFakeSink() *fakeSink { return &fakeSink{played: make(chan []int16, 16)} }

func (s *fakeSink) Play(samples []int16) <-chan struct{} {
	s.played <- samples
	done := make(chan struct{})
	close(done)
	return done
}

func (s *fakeSink) Flush() {
	s.mu.Lock()
	s.flushes++
	s.mu.Unlock()
}

func (s *fakeSink) Flushes() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.flushes
}

func expectPlayed(t *testing.T, s *fakeSink, want int16) {
	t.Helper()
	select {
	case got := <-s.played:
		if len(got) != 1 || got[0] != want {
			t.Errorf("played %v, want [%d]", got, want)
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("nothing played, want [%d]", want)
	}
}

func expectSilence(t *testing.T, s *fakeSink) {
	t.Helper()
	select {
	case got := <-s.played:
		t.Errorf("unexpected playback %v", got)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestQueueSpeaksInOrder(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sink := newFakeSink()
	q := NewQueue(&fakeBackend{}, sink)
	q.Speak(Utterance{Text: "a"})
	q.Speak(Utterance{Text: "bbb"})
	go q.Run(ctx)

	expectPlayed(t, sink, 1)
	expectPlayed(t, sink, 3)
}

func TestQueueLoadsVoices(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	b := &fakeBackend{voices: []Voice{{Name: "hi-IN-SwaraNeural", Lang: "hi-IN"}}, started: make(chan string, 1)}
	q := NewQueue(b, newFakeSink())
	if len(q.Voices()) != 0 {
		t.Fatal("voices before Run")
	}
	go q.Run(ctx)
	q.Speak(Utterance{Text: "x"})
	<-b.started // voices are loaded before the first utterance
	if got := q.Voices(); len(got) != 1 || got[0].Lang != "hi-IN" {
		t.Errorf("Voices() = %v", got)
	}
}

func TestQueueCancelAbortsAndDropsPending(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	b := &fakeBackend{block: map[string]bool{"slow": true}, started: make(chan string, 4)}
	sink := newFakeSink()
	q := NewQueue(b, sink)
	go q.Run(ctx)

	q.Speak(Utterance{Text: "slow"})
	q.Speak(Utterance{Text: "stale"})
	if got := <-b.started; got != "slow" {
		t.Fatalf("first synthesized %q, want slow", got)
	}

	q.Cancel()
	if sink.Flushes() != 1 {
		t.Errorf("Flush called %d times, want 1", sink.Flushes())
	}

	q.Speak(Utterance{Text: "fresh"})
	select {
	case got := <-b.started:
		if got != "fresh" {
			t.Errorf("synthesized %q after cancel, want fresh", got)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("queue stalled after cancel")
	}
	expectPlayed(t, sink, 5)
	expectSilence(t, sink)
}

func TestQueueSkipsFailures(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sink := newFakeSink()
	q := NewQueue(&fakeBackend{fail: map[string]bool{"bad": true}}, sink)
	q.Speak(Utterance{Text: "bad"})
	q.Speak(Utterance{Text: "ok"})
	go q.Run(ctx)

	expectPlayed(t, sink, 2)
}

func TestRatePitchMapping(t *testing.T) {
	tests := []struct {
		in       float64
		rate, hz string
	}{
		{0.92, "-8%", "-8Hz"},
		{0.95, "-5%", "-5Hz"},
		{1, "+0%", "+0Hz"},
		{1.25, "+25%", "+25Hz"},
		{0, "+0%", "+0Hz"},
	}
	for _, tt := range tests {
		if got := RatePercent(tt.in); got != tt.rate {
			t.Errorf("RatePercent(%v) = %q, want %q", tt.in, got, tt.rate)
		}
		if got := PitchHz(tt.in); got != tt.hz {
			t.Errorf("PitchHz(%v) = %q, want %q", tt.in, got, tt.hz)
		}
	}
}

func TestEdgeTTSArgs(t *testing.T) {
	e := NewEdgeTTS("")
	args := e.args(Utterance{Text: "नमस्ते", Rate: 0.92, Pitch: 0.95}, "/tmp/x.mp3")
	want := []string{"--voice", DefaultEdgeVoice, "--rate=-8%", "--pitch=-5Hz", "--text=नमस्ते", "--write-media", "/tmp/x.mp3"}
	if len(args) != len(want) {
		t.Fatalf("args = %q, want %q", args, want)
	}
	for i := range want {
		if args[i] != want[i] {
			t.Errorf("args[%d] = %q, want %q", i, args[i], want[i])
		}
	}

	args = e.args(Utterance{Voice: &Voice{Name: "hi-IN-MadhurNeural"}}, "x")
	if args[1] != "hi-IN-MadhurNeural" {
		t.Errorf("voice = %q, want hi-IN-MadhurNeural", args[1])
	}
}

func TestParseVoiceList(t *testing.T) {
	table := `Name                               Gender    ContentCategories      VoicePersonalities
---------------------------------  --------  ---------------------  --------------------------------------
en-US-AriaNeural                   Female    News, Novel            Positive, Confident
hi-IN-MadhurNeural                 Male      General                Friendly, Positive
hi-IN-SwaraNeural                  Female    General                Friendly, Positive
`
	legacy := `Name: hi-IN-SwaraNeural
Gender: Female

Name: en-GB-SoniaNeural
Gender: Female
`
	got := ParseVoiceList([]byte(table))
	if len(got) != 3 || got[1].Name != "hi-IN-MadhurNeural" || got[1].Lang != "hi-IN" {
		t.Errorf("table layout parsed as %v", got)
	}
	got = ParseVoiceList([]byte(legacy))
	if len(got) != 2 || got[0].Name != "hi-IN-SwaraNeural" || got[1].Lang != "en-GB" {
		t.Errorf("legacy layout parsed as %v", got)
	}

	long := `Name: Microsoft Server Speech Text to Speech Voice (hi-IN, SwaraNeural)
ShortName: hi-IN-SwaraNeural
Gender: Female
Locale: hi-IN
`
	got = ParseVoiceList([]byte(long))
	if len(got) != 1 || got[0].Name != "hi-IN-SwaraNeural" {
		t.Errorf("ShortName layout parsed as %v", got)
	}
}

func TestCheckInstalledMissing(t *testing.T) {
	e := NewEdgeTTS("tajshow-no-such-tts-binary")
	if err := e.CheckInstalled(); !errors.Is(err, ErrUnavailable) {
		t.Errorf("CheckInstalled() = %v, want ErrUnavailable", err)
	}
}
