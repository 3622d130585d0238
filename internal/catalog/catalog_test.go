package catalog

import (
	"bytes"
	"testing"
	"time"

	"gopkg.in/yaml.v3"
)

func scenes(durations ...time.Duration) []Scene {
	out := make([]Scene, len(durations))
	for i, d := range durations {
		out[i] = Scene{ID: string(rune('a' + i)), Title: "scene", Duration: d}
	}
	return out
}

func TestOffsetsArePrefixSums(t *testing.T) {
	c := New(scenes(1000*time.Millisecond, 2000*time.Millisecond, 1500*time.Millisecond)...)

	want := []time.Duration{0, 1000 * time.Millisecond, 3000 * time.Millisecond}
	got := c.Offsets()
	if len(got) != len(want) {
		t.Fatalf("Offsets() len = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Offsets()[%d] = %v, want %v", i, got[i], want[i])
		}
	}
	if c.Total() != 4500*time.Millisecond {
		t.Errorf("Total() = %v, want 4.5s", c.Total())
	}
}

func TestOffsetsNondecreasing(t *testing.T) {
	c := New(scenes(0, 3*time.Second, 0, time.Second)...)
	prev := time.Duration(-1)
	for i, off := range c.Offsets() {
		if off < prev {
			t.Errorf("offset %d = %v decreased from %v", i, off, prev)
		}
		prev = off
	}
}

func TestNegativeDurationClamped(t *testing.T) {
	c := New(scenes(-time.Second, 2*time.Second)...)
	if c.Scene(0).Duration != 0 {
		t.Errorf("negative duration = %v, want 0", c.Scene(0).Duration)
	}
	if c.Total() != 2*time.Second {
		t.Errorf("Total() = %v, want 2s", c.Total())
	}
}

func TestEmptyCatalog(t *testing.T) {
	c := New()
	if c.Len() != 0 || c.Total() != 0 || len(c.Offsets()) != 0 {
		t.Errorf("empty catalog: len=%d total=%v offsets=%v", c.Len(), c.Total(), c.Offsets())
	}
}

func TestNewCopiesInput(t *testing.T) {
	in := scenes(time.Second)
	c := New(in...)
	in[0].Title = "mutated"
	if c.Scene(0).Title != "scene" {
		t.Errorf("catalog shares caller slice: title = %q", c.Scene(0).Title)
	}
	out := c.Scenes()
	out[0].Title = "mutated"
	if c.Scene(0).Title != "scene" {
		t.Errorf("Scenes() exposes internal slice")
	}
}

func TestDefaultCatalog(t *testing.T) {
	c := Default()
	if c.Len() != 6 {
		t.Fatalf("Default() has %d scenes, want 6", c.Len())
	}
	if c.Total() != 264*time.Second {
		t.Errorf("Default().Total() = %v, want 4m24s", c.Total())
	}
	if got := c.RunTimeMinutes(); got != "4.4" {
		t.Errorf("RunTimeMinutes() = %q, want 4.4", got)
	}

	seen := map[string]bool{}
	for i, s := range c.Scenes() {
		if s.ID == "" || seen[s.ID] {
			t.Errorf("scene %d has empty or duplicate id %q", i, s.ID)
		}
		seen[s.ID] = true
		if s.Narration == "" {
			t.Errorf("scene %q has no narration", s.ID)
		}
		if len(s.Facts) != 3 {
			t.Errorf("scene %q has %d facts, want 3", s.ID, len(s.Facts))
		}
		if s.Duration <= 0 {
			t.Errorf("scene %q duration = %v", s.ID, s.Duration)
		}
	}
	if c.Index("craft") != 2 {
		t.Errorf("Index(craft) = %d, want 2", c.Index("craft"))
	}
	if c.Index("missing") != -1 {
		t.Errorf("Index(missing) = %d, want -1", c.Index("missing"))
	}
}

func TestWriteTimeline(t *testing.T) {
	c := New(scenes(1000*time.Millisecond, 2000*time.Millisecond, 1500*time.Millisecond)...)

	var buf bytes.Buffer
	if err := WriteTimeline(&buf, c); err != nil {
		t.Fatalf("WriteTimeline: %v", err)
	}

	var doc TimelineDoc
	if err := yaml.Unmarshal(buf.Bytes(), &doc); err != nil {
		t.Fatalf("timeline is not valid yaml: %v", err)
	}
	if doc.TotalMS != 4500 {
		t.Errorf("total_ms = %d, want 4500", doc.TotalMS)
	}
	if len(doc.Scenes) != 3 {
		t.Fatalf("scenes = %d, want 3", len(doc.Scenes))
	}
	if doc.Scenes[2].StartMS != 3000 || doc.Scenes[2].DurationMS != 1500 {
		t.Errorf("scene 2 = %+v, want start 3000 duration 1500", doc.Scenes[2])
	}
}
