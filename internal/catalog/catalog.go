package catalog

import (
	"fmt"
	"time"
)

// Fact is one labelled line in a scene's fact panel.
type Fact struct {
	Label string `json:"label" yaml:"label"`
	Value string `json:"value" yaml:"value"`
}

// Quote is the quoted text shown with a scene.
type Quote struct {
	Text   string `json:"text" yaml:"text"`
	Author string `json:"author" yaml:"author"`
}

// Camera is the slow pan/zoom transform applied to a scene's backdrop.
type Camera struct {
	Scale float64 `json:"scale" yaml:"scale"`
	X     float64 `json:"x" yaml:"x"` // percent offset
	Y     float64 `json:"y" yaml:"y"` // percent offset
}

// Scene is one timed unit of the presentation.
type Scene struct {
	ID          string        `json:"id"`
	Title       string        `json:"title"`
	Subtitle    string        `json:"subtitle"`
	Description [2]string     `json:"description"`
	Facts       []Fact        `json:"facts"`
	Quote       Quote         `json:"quote"`
	Highlight   string        `json:"highlight"`
	Duration    time.Duration `json:"duration"`

	// Visual descriptors, CSS gradient syntax.
	Background string `json:"background"`
	Overlay    string `json:"overlay"`
	Texture    string `json:"texture"`
	Camera     Camera `json:"camera"`
	Accent     string `json:"accent"`

	// Narration is spoken aloud when the scene starts.
	Narration string `json:"narration"`
}

// Catalog is the immutable, ordered list of scenes. The total duration and
// start offsets are computed once at construction.
type Catalog struct {
	scenes  []Scene
	offsets []time.Duration
	total   time.Duration
}

// New builds a catalog from scenes in presentation order. Negative durations
// are treated as zero.
func New(scenes ...Scene) *Catalog {
	c := &Catalog{
		scenes:  make([]Scene, len(scenes)),
		offsets: make([]time.Duration, len(scenes)),
	}
	copy(c.scenes, scenes)

	var cumulative time.Duration
	for i := range c.scenes {
		if c.scenes[i].Duration < 0 {
			c.scenes[i].Duration = 0
		}
		c.offsets[i] = cumulative
		cumulative += c.scenes[i].Duration
	}
	c.total = cumulative
	return c
}

// Len returns the number of scenes.
func (c *Catalog) Len() int { return len(c.scenes) }

// Scene returns the scene at index i.
func (c *Catalog) Scene(i int) Scene { return c.scenes[i] }

// Scenes returns a copy of all scenes in order.
func (c *Catalog) Scenes() []Scene {
	out := make([]Scene, len(c.scenes))
	copy(out, c.scenes)
	return out
}

// Durations returns every scene's duration in order.
func (c *Catalog) Durations() []time.Duration {
	out := make([]time.Duration, len(c.scenes))
	for i, s := range c.scenes {
		out[i] = s.Duration
	}
	return out
}

// Offsets returns each scene's start offset: the sum of the durations of all
// scenes before it.
func (c *Catalog) Offsets() []time.Duration {
	out := make([]time.Duration, len(c.offsets))
	copy(out, c.offsets)
	return out
}

// Total is the sum of all scene durations.
func (c *Catalog) Total() time.Duration { return c.total }

// Index returns the position of the scene with the given id, or -1.
func (c *Catalog) Index(id string) int {
	for i, s := range c.scenes {
		if s.ID == id {
			return i
		}
	}
	return -1
}

// RunTimeMinutes formats the total duration in minutes with one decimal,
// e.g. "4.4".
func (c *Catalog) RunTimeMinutes() string {
	return fmt.Sprintf("%.1f", c.total.Minutes())
}
