package catalog

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// TimelineDoc describes when each scene starts. It is an export of the
// compiled-in schedule, not a way to load one.
type TimelineDoc struct {
	Version string          `yaml:"version"`
	Title   string          `yaml:"title"`
	TotalMS int64           `yaml:"total_ms"`
	Scenes  []TimelineEntry `yaml:"scenes"`
}

// TimelineEntry is one scene's slot in the timeline.
type TimelineEntry struct {
	Index      int    `yaml:"index"`
	ID         string `yaml:"id"`
	Title      string `yaml:"title"`
	StartMS    int64  `yaml:"start_ms"`
	DurationMS int64  `yaml:"duration_ms"`
}

// Timeline builds the timeline document for c.
func Timeline(c *Catalog) TimelineDoc {
	doc := TimelineDoc{
		Version: "1.0",
		Title:   Title,
		TotalMS: c.Total().Milliseconds(),
		Scenes:  make([]TimelineEntry, 0, c.Len()),
	}
	for i, s := range c.scenes {
		doc.Scenes = append(doc.Scenes, TimelineEntry{
			Index:      i,
			ID:         s.ID,
			Title:      s.Title,
			StartMS:    c.offsets[i].Milliseconds(),
			DurationMS: s.Duration.Milliseconds(),
		})
	}
	return doc
}

// WriteTimeline writes the YAML timeline for c to w.
func WriteTimeline(w io.Writer, c *Catalog) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(Timeline(c)); err != nil {
		return fmt.Errorf("encode timeline: %w", err)
	}
	return enc.Close()
}
