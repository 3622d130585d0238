// Package view renders the presentation: a page model built from the
// playback state, its HTML, and generated poster and QR images.
package view

import (
	"fmt"
	"math"

	"github.com/satindergrewal/tajshow/internal/catalog"
	"github.com/satindergrewal/tajshow/internal/player"
)

// Action is a user action the page offers.
type Action string

const (
	ActionBegin  Action = "begin"
	ActionReplay Action = "replay"
	ActionMute   Action = "mute"
	ActionUnmute Action = "unmute"
)

// MapEntry is one line of the scene map.
type MapEntry struct {
	Index  int    `json:"index"`
	ID     string `json:"id"`
	Title  string `json:"title"`
	Accent string `json:"accent"`
	Active bool   `json:"active"`
}

// Page is everything the presentation shows at one instant.
type Page struct {
	Title        string `json:"title"`
	Tagline      string `json:"tagline"`
	RunTime      string `json:"run_time_minutes"`
	Session      string `json:"session,omitempty"`
	IntroVisible bool   `json:"intro_visible"`
	Playing      bool   `json:"playing"`
	Ended        bool   `json:"ended"`
	Muted        bool   `json:"muted"`

	SceneIndex int           `json:"scene_index"`
	Scene      catalog.Scene `json:"scene"`
	Transform  string        `json:"transform"`
	Poster     string        `json:"poster,omitempty"`

	Progress        float64 `json:"progress"`
	ProgressPercent float64 `json:"progress_percent"`

	Map     []MapEntry `json:"scene_map"`
	Actions []Action   `json:"actions"`
}

// Build derives the page from the playback state. It has no side effects.
func Build(st player.State, cat *catalog.Catalog) Page {
	p := Page{
		Title:        catalog.Title,
		Tagline:      catalog.Tagline,
		RunTime:      cat.RunTimeMinutes(),
		Session:      st.Session,
		IntroVisible: st.IntroVisible,
		Playing:      st.Playing,
		Ended:        st.Ended,
		Muted:        st.Muted,
		Progress:     clamp01(st.Progress),
	}
	p.ProgressPercent = math.Min(100, p.Progress*100)

	if cat.Len() > 0 {
		idx := st.SceneIndex
		if idx < 0 {
			idx = 0
		}
		if idx >= cat.Len() {
			idx = cat.Len() - 1
		}
		p.SceneIndex = idx
		p.Scene = cat.Scene(idx)
		p.Transform = Transform(p.Scene.Camera)
		p.Poster = fmt.Sprintf("/api/scenes/%s/poster.png", p.Scene.ID)
	}

	for i, sc := range cat.Scenes() {
		p.Map = append(p.Map, MapEntry{
			Index:  i,
			ID:     sc.ID,
			Title:  sc.Title,
			Accent: sc.Accent,
			Active: i == p.SceneIndex,
		})
	}

	if st.IntroVisible {
		p.Actions = append(p.Actions, ActionBegin)
	}
	if st.Playing || st.Ended {
		p.Actions = append(p.Actions, ActionReplay)
	}
	if st.Muted {
		p.Actions = append(p.Actions, ActionUnmute)
	} else {
		p.Actions = append(p.Actions, ActionMute)
	}
	return p
}

// Transform is the CSS transform for a scene's slow camera move.
func Transform(c catalog.Camera) string {
	return fmt.Sprintf("scale(%g) translate(%g%%, %g%%)", c.Scale, c.X, c.Y)
}

// Has reports whether the page offers a.
func (p Page) Has(a Action) bool {
	for _, x := range p.Actions {
		if x == a {
			return true
		}
	}
	return false
}

func clamp01(v float64) float64 {
	if v < 0 || math.IsNaN(v) {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
