// Package player owns one playback session: it starts and stops the ambient
// music, the narration and the scene timeline together.
package player

import (
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/satindergrewal/tajshow/internal/catalog"
	"github.com/satindergrewal/tajshow/internal/clock"
	"github.com/satindergrewal/tajshow/internal/timeline"
)

// DefaultReplayDelay lets the music fade-out finish before a replay
// reopens the audio graph.
const DefaultReplayDelay = 400 * time.Millisecond

// AmbientEngine is the background music.
type AmbientEngine interface {
	Start(total time.Duration)
	FadeOut()
	SetMuted(muted bool)
	Close()
}

// Announcer speaks scene narration.
type Announcer interface {
	Start(scenes []catalog.Scene)
	Stop()
}

// State is everything the presentation view needs.
type State struct {
	Session      string  `json:"session"`
	IntroVisible bool    `json:"intro_visible"`
	Playing      bool    `json:"playing"`
	Ended        bool    `json:"ended"`
	SceneIndex   int     `json:"scene_index"`
	Progress     float64 `json:"progress"`
	Muted        bool    `json:"muted"`
}

// Option configures a Player.
type Option func(*Player)

// WithMusic sets the ambient music engine.
func WithMusic(m AmbientEngine) Option {
	return func(p *Player) { p.music = m }
}

// WithNarration sets the narration announcer.
func WithNarration(a Announcer) Option {
	return func(p *Player) { p.narration = a }
}

// WithReplayDelay sets the pause between stopping and restarting on replay.
func WithReplayDelay(d time.Duration) Option {
	return func(p *Player) {
		if d >= 0 {
			p.replayDelay = d
		}
	}
}

// WithOnChange sets a callback run after every state change.
func WithOnChange(fn func(State)) Option {
	return func(p *Player) { p.onChange = fn }
}

// WithTimelineOptions passes options through to the scene timeline.
func WithTimelineOptions(opts ...timeline.Option) Option {
	return func(p *Player) { p.tlOpts = append(p.tlOpts, opts...) }
}

// Player is not safe for concurrent use. Call it, and run its clock's
// callbacks, on one event loop goroutine.
type Player struct {
	clk         clock.Clock
	cat         *catalog.Catalog
	music       AmbientEngine
	narration   Announcer
	timeline    *timeline.Controller
	tlOpts      []timeline.Option
	replayDelay time.Duration
	onChange    func(State)

	intro   bool
	muted   bool
	session string
	replay  clock.Timer
}

// New creates a player for cat showing the intro screen. Music and narration
// are optional.
func New(clk clock.Clock, cat *catalog.Catalog, opts ...Option) *Player {
	p := &Player{
		clk:         clk,
		cat:         cat,
		replayDelay: DefaultReplayDelay,
		intro:       true,
	}
	for _, opt := range opts {
		opt(p)
	}
	tlOpts := append([]timeline.Option{
		timeline.WithOnEnd(p.ended),
		timeline.WithOnChange(func(timeline.State) { p.changed() }),
	}, p.tlOpts...)
	p.timeline = timeline.New(clk, cat.Durations(), tlOpts...)
	return p
}

// Begin hides the intro and starts a fresh session from the first scene.
// Music starts unmuted.
func (p *Player) Begin() {
	p.cancelReplay()
	p.intro = false
	p.muted = false
	p.session = uuid.NewString()
	log.Printf("Session %s: begin (%d scenes, %v)", p.session, p.cat.Len(), p.cat.Total())

	if p.music != nil {
		p.music.SetMuted(false)
		p.music.Start(p.cat.Total())
	}
	if p.narration != nil {
		p.narration.Start(p.cat.Scenes())
	}
	p.timeline.Start()
}

// Stop halts the timeline and narration and fades the music out. Stop is
// idempotent.
func (p *Player) Stop() {
	p.cancelReplay()
	p.timeline.Stop()
	if p.narration != nil {
		p.narration.Stop()
	}
	if p.music != nil {
		p.music.FadeOut()
	}
}

// Replay stops everything and begins again after the replay delay.
func (p *Player) Replay() {
	p.Stop()
	log.Printf("Session %s: replay in %v", p.session, p.replayDelay)
	var t clock.Timer
	t = p.clk.AfterFunc(p.replayDelay, func() {
		if p.replay != t {
			return
		}
		p.replay = nil
		p.Begin()
	})
	p.replay = t
}

// ToggleMute flips the music mute and returns the new setting. Scene index
// and progress are unaffected.
func (p *Player) ToggleMute() bool {
	p.muted = !p.muted
	if p.music != nil {
		p.music.SetMuted(p.muted)
	}
	p.changed()
	return p.muted
}

// Close tears everything down immediately.
func (p *Player) Close() {
	p.cancelReplay()
	p.timeline.Stop()
	if p.narration != nil {
		p.narration.Stop()
	}
	if p.music != nil {
		p.music.Close()
	}
}

// State returns the current state.
func (p *Player) State() State {
	ts := p.timeline.State()
	return State{
		Session:      p.session,
		IntroVisible: p.intro,
		Playing:      ts.Playing,
		Ended:        ts.Ended,
		SceneIndex:   ts.SceneIndex,
		Progress:     ts.Progress,
		Muted:        p.muted,
	}
}

// ReplayPending reports whether a replay is waiting for its delay.
func (p *Player) ReplayPending() bool { return p.replay != nil }

// Catalog returns the scenes being played.
func (p *Player) Catalog() *catalog.Catalog { return p.cat }

func (p *Player) ended() {
	log.Printf("Session %s: ended", p.session)
	if p.music != nil {
		p.music.FadeOut()
	}
}

func (p *Player) cancelReplay() {
	if p.replay != nil {
		p.replay.Stop()
		p.replay = nil
	}
}

func (p *Player) changed() {
	if p.onChange != nil {
		p.onChange(p.State())
	}
}
