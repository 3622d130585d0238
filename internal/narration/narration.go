// Package narration speaks each scene's text at that scene's start offset.
package narration

import (
	"log"
	"strings"
	"time"

	"github.com/satindergrewal/tajshow/internal/catalog"
	"github.com/satindergrewal/tajshow/internal/clock"
	"github.com/satindergrewal/tajshow/internal/schedule"
	"github.com/satindergrewal/tajshow/internal/speech"
)

// Config holds the delivery settings shared by every utterance.
type Config struct {
	Lang   string
	Lead   time.Duration
	Rate   float64
	Pitch  float64
	Volume float64
}

// DefaultConfig is slightly slow, slightly low Hindi narration.
func DefaultConfig() Config {
	return Config{
		Lang:   "hi-IN",
		Lead:   800 * time.Millisecond,
		Rate:   0.92,
		Pitch:  0.95,
		Volume: 1,
	}
}

// Scheduler speaks scene narration on a timeline. Like the timeline
// controller it is driven from one event loop goroutine.
type Scheduler struct {
	clk    clock.Clock
	engine speech.Engine
	cfg    Config

	sched *schedule.Schedule
	voice *speech.Voice
}

// New creates a scheduler. A nil engine disables narration.
func New(clk clock.Clock, engine speech.Engine, cfg Config) *Scheduler {
	if cfg.Lang == "" {
		cfg.Lang = DefaultConfig().Lang
	}
	return &Scheduler{clk: clk, engine: engine, cfg: cfg}
}

// Start cancels anything pending and schedules one utterance per scene at
// Lead plus the scene's cumulative start offset.
func (s *Scheduler) Start(scenes []catalog.Scene) {
	if s.engine == nil {
		return
	}
	s.cancel()
	s.engine.Cancel()

	s.voice = SelectVoice(s.engine.Voices(), s.cfg.Lang)
	if s.voice != nil {
		log.Printf("Narration voice: %s (%s)", s.voice.Name, s.voice.Lang)
	}

	s.sched = schedule.New(s.clk)
	var offset time.Duration
	for _, sc := range scenes {
		text := sc.Narration
		if text != "" {
			s.sched.Add(s.cfg.Lead+offset, func() { s.speak(text) })
		}
		if sc.Duration > 0 {
			offset += sc.Duration
		}
	}
	s.sched.Start()
}

func (s *Scheduler) speak(text string) {
	s.engine.Speak(speech.Utterance{
		Text:   text,
		Lang:   s.cfg.Lang,
		Rate:   s.cfg.Rate,
		Pitch:  s.cfg.Pitch,
		Volume: s.cfg.Volume,
		Voice:  s.voice,
	})
}

// Stop cancels pending utterances and silences the engine. Stop is idempotent.
func (s *Scheduler) Stop() {
	if s.engine == nil {
		return
	}
	s.cancel()
	s.engine.Cancel()
}

// Pending reports how many utterances are still to be spoken in this run.
func (s *Scheduler) Pending() int {
	if s.sched == nil || s.sched.Cancelled() {
		return 0
	}
	return s.sched.Len() - s.sched.Fired()
}

func (s *Scheduler) cancel() {
	if s.sched != nil {
		s.sched.Cancel()
		s.sched = nil
	}
}

// SelectVoice picks a voice for lang: first one whose tag starts with the
// primary language subtag, then one whose tag contains it, else nil for the
// engine default. Matching ignores case.
func SelectVoice(voices []speech.Voice, lang string) *speech.Voice {
	primary := strings.ToLower(strings.SplitN(lang, "-", 2)[0])
	if primary == "" {
		return nil
	}
	for i := range voices {
		if strings.HasPrefix(strings.ToLower(voices[i].Lang), primary) {
			v := voices[i]
			return &v
		}
	}
	for i := range voices {
		if strings.Contains(strings.ToLower(voices[i].Lang), primary) {
			v := voices[i]
			return &v
		}
	}
	return nil
}
