// Package speech turns narration text into audio. A Queue speaks utterances
// one at a time through a synthesis Backend and plays the result on a Sink.
package speech

import (
	"context"
	"errors"
)

// ErrUnavailable means no speech synthesizer is installed.
var ErrUnavailable = errors.New("speech synthesis unavailable")

// Voice is one synthesizer voice.
type Voice struct {
	Name    string `json:"name"`
	Lang    string `json:"lang"`
	Default bool   `json:"default,omitempty"`
}

// Utterance is a piece of text with its speaking parameters. Rate, Pitch and
// Volume are multipliers where 1 is the voice's normal delivery. A nil Voice
// leaves the choice to the backend.
type Utterance struct {
	Text   string
	Lang   string
	Rate   float64
	Pitch  float64
	Volume float64
	Voice  *Voice
}

// Engine speaks utterances.
type Engine interface {
	Voices() []Voice
	Speak(u Utterance)
	Cancel()
}

// Backend synthesizes utterances to interleaved 48kHz stereo PCM.
type Backend interface {
	Voices(ctx context.Context) ([]Voice, error)
	Synthesize(ctx context.Context, u Utterance) ([]int16, error)
}

// Sink plays synthesized audio. Play's channel closes when playback ends or
// is flushed.
type Sink interface {
	Play(samples []int16) <-chan struct{}
	Flush()
}
