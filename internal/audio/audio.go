// Package audio renders the show's sound: an in-process oscillator graph for
// the ambient score, a bus for narration clips, and a real-time pacer that
// emits 20 ms PCM frames for the stream handlers.
package audio

import (
	"errors"
	"time"
)

const (
	SampleRate    = 48000
	Channels      = 2
	BitDepth      = 16
	FrameDuration = 20 * time.Millisecond
	FrameSize     = 960                  // samples per channel per 20ms frame
	FrameSamples  = FrameSize * Channels // total interleaved samples per frame
	FrameBytes    = FrameSamples * 2     // bytes per frame (int16 = 2 bytes)
)

var (
	// ErrUnavailable means no audio context can be opened on this host.
	ErrUnavailable = errors.New("audio output unavailable")
	// ErrClosed is returned when using or closing an already closed context.
	ErrClosed = errors.New("audio context closed")
	// ErrAlreadyStopped is returned when stopping a voice that has already ended.
	ErrAlreadyStopped = errors.New("voice already stopped")
)

// Source fills buf with interleaved stereo samples, overwriting its contents.
type Source interface {
	Render(buf []int16)
}

func clip16(v float64) int16 {
	if v > 32767 {
		return 32767
	}
	if v < -32768 {
		return -32768
	}
	return int16(v)
}
