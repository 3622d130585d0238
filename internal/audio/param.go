package audio

import (
	"math"
	"sort"
)

type eventKind int

const (
	stepEvent eventKind = iota
	linearEvent
	expEvent
)

type paramEvent struct {
	kind  eventKind
	time  float64 // seconds on the context clock
	value float64
}

// Param is an automatable value such as a gain or a frequency. Events are
// kept in time order; a ramp runs from the previous event to its own time.
// Param is not locked; mutate it only inside Context.Automate.
type Param struct {
	value  float64
	events []paramEvent
}

// NewParam creates a param holding v.
func NewParam(v float64) *Param {
	return &Param{value: v}
}

// Set replaces the value and discards all scheduled events.
func (p *Param) Set(v float64) {
	p.value = v
	p.events = nil
}

// SetValueAtTime jumps to v at t.
func (p *Param) SetValueAtTime(v, t float64) {
	p.insert(paramEvent{kind: stepEvent, time: t, value: v})
}

// LinearRampToValueAtTime ramps linearly from the previous event to v at t.
func (p *Param) LinearRampToValueAtTime(v, t float64) {
	p.insert(paramEvent{kind: linearEvent, time: t, value: v})
}

// ExponentialRampToValueAtTime ramps exponentially from the previous event to
// v at t. Both ends must be non-zero and of the same sign, otherwise the
// value holds until t.
func (p *Param) ExponentialRampToValueAtTime(v, t float64) {
	p.insert(paramEvent{kind: expEvent, time: t, value: v})
}

// CancelScheduledValues drops every event at or after t and holds the value
// the param had at t, so a following ramp starts from what is audible.
func (p *Param) CancelScheduledValues(t float64) {
	held := p.ValueAt(t)
	kept := p.events[:0]
	for _, e := range p.events {
		if e.time < t {
			kept = append(kept, e)
		}
	}
	p.events = append(kept, paramEvent{kind: stepEvent, time: t, value: held})
}

func (p *Param) insert(e paramEvent) {
	i := sort.Search(len(p.events), func(i int) bool { return p.events[i].time > e.time })
	p.events = append(p.events, paramEvent{})
	copy(p.events[i+1:], p.events[i:])
	p.events[i] = e
}

// ValueAt returns the param's value at time t.
func (p *Param) ValueAt(t float64) float64 {
	prevT, prevV := 0.0, p.value
	for _, e := range p.events {
		if e.time <= t {
			prevT, prevV = e.time, e.value
			continue
		}
		span := e.time - prevT
		if span <= 0 {
			return prevV
		}
		frac := (t - prevT) / span
		switch e.kind {
		case linearEvent:
			return prevV + (e.value-prevV)*frac
		case expEvent:
			if prevV == 0 || e.value == 0 || (prevV > 0) != (e.value > 0) {
				return prevV
			}
			return prevV * math.Pow(e.value/prevV, frac)
		default:
			return prevV
		}
	}
	return prevV
}
