package core

import "time"

// Pacer decouples the simulation tick rate from the frame rate. Frontends
// call Ready once per frame; it fires at most once per call and never tries
// to catch up on missed intervals.
type Pacer struct {
	interval time.Duration
	last     time.Time
	started  bool
}

// NewPacer creates a pacer firing every interval.
func NewPacer(interval time.Duration) *Pacer {
	return &Pacer{interval: interval}
}

// Ready reports whether a tick is due at now. The first call always fires.
func (p *Pacer) Ready(now time.Time) bool {
	if !p.started {
		p.started = true
		p.last = now
		return true
	}
	if now.Sub(p.last) < p.interval {
		return false
	}
	p.last = now
	return true
}

// Reset makes the next Ready call fire immediately.
func (p *Pacer) Reset() {
	p.started = false
}

// Interval returns the configured tick interval.
func (p *Pacer) Interval() time.Duration {
	return p.interval
}
