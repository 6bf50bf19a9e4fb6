package core

import "time"

// Pacer throttles an action to at most one occurrence per interval using a
// wall-clock accumulator. It is used to cap LED transmissions independently
// of the simulation tick rate.
type Pacer struct {
	interval    time.Duration
	accumulator time.Duration
	last        time.Time
}

// NewPacer constructs a Pacer with the given minimum interval. The first
// Ready call reports true immediately.
func NewPacer(interval time.Duration) *Pacer {
	if interval <= 0 {
		interval = 50 * time.Millisecond
	}
	p := &Pacer{interval: interval}
	p.accumulator = interval
	return p
}

// SetInterval changes the pacing interval. It is safe to call from the main loop.
func (p *Pacer) SetInterval(interval time.Duration) {
	if interval <= 0 {
		return
	}
	p.interval = interval
}

// Ready reports whether enough wall time has elapsed since the last accepted
// occurrence. When it returns true the budget is consumed.
func (p *Pacer) Ready() bool {
	now := time.Now()
	if p.last.IsZero() {
		p.last = now
	}
	delta := now.Sub(p.last)
	p.last = now
	p.accumulator += delta
	if p.accumulator >= p.interval {
		// Cap the banked budget so a long stall cannot trigger a burst of
		// back-to-back sends afterwards.
		p.accumulator = 0
		return true
	}
	return false
}
