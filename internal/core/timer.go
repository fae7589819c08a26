package core

import "time"

// Pacer reports how many fixed-length ticks have elapsed between calls. The
// viewer uses it to grow the step count at a steady rate independent of the
// frame rate.
type Pacer struct {
	step        time.Duration
	accumulator time.Duration
	last        time.Time
	maxCatchUp  int
	now         func() time.Time
}

// NewPacer constructs a Pacer targeting the given ticks per second.
func NewPacer(tps int) *Pacer {
	p := &Pacer{maxCatchUp: 4, now: time.Now}
	p.SetTPS(tps)
	return p
}

// SetTPS changes the tick rate. Non-positive rates fall back to 10.
func (p *Pacer) SetTPS(tps int) {
	if tps <= 0 {
		tps = 10
	}
	p.step = time.Second / time.Duration(tps)
}

// Due returns the number of ticks elapsed since the previous call, capped so
// that a stalled caller does not receive a burst.
func (p *Pacer) Due() int {
	now := p.now()
	if p.last.IsZero() {
		p.last = now
		return 0
	}
	p.accumulator += now.Sub(p.last)
	p.last = now
	n := 0
	for p.accumulator >= p.step {
		p.accumulator -= p.step
		n++
	}
	if n > p.maxCatchUp {
		n = p.maxCatchUp
		p.accumulator = 0
	}
	return n
}

// Restart discards any accumulated time.
func (p *Pacer) Restart() {
	p.accumulator = 0
	p.last = time.Time{}
}
