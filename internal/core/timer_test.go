package core

import (
	"testing"
	"time"
)

func TestPacerCountsElapsedTicks(t *testing.T) {
	clock := time.Unix(0, 0)
	p := NewPacer(10)
	p.now = func() time.Time { return clock }

	if n := p.Due(); n != 0 {
		t.Fatalf("first call must only start the clock, got %d", n)
	}
	clock = clock.Add(250 * time.Millisecond)
	if n := p.Due(); n != 2 {
		t.Fatalf("expected 2 ticks after 250ms at 10 TPS, got %d", n)
	}
	clock = clock.Add(50 * time.Millisecond)
	if n := p.Due(); n != 1 {
		t.Fatalf("leftover 50ms plus 50ms should make one tick, got %d", n)
	}
	clock = clock.Add(10 * time.Second)
	if n := p.Due(); n != p.maxCatchUp {
		t.Fatalf("expected catch-up cap %d, got %d", p.maxCatchUp, n)
	}
	p.Restart()
	if n := p.Due(); n != 0 {
		t.Fatalf("restart must reset the clock, got %d", n)
	}
}
