package core

import (
	"errors"
	"slices"
	"testing"
)

type countingSim struct {
	steps  int
	failAt int
	grid   *Grid
}

func (c *countingSim) Name() string { return "counting" }
func (c *countingSim) Reset(int64)  { c.steps = 0 }
func (c *countingSim) Grid() *Grid  { return c.grid }
func (c *countingSim) Step() error {
	if c.failAt > 0 && c.steps == c.failAt {
		return ErrCoordinateOverflow
	}
	c.steps++
	return nil
}

func TestAdvance(t *testing.T) {
	sim := &countingSim{grid: NewGrid()}
	if err := Advance(sim, 5); err != nil {
		t.Fatalf("Advance: %v", err)
	}
	if sim.steps != 5 {
		t.Fatalf("expected 5 steps, got %d", sim.steps)
	}
	if err := Advance(sim, -1); !errors.Is(err, ErrNegativeSteps) {
		t.Fatalf("expected ErrNegativeSteps, got %v", err)
	}

	failing := &countingSim{failAt: 3, grid: NewGrid()}
	err := Advance(failing, 10)
	if !errors.Is(err, ErrCoordinateOverflow) {
		t.Fatalf("expected wrapped overflow error, got %v", err)
	}
	if failing.steps != 3 {
		t.Fatalf("Advance must stop at the failing step, got %d", failing.steps)
	}
}

func TestRegisterIgnoresEmpty(t *testing.T) {
	before := Names()
	Register("", func(map[string]string) Sim { return nil })
	Register("nil-factory", nil)
	if !slices.Equal(before, Names()) {
		t.Fatalf("registry changed: %v -> %v", before, Names())
	}

	Register("counting-test", func(map[string]string) Sim { return &countingSim{grid: NewGrid()} })
	defer delete(sims, "counting-test")
	if _, ok := Sims()["counting-test"]; !ok {
		t.Fatal("expected factory to be registered")
	}
	if !slices.Contains(Names(), "counting-test") {
		t.Fatalf("Names missing registered sim: %v", Names())
	}
}
