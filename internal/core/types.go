package core

import (
	"errors"
	"fmt"
	"sort"
)

// ErrNegativeSteps is returned when a run is asked for fewer than zero steps.
var ErrNegativeSteps = errors.New("steps must not be negative")

// Sim defines the minimal contract a grid walker must implement.
type Sim interface {
	Name() string
	Reset(seed int64)
	Step() error
	Grid() *Grid
}

// Factory constructs a Sim using an optional configuration map.
type Factory func(cfg map[string]string) Sim

var sims = map[string]Factory{}

// Register adds a simulation factory under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	sims[name] = f
}

// Sims exposes the registry of available simulation factories.
func Sims() map[string]Factory {
	return sims
}

// Names returns the registered simulation names in sorted order.
func Names() []string {
	names := make([]string, 0, len(sims))
	for name := range sims {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Advance steps sim n times, stopping at the first error.
func Advance(sim Sim, n int) error {
	if n < 0 {
		return ErrNegativeSteps
	}
	for i := 0; i < n; i++ {
		if err := sim.Step(); err != nil {
			return fmt.Errorf("%s step %d: %w", sim.Name(), i, err)
		}
	}
	return nil
}
