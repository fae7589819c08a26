// Package ant implements a two-color grid walker: on a white cell the token
// turns clockwise, on a black cell counter-clockwise, flips the cell it is
// leaving and moves one step along its new heading.
package ant

import (
	"fmt"

	"antgrid/internal/core"
)

// Name is the registry key of the walker. It matches the resource name the
// HTTP API has always used.
const Name = "white-black-grid"

// TraceFunc observes a completed step: the cell that was flipped, the heading
// taken and the position reached.
type TraceFunc func(step int, from, direction, to core.Vector)

// Walker is the token's position and heading.
type Walker struct {
	Position  core.Vector
	Direction core.Vector
}

// Step applies one automaton step to g and returns the moved walker. The
// turn and the flip both read the color of the cell before the move. On
// overflow g is left untouched.
func (w Walker) Step(g *core.Grid) (Walker, error) {
	dir := w.Direction.RotateClockwise()
	if g.IsBlack(w.Position) {
		dir = w.Direction.RotateCounterClockwise()
	}
	next, ok := w.Position.AddChecked(dir)
	if !ok {
		return w, fmt.Errorf("move from %v by %v: %w", w.Position, dir, core.ErrCoordinateOverflow)
	}
	g.Flip(w.Position)
	return Walker{Position: next, Direction: dir}, nil
}

// Simulate runs steps automaton steps over g starting from w and returns the
// final walker. trace may be nil.
func Simulate(g *core.Grid, w Walker, steps int, trace TraceFunc) (Walker, error) {
	if steps < 0 {
		return w, core.ErrNegativeSteps
	}
	for i := 0; i < steps; i++ {
		next, err := w.Step(g)
		if err != nil {
			return w, fmt.Errorf("step %d: %w", i, err)
		}
		if trace != nil {
			trace(i, w.Position, next.Direction, next.Position)
		}
		w = next
	}
	return w, nil
}

// Ant is the stateful form of the walker used through the sim registry.
type Ant struct {
	cfg    Config
	grid   *core.Grid
	walker Walker
	steps  int
	trace  TraceFunc
}

// New returns a walker with the canonical start.
func New() *Ant {
	return NewWithConfig(DefaultConfig())
}

// NewWithConfig returns a walker prepared from cfg.
func NewWithConfig(cfg Config) *Ant {
	a := &Ant{cfg: cfg}
	a.Reset(0)
	return a
}

// Name returns the simulation identifier.
func (a *Ant) Name() string { return Name }

// Grid exposes the current grid.
func (a *Ant) Grid() *core.Grid { return a.grid }

// Position returns the current position.
func (a *Ant) Position() core.Vector { return a.walker.Position }

// Direction returns the current heading.
func (a *Ant) Direction() core.Vector { return a.walker.Direction }

// Steps returns the number of steps taken since the last Reset.
func (a *Ant) Steps() int { return a.steps }

// SetTrace installs fn to observe every subsequent step.
func (a *Ant) SetTrace(fn TraceFunc) { a.trace = fn }

// Reset rebuilds the initial grid and walker. A zero seed uses the
// configured one.
func (a *Ant) Reset(seed int64) {
	effective := seed
	if effective == 0 {
		effective = a.cfg.Seed
	}
	g := core.NewGrid(a.cfg.Black...)
	if a.cfg.ScatterDensity > 0 {
		for _, c := range core.NewRNG(effective).Scatter(a.cfg.Position, a.cfg.ScatterRadius, a.cfg.ScatterDensity) {
			g.Flip(c)
		}
	}
	a.grid = g
	a.walker = Walker{Position: a.cfg.Position, Direction: a.cfg.Direction}
	a.steps = 0
}

// Step advances the walker by one step.
func (a *Ant) Step() error {
	next, err := a.walker.Step(a.grid)
	if err != nil {
		return err
	}
	if a.trace != nil {
		a.trace(a.steps, a.walker.Position, next.Direction, next.Position)
	}
	a.walker = next
	a.steps++
	return nil
}

func init() {
	core.Register(Name, func(cfg map[string]string) core.Sim {
		return NewWithConfig(FromMap(cfg))
	})
}
