package app

import (
	"fmt"

	"antgrid/internal/core"
	"antgrid/internal/render"
)

// walker is implemented by sims that expose the token position.
type walker interface {
	Position() core.Vector
	Direction() core.Vector
}

// Frame is one independent run prepared for display.
type Frame struct {
	Steps    int
	Rows     [][]byte
	Bounds   render.Rect
	Position core.Vector
	Heading  core.Vector
	Snapshot core.ParameterSnapshot
}

// RunFrame builds a fresh sim from factory and params, advances it steps
// times and renders it. Renders above maxCells are refused.
func RunFrame(factory core.Factory, params map[string]string, steps int, maxCells int64) (Frame, error) {
	sim := factory(params)
	sim.Reset(0)
	res, err := render.Run(sim, steps, "", maxCells)
	if err != nil {
		return Frame{}, fmt.Errorf("%d steps: %w", steps, err)
	}
	f := Frame{Steps: steps, Rows: res.Rows, Bounds: res.Bounds}
	if w, ok := sim.(walker); ok {
		f.Position = w.Position()
		f.Heading = w.Direction()
	}
	if p, ok := sim.(core.ParameterProvider); ok {
		f.Snapshot = p.Parameters()
	}
	return f, nil
}

// keepSteps is the step count to show after a run of requested steps failed:
// the last rendered count, or requested when nothing has rendered yet.
func keepSteps(last Frame, requested int) int {
	if last.Rows == nil {
		return requested
	}
	return last.Steps
}

// nextSteps applies a step-count adjustment, keeping the count at least 1.
func nextSteps(steps, delta int, double, halve bool) int {
	switch {
	case double:
		steps *= 2
	case halve:
		steps /= 2
	}
	steps += delta
	return max(steps, 1)
}
