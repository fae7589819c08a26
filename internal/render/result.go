package render

import (
	"fmt"

	"antgrid/internal/core"
)

// Result is a rendered simulation labelled with a caller-supplied ID. The ID
// only names the output; it is never used to look a run up.
type Result struct {
	ID         string
	Steps      int
	BlackCells int
	Bounds     Rect
	Rows       [][]byte
}

// NewResult renders g.
func NewResult(id string, steps int, g *core.Grid) Result {
	return Result{
		ID:         id,
		Steps:      steps,
		BlackCells: g.Len(),
		Bounds:     Bounds(g),
		Rows:       Draw(g),
	}
}

// Run advances a freshly reset sim by steps and renders its grid, refusing
// renders above maxCells with ErrTooLarge.
func Run(sim core.Sim, steps int, id string, maxCells int64) (Result, error) {
	if err := core.Advance(sim, steps); err != nil {
		return Result{}, err
	}
	g := sim.Grid()
	rows, err := DrawLimit(g, maxCells)
	if err != nil {
		return Result{}, fmt.Errorf("%s after %d steps: %w", sim.Name(), steps, err)
	}
	return Result{
		ID:         id,
		Steps:      steps,
		BlackCells: g.Len(),
		Bounds:     Bounds(g),
		Rows:       rows,
	}, nil
}

// Filename is the attachment name used for the text form of the result.
func (r Result) Filename() string {
	return fmt.Sprintf("simulation-%s.txt", r.ID)
}
