package ui

import (
	"fmt"

	"antgrid/internal/core"
	"antgrid/internal/render"
)

// KeyHelp lists the viewer bindings shown under the parameters.
var KeyHelp = []string{
	"Up/Down   steps x2 / /2",
	"Left/Right  -/+ stride",
	"Space     play/pause",
	"R         reset steps",
	"1         walker marker",
	"2         origin marker",
	"Q/Esc     quit",
}

// Lines formats a parameter snapshot for the HUD, one group header followed
// by its "label: value" rows.
func Lines(title string, snap core.ParameterSnapshot) []string {
	lines := []string{title}
	for _, g := range snap.Groups {
		lines = append(lines, "", "["+g.Name+"]")
		for _, p := range g.Params {
			lines = append(lines, fmt.Sprintf("%s: %s", p.Label, p.Value))
		}
	}
	return lines
}

// CellOrigin returns the top-left screen pixel of cell p when the rendered
// box b is drawn at the given scale, and whether p is inside b.
func CellOrigin(b render.Rect, p core.Vector, scale int) (float64, float64, bool) {
	if !b.Contains(p) {
		return 0, 0, false
	}
	return float64(p.X-b.MinX) * float64(scale), float64(b.MaxY-p.Y) * float64(scale), true
}

// FitScale returns the largest integer scale at which a cols x rows matrix
// fits in w x h pixels, never less than 1.
func FitScale(cols, rows, w, h int) int {
	if cols <= 0 || rows <= 0 {
		return 1
	}
	return max(1, min(w/cols, h/rows))
}
