package core

import "sort"

// Grid is an unbounded two-color grid. Only black cells are stored; every
// other position is white.
type Grid struct {
	black map[Vector]struct{}
}

// NewGrid returns a grid with the given cells black. Duplicates collapse.
func NewGrid(cells ...Vector) *Grid {
	g := &Grid{black: make(map[Vector]struct{}, len(cells))}
	for _, c := range cells {
		g.black[c] = struct{}{}
	}
	return g
}

// IsBlack reports whether the cell at p is black.
func (g *Grid) IsBlack(p Vector) bool {
	_, ok := g.black[p]
	return ok
}

// Flip toggles the color of the cell at p.
func (g *Grid) Flip(p Vector) {
	if _, ok := g.black[p]; ok {
		delete(g.black, p)
		return
	}
	if g.black == nil {
		g.black = make(map[Vector]struct{})
	}
	g.black[p] = struct{}{}
}

// Len returns the number of black cells.
func (g *Grid) Len() int { return len(g.black) }

// Cells returns the black cells ordered top row first (y descending), then
// left to right.
func (g *Grid) Cells() []Vector {
	out := make([]Vector, 0, len(g.black))
	for c := range g.black {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Y != out[j].Y {
			return out[i].Y > out[j].Y
		}
		return out[i].X < out[j].X
	})
	return out
}

// Each calls fn for every black cell in unspecified order.
func (g *Grid) Each(fn func(Vector)) {
	for c := range g.black {
		fn(c)
	}
}

// Clone returns an independent copy of the grid.
func (g *Grid) Clone() *Grid {
	c := &Grid{black: make(map[Vector]struct{}, len(g.black))}
	for p := range g.black {
		c.black[p] = struct{}{}
	}
	return c
}

// Reset turns every cell white.
func (g *Grid) Reset() {
	clear(g.black)
}
