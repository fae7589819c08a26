package render

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"math/bits"

	"antgrid/internal/core"
)

const (
	// Black is the character drawn for black cells.
	Black = '#'
	// White is the character drawn for white cells.
	White = '-'
)

// DefaultMaxCells is the render size the binaries accept unless configured
// otherwise.
const DefaultMaxCells = 4_000_000

// ErrTooLarge is returned when a render would exceed its cell limit.
var ErrTooLarge = errors.New("render exceeds cell limit")

// Rect is an inclusive box of cells. MaxY is the top row.
type Rect struct {
	MinX, MaxX int64
	MinY, MaxY int64
}

// Bounds returns the smallest box containing every black cell, grown by one
// cell on each side. An empty grid yields the padded box around the origin.
func Bounds(g *core.Grid) Rect {
	if g.Len() == 0 {
		return Rect{MinX: -1, MaxX: 1, MinY: -1, MaxY: 1}
	}
	r := Rect{MinX: math.MaxInt64, MaxX: math.MinInt64, MinY: math.MaxInt64, MaxY: math.MinInt64}
	g.Each(func(p core.Vector) {
		r.MinX = min(r.MinX, p.X)
		r.MaxX = max(r.MaxX, p.X)
		r.MinY = min(r.MinY, p.Y)
		r.MaxY = max(r.MaxY, p.Y)
	})
	// Cells within one of the int64 limits lose their padding on that side.
	r.MinX = max(r.MinX, math.MinInt64+1) - 1
	r.MaxX = min(r.MaxX, math.MaxInt64-1) + 1
	r.MinY = max(r.MinY, math.MinInt64+1) - 1
	r.MaxY = min(r.MaxY, math.MaxInt64-1) + 1
	return r
}

// Cols returns the number of columns, or false if it does not fit an int64.
func (r Rect) Cols() (int64, bool) { return span(r.MinX, r.MaxX) }

// Rows returns the number of rows, or false if it does not fit an int64.
func (r Rect) Rows() (int64, bool) { return span(r.MinY, r.MaxY) }

// Area returns the number of cells in r, or false if it does not fit an
// int64.
func (r Rect) Area() (int64, bool) {
	cols, ok := r.Cols()
	if !ok {
		return 0, false
	}
	rows, ok := r.Rows()
	if !ok {
		return 0, false
	}
	hi, lo := bits.Mul64(uint64(cols), uint64(rows))
	if hi != 0 || lo > math.MaxInt64 {
		return 0, false
	}
	return int64(lo), true
}

// Contains reports whether p lies inside r.
func (r Rect) Contains(p core.Vector) bool {
	return p.X >= r.MinX && p.X <= r.MaxX && p.Y >= r.MinY && p.Y <= r.MaxY
}

func span(lo, hi int64) (int64, bool) {
	d := uint64(hi) - uint64(lo)
	if d >= math.MaxInt64 {
		return 0, false
	}
	return int64(d) + 1, true
}

// Draw renders g over Bounds(g) as rows of Black and White characters. Row 0
// is the top (largest y); column 0 is the smallest x. Draw returns nil when
// the box does not fit an int64; callers rendering untrusted grids use
// DrawLimit instead.
func Draw(g *core.Grid) [][]byte {
	r := Bounds(g)
	cols, ok := r.Cols()
	if !ok {
		return nil
	}
	rows, ok := r.Rows()
	if !ok {
		return nil
	}
	return fill(g, r, cols, rows)
}

// DrawLimit is Draw for grids whose box may hold more than maxCells cells.
// It returns ErrTooLarge before allocating anything in that case.
func DrawLimit(g *core.Grid, maxCells int64) ([][]byte, error) {
	r := Bounds(g)
	area, ok := r.Area()
	if !ok || area > maxCells {
		return nil, fmt.Errorf("%w: %d cells", ErrTooLarge, maxCells)
	}
	cols, _ := r.Cols()
	rows, _ := r.Rows()
	return fill(g, r, cols, rows), nil
}

func fill(g *core.Grid, r Rect, cols, rows int64) [][]byte {
	out := make([][]byte, rows)
	for i := range out {
		row := make([]byte, cols)
		for j := range row {
			row[j] = White
		}
		out[i] = row
	}
	g.Each(func(p core.Vector) {
		out[r.MaxY-p.Y][p.X-r.MinX] = Black
	})
	return out
}

// WriteText writes rows as newline-terminated lines.
func WriteText(w io.Writer, rows [][]byte) error {
	bw := bufio.NewWriter(w)
	for _, row := range rows {
		if _, err := bw.Write(row); err != nil {
			return err
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	return bw.Flush()
}
