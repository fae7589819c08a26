//go:build ebiten

package ui

import (
	"image/color"
	"math"

	"antgrid/internal/core"
	"antgrid/internal/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Overlay marks the walker and the origin on top of the rendered grid.
type Overlay struct {
	showWalker bool
	showOrigin bool
	pixel      *ebiten.Image
}

// NewOverlay constructs a new overlay instance.
func NewOverlay() *Overlay {
	o := &Overlay{showWalker: true}
	o.pixel = ebiten.NewImage(1, 1)
	o.pixel.Fill(color.White)
	return o
}

// Update toggles the markers.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit1) {
		o.showWalker = !o.showWalker
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit2) {
		o.showOrigin = !o.showOrigin
	}
}

// Draw marks position and its heading when they fall inside the box b drawn
// at scale.
func (o *Overlay) Draw(screen *ebiten.Image, b render.Rect, position, heading core.Vector, scale int) {
	s := float64(scale)
	if o.showOrigin {
		if x, y, ok := CellOrigin(b, core.Vector{}, scale); ok {
			cx, cy := x+s/2, y+s/2
			col := color.RGBA{R: 64, G: 164, B: 223, A: 200}
			o.drawLine(screen, cx-s, cy, cx+s, cy, 1, col)
			o.drawLine(screen, cx, cy-s, cx, cy+s, 1, col)
		}
	}
	if !o.showWalker {
		return
	}
	x, y, ok := CellOrigin(b, position, scale)
	if !ok {
		return
	}
	cx, cy := x+s/2, y+s/2
	o.drawPoint(screen, cx, cy, math.Max(s*0.6, 2), color.RGBA{R: 255, G: 90, B: 40, A: 255})
	// Screen y grows downward.
	hx, hy := float64(heading.X), -float64(heading.Y)
	if n := math.Hypot(hx, hy); n > 0 {
		o.drawLine(screen, cx, cy, cx+hx/n*s*1.5, cy+hy/n*s*1.5, math.Max(s*0.25, 1), color.RGBA{R: 255, G: 130, B: 40, A: 255})
	}
}

func (o *Overlay) drawPoint(screen *ebiten.Image, x, y, size float64, col color.RGBA) {
	if o.pixel == nil || size <= 0 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(size, size)
	op.GeoM.Translate(x-size*0.5, y-size*0.5)
	op.ColorScale.ScaleWithColor(col)
	screen.DrawImage(o.pixel, op)
}

func (o *Overlay) drawLine(screen *ebiten.Image, x1, y1, x2, y2, thickness float64, col color.RGBA) {
	if o.pixel == nil || thickness <= 0 {
		return
	}
	dx := x2 - x1
	dy := y2 - y1
	length := math.Hypot(dx, dy)
	if length <= 1e-4 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(length, thickness)
	op.GeoM.Translate(0, -thickness/2)
	op.GeoM.Rotate(math.Atan2(dy, dx))
	op.GeoM.Translate(x1, y1)
	op.ColorScale.ScaleWithColor(col)
	screen.DrawImage(o.pixel, op)
}
