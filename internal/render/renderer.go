//go:build ebiten

package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// GridPainter uploads rendered rows into an RGBA image, resizing it when
// the matrix geometry changes.
type GridPainter struct {
	w, h int
	img  *ebiten.Image
	buf  []byte
}

// NewGridPainter returns an empty painter.
func NewGridPainter() *GridPainter {
	return &GridPainter{}
}

// Blit uploads rows into the painter image and draws it scaled into dst.
func (gp *GridPainter) Blit(dst *ebiten.Image, rows [][]byte, on, off color.Color, scale int) {
	w, h := matrixSize(rows)
	if w == 0 || h == 0 {
		return
	}
	if gp.img == nil || w != gp.w || h != gp.h {
		if gp.img != nil {
			gp.img.Dispose()
		}
		gp.w, gp.h = w, h
		gp.img = ebiten.NewImage(w, h)
		gp.buf = make([]byte, 4*w*h)
	}
	fillMatrixRGBA(gp.buf, rows, w, on, off)
	gp.img.WritePixels(gp.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(gp.img, op)
}

// Size returns the dimensions of the underlying image.
func (gp *GridPainter) Size() (int, int) { return gp.w, gp.h }
