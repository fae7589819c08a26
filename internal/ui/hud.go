//go:build ebiten

package ui

import (
	"image/color"

	"antgrid/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

const (
	panelPadding = 8
	lineHeight   = 16
)

// HUD renders the parameter panel to the right of the grid view.
type HUD struct {
	width      int
	panel      *ebiten.Image
	lastHeight int
	lines      []string
	status     string
}

// NewHUD constructs a HUD with the given panel width.
func NewHUD(width int) *HUD {
	if width < 0 {
		width = 0
	}
	return &HUD{width: width}
}

// Width returns the panel width in pixels.
func (h *HUD) Width() int {
	if h == nil {
		return 0
	}
	return h.width
}

// SetSnapshot replaces the displayed parameters.
func (h *HUD) SetSnapshot(title string, snap core.ParameterSnapshot) {
	if h == nil {
		return
	}
	h.lines = Lines(title, snap)
}

// SetStatus shows a one-line message under the parameters.
func (h *HUD) SetStatus(msg string) {
	if h == nil {
		return
	}
	h.status = msg
}

// Draw paints the HUD panel at offsetX.
func (h *HUD) Draw(screen *ebiten.Image, offsetX int) {
	if h == nil || h.width <= 0 {
		return
	}
	height := screen.Bounds().Dy()
	if height <= 0 {
		return
	}
	if h.panel == nil || h.lastHeight != height {
		if h.panel != nil {
			h.panel.Dispose()
		}
		h.panel = ebiten.NewImage(h.width, height)
		h.lastHeight = height
	}
	h.panel.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 255})

	face := basicfont.Face7x13
	y := panelPadding + 12
	for i, line := range h.lines {
		clr := color.RGBA{R: 220, G: 220, B: 230, A: 255}
		if i == 0 {
			clr = color.RGBA{R: 200, G: 200, B: 210, A: 255}
		}
		text.Draw(h.panel, line, face, panelPadding, y, clr)
		y += lineHeight
	}
	if h.status != "" {
		y += lineHeight
		text.Draw(h.panel, h.status, face, panelPadding, y, color.RGBA{R: 255, G: 130, B: 40, A: 255})
		y += lineHeight
	}
	y += lineHeight
	for _, line := range KeyHelp {
		text.Draw(h.panel, line, face, panelPadding, y, color.RGBA{R: 160, G: 160, B: 170, A: 255})
		y += lineHeight
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}
