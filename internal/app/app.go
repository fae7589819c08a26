//go:build ebiten

package app

import (
	"image/color"

	"antgrid/internal/core"
	"antgrid/internal/render"
	"antgrid/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const hudWidth = 240

// Game adapts the step-count explorer to the ebiten.Game interface. Every
// change of the step count renders a new, independent run.
type Game struct {
	name    string
	factory core.Factory
	params  map[string]string

	initialSteps int
	steps        int
	stride       int
	maxCells     int64

	frame   Frame
	painter *render.GridPainter
	hud     *ui.HUD
	overlay *ui.Overlay
	pacer   *core.Pacer

	onColor  color.Color
	offColor color.Color

	playing bool
	scale   int
}

// New constructs a Game for the named simulation.
func New(name string, factory core.Factory, params map[string]string, cfg *Config) *Game {
	g := &Game{
		name:         name,
		factory:      factory,
		params:       params,
		initialSteps: max(cfg.Steps, 1),
		steps:        max(cfg.Steps, 1),
		stride:       max(cfg.Stride, 1),
		maxCells:     cfg.MaxCells,
		painter:      render.NewGridPainter(),
		hud:          ui.NewHUD(hudWidth),
		overlay:      ui.NewOverlay(),
		pacer:        core.NewPacer(cfg.TPS),
		onColor:      color.Black,
		offColor:     color.White,
		scale:        cfg.Scale,
	}
	g.rerun()
	return g
}

func (g *Game) rerun() {
	f, err := RunFrame(g.factory, g.params, g.steps, g.maxCells)
	if err != nil {
		g.hud.SetStatus(err.Error())
		g.playing = false
		g.steps = keepSteps(g.frame, g.steps)
		return
	}
	g.frame = f
	g.hud.SetStatus("")
	g.hud.SetSnapshot(g.name, f.Snapshot)
}

// Update handles per-frame input and reruns the simulation when the step
// count changes.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.playing = !g.playing
		g.pacer.Restart()
	}
	g.overlay.Update()

	steps := g.steps
	delta := 0
	if inpututil.IsKeyJustPressed(ebiten.KeyRight) {
		delta += g.stride
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyLeft) {
		delta -= g.stride
	}
	if g.playing {
		delta += g.pacer.Due() * g.stride
	}
	steps = nextSteps(steps, delta,
		inpututil.IsKeyJustPressed(ebiten.KeyUp),
		inpututil.IsKeyJustPressed(ebiten.KeyDown))
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		steps = g.initialSteps
		g.playing = false
	}
	if steps != g.steps {
		g.steps = steps
		g.rerun()
	}
	return nil
}

// Draw renders the current frame.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(g.offColor)
	view := screen.Bounds()
	rows := len(g.frame.Rows)
	cols := 0
	if rows > 0 {
		cols = len(g.frame.Rows[0])
	}
	scale := ui.FitScale(cols, rows, view.Dx()-g.hud.Width(), view.Dy())
	g.painter.Blit(screen, g.frame.Rows, g.onColor, g.offColor, scale)
	g.overlay.Draw(screen, g.frame.Bounds, g.frame.Position, g.frame.Heading, scale)
	g.hud.Draw(screen, view.Dx()-g.hud.Width())
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return outsideWidth, outsideHeight
}

// WindowSize suggests an initial window size for the first frame.
func (g *Game) WindowSize() (int, int) {
	rows := len(g.frame.Rows)
	cols := 0
	if rows > 0 {
		cols = len(g.frame.Rows[0])
	}
	w := min(max(cols*g.scale, 480), 1280) + g.hud.Width()
	h := min(max(rows*g.scale, 480), 960)
	return w, h
}
