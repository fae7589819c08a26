//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"antgrid/internal/app"
	"antgrid/internal/core"
	_ "antgrid/internal/sims/ant"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	factory, ok := core.Sims()[cfg.Sim]
	if !ok {
		log.Fatalf("unknown sim %q", cfg.Sim)
	}

	game := app.New(cfg.Sim, factory, cfg.Params(), cfg)

	ebiten.SetWindowTitle("antgrid: " + cfg.Sim)
	ebiten.SetWindowSize(game.WindowSize())
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
