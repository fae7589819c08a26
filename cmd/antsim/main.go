package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"antgrid/internal/app"
	"antgrid/internal/core"
	"antgrid/internal/render"
	_ "antgrid/internal/sims/ant"

	"github.com/google/uuid"
)

func main() {
	log.SetFlags(0)
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	id := flag.String("id", "", "result identifier (random when empty)")
	out := flag.String("out", "", "directory to write simulation-<id>.txt into instead of stdout")
	list := flag.Bool("list", false, "list registered simulations and exit")
	flag.Parse()

	if *list {
		for _, name := range core.Names() {
			fmt.Println(name)
		}
		return
	}
	if *id == "" {
		*id = uuid.NewString()
	}
	res, err := simulate(cfg, *id)
	if err != nil {
		log.Fatal(err)
	}

	if *out == "" {
		w := bufio.NewWriter(os.Stdout)
		if err := render.WriteText(w, res.Rows); err != nil {
			log.Fatal(err)
		}
		if err := w.Flush(); err != nil {
			log.Fatal(err)
		}
		return
	}
	path := filepath.Join(*out, res.Filename())
	f, err := os.Create(path)
	if err != nil {
		log.Fatal(err)
	}
	if err := render.WriteText(f, res.Rows); err != nil {
		f.Close()
		log.Fatal(err)
	}
	if err := f.Close(); err != nil {
		log.Fatal(err)
	}
	fmt.Fprintf(os.Stderr, "%d steps, %d black cells -> %s\n", res.Steps, res.BlackCells, path)
}

// simulate runs the configured sim once and renders it within cfg.MaxCells.
func simulate(cfg *app.Config, id string) (render.Result, error) {
	if cfg.Steps < 1 {
		return render.Result{}, errors.New("steps must be greater than zero")
	}
	factory, ok := core.Sims()[cfg.Sim]
	if !ok {
		return render.Result{}, fmt.Errorf("unknown sim %q", cfg.Sim)
	}
	sim := factory(cfg.Params())
	sim.Reset(0)
	return render.Run(sim, cfg.Steps, id, cfg.MaxCells)
}
