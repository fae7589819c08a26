package main

import (
	"errors"
	"testing"

	"antgrid/internal/app"
	"antgrid/internal/render"
)

func TestSimulate(t *testing.T) {
	cfg := app.NewConfig()
	cfg.Steps = 1
	res, err := simulate(cfg, "cli")
	if err != nil {
		t.Fatal(err)
	}
	if res.Filename() != "simulation-cli.txt" || len(res.Rows) != 3 || string(res.Rows[1]) != "-#-" {
		t.Fatalf("result = %+v", res)
	}
}

func TestSimulateRefusesOversizedRender(t *testing.T) {
	cfg := app.NewConfig()
	cfg.Steps = 2
	if err := cfg.Set.Set("dx=2147483648"); err != nil {
		t.Fatal(err)
	}
	if _, err := simulate(cfg, "cli"); !errors.Is(err, render.ErrTooLarge) {
		t.Fatalf("expected ErrTooLarge, got %v", err)
	}

	cfg = app.NewConfig()
	cfg.Steps = 2
	cfg.MaxCells = 9
	if _, err := simulate(cfg, "cli"); !errors.Is(err, render.ErrTooLarge) {
		t.Fatalf("4x3 render under a 9 cell limit: got %v", err)
	}
}

func TestSimulateRejectsBadInput(t *testing.T) {
	cfg := app.NewConfig()
	cfg.Steps = 0
	if _, err := simulate(cfg, "cli"); err == nil {
		t.Fatal("zero steps must be rejected")
	}
	cfg = app.NewConfig()
	cfg.Sim = "nope"
	if _, err := simulate(cfg, "cli"); err == nil {
		t.Fatal("unknown sim must be rejected")
	}
}
