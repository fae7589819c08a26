package app

import (
	"errors"
	"strings"
	"testing"

	"antgrid/internal/core"
	"antgrid/internal/render"
	"antgrid/internal/sims/ant"
)

func TestRunFrame(t *testing.T) {
	factory := core.Sims()[ant.Name]
	f, err := RunFrame(factory, nil, 1, render.DefaultMaxCells)
	if err != nil {
		t.Fatal(err)
	}
	if len(f.Rows) != 3 || string(f.Rows[1]) != "-#-" {
		t.Fatalf("rows = %q", f.Rows)
	}
	if f.Position != (core.Vector{X: 0, Y: -1}) || f.Heading != (core.Vector{X: 0, Y: -1}) {
		t.Fatalf("walker at %v heading %v", f.Position, f.Heading)
	}
	if p, ok := f.Snapshot.Lookup("steps"); !ok || p.Value != "1" {
		t.Fatalf("snapshot steps = %+v", p)
	}
}

func TestRunFrameRejectsNegative(t *testing.T) {
	_, err := RunFrame(core.Sims()[ant.Name], nil, -1, render.DefaultMaxCells)
	if err == nil || !strings.Contains(err.Error(), "negative") {
		t.Fatalf("expected negative steps error, got %v", err)
	}
}

func TestRunFrameRefusesOversizedRender(t *testing.T) {
	params := map[string]string{"dx": "2147483648"}
	_, err := RunFrame(core.Sims()[ant.Name], params, 2, render.DefaultMaxCells)
	if !errors.Is(err, render.ErrTooLarge) {
		t.Fatalf("expected ErrTooLarge, got %v", err)
	}
}

func TestKeepStepsAfterFailedRun(t *testing.T) {
	if got := keepSteps(Frame{}, 500); got != 500 {
		t.Fatalf("first failed run: steps = %d, want 500", got)
	}
	last := Frame{Steps: 300, Rows: [][]byte{[]byte("---")}}
	if got := keepSteps(last, 900); got != 300 {
		t.Fatalf("after a good frame: steps = %d, want 300", got)
	}
}

func TestNextSteps(t *testing.T) {
	cases := []struct {
		steps, delta  int
		double, halve bool
		want          int
	}{
		{100, 0, true, false, 200},
		{100, 0, false, true, 50},
		{1, 0, false, true, 1},
		{100, 25, false, false, 125},
		{10, -100, false, false, 1},
	}
	for _, c := range cases {
		if got := nextSteps(c.steps, c.delta, c.double, c.halve); got != c.want {
			t.Fatalf("nextSteps(%+v) = %d, want %d", c, got, c.want)
		}
	}
}
