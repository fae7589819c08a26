package core

import (
	"slices"
	"testing"
)

func TestScatterDeterministic(t *testing.T) {
	a := NewRNG(7).Scatter(Vector{0, 0}, 4, 0.3)
	b := NewRNG(7).Scatter(Vector{0, 0}, 4, 0.3)
	if !slices.Equal(a, b) {
		t.Fatal("same seed must scatter the same cells")
	}
	if len(a) == 0 {
		t.Fatal("expected some cells at density 0.3 over 81 candidates")
	}
	for _, c := range a {
		if c.X < -4 || c.X > 4 || c.Y < -4 || c.Y > 4 {
			t.Fatalf("cell %v outside radius", c)
		}
	}
}

func TestScatterDensityBounds(t *testing.T) {
	if cells := NewRNG(1).Scatter(Vector{5, 5}, 3, 0); len(cells) != 0 {
		t.Fatalf("density 0 produced %d cells", len(cells))
	}
	if cells := NewRNG(1).Scatter(Vector{5, 5}, 1, 1); len(cells) != 9 {
		t.Fatalf("density 1 over radius 1 must fill 9 cells, got %d", len(cells))
	}
}
