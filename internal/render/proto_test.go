package render

import (
	"bytes"
	"errors"
	"slices"
	"testing"

	"antgrid/internal/core"

	"google.golang.org/protobuf/encoding/protowire"
)

func TestProtoRoundTripKeepsGeometry(t *testing.T) {
	g := core.NewGrid(core.Vector{X: 0, Y: 0}, core.Vector{X: 0, Y: -1}, core.Vector{X: -3, Y: 2})
	res := NewResult("run-1", 7, g)

	got, err := UnmarshalProto(res.MarshalProto())
	if err != nil {
		t.Fatalf("UnmarshalProto: %v", err)
	}
	if got.ID != "run-1" || got.Steps != 7 || got.BlackCells != 3 {
		t.Fatalf("scalar fields lost: %+v", got)
	}
	if got.Bounds != res.Bounds {
		t.Fatalf("bounds = %+v, want %+v", got.Bounds, res.Bounds)
	}
	if !slices.EqualFunc(got.Rows, res.Rows, bytes.Equal) {
		t.Fatal("rows differ after decoding")
	}
}

func TestUnmarshalProtoSkipsUnknownAndRejectsTruncated(t *testing.T) {
	b := NewResult("x", 1, core.NewGrid(core.Vector{})).MarshalProto()
	b = protowire.AppendTag(b, 99, protowire.BytesType)
	b = protowire.AppendString(b, "future")
	if _, err := UnmarshalProto(b); err != nil {
		t.Fatalf("unknown field must be skipped: %v", err)
	}
	if _, err := UnmarshalProto(b[:len(b)-3]); !errors.Is(err, errMalformed) {
		t.Fatalf("expected malformed error, got %v", err)
	}
}

func TestFilename(t *testing.T) {
	if got := (Result{ID: "abc"}).Filename(); got != "simulation-abc.txt" {
		t.Fatalf("Filename = %q", got)
	}
}
