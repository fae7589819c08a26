package app

import (
	"flag"
	"io"
	"testing"

	"antgrid/internal/render"
)

func TestConfigBind(t *testing.T) {
	cfg := NewConfig()
	if cfg.MaxCells != render.DefaultMaxCells {
		t.Fatalf("default max cells = %d", cfg.MaxCells)
	}
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	cfg.Bind(fs)
	err := fs.Parse([]string{"-steps", "250", "-seed", "9", "-max-cells", "100", "-set", "x=3", "-set", "black = 1,1;2,2"})
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Steps != 250 || cfg.Sim != "white-black-grid" || cfg.MaxCells != 100 {
		t.Fatalf("parsed config = %+v", cfg)
	}
	params := cfg.Params()
	want := map[string]string{"x": "3", "black": "1,1;2,2", "seed": "9"}
	if len(params) != len(want) {
		t.Fatalf("params = %v, want %v", params, want)
	}
	for k, v := range want {
		if params[k] != v {
			t.Fatalf("params[%q] = %q, want %q", k, params[k], v)
		}
	}
}

func TestKVListRejectsMissingKey(t *testing.T) {
	var l KVList
	for _, bad := range []string{"novalue", "=3"} {
		if err := l.Set(bad); err == nil {
			t.Fatalf("Set(%q) must fail", bad)
		}
	}
	if err := l.Set("a=b=c"); err != nil {
		t.Fatal(err)
	}
	if l.String() != "a=b=c" {
		t.Fatalf("String = %q", l.String())
	}
}
