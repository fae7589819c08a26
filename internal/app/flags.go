package app

import (
	"flag"
	"fmt"
	"strings"

	"antgrid/internal/render"
)

// Config represents the command-line parameters shared by the binaries.
type Config struct {
	Sim    string
	Steps  int
	Scale  int
	TPS    int
	Stride int
	Seed   int64
	Set    KVList

	MaxCells int64
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Sim:      "white-black-grid",
		Steps:    1000,
		Scale:    4,
		TPS:      10,
		Stride:   100,
		MaxCells: render.DefaultMaxCells,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Sim, "sim", c.Sim, "simulation to run")
	fs.IntVar(&c.Steps, "steps", c.Steps, "number of steps to simulate")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "step increments per second while playing")
	fs.IntVar(&c.Stride, "stride", c.Stride, "steps added per increment")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for random initial cells (0 keeps the sim default)")
	fs.Var(&c.Set, "set", "simulation parameter in key=value form (repeatable)")
	fs.Int64Var(&c.MaxCells, "max-cells", c.MaxCells, "largest render, in cells, before a run is refused")
}

// Params returns the -set overrides as a simulation config map. A non-zero
// -seed is passed as the "seed" key.
func (c *Config) Params() map[string]string {
	params := make(map[string]string, len(c.Set)+1)
	for _, kv := range c.Set {
		key, value, ok := strings.Cut(kv, "=")
		if !ok {
			continue
		}
		params[strings.TrimSpace(key)] = strings.TrimSpace(value)
	}
	if c.Seed != 0 {
		params["seed"] = fmt.Sprint(c.Seed)
	}
	return params
}

// KVList collects repeated key=value flags.
type KVList []string

func (l *KVList) String() string {
	return strings.Join(*l, ",")
}

// Set appends value after checking it has a key.
func (l *KVList) Set(value string) error {
	if key, _, ok := strings.Cut(value, "="); !ok || strings.TrimSpace(key) == "" {
		return fmt.Errorf("want key=value, got %q", value)
	}
	*l = append(*l, value)
	return nil
}
