package ant

import (
	"strconv"
	"strings"

	"antgrid/internal/core"
)

const (
	// MaxCoordinate bounds configured positions and direction components so
	// that an int-bounded number of moves cannot overflow int64.
	MaxCoordinate = 1 << 31
	// MaxScatterRadius bounds the random seeding square.
	MaxScatterRadius = 256
)

// Config holds the initial state of a walk.
type Config struct {
	Position  core.Vector
	Direction core.Vector

	// Black lists cells that start black.
	Black []core.Vector

	Seed           int64
	ScatterRadius  int64
	ScatterDensity float64
}

// DefaultConfig returns the canonical start: all white, at the origin,
// heading (1,0).
func DefaultConfig() Config {
	return Config{
		Position:  core.Vector{X: 0, Y: 0},
		Direction: core.Vector{X: 1, Y: 0},
		Seed:      1,
	}
}

// FromMap populates a Config from a string map. Invalid or out-of-range
// entries keep their defaults.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := parseCoord(cfg["x"]); ok {
		c.Position.X = v
	}
	if v, ok := parseCoord(cfg["y"]); ok {
		c.Position.Y = v
	}
	dir := c.Direction
	if v, ok := parseCoord(cfg["dx"]); ok {
		dir.X = v
	}
	if v, ok := parseCoord(cfg["dy"]); ok {
		dir.Y = v
	}
	if !dir.IsZero() {
		c.Direction = dir
	}
	if v, ok := cfg["black"]; ok {
		c.Black = parseCells(v)
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["scatter_radius"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil && parsed >= 0 && parsed <= MaxScatterRadius {
			c.ScatterRadius = parsed
		}
	}
	if v, ok := cfg["scatter_density"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 && parsed <= 1 {
			c.ScatterDensity = parsed
		}
	}
	return c
}

func parseCoord(s string) (int64, bool) {
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil || v > MaxCoordinate || v < -MaxCoordinate {
		return 0, false
	}
	return v, true
}

// parseCells reads "x,y;x,y". Malformed or out-of-range cells are skipped.
func parseCells(s string) []core.Vector {
	var out []core.Vector
	for _, part := range strings.Split(s, ";") {
		if strings.TrimSpace(part) == "" {
			continue
		}
		v, err := core.ParseVector(part)
		if err != nil {
			continue
		}
		if v.X > MaxCoordinate || v.X < -MaxCoordinate || v.Y > MaxCoordinate || v.Y < -MaxCoordinate {
			continue
		}
		out = append(out, v)
	}
	return out
}
