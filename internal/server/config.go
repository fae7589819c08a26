package server

import (
	"errors"
	"fmt"
	"os"
	"time"

	"antgrid/internal/render"

	"gopkg.in/yaml.v3"
)

// Config controls the HTTP front end.
type Config struct {
	Listen string `yaml:"listen"`

	// DefaultSteps is used when a request carries no steps parameter.
	DefaultSteps int `yaml:"default_steps"`
	// MaxSteps bounds the running time of a single request.
	MaxSteps int `yaml:"max_steps"`
	// MaxRenderCells bounds the size of a rendered matrix.
	MaxRenderCells int64 `yaml:"max_render_cells"`

	ReadTimeout  time.Duration `yaml:"read_timeout"`
	WriteTimeout time.Duration `yaml:"write_timeout"`

	// Debug logs every automaton step.
	Debug bool `yaml:"debug"`
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Listen:         "127.0.0.1:8080",
		DefaultSteps:   1000,
		MaxSteps:       100000,
		MaxRenderCells: render.DefaultMaxCells,
		ReadTimeout:    5 * time.Second,
		WriteTimeout:   30 * time.Second,
	}
}

// LoadConfig reads a YAML file over the defaults. An empty path returns the
// defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate reports the first inconsistent setting.
func (c Config) Validate() error {
	if c.Listen == "" {
		return errors.New("listen address is empty")
	}
	if c.MaxSteps < 1 {
		return fmt.Errorf("max_steps must be positive, got %d", c.MaxSteps)
	}
	if c.DefaultSteps < 1 || c.DefaultSteps > c.MaxSteps {
		return fmt.Errorf("default_steps must be in [1, %d], got %d", c.MaxSteps, c.DefaultSteps)
	}
	if c.MaxRenderCells < 9 {
		return fmt.Errorf("max_render_cells must allow at least a 3x3 render, got %d", c.MaxRenderCells)
	}
	if c.ReadTimeout < 0 || c.WriteTimeout < 0 {
		return errors.New("timeouts must not be negative")
	}
	return nil
}
