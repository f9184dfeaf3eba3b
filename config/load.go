package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Load reads a YAML tuning file and overlays it on the defaults, so a file
// only needs to name the values it changes:
//
//	physics:
//	  gravity: 25
//	sim:
//	  substeps: 4
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate rejects values the driver or controller cannot run with.
func (c *Config) Validate() error {
	if c.Sim.FixedStep <= 0 {
		return fmt.Errorf("fixed_step must be positive, got %g", c.Sim.FixedStep)
	}
	if c.Sim.MaxFrameDelta < c.Sim.FixedStep {
		return fmt.Errorf("max_frame_delta %g is below fixed_step %g",
			c.Sim.MaxFrameDelta, c.Sim.FixedStep)
	}
	if c.Sim.Substeps < 1 {
		return fmt.Errorf("substeps must be at least 1, got %d", c.Sim.Substeps)
	}
	if c.Physics.PlayerRadius <= 0 || c.Physics.PlayerRadius >= 0.5 {
		return fmt.Errorf("player_radius must be in (0, 0.5), got %g", c.Physics.PlayerRadius)
	}
	if c.Physics.PlayerHeight <= 0 {
		return fmt.Errorf("player_height must be positive, got %g", c.Physics.PlayerHeight)
	}
	if c.Look.Smoothing < 0 || c.Look.Smoothing >= 1 {
		return fmt.Errorf("smoothing must be in [0, 1), got %g", c.Look.Smoothing)
	}
	return nil
}
