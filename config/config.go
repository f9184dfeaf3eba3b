// Package config holds every tuning knob of the simulation as explicit
// structs passed into the controller and driver. Nothing here is a
// package-level singleton: callers construct a Config once (defaults,
// optionally overlaid from YAML) and hand it to whoever needs it.
package config

// Physics contains the character-controller tuning constants. The defaults
// are the canonical course-tested values; changing them changes game feel,
// not correctness.
type Physics struct {
	Gravity          float64 `yaml:"gravity"`
	WalkAccel        float64 `yaml:"walk_accel"`
	AirAccel         float64 `yaml:"air_accel"`
	MaxWalkSpeed     float64 `yaml:"max_walk_speed"`
	SprintMultiplier float64 `yaml:"sprint_multiplier"`
	JumpVelocity     float64 `yaml:"jump_velocity"`
	Friction         float64 `yaml:"friction"`

	// BunnyHopWindow is how long after leaving the ground a jump request
	// is still honored.
	BunnyHopWindow float64 `yaml:"bunny_hop_window"`

	PlayerRadius float64 `yaml:"player_radius"`
	PlayerHeight float64 `yaml:"player_height"`

	// SurfaceEpsilon keeps the resolved foot slightly above surfaces so
	// ground contact stays stable across steps.
	SurfaceEpsilon float64 `yaml:"surface_epsilon"`

	// WallDamping scales (not zeroes) the horizontal velocity component a
	// wall push-out acts on, preserving momentum on grazes.
	WallDamping float64 `yaml:"wall_damping"`
}

// DefaultPhysics returns the canonical tuning.
func DefaultPhysics() Physics {
	return Physics{
		Gravity:          20.0,
		WalkAccel:        100.0,
		AirAccel:         60.0,
		MaxWalkSpeed:     7.0,
		SprintMultiplier: 1.5,
		JumpVelocity:     8.0,
		Friction:         6.0,
		BunnyHopWindow:   0.1,
		PlayerRadius:     0.28,
		PlayerHeight:     1.8,
		SurfaceEpsilon:   0.001,
		WallDamping:      0.3,
	}
}

// Look contains the mouse-look mapping settings.
type Look struct {
	Sensitivity float64 `yaml:"sensitivity"`
	Smoothing   float64 `yaml:"smoothing"`
	InvertX     bool    `yaml:"invert_x"`
	InvertY     bool    `yaml:"invert_y"`

	// PitchLimit clamps pitch to (-limit, +limit), short of ±π/2.
	PitchLimit float64 `yaml:"pitch_limit"`
}

func DefaultLook() Look {
	return Look{
		Sensitivity: 0.0028,
		Smoothing:   0.6,
		InvertX:     false,
		InvertY:     true,
		PitchLimit:  1.45,
	}
}

// Sim contains the fixed-step driver settings.
type Sim struct {
	// FixedStep is the simulation timestep in seconds.
	FixedStep float64 `yaml:"fixed_step"`

	// MaxFrameDelta clamps a single frame's wall-clock delta so a stall or
	// breakpoint cannot trigger an accumulator spiral.
	MaxFrameDelta float64 `yaml:"max_frame_delta"`

	// Substeps splits each fixed step into N equal controller runs, each
	// with its own collision pass, for stability at high velocity.
	Substeps int `yaml:"substeps"`
}

func DefaultSim() Sim {
	return Sim{
		FixedStep:     1.0 / 120.0,
		MaxFrameDelta: 0.25,
		Substeps:      2,
	}
}

// Config bundles all tuning for one simulation.
type Config struct {
	Physics Physics `yaml:"physics"`
	Look    Look    `yaml:"look"`
	Sim     Sim     `yaml:"sim"`
}

func Default() Config {
	return Config{
		Physics: DefaultPhysics(),
		Look:    DefaultLook(),
		Sim:     DefaultSim(),
	}
}
