// Package physics implements the deterministic collision and movement core:
// per-tile shape resolvers and the fixed-timestep character controller.
// Everything here is pure computation over in-memory state — no allocation,
// blocking, or I/O — so the driver can sub-step it at arbitrary rates.
package physics

// Player is the kinematic state advanced by the controller. One world unit
// is one grid cell; Y is the foot height, so the player occupies a box of
// horizontal radius PlayerRadius and height PlayerHeight above (X, Y, Z).
type Player struct {
	X, Y, Z                float64
	SpeedX, SpeedY, SpeedZ float64

	Yaw   float64
	Pitch float64

	// Grounded is true while resting on a supporting surface this step.
	Grounded bool

	// TimeSinceGrounded accumulates airtime and drives the forgiving-jump
	// grace window. Zero while grounded.
	TimeSinceGrounded float64
}
