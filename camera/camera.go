// Package camera implements the first-person follow camera. It trails the
// interpolated render state with per-frame exponential lerps, so quick
// course corrections read smooth instead of twitchy. The camera only ever
// consumes the driver's interpolated state, never the raw fixed state.
package camera

import (
	"github.com/obbycraft/obby/mathutil"
	"github.com/obbycraft/obby/physics"
)

const (
	// Per-frame lerp factors for position and view angles.
	positionFollow = 0.12
	angleFollow    = 0.18

	// EyeHeight is the camera's offset above the player's foot.
	EyeHeight = 0.6

	// FOVDegrees is the vertical field of view a renderer should use.
	FOVDegrees = 60.0
)

// Camera is the smoothed first-person viewpoint.
type Camera struct {
	X, Y, Z float64
	Yaw     float64
	Pitch   float64
}

// Follow eases the camera toward the player's eye position and view
// angles. Call once per rendered frame.
func (c *Camera) Follow(p physics.Player) {
	c.X = mathutil.Lerp(c.X, p.X, positionFollow)
	c.Y = mathutil.Lerp(c.Y, p.Y+EyeHeight, positionFollow)
	c.Z = mathutil.Lerp(c.Z, p.Z, positionFollow)
	c.Yaw = mathutil.Lerp(c.Yaw, p.Yaw, angleFollow)
	c.Pitch = mathutil.Lerp(c.Pitch, p.Pitch, angleFollow)
}

// Snap moves the camera onto the player instantly. Used on spawn and
// respawn so the camera does not swoop across the course.
func (c *Camera) Snap(p physics.Player) {
	c.X = p.X
	c.Y = p.Y + EyeHeight
	c.Z = p.Z
	c.Yaw = p.Yaw
	c.Pitch = p.Pitch
}
