// Package input defines the per-frame intent contract between whatever
// collects player input and the character controller, plus the mouse-look
// mapper that turns raw pixel deltas into yaw/pitch.
package input

// Intent is one frame's worth of movement requests. It is transient: the
// supplier rebuilds it every render frame and nothing persists it across
// simulation steps. MoveForward and MoveStrafe are each in [-1, 1]; the
// controller clamps their combined magnitude to 1.
type Intent struct {
	MoveForward float64
	MoveStrafe  float64
	Jump        bool
	Sprint      bool

	// Reset requests a respawn at the active checkpoint.
	Reset bool

	// Raw look deltas in device units, consumed by the look mapper.
	LookDX float64
	LookDY float64
}
