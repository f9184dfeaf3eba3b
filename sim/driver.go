// Package sim runs the physics at a fixed timestep regardless of the
// caller's frame rate. Frames feed wall-clock deltas into an accumulator;
// whole fixed steps are consumed from it, each split into sub-steps for
// tunneling resistance, and the leftover fraction interpolates between the
// two most recent fixed states for rendering.
package sim

import (
	"github.com/obbycraft/obby/config"
	"github.com/obbycraft/obby/input"
	"github.com/obbycraft/obby/level"
	"github.com/obbycraft/obby/mathutil"
	"github.com/obbycraft/obby/physics"
)

// Driver owns one player's simulation clock. It keeps the previous and
// current fixed states; everything between them is interpolation, never
// extrapolation. The grid and config are only replaced between frames, so
// a single Advance always sees one consistent world.
type Driver struct {
	cfg  config.Config
	grid *level.Grid

	prev physics.Player
	curr physics.Player

	accumulator float64
}

// NewDriver places the player at the spawn point with both state slots
// identical, so the first frame renders without a stale interpolation pair.
func NewDriver(grid *level.Grid, cfg config.Config, spawnX, spawnY, spawnZ float64) *Driver {
	d := &Driver{cfg: cfg, grid: grid}
	d.Reset(spawnX, spawnY, spawnZ)
	return d
}

// Advance feeds one frame's wall-clock delta into the accumulator and runs
// every whole fixed step it covers. It reports whether the player touched a
// goal tile during any of those steps. Identical frame-delta sequences
// produce identical states regardless of how the deltas are chunked.
func (d *Driver) Advance(frameDt float64, in input.Intent) bool {
	if frameDt < 0 {
		frameDt = 0
	}
	// A stall (debugger, window drag) must not turn into a physics
	// catch-up avalanche.
	if frameDt > d.cfg.Sim.MaxFrameDelta {
		frameDt = d.cfg.Sim.MaxFrameDelta
	}
	d.accumulator += frameDt

	// The interpolation pair rolls once per frame, not per fixed step: a
	// frame that consumes several steps interpolates across all of them,
	// and a frame that consumes none renders the current state.
	d.prev = d.curr

	touchedGoal := false
	subDt := d.cfg.Sim.FixedStep / float64(d.cfg.Sim.Substeps)
	for d.accumulator >= d.cfg.Sim.FixedStep {
		for s := 0; s < d.cfg.Sim.Substeps; s++ {
			if physics.Step(&d.curr, in, subDt, d.grid, &d.cfg.Physics) {
				touchedGoal = true
			}
		}
		d.accumulator -= d.cfg.Sim.FixedStep
	}
	return touchedGoal
}

// Alpha is the fraction of the next fixed step already accumulated,
// always in [0, 1).
func (d *Driver) Alpha() float64 {
	return d.accumulator / d.cfg.Sim.FixedStep
}

// State returns the render state: continuous fields blended between the
// previous and current fixed states by Alpha, discrete fields taken from
// the current one.
func (d *Driver) State() physics.Player {
	a := d.Alpha()
	out := d.curr
	out.X = mathutil.Lerp(d.prev.X, d.curr.X, a)
	out.Y = mathutil.Lerp(d.prev.Y, d.curr.Y, a)
	out.Z = mathutil.Lerp(d.prev.Z, d.curr.Z, a)
	out.SpeedX = mathutil.Lerp(d.prev.SpeedX, d.curr.SpeedX, a)
	out.SpeedY = mathutil.Lerp(d.prev.SpeedY, d.curr.SpeedY, a)
	out.SpeedZ = mathutil.Lerp(d.prev.SpeedZ, d.curr.SpeedZ, a)
	out.Yaw = mathutil.Lerp(d.prev.Yaw, d.curr.Yaw, a)
	out.Pitch = mathutil.Lerp(d.prev.Pitch, d.curr.Pitch, a)
	return out
}

// Current returns the latest fixed state without interpolation.
func (d *Driver) Current() physics.Player { return d.curr }

// SetOrientation applies the per-frame look orientation to both state
// slots; orientation comes from the mouse each frame and is never
// interpolated across fixed steps.
func (d *Driver) SetOrientation(yaw, pitch float64) {
	d.prev.Yaw, d.prev.Pitch = yaw, pitch
	d.curr.Yaw, d.curr.Pitch = yaw, pitch
}

// Reset teleports the player to a spawn point with zeroed velocity and a
// fresh interpolation pair. Orientation survives the teleport.
func (d *Driver) Reset(x, y, z float64) {
	p := physics.Player{
		X: x, Y: y, Z: z,
		Yaw:   d.curr.Yaw,
		Pitch: d.curr.Pitch,
	}
	d.prev = p
	d.curr = p
	d.accumulator = 0
}

// SwapGrid replaces the course. Call it only between frames.
func (d *Driver) SwapGrid(g *level.Grid) { d.grid = g }

// SwapConfig replaces the tuning. Call it only between frames.
func (d *Driver) SwapConfig(cfg config.Config) { d.cfg = cfg }

// Grid returns the course the driver is simulating against.
func (d *Driver) Grid() *level.Grid { return d.grid }

// Config returns the active tuning.
func (d *Driver) Config() config.Config { return d.cfg }
