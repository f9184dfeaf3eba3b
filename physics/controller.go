package physics

import (
	"math"

	"github.com/obbycraft/obby/config"
	"github.com/obbycraft/obby/input"
	"github.com/obbycraft/obby/level"
	"github.com/obbycraft/obby/mathutil"
)

// Step advances the player by one fixed timestep against the grid and
// reports whether the player touched a goal tile during resolution. The
// grid is read-only; the only state mutated is the player itself.
//
// Acceleration is applied per axis with an independent Approach toward the
// target velocity. That is not true vector clamping — diagonals accelerate
// slightly faster — and the bias is part of the tuned feel, so keep it.
func Step(p *Player, in input.Intent, dt float64, g *level.Grid, cfg *config.Physics) bool {
	// Movement is camera-relative: forward follows yaw in the horizontal
	// plane, right is its perpendicular.
	forwardX, forwardZ := math.Sin(p.Yaw), math.Cos(p.Yaw)
	rightX, rightZ := forwardZ, -forwardX

	rawFwd, rawStr := in.MoveForward, in.MoveStrafe
	if l := math.Hypot(rawFwd, rawStr); l > 1 {
		rawFwd /= l
		rawStr /= l
	}

	wishX := forwardX*rawFwd + rightX*rawStr
	wishZ := forwardZ*rawFwd + rightZ*rawStr
	wishLen := math.Hypot(wishX, wishZ)
	if wishLen > 1e-6 {
		wishX /= wishLen
		wishZ /= wishLen
	}

	accel := cfg.AirAccel
	targetSpeed := cfg.MaxWalkSpeed
	if p.Grounded {
		accel = cfg.WalkAccel
		if in.Sprint {
			// Sprint only raises the cap while grounded; mid-air the cap
			// is the plain walk speed regardless.
			targetSpeed *= cfg.SprintMultiplier
		}
	}
	maxDV := accel * dt
	p.SpeedX = mathutil.Approach(p.SpeedX, wishX*targetSpeed, maxDV)
	p.SpeedZ = mathutil.Approach(p.SpeedZ, wishZ*targetSpeed, maxDV)

	if p.Grounded && wishLen < 1e-3 {
		p.SpeedX = mathutil.Approach(p.SpeedX, 0, cfg.Friction*dt)
		p.SpeedZ = mathutil.Approach(p.SpeedZ, 0, cfg.Friction*dt)
	}

	if p.Grounded {
		p.TimeSinceGrounded = 0
	} else {
		p.TimeSinceGrounded += dt
	}

	p.SpeedY -= cfg.Gravity * dt
	if in.Jump && (p.Grounded || p.TimeSinceGrounded < cfg.BunnyHopWindow) {
		p.SpeedY = cfg.JumpVelocity
		p.Grounded = false
		// Sentinel: saturating the window blocks another grace jump until
		// the next landing resets it.
		p.TimeSinceGrounded = cfg.BunnyHopWindow
	}

	// Semi-implicit Euler: velocity first, then position.
	p.X += p.SpeedX * dt
	p.Y += p.SpeedY * dt
	p.Z += p.SpeedZ * dt

	return ResolveCollisions(p, g, cfg)
}
