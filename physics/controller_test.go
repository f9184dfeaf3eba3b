package physics

import (
	"math"
	"testing"

	"github.com/obbycraft/obby/input"
	"github.com/obbycraft/obby/level"
)

const stepDt = 1.0 / 120.0

func TestJumpFromGround(t *testing.T) {
	cfg := testCfg()
	g := emptyGrid(t, 8, 8)
	p := Player{X: 4.5, Y: 0, Z: 4.5, Grounded: true}

	Step(&p, input.Intent{Jump: true}, stepDt, g, cfg)

	approxEqual(t, p.SpeedY, cfg.JumpVelocity, 1e-12, "speedY")
	if p.Grounded {
		t.Fatal("grounded = true right after a jump")
	}
	approxEqual(t, p.Y, cfg.JumpVelocity*stepDt, 1e-12, "y after first airborne step")
}

func TestJumpWithinGraceWindow(t *testing.T) {
	cfg := testCfg()
	g := emptyGrid(t, 8, 8)

	// Just walked off a ledge: airborne but inside the forgiving window.
	p := Player{X: 4.5, Y: 2.0, Z: 4.5}
	for i := 0; i < 6; i++ {
		Step(&p, input.Intent{}, stepDt, g, cfg)
	}
	approxEqual(t, p.TimeSinceGrounded, 6*stepDt, 1e-12, "airtime")

	Step(&p, input.Intent{Jump: true}, stepDt, g, cfg)
	approxEqual(t, p.SpeedY, cfg.JumpVelocity, 1e-12, "speedY")
	approxEqual(t, p.TimeSinceGrounded, cfg.BunnyHopWindow, 1e-12, "window saturated")
}

func TestJumpAfterGraceWindowExpires(t *testing.T) {
	cfg := testCfg()
	g := emptyGrid(t, 8, 8)

	p := Player{X: 4.5, Y: 3.0, Z: 4.5}
	for i := 0; i < 13; i++ { // 13/120 s, past the 0.1 s window
		Step(&p, input.Intent{}, stepDt, g, cfg)
	}

	Step(&p, input.Intent{Jump: true}, stepDt, g, cfg)
	if p.SpeedY >= 0 {
		t.Fatalf("speedY = %.4f, jump should have been refused mid-air", p.SpeedY)
	}
}

func TestGraceWindowCannotChainJumps(t *testing.T) {
	cfg := testCfg()
	g := emptyGrid(t, 8, 8)

	p := Player{X: 4.5, Y: 0, Z: 4.5, Grounded: true}
	Step(&p, input.Intent{Jump: true}, stepDt, g, cfg)
	approxEqual(t, p.SpeedY, cfg.JumpVelocity, 1e-12, "first jump")

	// Holding jump must not fire again: the saturated window blocks a
	// second grace jump until the next landing.
	Step(&p, input.Intent{Jump: true}, stepDt, g, cfg)
	approxEqual(t, p.SpeedY, cfg.JumpVelocity-cfg.Gravity*stepDt, 1e-12, "no double jump")
}

func TestSprintRaisesCapOnlyWhileGrounded(t *testing.T) {
	cfg := testCfg()
	g := emptyGrid(t, 64, 64)

	// Grounded sprint: speed settles at the raised cap. Yaw 0 runs along +Z.
	p := Player{X: 4.5, Y: 0, Z: 4.5, Grounded: true}
	for i := 0; i < 240; i++ {
		Step(&p, input.Intent{MoveForward: 1, Sprint: true}, stepDt, g, cfg)
	}
	approxEqual(t, p.SpeedZ, cfg.MaxWalkSpeed*cfg.SprintMultiplier, 1e-9, "grounded sprint speed")

	// Airborne sprint: the cap stays at plain walk speed.
	p = Player{X: 32, Y: 50, Z: 20}
	for i := 0; i < 120; i++ {
		Step(&p, input.Intent{MoveForward: 1, Sprint: true}, stepDt, g, cfg)
	}
	approxEqual(t, p.SpeedZ, cfg.MaxWalkSpeed, 1e-9, "airborne sprint speed")
}

func TestFrictionStopsGroundedDrift(t *testing.T) {
	cfg := testCfg()
	g := emptyGrid(t, 16, 16)

	p := Player{X: 4.5, Y: 0, Z: 8, Grounded: true, SpeedX: 5}
	for i := 0; i < 20; i++ {
		Step(&p, input.Intent{}, stepDt, g, cfg)
	}
	approxEqual(t, p.SpeedX, 0, 1e-12, "speedX after coasting")
}

func TestMoveInputMagnitudeIsClamped(t *testing.T) {
	cfg := testCfg()
	g := emptyGrid(t, 64, 64)

	// Full forward plus full strafe is a diagonal, not a speed boost.
	p := Player{X: 10, Y: 0, Z: 10, Grounded: true}
	for i := 0; i < 240; i++ {
		Step(&p, input.Intent{MoveForward: 1, MoveStrafe: 1}, stepDt, g, cfg)
	}
	approxEqual(t, math.Hypot(p.SpeedX, p.SpeedZ), cfg.MaxWalkSpeed, 1e-9, "diagonal speed")
}

func TestAccelerationIsPerAxis(t *testing.T) {
	cfg := testCfg()
	g := emptyGrid(t, 64, 64)

	// One step from rest on a diagonal: each axis gains the full per-step
	// budget independently, so the diagonal starts faster than a straight
	// run. That bias is deliberate.
	p := Player{X: 10, Y: 0, Z: 10, Grounded: true}
	Step(&p, input.Intent{MoveForward: 1, MoveStrafe: 1}, stepDt, g, cfg)

	maxDV := cfg.WalkAccel * stepDt
	approxEqual(t, p.SpeedX, maxDV, 1e-12, "speedX after one step")
	approxEqual(t, p.SpeedZ, maxDV, 1e-12, "speedZ after one step")
}

func TestWalkUpWedgeTracksSurface(t *testing.T) {
	cfg := testCfg()
	g := emptyGrid(t, 16, 16)
	g.Set(8, 8, level.Tile{Kind: level.Wedge, Rot: level.RotPlusX})

	// Yaw π/2 walks along +X, straight up the ramp.
	p := Player{X: 6.5, Y: 0, Z: 8.5, Grounded: true, Yaw: math.Pi / 2}

	samples := 0
	lastY := p.Y
	for i := 0; i < 600 && p.X < 8.9; i++ {
		Step(&p, input.Intent{MoveForward: 1}, stepDt, g, cfg)

		lx := p.X - 8
		if lx >= 0 && lx <= 1 {
			want := WedgeHeight(lx, p.Z-8, level.RotPlusX) + cfg.SurfaceEpsilon
			approxEqual(t, p.Y, want, 1e-9, "foot y on slope")
			if p.Y < lastY {
				t.Fatalf("y dropped from %.6f to %.6f while climbing", lastY, p.Y)
			}
			if !p.Grounded {
				t.Fatal("lost ground contact on the slope")
			}
			samples++
		}
		lastY = p.Y
	}
	if samples < 5 {
		t.Fatalf("only %d samples on the slope, climb did not happen", samples)
	}
}
