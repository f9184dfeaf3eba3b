package physics

import (
	"math"

	"github.com/obbycraft/obby/config"
	"github.com/obbycraft/obby/level"
	"github.com/obbycraft/obby/mathutil"
)

// ResolveCollisions pushes the player out of every solid tile in the 3×3
// cell neighborhood around its current cell and reports whether the
// player's footprint overlaps a goal tile. Cells are visited in a fixed
// order (rows outer, columns inner) and each resolver sees the position
// already corrected by the previous ones — cheap iterative resolution, not
// a simultaneous-contact solve, which is fine for a discrete course.
//
// Out-of-bounds cells read as cubes, so the implicit boundary wall is a
// real wall here even when a course forgets its border.
func ResolveCollisions(p *Player, g *level.Grid, cfg *config.Physics) bool {
	cx := int(math.Floor(p.X))
	cz := int(math.Floor(p.Z))

	complete := false
	for oz := -1; oz <= 1; oz++ {
		for ox := -1; ox <= 1; ox++ {
			mx, mz := cx+ox, cz+oz
			t := g.At(mx, mz)
			switch t.Kind {
			case level.Cube:
				resolveCube(p, mx, mz, cfg)
			case level.Wedge:
				resolveWedge(p, mx, mz, t.Rot, cfg)
			case level.Goal:
				if FootprintOverlaps(p.X, p.Z, cfg.PlayerRadius, mx, mz) {
					complete = true
				}
			}
		}
	}

	// Absolute floor: nothing falls below the world base.
	if p.Y < 0 {
		p.Y = 0
		p.SpeedY = 0
		p.Grounded = true
	}
	return complete
}

// resolveCube resolves full 3D box-vs-unit-cube overlap along the axis of
// least penetration. Ties resolve vertically first, then X, then Z — the
// order matters for feel and must not change. Horizontal push-outs damp
// the velocity component instead of zeroing it, so grazing a wall bleeds
// speed rather than stopping dead.
func resolveCube(p *Player, cx, cz int, cfg *config.Physics) {
	cellMinX, cellMaxX := float64(cx), float64(cx+1)
	cellMinY, cellMaxY := 0.0, 1.0
	cellMinZ, cellMaxZ := float64(cz), float64(cz+1)

	pminX, pmaxX := p.X-cfg.PlayerRadius, p.X+cfg.PlayerRadius
	pminY, pmaxY := p.Y, p.Y+cfg.PlayerHeight
	pminZ, pmaxZ := p.Z-cfg.PlayerRadius, p.Z+cfg.PlayerRadius

	if pmaxX <= cellMinX || pminX >= cellMaxX ||
		pmaxY <= cellMinY || pminY >= cellMaxY ||
		pmaxZ <= cellMinZ || pminZ >= cellMaxZ {
		return
	}

	penX := math.Min(pmaxX-cellMinX, cellMaxX-pminX)
	penY := math.Min(pmaxY-cellMinY, cellMaxY-pminY)
	penZ := math.Min(pmaxZ-cellMinZ, cellMaxZ-pminZ)

	switch {
	case penY <= penX && penY <= penZ:
		if (pminY+pmaxY)*0.5 > (cellMinY+cellMaxY)*0.5 {
			// Landing on top.
			p.Y = cellMaxY + cfg.SurfaceEpsilon
			p.SpeedY = 0
			p.Grounded = true
		} else {
			// Head against the underside.
			p.Y = cellMinY - cfg.PlayerHeight - cfg.SurfaceEpsilon
			if p.SpeedY > 0 {
				p.SpeedY = 0
			}
		}
	case penX <= penZ:
		if p.X < (cellMinX+cellMaxX)*0.5 {
			p.X -= penX
		} else {
			p.X += penX
		}
		p.SpeedX *= cfg.WallDamping
	default:
		if p.Z < (cellMinZ+cellMaxZ)*0.5 {
			p.Z -= penZ
		} else {
			p.Z += penZ
		}
		p.SpeedZ *= cfg.WallDamping
	}
}

// wedgeCorners returns the four corner heights (at local (0,0), (1,0),
// (0,1), (1,1)) for a wedge rotation. Corners are always 0 or 1.
func wedgeCorners(rot level.Rotation) (h00, h10, h01, h11 float64) {
	switch rot {
	case level.RotPlusX:
		return 0, 1, 0, 1
	case level.RotMinusX:
		return 1, 0, 1, 0
	case level.RotPlusZ:
		return 0, 0, 1, 1
	default: // RotMinusZ
		return 1, 1, 0, 0
	}
}

// WedgeHeight evaluates the wedge surface height at local cell coordinates,
// the bilinear interpolation of the rotation's corner heights. Inputs are
// clamped to the unit square, so the surface extends flat past the edges.
func WedgeHeight(lx, lz float64, rot level.Rotation) float64 {
	lx = mathutil.ClampFloat(lx, 0, 1)
	lz = mathutil.ClampFloat(lz, 0, 1)
	h00, h10, h01, h11 := wedgeCorners(rot)
	near := mathutil.Lerp(h00, h10, lx)
	far := mathutil.Lerp(h01, h11, lx)
	return mathutil.Lerp(near, far, lz)
}

// resolveWedge supports the player from below when the foot is at or under
// the slope surface. Wedges never push horizontally; walking into the tall
// face just walks onto the surface.
func resolveWedge(p *Player, cx, cz int, rot level.Rotation, cfg *config.Physics) {
	lx := p.X - float64(cx)
	lz := p.Z - float64(cz)
	r := cfg.PlayerRadius
	if lx < -r || lx > 1+r || lz < -r || lz > 1+r {
		return
	}

	surf := WedgeHeight(lx, lz, rot)
	if p.Y <= surf+cfg.SurfaceEpsilon {
		p.Y = surf + cfg.SurfaceEpsilon
		if p.SpeedY < 0 {
			p.SpeedY = 0
		}
		p.Grounded = true
	}
}

// FootprintOverlaps reports whether a horizontal footprint of the given
// radius overlaps the unit cell at (cx, cz). There is no height test: goal
// and trigger tiles fire at any altitude above their cell.
func FootprintOverlaps(x, z, radius float64, cx, cz int) bool {
	minX, maxX := float64(cx), float64(cx+1)
	minZ, maxZ := float64(cz), float64(cz+1)
	return x+radius >= minX && x-radius <= maxX &&
		z+radius >= minZ && z-radius <= maxZ
}
