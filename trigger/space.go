// Package trigger runs the non-solid tile layer. Solid tiles are resolved
// analytically by the physics package; trigger tiles (checkpoints) only
// need overlap queries, so they live in a resolv space over the grid plane
// with one unit per cell. The space is broadphase only; hits are confirmed
// with the same inclusive footprint test the goal tile uses.
package trigger

import (
	"github.com/solarlune/resolv"

	"github.com/obbycraft/obby/level"
	"github.com/obbycraft/obby/physics"
	"github.com/obbycraft/obby/tags"
)

// Checkpoint is the respawn point carried by a checkpoint tile. Checkpoints
// are numbered in row-major grid order, so a later checkpoint on the course
// layout has a higher ID.
type Checkpoint struct {
	ID           int
	CellX, CellZ int

	// Respawn position: cell center, dropped in from spawn height.
	SpawnX, SpawnY, SpawnZ float64
}

// Space indexes a grid's checkpoint tiles for overlap queries against the
// player footprint.
type Space struct {
	space       *resolv.Space
	player      *resolv.Object
	radius      float64
	checkpoints []*Checkpoint
}

// NewSpace builds the trigger space for a grid. The player footprint starts
// outside every cell; move it with ActiveAt.
func NewSpace(g *level.Grid, playerRadius float64) *Space {
	sp := resolv.NewSpace(g.Width, g.Height, 1, 1)

	s := &Space{
		space:  sp,
		radius: playerRadius,
	}

	id := 0
	for z := 0; z < g.Height; z++ {
		for x := 0; x < g.Width; x++ {
			if g.At(x, z).Kind != level.Checkpoint {
				continue
			}
			cp := &Checkpoint{
				ID:     id,
				CellX:  x,
				CellZ:  z,
				SpawnX: float64(x) + 0.5,
				SpawnY: 2.0,
				SpawnZ: float64(z) + 0.5,
			}
			obj := resolv.NewObject(float64(x), float64(z), 1, 1, tags.ResolvCheckpoint)
			obj.Data = cp
			sp.Add(obj)
			s.checkpoints = append(s.checkpoints, cp)
			id++
		}
	}

	s.player = resolv.NewObject(-10, -10, playerRadius*2, playerRadius*2, tags.ResolvPlayer)
	sp.Add(s.player)
	return s
}

// Checkpoints returns every checkpoint on the course in ID order.
func (s *Space) Checkpoints() []*Checkpoint { return s.checkpoints }

// ActiveAt moves the player footprint to (x, z) and returns the checkpoint
// it overlaps, if any. The resolv check is cell-grained, so candidates are
// confirmed with the exact inclusive footprint test; with several hits the
// lowest ID wins to keep the result deterministic.
func (s *Space) ActiveAt(x, z float64) (*Checkpoint, bool) {
	s.player.X = x - s.radius
	s.player.Y = z - s.radius
	s.player.Update()

	check := s.player.Check(0, 0, tags.ResolvCheckpoint)
	if check == nil {
		return nil, false
	}

	var best *Checkpoint
	for _, obj := range check.ObjectsByTags(tags.ResolvCheckpoint) {
		cp, ok := obj.Data.(*Checkpoint)
		if !ok {
			continue
		}
		if !physics.FootprintOverlaps(x, z, s.radius, cp.CellX, cp.CellZ) {
			continue
		}
		if best == nil || cp.ID < best.ID {
			best = cp
		}
	}
	return best, best != nil
}
