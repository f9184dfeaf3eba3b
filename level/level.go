// Package level provides the course grid consumed by the physics core.
// It is pure data — no dependencies on the ECS, resolv, or the simulation
// driver — so loaders, tools, and tests can all share it.
package level

import "fmt"

// Kind identifies what occupies a grid cell.
type Kind uint8

const (
	Empty Kind = iota
	Cube
	Wedge
	Goal
	Checkpoint
)

func (k Kind) String() string {
	switch k {
	case Empty:
		return "empty"
	case Cube:
		return "cube"
	case Wedge:
		return "wedge"
	case Goal:
		return "goal"
	case Checkpoint:
		return "checkpoint"
	}
	return fmt.Sprintf("kind(%d)", uint8(k))
}

// Rotation selects which horizontal direction a wedge's slope rises toward.
// Only meaningful for Wedge tiles.
type Rotation uint8

const (
	RotPlusX  Rotation = iota // surface rises toward +X
	RotMinusX                 // surface rises toward -X
	RotPlusZ                  // surface rises toward +Z
	RotMinusZ                 // surface rises toward -Z
)

// Canonical spawn point: just inside the boundary wall, dropped in from
// above so the first steps settle onto the floor.
const (
	SpawnX = 3.5
	SpawnY = 2.0
	SpawnZ = 3.5
)

// Tile is a tagged cell value: the kind plus, for wedges, the slope rotation.
type Tile struct {
	Kind Kind
	Rot  Rotation
}

// Grid is a width×height tile map, row-major with Z as the row axis.
// One cell is one world unit. A Grid is built once by a loader and is
// read-only for the rest of its life; the simulation only ever swaps in a
// whole replacement between steps.
type Grid struct {
	Width  int
	Height int
	tiles  []Tile
}

// New builds a grid from a row-major tile slice. len(tiles) must equal
// width*height.
func New(width, height int, tiles []Tile) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("level: invalid grid size %dx%d", width, height)
	}
	if len(tiles) != width*height {
		return nil, fmt.Errorf("level: %d tiles for %dx%d grid, want %d",
			len(tiles), width, height, width*height)
	}
	return &Grid{Width: width, Height: height, tiles: tiles}, nil
}

// InBounds reports whether (x, z) addresses a real cell.
func (g *Grid) InBounds(x, z int) bool {
	return x >= 0 && z >= 0 && x < g.Width && z < g.Height
}

// At returns the tile at (x, z). Out-of-bounds lookups return a solid cube:
// the world is ringed by an implicit boundary wall, so a malformed or
// undersized course degrades to walls rather than a fall out of the world.
func (g *Grid) At(x, z int) Tile {
	if !g.InBounds(x, z) {
		return Tile{Kind: Cube}
	}
	return g.tiles[z*g.Width+x]
}

// Set writes the tile at (x, z). Construction-time only; loaders and the
// demo generator use it before the grid is handed to the simulation.
func (g *Grid) Set(x, z int, t Tile) {
	if !g.InBounds(x, z) {
		return
	}
	g.tiles[z*g.Width+x] = t
}

// Demo returns the built-in 32×32 course used when no map file is given:
// a walled arena, one wedge per rotation, a cube run with a checkpoint at
// its start, and a goal at the center.
func Demo() *Grid {
	const size = 32
	g := &Grid{Width: size, Height: size, tiles: make([]Tile, size*size)}
	for z := 0; z < size; z++ {
		for x := 0; x < size; x++ {
			if z == 0 || x == 0 || z == size-1 || x == size-1 {
				g.Set(x, z, Tile{Kind: Cube})
			}
		}
	}
	g.Set(6, 6, Tile{Kind: Wedge, Rot: RotPlusX})
	g.Set(8, 6, Tile{Kind: Wedge, Rot: RotMinusX})
	g.Set(6, 8, Tile{Kind: Wedge, Rot: RotPlusZ})
	g.Set(8, 8, Tile{Kind: Wedge, Rot: RotMinusZ})
	g.Set(5, 12, Tile{Kind: Checkpoint})
	for x := 10; x < 18; x++ {
		g.Set(x, 12, Tile{Kind: Cube})
	}
	g.Set(size/2, size/2, Tile{Kind: Goal})
	return g
}
