package level

import (
	"fmt"
	"io/fs"

	"github.com/lafriks/go-tiled"
)

// tmxLayerName is the tile layer a course TMX must contain.
const tmxLayerName = "tiles"

// LoadTMX parses a Tiled TMX course from fsys. Each tileset tile carries a
// "kind" string property (cube, wedge, goal, checkpoint) and wedges an
// integer "rotation" property; empty map cells become Empty tiles. This
// lets courses be authored in the Tiled editor instead of raw JSON.
func LoadTMX(fsys fs.FS, path string) (*Grid, error) {
	m, err := tiled.LoadFile(path, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", path, err)
	}

	var layer *tiled.Layer
	for _, l := range m.Layers {
		if l.Name == tmxLayerName {
			layer = l
			break
		}
	}
	if layer == nil {
		return nil, fmt.Errorf("level: TMX %s has no %q layer", path, tmxLayerName)
	}

	tiles := make([]Tile, 0, m.Width*m.Height)
	for z := 0; z < m.Height; z++ {
		for x := 0; x < m.Width; x++ {
			lt := layer.Tiles[z*m.Width+x]
			if lt.IsNil() {
				tiles = append(tiles, Tile{})
				continue
			}
			t, err := tmxTile(lt)
			if err != nil {
				return nil, fmt.Errorf("level: TMX cell (%d,%d): %w", x, z, err)
			}
			tiles = append(tiles, t)
		}
	}
	return New(m.Width, m.Height, tiles)
}

func tmxTile(lt *tiled.LayerTile) (Tile, error) {
	tt, err := lt.Tileset.GetTilesetTile(lt.ID)
	if err != nil {
		return Tile{}, fmt.Errorf("tileset tile %d: %w", lt.ID, err)
	}

	var kind Kind
	switch s := tt.Properties.GetString("kind"); s {
	case "cube":
		kind = Cube
	case "wedge":
		kind = Wedge
	case "goal":
		kind = Goal
	case "checkpoint":
		kind = Checkpoint
	default:
		return Tile{}, fmt.Errorf("tileset tile %d: unknown kind %q", lt.ID, s)
	}

	t := Tile{Kind: kind}
	if kind == Wedge {
		rot := tt.Properties.GetInt("rotation")
		if rot < 0 || rot > 3 {
			return Tile{}, fmt.Errorf("tileset tile %d: rotation %d out of range [0,3]", lt.ID, rot)
		}
		t.Rot = Rotation(rot)
	}
	return t, nil
}
