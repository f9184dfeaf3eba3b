package components

import (
	"github.com/yohamta/donburi"

	"github.com/obbycraft/obby/level"
	"github.com/obbycraft/obby/trigger"
)

// LevelData is the singleton course entity: the immutable tile grid and
// the trigger space indexing its checkpoint tiles.
type LevelData struct {
	Name     string
	Grid     *level.Grid
	Triggers *trigger.Space
}

var Level = donburi.NewComponentType[LevelData]()
