package components

import (
	"github.com/yohamta/donburi"

	"github.com/obbycraft/obby/trigger"
)

// ProgressData tracks course progress for one player: the last activated
// checkpoint (the respawn point) and whether the goal has been reached.
// Completed latches until the next respawn.
type ProgressData struct {
	Active    *trigger.Checkpoint
	Completed bool
}

var Progress = donburi.NewComponentType[ProgressData]()
