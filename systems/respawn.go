package systems

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/obbycraft/obby/components"
	"github.com/obbycraft/obby/level"
	"github.com/obbycraft/obby/tags"
)

// UpdateRespawn teleports a player requesting a reset back to its active
// checkpoint, or the course spawn if none was reached. The completion
// latch clears and the camera snaps so the respawn does not swoop.
func UpdateRespawn(e *ecs.ECS) {
	tags.Player.Each(e.World, func(entry *donburi.Entry) {
		intent := components.Intent.Get(entry)
		if !intent.Current.Reset {
			return
		}

		simData := components.Sim.Get(entry)
		progress := components.Progress.Get(entry)
		cam := components.Camera.Get(entry)

		x, y, z := level.SpawnX, level.SpawnY, level.SpawnZ
		if progress.Active != nil {
			x, y, z = progress.Active.SpawnX, progress.Active.SpawnY, progress.Active.SpawnZ
		}
		simData.Driver.Reset(x, y, z)
		progress.Completed = false
		cam.Cam.Snap(simData.Driver.Current())
	})
}
