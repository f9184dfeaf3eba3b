package systems

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/obbycraft/obby/components"
	"github.com/obbycraft/obby/tags"
)

// UpdatePlayers applies each player's look deltas and feeds the frame's
// wall-clock delta into its simulation driver. A goal touch during any of
// the consumed fixed steps latches Completed on the player's progress.
func UpdatePlayers(e *ecs.ECS) {
	clockEntry, ok := components.Clock.First(e.World)
	if !ok {
		return
	}
	dt := components.Clock.Get(clockEntry).FrameDt

	tags.Player.Each(e.World, func(entry *donburi.Entry) {
		intent := components.Intent.Get(entry)
		simData := components.Sim.Get(entry)
		progress := components.Progress.Get(entry)

		intent.Look.Apply(intent.Current.LookDX, intent.Current.LookDY)
		simData.Driver.SetOrientation(intent.Look.Yaw(), intent.Look.Pitch())

		if simData.Driver.Advance(dt, intent.Current) {
			progress.Completed = true
		}
	})
}
