package systems

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/obbycraft/obby/components"
	"github.com/obbycraft/obby/tags"
)

// UpdateCamera eases each player's camera toward its interpolated render
// state. Runs after the simulation systems so the camera sees this frame's
// state.
func UpdateCamera(e *ecs.ECS) {
	tags.Player.Each(e.World, func(entry *donburi.Entry) {
		simData := components.Sim.Get(entry)
		cam := components.Camera.Get(entry)
		cam.Cam.Follow(simData.Driver.State())
	})
}
