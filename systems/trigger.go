package systems

import (
	"log"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/obbycraft/obby/components"
	"github.com/obbycraft/obby/config"
	"github.com/obbycraft/obby/tags"
)

// NewUpdateTriggers returns the checkpoint system. Crossing a checkpoint
// tile makes it the player's respawn point; re-touching the active one is
// a no-op. Activations are written through the store when one is given, so
// a run survives a restart.
func NewUpdateTriggers(store *config.Store, course string) func(*ecs.ECS) {
	return func(e *ecs.ECS) {
		levelEntry, ok := components.Level.First(e.World)
		if !ok {
			return
		}
		levelData := components.Level.Get(levelEntry)
		if levelData.Triggers == nil {
			return
		}

		tags.Player.Each(e.World, func(entry *donburi.Entry) {
			simData := components.Sim.Get(entry)
			progress := components.Progress.Get(entry)

			p := simData.Driver.Current()
			cp, ok := levelData.Triggers.ActiveAt(p.X, p.Z)
			if !ok {
				return
			}
			if progress.Active != nil && progress.Active.ID == cp.ID {
				return
			}
			progress.Active = cp

			if store == nil {
				return
			}
			err := store.SaveProgress(&config.SavedProgress{
				Course:       course,
				CheckpointID: cp.ID,
				SpawnX:       cp.SpawnX,
				SpawnY:       cp.SpawnY,
				SpawnZ:       cp.SpawnZ,
			})
			if err != nil {
				log.Printf("Warning: could not save checkpoint progress: %v", err)
			}
		})
	}
}
