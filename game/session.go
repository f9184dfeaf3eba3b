// Package game wires one play session together: the ECS world, the course
// entity, the player entity with its simulation driver, and the systems
// that advance them. The session is the only writer of the frame clock and
// the player's intent; everything else happens inside the systems.
package game

import (
	"log"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/obbycraft/obby/archetypes"
	"github.com/obbycraft/obby/camera"
	"github.com/obbycraft/obby/components"
	"github.com/obbycraft/obby/config"
	"github.com/obbycraft/obby/input"
	"github.com/obbycraft/obby/level"
	"github.com/obbycraft/obby/physics"
	"github.com/obbycraft/obby/sim"
	"github.com/obbycraft/obby/systems"
	"github.com/obbycraft/obby/trigger"
)

// Session is one run of one course by one player.
type Session struct {
	ecs    *ecs.ECS
	player *donburi.Entry
	level  *donburi.Entry
	clock  *donburi.Entry
	store  *config.Store
	cfg    config.Config
}

// NewSession builds the world for a course. The store may be nil; with one,
// saved progress for the same course puts the player back at its last
// checkpoint.
func NewSession(course string, grid *level.Grid, cfg config.Config, store *config.Store) *Session {
	e := ecs.NewECS(donburi.NewWorld())
	s := &Session{ecs: e, store: store, cfg: cfg}

	triggers := trigger.NewSpace(grid, cfg.Physics.PlayerRadius)
	s.level = archetypes.Level.Spawn(e)
	components.Level.SetValue(s.level, components.LevelData{
		Name:     course,
		Grid:     grid,
		Triggers: triggers,
	})

	s.clock = archetypes.Clock.Spawn(e)

	driver := sim.NewDriver(grid, cfg, level.SpawnX, level.SpawnY, level.SpawnZ)
	s.player = archetypes.Player.Spawn(e)
	components.Sim.SetValue(s.player, components.SimData{Driver: driver})
	components.Intent.SetValue(s.player, components.IntentData{Look: input.NewLook(cfg.Look)})

	if store != nil {
		saved, err := store.LoadProgress()
		switch {
		case err != nil:
			log.Printf("Warning: could not load progress: %v", err)
		case saved != nil && saved.Course == course:
			for _, cp := range triggers.Checkpoints() {
				if cp.ID == saved.CheckpointID {
					components.Progress.Get(s.player).Active = cp
					driver.Reset(cp.SpawnX, cp.SpawnY, cp.SpawnZ)
					break
				}
			}
		}
	}

	components.Camera.Get(s.player).Cam.Snap(driver.Current())

	e.AddSystem(systems.UpdatePlayers)
	e.AddSystem(systems.NewUpdateTriggers(store, course))
	e.AddSystem(systems.UpdateRespawn)
	e.AddSystem(systems.UpdateCamera)

	return s
}

// SetIntent replaces the player's intent for the upcoming frame.
func (s *Session) SetIntent(in input.Intent) {
	components.Intent.Get(s.player).Current = in
}

// Update simulates one rendered frame of the given wall-clock duration.
func (s *Session) Update(frameDt float64) {
	components.Clock.Get(s.clock).FrameDt = frameDt
	s.ecs.Update()
}

// View returns the interpolated render state.
func (s *Session) View() physics.Player {
	return components.Sim.Get(s.player).Driver.State()
}

// Camera returns the smoothed viewpoint for the current frame.
func (s *Session) Camera() camera.Camera {
	return components.Camera.Get(s.player).Cam
}

// Completed reports whether the goal has been reached this run. It stays
// latched until the player resets.
func (s *Session) Completed() bool {
	return components.Progress.Get(s.player).Completed
}

// ActiveCheckpoint returns the current respawn checkpoint, or nil.
func (s *Session) ActiveCheckpoint() *trigger.Checkpoint {
	return components.Progress.Get(s.player).Active
}

// SwapConfig applies reloaded tuning. Call between frames only.
func (s *Session) SwapConfig(cfg config.Config) {
	s.cfg = cfg
	components.Sim.Get(s.player).Driver.SwapConfig(cfg)
	components.Intent.Get(s.player).Look.SetConfig(cfg.Look)
}

// SwapGrid replaces the course and restarts the run from its spawn.
// Call between frames only.
func (s *Session) SwapGrid(course string, grid *level.Grid) {
	levelData := components.Level.Get(s.level)
	levelData.Name = course
	levelData.Grid = grid
	levelData.Triggers = trigger.NewSpace(grid, s.cfg.Physics.PlayerRadius)

	simData := components.Sim.Get(s.player)
	simData.Driver.SwapGrid(grid)
	simData.Driver.Reset(level.SpawnX, level.SpawnY, level.SpawnZ)

	progress := components.Progress.Get(s.player)
	progress.Active = nil
	progress.Completed = false

	components.Camera.Get(s.player).Cam.Snap(simData.Driver.Current())
}
