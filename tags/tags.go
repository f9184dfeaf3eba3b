package tags

import "github.com/yohamta/donburi"

var (
	Player = donburi.NewTag().SetName("Player")
)

// Resolv tags for the trigger layer
const (
	ResolvPlayer     = "player"
	ResolvCheckpoint = "checkpoint"
)
