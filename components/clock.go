package components

import "github.com/yohamta/donburi"

// ClockData is the singleton frame clock: the wall-clock delta of the
// frame currently being simulated, written by the session before each
// ECS update.
type ClockData struct {
	FrameDt float64
}

var Clock = donburi.NewComponentType[ClockData]()
