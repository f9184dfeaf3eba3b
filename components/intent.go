package components

import (
	"github.com/yohamta/donburi"

	"github.com/obbycraft/obby/input"
)

// IntentData carries the frame's movement intent and the per-player look
// mapper. Current is overwritten every frame by the session; the Look
// mapper keeps the smoothed deltas and orientation across frames.
type IntentData struct {
	Current input.Intent
	Look    *input.Look
}

var Intent = donburi.NewComponentType[IntentData]()
