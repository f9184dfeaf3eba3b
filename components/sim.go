package components

import (
	"github.com/yohamta/donburi"

	"github.com/obbycraft/obby/sim"
)

type SimData struct {
	Driver *sim.Driver
}

var Sim = donburi.NewComponentType[SimData]()
