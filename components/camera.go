package components

import (
	"github.com/yohamta/donburi"

	"github.com/obbycraft/obby/camera"
)

type CameraData struct {
	Cam camera.Camera
}

var Camera = donburi.NewComponentType[CameraData]()
