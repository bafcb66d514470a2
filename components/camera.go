package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

type CameraData struct {
	Position math.Vec2 // Scroll offset in screen pixels
}

var Camera = donburi.NewComponentType[CameraData]()
