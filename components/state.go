package components

import (
	cfg "github.com/automoto/escape/config"
	"github.com/yohamta/donburi"
)

type StateData struct {
	CurrentState  cfg.StateID
	PreviousState cfg.StateID
	StateTimer    float64 // Seconds in the current state

	Frame     int // Sprite sheet index
	FlipX     bool
	FlipY     bool
	Invisible bool
}

var State = donburi.NewComponentType[StateData]()
