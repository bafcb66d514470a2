package components

import (
	"github.com/automoto/escape/shared/gamemath"
	"github.com/yohamta/donburi"
)

// Status is the player's lifecycle in the current attempt. Dead and
// finished are mutually exclusive by construction.
type Status int

const (
	StatusAlive Status = iota
	StatusInputLocked
	StatusDead
	StatusFinished
)

// Footing tracks ground contact. AirborneFlipped means the single mid-air
// gravity flip has been spent.
type Footing int

const (
	FootingGrounded Footing = iota
	FootingAirborne
	FootingAirborneFlipped
)

type PlayerData struct {
	gamemath.Body

	Status  Status
	Footing Footing
}

func (p *PlayerData) InAir() bool {
	return p.Footing != FootingGrounded
}

// CanFlip reports whether a gravity flip is allowed right now.
func (p *PlayerData) CanFlip() bool {
	return p.Footing != FootingAirborneFlipped
}

// Over reports whether the attempt has ended in death or a finish.
func (p *PlayerData) Over() bool {
	return p.Status == StatusDead || p.Status == StatusFinished
}

var Player = donburi.NewComponentType[PlayerData]()

var statusNames = [...]string{"alive", "input_locked", "dead", "finished"}

func (s Status) String() string {
	if s >= 0 && int(s) < len(statusNames) {
		return statusNames[s]
	}
	return "unknown"
}
