package factory

import (
	"github.com/automoto/escape/archetypes"
	"github.com/automoto/escape/components"
	cfg "github.com/automoto/escape/config"
	"github.com/automoto/escape/shared/gamemath"
	"github.com/automoto/escape/shared/leveldata"
	"github.com/yohamta/donburi"
)

func CreatePlayer(w donburi.World) *donburi.Entry {
	player := archetypes.Player.Spawn(w)
	components.Player.SetValue(player, components.PlayerData{
		Body:    gamemath.Body{Boost: 1, Gravity: 1},
		Footing: components.FootingAirborne,
	})
	components.State.SetValue(player, components.StateData{
		CurrentState:  cfg.Idle,
		PreviousState: cfg.StateNone,
	})
	return player
}

// SpawnPlayer returns the player placed on the stage's spawn tile, standing
// on its bottom edge and moving with the stage's start velocity.
func SpawnPlayer(stage *leveldata.Stage) components.PlayerData {
	ts := cfg.Tiles.Size
	return components.PlayerData{
		Body: gamemath.Body{
			X:       float64(stage.SpawnX) * ts,
			Y:       float64(stage.SpawnY)*ts + ts - cfg.Player.Height,
			VX:      stage.VelocityX,
			Boost:   1,
			Gravity: 1,
		},
		Status:  components.StatusAlive,
		Footing: components.FootingAirborne,
	}
}
