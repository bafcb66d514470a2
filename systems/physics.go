package systems

import (
	"github.com/automoto/escape/components"
	cfg "github.com/automoto/escape/config"
	"github.com/automoto/escape/shared/gamemath"
)

func physicsParams() gamemath.Params {
	return gamemath.Params{
		TileSize:     cfg.Tiles.Size,
		Width:        cfg.Player.Width,
		Height:       cfg.Player.Height,
		AccelY:       cfg.Physics.AccelerationY,
		BoostWith:    cfg.Player.BoostWith,
		BoostAgainst: cfg.Player.BoostAgainst,
	}
}

// step integrates and resolves one gameplay step, then applies the tile
// effect it produced.
func (s *Session) step(dt float64) {
	stage := components.Stage.Get(s.stage).Stage
	p := components.Player.Get(s.player)
	st := components.State.Get(s.player)

	out := gamemath.Resolve(p.Body, dt, stage, physicsParams())
	p.Body = out.Body

	if out.InAir {
		if !p.InAir() {
			p.Footing = components.FootingAirborne
			s.stopLoop()
			OnAirborne(st)
		}
	} else {
		landed := p.InAir()
		p.Footing = components.FootingGrounded
		if out.Snapped {
			s.startLoop()
			if landed {
				OnGrounded(st)
			}
		}
	}

	switch out.Effect {
	case gamemath.EffectDied:
		s.kill()
	case gamemath.EffectFinished:
		s.finish()
	case gamemath.EffectInputLocked:
		s.lockInput()
	}
}
