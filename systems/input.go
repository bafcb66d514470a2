package systems

import (
	"github.com/automoto/escape/components"
	cfg "github.com/automoto/escape/config"
)

// OnTouch handles a tap at screen coordinates (x, y).
func (s *Session) OnTouch(x, y float64) {
	sd := components.Session.Get(s.session)
	p := components.Player.Get(s.player)

	if sd.Paused {
		switch s.zoneAt(x, y, true) {
		case components.ZoneContinue:
			s.resume()
			s.audio.PlayEffect(cfg.SoundButton)
		case components.ZoneExit:
			sd.Exited = true
			s.audio.PlayEffect(cfg.SoundButton)
		case components.ZoneButton:
			s.ToggleMute()
			s.audio.PlayEffect(cfg.SoundButton)
		}
		return
	}

	if s.zoneAt(x, y, false) == components.ZoneButton {
		s.pause()
		return
	}
	if components.Stage.Get(s.stage).Stage == nil {
		return
	}

	switch {
	case p.Status == components.StatusDead:
		s.Retry()
	case p.Status == components.StatusFinished:
		s.advance()
	case !sd.Started:
		s.start()
	case p.Status == components.StatusInputLocked:
	case x < s.screenW/2:
		s.invertGravity()
	default:
		s.jump()
	}
}

// OnBack handles the back/cancel signal. A running attempt is paused;
// otherwise the session is left, counting an unfinished attempt as a death.
func (s *Session) OnBack() {
	sd := components.Session.Get(s.session)
	p := components.Player.Get(s.player)

	if !sd.Paused && sd.Started && !p.Over() {
		s.pause()
		return
	}

	if components.Stage.Get(s.stage).Stage != nil && !p.Over() {
		prof := components.Profile.Get(s.profile)
		prof.DeathsCurrentLevel++
		prof.DeathsTotal++
		s.progress.SaveProfile(*prof)
	}
	sd.Exited = true
	s.audio.PlayEffect(cfg.SoundButton)
}

func (s *Session) jump() {
	p := components.Player.Get(s.player)
	if p.InAir() {
		return
	}
	p.VY -= cfg.Player.JumpImpulse * p.Gravity
	p.Footing = components.FootingAirborne
	SetState(components.State.Get(s.player), cfg.StartEndJump)

	s.stopLoop()
	s.audio.PlayEffect(cfg.SoundJump)
}

// invertGravity flips gravity once per stretch of air time.
func (s *Session) invertGravity() {
	p := components.Player.Get(s.player)
	if !p.CanFlip() {
		return
	}
	p.Gravity = -p.Gravity
	p.Footing = components.FootingAirborneFlipped
	SetState(components.State.Get(s.player), cfg.Gravity)

	s.stopLoop()
	if p.Gravity < 0 {
		s.audio.PlayEffect(cfg.SoundGravityUp)
	} else {
		s.audio.PlayEffect(cfg.SoundGravityDown)
	}
}
