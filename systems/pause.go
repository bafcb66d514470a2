package systems

import (
	"github.com/automoto/escape/components"
	cfg "github.com/automoto/escape/config"
	"github.com/automoto/escape/systems/factory"
	"github.com/automoto/escape/tags"
	"github.com/solarlune/resolv"
)

func (s *Session) pause() {
	sd := components.Session.Get(s.session)
	sd.Paused = true
	sd.Fade = factory.NewFade(components.FadePause, 0, cfg.Session.PauseFadeDuration, cfg.Session.PauseFadeAlpha)

	s.stopLoop()
	s.audio.PauseMusic()
	s.audio.PlayEffect(cfg.SoundButton)
}

// resume leaves the pause menu and restarts the overlay that belongs to
// the player's status.
func (s *Session) resume() {
	sd := components.Session.Get(s.session)
	p := components.Player.Get(s.player)
	sd.Paused = false

	c := cfg.Session
	switch p.Status {
	case components.StatusDead:
		sd.Fade = factory.NewFade(components.FadeDeath, c.DeathFadeDelay, c.DeathFadeDuration, 255)
	case components.StatusFinished:
		sd.Fade = factory.NewFade(components.FadeFinish, 0, c.FinishFadeDuration, 255)
	case components.StatusInputLocked:
		sd.Fade = factory.NewFade(components.FadeInputLock, 0, c.InputLockFadeDuration, 255)
	default:
		sd.Fade = components.FadeData{}
		s.audio.ResumeMusic()
	}

	if sd.Started && !p.Over() && !p.InAir() {
		s.startLoop()
	}
}

// zoneAt hit-tests the tap zones. The pause menu rows only respond while
// paused.
func (s *Session) zoneAt(x, y float64, paused bool) components.PauseZone {
	tag := tags.ResolvHUD
	if paused {
		tag = tags.ResolvPauseMenu
	}

	space := components.Space.Get(s.zones)
	probe := resolv.NewObject(x, y, 1, 1)
	space.Add(probe)
	defer space.Remove(probe)

	check := probe.Check(0, 0, tag)
	if check == nil {
		return components.ZoneNone
	}
	for _, o := range check.ObjectsByTags(tag) {
		if x < o.X || x >= o.X+o.W || y < o.Y || y >= o.Y+o.H {
			continue
		}
		if z, ok := o.Data.(components.PauseZone); ok {
			return z
		}
	}
	return components.ZoneNone
}

// Zone is a tap zone in screen pixels, exposed for drawing.
type Zone struct {
	Kind       components.PauseZone
	X, Y, W, H float64
}

func (s *Session) zoneRects() []Zone {
	space := components.Space.Get(s.zones)
	var zones []Zone
	for _, o := range space.Objects() {
		z, ok := o.Data.(components.PauseZone)
		if !ok {
			continue
		}
		zones = append(zones, Zone{Kind: z, X: o.X, Y: o.Y, W: o.W, H: o.H})
	}
	return zones
}
