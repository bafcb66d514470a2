package systems

import (
	"github.com/automoto/escape/components"
	cfg "github.com/automoto/escape/config"
)

func updateIris(sd *components.SessionData, dt float64) {
	if sd.Iris == nil {
		sd.IrisOpen = true
		return
	}
	r, done := sd.Iris.Update(float32(dt))
	sd.IrisRadius = float64(r)
	sd.IrisOpen = done
}

// updateFade advances the overlay fade. While input is locked the step loop
// fades out along with it.
func (s *Session) updateFade(sd *components.SessionData, dt float64) {
	f := &sd.Fade
	if f.Kind == components.FadeNone || f.Tween == nil {
		return
	}
	f.Elapsed += dt

	if f.Kind == components.FadeInputLock && s.looping {
		progress := f.Elapsed / cfg.Session.LoopFadeDuration
		if progress > 1 {
			progress = 1
		}
		s.audio.FadeLoop(progress)
	}

	if f.Done {
		return
	}
	if f.Delay > 0 {
		f.Delay -= dt
		if f.Delay > 0 {
			return
		}
		dt = -f.Delay
		f.Delay = 0
	}
	a, done := f.Tween.Update(float32(dt))
	f.Alpha = float64(a)
	f.Done = done
}
