package factory

import (
	"github.com/automoto/escape/archetypes"
	"github.com/automoto/escape/components"
	cfg "github.com/automoto/escape/config"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
)

func CreateSession(w donburi.World) *donburi.Entry {
	session := archetypes.Session.Spawn(w)
	components.Session.SetValue(session, components.SessionData{
		IrisRadius: cfg.Session.IrisStart,
	})
	return session
}

// NewIris returns the tween that opens the start-of-level iris.
func NewIris() *gween.Tween {
	s := cfg.Session
	return gween.New(float32(s.IrisStart), float32(s.IrisEnd), float32(s.IrisDuration), ease.Linear)
}

// NewFade returns an overlay fade from transparent to alpha.
func NewFade(kind components.FadeKind, delay, duration, alpha float64) components.FadeData {
	return components.FadeData{
		Kind:  kind,
		Delay: delay,
		Tween: gween.New(0, float32(alpha), float32(duration), ease.Linear),
	}
}
