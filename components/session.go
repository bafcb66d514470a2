package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// FadeKind selects the overlay drawn over the level.
type FadeKind int

const (
	FadeNone FadeKind = iota
	FadePause
	FadeDeath
	FadeFinish
	FadeInputLock
)

type FadeData struct {
	Kind    FadeKind
	Delay   float64 // Seconds before the tween starts
	Elapsed float64
	Tween   *gween.Tween
	Alpha   float64 // 0..255
	Done    bool
}

type SessionData struct {
	Started   bool
	Paused    bool
	Exited    bool
	Completed bool // No level follows the one just finished

	LoadFailed bool
	LoadErr    error

	Iris       *gween.Tween
	IrisRadius float64 // Fraction of the screen width
	IrisOpen   bool

	Fade FadeData
}

var Session = donburi.NewComponentType[SessionData]()
