package systems

import (
	"github.com/automoto/escape/components"
	"github.com/automoto/escape/shared/leveldata"
)

// Frame is an immutable snapshot of everything a renderer draws. The stage
// is shared, not copied; stages are never mutated after loading.
type Frame struct {
	Stage      *leveldata.Stage
	StageIndex int

	Player components.PlayerData
	State  components.StateData

	// Camera translation in screen pixels
	OffsetX, OffsetY float64

	ScreenW, ScreenH float64

	Started    bool
	Paused     bool
	Exited     bool
	Completed  bool
	LoadFailed bool

	IrisRadius float64
	IrisOpen   bool

	Fade      components.FadeKind
	FadeAlpha float64

	Profile components.ProfileData
	Zones   []Zone
}

// Snapshot copies the session state for rendering.
func (s *Session) Snapshot() Frame {
	stage := components.Stage.Get(s.stage)
	sd := components.Session.Get(s.session)
	cam := components.Camera.Get(s.camera)

	return Frame{
		Stage:      stage.Stage,
		StageIndex: stage.Index,
		Player:     *components.Player.Get(s.player),
		State:      *components.State.Get(s.player),
		OffsetX:    cam.Position.X,
		OffsetY:    cam.Position.Y,
		ScreenW:    s.screenW,
		ScreenH:    s.screenH,
		Started:    sd.Started,
		Paused:     sd.Paused,
		Exited:     sd.Exited,
		Completed:  sd.Completed,
		LoadFailed: sd.LoadFailed,
		IrisRadius: sd.IrisRadius,
		IrisOpen:   sd.IrisOpen,
		Fade:       sd.Fade.Kind,
		FadeAlpha:  sd.Fade.Alpha,
		Profile:    *components.Profile.Get(s.profile),
		Zones:      s.zoneRects(),
	}
}
