package systems

import (
	"github.com/automoto/escape/components"
	cfg "github.com/automoto/escape/config"
	"github.com/automoto/escape/shared/gamemath"
	"github.com/yohamta/donburi/features/math"
)

func (s *Session) updateCamera() {
	stage := components.Stage.Get(s.stage).Stage
	if stage == nil {
		return
	}
	p := components.Player.Get(s.player)
	cam := components.Camera.Get(s.camera)

	lw, lh := stage.PixelSize(cfg.Tiles.Size)
	v := gamemath.Viewport{
		ScreenW: s.screenW,
		ScreenH: s.screenH,
		LevelW:  lw,
		LevelH:  lh,
		Scale:   stage.Scale,
	}
	c := gamemath.CameraParams{
		LeadRight:    cfg.Camera.LeadRight,
		LeadLeft:     cfg.Camera.LeadLeft,
		MarginY:      cfg.Camera.MarginY,
		PlayerHeight: cfg.Player.Height,
	}
	x, y := gamemath.ScrollOffset(p.X, p.Y, p.VX, cam.Position.Y, v, c)
	cam.Position = math.NewVec2(x, y)
}
