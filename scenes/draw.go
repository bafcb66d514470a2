package scenes

import (
	"fmt"
	"image/color"
	"math"

	"github.com/automoto/escape/assets"
	"github.com/automoto/escape/components"
	cfg "github.com/automoto/escape/config"
	"github.com/automoto/escape/fonts"
	"github.com/automoto/escape/shared/leveldata"
	"github.com/automoto/escape/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/font"
)

func currentFrame(e *ecs.ECS) (*systems.Frame, bool) {
	entry, ok := frameData.First(e.World)
	if !ok {
		return nil, false
	}
	return frameData.Get(entry), true
}

// DrawStage fills the background and draws the visible tiles.
func DrawStage(e *ecs.ECS, screen *ebiten.Image) {
	f, ok := currentFrame(e)
	if !ok || f.Stage == nil {
		return
	}
	stage := f.Stage

	bg, ok := cfg.UI.Backgrounds[stage.Background]
	if !ok {
		bg = cfg.UI.DefaultBackdrop
	}
	screen.Fill(bg)

	ts := cfg.Tiles.Size * stage.Scale
	x0 := int(math.Floor(f.OffsetX / ts))
	y0 := int(math.Floor(f.OffsetY / ts))
	x1 := int(math.Ceil((f.OffsetX + f.ScreenW) / ts))
	y1 := int(math.Ceil((f.OffsetY + f.ScreenH) / ts))

	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			tile := stage.At(x, y)
			if tile == leveldata.TileNone {
				continue
			}
			c, ok := cfg.UI.TileColors[int(tile)]
			if !ok {
				continue
			}
			vector.DrawFilledRect(screen,
				float32(float64(x)*ts-f.OffsetX), float32(float64(y)*ts-f.OffsetY),
				float32(ts), float32(ts), c, false)
		}
	}
}

// DrawPlayer draws the player box. The visor marks facing and the gravity
// side; the leg bar steps through the animation frame.
func DrawPlayer(e *ecs.ECS, screen *ebiten.Image) {
	f, ok := currentFrame(e)
	if !ok || f.Stage == nil || f.State.Invisible {
		return
	}
	s := f.Stage.Scale
	p := f.Player
	x := p.X*s - f.OffsetX
	y := p.Y*s - f.OffsetY
	w := cfg.Player.Width * s
	h := cfg.Player.Height * s

	body := cfg.UI.PlayerColor
	if f.State.CurrentState == cfg.Dying {
		body = cfg.LightRed
	}
	vector.DrawFilledRect(screen, float32(x), float32(y), float32(w), float32(h), body, false)

	visorW, visorH := w/2, h/6
	visorX := x + w/2
	if f.State.FlipX {
		visorX = x
	}
	visorY := y + h/6
	if f.State.FlipY {
		visorY = y + h - h/6 - visorH
	}
	vector.DrawFilledRect(screen, float32(visorX), float32(visorY), float32(visorW), float32(visorH), cfg.DarkBlue, false)

	legW := w / 4
	legX := x + float64(f.State.Frame%4)*legW
	legY := y + h - h/8
	if f.State.FlipY {
		legY = y
	}
	vector.DrawFilledRect(screen, float32(legX), float32(legY), float32(legW), float32(h/8), cfg.Grey, false)
}

// DrawDebug outlines the tile grid and the player's collision box.
func DrawDebug(e *ecs.ECS, screen *ebiten.Image) {
	if !cfg.Debug.ShowGrid {
		return
	}
	f, ok := currentFrame(e)
	if !ok || f.Stage == nil {
		return
	}
	s := f.Stage.Scale
	ts := cfg.Tiles.Size * s
	lineColor := color.RGBA{255, 255, 255, 40}

	for x := math.Mod(-f.OffsetX, ts); x < f.ScreenW; x += ts {
		vector.StrokeLine(screen, float32(x), 0, float32(x), float32(f.ScreenH), 1, lineColor, false)
	}
	for y := math.Mod(-f.OffsetY, ts); y < f.ScreenH; y += ts {
		vector.StrokeLine(screen, 0, float32(y), float32(f.ScreenW), float32(y), 1, lineColor, false)
	}

	p := f.Player
	vector.StrokeRect(screen,
		float32(p.X*s-f.OffsetX), float32(p.Y*s-f.OffsetY),
		float32(cfg.Player.Width*s), float32(cfg.Player.Height*s),
		1, color.RGBA{0, 255, 255, 255}, false)

	info := fmt.Sprintf("%s vx=%.0f vy=%.2f boost=%.2f g=%+.0f", f.State.CurrentState, p.VX, p.VY, p.Boost, p.Gravity)
	text.Draw(screen, info, fonts.HUD.Get(), 60, 30, cfg.White)
}

// DrawIris covers the screen outside the opening circle at level start.
func DrawIris(e *ecs.ECS, screen *ebiten.Image) {
	f, ok := currentFrame(e)
	if !ok || f.Stage == nil || f.IrisOpen || f.Player.Over() {
		return
	}

	s := f.Stage.Scale
	cx := (f.Player.X+cfg.Player.Width/2)*s - f.OffsetX
	cy := (f.Player.Y+cfg.Player.Height/2)*s - f.OffsetY

	if assets.IrisShader != nil {
		op := &ebiten.DrawRectShaderOptions{}
		op.Uniforms = map[string]any{
			"Center": []float32{float32(cx), float32(cy)},
			"Radius": float32(f.IrisRadius * f.ScreenW),
		}
		screen.DrawRectShader(int(f.ScreenW), int(f.ScreenH), assets.IrisShader, op)
	}

	if !f.Started {
		drawCentered(screen, f.Stage.Name, fonts.Title.Get(), f.ScreenW/2, f.ScreenH/2, cfg.White)
		drawCentered(screen, "Tap to start", fonts.HUD.Get(), f.ScreenW/2, f.ScreenH/2+cfg.UI.TitleFontSize, cfg.Grey)
	}
}

// DrawHUD renders the death counter and the pause button.
func DrawHUD(e *ecs.ECS, screen *ebiten.Image) {
	f, ok := currentFrame(e)
	if !ok {
		return
	}
	m := cfg.UI.HUDMargin

	deaths := fmt.Sprintf("Deaths: %d", f.Profile.DeathsCurrentLevel)
	text.Draw(screen, deaths, fonts.HUD.Get(), int(m), int(f.ScreenH-m), cfg.White)

	for _, z := range f.Zones {
		if z.Kind != components.ZoneButton {
			continue
		}
		if f.Paused {
			label := "Sound"
			if f.Profile.Muted {
				label = "Muted"
			}
			vector.StrokeRect(screen, float32(z.X), float32(z.Y), float32(z.W), float32(z.H), 2, cfg.Pause.TextColor, false)
			text.Draw(screen, label, fonts.HUD.Get(), int(z.X+z.W+m), int(z.Y+z.H*0.7), cfg.Pause.TextColor)
			continue
		}
		bar := float32(z.W / 4)
		vector.DrawFilledRect(screen, float32(z.X)+bar/2, float32(z.Y), bar, float32(z.H), cfg.Pause.TextColor, false)
		vector.DrawFilledRect(screen, float32(z.X+z.W)-bar*3/2, float32(z.Y), bar, float32(z.H), cfg.Pause.TextColor, false)
	}
}

// DrawOverlay draws the active fade and its message.
func DrawOverlay(e *ecs.ECS, screen *ebiten.Image) {
	f, ok := currentFrame(e)
	if !ok {
		return
	}

	if f.LoadFailed {
		drawCentered(screen, "Could not load level", fonts.HUD.Get(), f.ScreenW/2, f.ScreenH-2*cfg.UI.HUDMargin, cfg.LightRed)
	}
	if f.Fade == components.FadeNone {
		return
	}

	a := uint8(math.Min(255, math.Max(0, f.FadeAlpha)))
	vector.DrawFilledRect(screen, 0, 0, float32(f.ScreenW), float32(f.ScreenH), color.RGBA{A: a}, false)

	title := fonts.Title.Get()
	cx, cy := f.ScreenW/2, f.ScreenH/2
	switch f.Fade {
	case components.FadePause:
		drawCentered(screen, "Paused", title, cx, f.ScreenH/3, cfg.Pause.TextColor)
		for _, z := range f.Zones {
			var label string
			switch z.Kind {
			case components.ZoneContinue:
				label = "Continue"
			case components.ZoneExit:
				label = "Exit"
			default:
				continue
			}
			vector.DrawFilledRect(screen, float32(z.X), float32(z.Y), float32(z.W), float32(z.H), cfg.Pause.ButtonColor, false)
			drawCentered(screen, label, fonts.HUD.Get(), z.X+z.W/2, z.Y+z.H/2, cfg.Pause.TextColor)
		}
		// Redraw the button above the dim layer
		DrawHUD(e, screen)
	case components.FadeDeath:
		drawCentered(screen, "You died. Tap to retry", title, cx, cy, cfg.White)
	case components.FadeFinish:
		msg := "Level complete. Tap to continue"
		if f.Stage != nil {
			msg = f.Stage.Name + " complete. Tap to continue"
		}
		if f.Completed {
			msg = "You escaped! Tap to exit"
		}
		drawCentered(screen, msg, title, cx, cy, cfg.White)
	}
}

// drawCentered draws s with its box centered on (cx, cy).
func drawCentered(screen *ebiten.Image, s string, face font.Face, cx, cy float64, clr color.Color) {
	bounds := text.BoundString(face, s) //nolint:staticcheck // TODO: migrate to text/v2
	x := int(cx) - bounds.Dx()/2
	y := int(cy) + bounds.Dy()/2
	text.Draw(screen, s, face, x, y, clr) //nolint:staticcheck // TODO: migrate to text/v2
}
