package main

import (
	"fmt"
	"math"

	cfg "github.com/automoto/escape/config"
	"github.com/automoto/escape/shared/leveldata"
	"github.com/automoto/escape/systems"
	"github.com/gdamore/tcell/v2"
)

// termRenderer draws each frame as one terminal cell per tile.
type termRenderer struct {
	screen tcell.Screen
}

var tileGlyphs = map[leveldata.Tile]struct {
	r     rune
	style tcell.Style
}{
	leveldata.TileSolid:      {'#', tcell.StyleDefault.Foreground(tcell.ColorGray)},
	leveldata.TileDeath:      {'^', tcell.StyleDefault.Foreground(tcell.ColorRed)},
	leveldata.TileInvertX:    {'x', tcell.StyleDefault.Foreground(tcell.ColorPurple)},
	leveldata.TileBoostRight: {'>', tcell.StyleDefault.Foreground(tcell.ColorOrange)},
	leveldata.TileBoostLeft:  {'<', tcell.StyleDefault.Foreground(tcell.ColorYellow)},
	leveldata.TileFinish:     {'F', tcell.StyleDefault.Foreground(tcell.ColorGreen)},
	leveldata.TileNoInput:    {':', tcell.StyleDefault.Foreground(tcell.ColorLightBlue)},
}

func (r *termRenderer) Render(f systems.Frame) {
	r.screen.Clear()
	defer r.screen.Show()

	width, height := r.screen.Size()
	if f.Stage == nil || width == 0 || height < 2 {
		return
	}

	ts := cfg.Tiles.Size * f.Stage.Scale
	col0 := int(math.Floor(f.OffsetX / ts))
	row0 := int(math.Floor(f.OffsetY / ts))

	for y := 0; y < height-1; y++ {
		for x := 0; x < width; x++ {
			if g, ok := tileGlyphs[f.Stage.At(col0+x, row0+y)]; ok {
				r.screen.SetContent(x, y, g.r, nil, g.style)
			}
		}
	}

	if !f.State.Invisible {
		px := int(math.Floor((f.Player.X+cfg.Player.Width/2)/cfg.Tiles.Size)) - col0
		py := int(math.Floor((f.Player.Y+cfg.Player.Height/2)/cfg.Tiles.Size)) - row0
		glyph := '@'
		if f.Player.Gravity < 0 {
			glyph = 'Q'
		}
		if px >= 0 && px < width && py >= 0 && py < height-1 {
			r.screen.SetContent(px, py, glyph, nil, tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true))
		}
	}

	status := fmt.Sprintf("%s  %s  deaths %d", f.Stage.Name, statusLine(f), f.Profile.DeathsCurrentLevel)
	drawString(r.screen, 0, height-1, status, tcell.StyleDefault.Reverse(true))
}

func statusLine(f systems.Frame) string {
	switch {
	case f.Completed && f.Player.Over():
		return "escaped"
	case f.Paused:
		return "paused"
	case !f.Started:
		return "tap to start"
	}
	return f.Player.Status.String()
}

func drawString(screen tcell.Screen, x, y int, s string, style tcell.Style) {
	for i, r := range []rune(s) {
		screen.SetContent(x+i, y, r, nil, style)
	}
}

// keyAction maps a key press onto a scripted action. ok is false for keys
// the simulator ignores.
func keyAction(ev *tcell.EventKey) (Action, bool) {
	switch ev.Key() {
	case tcell.KeyUp:
		return ActionJump, true
	case tcell.KeyDown:
		return ActionFlip, true
	case tcell.KeyEscape, tcell.KeyBackspace:
		return ActionBack, true
	case tcell.KeyRune:
		switch ev.Rune() {
		case ' ', 'w':
			return ActionJump, true
		case 'f', 's':
			return ActionFlip, true
		case 'p':
			return ActionPause, true
		}
	}
	return 0, false
}
