package factory

import (
	"github.com/automoto/escape/archetypes"
	"github.com/automoto/escape/components"
	cfg "github.com/automoto/escape/config"
	"github.com/automoto/escape/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

const zoneCellSize = 16

func CreateSpace(w donburi.World, width, height, cellWidth, cellHeight int) *donburi.Entry {
	space := archetypes.Space.Spawn(w)
	spaceData := resolv.NewSpace(width, height, cellWidth, cellHeight)
	components.Space.Set(space, spaceData)
	return space
}

// CreateZones builds the tap zones for a screen of the given size: the
// pause button in the top-left corner and the continue and exit rows of
// the pause menu.
func CreateZones(w donburi.World, screenW, screenH float64) *donburi.Entry {
	entry := CreateSpace(w, int(screenW), int(screenH), zoneCellSize, zoneCellSize)
	space := components.Space.Get(entry)

	p := cfg.Pause
	d := p.Density
	menuX := screenW * p.MenuLeft
	menuW := screenW * (p.MenuRight - p.MenuLeft)

	button := resolv.NewObject(p.ButtonMin*d, p.ButtonMin*d, (p.ButtonMax-p.ButtonMin)*d, (p.ButtonMax-p.ButtonMin)*d,
		tags.ResolvZone, tags.ResolvHUD, tags.ResolvPauseMenu)
	button.Data = components.ZoneButton

	cont := resolv.NewObject(menuX, screenH/2+p.ContinueTop*d, menuW, (p.ContinueBottom-p.ContinueTop)*d,
		tags.ResolvZone, tags.ResolvPauseMenu)
	cont.Data = components.ZoneContinue

	exit := resolv.NewObject(menuX, screenH/2+p.ExitTop*d, menuW, (p.ExitBottom-p.ExitTop)*d,
		tags.ResolvZone, tags.ResolvPauseMenu)
	exit.Data = components.ZoneExit

	space.Add(button, cont, exit)
	return entry
}
