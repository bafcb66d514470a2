package scenes

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/yohamta/donburi/ecs"
)

var touchIDs []ebiten.TouchID

// updateInput forwards touches, clicks and keys to the session. Keys map
// onto taps in the matching screen half.
func (gs *GameScene) updateInput(e *ecs.ECS) {
	touchIDs = inpututil.AppendJustPressedTouchIDs(touchIDs[:0])
	for _, id := range touchIDs {
		x, y := ebiten.TouchPosition(id)
		gs.session.OnTouch(float64(x), float64(y))
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		gs.session.OnTouch(float64(x), float64(y))
	}

	f := frameData.Get(gs.frame)
	left := [2]float64{f.ScreenW / 4, f.ScreenH / 2}
	right := [2]float64{f.ScreenW * 3 / 4, f.ScreenH / 2}

	switch {
	case anyJustPressed(ebiten.KeySpace, ebiten.KeyArrowUp, ebiten.KeyW):
		gs.session.OnTouch(right[0], right[1])
	case anyJustPressed(ebiten.KeyShiftLeft, ebiten.KeyArrowDown, ebiten.KeyS, ebiten.KeyG):
		gs.session.OnTouch(left[0], left[1])
	case anyJustPressed(ebiten.KeyP):
		gs.session.TogglePause()
	case anyJustPressed(ebiten.KeyM):
		gs.session.ToggleMute()
	case anyJustPressed(ebiten.KeyEscape, ebiten.KeyBackspace):
		gs.session.OnBack()
	}
}

func anyJustPressed(keys ...ebiten.Key) bool {
	for _, k := range keys {
		if inpututil.IsKeyJustPressed(k) {
			return true
		}
	}
	return false
}
