package gamemath

import "math"

// Viewport describes the screen and the level it scrolls over. Screen sizes
// are in screen pixels, level sizes in level pixels.
type Viewport struct {
	ScreenW, ScreenH float64
	LevelW, LevelH   float64
	Scale            float64
}

// CameraParams are the scroll constants in level pixels.
type CameraParams struct {
	LeadRight    float64
	LeadLeft     float64
	MarginY      float64
	PlayerHeight float64
}

// ScrollOffset returns the camera translation in screen pixels for a player
// at (x, y) moving with horizontal velocity vx. The player is kept LeadRight
// from the left edge when moving right and LeadLeft from the right edge
// otherwise. Vertically the previous offset is kept while the player stays
// inside the MarginY dead zone.
func ScrollOffset(x, y, vx, prevY float64, v Viewport, c CameraParams) (float64, float64) {
	s := v.Scale

	var ox float64
	if vx > 0 {
		ox = x*s - c.LeadRight*s
	} else {
		ox = x*s - (v.ScreenW - c.LeadLeft*s)
	}
	ox = clamp(ox, 0, v.LevelW*s-v.ScreenW)

	oy := prevY
	margin := c.MarginY * s
	if (y+c.PlayerHeight)*s > oy+v.ScreenH-margin {
		oy = (y+c.PlayerHeight)*s - v.ScreenH + margin
	} else if y*s < oy+margin {
		oy = y*s - margin
	}
	oy = clamp(oy, 0, v.LevelH*s-v.ScreenH)

	return ox, oy
}

// clamp bounds v to [lo, hi]; a level smaller than the screen pins to lo.
func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(math.Max(lo, hi), v))
}
