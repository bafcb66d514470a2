// Package gamemath holds the pure tile collision resolver and camera math.
package gamemath

import (
	"math"

	"github.com/automoto/escape/shared/leveldata"
)

// Grid is the read-only tile lookup sampled by Resolve. Cells outside the
// grid must read as TileNone.
type Grid interface {
	At(x, y int) leveldata.Tile
	Dimensions() (int, int)
}

// Params are the physical constants of a resolve step.
type Params struct {
	TileSize     float64
	Width        float64 // Player box
	Height       float64
	AccelY       float64
	BoostWith    float64
	BoostAgainst float64
}

// Body is the kinematic state fed into a resolve step. VX is in pixels per
// second and is scaled by Boost; VY is the per-step vertical displacement.
type Body struct {
	X, Y    float64
	VX, VY  float64
	Boost   float64
	OnBoost bool
	Gravity float64 // +1 or -1
}

// Effect is the tile effect triggered by a resolve step.
type Effect int

const (
	EffectNone Effect = iota
	EffectDied
	EffectFinished
	EffectBoostedLeft
	EffectBoostedRight
	EffectInverted
	EffectInputLocked
)

var effectNames = [...]string{"none", "died", "finished", "boosted_left", "boosted_right", "inverted", "input_locked"}

func (e Effect) String() string {
	if e >= 0 && int(e) < len(effectNames) {
		return effectNames[e]
	}
	return "unknown"
}

// Corner indices into Outcome.Corners.
const (
	TopLeft = iota
	TopRight
	BottomRight
	BottomLeft
)

// Outcome is the result of one resolve step.
type Outcome struct {
	Body

	InAir   bool
	Snapped bool // Y was snapped onto a tile boundary
	Effect  Effect
	Corners [4]leveldata.Tile
}

// Resolve advances the body by one step against the grid.
//
// Gravity is integrated first, then the provisional box is sampled at its
// four corners. Solid pairs snap Y; boost pairs snap Y and boost; a full
// vertical side of non-empty tiles only checks for a wall slam; any other
// contact is decided by the per-axis time to collision. Invert, finish,
// input-lock and death tiles then override in that order. Leaving the grid
// is always fatal.
func Resolve(b Body, dt float64, g Grid, p Params) Outcome {
	out := Outcome{Body: b}
	out.VY += dt * p.AccelY * b.Gravity

	left := b.X + b.VX*b.Boost*dt
	top := b.Y + out.VY
	right := left + p.Width
	bottom := top + p.Height

	w, h := g.Dimensions()
	tl, tt := tileIndex(left, p.TileSize), tileIndex(top, p.TileSize)
	tr, tb := tileIndex(right, p.TileSize), tileIndex(bottom, p.TileSize)

	if tl < 0 || tt < 0 || tr >= w || tb > h {
		out.X, out.Y = left, top
		out.InAir = true
		out.Effect = EffectDied
		return out
	}

	c := [4]leveldata.Tile{g.At(tl, tt), g.At(tr, tt), g.At(tr, tb), g.At(tl, tb)}
	out.Corners = c

	if c == [4]leveldata.Tile{} {
		out.X, out.Y = left, top
		out.InAir = true
		out.OnBoost = false
		return out
	}

	snap := func() {
		if out.VY >= 0 {
			out.Y = float64(tb)*p.TileSize - p.Height
		} else {
			out.Y = float64(tt+1) * p.TileSize
		}
		out.Snapped = true
	}
	checkX := func() {
		if (c[TopLeft] == leveldata.TileSolid && c[BottomLeft] == leveldata.TileSolid) ||
			(c[TopRight] == leveldata.TileSolid && c[BottomRight] == leveldata.TileSolid) {
			out.Effect = EffectDied
		}
	}

	switch {
	case horizontalPair(c, leveldata.TileSolid):
		snap()
		checkX()
		out.OnBoost = false
	case horizontalPair(c, leveldata.TileBoostRight):
		snap()
		checkX()
		boost(&out, 1, p)
	case horizontalPair(c, leveldata.TileBoostLeft):
		snap()
		checkX()
		boost(&out, -1, p)
	case (c[TopLeft] != 0 && c[BottomLeft] != 0) || (c[TopRight] != 0 && c[BottomRight] != 0):
		checkX()
	default:
		ctX := collisionTimeX(b, tl, tr, p)
		ctY := collisionTimeY(b.Y, out.VY, tt, tb, p)
		if ctY < 0 && ctX > 0 {
			out.Effect = EffectDied
			out.Y = top
			break
		}
		snap()
		switch {
		case anyCorner(c, leveldata.TileBoostRight):
			boost(&out, 1, p)
		case anyCorner(c, leveldata.TileBoostLeft):
			boost(&out, -1, p)
		default:
			out.OnBoost = false
		}
	}

	switch {
	case anyCorner(c, leveldata.TileInvertX):
		out.VX = -out.VX
		out.Y = top
		override(&out, EffectInverted)
	case anyCorner(c, leveldata.TileFinish):
		out.Y = top
		override(&out, EffectFinished)
	case anyCorner(c, leveldata.TileNoInput):
		out.Y = top
		override(&out, EffectInputLocked)
	case anyCorner(c, leveldata.TileDeath):
		out.Y = top
		override(&out, EffectDied)
	}

	out.VY = 0
	out.InAir = false
	out.X = left
	return out
}

// override replaces the step's effect unless the player already died in it.
func override(out *Outcome, e Effect) {
	if out.Effect != EffectDied {
		out.Effect = e
	}
}

// boost multiplies the boost factor once per contact. dir is +1 for a
// rightward boost tile and -1 for a leftward one. A body with no horizontal
// velocity is not boosted and does not start a contact.
func boost(out *Outcome, dir float64, p Params) {
	if out.OnBoost {
		return
	}

	switch {
	case out.VX*dir > 0:
		out.Boost *= p.BoostWith
	case out.VX*dir < 0:
		out.Boost *= p.BoostAgainst
	default:
		return
	}
	out.OnBoost = true
	if dir > 0 {
		out.Effect = EffectBoostedRight
	} else {
		out.Effect = EffectBoostedLeft
	}
}

// collisionTimeX is the time until the leading X edge reaches the boundary of
// the sampled tile column. A body that is not moving horizontally never hits.
func collisionTimeX(b Body, tl, tr int, p Params) float64 {
	rate := b.VX * b.Boost
	switch {
	case rate > 0:
		return (float64(tr)*p.TileSize - (b.X + p.Width)) / rate
	case rate < 0:
		return (float64(tl+1)*p.TileSize - b.X) / rate
	}
	return -1
}

// collisionTimeY is the step count until the leading Y edge reaches the
// boundary of the sampled tile row. Zero displacement counts as contact.
func collisionTimeY(y, vy float64, tt, tb int, p Params) float64 {
	switch {
	case vy > 0:
		return (float64(tb)*p.TileSize - (y + p.Height)) / vy
	case vy < 0:
		return (float64(tt+1)*p.TileSize - y) / vy
	}
	return 0
}

func horizontalPair(c [4]leveldata.Tile, t leveldata.Tile) bool {
	return (c[TopLeft] == t && c[TopRight] == t) || (c[BottomRight] == t && c[BottomLeft] == t)
}

func anyCorner(c [4]leveldata.Tile, t leveldata.Tile) bool {
	return c[TopLeft] == t || c[TopRight] == t || c[BottomRight] == t || c[BottomLeft] == t
}

// tileIndex floors, so any negative coordinate is off the grid. Truncating
// would allow up to one tile of overhang past the top and left edges.
func tileIndex(v, size float64) int {
	return int(math.Floor(v / size))
}
