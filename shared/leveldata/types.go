// Package leveldata provides the stage model and level file parsing.
// Pure data only; nothing here touches the renderer or the entity world.
package leveldata

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformed is returned for level files that do not follow the format.
	ErrMalformed = errors.New("malformed level")
	// ErrUnknownTile is returned when a raw tile index has no collision mapping.
	ErrUnknownTile = errors.New("unknown tile index")
	// ErrNoSuchLevel is returned by a Source when no file exists for an index.
	ErrNoSuchLevel = errors.New("no such level")
)

// Tile is the collision code of one grid cell.
type Tile uint8

const (
	TileNone Tile = iota
	TileSolid
	TileDeath
	TileInvertX
	TileBoostRight
	TileBoostLeft
	TileFinish
	TileNoInput

	tileCount
)

var tileNames = [...]string{"none", "solid", "death", "invert_x", "boost_right", "boost_left", "finish", "no_input"}

func (t Tile) String() string {
	if t < tileCount {
		return tileNames[t]
	}
	return fmt.Sprintf("tile(%d)", uint8(t))
}

// Stage is a parsed level. The tile grid is fixed at construction.
type Stage struct {
	Name       string
	Background string
	Scale      float64

	// Spawn position in tiles and initial horizontal velocity in pixels per second
	SpawnX    int
	SpawnY    int
	VelocityX float64

	Width  int
	Height int
	tiles  []Tile
}

// NewStage builds a stage from row-major tile codes.
func NewStage(width, height int, tiles []Tile) (*Stage, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: size %dx%d", ErrMalformed, width, height)
	}
	if len(tiles) != width*height {
		return nil, fmt.Errorf("%w: %d tiles for a %dx%d grid", ErrMalformed, len(tiles), width, height)
	}
	for i, t := range tiles {
		if t >= tileCount {
			return nil, fmt.Errorf("%w: code %d at (%d,%d)", ErrUnknownTile, t, i%width, i/width)
		}
	}

	grid := make([]Tile, len(tiles))
	copy(grid, tiles)
	return &Stage{Scale: 1, Width: width, Height: height, tiles: grid}, nil
}

// At returns the tile at (x, y). Cells outside the grid, including the row
// just below the last one, read as TileNone.
func (s *Stage) At(x, y int) Tile {
	if x < 0 || y < 0 || x >= s.Width || y >= s.Height {
		return TileNone
	}
	return s.tiles[y*s.Width+x]
}

// Dimensions returns the grid size in tiles.
func (s *Stage) Dimensions() (int, int) {
	return s.Width, s.Height
}

// PixelSize returns the level size in level pixels for a tile size.
func (s *Stage) PixelSize(tileSize float64) (float64, float64) {
	return float64(s.Width) * tileSize, float64(s.Height) * tileSize
}

func (s *Stage) validateSpawn() error {
	if s.SpawnX < 0 || s.SpawnX >= s.Width || s.SpawnY < 0 || s.SpawnY >= s.Height {
		return fmt.Errorf("%w: spawn (%d,%d) outside %dx%d grid", ErrMalformed, s.SpawnX, s.SpawnY, s.Width, s.Height)
	}
	if s.Scale <= 0 {
		return fmt.Errorf("%w: scale %v must be positive", ErrMalformed, s.Scale)
	}
	return nil
}

// CollisionCode maps a raw tile-sheet index through a tileset table.
func CollisionCode(table []int, index int) (Tile, error) {
	if index < 0 || index >= len(table) {
		return TileNone, fmt.Errorf("%w: %d", ErrUnknownTile, index)
	}
	code := table[index]
	if code < 0 || code >= int(tileCount) {
		return TileNone, fmt.Errorf("%w: index %d maps to code %d", ErrUnknownTile, index, code)
	}
	return Tile(code), nil
}
