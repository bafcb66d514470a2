package leveldata

import (
	"errors"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strconv"
	"strings"

	"github.com/lafriks/go-tiled"
)

// Tiled layer, object group, and property names understood by LoadTMX.
const (
	TMXCollisionLayer = "collision"
	TMXSpawnGroup     = "PlayerSpawn"
	TMXCollisionProp  = "collision"
)

// LoadTMX parses a Tiled map into a stage. It takes an fs.FS so callers can
// pass embed.FS or os.DirFS.
//
// Map properties carry the level info (name, scale, background, velocity_x).
// The "collision" tile layer holds the grid; a tileset tile's "collision"
// property wins over the raw index lookup through table. The first object
// of the "PlayerSpawn" group marks the spawn tile.
func LoadTMX(fsys fs.FS, tmxPath string, table []int, tileSize int) (*Stage, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}
	if levelMap.TileWidth != tileSize || levelMap.TileHeight != tileSize {
		return nil, fmt.Errorf("%w: %s uses %dx%d tiles, want %d", ErrMalformed, tmxPath,
			levelMap.TileWidth, levelMap.TileHeight, tileSize)
	}

	var layer *tiled.Layer
	for _, l := range levelMap.Layers {
		if l.Name == TMXCollisionLayer {
			layer = l
			break
		}
	}
	if layer == nil {
		return nil, fmt.Errorf("%w: %s has no %q layer", ErrMalformed, tmxPath, TMXCollisionLayer)
	}
	if len(layer.Tiles) != levelMap.Width*levelMap.Height {
		return nil, fmt.Errorf("%w: %s layer has %d tiles for a %dx%d map", ErrMalformed, tmxPath,
			len(layer.Tiles), levelMap.Width, levelMap.Height)
	}

	tiles := make([]Tile, levelMap.Width*levelMap.Height)
	for i, tile := range layer.Tiles {
		if tile.IsNil() {
			continue
		}
		code, err := tmxTileCode(tile, table)
		if err != nil {
			return nil, fmt.Errorf("%s tile (%d,%d): %w", tmxPath, i%levelMap.Width, i/levelMap.Width, err)
		}
		tiles[i] = code
	}

	stage, err := NewStage(levelMap.Width, levelMap.Height, tiles)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", tmxPath, err)
	}

	stage.Name = strings.TrimSuffix(path.Base(tmxPath), path.Ext(tmxPath))
	if levelMap.Properties != nil {
		if name := levelMap.Properties.GetString("name"); name != "" {
			stage.Name = name
		}
		stage.Background = levelMap.Properties.GetString("background")
		if scale := levelMap.Properties.GetFloat("scale"); scale > 0 {
			stage.Scale = scale
		}
		stage.VelocityX = levelMap.Properties.GetFloat("velocity_x")
	}

	spawned := false
	for _, og := range levelMap.ObjectGroups {
		if og.Name != TMXSpawnGroup || len(og.Objects) == 0 {
			continue
		}
		o := og.Objects[0]
		stage.SpawnX = int(o.X) / tileSize
		stage.SpawnY = int(o.Y) / tileSize
		spawned = true
		break
	}
	if !spawned {
		return nil, fmt.Errorf("%w: %s has no %q object", ErrMalformed, tmxPath, TMXSpawnGroup)
	}

	if err := stage.validateSpawn(); err != nil {
		return nil, fmt.Errorf("%s: %w", tmxPath, err)
	}
	return stage, nil
}

func tmxTileCode(tile *tiled.LayerTile, table []int) (Tile, error) {
	if tile.Tileset != nil {
		if tilesetTile, err := tile.Tileset.GetTilesetTile(tile.ID); err == nil {
			if raw := tilesetTile.Properties.GetString(TMXCollisionProp); raw != "" {
				code, err := strconv.Atoi(raw)
				if err != nil || code < 0 || code >= int(tileCount) {
					return TileNone, fmt.Errorf("%w: collision property %q", ErrUnknownTile, raw)
				}
				return Tile(code), nil
			}
		}
	}
	return CollisionCode(table, int(tile.ID))
}

// Source loads stages by level index.
type Source interface {
	Load(index int) (*Stage, error)
}

// Has reports whether a level exists at index without parsing it. Sources
// that do not implement it are probed with Load.
func Has(src Source, index int) bool {
	if h, ok := src.(interface{ Has(int) bool }); ok {
		return h.Has(index)
	}
	_, err := src.Load(index)
	return !errors.Is(err, ErrNoSuchLevel)
}

// FSSource reads "stage<N>.txt" or "stage<N>.tmx" files from a directory of fsys.
type FSSource struct {
	FS       fs.FS
	Dir      string
	Table    []int
	TileSize int
}

// Path returns the file backing a level index, preferring the text format.
func (s *FSSource) Path(index int) (string, error) {
	if index < 0 {
		return "", fmt.Errorf("%w: %d", ErrNoSuchLevel, index)
	}
	for _, ext := range []string{".txt", ".tmx"} {
		p := path.Join(s.Dir, "stage"+strconv.Itoa(index)+ext)
		if _, err := fs.Stat(s.FS, p); err == nil {
			return p, nil
		} else if !errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("stat %s: %w", p, err)
		}
	}
	return "", fmt.Errorf("%w: %d", ErrNoSuchLevel, index)
}

// Has reports whether a file backs index.
func (s *FSSource) Has(index int) bool {
	_, err := s.Path(index)
	return err == nil
}

// Load parses the stage for a level index.
func (s *FSSource) Load(index int) (*Stage, error) {
	p, err := s.Path(index)
	if err != nil {
		return nil, err
	}

	if path.Ext(p) == ".tmx" {
		return LoadTMX(s.FS, p, s.Table, s.TileSize)
	}

	f, err := s.FS.Open(p)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", p, err)
	}
	defer f.Close()

	stage, err := Parse(f, s.Table)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", p, err)
	}
	return stage, nil
}

// Indices lists the level indices present in the directory, sorted.
func (s *FSSource) Indices() ([]int, error) {
	entries, err := fs.ReadDir(s.FS, s.Dir)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", s.Dir, err)
	}

	seen := map[int]bool{}
	for _, e := range entries {
		name := e.Name()
		ext := path.Ext(name)
		if e.IsDir() || (ext != ".txt" && ext != ".tmx") || !strings.HasPrefix(name, "stage") {
			continue
		}
		n, err := strconv.Atoi(strings.TrimSuffix(strings.TrimPrefix(name, "stage"), ext))
		if err != nil {
			continue
		}
		seen[n] = true
	}

	indices := make([]int, 0, len(seen))
	for n := range seen {
		indices = append(indices, n)
	}
	sort.Ints(indices)
	return indices, nil
}
