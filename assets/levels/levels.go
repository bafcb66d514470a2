// Package levels embeds the built-in stages.
package levels

import (
	"embed"
	"os"

	cfg "github.com/automoto/escape/config"
	"github.com/automoto/escape/shared/leveldata"
)

//go:embed *.txt *.tmx
var levelFS embed.FS

// Builtin returns the level source built into the binary.
func Builtin() *leveldata.FSSource {
	return &leveldata.FSSource{
		FS:       levelFS,
		Dir:      ".",
		Table:    cfg.Tiles.Collision,
		TileSize: int(cfg.Tiles.Size),
	}
}

// FromDir returns a level source reading dir on disk, for editing levels
// without rebuilding.
func FromDir(dir string) *leveldata.FSSource {
	return &leveldata.FSSource{
		FS:       os.DirFS(dir),
		Dir:      ".",
		Table:    cfg.Tiles.Collision,
		TileSize: int(cfg.Tiles.Size),
	}
}
