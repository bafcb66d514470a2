package assets

import (
	"embed"

	"github.com/hajimehoshi/ebiten/v2"
)

//go:embed shaders/*.kage
var shaderFS embed.FS

var (
	// IrisShader blacks out everything outside a circle
	IrisShader *ebiten.Shader
)

// LoadShaders compiles and caches all shaders
func LoadShaders() error {
	irisSrc, err := shaderFS.ReadFile("shaders/iris.kage")
	if err != nil {
		return err
	}
	IrisShader, err = ebiten.NewShader(irisSrc)
	if err != nil {
		return err
	}

	return nil
}
