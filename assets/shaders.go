package assets

import (
	"embed"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/pkg/errors"
)

//go:embed shaders/*.kage
var shaderFS embed.FS

var (
	// TintShader colors the white kart sprite with the driver's color
	TintShader *ebiten.Shader
)

// LoadShaders compiles all shaders.
func LoadShaders() error {
	tintSrc, err := shaderFS.ReadFile("shaders/tint.kage")
	if err != nil {
		return errors.Wrap(err, "read tint shader")
	}
	TintShader, err = ebiten.NewShader(tintSrc)
	if err != nil {
		return errors.Wrap(err, "compile tint shader")
	}
	return nil
}
