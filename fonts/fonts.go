package fonts

import (
	"fmt"

	"github.com/golang/freetype/truetype"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/pkg/errors"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gomono"
)

type FontName string

const (
	HUD      FontName = "hud"
	HUDLarge FontName = "hud-large"
	Debug    FontName = "debug"
)

// Get returns the loaded face. It panics if the font was never loaded.
func (f FontName) Get() text.Face {
	face, ok := faces[f]
	if !ok {
		panic(fmt.Sprintf("Font %s not found", f))
	}
	return face
}

var faces = map[FontName]text.Face{}

// LoadFontWithSize parses a TrueType font and registers it under name.
func LoadFontWithSize(name FontName, ttf []byte, size float64) error {
	fontData, err := truetype.Parse(ttf)
	if err != nil {
		return errors.Wrapf(err, "parse font %s", name)
	}
	faces[name] = text.NewGoXFace(truetype.NewFace(fontData, &truetype.Options{Size: size}))
	return nil
}

// LoadDefaults registers the race HUD fonts.
func LoadDefaults() error {
	for _, f := range []struct {
		name FontName
		ttf  []byte
		size float64
	}{
		{HUD, gobold.TTF, 14},
		{HUDLarge, gobold.TTF, 40},
		{Debug, gomono.TTF, 10},
	} {
		if err := LoadFontWithSize(f.name, f.ttf, f.size); err != nil {
			return err
		}
	}
	return nil
}
