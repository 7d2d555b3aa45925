package view

import (
	"image/color"
	"math"

	"github.com/automoto/kartrace-mp/assets"
	"github.com/automoto/kartrace-mp/assets/animations"
	cfg "github.com/automoto/kartrace-mp/config"
	"github.com/automoto/kartrace-mp/fonts"
	"github.com/automoto/kartrace-mp/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// RaceView draws the track and the karts on it.
type RaceView struct {
	background *ebiten.Image
	kart       *ebiten.Image
	fire       *animations.Animation
}

func NewRaceView(background *ebiten.Image) *RaceView {
	return &RaceView{
		background: background,
		kart:       assets.KartImage(),
		fire:       animations.NewAnimation(0, 1, 3),
	}
}

// Update advances the effect animations by one tick.
func (v *RaceView) Update() {
	v.fire.Update()
}

func (v *RaceView) Draw(screen *ebiten.Image, poses []systems.KartPose) {
	screen.DrawImage(v.background, nil)

	for _, p := range poses {
		if p.Height > 0 {
			vector.FillCircle(screen, float32(p.X), float32(p.Y), 7, cfg.Shadow, true)
		}
	}
	for _, p := range poses {
		v.drawKart(screen, p)
	}
}

func (v *RaceView) drawKart(screen *ebiten.Image, p systems.KartPose) {
	dx, dy := math.Cos(p.Heading), math.Sin(p.Heading)
	y := p.Y - p.Height

	if p.ZipperFire && v.fire.Frame() == 1 {
		fx, fy := p.X-dx*11, y-dy*11
		vector.FillCircle(screen, float32(fx), float32(fy), 4, cfg.Orange, true)
	}
	if p.Skidding {
		for _, side := range []float64{-5, 5} {
			sx := p.X - dx*6 - dy*side
			sy := y - dy*6 + dx*side
			vector.FillRect(screen, float32(sx)-1, float32(sy)-1, 2, 2, cfg.BlackOverlay, false)
		}
	}

	bounds := v.kart.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	scale := 1 + p.Height/cfg.Kart.RescueHeight*0.5

	op := &ebiten.DrawRectShaderOptions{}
	op.Images[0] = v.kart
	op.Uniforms = map[string]any{
		"TintColor": tintUniform(KartColor(p)),
	}
	op.GeoM.Translate(-float64(w)/2, -float64(h)/2)
	op.GeoM.Scale(scale, scale)
	op.GeoM.Rotate(p.Heading)
	op.GeoM.Translate(p.X, y)
	screen.DrawRectShader(w, h, assets.TintShader, op)

	label := &text.DrawOptions{}
	label.GeoM.Translate(p.X, y-float64(h))
	label.PrimaryAlign = text.AlignCenter
	label.SecondaryAlign = text.AlignEnd
	label.ColorScale.ScaleWithColor(cfg.White)
	text.Draw(screen, p.Name, fonts.Debug.Get(), label)
}

// KartColor picks the tint for a kart. The local kart always gets the
// first color, the others cycle through the rest by ID.
func KartColor(p systems.KartPose) color.RGBA {
	if p.Local {
		return cfg.KartColors[0]
	}
	others := cfg.KartColors[1:]
	return others[(p.ID%len(others)+len(others))%len(others)]
}

func tintUniform(c color.RGBA) []float32 {
	return []float32{float32(c.R) / 255, float32(c.G) / 255, float32(c.B) / 255, float32(c.A) / 255}
}
