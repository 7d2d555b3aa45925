package view

import (
	"fmt"

	cfg "github.com/automoto/kartrace-mp/config"
	"github.com/automoto/kartrace-mp/controller"
	"github.com/automoto/kartrace-mp/fonts"
	"github.com/automoto/kartrace-mp/shared/netconfig"
	"github.com/automoto/kartrace-mp/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/solarlune/resolv"
)

// PhaseBanner is the large countdown text for a phase, empty when nothing
// is shown.
func PhaseBanner(phase netconfig.Phase) string {
	switch phase {
	case netconfig.PhaseReady:
		return "Ready"
	case netconfig.PhaseSet:
		return "Set"
	case netconfig.PhaseGo:
		return "Go!"
	case netconfig.PhaseInGameMenu:
		return "Paused"
	}
	return ""
}

// HUD is what the race overlay shows this frame.
type HUD struct {
	Phase   netconfig.Phase
	Message string
	Status  string // Connection or session line, bottom left
}

func DrawHUD(screen *ebiten.Image, hud HUD) {
	width := float64(screen.Bounds().Dx())
	height := float64(screen.Bounds().Dy())

	if banner := PhaseBanner(hud.Phase); banner != "" {
		op := &text.DrawOptions{}
		op.GeoM.Translate(width/2, height/2)
		op.PrimaryAlign = text.AlignCenter
		op.SecondaryAlign = text.AlignCenter
		op.ColorScale.ScaleWithColor(cfg.White)
		text.Draw(screen, banner, fonts.HUDLarge.Get(), op)
	}

	if hud.Message != "" {
		op := &text.DrawOptions{}
		op.GeoM.Translate(width/2, cfg.Message.TopMargin)
		op.PrimaryAlign = text.AlignCenter
		op.ColorScale.ScaleWithColor(cfg.Message.TextColor)
		text.Draw(screen, hud.Message, fonts.HUD.Get(), op)
	}

	if hud.Status != "" {
		op := &text.DrawOptions{}
		op.GeoM.Translate(4, height-4)
		op.SecondaryAlign = text.AlignEnd
		op.ColorScale.ScaleWithColor(cfg.LightBlue)
		text.Draw(screen, hud.Status, fonts.Debug.Get(), op)
	}
}

// DebugLines describes a controller for the debug overlay.
func DebugLines(phase netconfig.Phase, ticks int, pc *controller.PlayerController) []string {
	lines := []string{fmt.Sprintf("phase %s  t=%d", phase, ticks)}
	if pc == nil {
		return lines
	}
	c := pc.Controls()
	lines = append(lines,
		fmt.Sprintf("steer %+.2f accel %.2f brake %t nitro %t skid %s",
			c.Steer(), c.Accel(), c.Brake(), c.Nitro(), c.SkidControl()),
		fmt.Sprintf("speed %.1f m/s  stuck %.2fs  penalty %d",
			pc.Kart().Speed(), pc.StuckTime(), pc.PenaltyTicks()),
	)
	return lines
}

// DrawDebug prints lines in the top left corner.
func DrawDebug(screen *ebiten.Image, lines []string) {
	face := fonts.Debug.Get()
	y := 4.0
	for _, line := range lines {
		op := &text.DrawOptions{}
		op.GeoM.Translate(4, y)
		op.ColorScale.ScaleWithColor(cfg.Green)
		text.Draw(screen, line, face, op)
		y += 12
	}
}

// DrawSpace outlines every collision object of a locally simulated race.
func DrawSpace(screen *ebiten.Image, space *resolv.Space) {
	for _, obj := range space.Objects() {
		c := cfg.Cyan
		if obj.HasTags(tags.ResolvSolid) {
			c = cfg.Gray
		} else if obj.HasTags(tags.ResolvZipper) {
			c = cfg.Orange
		}
		vector.StrokeRect(screen, float32(obj.X), float32(obj.Y), float32(obj.W), float32(obj.H), 1, c, false)
	}
}
