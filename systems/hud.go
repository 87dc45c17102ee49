package systems

import (
	"fmt"
	"image/color"

	"github.com/bitwiserain/springshot/components"
	cfg "github.com/bitwiserain/springshot/config"
	"github.com/bitwiserain/springshot/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/yohamta/donburi/ecs"
)

var hudFace text.Face

// DrawHUD renders the level name, live projectile count and a controls hint.
func DrawHUD(e *ecs.ECS, screen *ebiten.Image) {
	sim := GetSimulation(e)
	if sim == nil || sim.World == nil {
		return
	}
	if hudFace == nil {
		hudFace = fonts.Regular.Face()
	}

	margin := cfg.UI.HUDMargin
	lineHeight := cfg.UI.HUDFontSize * 1.4

	drawText(screen, sim.LevelName, hudFace, margin, margin, cfg.UI.HUDTextColor)
	drawText(screen, fmt.Sprintf("Shots: %d", sim.World.Projectiles.Len()), hudFace, margin, margin+lineHeight, cfg.UI.HUDTextColor)

	input := getOrCreateInput(e)
	hint := getControlsHint(input.LastInputMethod)
	w, _ := text.Measure(hint, hudFace, 0)
	x := float64(screen.Bounds().Dx()) - w - margin
	y := float64(screen.Bounds().Dy()) - lineHeight - margin
	drawText(screen, hint, hudFace, x, y, cfg.UI.HUDTextColor)
}

// getControlsHint returns the controls line for the input method in use
func getControlsHint(method components.InputMethod) string {
	if method == components.InputGamepad {
		return "Stick: Move   A: Jump   Right Stick + RT: Aim/Fire   Start: Pause"
	}
	return "A/D: Move   W/Space: Jump   Mouse: Aim/Fire   Esc: Pause"
}

func drawText(screen *ebiten.Image, s string, face text.Face, x, y float64, c color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(c)
	text.Draw(screen, s, face, op)
}
