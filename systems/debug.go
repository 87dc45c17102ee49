package systems

import (
	"fmt"
	"image/color"

	cfg "github.com/bitwiserain/springshot/config"
	"github.com/bitwiserain/springshot/fonts"
	"github.com/bitwiserain/springshot/shared/gamemath"
	"github.com/bitwiserain/springshot/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

var debugFace text.Face

// DrawDebug outlines the collision space, the player body and the contacts
// found by the last resolve, and prints the driver counters.
func DrawDebug(e *ecs.ECS, screen *ebiten.Image) {
	settings := GetOrCreateSettings(e)
	if !settings.Debug {
		return
	}

	sim := GetSimulation(e)
	view, ok := GetViewport(e)
	if sim == nil || sim.World == nil || !ok {
		return
	}
	w := sim.World

	for _, obj := range w.Index().Space().Objects() {
		if !obj.HasTags(tags.ResolvSolid) {
			continue
		}
		r := gamemath.R(obj.X, obj.Y, obj.W, obj.H)
		if !view.Visible(r) {
			continue
		}
		strokeWorldRect(screen, view, r, cfg.UI.DebugTileColor)
	}

	body := w.Player.Rect()
	strokeWorldRect(screen, view, body, cfg.UI.DebugBodyColor)

	// Highlight the faces the resolver pushed against
	res := w.LastResolution()
	s := view.RectToScreen(body)
	x, y, bw, bh := float32(s.X), float32(s.Y), float32(body.W), float32(body.H)
	c := cfg.UI.DebugContactColor
	if res.Landed {
		vector.FillRect(screen, x, y+bh-2, bw, 2, c, false)
	}
	if res.HitCeiling {
		vector.FillRect(screen, x, y, bw, 2, c, false)
	}
	if res.HitWall {
		vector.FillRect(screen, x, y, 2, bh, c, false)
		vector.FillRect(screen, x+bw-2, y, 2, bh, c, false)
	}

	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("TPS: %0.2f  FPS: %0.2f", ebiten.ActualTPS(), ebiten.ActualFPS()), 4, screen.Bounds().Dy()-64)

	if debugFace == nil {
		debugFace = fonts.Mono.Face()
	}
	p := w.Player
	lines := []string{
		fmt.Sprintf("tick %d (+%d)  acc %v", w.Driver().Ticks(), sim.FrameTicks, w.Driver().Accumulated()),
		fmt.Sprintf("pos (%.1f, %.1f)  vel (%.2f, %.2f)", p.Position.X, p.Position.Y, p.Velocity.X, p.Velocity.Y),
		fmt.Sprintf("%s / %s / %s  tiles %d", p.Horizontal, p.Vertical, p.Facing, w.Index().Len()),
	}
	lineHeight := cfg.UI.DebugFontSize * 1.3
	top := float64(screen.Bounds().Dy()) - 46
	for i, l := range lines {
		drawText(screen, l, debugFace, 4, top+float64(i)*lineHeight, color.White)
	}
}

func strokeWorldRect(screen *ebiten.Image, view gamemath.Viewport, r gamemath.Rect, c color.Color) {
	s := view.RectToScreen(r)
	vector.StrokeRect(screen, float32(s.X)+0.5, float32(s.Y)+0.5, float32(r.W)-1, float32(r.H)-1, 1, c, false)
}
