package systems

import (
	"github.com/bitwiserain/springshot/components"
	cfg "github.com/bitwiserain/springshot/config"
	"github.com/bitwiserain/springshot/shared/gamemath"
	"github.com/bitwiserain/springshot/shared/physics"
	"github.com/bitwiserain/springshot/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// DrawLevel draws every solid tile in view and the world border.
func DrawLevel(e *ecs.ECS, screen *ebiten.Image) {
	sim := GetSimulation(e)
	view, ok := GetViewport(e)
	if sim == nil || sim.World == nil || !ok {
		return
	}

	for _, t := range sim.World.Index().Tiles() {
		r := t.Rect()
		if !view.Visible(r) {
			continue
		}
		p := view.RectToScreen(r)
		vector.FillRect(screen, float32(p.X), float32(p.Y), float32(r.W), float32(r.H), cfg.Colors.Tile, false)
		vector.StrokeRect(screen, float32(p.X)+0.5, float32(p.Y)+0.5, float32(r.W)-1, float32(r.H)-1, 1, cfg.Colors.TileEdge, false)
	}

	b := sim.World.Bounds()
	p := view.RectToScreen(b)
	vector.StrokeRect(screen, float32(p.X), float32(p.Y), float32(b.W), float32(b.H), 2, cfg.Colors.WorldBorder, false)
}

// DrawPlayer draws the player box with its squash/stretch applied around
// the bottom centre.
func DrawPlayer(e *ecs.ECS, screen *ebiten.Image) {
	sim := GetSimulation(e)
	view, ok := GetViewport(e)
	if sim == nil || sim.World == nil || !ok {
		return
	}
	p := sim.World.Player

	scaleX, scaleY := 1.0, 1.0
	if playerEntry, ok := tags.Player.First(e.World); ok {
		ss := components.SquashStretch.Get(playerEntry)
		if ss.ScaleX > 0 && ss.ScaleY > 0 {
			scaleX, scaleY = ss.ScaleX, ss.ScaleY
		}
	}

	box := squashedRect(p.Rect(), scaleX, scaleY)
	s := view.RectToScreen(box)
	vector.FillRect(screen, float32(s.X), float32(s.Y), float32(box.W), float32(box.H), cfg.Colors.Player, false)

	// Eye on the facing side
	eyeW, eyeH := box.W/6, box.H/5
	eyeX := s.X + box.W*0.62
	if p.Facing == physics.Left {
		eyeX = s.X + box.W*0.38 - eyeW
	}
	vector.FillRect(screen, float32(eyeX), float32(s.Y+box.H*0.25), float32(eyeW), float32(eyeH), cfg.Colors.PlayerFace, false)
}

// squashedRect scales r keeping its bottom edge and horizontal centre fixed.
func squashedRect(r gamemath.Rect, sx, sy float64) gamemath.Rect {
	w, h := r.W*sx, r.H*sy
	return gamemath.Rect{X: r.X + (r.W-w)/2, Y: r.Y, W: w, H: h}
}

// DrawProjectiles draws each live projectile as a dot around its centre.
func DrawProjectiles(e *ecs.ECS, screen *ebiten.Image) {
	sim := GetSimulation(e)
	view, ok := GetViewport(e)
	if sim == nil || sim.World == nil || !ok {
		return
	}

	radius := float32(physics.ProjectileSize / 2)
	for _, pr := range sim.World.Projectiles.All() {
		if !view.Visible(pr.Rect()) {
			continue
		}
		c := view.ToScreen(pr.Center())
		vector.FillCircle(screen, float32(c.X), float32(c.Y), radius, cfg.Colors.Projectile, true)
	}
}

// DrawAim draws the line to the aim point and the predicted projectile path
// while the fire button is held.
func DrawAim(e *ecs.ECS, screen *ebiten.Image) {
	playerEntry, ok := tags.Player.First(e.World)
	if !ok {
		return
	}
	aim := components.Aim.Get(playerEntry)
	if !aim.Aiming {
		return
	}
	sim := GetSimulation(e)
	view, ok := GetViewport(e)
	if sim == nil || sim.World == nil || !ok {
		return
	}

	from := view.ToScreen(sim.World.Player.Center())
	to := view.ToScreen(aim.Target)
	vector.StrokeLine(screen, float32(from.X), float32(from.Y), float32(to.X), float32(to.Y), cfg.Aim.LineWidth, cfg.Aim.Color, true)

	every := max(cfg.Aim.DotEvery, 1)
	for i := every - 1; i < len(aim.Preview); i += every {
		d := view.ToScreen(aim.Preview[i])
		vector.FillCircle(screen, float32(d.X), float32(d.Y), cfg.Aim.DotRadius, cfg.Colors.Projectile, true)
	}
}
