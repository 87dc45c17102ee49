package physics

import "github.com/bitwiserain/springshot/shared/gamemath"

// Projectile is a gravity-affected box with no state machine. It ignores
// tiles and the player.
type Projectile struct {
	Body
}

// Projectiles is the live set of projectiles.
type Projectiles struct {
	items []Projectile
}

// NewProjectile centres a projectile on origin and aims it at target.
func NewProjectile(origin, target gamemath.Vec) Projectile {
	half := ProjectileSize / 2
	return Projectile{Body: Body{
		Position: origin.Sub(gamemath.V(half, half)),
		Velocity: gamemath.AimVelocity(origin, target, ProjectileSpeed),
		Width:    ProjectileSize,
		Height:   ProjectileSize,
	}}
}

// Fire adds a projectile travelling from origin toward target.
func (ps *Projectiles) Fire(origin, target gamemath.Vec) {
	ps.items = append(ps.items, NewProjectile(origin, target))
}

// Update integrates every projectile for one tick and drops those whose
// position has left bounds. It returns how many were removed.
func (ps *Projectiles) Update(bounds gamemath.Rect) int {
	writeIdx := 0
	for i := range ps.items {
		p := &ps.items[i]
		p.step()
		if !bounds.ContainsPoint(p.Position) {
			continue
		}
		ps.items[writeIdx] = *p
		writeIdx++
	}
	removed := len(ps.items) - writeIdx
	clear(ps.items[writeIdx:])
	ps.items = ps.items[:writeIdx]
	return removed
}

func (p *Projectile) step() {
	p.Position = p.Position.Add(p.Velocity)
	p.Velocity.Y += Gravity
}

func (ps *Projectiles) Len() int { return len(ps.items) }

// All returns the live projectiles. The slice is only valid until the next
// Update or Fire and must not be modified.
func (ps *Projectiles) All() []Projectile {
	return ps.items
}

// PredictTrajectory returns up to steps positions a projectile fired from
// origin toward target would pass through, stopping once it leaves bounds.
func PredictTrajectory(origin, target gamemath.Vec, steps int, bounds gamemath.Rect) []gamemath.Vec {
	p := NewProjectile(origin, target)
	if p.Velocity == (gamemath.Vec{}) {
		return nil
	}
	path := make([]gamemath.Vec, 0, steps)
	for range steps {
		p.step()
		if !bounds.ContainsPoint(p.Position) {
			break
		}
		path = append(path, p.Center())
	}
	return path
}
