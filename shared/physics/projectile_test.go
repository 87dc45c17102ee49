package physics

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/bitwiserain/springshot/shared/gamemath"
)

func TestNewProjectile(t *testing.T) {
	p := NewProjectile(gamemath.V(80, 112), gamemath.V(80+30, 112+40))

	assert.Equal(t, gamemath.V(76, 108), p.Position)
	assert.Equal(t, gamemath.V(80, 112), p.Center())
	assert.InDelta(t, ProjectileSpeed*0.6, p.Velocity.X, 1e-9)
	assert.InDelta(t, ProjectileSpeed*0.8, p.Velocity.Y, 1e-9)
}

func TestNewProjectileZeroAim(t *testing.T) {
	p := NewProjectile(gamemath.V(80, 112), gamemath.V(80, 112))
	assert.Equal(t, gamemath.Vec{}, p.Velocity)
}

func TestProjectilesUpdate(t *testing.T) {
	bounds := gamemath.R(0, 0, 320, 192)
	var ps Projectiles

	ps.Fire(gamemath.V(100, 100), gamemath.V(200, 100))
	ps.Fire(gamemath.V(100, 100), gamemath.V(0, 100))
	require.Equal(t, 2, ps.Len())

	assert.Equal(t, 0, ps.Update(bounds))
	right := ps.All()[0]
	assert.InDelta(t, 96+ProjectileSpeed, right.Position.X, 1e-9)
	assert.InDelta(t, 96, right.Position.Y, 1e-9)
	assert.InDelta(t, Gravity, right.Velocity.Y, 1e-9)

	// The left-bound projectile crosses x=0 first; the other survives it.
	for ps.Len() == 2 {
		ps.Update(bounds)
	}
	require.Equal(t, 1, ps.Len())
	assert.Greater(t, ps.All()[0].Velocity.X, 0.0)
}

// A projectile heading away from the world leaves the live set within a
// bounded number of ticks.
func TestProjectilesCulled(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		bounds := gamemath.R(0, 0, float64(rapid.IntRange(2, 40).Draw(t, "cols"))*TileSize, float64(rapid.IntRange(2, 20).Draw(t, "rows"))*TileSize)
		origin := gamemath.V(
			rapid.Float64Range(4, bounds.W-4).Draw(t, "ox"),
			rapid.Float64Range(4, bounds.H-4).Draw(t, "oy"),
		)
		angle := rapid.Float64Range(-math.Pi, math.Pi).Draw(t, "angle")

		var ps Projectiles
		ps.Fire(origin, origin.Add(gamemath.Polar(10, angle)))

		// Worst case is a straight-up shot that climbs, stops and then falls
		// through the whole world.
		speed := ProjectileSpeed
		limit := int(math.Ceil(speed/-Gravity)) + int(math.Sqrt(2*(bounds.H+200)/-Gravity)) + 10
		for tick := 0; ps.Len() > 0; tick++ {
			if tick > limit {
				t.Fatalf("projectile still live after %d ticks: %+v", tick, ps.All()[0])
			}
			ps.Update(bounds)
		}
	})
}

func TestPredictTrajectory(t *testing.T) {
	bounds := gamemath.R(0, 0, 320, 192)
	origin := gamemath.V(50, 50)
	target := gamemath.V(150, 150)

	path := PredictTrajectory(origin, target, 20, bounds)
	require.Len(t, path, 20)

	var ps Projectiles
	ps.Fire(origin, target)
	for i := range 3 {
		ps.Update(bounds)
		assert.InDelta(t, ps.All()[0].Center().X, path[i].X, 1e-9)
		assert.InDelta(t, ps.All()[0].Center().Y, path[i].Y, 1e-9)
	}

	assert.Nil(t, PredictTrajectory(origin, origin, 20, bounds))
	assert.Less(t, len(PredictTrajectory(gamemath.V(316, 50), gamemath.V(400, 50), 20, bounds)), 3)
}
