// Package physics is the fixed-timestep simulation core: a player body with
// its movement state machine, the static tile collision index, the
// axis-separated resolver, projectiles and the timestep driver.
//
// The world is y-up and every body is anchored at its bottom-left corner.
// Velocities are in pixels per tick. Nothing in this package draws or polls
// input; the presentation layer feeds events in and reads state out.
package physics

import "time"

// Tuning is fixed; levels cannot override it.
const (
	TileSize = 32.0
	Timestep = 10 * time.Millisecond

	Gravity   = -0.3
	WalkSpeed = 3.0
	JumpSpeed = 10.0

	PlayerWidth  = 32.0
	PlayerHeight = 32.0

	ProjectileSize  = 8.0
	ProjectileSpeed = 8.0
)

// DefaultSpawnX and DefaultSpawnY place the player when a level has no spawn.
const (
	DefaultSpawnX = 64.0
	DefaultSpawnY = 96.0
)

// TagSolid marks the resolv objects standing for solid tiles.
const TagSolid = "solid"
