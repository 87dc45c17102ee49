// Package leveldata parses TMX levels into plain collision geometry for the
// simulation core. It has no dependencies on ebitengine, donburi, or resolv.
//
// Tiled stores objects y-down from the top-left of the map. Everything in
// CollisionData is converted to the y-up, bottom-left convention the core uses.
package leveldata

import "errors"

// Object group names read from a TMX level.
const (
	CollisionGroup = "collision"
	SpawnGroup     = "PlayerSpawn"
)

// ErrNoCollisionLayer is returned when a level has no collision object group.
var ErrNoCollisionLayer = errors.New("missing \"" + CollisionGroup + "\" object group")

// CollisionData holds all collision-relevant data parsed from a TMX level file.
type CollisionData struct {
	SolidRects  []SolidRect
	SpawnPoints []SpawnPoint

	// Grid size in tiles and the edge of one tile in pixels.
	Cols, Rows            int
	TileWidth, TileHeight int

	MapWidth  int
	MapHeight int
}

// SolidRect is one rectangle from the collision object group.
type SolidRect struct {
	X, Y, W, H float64
}

// SpawnPoint represents a player spawn location (bottom-left of the body).
type SpawnPoint struct {
	X, Y  float64
	Index int
}

// Spawn returns the lowest-index spawn point, or ok=false when the level
// declares none.
func (d *CollisionData) Spawn() (sp SpawnPoint, ok bool) {
	for i, p := range d.SpawnPoints {
		if i == 0 || p.Index < sp.Index {
			sp = p
		}
	}
	return sp, len(d.SpawnPoints) > 0
}
