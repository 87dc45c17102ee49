package factory

import (
	"github.com/bitwiserain/springshot/archetypes"
	"github.com/bitwiserain/springshot/components"
	"github.com/bitwiserain/springshot/shared/physics"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreatePlayer spawns the view-side player entity. The body itself lives in
// the simulation; this entity only carries presentation state.
func CreatePlayer(ecs *ecs.ECS) *donburi.Entry {
	player := archetypes.Player.Spawn(ecs)
	components.SquashStretch.SetValue(player, components.SquashStretchData{
		ScaleX:       1,
		ScaleY:       1,
		LastVertical: physics.Airborne,
	})
	components.Aim.SetValue(player, components.AimData{})
	return player
}
