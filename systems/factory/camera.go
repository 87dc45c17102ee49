package factory

import (
	"github.com/bitwiserain/springshot/archetypes"
	"github.com/bitwiserain/springshot/components"
	"github.com/bitwiserain/springshot/shared/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// CreateCamera spawns the camera centred on the given world point.
func CreateCamera(ecs *ecs.ECS, center gamemath.Vec) *donburi.Entry {
	camera := archetypes.Camera.Spawn(ecs)
	components.Camera.Set(camera, &components.CameraData{
		Position: math.Vec2{X: center.X, Y: center.Y},
	})
	return camera
}
