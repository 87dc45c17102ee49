package systems

import (
	"math"

	"github.com/bitwiserain/springshot/components"
	"github.com/bitwiserain/springshot/config"
	"github.com/bitwiserain/springshot/shared/gamemath"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCamera eases the camera toward the world's follow target.
func UpdateCamera(e *ecs.ECS) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)

	sim := GetSimulation(e)
	if sim == nil || sim.World == nil {
		return
	}

	target := sim.World.CameraTarget(float64(config.C.Width), float64(config.C.Height))

	// Center the camera on the target position, with some smoothing.
	camera.Position.X += (target.X - camera.Position.X) * config.Camera.FollowSmoothing
	camera.Position.Y += (target.Y - camera.Position.Y) * config.Camera.FollowSmoothing

	if math.Abs(target.X-camera.Position.X) < config.Camera.SnapDistance {
		camera.Position.X = target.X
	}
	if math.Abs(target.Y-camera.Position.Y) < config.Camera.SnapDistance {
		camera.Position.Y = target.Y
	}
}

// SnapCamera moves the camera straight to its target, skipping the easing.
func SnapCamera(e *ecs.ECS) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	sim := GetSimulation(e)
	if sim == nil || sim.World == nil {
		return
	}
	target := sim.World.CameraTarget(float64(config.C.Width), float64(config.C.Height))
	camera := components.Camera.Get(cameraEntry)
	camera.Position.X = target.X
	camera.Position.Y = target.Y
}

// GetViewport returns the current world-to-screen mapping.
func GetViewport(e *ecs.ECS) (gamemath.Viewport, bool) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return gamemath.Viewport{}, false
	}
	camera := components.Camera.Get(cameraEntry)
	return gamemath.Viewport{
		Center: gamemath.V(camera.Position.X, camera.Position.Y),
		W:      float64(config.C.Width),
		H:      float64(config.C.Height),
	}, true
}
