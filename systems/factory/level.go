package factory

import (
	"fmt"
	"log"

	"github.com/bitwiserain/springshot/archetypes"
	"github.com/bitwiserain/springshot/assets"
	"github.com/bitwiserain/springshot/components"
	"github.com/bitwiserain/springshot/shared/physics"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateLevel loads a bundled level by name and spawns the entity that owns
// its simulation.
func CreateLevel(ecs *ecs.ECS, name string) (*donburi.Entry, error) {
	lvl, err := assets.LoadLevel(name)
	if err != nil {
		return nil, fmt.Errorf("create level %q: %w", name, err)
	}
	return CreateLevelFrom(ecs, name, lvl), nil
}

// CreateLevelFrom spawns a simulation for already loaded level data.
func CreateLevelFrom(ecs *ecs.ECS, name string, lvl physics.Level) *donburi.Entry {
	level := archetypes.Level.Spawn(ecs)
	components.Simulation.SetValue(level, components.SimulationData{
		World:     physics.NewWorld(lvl),
		Level:     lvl,
		LevelName: name,
	})
	log.Printf("Level %s: %dx%d tiles, spawn (%.0f, %.0f)", name, lvl.Cols, lvl.Rows, lvl.Spawn.X, lvl.Spawn.Y)
	return level
}
