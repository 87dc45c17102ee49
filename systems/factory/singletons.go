package factory

import (
	"github.com/bitwiserain/springshot/archetypes"
	"github.com/bitwiserain/springshot/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateInput spawns the input singleton.
func CreateInput(ecs *ecs.ECS) *donburi.Entry {
	return archetypes.Input.Spawn(ecs)
}

// CreateSettings spawns the settings singleton with the given values.
func CreateSettings(ecs *ecs.ECS, s components.SettingsData) *donburi.Entry {
	settings := archetypes.Settings.Spawn(ecs)
	components.Settings.SetValue(settings, s)
	return settings
}

func CreatePause(ecs *ecs.ECS) *donburi.Entry {
	return archetypes.Pause.Spawn(ecs)
}
