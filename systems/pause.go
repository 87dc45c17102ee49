package systems

import (
	"github.com/bitwiserain/springshot/components"
	cfg "github.com/bitwiserain/springshot/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePause toggles pause on the pause action.
// This system should run AFTER UpdateInput but BEFORE other game systems.
func UpdatePause(e *ecs.ECS) {
	input := getOrCreateInput(e)
	if GetAction(input, cfg.ActionPause).JustPressed {
		SetPaused(e, !IsPaused(e))
	}
}

// SetPaused enters or leaves pause. The simulation clock restarts on both
// edges so paused time is never simulated.
func SetPaused(e *ecs.ECS, paused bool) {
	pause := GetOrCreatePause(e)
	if pause.IsPaused == paused {
		return
	}
	pause.IsPaused = paused
	ResetClock(e)
}

// IsPaused reports whether the scene is paused.
func IsPaused(e *ecs.ECS) bool {
	return GetOrCreatePause(e).IsPaused
}

// DrawPauseOverlay dims the scene while paused. The menu itself is drawn by
// the scene on top.
func DrawPauseOverlay(e *ecs.ECS, screen *ebiten.Image) {
	if !IsPaused(e) {
		return
	}
	vector.FillRect(
		screen,
		0, 0,
		float32(screen.Bounds().Dx()), float32(screen.Bounds().Dy()),
		cfg.Pause.OverlayColor,
		false,
	)
}

// WithPauseCheck wraps a system to skip execution when paused.
func WithPauseCheck(system ecs.System) ecs.System {
	return func(e *ecs.ECS) {
		if pause := GetOrCreatePause(e); pause.IsPaused {
			return
		}
		system(e)
	}
}

// WithGameplayChecks wraps a system to skip execution when paused.
// This is an alias for WithPauseCheck for semantic clarity.
func WithGameplayChecks(system ecs.System) ecs.System {
	return WithPauseCheck(system)
}

// GetOrCreatePause returns the singleton Pause component, creating if needed.
func GetOrCreatePause(e *ecs.ECS) *components.PauseData {
	if _, ok := components.Pause.First(e.World); !ok {
		ent := e.World.Entry(e.World.Create(components.Pause))
		components.Pause.SetValue(ent, components.PauseData{IsPaused: false})
	}

	ent, _ := components.Pause.First(e.World)
	return components.Pause.Get(ent)
}
