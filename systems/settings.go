package systems

import (
	"github.com/bitwiserain/springshot/components"
	cfg "github.com/bitwiserain/springshot/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// Settings carried from one scene to the next
var globalSettings = components.SettingsData{
	ScaleIndex: cfg.Settings.DefaultScaleIndex,
}

// UpdateSettings handles the settings hotkeys that work outside the menu.
func UpdateSettings(e *ecs.ECS) {
	input := getOrCreateInput(e)
	if GetAction(input, cfg.ActionToggleDebug).JustPressed {
		ToggleDebug(e)
	}
}

// ToggleDebug flips the debug overlay and saves the choice.
func ToggleDebug(e *ecs.ECS) {
	s := GetOrCreateSettings(e)
	s.Debug = !s.Debug
	globalSettings = *s
	SaveCurrentSettings(s)
}

// CycleWindowScale switches to the next window size and saves the choice.
func CycleWindowScale(e *ecs.ECS) {
	s := GetOrCreateSettings(e)
	s.ScaleIndex = (s.ScaleIndex + 1) % len(cfg.Settings.WindowScales)
	ApplyWindowScale(s.ScaleIndex)
	globalSettings = *s
	SaveCurrentSettings(s)
}

// ApplyWindowScale resizes the window to one of the configured scales.
// Out-of-range indexes are ignored.
func ApplyWindowScale(index int) {
	if index < 0 || index >= len(cfg.Settings.WindowScales) {
		return
	}
	f := cfg.Settings.WindowScales[index].Factor
	ebiten.SetWindowSize(cfg.C.Width*f, cfg.C.Height*f)
	globalSettings.ScaleIndex = index
}

// StartupSettings returns the settings a new scene starts with. The
// -debug flag forces the overlay on.
func StartupSettings() components.SettingsData {
	s := globalSettings
	s.Debug = s.Debug || cfg.Debug.Overlay
	return s
}

// WindowScaleLabel returns the label of the current window scale.
func WindowScaleLabel(e *ecs.ECS) string {
	s := GetOrCreateSettings(e)
	if s.ScaleIndex < 0 || s.ScaleIndex >= len(cfg.Settings.WindowScales) {
		return ""
	}
	return cfg.Settings.WindowScales[s.ScaleIndex].Label
}

// GetOrCreateSettings returns the singleton Settings component, creating it
// from the global settings if needed.
func GetOrCreateSettings(e *ecs.ECS) *components.SettingsData {
	if _, ok := components.Settings.First(e.World); !ok {
		ent := e.World.Entry(e.World.Create(components.Settings))
		components.Settings.SetValue(ent, globalSettings)
	}

	ent, _ := components.Settings.First(e.World)
	return components.Settings.Get(ent)
}
