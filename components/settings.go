package components

import "github.com/yohamta/donburi"

// SettingsData holds the user settings that persist between runs.
type SettingsData struct {
	Debug      bool
	ScaleIndex int
}

var Settings = donburi.NewComponentType[SettingsData]()
