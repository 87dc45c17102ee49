package config

// WindowScale is a window size option, as a multiple of the logical screen
type WindowScale struct {
	Factor int
	Label  string
}

// SettingsConfig contains the user-adjustable settings and their defaults
type SettingsConfig struct {
	WindowScales       []WindowScale
	DefaultScaleIndex  int
	PersistenceAppName string
}

// Settings is the global settings configuration
var Settings SettingsConfig

func init() {
	Settings = SettingsConfig{
		WindowScales: []WindowScale{
			{Factor: 1, Label: "640 x 360"},
			{Factor: 2, Label: "1280 x 720"},
			{Factor: 3, Label: "1920 x 1080"},
		},
		DefaultScaleIndex:  1,
		PersistenceAppName: "springshot",
	}
}
