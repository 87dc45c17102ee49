package config

import "image/color"

// Config holds general game configuration
type Config struct {
	Width  int
	Height int
	Title  string

	// Level loaded when none is given on the command line
	DefaultLevel string
}

// CameraConfig contains camera behavior configuration
type CameraConfig struct {
	FollowSmoothing float64 // How fast camera follows player (0.0-1.0)
	SnapDistance    float64 // Below this distance the camera snaps to its target
}

// AimConfig contains the aim preview drawn while the fire button is held
type AimConfig struct {
	PreviewSteps int     // Simulation ticks sampled for the trajectory preview
	DotEvery     int     // Draw one dot per this many samples
	DotRadius    float32 // Radius of each preview dot
	LineWidth    float32 // Width of the line from player to aim point
	Color        color.RGBA
}

// SquashStretchConfig contains squash/stretch effect configuration
type SquashStretchConfig struct {
	JumpScaleX float64 // horizontal scale on jump (< 1 = narrower)
	JumpScaleY float64 // vertical scale on jump (> 1 = taller)
	LandScaleX float64 // horizontal scale on land (> 1 = wider)
	LandScaleY float64 // vertical scale on land (< 1 = shorter)
	Duration   float32 // seconds to return to normal scale
}

// ColorConfig contains the palette used by the renderers
type ColorConfig struct {
	Background  color.RGBA
	Tile        color.RGBA
	TileEdge    color.RGBA
	Player      color.RGBA
	PlayerFace  color.RGBA
	Projectile  color.RGBA
	WorldBorder color.RGBA
}

// UIConfig contains HUD and debug overlay values
type UIConfig struct {
	HUDMargin     float64
	HUDTextColor  color.RGBA
	HUDFontSize   float64
	DebugFontSize float64

	// Debug overlay colors
	DebugTileColor    color.RGBA
	DebugBodyColor    color.RGBA
	DebugContactColor color.RGBA
}

// PauseConfig contains pause menu configuration values
type PauseConfig struct {
	OverlayColor      color.RGBA
	PanelColor        color.RGBA
	TextColorNormal   color.RGBA
	TextColorSelected color.RGBA
	ButtonWidth       int
	ButtonHeight      int
	MenuItemGap       int
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	Overlay   bool // Draw collision tiles, bodies and tick counters
	PrintTick bool // Log player state every simulation tick
}

// Global configuration instances
var (
	C             *Config
	Camera        CameraConfig
	Aim           AimConfig
	SquashStretch SquashStretchConfig
	Colors        ColorConfig
	UI            UIConfig
	Pause         PauseConfig
	Debug         DebugConfig
)

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	BrightOrange = color.RGBA{R: 255, G: 180, B: 50, A: 255}
	Red          = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	Firebrick    = color.RGBA{R: 178, G: 34, B: 34, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
	LightBlue    = color.RGBA{R: 100, G: 180, B: 255, A: 255}
	DarkBlue     = color.RGBA{R: 60, G: 100, B: 160, A: 255}
	Slate        = color.RGBA{R: 24, G: 28, B: 40, A: 255}
)

func init() {
	C = &Config{
		Width:        640,
		Height:       360,
		Title:        "springshot",
		DefaultLevel: "level1",
	}

	Camera = CameraConfig{
		FollowSmoothing: 0.1,
		SnapDistance:    0.5,
	}

	Aim = AimConfig{
		PreviewSteps: 90,
		DotEvery:     3,
		DotRadius:    1.5,
		LineWidth:    1,
		Color:        Firebrick,
	}

	SquashStretch = SquashStretchConfig{
		JumpScaleX: 0.7,
		JumpScaleY: 1.4,
		LandScaleX: 1.4,
		LandScaleY: 0.65,
		Duration:   0.18,
	}

	Colors = ColorConfig{
		Background:  Slate,
		Tile:        color.RGBA{R: 86, G: 98, B: 122, A: 255},
		TileEdge:    color.RGBA{R: 120, G: 134, B: 160, A: 255},
		Player:      LightBlue,
		PlayerFace:  White,
		Projectile:  BrightOrange,
		WorldBorder: DarkBlue,
	}

	UI = UIConfig{
		HUDMargin:         8,
		HUDTextColor:      White,
		HUDFontSize:       12,
		DebugFontSize:     10,
		DebugTileColor:    color.RGBA{R: 255, G: 0, B: 255, A: 90},
		DebugBodyColor:    color.RGBA{R: 0, G: 255, B: 0, A: 120},
		DebugContactColor: Red,
	}

	Pause = PauseConfig{
		OverlayColor:      BlackOverlay,
		PanelColor:        color.RGBA{R: 20, G: 24, B: 36, A: 230},
		TextColorNormal:   White,
		TextColorSelected: BrightOrange,
		ButtonWidth:       180,
		ButtonHeight:      30,
		MenuItemGap:       12,
	}

	// Debug Config (defaults, can be overridden by CLI flags)
	Debug = DebugConfig{
		Overlay:   false,
		PrintTick: false,
	}
}
