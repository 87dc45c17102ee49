package main

import (
	"flag"
	"image"
	"log"

	"github.com/bitwiserain/springshot/config"
	"github.com/bitwiserain/springshot/fonts"
	"github.com/bitwiserain/springshot/scenes"
	"github.com/bitwiserain/springshot/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(Scene)
}

// NewGame starts at the level select menu, or straight in the named level.
func NewGame(level string) *Game {
	g := &Game{
		bounds: image.Rectangle{},
	}

	if level != "" {
		g.scene = scenes.NewPlatformerScene(g, level)
	} else {
		g.scene = scenes.NewMenuScene(g)
	}

	return g
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	level := flag.String("level", "", "start directly in this bundled level (e.g. "+config.C.DefaultLevel+")")
	debug := flag.Bool("debug", false, "show the collision debug overlay")
	scale := flag.Int("scale", -1, "window scale index (0-based)")
	printTicks := flag.Bool("print-ticks", false, "log the player state after every frame that ticked")
	flag.Parse()

	if err := fonts.LoadDefaults(config.UI.HUDFontSize, config.UI.DebugFontSize); err != nil {
		log.Fatalf("Failed to load fonts: %v", err)
	}

	ebiten.SetWindowTitle(config.C.Title)
	systems.ApplyWindowScale(config.Settings.DefaultScaleIndex)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)

	// Initialize persistence and load saved settings
	if err := systems.InitPersistence(); err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
	}
	if saved, err := systems.LoadSettings(); err == nil && saved != nil {
		systems.ApplySavedSettingsGlobal(saved)
	}

	// Command-line flags win over saved settings
	if *debug {
		config.Debug.Overlay = true
	}
	if *scale >= 0 {
		systems.ApplyWindowScale(*scale)
	}
	config.Debug.PrintTick = *printTicks

	if err := ebiten.RunGame(NewGame(*level)); err != nil {
		log.Fatal(err)
	}
}
