package scenes

import (
	"log"
	"os"
	"sync"

	cfg "github.com/bitwiserain/springshot/config"
	"github.com/bitwiserain/springshot/systems"
	"github.com/bitwiserain/springshot/systems/factory"
	"github.com/bitwiserain/springshot/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// PlatformerScene runs one level.
type PlatformerScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	levelName    string
	pauseMenu    *ui.PauseMenu
	once         sync.Once

	// Set by menu callbacks, acted on after the ECS update
	backToMenu bool
}

// NewPlatformerScene creates a scene for the named bundled level
func NewPlatformerScene(sc SceneChanger, levelName string) *PlatformerScene {
	return &PlatformerScene{sceneChanger: sc, levelName: levelName}
}

func (ps *PlatformerScene) Update() {
	ps.once.Do(ps.configure)
	if ps.ecs == nil {
		ps.sceneChanger.ChangeScene(NewMenuScene(ps.sceneChanger))
		return
	}

	ps.ecs.Update()

	if systems.IsPaused(ps.ecs) {
		settings := systems.GetOrCreateSettings(ps.ecs)
		ps.pauseMenu.SetStatus(settings.Debug, systems.WindowScaleLabel(ps.ecs))
		ps.pauseMenu.Update()
	}

	if ps.backToMenu {
		ps.sceneChanger.ChangeScene(NewMenuScene(ps.sceneChanger))
	}
}

func (ps *PlatformerScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(cfg.Colors.Background)

	if ps.ecs == nil {
		return
	}
	ps.ecs.Draw(screen)

	if systems.IsPaused(ps.ecs) {
		ps.pauseMenu.Draw(screen)
	}
}

func (ps *PlatformerScene) configure() {
	e := ecs.NewECS(donburi.NewWorld())

	if _, err := factory.CreateLevel(e, ps.levelName); err != nil {
		log.Printf("Warning: %v", err)
		return
	}
	factory.CreatePlayer(e)
	factory.CreateInput(e)
	factory.CreatePause(e)
	factory.CreateSettings(e, systems.StartupSettings())

	// Systems that always run
	e.AddSystem(systems.UpdateInput)
	e.AddSystem(systems.UpdatePause)
	e.AddSystem(systems.UpdateSettings)

	// Game systems wrapped with pause checks
	e.AddSystem(systems.WithGameplayChecks(systems.UpdateSimulation))
	e.AddSystem(systems.WithGameplayChecks(systems.UpdateSquashStretch))
	e.AddSystem(systems.WithGameplayChecks(systems.UpdateCamera))

	// Renderers, back to front
	e.AddRenderer(cfg.Default, systems.DrawLevel)
	e.AddRenderer(cfg.Default, systems.DrawProjectiles)
	e.AddRenderer(cfg.Default, systems.DrawPlayer)
	e.AddRenderer(cfg.Default, systems.DrawAim)
	e.AddRenderer(cfg.Default, systems.DrawHUD)
	e.AddRenderer(cfg.Default, systems.DrawDebug)
	e.AddRenderer(cfg.Default, systems.DrawPauseOverlay)

	sim := systems.GetSimulation(e)
	factory.CreateCamera(e, sim.World.CameraTarget(float64(cfg.C.Width), float64(cfg.C.Height)))

	ps.pauseMenu = ui.NewPauseMenu(ui.PauseActions{
		OnResume:      func() { systems.SetPaused(e, false) },
		OnRestart:     func() { systems.RestartLevel(e); systems.SetPaused(e, false) },
		OnToggleDebug: func() { systems.ToggleDebug(e) },
		OnWindowScale: func() { systems.CycleWindowScale(e) },
		OnLevelSelect: func() { ps.backToMenu = true },
		OnQuit:        func() { os.Exit(0) },
	})

	ps.ecs = e
}
