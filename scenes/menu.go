package scenes

import (
	"log"
	"os"
	"sync"

	"github.com/bitwiserain/springshot/assets"
	cfg "github.com/bitwiserain/springshot/config"
	"github.com/bitwiserain/springshot/ui"
	"github.com/hajimehoshi/ebiten/v2"
)

// SceneChanger allows scenes to trigger transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
}

// MenuScene lists the bundled levels
type MenuScene struct {
	sceneChanger SceneChanger
	levelSelect  *ui.LevelSelect
	once         sync.Once

	selected string
}

// NewMenuScene creates a new menu scene
func NewMenuScene(sc SceneChanger) *MenuScene {
	return &MenuScene{sceneChanger: sc}
}

func (ms *MenuScene) Update() {
	ms.once.Do(ms.configure)
	ms.levelSelect.Update()

	if ms.selected != "" {
		ms.sceneChanger.ChangeScene(NewPlatformerScene(ms.sceneChanger, ms.selected))
	}
}

func (ms *MenuScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(cfg.Colors.Background)

	if ms.levelSelect == nil {
		return
	}
	ms.levelSelect.Draw(screen)
}

func (ms *MenuScene) configure() {
	names, err := assets.LevelNames()
	if err != nil {
		log.Printf("Warning: Could not list levels: %v", err)
	}
	ms.levelSelect = ui.NewLevelSelect(
		names,
		func(name string) { ms.selected = name },
		func() { os.Exit(0) },
	)
}
