package ui

import (
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"

	cfg "github.com/bitwiserain/springshot/config"
)

// LevelSelect lists the bundled levels.
type LevelSelect struct {
	UI *ebitenui.UI

	OnSelect func(name string)
	OnQuit   func()

	faces faces
}

func NewLevelSelect(levels []string, onSelect func(name string), onQuit func()) *LevelSelect {
	ls := &LevelSelect{
		OnSelect: onSelect,
		OnQuit:   onQuit,
	}
	ls.faces = loadFaces()
	ls.buildUI(levels)
	return ls
}

func (ls *LevelSelect) buildUI(levels []string) {
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(cfg.Colors.Background)),
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	column := centeredColumn(nil)
	column.AddChild(newLabel(cfg.C.Title, &ls.faces.title, cfg.Pause.TextColorSelected))

	if len(levels) == 0 {
		column.AddChild(newLabel("No levels found", &ls.faces.normal, cfg.Pause.TextColorNormal))
	}
	for _, name := range levels {
		column.AddChild(newMenuButton(name, &ls.faces.normal, func() {
			if ls.OnSelect != nil {
				ls.OnSelect(name)
			}
		}))
	}
	column.AddChild(newMenuButton("Quit", &ls.faces.normal, ls.OnQuit))

	rootContainer.AddChild(column)
	ls.UI = &ebitenui.UI{Container: rootContainer}
}

func (ls *LevelSelect) Update() {
	ls.UI.Update()
}

func (ls *LevelSelect) Draw(screen *ebiten.Image) {
	ls.UI.Draw(screen)
}
