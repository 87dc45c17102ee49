package ui

import (
	"fmt"

	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"

	cfg "github.com/bitwiserain/springshot/config"
)

// PauseActions are the callbacks behind the pause menu buttons.
type PauseActions struct {
	OnResume      func()
	OnRestart     func()
	OnToggleDebug func()
	OnWindowScale func()
	OnLevelSelect func()
	OnQuit        func()
}

// PauseMenu is the panel shown over a paused level.
type PauseMenu struct {
	UI *ebitenui.UI

	actions     PauseActions
	statusLabel *widget.Label
	faces       faces
}

func NewPauseMenu(actions PauseActions) *PauseMenu {
	m := &PauseMenu{actions: actions}
	m.faces = loadFaces()
	m.buildUI()
	return m
}

func (m *PauseMenu) buildUI() {
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	panel := centeredColumn(cfg.Pause.PanelColor)
	panel.AddChild(newLabel("PAUSED", &m.faces.title, cfg.Pause.TextColorNormal))

	buttons := []struct {
		label string
		click func()
	}{
		{"Resume", m.actions.OnResume},
		{"Restart", m.actions.OnRestart},
		{"Debug Overlay", m.actions.OnToggleDebug},
		{"Window Size", m.actions.OnWindowScale},
		{"Level Select", m.actions.OnLevelSelect},
		{"Quit", m.actions.OnQuit},
	}
	for _, b := range buttons {
		panel.AddChild(newMenuButton(b.label, &m.faces.normal, b.click))
	}

	m.statusLabel = newLabel("", &m.faces.small, cfg.Pause.TextColorNormal)
	panel.AddChild(m.statusLabel)

	rootContainer.AddChild(panel)
	m.UI = &ebitenui.UI{Container: rootContainer}
}

// SetStatus shows the current settings under the buttons.
func (m *PauseMenu) SetStatus(debug bool, windowLabel string) {
	state := "Off"
	if debug {
		state = "On"
	}
	m.statusLabel.Label = fmt.Sprintf("Debug: %s   Window: %s", state, windowLabel)
}

func (m *PauseMenu) Update() {
	m.UI.Update()
}

func (m *PauseMenu) Draw(screen *ebiten.Image) {
	m.UI.Draw(screen)
}
