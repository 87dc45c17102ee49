package components

import (
	"time"

	"github.com/yohamta/donburi"

	"github.com/bitwiserain/springshot/shared/physics"
)

// SimulationData owns the physics world of the running level.
type SimulationData struct {
	World     *physics.World
	Level     physics.Level // kept so the level can be restarted
	LevelName string

	LastFrame  time.Time // zero until the first unpaused frame
	FrameTicks int       // ticks run during the latest frame

	// What the world has been told is held. Compared against the input
	// each frame so releases made while paused are not lost.
	Controls physics.Controls
}

var Simulation = donburi.NewComponentType[SimulationData]()
