package systems

import (
	"log"
	"time"

	"github.com/bitwiserain/springshot/components"
	cfg "github.com/bitwiserain/springshot/config"
	"github.com/bitwiserain/springshot/shared/gamemath"
	"github.com/bitwiserain/springshot/shared/physics"
	"github.com/bitwiserain/springshot/tags"
	"github.com/yohamta/donburi/ecs"
)

// UpdateSimulation turns this frame's input into world events and advances
// the fixed-timestep driver by the wall-clock time since the last frame.
// Must run AFTER UpdateInput.
func UpdateSimulation(e *ecs.ECS) {
	sim := GetSimulation(e)
	if sim == nil || sim.World == nil {
		return
	}
	w := sim.World
	input := getOrCreateInput(e)

	state := physics.ControlState{
		Left:  GetAction(input, cfg.ActionMoveLeft).Pressed,
		Right: GetAction(input, cfg.ActionMoveRight).Pressed,
		Jump:  GetAction(input, cfg.ActionJump).JustPressed,
		Fire:  GetAction(input, cfg.ActionFire).Pressed,
	}
	if state.Fire {
		state.Target = aimTarget(e, w, input)
	}
	sim.Controls.Apply(w, state)
	syncAim(e, sim)

	now := time.Now()
	var elapsed time.Duration
	if !sim.LastFrame.IsZero() {
		elapsed = now.Sub(sim.LastFrame)
	}
	sim.LastFrame = now
	sim.FrameTicks = w.Advance(elapsed)

	if cfg.Debug.PrintTick && sim.FrameTicks > 0 {
		p := w.Player
		log.Printf("tick %d pos=(%.2f, %.2f) vel=(%.2f, %.2f) %s %s facing=%s projectiles=%d",
			w.Driver().Ticks(), p.Position.X, p.Position.Y, p.Velocity.X, p.Velocity.Y,
			p.Horizontal, p.Vertical, p.Facing, w.Projectiles.Len())
	}
}

// syncAim copies the aiming state onto the player for rendering.
func syncAim(e *ecs.ECS, sim *components.SimulationData) {
	playerEntry, ok := tags.Player.First(e.World)
	if !ok {
		return
	}
	aim := components.Aim.Get(playerEntry)
	if !sim.Controls.Aiming() {
		*aim = components.AimData{}
		return
	}
	aim.Aiming = true
	aim.Target = sim.Controls.Target()
	aim.Preview = sim.World.AimPreview(cfg.Aim.PreviewSteps)
}

// aimTarget returns the world point under the cursor, or the point the right
// stick is tilted toward when a gamepad was used last.
func aimTarget(e *ecs.ECS, w *physics.World, input *components.InputData) gamemath.Vec {
	center := w.Player.Center()
	if input.LastInputMethod == components.InputGamepad {
		stick := gamemath.V(input.StickX, input.StickY)
		if stick.Len() == 0 {
			stick = gamemath.V(w.Player.Facing.Sign(), 0)
		}
		return center.Add(stick.Scale(cfg.Input.StickAimReach))
	}

	view, ok := GetViewport(e)
	if !ok {
		return center
	}
	return view.ToWorld(float64(input.CursorX), float64(input.CursorY))
}

// GetSimulation returns the running level's simulation, or nil before the
// level is created.
func GetSimulation(e *ecs.ECS) *components.SimulationData {
	entry, ok := components.Simulation.First(e.World)
	if !ok {
		return nil
	}
	return components.Simulation.Get(entry)
}

// ResetClock forgets the last frame time so the next frame advances by zero.
// Called when leaving pause so paused time never reaches the driver.
func ResetClock(e *ecs.ECS) {
	if sim := GetSimulation(e); sim != nil {
		sim.LastFrame = time.Time{}
	}
}

// RestartLevel rebuilds the world from the loaded level data.
func RestartLevel(e *ecs.ECS) {
	sim := GetSimulation(e)
	if sim == nil {
		return
	}
	sim.World = physics.NewWorld(sim.Level)
	sim.LastFrame = time.Time{}
	sim.FrameTicks = 0
	sim.Controls.Reset()

	if playerEntry, ok := tags.Player.First(e.World); ok {
		*components.Aim.Get(playerEntry) = components.AimData{}
	}
	SnapCamera(e)
	log.Printf("Restarted level: %s", sim.LevelName)
}
