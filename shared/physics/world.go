package physics

import (
	"fmt"
	"time"

	"github.com/bitwiserain/springshot/shared/gamemath"
	"github.com/bitwiserain/springshot/shared/leveldata"
)

// Level is the static geometry a World is built from.
type Level struct {
	Cols, Rows int
	Solids     []gamemath.Rect
	Spawn      gamemath.Vec
}

// LevelFromData converts parsed map data. The map's tile edge must match
// TileSize.
func LevelFromData(data *leveldata.CollisionData) (Level, error) {
	if float64(data.TileWidth) != TileSize || float64(data.TileHeight) != TileSize {
		return Level{}, fmt.Errorf("tile size %dx%d, want %vx%v", data.TileWidth, data.TileHeight, TileSize, TileSize)
	}
	lvl := Level{
		Cols:  data.Cols,
		Rows:  data.Rows,
		Spawn: gamemath.V(DefaultSpawnX, DefaultSpawnY),
	}
	for _, r := range data.SolidRects {
		lvl.Solids = append(lvl.Solids, gamemath.R(r.X, r.Y, r.W, r.H))
	}
	if sp, ok := data.Spawn(); ok {
		lvl.Spawn = gamemath.V(sp.X, sp.Y)
	}
	return lvl, nil
}

// World owns the whole simulation state. It is not safe for concurrent use;
// input events and Advance must come from the same goroutine.
type World struct {
	Player      *Player
	Projectiles Projectiles

	index  *Index
	bounds gamemath.Rect
	driver *Driver
	aim    gamemath.Vec
	last   Resolution
}

func NewWorld(lvl Level) *World {
	w := &World{
		Player: NewPlayer(lvl.Spawn),
		index:  NewIndex(lvl.Cols, lvl.Rows, lvl.Solids),
	}
	w.bounds = w.index.Bounds()
	w.driver = NewDriver(Timestep, w.Tick)
	return w
}

// Tick runs one simulation step: walking drive, gravity, collision, state
// commit, then projectiles.
func (w *World) Tick() {
	p := w.Player
	p.PreStep()
	p.Velocity.Y += Gravity
	w.last = Resolve(&p.Body, w.index, w.bounds)
	p.commit(w.last)
	w.Projectiles.Update(w.bounds)
}

// Advance feeds frame time to the fixed-timestep driver and returns the
// number of ticks run.
func (w *World) Advance(elapsed time.Duration) int {
	return w.driver.Advance(elapsed)
}

func (w *World) PressLeft()    { w.Player.PressLeft() }
func (w *World) PressRight()   { w.Player.PressRight() }
func (w *World) ReleaseLeft()  { w.Player.ReleaseLeft() }
func (w *World) ReleaseRight() { w.Player.ReleaseRight() }
func (w *World) Jump() bool    { return w.Player.Jump() }

// SetAim records the point the next Fire aims at.
func (w *World) SetAim(target gamemath.Vec) { w.aim = target }

func (w *World) Aim() gamemath.Vec { return w.aim }

// Fire launches a projectile from the player's centre toward the aim point.
func (w *World) Fire() { w.FireAt(w.aim) }

func (w *World) FireAt(target gamemath.Vec) {
	w.Projectiles.Fire(w.Player.Center(), target)
}

// AimPreview samples the path the next projectile would take.
func (w *World) AimPreview(steps int) []gamemath.Vec {
	return PredictTrajectory(w.Player.Center(), w.aim, steps, w.bounds)
}

// CameraTarget returns the view centre that follows the player without
// showing anything outside the world.
func (w *World) CameraTarget(viewW, viewH float64) gamemath.Vec {
	return gamemath.FollowTarget(w.Player.Center(), viewW, viewH, w.bounds)
}

func (w *World) Bounds() gamemath.Rect { return w.bounds }
func (w *World) Index() *Index         { return w.index }
func (w *World) Driver() *Driver       { return w.driver }

// LastResolution returns the player's resolver result from the latest tick.
func (w *World) LastResolution() Resolution { return w.last }
