package physics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitwiserain/springshot/shared/gamemath"
	"github.com/bitwiserain/springshot/shared/leveldata"
)

func flatLevel() Level {
	return Level{
		Cols:   20,
		Rows:   8,
		Solids: []gamemath.Rect{gamemath.R(0, 0, 640, 32)},
		Spawn:  gamemath.V(DefaultSpawnX, DefaultSpawnY),
	}
}

func settle(w *World) {
	for range 100 {
		w.Tick()
	}
}

func TestWorldFallsAndLands(t *testing.T) {
	w := NewWorld(flatLevel())
	require.Equal(t, Airborne, w.Player.Vertical)

	settle(w)

	assert.Equal(t, gamemath.V(64, 32), w.Player.Position)
	assert.Equal(t, Grounded, w.Player.Vertical)
	assert.Equal(t, 0.0, w.Player.Velocity.Y)
}

func TestWorldStaysGrounded(t *testing.T) {
	w := NewWorld(flatLevel())
	settle(w)

	for range 10 {
		w.Tick()
		require.Equal(t, Grounded, w.Player.Vertical)
		require.Equal(t, 32.0, w.Player.Position.Y)
	}
}

func TestWorldWalk(t *testing.T) {
	w := NewWorld(flatLevel())
	settle(w)

	w.PressRight()
	for range 10 {
		w.Tick()
	}
	assert.Equal(t, 94.0, w.Player.Position.X)
	assert.Equal(t, Grounded, w.Player.Vertical)

	w.PressLeft()
	w.Tick()
	assert.Equal(t, 94.0, w.Player.Position.X)

	w.ReleaseRight()
	w.Tick()
	assert.Equal(t, 91.0, w.Player.Position.X)
}

func TestWorldJumpArc(t *testing.T) {
	w := NewWorld(flatLevel())
	settle(w)

	require.True(t, w.Jump())
	w.Tick()
	assert.Equal(t, Airborne, w.Player.Vertical)
	assert.False(t, w.Jump(), "no double jump")

	peak := w.Player.Position.Y
	for w.Player.Vertical == Airborne {
		w.Tick()
		peak = max(peak, w.Player.Position.Y)
	}
	assert.Equal(t, 32.0, w.Player.Position.Y)
	assert.Greater(t, peak, 32.0+4*TileSize/2)
}

func TestWorldAdvance(t *testing.T) {
	w := NewWorld(flatLevel())

	assert.Equal(t, 1, w.Advance(16*time.Millisecond))
	assert.Equal(t, 2, w.Advance(16*time.Millisecond))
	assert.Equal(t, uint64(3), w.Driver().Ticks())
	assert.Equal(t, 2*time.Millisecond, w.Driver().Accumulated())
	assert.Less(t, w.Player.Position.Y, DefaultSpawnY)
}

func TestWorldFire(t *testing.T) {
	w := NewWorld(flatLevel())
	settle(w)

	w.SetAim(gamemath.V(600, 48))
	w.Fire()
	require.Equal(t, 1, w.Projectiles.Len())
	assert.Equal(t, gamemath.V(76, 44), w.Projectiles.All()[0].Position)

	assert.NotEmpty(t, w.AimPreview(30))

	for range 200 {
		w.Tick()
	}
	assert.Equal(t, 0, w.Projectiles.Len())
}

func TestWorldCameraTarget(t *testing.T) {
	w := NewWorld(flatLevel())
	settle(w)

	assert.Equal(t, gamemath.V(320, 128), w.CameraTarget(640, 256))
	assert.Equal(t, gamemath.V(100, 64), w.CameraTarget(200, 128))
}

func TestLevelFromData(t *testing.T) {
	data := &leveldata.CollisionData{
		Cols: 10, Rows: 5, TileWidth: 32, TileHeight: 32,
		SolidRects:  []leveldata.SolidRect{{X: 0, Y: 0, W: 320, H: 32}},
		SpawnPoints: []leveldata.SpawnPoint{{X: 128, Y: 32}},
	}

	lvl, err := LevelFromData(data)
	require.NoError(t, err)
	assert.Equal(t, gamemath.V(128, 32), lvl.Spawn)
	assert.Equal(t, []gamemath.Rect{gamemath.R(0, 0, 320, 32)}, lvl.Solids)

	data.SpawnPoints = nil
	lvl, err = LevelFromData(data)
	require.NoError(t, err)
	assert.Equal(t, gamemath.V(DefaultSpawnX, DefaultSpawnY), lvl.Spawn)

	data.TileWidth = 16
	_, err = LevelFromData(data)
	require.Error(t, err)
}
