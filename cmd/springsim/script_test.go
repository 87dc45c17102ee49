package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitwiserain/springshot/shared/gamemath"
	"github.com/bitwiserain/springshot/shared/physics"
)

func TestParseScript(t *testing.T) {
	events, err := parseScript("30:jump, 0:right,45:!right,60:fire=400x100,60:aim=1.5x-2")
	require.NoError(t, err)
	require.Len(t, events, 5)

	assert.Equal(t, event{Tick: 0, Action: actRight}, events[0])
	assert.Equal(t, event{Tick: 30, Action: actJump}, events[1])
	assert.Equal(t, event{Tick: 45, Action: actReleaseRight}, events[2])
	assert.Equal(t, event{Tick: 60, Action: actFire, Target: gamemath.V(400, 100), HasPos: true}, events[3])
	assert.Equal(t, event{Tick: 60, Action: actAim, Target: gamemath.V(1.5, -2), HasPos: true}, events[4])
}

func TestParseScriptEmpty(t *testing.T) {
	events, err := parseScript("")
	require.NoError(t, err)
	assert.Empty(t, events)
}

func TestParseScriptErrors(t *testing.T) {
	for _, s := range []string{
		"right",
		"x:right",
		"5:dance",
		"5:jump=1x1",
		"5:aim",
		"5:fire=12",
		"5:fire=ax3",
	} {
		_, err := parseScript(s)
		assert.Error(t, err, s)
	}
}

func floorLevel(cols, rows int) physics.Level {
	lvl := physics.Level{Cols: cols, Rows: rows, Spawn: gamemath.V(64, 32)}
	for c := 0; c < cols; c++ {
		lvl.Solids = append(lvl.Solids, gamemath.R(float64(c)*physics.TileSize, 0, physics.TileSize, physics.TileSize))
	}
	return lvl
}

func TestRunnerWalksAndFires(t *testing.T) {
	events, err := parseScript("0:right,10:!right,10:fire=400x64")
	require.NoError(t, err)

	w := physics.NewWorld(floorLevel(20, 10))
	r := newRunner(w, events, 0)
	r.runFixed(10)

	assert.Equal(t, uint64(10), w.Driver().Ticks())
	assert.Equal(t, 94.0, w.Player.Position.X)
	assert.Equal(t, 32.0, w.Player.Position.Y)
	assert.Equal(t, physics.Moving, w.Player.Horizontal)
	assert.Equal(t, 0, w.Projectiles.Len())

	r.runFixed(11)
	assert.Equal(t, physics.Idle, w.Player.Horizontal)
	assert.Equal(t, 1, w.Projectiles.Len())
	assert.Equal(t, 94.0, w.Player.Position.X)
}
