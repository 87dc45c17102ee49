package physics

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitwiserain/springshot/shared/gamemath"
)

func TestControlsApply(t *testing.T) {
	target := gamemath.V(300, 64)

	tests := []struct {
		name       string
		frames     []ControlState
		horizontal HorizontalState
		facing     Facing
		shots      int
		aiming     bool
	}{
		{
			name:       "hold right",
			frames:     []ControlState{{Right: true}, {Right: true}},
			horizontal: Moving,
			facing:     Right,
		},
		{
			name:       "release after hold",
			frames:     []ControlState{{Right: true}, {}},
			horizontal: Idle,
			facing:     Right,
		},
		{
			name:       "both held cancels",
			frames:     []ControlState{{Left: true}, {Left: true, Right: true}},
			horizontal: MovingCancelled,
			facing:     Right,
		},
		{
			name:       "releasing the first key resumes the other",
			frames:     []ControlState{{Left: true}, {Left: true, Right: true}, {Right: true}},
			horizontal: Moving,
			facing:     Right,
		},
		{
			name:       "same-frame swap moves toward the new side",
			frames:     []ControlState{{Left: true}, {Right: true}},
			horizontal: Moving,
			facing:     Right,
		},
		{
			name:       "swap toward the left",
			frames:     []ControlState{{Right: true}, {Left: true}},
			horizontal: Moving,
			facing:     Left,
		},
		{
			name:       "holding fire only aims",
			frames:     []ControlState{{Fire: true, Target: target}, {Fire: true, Target: target}},
			horizontal: Idle,
			facing:     Right,
			aiming:     true,
		},
		{
			name:       "letting go fires once",
			frames:     []ControlState{{Fire: true, Target: target}, {}, {}},
			horizontal: Idle,
			facing:     Right,
			shots:      1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := NewWorld(Level{Cols: 20, Rows: 10, Spawn: gamemath.V(64, 96)})
			var c Controls
			shots := 0
			for _, f := range tt.frames {
				if c.Apply(w, f) {
					shots++
				}
			}

			assert.Equal(t, tt.horizontal, w.Player.Horizontal)
			assert.Equal(t, tt.facing, w.Player.Facing)
			assert.Equal(t, tt.shots, shots)
			assert.Equal(t, tt.shots, w.Projectiles.Len())
			assert.Equal(t, tt.aiming, c.Aiming())
		})
	}
}

func TestControlsFireUsesLastAimPoint(t *testing.T) {
	w := NewWorld(Level{Cols: 20, Rows: 10, Spawn: gamemath.V(64, 96)})
	var c Controls

	c.Apply(w, ControlState{Fire: true, Target: gamemath.V(0, 112)})
	c.Apply(w, ControlState{Fire: true, Target: gamemath.V(400, 112)})
	assert.True(t, c.Apply(w, ControlState{}))

	// Player centre is (80, 112), so the shot goes straight right.
	p := w.Projectiles.All()[0]
	assert.InDelta(t, ProjectileSpeed, p.Velocity.X, 1e-9)
	assert.InDelta(t, 0, p.Velocity.Y, 1e-9)
	assert.Equal(t, gamemath.V(400, 112), w.Aim())
}

func TestControlsJumpOnlyWhenGrounded(t *testing.T) {
	w := NewWorld(Level{Cols: 20, Rows: 10, Spawn: gamemath.V(64, 96)})
	var c Controls

	c.Apply(w, ControlState{Jump: true})
	assert.Equal(t, 0.0, w.Player.Velocity.Y, "spawned airborne")

	w.Player.Vertical = Grounded
	c.Apply(w, ControlState{Jump: true})
	assert.Equal(t, JumpSpeed, w.Player.Velocity.Y)
}

func TestControlsReset(t *testing.T) {
	w := NewWorld(Level{Cols: 20, Rows: 10, Spawn: gamemath.V(64, 96)})
	var c Controls

	c.Apply(w, ControlState{Right: true, Fire: true})
	c.Reset()
	assert.False(t, c.Aiming())

	// After a reset the held key is seen as a fresh press.
	fresh := NewWorld(Level{Cols: 20, Rows: 10, Spawn: gamemath.V(64, 96)})
	c.Apply(fresh, ControlState{Right: true})
	assert.Equal(t, Moving, fresh.Player.Horizontal)
	assert.Equal(t, 0, fresh.Projectiles.Len())
}
