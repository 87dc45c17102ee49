package physics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitwiserain/springshot/shared/gamemath"
)

func TestNewIndexRoundsOrigins(t *testing.T) {
	ix := NewIndex(10, 6, []gamemath.Rect{
		gamemath.R(63, 97, 32, 32),
		gamemath.R(79, 0, 32, 32),
	})

	assert.True(t, ix.Occupied(2, 3))
	assert.True(t, ix.Occupied(2, 0), "79/32 rounds to 2")
	assert.False(t, ix.Occupied(3, 3))
	assert.Equal(t, 2, ix.Len())
}

func TestNewIndexSpansWideRects(t *testing.T) {
	ix := NewIndex(10, 6, []gamemath.Rect{
		gamemath.R(0, 0, 96, 32),
		gamemath.R(288, 32, 32, 64),
		gamemath.R(32, 0, 32, 32),
	})

	assert.Equal(t, []Tile{{0, 0}, {1, 0}, {2, 0}, {9, 1}, {9, 2}}, ix.Tiles())
}

func TestNewIndexDropsOutsideGrid(t *testing.T) {
	ix := NewIndex(4, 4, []gamemath.Rect{
		gamemath.R(-64, 0, 32, 32),
		gamemath.R(128, 0, 32, 32),
		gamemath.R(0, 0, 32, 32),
	})

	assert.Equal(t, []Tile{{0, 0}}, ix.Tiles())
	assert.Equal(t, gamemath.R(0, 0, 128, 128), ix.Bounds())
}

func TestOverlapping(t *testing.T) {
	ix := NewIndex(10, 6, []gamemath.Rect{
		gamemath.R(0, 0, 320, 32),
		gamemath.R(96, 32, 32, 32),
	})

	t.Run("resting flush", func(t *testing.T) {
		assert.Empty(t, ix.Overlapping(gamemath.R(32, 32, 32, 32)))
	})

	t.Run("sunk across a seam", func(t *testing.T) {
		hits := ix.Overlapping(gamemath.R(48, 31.7, 32, 32))
		assert.Equal(t, []Tile{{1, 0}, {2, 0}}, hits)
	})

	t.Run("ordered by row then column", func(t *testing.T) {
		hits := ix.Overlapping(gamemath.R(70, 20, 32, 32))
		require.Len(t, hits, 3)
		assert.Equal(t, []Tile{{2, 0}, {3, 0}, {3, 1}}, hits)
	})

	t.Run("fraction of a pixel into the next cell", func(t *testing.T) {
		assert.Equal(t, []Tile{{3, 1}}, ix.Overlapping(gamemath.R(64.5, 40, 32, 32)))
		assert.Equal(t, []Tile{{3, 1}}, ix.Overlapping(gamemath.R(127.5, 40, 32, 32)))
		assert.Equal(t, []Tile{{0, 0}}, ix.Overlapping(gamemath.R(0, 31.5, 32, 32)))
	})

	t.Run("outside the grid", func(t *testing.T) {
		assert.Empty(t, ix.Overlapping(gamemath.R(-100, -100, 32, 32)))
	})
}
