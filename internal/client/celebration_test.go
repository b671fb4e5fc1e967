package client

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/beng262/InfiniteTicTacToe/internal/entity"
)

func TestCelebration(t *testing.T) {
	layout := DefaultLayout()

	t.Run("Runs for a fixed number of frames", func(t *testing.T) {
		// Given: a celebration for O
		celebration := NewCelebration(layout, entity.PlayerO, 1)
		assert.Equal(t, entity.PlayerO, celebration.Winner())

		// When: it is stepped through
		frames := 0
		for !celebration.Done() {
			require.Len(t, celebration.Step(), particlesPerFrame)
			frames++
		}

		// Then: it lasted the whole animation and stops producing marks
		assert.Equal(t, CelebrationFrames, frames)
		assert.Nil(t, celebration.Step())
	})

	t.Run("Circles fall anywhere above or on the board", func(t *testing.T) {
		celebration := NewCelebration(layout, entity.PlayerO, 7)

		for range 10 {
			for _, p := range celebration.Step() {
				assert.GreaterOrEqual(t, p.X, float32(0))
				assert.LessOrEqual(t, p.X, float32(layout.ScreenSize))
				assert.GreaterOrEqual(t, p.Y, float32(-layout.CellSize()))
				assert.LessOrEqual(t, p.Y, float32(layout.ScreenSize))
			}
		}
	})

	t.Run("Crosses snap to cell centers", func(t *testing.T) {
		celebration := NewCelebration(layout, entity.PlayerX, 42)
		half := float32(layout.CellSize()) / 2

		for range 10 {
			for _, p := range celebration.Step() {
				assert.Zero(t, int(p.X-half)%layout.CellSize())
				assert.Zero(t, int(p.Y-half)%layout.CellSize())
			}
		}
	})
}

func TestFloorDiv(t *testing.T) {
	assert.Equal(t, 1, floorDiv(250, 200))
	assert.Equal(t, 0, floorDiv(0, 200))
	assert.Equal(t, -1, floorDiv(-1, 200))
	assert.Equal(t, -1, floorDiv(-200, 200))
}
