package world

import (
	"testing"

	"github.com/automoto/tmx-explorer/shared/collision"
	"github.com/automoto/tmx-explorer/shared/leveldata"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var walker = collision.Footprint{Width: 0.5, Depth: 0.5, Height: 0.85}

// corridor is a 6x3 single-level map with a wall column at x=3.
func corridor(t *testing.T) *World {
	t.Helper()
	gids := make([]uint32, 6*3)
	for i := range gids {
		gids[i] = 1
	}
	for y := 0; y < 3; y++ {
		gids[y*6+3] = 2
	}
	g, err := leveldata.NewTileGrid("Ground", 6, 3, gids)
	require.NoError(t, err)

	w, err := New("corridor", &leveldata.MapData{
		Width: 6, Height: 3, TileWidth: 32, TileHeight: 32,
		Layers: []leveldata.LayerNode{g},
		Solid:  leveldata.SolidSet{2: {}},
	})
	require.NoError(t, err)
	return w
}

func TestStepSlidesAlongWall(t *testing.T) {
	w := corridor(t)
	m := &Mover{X: 80, Y: 48, VX: 100, VY: 20, Footprint: walker}

	for i := 0; i < 60; i++ {
		assert.True(t, w.Step(m, 1.0/60, nil))
	}
	// Blocked in X by the wall column, free to move in Y.
	assert.Less(t, m.X+walker.Width*32/2, 96.0)
	assert.Greater(t, m.Y, 48.0+15)
}

func TestStepRespectsOccupancy(t *testing.T) {
	w := corridor(t)
	m := &Mover{X: 16, Y: 16, VX: 60, Footprint: walker}

	blockRight := func(x, _ float64) bool { return x > 20 }
	w.Step(m, 0.1, blockRight)
	assert.Equal(t, 16.0, m.X)

	w.Step(m, 0.05, blockRight)
	assert.InDelta(t, 19.0, m.X, 1e-9)
}

func TestStepStandingStill(t *testing.T) {
	w := corridor(t)
	m := &Mover{X: 16, Y: 16, Footprint: walker}
	assert.False(t, w.Step(m, 0.1, nil))
	assert.Equal(t, 16.0, m.X)
}

func TestStepClampsHeight(t *testing.T) {
	w := corridor(t)
	m := &Mover{X: 16, Y: 16, VZ: 5, Footprint: walker}
	w.Step(m, 1, nil)
	// A single-level map has nowhere to climb to.
	assert.Equal(t, 0.0, m.Z)
}

func TestFindOpenSpot(t *testing.T) {
	w := corridor(t)
	x, y, ok := w.FindOpenSpot(0, walker)
	require.True(t, ok)
	assert.Equal(t, 16.0, x)
	assert.Equal(t, 16.0, y)
}
