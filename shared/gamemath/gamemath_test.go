package gamemath

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPixelToTile(t *testing.T) {
	cases := []struct {
		px, py float64
		tx, ty int
	}{
		{0, 0, 0, 0},
		{31, 31, 0, 0},
		{32, 63, 1, 1},
		{-1, -1, -1, -1},
		{-32, -33, -1, -2},
		{-0.5, 10, -1, 0},
	}
	for _, tc := range cases {
		tx, ty := PixelToTile(tc.px, tc.py, 32, 32)
		assert.Equal(t, tc.tx, tx, "px=%v", tc.px)
		assert.Equal(t, tc.ty, ty, "py=%v", tc.py)
	}

	tx, ty := PixelToTile(10, 10, 0, 32)
	assert.Equal(t, 0, tx)
	assert.Equal(t, 0, ty)
}

func TestTileDepthOrdering(t *testing.T) {
	for y := 0; y < 20; y++ {
		for z := 0; z < 4; z++ {
			for n := 0; n < MaxLayersPerLevel; n++ {
				d := TileDepth(y, z, n)
				assert.Less(t, d, TileDepth(y+1, z, n), "row y=%d", y)
				assert.Less(t, d, TileDepth(y, z+1, n), "level z=%d", z)
				assert.InDelta(t, LayerDepthStep, TileDepth(y, z, n+1)-d, 1e-9)
			}
			// The whole layer stack of a cell stays behind the next row.
			assert.Less(t, TileDepth(y, z, MaxLayersPerLevel), TileDepth(y+1, z, 0))
		}
	}
}

func TestDepthScaleFits(t *testing.T) {
	assert.True(t, DepthScaleFits(0))
	assert.True(t, DepthScaleFits(MaxLayersPerLevel))
	assert.False(t, DepthScaleFits(10))
	assert.False(t, DepthScaleFits(25))
}

func TestEntityDepth(t *testing.T) {
	// In front of every layer on its own row and level.
	entity := EntityDepth(5*32, 0, 32)
	for n := 0; n < 5; n++ {
		assert.Greater(t, entity, TileDepth(5, 0, n))
	}
	assert.Less(t, entity, TileDepth(6, 0, 0))

	assert.Greater(t, EntityDepth(100, 1.5, 32), EntityDepth(100, 1.0, 32))
	assert.Greater(t, EntityDepth(101, 1, 32), EntityDepth(100, 1, 32))
	assert.InDelta(t, BaseDepth+3.125+0.5, EntityDepth(100, 0, 32), 1e-9)
}

func TestDrawOrigins(t *testing.T) {
	x, y := TileDrawOrigin(2, 3, 0, 32, 32, 32, 128)
	assert.Equal(t, 64.0, x)
	assert.Equal(t, 96.0, y)

	// A 64px tall tile on level 1 extends one tile up and is lifted by the level offset.
	x, y = TileDrawOrigin(2, 3, 1, 32, 32, 64, 128)
	assert.Equal(t, 64.0, x)
	assert.Equal(t, 64.0-128, y)

	x, y = EntityDrawOrigin(100, 200, 0.5, 32, 48, 128)
	assert.Equal(t, 84.0, x)
	assert.Equal(t, 200.0-48-64, y)
}

func TestMoveVelocity(t *testing.T) {
	vx, vy, vz := MoveVelocity(1, 0, 0, 100, 0.01)
	assert.Equal(t, 100.0, vx)
	assert.Equal(t, 0.0, vy)
	assert.Equal(t, 0.0, vz)

	vx, vy, _ = MoveVelocity(1, -1, 0, 100, 0.01)
	assert.InDelta(t, 100, math.Hypot(vx, vy), 0.5)
	assert.Less(t, vy, 0.0)

	_, _, vz = MoveVelocity(0, 0, 1, 100, 0.01)
	assert.InDelta(t, 1.0, vz, 1e-9)
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 2.0, ClampFloat(5, 0, 2))
	assert.Equal(t, 0.0, ClampFloat(-1, 0, 2))
	assert.Equal(t, 1.5, ClampFloat(1.5, 0, 2))
	assert.Equal(t, -3.0, ClampSpeed(-7, 3))
}
