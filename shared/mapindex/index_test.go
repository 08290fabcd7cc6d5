package mapindex

import (
	"math"
	"testing"

	"github.com/automoto/tmx-explorer/shared/leveldata"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func layer(t *testing.T, name string, level, w, h int, tiles map[[2]int]uint32) leveldata.LayerEntry {
	t.Helper()
	g, err := leveldata.NewTileGrid(name, w, h, make([]uint32, w*h))
	require.NoError(t, err)
	for pos, gid := range tiles {
		g.SetTile(pos[0], pos[1], gid)
	}
	return leveldata.LayerEntry{Grid: g, Level: level, QualifiedName: name}
}

func build(t *testing.T, entries []leveldata.LayerEntry, w, d int) *Index {
	t.Helper()
	idx, err := Build(entries, w, d)
	require.NoError(t, err)
	return idx
}

func TestBuildNormalizesLevels(t *testing.T) {
	entries := []leveldata.LayerEntry{
		layer(t, "Cellar", -2, 3, 3, map[[2]int]uint32{{0, 0}: 4}),
		layer(t, "Ground", 0, 3, 3, map[[2]int]uint32{{1, 1}: 1}),
		layer(t, "Roof", 1, 3, 3, map[[2]int]uint32{{2, 2}: 9}),
	}
	idx := build(t, entries, 3, 3)

	assert.Equal(t, 3, idx.W)
	assert.Equal(t, 3, idx.D)
	assert.Equal(t, 4, idx.H)
	assert.Equal(t, 3, idx.N)
	assert.Equal(t, -2, idx.MinLevel)
	assert.Equal(t, 1, idx.MaxLevel)
	assert.Equal(t, 2, idx.LevelOffset)

	assert.Equal(t, uint32(4), idx.Tile(0, 0, 0, 0))
	assert.Equal(t, uint32(1), idx.Tile(1, 1, 2, 1))
	assert.Equal(t, uint32(9), idx.Tile(2, 2, 3, 2))
	assert.Equal(t, uint32(0), idx.Tile(1, 1, 2, 0))

	assert.Equal(t, "Ground", idx.LayerName(1))
	assert.Equal(t, 1, idx.LayerLevel(2))
	assert.Equal(t, []int{1}, idx.LayersAtHeight(2))
	assert.Empty(t, idx.LayersAtHeight(1))
}

func TestLevelValueRoundTrip(t *testing.T) {
	entries := []leveldata.LayerEntry{
		layer(t, "a", -3, 1, 1, nil),
		layer(t, "b", 2, 1, 1, nil),
		layer(t, "c", 0, 1, 1, nil),
	}
	idx := build(t, entries, 1, 1)

	for _, e := range entries {
		z, ok := idx.HeightIndex(e.Level)
		require.True(t, ok)
		assert.Equal(t, e.Level+idx.LevelOffset, z)
		assert.Equal(t, e.Level, idx.LevelValue(e.Level+idx.LevelOffset))
	}
	_, ok := idx.HeightIndex(3)
	assert.False(t, ok)
}

func TestTileOutOfBoundsIsZero(t *testing.T) {
	entries := []leveldata.LayerEntry{
		layer(t, "full", 0, 2, 2, map[[2]int]uint32{{0, 0}: 1, {1, 0}: 1, {0, 1}: 1, {1, 1}: 1}),
	}
	idx := build(t, entries, 2, 2)

	outside := [][4]int{
		{-1, 0, 0, 0}, {2, 0, 0, 0},
		{0, -1, 0, 0}, {0, 2, 0, 0},
		{0, 0, -1, 0}, {0, 0, 1, 0},
		{0, 0, 0, -1}, {0, 0, 0, 1},
	}
	for _, p := range outside {
		assert.Equal(t, uint32(0), idx.Tile(p[0], p[1], p[2], p[3]), "%v", p)
		assert.NotPanics(t, func() { idx.SetTile(p[0], p[1], p[2], p[3], 5) })
	}
	assert.Equal(t, uint32(1), idx.Tile(1, 1, 0, 0))
}

func TestSetTile(t *testing.T) {
	idx := build(t, []leveldata.LayerEntry{layer(t, "g", 0, 2, 2, nil)}, 2, 2)
	idx.SetTile(1, 0, 0, 0, 42)
	assert.Equal(t, uint32(42), idx.Tile(1, 0, 0, 0))
}

func TestBuildClipsAndPads(t *testing.T) {
	entries := []leveldata.LayerEntry{
		layer(t, "big", 0, 4, 4, map[[2]int]uint32{{3, 3}: 8, {1, 1}: 2}),
		layer(t, "small", 0, 1, 1, map[[2]int]uint32{{0, 0}: 3}),
	}
	idx := build(t, entries, 2, 2)

	assert.Equal(t, uint32(2), idx.Tile(1, 1, 0, 0))
	assert.Equal(t, uint32(3), idx.Tile(0, 0, 0, 1))
	assert.Equal(t, uint32(0), idx.Tile(1, 1, 0, 1))
}

func TestBuildWithoutLayers(t *testing.T) {
	idx := build(t, nil, 5, 4)
	assert.Equal(t, 1, idx.H)
	assert.Equal(t, 0, idx.N)
	assert.Equal(t, 0, idx.LevelOffset)
	assert.Equal(t, uint32(0), idx.Tile(0, 0, 0, 0))
}

func TestUsedGIDs(t *testing.T) {
	entries := []leveldata.LayerEntry{
		layer(t, "a", 0, 2, 2, map[[2]int]uint32{{0, 0}: 9, {1, 1}: 3}),
		layer(t, "b", 1, 2, 2, map[[2]int]uint32{{0, 1}: 3, {1, 0}: 1}),
	}
	idx := build(t, entries, 2, 2)
	assert.Equal(t, []uint32{1, 3, 9}, idx.UsedGIDs())
	assert.Empty(t, build(t, nil, 2, 2).UsedGIDs())
}

func TestBuildRejectsHugeLevelSpan(t *testing.T) {
	tests := []struct {
		name   string
		levels [2]int
	}{
		{"far apart", [2]int{0, 1 << 40}},
		{"span overflows", [2]int{math.MinInt, math.MaxInt}},
		{"just over limit", [2]int{0, MaxCells}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entries := []leveldata.LayerEntry{
				layer(t, "Low", tt.levels[0], 1, 1, nil),
				layer(t, "High", tt.levels[1], 1, 1, nil),
			}
			var err error
			assert.NotPanics(t, func() { _, err = Build(entries, 1, 1) })
			require.ErrorIs(t, err, ErrTooLarge)
			assert.Contains(t, err.Error(), `"Low"`)
			assert.Contains(t, err.Error(), `"High"`)
		})
	}
}

func TestBuildRejectsTooManyCells(t *testing.T) {
	old := MaxCells
	MaxCells = 100
	t.Cleanup(func() { MaxCells = old })

	entries := []leveldata.LayerEntry{layer(t, "g", 0, 1, 1, nil), layer(t, "h", 4, 1, 1, nil)}
	_, err := Build(entries, 5, 5)
	require.ErrorIs(t, err, ErrTooLarge)

	idx, err := Build(entries, 5, 2)
	require.NoError(t, err)
	assert.Equal(t, 5, idx.H)
}
