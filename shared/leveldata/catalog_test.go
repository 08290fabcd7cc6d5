package leveldata

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCatalog() *TilesetCatalog {
	return NewTilesetCatalog([]TilesetInfo{
		{
			Name:     "props",
			FirstGID: 101,
			Tiles: map[uint32]TileImage{
				0: {Source: "props/tree.png", Width: 32, Height: 64},
			},
			TileWidth:  32,
			TileHeight: 32,
		},
		{
			Name:       "terrain",
			FirstGID:   1,
			TileCount:  100,
			Columns:    10,
			TileWidth:  16,
			TileHeight: 16,
			Margin:     1,
			Spacing:    2,
			Image:      "terrain.png",
		},
	})
}

func TestCatalogTilesetLookup(t *testing.T) {
	c := testCatalog()

	ts, ok := c.Tileset(50)
	require.True(t, ok)
	assert.Equal(t, "terrain", ts.Name)

	ts, ok = c.Tileset(150)
	require.True(t, ok)
	assert.Equal(t, "props", ts.Name)

	_, ok = c.Tileset(0)
	assert.False(t, ok)

	assert.Equal(t, uint32(1), c.Tilesets()[0].FirstGID)
}

func TestCatalogTileSize(t *testing.T) {
	c := testCatalog()

	w, h, ok := c.TileSize(5)
	require.True(t, ok)
	assert.Equal(t, [2]int{16, 16}, [2]int{w, h})

	w, h, ok = c.TileSize(101)
	require.True(t, ok)
	assert.Equal(t, [2]int{32, 64}, [2]int{w, h})

	_, _, ok = c.TileSize(0)
	assert.False(t, ok)
}

func TestCatalogSourceRect(t *testing.T) {
	c := testCatalog()

	// local ID 12 -> column 2, row 1
	src, rect, ok := c.SourceRect(13)
	require.True(t, ok)
	assert.Equal(t, "terrain.png", src)
	assert.Equal(t, image.Rect(37, 19, 53, 35), rect)

	src, rect, ok = c.SourceRect(101)
	require.True(t, ok)
	assert.Equal(t, "props/tree.png", src)
	assert.Equal(t, image.Rect(0, 0, 32, 64), rect)

	_, _, ok = c.SourceRect(1100)
	assert.False(t, ok)
}
