package leveldata

import (
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMap(t *testing.T) {
	data, err := LoadMap(os.DirFS("testdata"), "maps/house.tmx")
	require.NoError(t, err)

	assert.Equal(t, 4, data.Width)
	assert.Equal(t, 4, data.Height)
	assert.Equal(t, 32, data.TileWidth)
	assert.Equal(t, 32, data.TileHeight)

	entries, err := ExtractLayers(data.Layers)
	require.NoError(t, err)

	want := []flatLayer{
		{"Ground", 0},
		{"Walls", 0},
		{"Upper/Roof", 1},
	}
	if diff := cmp.Diff(want, flatten(entries)); diff != "" {
		t.Errorf("layers mismatch (-want +got):\n%s", diff)
	}

	assert.Equal(t, uint32(1), entries[0].Grid.At(3, 3))
	assert.Equal(t, uint32(7), entries[1].Grid.At(2, 3))
	assert.Equal(t, uint32(0), entries[1].Grid.At(3, 2))
	assert.Equal(t, uint32(9), entries[2].Grid.At(0, 0))
}

func TestLoadMapSolidAndCatalog(t *testing.T) {
	data, err := LoadMap(os.DirFS("testdata"), "maps/house.tmx")
	require.NoError(t, err)

	assert.True(t, data.Solid.IsSolid(7))
	assert.False(t, data.Solid.IsSolid(1))
	assert.False(t, data.Solid.IsSolid(9))
	assert.False(t, data.Solid.IsSolid(0))

	w, h, ok := data.Catalog.TileSize(9)
	require.True(t, ok)
	assert.Equal(t, 32, w)
	assert.Equal(t, 64, h)

	src, rect, ok := data.Catalog.SourceRect(7)
	require.True(t, ok)
	assert.True(t, strings.HasSuffix(src, "terrain.png"), src)
	assert.Equal(t, 64, rect.Min.X)
	assert.Equal(t, 32, rect.Min.Y)

	src, _, ok = data.Catalog.SourceRect(9)
	require.True(t, ok)
	assert.True(t, strings.HasSuffix(src, "tree.png"), src)
}

func TestLoadMapMalformedLevel(t *testing.T) {
	_, err := LoadMap(os.DirFS("testdata"), "broken/badlevel.tmx")
	require.Error(t, err)

	var perr *PropertyParseError
	require.True(t, errors.As(err, &perr))
	assert.Equal(t, "Floor", perr.Owner)
	assert.Contains(t, err.Error(), "badlevel.tmx")
}

// Chunked layers carry no flat width*height tile data.
func TestLoadMapInfinite(t *testing.T) {
	_, err := LoadMap(os.DirFS("testdata"), "broken/infinite.tmx")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "infinite.tmx")
}

func TestLoadMapMissingFile(t *testing.T) {
	_, err := LoadMap(os.DirFS("testdata"), "maps/nope.tmx")
	assert.Error(t, err)
}

func TestLoadAllMaps(t *testing.T) {
	maps, names, err := LoadAllMaps(os.DirFS("testdata"), "maps")
	require.NoError(t, err)
	assert.Equal(t, []string{"house"}, names)
	require.Contains(t, maps, "house")

	_, _, err = LoadAllMaps(os.DirFS("testdata"), "empty")
	assert.Error(t, err)
}
