package leveldata

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func grid(t *testing.T, name string, props ...any) *TileGrid {
	t.Helper()
	g, err := NewTileGrid(name, 2, 2, make([]uint32, 4))
	require.NoError(t, err)
	for i := 0; i+1 < len(props); i += 2 {
		g.Properties.Set(props[i].(string), props[i+1].(PropertyValue))
	}
	return g
}

type flatLayer struct {
	Name  string
	Level int
}

func flatten(entries []LayerEntry) []flatLayer {
	out := make([]flatLayer, len(entries))
	for i, e := range entries {
		out[i] = flatLayer{Name: e.QualifiedName, Level: e.Level}
	}
	return out
}

func TestExtractLayersDepthFirst(t *testing.T) {
	nodes := []LayerNode{
		grid(t, "Ground"),
		&ObjectLayer{Name: "Spawns"},
		&LayerGroup{
			Name: "House",
			Children: []LayerNode{
				grid(t, "Floor", "Z", IntValue(1)),
				&LayerGroup{
					Name: "Attic",
					Children: []LayerNode{
						grid(t, "Beams", "level", StringValue("0x2")),
						&ObjectLayer{Name: "Lamps"},
					},
				},
				grid(t, "Roof", "z", FloatValue(3.7)),
			},
		},
		grid(t, "Cellar", "Z", IntValue(-1)),
	}

	entries, err := ExtractLayers(nodes)
	require.NoError(t, err)

	want := []flatLayer{
		{"Ground", 0},
		{"House/Floor", 1},
		{"House/Attic/Beams", 2},
		{"House/Roof", 3},
		{"Cellar", -1},
	}
	if diff := cmp.Diff(want, flatten(entries)); diff != "" {
		t.Errorf("ExtractLayers mismatch (-want +got):\n%s", diff)
	}
	assert.Same(t, nodes[0], entries[0].Grid)
}

func TestExtractLayersEmpty(t *testing.T) {
	entries, err := ExtractLayers(nil)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestLayerLevelPriority(t *testing.T) {
	var p Properties
	p.Set("level", IntValue(5))
	p.Set("z", IntValue(4))
	p.Set("Z", IntValue(3))

	level, err := LayerLevel(&p)
	require.NoError(t, err)
	assert.Equal(t, 3, level)

	var q Properties
	q.Set("level", IntValue(5))
	q.Set("z", StringValue("0b11"))
	level, err = LayerLevel(&q)
	require.NoError(t, err)
	assert.Equal(t, 3, level)

	var empty Properties
	level, err = LayerLevel(&empty)
	require.NoError(t, err)
	assert.Equal(t, 0, level)
}

func TestExtractLayersMalformedLevel(t *testing.T) {
	nodes := []LayerNode{
		&LayerGroup{
			Name:     "Tower",
			Children: []LayerNode{grid(t, "Top", "Z", StringValue("high"))},
		},
	}

	_, err := ExtractLayers(nodes)
	require.Error(t, err)

	var perr *PropertyParseError
	require.True(t, errors.As(err, &perr))
	assert.Equal(t, "Tower/Top", perr.Owner)
	assert.Equal(t, "Z", perr.Property)
	assert.Equal(t, "high", perr.Value)
	assert.Contains(t, err.Error(), "Tower/Top")
}

func TestExtractLayersIgnoresGroupLevel(t *testing.T) {
	upper := &LayerGroup{
		Name:     "Upper",
		Children: []LayerNode{grid(t, "Roof"), grid(t, "Chimney", "Z", IntValue(4))},
	}
	upper.Properties.Set("Z", IntValue(2))

	entries, err := ExtractLayers([]LayerNode{upper})
	require.NoError(t, err)

	want := []flatLayer{{"Upper/Roof", 0}, {"Upper/Chimney", 4}}
	if diff := cmp.Diff(want, flatten(entries)); diff != "" {
		t.Errorf("ExtractLayers mismatch (-want +got):\n%s", diff)
	}
}

func TestLayerLevelLeadingZero(t *testing.T) {
	var p Properties
	p.Set("Z", StringValue("010"))
	_, err := LayerLevel(&p)
	require.Error(t, err)

	var perr *PropertyParseError
	require.True(t, errors.As(err, &perr))
	assert.Equal(t, "010", perr.Value)
}

func TestTileGridBounds(t *testing.T) {
	g, err := NewTileGrid("g", 3, 2, []uint32{1, 2, 3, 4, 5, 6})
	require.NoError(t, err)

	assert.Equal(t, uint32(6), g.At(2, 1))
	assert.Equal(t, uint32(0), g.At(3, 0))
	assert.Equal(t, uint32(0), g.At(-1, 0))

	g.SetTile(0, 1, 9)
	assert.Equal(t, uint32(9), g.At(0, 1))
	g.SetTile(5, 5, 9) // ignored

	_, err = NewTileGrid("short", 3, 2, []uint32{1, 2})
	assert.Error(t, err)
}
