package leveldata

import (
	"errors"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSpawnPointsFromTMX(t *testing.T) {
	data, err := LoadMap(os.DirFS("testdata"), "maps/house.tmx")
	require.NoError(t, err)

	spawns, err := SpawnPoints(data.Layers)
	require.NoError(t, err)
	require.Len(t, spawns, 2)

	hero := spawns[0]
	assert.True(t, hero.Player)
	assert.Equal(t, "hero", hero.Name)
	assert.Equal(t, 16.0, hero.X)
	assert.Empty(t, hero.Behavior)

	guard := spawns[1]
	assert.False(t, guard.Player)
	assert.Equal(t, "patrol", guard.Behavior)
	assert.Equal(t, 60.0, guard.Speed)
	assert.Equal(t, 0.5, guard.Z)
	assert.Equal(t, []Point{{80, 16}, {80, 48}}, guard.Path)
}

func TestSpawnPointsOrderAndDefaults(t *testing.T) {
	npc := func(name string, x float64) MapObject {
		return MapObject{Name: name, Class: "NPC", X: x}
	}
	nodes := []LayerNode{
		&ObjectLayer{Name: "a", Objects: []MapObject{npc("right", 200), npc("left", 10)}},
		&LayerGroup{Name: "g", Children: []LayerNode{
			&ObjectLayer{Name: "b", Objects: []MapObject{{Name: "p", Class: "player", X: 500}}},
		}},
	}

	spawns, err := SpawnPoints(nodes)
	require.NoError(t, err)
	require.Len(t, spawns, 3)
	assert.Equal(t, "p", spawns[0].Name)
	assert.Equal(t, "left", spawns[1].Name)
	assert.Equal(t, "right", spawns[2].Name)
	assert.Equal(t, "idle", spawns[1].Behavior)
}

func TestSpawnPointsMalformedZ(t *testing.T) {
	obj := MapObject{Name: "bob", Class: "npc"}
	obj.Properties.Set("z", StringValue("roof"))

	_, err := SpawnPoints([]LayerNode{&ObjectLayer{Name: "Spawns", Objects: []MapObject{obj}}})
	require.Error(t, err)

	var perr *PropertyParseError
	require.True(t, errors.As(err, &perr))
	assert.Equal(t, "Spawns/bob", perr.Owner)
	assert.Equal(t, "z", perr.Property)
}
