package systems

import (
	"testing"

	"github.com/automoto/tmx-explorer/components"
	"github.com/stretchr/testify/assert"
)

var layerNames = []string{"Ground", "Walls", "Upper/Roof"}

func layerName(n int) string { return layerNames[n] }

func TestCaptureSettings(t *testing.T) {
	v := &components.ViewerData{
		CurrentZ:    1,
		LevelOffset: 96,
		ShowGrid:    true,
		Hidden:      []bool{false, true, true},
		MapPath:     "maps/house.tmx",
	}
	s := CaptureSettings(v, layerName, true)

	assert.Equal(t, "maps/house.tmx", s.MapPath)
	assert.Equal(t, 1, s.CurrentZ)
	assert.Equal(t, 96.0, s.LevelOffset)
	assert.True(t, s.ShowGrid)
	assert.False(t, s.ShowInfo)
	assert.True(t, s.Fullscreen)
	assert.Equal(t, []string{"Walls", "Upper/Roof"}, s.HiddenLayers)
}

func TestRestoreSettingsSameMap(t *testing.T) {
	v := &components.ViewerData{
		CurrentZ:    1,
		LevelOffset: 128,
		Hidden:      make([]bool, 3),
		MapPath:     "maps/house.tmx",
	}
	RestoreSettings(v, &SavedSettings{
		MapPath:      "maps/house.tmx",
		CurrentZ:     7,
		LevelOffset:  64,
		ShowInfo:     true,
		HiddenLayers: []string{"Ground", "Gone"},
	}, layerName, 2)

	assert.Equal(t, 1, v.CurrentZ, "clamped to the map's heights")
	assert.Equal(t, 64.0, v.LevelOffset)
	assert.True(t, v.ShowInfo)
	assert.Equal(t, []bool{true, false, false}, v.Hidden)
}

func TestRestoreSettingsOtherMap(t *testing.T) {
	v := &components.ViewerData{
		CurrentZ:    1,
		LevelOffset: 128,
		Hidden:      make([]bool, 3),
		MapPath:     "maps/house.tmx",
	}
	RestoreSettings(v, &SavedSettings{
		MapPath:      "maps/castle.tmx",
		CurrentZ:     0,
		LevelOffset:  32,
		ShowGrid:     true,
		HiddenLayers: []string{"Ground"},
	}, layerName, 2)

	assert.Equal(t, 1, v.CurrentZ)
	assert.Equal(t, 32.0, v.LevelOffset)
	assert.True(t, v.ShowGrid)
	assert.Equal(t, []bool{false, false, false}, v.Hidden)

	RestoreSettings(v, nil, layerName, 2)
	assert.Equal(t, 32.0, v.LevelOffset)
}
