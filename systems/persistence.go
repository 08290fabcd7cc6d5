package systems

import (
	"encoding/json"
	"log"
	"slices"

	"github.com/automoto/tmx-explorer/components"
	cfg "github.com/automoto/tmx-explorer/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/quasilyte/gdata"
	"github.com/yohamta/donburi/ecs"
)

// SavedSettings represents the viewer state stored on disk
type SavedSettings struct {
	MapPath      string   `json:"mapPath"`
	CurrentZ     int      `json:"currentZ"`
	LevelOffset  float64  `json:"levelOffset"`
	ShowGrid     bool     `json:"showGrid"`
	ShowInfo     bool     `json:"showInfo"`
	Fullscreen   bool     `json:"fullscreen"`
	HiddenLayers []string `json:"hiddenLayers,omitempty"` // qualified layer names
}

var gdataManager *gdata.Manager
var gdataInitialized bool

// frames left before a pending change is written
var saveCountdown int

// InitPersistence initializes the gdata manager for settings storage
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: cfg.Persistence.AppName,
	})
	if err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
		return err
	}
	gdataManager = m
	gdataInitialized = true
	return nil
}

// LoadSettings loads settings from disk. It returns nil when nothing has
// been saved yet.
func LoadSettings() (*SavedSettings, error) {
	if !gdataInitialized || gdataManager == nil {
		return nil, nil
	}

	data, err := gdataManager.LoadItem(cfg.Persistence.SettingsKey)
	if err != nil {
		log.Printf("Warning: Could not load settings: %v", err)
		return nil, nil
	}
	if len(data) == 0 {
		return nil, nil
	}

	var settings SavedSettings
	if err := json.Unmarshal(data, &settings); err != nil {
		log.Printf("Warning: Could not parse saved settings: %v", err)
		return nil, err
	}
	return &settings, nil
}

// SaveSettings saves settings to disk
func SaveSettings(s *SavedSettings) error {
	if !gdataInitialized || gdataManager == nil {
		return nil
	}

	data, err := json.Marshal(s)
	if err != nil {
		log.Printf("Warning: Could not serialize settings: %v", err)
		return err
	}

	if err := gdataManager.SaveItem(cfg.Persistence.SettingsKey, data); err != nil {
		log.Printf("Warning: Could not save settings: %v", err)
		return err
	}
	return nil
}

// CaptureSettings copies the viewer state into a SavedSettings. layerName
// maps a layer index to its qualified name.
func CaptureSettings(v *components.ViewerData, layerName func(int) string, fullscreen bool) *SavedSettings {
	s := &SavedSettings{
		MapPath:     v.MapPath,
		CurrentZ:    v.CurrentZ,
		LevelOffset: v.LevelOffset,
		ShowGrid:    v.ShowGrid,
		ShowInfo:    v.ShowInfo,
		Fullscreen:  fullscreen,
	}
	for n, hidden := range v.Hidden {
		if hidden {
			s.HiddenLayers = append(s.HiddenLayers, layerName(n))
		}
	}
	return s
}

// RestoreSettings applies saved state to the viewer. Height and hidden
// layers only carry over when the saved map is the one being viewed.
func RestoreSettings(v *components.ViewerData, saved *SavedSettings, layerName func(int) string, heights int) {
	if saved == nil {
		return
	}
	v.ShowGrid = saved.ShowGrid
	v.ShowInfo = saved.ShowInfo
	if saved.LevelOffset >= 0 {
		v.LevelOffset = saved.LevelOffset
	}
	if saved.MapPath != v.MapPath {
		return
	}
	v.CurrentZ = min(max(saved.CurrentZ, 0), heights-1)
	for n := range v.Hidden {
		v.Hidden[n] = slices.Contains(saved.HiddenLayers, layerName(n))
	}
}

// ApplySavedSettings applies loaded settings to the viewer and window
func ApplySavedSettings(e *ecs.ECS, saved *SavedSettings) {
	if saved == nil {
		return
	}
	ebiten.SetFullscreen(saved.Fullscreen)

	viewer := getViewer(e)
	worldEntry, ok := components.World.First(e.World)
	if viewer == nil || !ok {
		return
	}
	w := components.World.Get(worldEntry)
	RestoreSettings(viewer, saved, w.Index.LayerName, w.Index.H)
}

// SaveCurrentSettings writes the viewer state now.
func SaveCurrentSettings(e *ecs.ECS) {
	viewer := getViewer(e)
	worldEntry, ok := components.World.First(e.World)
	if viewer == nil || !ok {
		return
	}
	w := components.World.Get(worldEntry)
	_ = SaveSettings(CaptureSettings(viewer, w.Index.LayerName, ebiten.IsFullscreen()))
	viewer.Dirty = false
	saveCountdown = 0
}

// UpdatePersistence saves changed settings once they have been left alone
// for a while, so holding a key does not write on every frame.
func UpdatePersistence(e *ecs.ECS) {
	viewer := getViewer(e)
	if viewer == nil {
		return
	}
	if viewer.Dirty {
		viewer.Dirty = false
		saveCountdown = cfg.Viewer.SaveDelayFrames
		return
	}
	if saveCountdown > 0 {
		saveCountdown--
		if saveCountdown == 0 {
			SaveCurrentSettings(e)
		}
	}
}
