package factory

import (
	"github.com/automoto/tmx-explorer/archetypes"
	"github.com/automoto/tmx-explorer/assets"
	"github.com/automoto/tmx-explorer/components"
	cfg "github.com/automoto/tmx-explorer/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateWorld(ecs *ecs.ECS, w *assets.World) *donburi.Entry {
	entry := archetypes.World.Spawn(ecs)
	components.World.SetValue(entry, components.WorldData{World: w})
	return entry
}

// CreateViewer starts with every level drawn and every layer visible.
func CreateViewer(ecs *ecs.ECS, w *assets.World, mapPath string) *donburi.Entry {
	entry := archetypes.Viewer.Spawn(ecs)
	components.Viewer.SetValue(entry, components.ViewerData{
		CurrentZ:    w.Index.H - 1,
		LevelOffset: cfg.Viewer.LevelOffset,
		ShowGrid:    cfg.Debug.ShowGrid,
		ShowInfo:    cfg.Debug.ShowInfo,
		Hidden:      make([]bool, w.Index.N),
		MapPath:     mapPath,
	})
	return entry
}
