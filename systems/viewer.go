package systems

import (
	"log"

	"github.com/automoto/tmx-explorer/components"
	cfg "github.com/automoto/tmx-explorer/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

func getViewer(e *ecs.ECS) *components.ViewerData {
	entry, ok := components.Viewer.First(e.World)
	if !ok {
		return nil
	}
	return components.Viewer.Get(entry)
}

// UpdateViewer applies the overlay, layer and height-level keys.
func UpdateViewer(e *ecs.ECS) {
	viewer := getViewer(e)
	if viewer == nil {
		return
	}
	input := getOrCreateInput(e)

	if GetAction(input, cfg.ActionQuit).JustPressed {
		viewer.Quit = true
		return
	}
	if GetAction(input, cfg.ActionToggleGrid).JustPressed {
		viewer.ShowGrid = !viewer.ShowGrid
		viewer.Dirty = true
	}
	if GetAction(input, cfg.ActionToggleInfo).JustPressed {
		viewer.ShowInfo = !viewer.ShowInfo
		viewer.Dirty = true
	}
	if GetAction(input, cfg.ActionToggleFullscreen).JustPressed {
		ebiten.SetFullscreen(!ebiten.IsFullscreen())
		viewer.Dirty = true
	}

	for _, n := range input.LayerToggles {
		if n < len(viewer.Hidden) {
			viewer.Hidden[n] = !viewer.Hidden[n]
			viewer.Dirty = true
		}
	}

	if GetAction(input, cfg.ActionLevelUp).JustPressed {
		ChangeHeight(e, 1)
	}
	if GetAction(input, cfg.ActionLevelDown).JustPressed {
		ChangeHeight(e, -1)
	}

	if input.Shift {
		offset := viewer.LevelOffset
		if GetAction(input, cfg.ActionZoomIn).JustPressed {
			offset += cfg.Viewer.LevelOffsetStep
		}
		if GetAction(input, cfg.ActionZoomOut).JustPressed {
			offset = max(0, offset-cfg.Viewer.LevelOffsetStep)
		}
		if offset != viewer.LevelOffset {
			viewer.LevelOffset = offset
			viewer.Dirty = true
			FitCamera(e, true)
		}
	}
}

// ChangeHeight moves the highest drawn height index by delta, clamped to the
// map, and eases the camera to frame the new stack. It reports whether the
// height changed.
func ChangeHeight(e *ecs.ECS, delta int) bool {
	viewer := getViewer(e)
	worldEntry, ok := components.World.First(e.World)
	if viewer == nil || !ok {
		return false
	}
	w := components.World.Get(worldEntry)

	z := min(max(viewer.CurrentZ+delta, 0), w.Index.H-1)
	if z == viewer.CurrentZ {
		return false
	}
	viewer.CurrentZ = z
	viewer.Dirty = true
	log.Printf("Viewing height %d (level %d)", z, w.Index.LevelValue(z))
	FitCamera(e, true)
	return true
}
