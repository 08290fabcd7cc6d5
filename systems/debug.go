package systems

import (
	"image/color"

	"github.com/automoto/tmx-explorer/components"
	cfg "github.com/automoto/tmx-explorer/config"
	"github.com/automoto/tmx-explorer/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// DrawDebug outlines every character's collision footprint while the grid
// overlay is on, lifted to the character's height like its sprite.
func DrawDebug(e *ecs.ECS, screen *ebiten.Image) {
	viewer := getViewer(e)
	if viewer == nil || !viewer.ShowGrid {
		return
	}
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)
	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()
	view := cameraView(camera, width, height)

	components.Character.Each(e.World, func(entry *donburi.Entry) {
		ch := components.Character.Get(entry)
		obj := components.Object.Get(entry)

		var c color.Color = cfg.Character.NPCColor
		if obj.HasTags(tags.ResolvPlayer) {
			c = cfg.Character.PlayerColor
		}

		x, y := view.WorldToScreen(obj.X, obj.Y-ch.Z*viewer.LevelOffset)
		vector.StrokeRect(screen, float32(x), float32(y),
			float32(obj.W*view.Zoom), float32(obj.H*view.Zoom), 1, c, false)
	})
}
