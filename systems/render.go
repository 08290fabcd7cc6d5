package systems

import (
	"cmp"
	"math"
	"slices"

	"github.com/automoto/tmx-explorer/components"
	cfg "github.com/automoto/tmx-explorer/config"
	"github.com/automoto/tmx-explorer/shared/gamemath"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	drawOp = &ebiten.DrawImageOptions{}

	// Reused between frames so a full screen of tiles does not allocate.
	drawItems []drawItem
)

// drawItem is one image queued for the depth sort.
type drawItem struct {
	img   *ebiten.Image
	x, y  float64 // top-left in world pixels
	depth float64
}

// DrawWorld renders every visible tile from height 0 up to the viewed height,
// with characters mixed in, back to front by depth.
func DrawWorld(e *ecs.ECS, screen *ebiten.Image) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	worldEntry, ok := components.World.First(e.World)
	if !ok {
		return
	}
	viewer := getViewer(e)
	if viewer == nil {
		return
	}
	camera := components.Camera.Get(cameraEntry)
	w := components.World.Get(worldEntry)
	idx := w.Index

	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()
	view := cameraView(camera, width, height)
	lift := float64(viewer.CurrentZ) * viewer.LevelOffset
	x0, y0, x1, y1 := view.VisibleTiles(w.TileWidth, w.TileHeight, cfg.Viewer.CullMargin, idx.W, idx.D, lift)

	items := drawItems[:0]
	for z := 0; z <= viewer.CurrentZ && z < idx.H; z++ {
		for _, n := range idx.LayersAtHeight(z) {
			if !viewer.LayerVisible(n) {
				continue
			}
			for y := y0; y < y1; y++ {
				for x := x0; x < x1; x++ {
					gid := idx.Tile(x, y, z, n)
					if gid == 0 {
						continue
					}
					img := w.TileImage(gid)
					if img == nil {
						continue
					}
					_, imgH := w.TileSize(gid)
					wx, wy := gamemath.TileDrawOrigin(x, y, z, w.TileWidth, w.TileHeight, imgH, viewer.LevelOffset)
					items = append(items, drawItem{img: img, x: wx, y: wy, depth: w.TileDepth(y, z, n)})
				}
			}
		}
	}

	components.Character.Each(e.World, func(entry *donburi.Entry) {
		ch := components.Character.Get(entry)
		if int(math.Floor(ch.Z)) > viewer.CurrentZ {
			return
		}
		sprite := components.Sprite.Get(entry)
		frame := 0
		if ch.Walking {
			frame = ch.Walk.Frame()
		}
		img := sprite.Image(ch.Facing, frame)
		if img == nil {
			return
		}
		wx, wy := gamemath.EntityDrawOrigin(ch.X, ch.Y, ch.Z, sprite.FrameWidth, sprite.FrameHeight, viewer.LevelOffset)
		items = append(items, drawItem{img: img, x: wx, y: wy, depth: w.EntityDepth(ch.Y, ch.Z)})
	})

	// Stable, so equal depths keep layer order.
	slices.SortStableFunc(items, func(a, b drawItem) int {
		return cmp.Compare(a.depth, b.depth)
	})

	for _, it := range items {
		drawOp.GeoM.Reset()
		drawOp.GeoM.Translate(it.x-view.CenterX, it.y-view.CenterY)
		drawOp.GeoM.Scale(view.Zoom, view.Zoom)
		drawOp.GeoM.Translate(view.ScreenW/2, view.ScreenH/2)
		screen.DrawImage(it.img, drawOp)
	}

	clear(items)
	drawItems = items[:0]
}

// DrawGrid outlines the cells of the viewed height and shades its solid ones.
func DrawGrid(e *ecs.ECS, screen *ebiten.Image) {
	viewer := getViewer(e)
	if viewer == nil || !viewer.ShowGrid {
		return
	}
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	worldEntry, ok := components.World.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)
	w := components.World.Get(worldEntry)

	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()
	view := cameraView(camera, width, height)
	z := viewer.CurrentZ
	lift := float64(z) * viewer.LevelOffset
	x0, y0, x1, y1 := view.VisibleTiles(w.TileWidth, w.TileHeight, 0, w.Index.W, w.Index.D, lift)

	cellW := float32(float64(w.TileWidth) * view.Zoom)
	cellH := float32(float64(w.TileHeight) * view.Zoom)
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			sx, sy := view.WorldToScreen(float64(x*w.TileWidth), float64(y*w.TileHeight)-lift)
			if w.Collision.IsSolid(x, y, z) {
				vector.DrawFilledRect(screen, float32(sx), float32(sy), cellW, cellH, cfg.HUD.SolidColor, false)
			}
			vector.StrokeRect(screen, float32(sx), float32(sy), cellW, cellH, 1, cfg.HUD.GridColor, false)
		}
	}
}
