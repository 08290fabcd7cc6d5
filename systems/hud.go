package systems

import (
	"fmt"

	"github.com/automoto/tmx-explorer/components"
	cfg "github.com/automoto/tmx-explorer/config"
	"github.com/automoto/tmx-explorer/shared/gamemath"
	"github.com/automoto/tmx-explorer/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// debug font glyph width
const hudCharWidth = 6

const hudKeys = "PgUp/PgDn height  1-9 layers  G grid  I info  Space fit  Shift+/- spacing"

// CacheSize reports how many images the resource cache holds. The scene sets
// it so the panel can show cache growth.
var CacheSize func() int

// DrawHUD renders the info panel in the top-left corner.
func DrawHUD(e *ecs.ECS, screen *ebiten.Image) {
	viewer := getViewer(e)
	if viewer == nil {
		return
	}
	if !viewer.ShowInfo {
		drawPanel(screen, []string{"I: info"})
		return
	}
	worldEntry, ok := components.World.First(e.World)
	if !ok {
		return
	}
	w := components.World.Get(worldEntry)
	idx := w.Index

	zoom := 1.0
	if cameraEntry, ok := components.Camera.First(e.World); ok {
		zoom = components.Camera.Get(cameraEntry).Zoom
	}

	lines := []string{
		w.Name,
		fmt.Sprintf("%dx%d tiles, %d levels (%d..%d), %d layers", idx.W, idx.D, idx.H, idx.MinLevel, idx.MaxLevel, idx.N),
		fmt.Sprintf("Height %d (level %d)  spacing %.0fpx  zoom %.2f",
			viewer.CurrentZ, idx.LevelValue(viewer.CurrentZ), viewer.LevelOffset, zoom),
		fmt.Sprintf("Solid %d/%d cells (%.1f%%)", w.Stats.Solid, w.Stats.Total, w.Stats.SolidPercent),
	}

	if playerEntry, ok := tags.Player.First(e.World); ok {
		ch := components.Character.Get(playerEntry)
		tx, ty := gamemath.PixelToTile(ch.X, ch.Y, w.TileWidth, w.TileHeight)
		lines = append(lines, fmt.Sprintf("%s at tile %d,%d  z %.2f", ch.Name, tx, ty, ch.Z))
	}

	stats := fmt.Sprintf("TPS %.0f", ebiten.ActualTPS())
	if CacheSize != nil {
		stats = fmt.Sprintf("%s  images %d", stats, CacheSize())
	}
	lines = append(lines, stats, "")

	for n := range min(idx.N, cfg.HUD.MaxLayerLines) {
		mark := "x"
		switch {
		case !viewer.LayerVisible(n):
			mark = " "
		case idx.LayerLevel(n)+idx.LevelOffset > viewer.CurrentZ:
			mark = "-"
		}
		key := " "
		if n < 9 {
			key = fmt.Sprint(n + 1)
		}
		lines = append(lines, fmt.Sprintf("%s [%s] %s (L%d)", key, mark, idx.LayerName(n), idx.LayerLevel(n)))
	}
	if idx.N > cfg.HUD.MaxLayerLines {
		lines = append(lines, fmt.Sprintf("  ... %d more", idx.N-cfg.HUD.MaxLayerLines))
	}

	lines = append(lines, "", hudKeys)
	drawPanel(screen, lines)
}

func drawPanel(screen *ebiten.Image, lines []string) {
	longest := 0
	for _, l := range lines {
		longest = max(longest, len(l))
	}
	margin := cfg.HUD.Margin
	pw := float32(longest*hudCharWidth + 2*margin)
	ph := float32(len(lines)*cfg.HUD.LineHeight + 2*margin)
	vector.DrawFilledRect(screen, float32(margin), float32(margin), pw, ph, cfg.HUD.PanelColor, false)

	for i, l := range lines {
		ebitenutil.DebugPrintAt(screen, l, 2*margin, 2*margin+i*cfg.HUD.LineHeight)
	}
}
