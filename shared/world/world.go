// Package world assembles a loaded map into its 3D tile index and collision
// volume.
package world

import (
	"fmt"
	"io/fs"
	"log"

	"github.com/automoto/tmx-explorer/shared/collision"
	"github.com/automoto/tmx-explorer/shared/gamemath"
	"github.com/automoto/tmx-explorer/shared/leveldata"
	"github.com/automoto/tmx-explorer/shared/mapindex"
)

// World holds everything derived from one map file. After Load it is
// read-mostly; edits through Index.SetTile or Collision.SetFlags must be
// serialized with readers by the caller.
type World struct {
	Name       string
	TileWidth  int
	TileHeight int

	Map       *leveldata.MapData
	Layers    []leveldata.LayerEntry
	Index     *mapindex.Index
	Collision *collision.Volume
	Stats     collision.Stats // taken at load time
}

// Load reads a TMX file from fsys and builds its world.
func Load(fsys fs.FS, tmxPath string) (*World, error) {
	data, err := leveldata.LoadMap(fsys, tmxPath)
	if err != nil {
		return nil, err
	}
	w, err := New(tmxPath, data)
	if err != nil {
		return nil, fmt.Errorf("build %s: %w", tmxPath, err)
	}
	return w, nil
}

// New builds the index and collision volume from parsed map data.
func New(name string, data *leveldata.MapData) (*World, error) {
	entries, err := leveldata.ExtractLayers(data.Layers)
	if err != nil {
		return nil, err
	}

	idx, err := mapindex.Build(entries, data.Width, data.Height)
	if err != nil {
		return nil, err
	}
	vol := collision.Build(idx, data.Solid.IsSolid)

	if !gamemath.DepthScaleFits(idx.N) {
		log.Printf("Warning: %s has %d tile layers; layer depth step %.2f no longer fits inside one row",
			name, idx.N, gamemath.LayerDepthStep)
	}

	stats := vol.Stats()
	log.Printf("Loaded map %s: %dx%d tiles, %d levels (%d..%d), %d layers, %d/%d solid cells (%.1f%%)",
		name, idx.W, idx.D, idx.H, idx.MinLevel, idx.MaxLevel, idx.N, stats.Solid, stats.Total, stats.SolidPercent)

	return &World{
		Name:       name,
		TileWidth:  data.TileWidth,
		TileHeight: data.TileHeight,
		Map:        data,
		Layers:     entries,
		Index:      idx,
		Collision:  vol,
		Stats:      stats,
	}, nil
}

// PixelSize returns the map size in pixels.
func (w *World) PixelSize() (int, int) {
	return w.Index.W * w.TileWidth, w.Index.D * w.TileHeight
}

// Catalog returns the tileset catalog of the map.
func (w *World) Catalog() *leveldata.TilesetCatalog {
	return w.Map.Catalog
}

// ClampHeight pulls z into the volume's height range.
func (w *World) ClampHeight(z float64) float64 {
	return gamemath.ClampFloat(z, 0, float64(max(w.Index.H-1, 0)))
}

// CanMoveTo reports whether an entity with footprint fp fits at pixel
// (px, py) on height z.
func (w *World) CanMoveTo(px, py, z float64, fp collision.Footprint) bool {
	return w.Collision.CanMoveToWithSize(px, py, z, fp, w.TileWidth, w.TileHeight)
}

// TileDepth returns the draw depth of a stored tile.
func (w *World) TileDepth(y, z, n int) float64 {
	return gamemath.TileDepth(y, z, n)
}

// EntityDepth returns the draw depth of an entity with feet at pixel row yPx.
func (w *World) EntityDepth(yPx, z float64) float64 {
	return gamemath.EntityDepth(yPx, z, w.TileHeight)
}
