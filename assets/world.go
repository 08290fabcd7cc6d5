package assets

import (
	"fmt"
	"io/fs"
	"log"
	"path"

	"github.com/automoto/tmx-explorer/shared/leveldata"
	"github.com/automoto/tmx-explorer/shared/world"
	"github.com/hajimehoshi/ebiten/v2"
)

// World is a loaded map plus the tile images it draws with.
type World struct {
	*world.World
	Spawns []leveldata.SpawnPoint

	dir   string
	tiles map[uint32]*ebiten.Image
	sizes map[uint32][2]int
}

// LoadWorld loads a TMX map and cuts every tile it uses out of its tileset
// image through cache. Tiles whose image is missing are logged and drawn as
// nothing.
func LoadWorld(fsys fs.FS, tmxPath string, cache *ResourceCache) (*World, error) {
	base, err := world.Load(fsys, tmxPath)
	if err != nil {
		return nil, err
	}
	spawns, err := leveldata.SpawnPoints(base.Map.Layers)
	if err != nil {
		return nil, fmt.Errorf("spawns in %s: %w", tmxPath, err)
	}

	w := &World{
		World:  base,
		Spawns: spawns,
		dir:    path.Dir(tmxPath),
		tiles:  make(map[uint32]*ebiten.Image),
		sizes:  make(map[uint32][2]int),
	}

	missing := 0
	for _, gid := range base.Index.UsedGIDs() {
		src, rect, ok := base.Catalog().SourceRect(gid)
		if !ok {
			log.Printf("Warning: GID %d has no tileset", gid)
			missing++
			continue
		}
		img, err := cache.SubImage(src, rect)
		if err != nil {
			log.Printf("Warning: tile %d: %v", gid, err)
			missing++
			continue
		}
		w.tiles[gid] = img
		w.sizes[gid] = [2]int{rect.Dx(), rect.Dy()}
	}
	log.Printf("Loaded %d tile images for %s (%d missing, %d cached)", len(w.tiles), tmxPath, missing, cache.Len())

	return w, nil
}

// TileImage returns the image for gid, or nil when it has none.
func (w *World) TileImage(gid uint32) *ebiten.Image {
	return w.tiles[gid]
}

// TileSize returns the pixel size of gid's image, falling back to the map's
// tile size.
func (w *World) TileSize(gid uint32) (int, int) {
	if s, ok := w.sizes[gid]; ok {
		return s[0], s[1]
	}
	return w.TileWidth, w.TileHeight
}

// ResolvePath turns a path relative to the map file into an fs path.
func (w *World) ResolvePath(rel string) string {
	return path.Join(w.dir, rel)
}
