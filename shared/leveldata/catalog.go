package leveldata

import (
	"image"
	"sort"
)

// TilesetInfo is the graphical metadata of one tileset.
type TilesetInfo struct {
	Name       string
	FirstGID   uint32
	TileCount  int
	Columns    int
	TileWidth  int
	TileHeight int
	Margin     int
	Spacing    int

	// Image is the path of the shared tileset image. It is empty for image
	// collection tilesets, whose tiles each carry their own image.
	Image string
	Tiles map[uint32]TileImage // keyed by local tile ID
}

// TileImage is the standalone image of a tile in an image collection.
type TileImage struct {
	Source string
	Width  int
	Height int
}

// TilesetCatalog resolves GIDs to their tileset and tile graphics.
type TilesetCatalog struct {
	sets []TilesetInfo // ascending FirstGID
}

func NewTilesetCatalog(sets []TilesetInfo) *TilesetCatalog {
	sorted := make([]TilesetInfo, len(sets))
	copy(sorted, sets)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].FirstGID < sorted[j].FirstGID
	})
	return &TilesetCatalog{sets: sorted}
}

// Tilesets returns the tilesets in ascending FirstGID order.
func (c *TilesetCatalog) Tilesets() []TilesetInfo {
	return c.sets
}

// Tileset returns the tileset owning gid: the one with the largest
// FirstGID <= gid.
func (c *TilesetCatalog) Tileset(gid uint32) (*TilesetInfo, bool) {
	if gid == 0 {
		return nil, false
	}
	i := sort.Search(len(c.sets), func(i int) bool {
		return c.sets[i].FirstGID > gid
	})
	if i == 0 {
		return nil, false
	}
	return &c.sets[i-1], true
}

// TileSize returns the pixel size of gid's graphic.
func (c *TilesetCatalog) TileSize(gid uint32) (w, h int, ok bool) {
	ts, ok := c.Tileset(gid)
	if !ok {
		return 0, 0, false
	}
	if img, ok := ts.Tiles[gid-ts.FirstGID]; ok && img.Width > 0 && img.Height > 0 {
		return img.Width, img.Height, true
	}
	return ts.TileWidth, ts.TileHeight, true
}

// SourceRect returns the image holding gid's graphic and the region of that
// image to draw.
func (c *TilesetCatalog) SourceRect(gid uint32) (source string, rect image.Rectangle, ok bool) {
	ts, ok := c.Tileset(gid)
	if !ok {
		return "", image.Rectangle{}, false
	}
	id := gid - ts.FirstGID
	if img, ok := ts.Tiles[id]; ok && img.Source != "" {
		return img.Source, image.Rect(0, 0, img.Width, img.Height), true
	}
	if ts.Image == "" || ts.Columns <= 0 {
		return "", image.Rectangle{}, false
	}
	if ts.TileCount > 0 && int(id) >= ts.TileCount {
		return "", image.Rectangle{}, false
	}

	col := int(id) % ts.Columns
	row := int(id) / ts.Columns
	x := ts.Margin + col*(ts.TileWidth+ts.Spacing)
	y := ts.Margin + row*(ts.TileHeight+ts.Spacing)
	return ts.Image, image.Rect(x, y, x+ts.TileWidth, y+ts.TileHeight), true
}
