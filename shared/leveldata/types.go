// Package leveldata provides TMX level parsing shared by the explorer and its
// tools. It has no dependencies on ebitengine or donburi; it is pure data.
package leveldata

import "fmt"

// TileGrid is a fixed-size layer of global tile IDs in row-major order.
// A GID of 0 means no tile.
type TileGrid struct {
	Name       string
	Width      int
	Height     int
	Properties Properties
	gids       []uint32
}

// NewTileGrid wraps decoded tile data. The slice is owned by the grid.
func NewTileGrid(name string, width, height int, gids []uint32) (*TileGrid, error) {
	if width < 0 || height < 0 {
		return nil, fmt.Errorf("layer %q: negative size %dx%d", name, width, height)
	}
	if len(gids) != width*height {
		return nil, fmt.Errorf("layer %q: got %d tiles, want %dx%d", name, len(gids), width, height)
	}
	return &TileGrid{Name: name, Width: width, Height: height, gids: gids}, nil
}

// At returns the GID at (x, y), or 0 outside the grid.
func (g *TileGrid) At(x, y int) uint32 {
	if x < 0 || y < 0 || x >= g.Width || y >= g.Height {
		return 0
	}
	return g.gids[y*g.Width+x]
}

// SetTile replaces the GID at (x, y). Writes outside the grid are ignored.
func (g *TileGrid) SetTile(x, y int, gid uint32) {
	if x < 0 || y < 0 || x >= g.Width || y >= g.Height {
		return
	}
	g.gids[y*g.Width+x] = gid
}

// LayerNode is one entry of a map's layer tree: *TileGrid, *ObjectLayer or
// *LayerGroup.
type LayerNode interface {
	LayerName() string
}

// ObjectLayer is an object group. It carries no tile data and never becomes a
// LayerEntry, but its objects seed characters.
type ObjectLayer struct {
	Name       string
	Properties Properties
	Objects    []MapObject
}

// MapObject is one Tiled object in pixel coordinates.
type MapObject struct {
	ID         uint32
	Name       string
	Class      string
	X, Y       float64
	Width      float64
	Height     float64
	Properties Properties
	Path       []Point // absolute polyline points, if any
}

// Point is a position in map pixels.
type Point struct {
	X, Y float64
}

// LayerGroup nests other layers.
type LayerGroup struct {
	Name       string
	Properties Properties
	Children   []LayerNode
}

func (g *TileGrid) LayerName() string    { return g.Name }
func (o *ObjectLayer) LayerName() string { return o.Name }
func (g *LayerGroup) LayerName() string  { return g.Name }

// LayerEntry is a leaf tile layer with its height level and its group path.
type LayerEntry struct {
	Grid          *TileGrid
	Level         int
	QualifiedName string
}

// MapData is a loaded map reduced to what the 3D structures need.
type MapData struct {
	Width      int // tiles
	Height     int // tiles
	TileWidth  int // pixels
	TileHeight int // pixels
	Layers     []LayerNode
	Solid      SolidSet
	Catalog    *TilesetCatalog
}

// SolidSet holds the GIDs whose tile has solid=true.
type SolidSet map[uint32]struct{}

// IsSolid reports whether gid is marked solid. Unknown GIDs are not solid.
func (s SolidSet) IsSolid(gid uint32) bool {
	if gid == 0 {
		return false
	}
	_, ok := s[gid]
	return ok
}
