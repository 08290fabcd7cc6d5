// Package mapindex stacks a map's tile layers into a dense 4D lookup:
// (height index, row, column, layer) -> GID.
package mapindex

import (
	"errors"
	"fmt"
	"slices"

	"github.com/automoto/tmx-explorer/shared/leveldata"
	"golang.org/x/sync/errgroup"
)

// Index is built once per map load and is read-mostly afterwards. It has no
// internal locking: SetTile must not run concurrently with readers.
type Index struct {
	W int // width in tiles
	D int // depth (rows) in tiles
	H int // distinct height levels
	N int // leaf tile layers

	MinLevel    int
	MaxLevel    int
	LevelOffset int // z = level + LevelOffset

	tiles      []uint32 // [H][D][W][N], layer axis fastest
	layerLevel []int
	layerName  []string
}

// MaxCells bounds H*D*W*N. Level numbers far apart would otherwise ask for
// an array no machine can hold.
var MaxCells = 1 << 28

// ErrTooLarge is returned by Build when the index would exceed MaxCells.
var ErrTooLarge = errors.New("map index too large")

// Build copies every entry into the index. Width and depth are the map's
// size in tiles; smaller layers are left empty past their edge and larger
// layers are clipped.
func Build(entries []leveldata.LayerEntry, width, depth int) (*Index, error) {
	idx := &Index{
		W: max(width, 0),
		D: max(depth, 0),
		N: len(entries),
	}

	lowest, highest := 0, 0
	if len(entries) > 0 {
		idx.MinLevel, idx.MaxLevel = entries[0].Level, entries[0].Level
		for n, e := range entries[1:] {
			if e.Level < idx.MinLevel {
				idx.MinLevel, lowest = e.Level, n+1
			}
			if e.Level > idx.MaxLevel {
				idx.MaxLevel, highest = e.Level, n+1
			}
		}
	}

	cells, ok := cellCount(idx.MinLevel, idx.MaxLevel, idx.D, idx.W, idx.N)
	if !ok {
		return nil, fmt.Errorf("%w: levels %d (%q) to %d (%q) on a %dx%d map with %d layers",
			ErrTooLarge, idx.MinLevel, entries[lowest].QualifiedName,
			idx.MaxLevel, entries[highest].QualifiedName, idx.W, idx.D, idx.N)
	}
	idx.H = idx.MaxLevel - idx.MinLevel + 1
	idx.LevelOffset = -idx.MinLevel

	idx.tiles = make([]uint32, cells)
	idx.layerLevel = make([]int, idx.N)
	idx.layerName = make([]string, idx.N)

	// Each layer owns its own slot on the layer axis, so copies never overlap.
	var g errgroup.Group
	for n, e := range entries {
		idx.layerLevel[n] = e.Level
		idx.layerName[n] = e.QualifiedName
		if e.Grid == nil {
			continue
		}
		z := e.Level + idx.LevelOffset
		g.Go(func() error {
			idx.copyLayer(e.Grid, z, n)
			return nil
		})
	}
	_ = g.Wait()

	return idx, nil
}

// cellCount returns (maxLevel-minLevel+1)*d*w*n, or false when the level
// span overflows or the product exceeds MaxCells.
func cellCount(minLevel, maxLevel, d, w, n int) (int, bool) {
	span := maxLevel - minLevel
	if span < 0 || span >= MaxCells {
		return 0, false
	}
	cells := span + 1
	for _, f := range [...]int{d, w, n} {
		if f == 0 {
			return 0, true
		}
		if cells > MaxCells/f {
			return 0, false
		}
		cells *= f
	}
	return cells, true
}

func (idx *Index) copyLayer(grid *leveldata.TileGrid, z, n int) {
	rows := min(grid.Height, idx.D)
	cols := min(grid.Width, idx.W)
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			if gid := grid.At(x, y); gid != 0 {
				idx.tiles[idx.offset(x, y, z, n)] = gid
			}
		}
	}
}

func (idx *Index) offset(x, y, z, n int) int {
	return ((z*idx.D+y)*idx.W+x)*idx.N + n
}

func (idx *Index) inBounds(x, y, z, n int) bool {
	return x >= 0 && x < idx.W &&
		y >= 0 && y < idx.D &&
		z >= 0 && z < idx.H &&
		n >= 0 && n < idx.N
}

// Tile returns the GID stored at (x, y, z, layer), or 0 outside the index.
func (idx *Index) Tile(x, y, z, layer int) uint32 {
	if !idx.inBounds(x, y, z, layer) {
		return 0
	}
	return idx.tiles[idx.offset(x, y, z, layer)]
}

// SetTile writes a GID. Writes outside the index are ignored.
func (idx *Index) SetTile(x, y, z, layer int, gid uint32) {
	if !idx.inBounds(x, y, z, layer) {
		return
	}
	idx.tiles[idx.offset(x, y, z, layer)] = gid
}

// LevelValue converts a height index back to the level number from the map.
func (idx *Index) LevelValue(z int) int {
	return z - idx.LevelOffset
}

// HeightIndex converts a map level number to a height index.
func (idx *Index) HeightIndex(level int) (int, bool) {
	z := level + idx.LevelOffset
	return z, z >= 0 && z < idx.H
}

func (idx *Index) LayerLevel(n int) int {
	if n < 0 || n >= idx.N {
		return 0
	}
	return idx.layerLevel[n]
}

func (idx *Index) LayerName(n int) string {
	if n < 0 || n >= idx.N {
		return ""
	}
	return idx.layerName[n]
}

// LayersAtHeight returns the layer indices whose level maps to height index z,
// in layer order.
func (idx *Index) LayersAtHeight(z int) []int {
	level := idx.LevelValue(z)
	var layers []int
	for n, l := range idx.layerLevel {
		if l == level {
			layers = append(layers, n)
		}
	}
	return layers
}

// UsedGIDs returns every distinct non-zero GID in the index, ascending.
func (idx *Index) UsedGIDs() []uint32 {
	seen := make(map[uint32]struct{})
	for _, gid := range idx.tiles {
		if gid != 0 {
			seen[gid] = struct{}{}
		}
	}
	gids := make([]uint32, 0, len(seen))
	for gid := range seen {
		gids = append(gids, gid)
	}
	slices.Sort(gids)
	return gids
}
