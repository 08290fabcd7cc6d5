// Package collision keeps a 3D solidity grid parallel to a map index and
// answers movement queries against it.
//
// Cells are addressed (x, y, z): column, row and height index. Anything
// outside the grid reads as solid, so entities cannot leave the map without
// extra boundary checks.
package collision

import (
	"github.com/automoto/tmx-explorer/shared/mapindex"
	"golang.org/x/sync/errgroup"
)

// Cell flags. Bits above FlagSolid are reserved.
const (
	FlagNone  uint16 = 0
	FlagSolid uint16 = 1 << 0
)

// SolidFunc reports whether a GID blocks movement.
type SolidFunc func(gid uint32) bool

// Volume stores one flag word per (z, y, x) cell. Like the index it mirrors it
// has no internal locking.
type Volume struct {
	W int // width in tiles
	D int // depth (rows) in tiles
	H int // height levels

	data []uint16 // [H][D][W]
}

// NewVolume returns an all-walkable volume.
func NewVolume(width, depth, levels int) *Volume {
	v := &Volume{W: max(width, 0), D: max(depth, 0), H: max(levels, 0)}
	v.data = make([]uint16, v.W*v.D*v.H)
	return v
}

// Build marks a cell solid when any layer on that cell's level holds a GID
// that isSolid accepts. Levels are filled concurrently; each writes only its
// own slab.
func Build(idx *mapindex.Index, isSolid SolidFunc) *Volume {
	v := NewVolume(idx.W, idx.D, idx.H)
	if isSolid == nil {
		return v
	}

	var g errgroup.Group
	for z := 0; z < idx.H; z++ {
		layers := idx.LayersAtHeight(z)
		if len(layers) == 0 {
			continue
		}
		g.Go(func() error {
			v.buildLevel(idx, isSolid, z, layers)
			return nil
		})
	}
	_ = g.Wait()

	return v
}

func (v *Volume) buildLevel(idx *mapindex.Index, isSolid SolidFunc, z int, layers []int) {
	for y := 0; y < v.D; y++ {
		for x := 0; x < v.W; x++ {
			for _, n := range layers {
				gid := idx.Tile(x, y, z, n)
				if gid != 0 && isSolid(gid) {
					v.data[v.offset(x, y, z)] = FlagSolid
					break
				}
			}
		}
	}
}

func (v *Volume) offset(x, y, z int) int {
	return (z*v.D+y)*v.W + x
}

func (v *Volume) inBounds(x, y, z int) bool {
	return x >= 0 && x < v.W && y >= 0 && y < v.D && z >= 0 && z < v.H
}

// Flags returns the flags at a cell. Outside the volume it returns FlagSolid.
func (v *Volume) Flags(x, y, z int) uint16 {
	if !v.inBounds(x, y, z) {
		return FlagSolid
	}
	return v.data[v.offset(x, y, z)]
}

// SetFlags replaces the flags at a cell. Writes outside the volume are ignored.
func (v *Volume) SetFlags(x, y, z int, flags uint16) {
	if !v.inBounds(x, y, z) {
		return
	}
	v.data[v.offset(x, y, z)] = flags
}

func (v *Volume) IsSolid(x, y, z int) bool {
	return v.Flags(x, y, z)&FlagSolid != 0
}

func (v *Volume) IsWalkable(x, y, z int) bool {
	return !v.IsSolid(x, y, z)
}

// Stats summarizes a volume for diagnostics.
type Stats struct {
	Total        int
	Solid        int
	Empty        int
	SolidPercent float64
}

func (v *Volume) Stats() Stats {
	s := Stats{Total: len(v.data)}
	for _, f := range v.data {
		if f != 0 {
			s.Solid++
		}
	}
	s.Empty = s.Total - s.Solid
	if s.Total > 0 {
		s.SolidPercent = float64(s.Solid) / float64(s.Total) * 100
	}
	return s
}
