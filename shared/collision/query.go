package collision

import (
	"math"

	"github.com/automoto/tmx-explorer/shared/gamemath"
)

// Footprint is an entity's collision box. Width and Depth are in tiles,
// Height is in height levels (one level is two vertical units, so 0.85 is a
// 1.7 unit tall character).
type Footprint struct {
	Width  float64
	Depth  float64
	Height float64
}

// PixelToTile converts a pixel position to tile indices with floor division.
func (v *Volume) PixelToTile(px, py float64, tileW, tileH int) (int, int) {
	return gamemath.PixelToTile(px, py, tileW, tileH)
}

// ZLevelsToCheck returns the height indices an entity with feet at z and the
// given height overlaps: floor(z) and floor(z+height), dropping duplicates and
// indices outside the volume.
func (v *Volume) ZLevelsToCheck(z, height float64) []int {
	bottom := int(math.Floor(z))
	top := int(math.Floor(z + height))

	levels := make([]int, 0, 2)
	if bottom >= 0 && bottom < v.H {
		levels = append(levels, bottom)
	}
	if top != bottom && top >= 0 && top < v.H {
		levels = append(levels, top)
	}
	return levels
}

// CanMoveToWithSize reports whether an entity whose center-bottom is at pixel
// (px, py) on height z fits there. Only the four corners of the footprint are
// sampled, on every level the entity overlaps; a solid tile lying wholly
// inside a footprint wider than a tile is not seen. An entity overlapping no
// level inside the volume has no corners to check and may move.
func (v *Volume) CanMoveToWithSize(px, py, z float64, fp Footprint, tileW, tileH int) bool {
	levels := v.ZLevelsToCheck(z, fp.Height)

	halfW := fp.Width * float64(tileW) / 2
	halfD := fp.Depth * float64(tileH) / 2
	left, right := px-halfW, px+halfW
	top, bottom := py-halfD, py+halfD

	corners := [4][2]float64{
		{left, top},
		{right, top},
		{left, bottom},
		{right, bottom},
	}
	for _, c := range corners {
		tx, ty := gamemath.PixelToTile(c[0], c[1], tileW, tileH)
		for _, tz := range levels {
			if v.IsSolid(tx, ty, tz) {
				return false
			}
		}
	}
	return true
}

// CanChangeHeight reports whether the entity can move from currentZ to newZ
// at its current position. Heights below 0 or at or above H are rejected.
func (v *Volume) CanChangeHeight(px, py, currentZ, newZ float64, fp Footprint, tileW, tileH int) bool {
	if newZ < 0 || newZ >= float64(v.H) {
		return false
	}
	return v.CanMoveToWithSize(px, py, newZ, fp, tileW, tileH)
}

// Slide moves an entity by (dx, dy) one axis at a time so it slides along
// walls instead of stopping dead. It returns the accepted position.
func (v *Volume) Slide(px, py, z, dx, dy float64, fp Footprint, tileW, tileH int) (float64, float64) {
	if dx != 0 && v.CanMoveToWithSize(px+dx, py, z, fp, tileW, tileH) {
		px += dx
	}
	if dy != 0 && v.CanMoveToWithSize(px, py+dy, z, fp, tileW, tileH) {
		py += dy
	}
	return px, py
}

// Climb moves an entity from z toward newZ, clamped to the volume's height
// range. It returns z unchanged when the new height is blocked.
func (v *Volume) Climb(px, py, z, newZ float64, fp Footprint, tileW, tileH int) float64 {
	if v.H == 0 {
		return z
	}
	newZ = gamemath.ClampFloat(newZ, 0, float64(v.H-1))
	if newZ == z {
		return z
	}
	if v.CanChangeHeight(px, py, z, newZ, fp, tileW, tileH) {
		return newZ
	}
	return z
}
