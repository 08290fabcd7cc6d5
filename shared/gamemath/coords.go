package gamemath

import "math"

// PixelToTile converts a pixel position to tile indices using floor
// division, so -1 maps to tile -1 rather than 0.
func PixelToTile(px, py float64, tileW, tileH int) (tx, ty int) {
	if tileW <= 0 || tileH <= 0 {
		return 0, 0
	}
	tx = int(math.Floor(px / float64(tileW)))
	ty = int(math.Floor(py / float64(tileH)))
	return tx, ty
}

// TileDrawOrigin returns the top-left pixel at which to draw the graphic of
// tile (x, y) on height index z. Graphics are anchored at the bottom of their
// cell, so tiles taller than the grid extend upward. Each height index shifts
// the drawing up by levelOffsetPx.
func TileDrawOrigin(x, y, z, tileW, tileH, imgH int, levelOffsetPx float64) (float64, float64) {
	wx := float64(x * tileW)
	wy := float64((y+1)*tileH-imgH) - float64(z)*levelOffsetPx
	return wx, wy
}

// EntityDrawOrigin returns the top-left pixel of an entity sprite whose
// center-bottom sits at (px, py) on fractional height z.
func EntityDrawOrigin(px, py, z float64, spriteW, spriteH int, levelOffsetPx float64) (float64, float64) {
	return px - float64(spriteW)/2, py - float64(spriteH) - z*levelOffsetPx
}
