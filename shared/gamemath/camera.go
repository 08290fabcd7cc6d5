package gamemath

import "math"

// View is a camera looking at Center (world pixels) with a zoom factor, drawn
// into a ScreenW x ScreenH target.
type View struct {
	CenterX, CenterY float64
	Zoom             float64
	ScreenW, ScreenH float64
}

// WorldToScreen maps a world pixel to the screen.
func (v View) WorldToScreen(wx, wy float64) (float64, float64) {
	return (wx-v.CenterX)*v.Zoom + v.ScreenW/2, (wy-v.CenterY)*v.Zoom + v.ScreenH/2
}

// ScreenToWorld maps a screen pixel back into the world.
func (v View) ScreenToWorld(sx, sy float64) (float64, float64) {
	return v.CenterX + (sx-v.ScreenW/2)/v.Zoom, v.CenterY + (sy-v.ScreenH/2)/v.Zoom
}

// VisibleTiles returns the half-open tile range [x0, x1) x [y0, y1) the view
// can show, widened by margin tiles and clipped to a width x depth map. Tiles
// on upper levels are drawn lift pixels higher, so the range reaches that far
// further down.
func (v View) VisibleTiles(tileW, tileH, margin, width, depth int, lift float64) (x0, y0, x1, y1 int) {
	if tileW <= 0 || tileH <= 0 || v.Zoom <= 0 {
		return 0, 0, 0, 0
	}
	left, top := v.ScreenToWorld(0, 0)
	right, bottom := v.ScreenToWorld(v.ScreenW, v.ScreenH)
	bottom += lift

	mx := float64(margin * tileW)
	my := float64(margin * tileH)
	x0 = max(0, int(math.Floor((left-mx)/float64(tileW))))
	y0 = max(0, int(math.Floor((top-my)/float64(tileH))))
	x1 = min(width, int(math.Floor((right+mx)/float64(tileW)))+1)
	y1 = min(depth, int(math.Floor((bottom+my)/float64(tileH)))+1)
	if x1 < x0 {
		x1 = x0
	}
	if y1 < y0 {
		y1 = y0
	}
	return x0, y0, x1, y1
}

// FitLevels centres a mapW x mapH pixel map whose top level is lifted by
// levels*levelOffset pixels, and picks a zoom that shows all of it, never
// above 1, scaled by fill.
func FitLevels(mapW, mapH float64, levels int, levelOffset, screenW, screenH, fill float64) (cx, cy, zoom float64) {
	lift := float64(levels) * levelOffset
	zoom = 1.0
	if mapW > 0 {
		zoom = min(zoom, screenW/mapW)
	}
	if mapH+lift > 0 {
		zoom = min(zoom, screenH/(mapH+lift))
	}
	return mapW / 2, (mapH - lift) / 2, zoom * fill
}
