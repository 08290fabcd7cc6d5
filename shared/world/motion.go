package world

import "github.com/automoto/tmx-explorer/shared/collision"

// Mover is the kinematic state of one character: feet position in pixels,
// height in levels and the matching velocities per second.
type Mover struct {
	X, Y, Z    float64
	VX, VY, VZ float64
	Footprint  collision.Footprint
}

// OccupiedFunc reports whether another character already stands at (x, y).
type OccupiedFunc func(x, y float64) bool

// Step advances m by dt seconds. Each planar axis is tried on its own so a
// character slides along walls; a step is refused when the volume blocks it
// or occupied reports another character there. Height changes are clamped to
// the volume and applied only when the new height span is free. It reports
// whether the character tried to walk.
func (w *World) Step(m *Mover, dt float64, occupied OccupiedFunc) bool {
	walking := m.VX != 0 || m.VY != 0
	switch {
	case walking && occupied == nil:
		m.X, m.Y = w.Collision.Slide(m.X, m.Y, m.Z, m.VX*dt, m.VY*dt, m.Footprint, w.TileWidth, w.TileHeight)
	case walking:
		if nx := m.X + m.VX*dt; w.free(nx, m.Y, m.Z, m.Footprint, occupied) {
			m.X = nx
		}
		if ny := m.Y + m.VY*dt; w.free(m.X, ny, m.Z, m.Footprint, occupied) {
			m.Y = ny
		}
	}
	if m.VZ != 0 {
		m.Z = w.Collision.Climb(m.X, m.Y, m.Z, m.Z+m.VZ*dt, m.Footprint, w.TileWidth, w.TileHeight)
	}
	return walking
}

func (w *World) free(x, y, z float64, fp collision.Footprint, occupied OccupiedFunc) bool {
	if !w.CanMoveTo(x, y, z, fp) {
		return false
	}
	return occupied == nil || !occupied(x, y)
}

// FindOpenSpot returns the centre of the first tile, scanning rows from the
// top, where fp fits on height z.
func (w *World) FindOpenSpot(z float64, fp collision.Footprint) (float64, float64, bool) {
	for ty := 0; ty < w.Index.D; ty++ {
		for tx := 0; tx < w.Index.W; tx++ {
			px := float64(tx*w.TileWidth) + float64(w.TileWidth)/2
			py := float64(ty*w.TileHeight) + float64(w.TileHeight)/2
			if w.CanMoveTo(px, py, z, fp) {
				return px, py, true
			}
		}
	}
	return 0, 0, false
}
