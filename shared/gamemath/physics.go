package gamemath

// diagonalFactor scales each axis of a diagonal step so it covers the same
// distance as a cardinal one.
const diagonalFactor = 0.7071

// ClampFloat clamps v to [lo, hi].
func ClampFloat(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// ClampSpeed clamps a value to [-max, max].
func ClampSpeed(speed, max float64) float64 {
	if speed > max {
		return max
	}
	if speed < -max {
		return -max
	}
	return speed
}

// MoveVelocity converts a direction from input (-1, 0 or 1 on each axis)
// into a planar velocity in pixels per second and a height velocity in levels
// per second. Diagonal steps are normalized.
func MoveVelocity(dirX, dirY, dirZ, speed, verticalScale float64) (vx, vy, vz float64) {
	if dirX != 0 && dirY != 0 {
		dirX *= diagonalFactor
		dirY *= diagonalFactor
	}
	return dirX * speed, dirY * speed, dirZ * speed * verticalScale
}
