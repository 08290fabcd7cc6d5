// Package animations drives character walk cycles on 4x4 sprite sheets: one
// row per facing direction, column 0 standing and columns 1-3 walking.
package animations

import (
	"image"
	"math"
)

const (
	SheetColumns = 4
	SheetRows    = 4
)

// Direction is the facing of a character and the sheet row it draws from.
type Direction int

const (
	Down Direction = iota
	Left
	Right
	Up
)

// DirectionFromVelocity picks the facing for a velocity. The dominant axis
// wins; a standing character keeps its current facing.
func DirectionFromVelocity(vx, vy float64, current Direction) Direction {
	if vx == 0 && vy == 0 {
		return current
	}
	if math.Abs(vx) > math.Abs(vy) {
		if vx < 0 {
			return Left
		}
		return Right
	}
	if vy < 0 {
		return Up
	}
	return Down
}

type Animation struct {
	First        int
	Last         int
	Step         int     // how many indices do we move per frame
	SpeedInTps   float32 // how many ticks before next frame
	frameCounter float32
	frame        int
	Looped       bool
}

func (a *Animation) Update() {
	a.frameCounter -= 1.0
	if a.frameCounter < 0.0 {
		a.frameCounter = a.SpeedInTps
		a.frame += a.Step
		if a.frame > a.Last {
			a.Looped = true
			a.frame = a.First
		}
	}
}

func (a *Animation) Frame() int {
	return a.frame
}

func (a *Animation) Restart() {
	a.frame = a.First
	a.frameCounter = a.SpeedInTps
	a.Looped = false
}

func NewAnimation(first, last, step int, speed float32) *Animation {
	return &Animation{
		First:        first,
		Last:         last,
		Step:         step,
		SpeedInTps:   speed,
		frameCounter: speed,
		frame:        first,
	}
}

// NewWalkCycle loops the walking columns, advancing every speed ticks.
func NewWalkCycle(speed float32) *Animation {
	return NewAnimation(1, SheetColumns-1, 1, speed)
}

// FrameRect is the sheet rectangle of column frame in dir's row.
func FrameRect(dir Direction, frame, frameWidth, frameHeight int) image.Rectangle {
	x := frame * frameWidth
	y := int(dir) * frameHeight
	return image.Rect(x, y, x+frameWidth, y+frameHeight)
}
