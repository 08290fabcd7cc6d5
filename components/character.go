package components

import (
	"github.com/automoto/tmx-explorer/assets/animations"
	"github.com/automoto/tmx-explorer/shared/collision"
	"github.com/yohamta/donburi"
)

// CharacterData is a walking entity. X and Y are its feet in map pixels, Z
// its height in levels.
type CharacterData struct {
	Name       string
	X, Y, Z    float64
	VX, VY, VZ float64 // pixels per second, levels per second for VZ
	Speed      float64
	Footprint  collision.Footprint
	Facing     animations.Direction
	Walking    bool
	Walk       *animations.Animation
}

var Character = donburi.NewComponentType[CharacterData]()
