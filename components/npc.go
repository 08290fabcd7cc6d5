package components

import (
	"github.com/automoto/tmx-explorer/shared/behavior"
	"github.com/automoto/tmx-explorer/shared/leveldata"
	"github.com/yohamta/donburi"
)

type NPCData struct {
	Steering *behavior.State
	Target   string // name of the character to follow; empty means the player
	Route    []leveldata.Point
	RepathIn int // frames until Route is recomputed
}

var NPC = donburi.NewComponentType[NPCData]()
