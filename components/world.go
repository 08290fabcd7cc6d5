package components

import (
	"github.com/automoto/tmx-explorer/assets"
	"github.com/yohamta/donburi"
)

type WorldData struct {
	*assets.World
}

var World = donburi.NewComponentType[WorldData]()
