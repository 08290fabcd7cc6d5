package components

import (
	"github.com/automoto/tmx-explorer/assets/animations"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
)

// Frames is a walk sheet cut into one image per direction and column.
type Frames = [animations.SheetRows][animations.SheetColumns]*ebiten.Image

type SpriteData struct {
	Frames      *Frames // nil draws Placeholder
	Placeholder *ebiten.Image
	FrameWidth  int
	FrameHeight int
}

// Image returns the frame to draw for a facing and sheet column.
func (s *SpriteData) Image(dir animations.Direction, frame int) *ebiten.Image {
	if s.Frames == nil {
		return s.Placeholder
	}
	return s.Frames[dir][frame]
}

var Sprite = donburi.NewComponentType[SpriteData]()
