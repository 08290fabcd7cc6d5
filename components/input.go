package components

import (
	cfg "github.com/automoto/tmx-explorer/config"
	"github.com/yohamta/donburi"
)

// ActionState represents the temporal state of an action
type ActionState struct {
	Pressed      bool // Currently held down
	JustPressed  bool // Pressed this frame
	JustReleased bool // Released this frame
}

// InputData stores the current and previous frame's pressed state for all
// actions, plus the mouse and layer keys.
type InputData struct {
	Current  [cfg.ActionCount]bool
	Previous [cfg.ActionCount]bool

	LayerToggles []int // layer indices whose number key was pressed this frame
	Shift        bool

	CursorX, CursorY int
	MouseDown        bool
	MouseJustDown    bool
	Wheel            float64
	AnalogX, AnalogY float64
}

var Input = donburi.NewComponentType[InputData]()
