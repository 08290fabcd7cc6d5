package config

import "github.com/hajimehoshi/ebiten/v2"

// ActionID represents a logical viewer action
type ActionID int

const (
	ActionNone ActionID = iota
	ActionMoveLeft
	ActionMoveRight
	ActionMoveUp
	ActionMoveDown
	ActionAscend
	ActionDescend
	ActionLevelUp
	ActionLevelDown
	ActionZoomIn
	ActionZoomOut
	ActionResetCamera
	ActionToggleGrid
	ActionToggleInfo
	ActionToggleFullscreen
	ActionPanLeft
	ActionPanRight
	ActionPanUp
	ActionPanDown
	ActionQuit
	ActionCount // Must be last - used for array sizing
)

// InputBinding represents a single key or button binding for an action
type InputBinding struct {
	Keys                   []ebiten.Key
	StandardGamepadButtons []ebiten.StandardGamepadButton
}

// InputConfig holds all input mappings
type InputConfig struct {
	Bindings map[ActionID]InputBinding
	// Deadzone for analog stick input (0.0 to 1.0)
	AnalogDeadzone float64
	// Keys 1..9 toggle layer visibility
	LayerKeys []ebiten.Key
}

// Input is the global input configuration
var Input InputConfig

func init() {
	Input = InputConfig{
		AnalogDeadzone: 0.25,
		LayerKeys: []ebiten.Key{
			ebiten.KeyDigit1, ebiten.KeyDigit2, ebiten.KeyDigit3,
			ebiten.KeyDigit4, ebiten.KeyDigit5, ebiten.KeyDigit6,
			ebiten.KeyDigit7, ebiten.KeyDigit8, ebiten.KeyDigit9,
		},
		Bindings: map[ActionID]InputBinding{
			ActionMoveLeft: {
				Keys:                   []ebiten.Key{ebiten.KeyLeft, ebiten.KeyA},
				StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftLeft},
			},
			ActionMoveRight: {
				Keys:                   []ebiten.Key{ebiten.KeyRight, ebiten.KeyD},
				StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftRight},
			},
			ActionMoveUp: {
				Keys:                   []ebiten.Key{ebiten.KeyUp, ebiten.KeyW},
				StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftTop},
			},
			ActionMoveDown: {
				Keys:                   []ebiten.Key{ebiten.KeyDown, ebiten.KeyS},
				StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftBottom},
			},
			ActionAscend: {
				Keys: []ebiten.Key{ebiten.KeyE},
				// Right bumper
				StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonFrontTopRight},
			},
			ActionDescend: {
				Keys: []ebiten.Key{ebiten.KeyQ},
				// Left bumper
				StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonFrontTopLeft},
			},
			ActionLevelUp: {
				Keys: []ebiten.Key{ebiten.KeyPageUp},
				// Y / Triangle button
				StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonRightTop},
			},
			ActionLevelDown: {
				Keys: []ebiten.Key{ebiten.KeyPageDown},
				// A / Cross button
				StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonRightBottom},
			},
			ActionZoomIn: {
				Keys: []ebiten.Key{ebiten.KeyEqual, ebiten.KeyNumpadAdd},
			},
			ActionZoomOut: {
				Keys: []ebiten.Key{ebiten.KeyMinus, ebiten.KeyNumpadSubtract},
			},
			ActionResetCamera: {
				Keys: []ebiten.Key{ebiten.KeySpace},
				// Back / Share button
				StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonCenterLeft},
			},
			ActionToggleGrid: {
				Keys: []ebiten.Key{ebiten.KeyG},
			},
			ActionToggleInfo: {
				Keys: []ebiten.Key{ebiten.KeyI},
				// Start / Options button
				StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonCenterRight},
			},
			ActionToggleFullscreen: {
				Keys: []ebiten.Key{ebiten.KeyF11},
			},
			ActionPanLeft: {
				Keys: []ebiten.Key{ebiten.KeyJ},
			},
			ActionPanRight: {
				Keys: []ebiten.Key{ebiten.KeyL},
			},
			ActionPanUp: {
				Keys: []ebiten.Key{ebiten.KeyK},
			},
			ActionPanDown: {
				Keys: []ebiten.Key{ebiten.KeyComma},
			},
			ActionQuit: {
				Keys: []ebiten.Key{ebiten.KeyEscape},
			},
		},
	}
}
