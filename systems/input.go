package systems

import (
	"github.com/automoto/tmx-explorer/components"
	cfg "github.com/automoto/tmx-explorer/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/yohamta/donburi/ecs"
)

// Reusable slice for gamepad IDs to avoid allocations
var gamepadIDs []ebiten.GamepadID

// UpdateInput polls raw input and updates the InputComponent.
// Must run BEFORE every system that reads actions.
func UpdateInput(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)

	// Swap buffers: current becomes previous, then zero out current
	input.Previous = input.Current
	input.Current = [cfg.ActionCount]bool{}

	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])

	for actionID, binding := range cfg.Input.Bindings {
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				input.Current[actionID] = true
			}
		}
		for _, gpID := range gamepadIDs {
			if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
				continue
			}
			for _, btn := range binding.StandardGamepadButtons {
				if ebiten.IsStandardGamepadButtonPressed(gpID, btn) {
					input.Current[actionID] = true
				}
			}
		}
	}

	input.AnalogX, input.AnalogY = getAnalogStick(gamepadIDs)
	input.Shift = ebiten.IsKeyPressed(ebiten.KeyShift)

	input.LayerToggles = input.LayerToggles[:0]
	for i, key := range cfg.Input.LayerKeys {
		if inpututil.IsKeyJustPressed(key) {
			input.LayerToggles = append(input.LayerToggles, i)
		}
	}

	wasDown := input.MouseDown
	input.CursorX, input.CursorY = ebiten.CursorPosition()
	input.MouseDown = ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	input.MouseJustDown = input.MouseDown && !wasDown
	_, input.Wheel = ebiten.Wheel()
}

// getAnalogStick reads the left analog stick of the first gamepad outside the
// deadzone.
func getAnalogStick(gamepads []ebiten.GamepadID) (float64, float64) {
	deadzone := cfg.Input.AnalogDeadzone

	for _, gpID := range gamepads {
		if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
			continue
		}
		horizontal := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickHorizontal)
		vertical := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickVertical)
		if horizontal < -deadzone || horizontal > deadzone || vertical < -deadzone || vertical > deadzone {
			return horizontal, vertical
		}
	}
	return 0, 0
}

// getOrCreateInput returns the singleton Input component, creating if needed
func getOrCreateInput(ecs *ecs.ECS) *components.InputData {
	entry, ok := components.Input.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Input))
	}
	return components.Input.Get(entry)
}

// GetAction returns the full ActionState for an action ID.
// JustPressed/JustReleased are derived from current vs previous frame.
func GetAction(input *components.InputData, id cfg.ActionID) components.ActionState {
	curr := input.Current[id]
	prev := input.Previous[id]
	return components.ActionState{
		Pressed:      curr,
		JustPressed:  curr && !prev,
		JustReleased: !curr && prev,
	}
}

// moveAxes turns the held direction actions and the analog stick into a
// -1..1 direction per axis.
func moveAxes(input *components.InputData) (dx, dy, dz float64) {
	if input.Current[cfg.ActionMoveLeft] {
		dx--
	}
	if input.Current[cfg.ActionMoveRight] {
		dx++
	}
	if input.Current[cfg.ActionMoveUp] {
		dy--
	}
	if input.Current[cfg.ActionMoveDown] {
		dy++
	}
	if input.Current[cfg.ActionAscend] {
		dz++
	}
	if input.Current[cfg.ActionDescend] {
		dz--
	}
	if dx == 0 && dy == 0 {
		dx, dy = input.AnalogX, input.AnalogY
	}
	return dx, dy, dz
}
