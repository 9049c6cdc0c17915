package systems

import (
	"image"

	"github.com/automoto/pecking-order/components"
	cfg "github.com/automoto/pecking-order/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/yohamta/donburi/ecs"
)

// Reusable slice for gamepad IDs to avoid allocations
var gamepadIDs []ebiten.GamepadID

// UpdateInput polls raw input and updates the Input component.
// Must run before any system that reads actions.
func UpdateInput(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)

	input.Previous = input.Current
	input.Current = [cfg.ActionCount]bool{}

	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])

	var keyboardUsed, gamepadUsed bool
	for actionID, binding := range cfg.Input.Bindings {
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				input.Current[actionID] = true
				keyboardUsed = true
			}
		}

		for _, gpID := range gamepadIDs {
			if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
				continue
			}
			for _, btn := range binding.StandardGamepadButtons {
				if ebiten.IsStandardGamepadButtonPressed(gpID, btn) {
					input.Current[actionID] = true
					gamepadUsed = true
				}
			}
		}
	}

	input.CursorX, input.CursorY = ebiten.CursorPosition()
	input.Clicked = inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)

	switch {
	case gamepadUsed:
		input.LastInputMethod = components.InputGamepad
	case keyboardUsed:
		input.LastInputMethod = components.InputKeyboard
	case input.Clicked:
		input.LastInputMethod = components.InputMouse
	}
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

// ActionJustPressed reports whether an action went down this frame.
func ActionJustPressed(ecs *ecs.ECS, id cfg.ActionID) bool {
	return GetAction(getOrCreateInput(ecs), id).JustPressed
}

// ClickedIn reports whether the left button went down inside r this frame.
func ClickedIn(ecs *ecs.ECS, r image.Rectangle) bool {
	input := getOrCreateInput(ecs)
	return input.Clicked && image.Pt(input.CursorX, input.CursorY).In(r)
}
