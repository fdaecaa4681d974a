package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/stardrive/ecs/component"
)

const stickDeadZone = 0.2

// KeyboardSource reads held keys from the keyboard and the first gamepad.
type KeyboardSource struct{}

func (KeyboardSource) Poll(frame int) (component.InputState, error) {
	state := component.InputState{
		Forward:  ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyArrowUp),
		Backward: ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyArrowDown),
		Left:     ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft),
		Right:    ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight),
		Brake:    ebiten.IsKeyPressed(ebiten.KeySpace),
	}

	ids := ebiten.GamepadIDs()
	if len(ids) == 0 {
		return state, nil
	}
	gid := ids[0]
	if !ebiten.IsStandardGamepadLayoutAvailable(gid) {
		return state, nil
	}

	// left stick steers, triggers drive, A brakes
	leftX := ebiten.StandardGamepadAxisValue(gid, ebiten.StandardGamepadAxisLeftStickHorizontal)
	leftY := ebiten.StandardGamepadAxisValue(gid, ebiten.StandardGamepadAxisLeftStickVertical)
	state.Left = state.Left || leftX < -stickDeadZone
	state.Right = state.Right || leftX > stickDeadZone
	state.Forward = state.Forward || leftY < -stickDeadZone ||
		ebiten.IsStandardGamepadButtonPressed(gid, ebiten.StandardGamepadButtonFrontBottomRight)
	state.Backward = state.Backward || leftY > stickDeadZone ||
		ebiten.IsStandardGamepadButtonPressed(gid, ebiten.StandardGamepadButtonFrontBottomLeft)
	state.Brake = state.Brake ||
		ebiten.IsStandardGamepadButtonPressed(gid, ebiten.StandardGamepadButtonRightBottom)

	return state, nil
}
