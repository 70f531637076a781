// Package device samples real input hardware through ebiten. It is kept
// apart from controls so headless builds do not link the renderer.
package device

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/thirdperson/controls"
	"github.com/milk9111/thirdperson/ecs/component"
)

const stickDeadzone = 0.2

// EbitenSource polls keyboard, mouse and the first standard gamepad. Keyboard
// axes are smoothed; an analog stick outside its dead zone overrides them.
type EbitenSource struct {
	horizontal *controls.Axis
	vertical   *controls.Axis

	run      bool
	jump     bool
	pointerX float64
	pointerY float64
}

var _ component.InputSource = (*EbitenSource)(nil)

func NewEbitenSource() *EbitenSource {
	return &EbitenSource{
		horizontal: controls.NewAxis(),
		vertical:   controls.NewAxis(),
	}
}

// Advance samples devices once per tick.
func (s *EbitenSource) Advance(dt float64) {
	left := ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft)
	right := ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight)
	up := ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyArrowUp)
	down := ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyArrowDown)

	rawX := digital(left, right)
	rawY := digital(down, up)
	s.run = ebiten.IsKeyPressed(ebiten.KeyShift)
	s.jump = ebiten.IsKeyPressed(ebiten.KeySpace)

	cx, cy := ebiten.CursorPosition()
	s.pointerX, s.pointerY = float64(cx), float64(cy)

	stickX, stickY := 0.0, 0.0
	if gamepads := ebiten.AppendGamepadIDs(nil); len(gamepads) > 0 {
		id := gamepads[0]
		if ebiten.IsStandardGamepadLayoutAvailable(id) {
			stickX = ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickHorizontal)
			// stick up is negative
			stickY = -ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickVertical)
			s.jump = s.jump || ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonRightBottom)
			s.run = s.run || ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonFrontTopLeft)
		}
	}

	if math.Hypot(stickX, stickY) > stickDeadzone {
		s.horizontal.Set(stickX)
		s.vertical.Set(stickY)
		return
	}
	s.horizontal.Step(rawX, dt)
	s.vertical.Step(rawY, dt)
}

func (s *EbitenSource) Axis(name string) float64 {
	switch name {
	case component.AxisHorizontal:
		return s.horizontal.Value()
	case component.AxisVertical:
		return s.vertical.Value()
	}
	return 0
}

func (s *EbitenSource) Held(action string) bool {
	switch action {
	case component.ActionRun:
		return s.run
	case component.ActionJump:
		return s.jump
	}
	return false
}

func (s *EbitenSource) Pointer() (float64, float64) {
	return s.pointerX, s.pointerY
}

func digital(negative, positive bool) float64 {
	v := 0.0
	if negative {
		v--
	}
	if positive {
		v++
	}
	return v
}
