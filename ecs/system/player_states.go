package system

import (
	"math"

	"github.com/milk9111/thirdperson/ecs/component"
)

const (
	// directionDeadZone bounds axis values treated as no input.
	directionDeadZone = 0.01
	// runThreshold is the forward axis value needed to qualify for Run.
	runThreshold = 0.1
)

// Classification is the outcome of one classifier step.
type Classification struct {
	State      component.LocomotionState
	SpeedScale float64
	// Jump is set when the vertical component must be replaced by the jump
	// impulse this tick.
	Jump bool
}

// Classify picks the locomotion state for a tick and applies it to loco as a
// single transition. Listeners fire only when the state actually changes, and
// only the final target of the tick is ever observable.
//
// Airborne ticks keep the current state and the walk speed scale.
func Classify(loco *component.Locomotion, player component.Player, in component.Input, grounded bool) (Classification, bool) {
	result := Classification{SpeedScale: player.WalkSpeed}
	if loco == nil {
		return result, false
	}
	result.State = loco.State
	if !grounded {
		return result, false
	}

	h, v := in.Horizontal, in.Vertical
	target := loco.State

	switch {
	case math.Abs(h) <= directionDeadZone && math.Abs(v) <= directionDeadZone:
		target = component.LocomotionIdle
	case v > directionDeadZone:
		// holding run keeps Run from being relabeled as Forward
		if loco.State != component.LocomotionRun || !in.Run {
			target = component.LocomotionForward
		}
	case v < -directionDeadZone:
		target = component.LocomotionBack
	case h > directionDeadZone:
		target = component.LocomotionRight
	case h < -directionDeadZone:
		target = component.LocomotionLeft
	}

	if in.Run && v > runThreshold {
		target = component.LocomotionRun
		result.SpeedScale = player.RunSpeed
	}

	if in.Jump {
		target = component.LocomotionJump
		result.Jump = true
	}

	result.State = target
	return result, loco.Transition(target)
}
