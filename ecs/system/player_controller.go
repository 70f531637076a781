package system

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/thirdperson/common"
	"github.com/milk9111/thirdperson/ecs"
	"github.com/milk9111/thirdperson/ecs/component"
)

// PlayerControllerSystem is the single per-tick entry point for player
// characters. Each entity is moved first and aimed second, because aiming
// reads the post-move position.
type PlayerControllerSystem struct{}

func NewPlayerControllerSystem() *PlayerControllerSystem {
	return &PlayerControllerSystem{}
}

func (p *PlayerControllerSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	dt := w.DeltaTime()
	entities := w.Query(
		component.PlayerTagComponent.Kind(),
		component.PlayerComponent.Kind(),
		component.TransformComponent.Kind(),
	)
	for _, e := range entities {
		rig, ok := ecs.Get(w, e, component.CharacterRigComponent)
		if !ok {
			panic(fmt.Sprintf("player controller: entity %v has no character rig: %v", e, component.ErrMissingCollider))
		}
		if err := rig.Validate(); err != nil {
			panic(fmt.Sprintf("player controller: entity %v: %v", e, err))
		}

		player, _ := ecs.Get(w, e, component.PlayerComponent)
		transform, _ := ecs.Get(w, e, component.TransformComponent)
		loco, ok := ecs.Get(w, e, component.LocomotionComponent)
		if !ok {
			continue
		}
		motion, ok := ecs.Get(w, e, component.MotionComponent)
		if !ok {
			continue
		}

		var input component.Input
		if in, ok := ecs.Get(w, e, component.InputComponent); ok {
			input = *in
		}

		integrateMotion(*player, input, *rig, loco, motion, transform, dt)

		aim, ok := ecs.Get(w, e, component.AimComponent)
		if !ok {
			aim = &component.Aim{}
		}
		directAim(*player, input, *rig, transform, aim)
	}
}

// integrateMotion classifies the tick, accumulates gravity and issues the
// physical move. Grounded status comes from the previous move.
func integrateMotion(
	player component.Player,
	input component.Input,
	rig component.CharacterRig,
	loco *component.Locomotion,
	motion *component.Motion,
	transform *component.Transform,
	dt float64,
) {
	speedScale := player.WalkSpeed

	if rig.Body.IsGrounded() {
		velocity := mgl64.Vec3{input.Horizontal, 0, input.Vertical}
		c, _ := Classify(loco, player, input, true)
		speedScale = c.SpeedScale
		if c.Jump {
			velocity[1] = player.JumpSpeed
		}
		motion.Velocity = common.RotateYaw(velocity, transform.Yaw)
	}

	motion.Velocity[1] -= player.Gravity * dt

	motion.SpeedScale = speedScale
	motion.Displacement = motion.Velocity.Mul(speedScale * dt)
	motion.Grounded = rig.Body.Move(motion.Displacement)
	transform.Position = rig.Body.Position()
}
