package system

import (
	"github.com/milk9111/thirdperson/common"
	"github.com/milk9111/thirdperson/ecs/component"
)

// directAim turns the character toward the point under the pointer and hands
// the pointer ray to the crosshair. A ray that misses the aim plane leaves
// facing and the crosshair untouched.
func directAim(
	player component.Player,
	input component.Input,
	rig component.CharacterRig,
	transform *component.Transform,
	aim *component.Aim,
) {
	ray := rig.View.ScreenPointToRay(input.PointerX, input.PointerY)
	plane := common.HorizontalPlane(transform.Position.Y() + player.AimHeight)

	t, ok := plane.Raycast(ray)
	if !ok {
		aim.Valid = false
		return
	}

	point := ray.Point(t)
	// yaw only: the target is flattened to the character's own height
	if yaw, ok := common.YawTowards(transform.Position, point); ok {
		transform.Yaw = yaw
	}

	aim.Point = point
	aim.Ray = ray
	aim.Valid = true

	if rig.Crosshair == nil {
		return
	}
	rig.Crosshair.MoveTo(point)
	rig.Crosshair.DetectTargets(ray)
}
