package system

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/thirdperson/common"
	"github.com/milk9111/thirdperson/ecs"
	"github.com/milk9111/thirdperson/ecs/component"
)

// CameraSystem keeps the camera at its offset from the followed entity.
type CameraSystem struct {
	camEntity    ecs.Entity
	targetEntity ecs.Entity
}

func NewCameraSystem() *CameraSystem {
	return &CameraSystem{}
}

func (cs *CameraSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	if !cs.camEntity.Valid() || !w.IsAlive(cs.camEntity) {
		camEntity, ok := w.First(component.CameraComponent.Kind())
		if !ok {
			return
		}
		cs.camEntity = camEntity
		cs.targetEntity = 0
	}

	cam, ok := ecs.Get(w, cs.camEntity, component.CameraComponent)
	if !ok {
		return
	}

	if !cs.targetEntity.Valid() || !w.IsAlive(cs.targetEntity) {
		cs.targetEntity = findEntityByNameOrTag(w, cam.TargetName)
		if !cs.targetEntity.Valid() {
			return
		}
	}

	targetTransform, ok := ecs.Get(w, cs.targetEntity, component.TransformComponent)
	if !ok {
		return
	}

	focus := targetTransform.Position
	desired := focus.Add(cam.Offset)

	// Smoothness is the fraction of the remaining distance kept each tick.
	t := 1 - common.Clamp(cam.Smoothness, 0, 0.99)
	cam.Position = lerpVec3(cam.Position, desired, t)
	cam.Target = lerpVec3(cam.Target, focus, t)

	if camTransform, ok := ecs.Get(w, cs.camEntity, component.TransformComponent); ok {
		camTransform.Position = cam.Position
	}
}

func lerpVec3(a, b mgl64.Vec3, t float64) mgl64.Vec3 {
	return mgl64.Vec3{
		common.Lerp(a.X(), b.X(), t),
		common.Lerp(a.Y(), b.Y(), t),
		common.Lerp(a.Z(), b.Z(), t),
	}
}

func findEntityByNameOrTag(w *ecs.World, name string) ecs.Entity {
	switch name {
	case "", "player":
		if e, ok := w.First(component.PlayerTagComponent.Kind()); ok {
			return e
		}
	default:
		var found ecs.Entity
		ecs.ForEach(w, component.TargetComponent, func(e ecs.Entity, target *component.Target) {
			if !found.Valid() && target.Name == name {
				found = e
			}
		})
		return found
	}
	return 0
}
