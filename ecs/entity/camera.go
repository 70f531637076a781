package entity

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/thirdperson/ecs"
	"github.com/milk9111/thirdperson/ecs/component"
	"github.com/milk9111/thirdperson/prefabs"
)

func NewCamera(w *ecs.World) (ecs.Entity, error) {
	cameraSpec, err := prefabs.LoadCameraSpec()
	if err != nil {
		return 0, fmt.Errorf("camera: load spec: %w", err)
	}
	return NewCameraFromSpec(w, cameraSpec)
}

func NewCameraFromSpec(w *ecs.World, cameraSpec *prefabs.CameraSpec) (ecs.Entity, error) {
	if cameraSpec == nil {
		return 0, fmt.Errorf("camera: nil spec")
	}
	cam := cameraFromSpec(cameraSpec)

	camera := w.CreateEntity()
	if err := ecs.Add(w, camera, component.CameraTagComponent, &component.CameraTag{}); err != nil {
		return 0, fmt.Errorf("camera: add camera tag: %w", err)
	}
	if err := ecs.Add(w, camera, component.TransformComponent, &component.Transform{Position: cam.Position}); err != nil {
		return 0, fmt.Errorf("camera: add transform: %w", err)
	}
	if err := ecs.Add(w, camera, component.CameraComponent, &cam); err != nil {
		return 0, fmt.Errorf("camera: add camera component: %w", err)
	}

	return camera, nil
}

// ReloadCamera applies the current camera prefab to an existing camera. The
// camera keeps its position and look target so it eases into the new offset.
func ReloadCamera(w *ecs.World, camera ecs.Entity) error {
	cameraSpec, err := prefabs.LoadCameraSpec()
	if err != nil {
		return fmt.Errorf("camera: reload spec: %w", err)
	}
	cam, ok := ecs.Get(w, camera, component.CameraComponent)
	if !ok {
		return fmt.Errorf("camera: entity %v has no camera component", camera)
	}
	next := cameraFromSpec(cameraSpec)
	next.Position = cam.Position
	next.Target = cam.Target
	*cam = next
	return nil
}

func cameraFromSpec(cameraSpec *prefabs.CameraSpec) component.Camera {
	fov := cameraSpec.FovY
	if fov <= 0 {
		fov = 60
	}
	near := cameraSpec.Near
	if near <= 0 {
		near = 0.1
	}
	far := cameraSpec.Far
	if far <= near {
		far = near + 200
	}
	width, height := cameraSpec.Width, cameraSpec.Height
	if width <= 0 || height <= 0 {
		width, height = 960, 540
	}
	offset := vec3(cameraSpec.Offset)
	if offset.Len() == 0 {
		offset = mgl64.Vec3{0, 12, -9}
	}

	return component.Camera{
		TargetName: cameraSpec.Target,
		Position:   offset,
		Offset:     offset,
		FovY:       fov,
		Near:       near,
		Far:        far,
		Width:      width,
		Height:     height,
		Smoothness: cameraSpec.Smoothness,
	}
}

func vec3(v prefabs.Vec3Spec) mgl64.Vec3 {
	return mgl64.Vec3{v.X, v.Y, v.Z}
}
