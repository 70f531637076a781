package component

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/thirdperson/common"
)

// InputSource is polled once per tick. It never blocks.
type InputSource interface {
	Axis(name string) float64
	Held(action string) bool
	Pointer() (x, y float64)
}

// CharacterBody is the move-and-collide primitive.
type CharacterBody interface {
	// IsGrounded reports the result of the last Move.
	IsGrounded() bool
	// Move displaces the body, resolving collisions, and returns the new
	// grounded status.
	Move(delta mgl64.Vec3) bool
	Position() mgl64.Vec3
}

// RayProjector turns a screen point into a world-space ray.
type RayProjector interface {
	ScreenPointToRay(x, y float64) common.Ray
}

// Crosshair is the target-acquisition collaborator.
type Crosshair interface {
	MoveTo(point mgl64.Vec3)
	DetectTargets(ray common.Ray)
}

// CharacterRig wires a player entity to its borrowed collaborators.
type CharacterRig struct {
	Body      CharacterBody
	View      RayProjector
	Crosshair Crosshair
}

// Validate fails fast on a rig that cannot drive a controller.
func (r CharacterRig) Validate() error {
	if r.Body == nil {
		return ErrMissingCollider
	}
	if r.View == nil {
		return ErrMissingCamera
	}
	return nil
}

var CharacterRigComponent = NewComponent[CharacterRig]()
