package component

import "github.com/go-gl/mathgl/mgl64"

// Transform is a world-space position plus a yaw (radians about +Y).
// Characters never pitch or roll.
type Transform struct {
	Position mgl64.Vec3
	Yaw      float64
}

var TransformComponent = NewComponent[Transform]()
